// Package textutil holds the string normalization shared by catalog lookups.
//
// Title keys trim surrounding whitespace and apply Unicode case folding, so
// "  the THING " and "The Thing" compare equal.
package textutil
