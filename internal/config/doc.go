// Package config loads, normalizes, and validates movielib configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, loads .env files, and honours environment fallbacks such as
// MOVIELIB_FILE. The Config type centralizes every knob the CLI needs.
//
// Always obtain settings through this package so downstream code receives
// absolute paths, canonical log formats, and clear validation errors.
package config
