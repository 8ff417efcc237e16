// Package main hosts the movielib CLI entrypoint and command graph.
//
// The Cobra command tree maps each catalog operation (list, show, actor, top,
// add, remove) onto the configured catalog file, and `movielib menu` runs the
// interactive console session that keeps a library in memory between load
// and save. Configuration resolution, logger construction, and the catalog
// file lock are centralized in commandContext so subcommands only deal with
// input parsing and rendering.
//
// Catalog semantics live in internal/catalog and internal/catalogfile; keep
// this package to argument handling and presentation.
package main
