// Package logging assembles structured slog loggers for movielib.
//
// It owns the console and JSON handlers, parses level and format strings from
// configuration, routes output to stderr and optional log files, and stamps
// every record with the CLI session identifier. The package also provides a
// no-op logger for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits records with the same shape.
package logging
