// Package logging assembles structured slog loggers used across daylight.
//
// It owns the configurable console/JSON handlers, centralizes level and
// output plumbing, and tags each invocation with a correlation id so the
// lines of one status-bar refresh can be grouped. Stdout is reserved for
// the menu; loggers write to stderr and an optional file. The package also
// provides a no-op logger for tests and wiring code that cannot fail.
package logging
