// Package logging constructs the application slog.Logger: a console
// handler for interactive use and a JSON handler for machine-readable
// logs, optionally teeing into a file under the configured log directory.
package logging
