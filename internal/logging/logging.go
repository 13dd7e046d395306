// Package logging sets up the one run-scoped logger each CLI invocation
// uses for diagnostics: setup errors, the chosen piece selection, search
// statistics and history-store outcomes. Every line goes to stderr;
// nothing diagnostic is ever written to stdout.
package logging

import (
	"os"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog"
)

// New builds a logger tagged with a freshly generated run ID, at the
// given level ("debug", "info", "warn", "error", ...). An unrecognized
// level falls back to info rather than failing the run over a
// diagnostics misconfiguration.
func New(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	runID := uuid.Must(uuid.NewV4()).String()
	return zerolog.New(os.Stderr).
		Level(lvl).
		With().
		Timestamp().
		Str("runId", runID).
		Logger()
}
