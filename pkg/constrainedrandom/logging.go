package constrainedrandom

import (
	"io"

	"github.com/sirupsen/logrus"
)

// log is the package-level logger, defaulting to a discard logger so
// embedding programs aren't forced to see output unless they opt in via
// SetLogger. Logging never reads or writes solver state and never
// affects the sequence of draws made against a Source (SPEC_FULL §2).
var log = newDiscardLogger()

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// SetLogger replaces the package-level logger used for solver-pipeline
// transition logging. Pass logrus.StandardLogger() to see output at the
// process's default level, or a logger configured for the caller's own
// output/formatter conventions.
func SetLogger(l *logrus.Logger) {
	if l == nil {
		log = newDiscardLogger()
		return
	}
	log = l
}
