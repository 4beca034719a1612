package pathkit

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

// logPtr holds the installed diagnostics logger. Disabled by default;
// pathkit is a library and stays silent unless the host application
// opts in via SetLogger. Watcher goroutines read this concurrently, so
// installation is an atomic pointer swap.
var logPtr atomic.Pointer[zerolog.Logger]

func init() {
	nop := zerolog.Nop()
	logPtr.Store(&nop)
}

// SetLogger installs the logger used for diagnostics that have no error
// return to surface through, such as suppressed temporary-directory
// teardown failures and watcher faults. The logger is annotated with a
// component field. Safe to call while watchers are running.
func SetLogger(l zerolog.Logger) {
	child := l.With().Str("component", "pathkit").Logger()
	logPtr.Store(&child)
}

// logger returns the currently installed diagnostics logger
func logger() *zerolog.Logger {
	return logPtr.Load()
}
