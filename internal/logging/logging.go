/*
Package logging configures a single shared [logging.Logger] for the engine,
following the op/go-logging "backend + formatter" setup: one process-wide
logger, lazily created on first use and reused everywhere else via GetLog.
*/
package logging

import (
	"os"

	"github.com/op/go-logging"
)

var (
	log    *logging.Logger
	format = logging.MustStringFormatter(
		`%{color}%{time:15:04:05.000} %{shortfunc} ▶ %{level:.4s}%{color:reset} %{message}`,
	)
)

// GetLog returns the engine's shared logger, creating it on first call.
func GetLog() *logging.Logger {
	if log == nil {
		backend := logging.NewLogBackend(os.Stderr, "", 0)
		formatted := logging.NewBackendFormatter(backend, format)
		leveled := logging.AddModuleLevel(formatted)
		leveled.SetLevel(logging.INFO, "")
		logging.SetBackend(leveled)
		log = logging.MustGetLogger("corvid")
	}
	return log
}

// SetLevel adjusts the minimum level the shared logger emits, e.g. DebugLevel
// while diagnosing a search regression.
func SetLevel(level logging.Level) {
	logging.SetLevel(level, "")
}

// DebugLevel is the verbosity SetLevel accepts to surface debug-level
// messages; callers outside this package don't import op/go-logging
// directly just to name it.
const DebugLevel = logging.DEBUG
