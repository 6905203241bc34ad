package logger

import "sync"

// The global slot starts unset, is filled with a stdout SimpleLogger on the
// first read if nothing was stored, and can be replaced at any time.
var (
	globalMu sync.Mutex
	global   Logger
)

// Global returns the process-wide Logger, creating a SimpleLogger on
// standard output the first time it is read while unset. Concurrent first
// reads observe the same instance.
func Global() Logger {
	globalMu.Lock()
	defer globalMu.Unlock()
	if global == nil {
		global = NewSimple()
	}
	return global
}

// SetGlobal replaces the process-wide Logger. Passing nil clears the slot so
// the next Global call creates a fresh default.
func SetGlobal(l Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	global = l
}

// Package-level helpers forward to Global.

func Emergency(msg string)                 { Global().Emergency(msg) }
func Alert(msg string)                     { Global().Alert(msg) }
func Critical(msg string)                  { Global().Critical(msg) }
func Error(msg string)                     { Global().Error(msg) }
func Warning(msg string)                   { Global().Warning(msg) }
func Notice(msg string)                    { Global().Notice(msg) }
func Info(msg string)                      { Global().Info(msg) }
func Debug(msg string)                     { Global().Debug(msg) }
func Log(level Level, msg string)          { Global().Log(level, msg) }
func LogException(err error, trace string) { Global().LogException(err, trace) }
