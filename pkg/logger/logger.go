// Package logger is a small leveled-logging facade.
//
// A Logger emits a message at one of eight severities. SimpleLogger writes
// "[LEVEL] message" lines to a writer, PrefixedLogger tags every message of
// another Logger, and Global holds a process-wide default for callers that
// do not thread a Logger through their call chain. Prefer passing a Logger
// explicitly; Global is a convenience.
package logger

import (
	"errors"
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Logger is the capability every logging backend satisfies.
// Each severity method is equivalent to calling Log with that severity.
type Logger interface {
	Emergency(msg string)
	Alert(msg string)
	Critical(msg string)
	Error(msg string)
	Warning(msg string)
	Notice(msg string)
	Info(msg string)
	Debug(msg string)

	// Log writes msg at level.
	Log(level Level, msg string)

	// LogException writes err's message at Critical followed by its stack
	// trace, if one is available. An explicit non-empty trace takes
	// precedence over a stack carried by err.
	LogException(err error, trace string)
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// StackTrace resolves the trace LogException emits for err.
// It returns trace when non-empty, otherwise the stack recorded by
// github.com/pkg/errors anywhere in err's chain, otherwise "".
func StackTrace(err error, trace string) string {
	if trace != "" {
		return trace
	}
	var st stackTracer
	if err != nil && errors.As(err, &st) {
		// %+v renders one "\nfunc\n\tfile:line" block per frame.
		return strings.TrimLeft(fmt.Sprintf("%+v", st.StackTrace()), "\n")
	}
	return ""
}
