package logger

import (
	"io"
	"os"
	"strings"
	"sync"
)

// SimpleLogger writes one "[LEVEL] message" line per call to a writer.
type SimpleLogger struct {
	mu  sync.Mutex
	out io.Writer
}

var _ Logger = (*SimpleLogger)(nil)

// NewSimple returns a SimpleLogger writing to standard output.
func NewSimple() *SimpleLogger {
	return NewSimpleWriter(os.Stdout)
}

// NewSimpleWriter returns a SimpleLogger writing to w.
func NewSimpleWriter(w io.Writer) *SimpleLogger {
	return &SimpleLogger{out: w}
}

func (l *SimpleLogger) Emergency(msg string) { l.Log(EmergencyLevel, msg) }
func (l *SimpleLogger) Alert(msg string)     { l.Log(AlertLevel, msg) }
func (l *SimpleLogger) Critical(msg string)  { l.Log(CriticalLevel, msg) }
func (l *SimpleLogger) Error(msg string)     { l.Log(ErrorLevel, msg) }
func (l *SimpleLogger) Warning(msg string)   { l.Log(WarningLevel, msg) }
func (l *SimpleLogger) Notice(msg string)    { l.Log(NoticeLevel, msg) }
func (l *SimpleLogger) Info(msg string)      { l.Log(InfoLevel, msg) }
func (l *SimpleLogger) Debug(msg string)     { l.Log(DebugLevel, msg) }

// Log writes "[LEVEL] msg". Write errors are dropped.
func (l *SimpleLogger) Log(level Level, msg string) {
	l.writeLines(formatLine(level, msg))
}

// LogException writes err's message at Critical, then the resolved trace as
// a raw line without a level tag. Both land in a single write, so no other
// message can come between them.
func (l *SimpleLogger) LogException(err error, trace string) {
	if err == nil {
		return
	}
	lines := []string{formatLine(CriticalLevel, err.Error())}
	if st := strings.TrimSuffix(StackTrace(err, trace), "\n"); st != "" {
		lines = append(lines, st)
	}
	l.writeLines(lines...)
}

func formatLine(level Level, msg string) string {
	return "[" + strings.ToUpper(level.String()) + "] " + msg
}

func (l *SimpleLogger) writeLines(lines ...string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.out, strings.Join(lines, "\n")+"\n")
}
