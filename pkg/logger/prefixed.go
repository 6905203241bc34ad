package logger

import "sync"

// PrefixedLogger tags every message with "[prefix] " before handing it to a
// delegate. Severity passes through unchanged.
//
// LogException is forwarded untouched: exception output never carries the
// prefix. Callers may depend on that, so keep it.
type PrefixedLogger struct {
	delegate Logger

	mu     sync.RWMutex
	prefix string
}

var _ Logger = (*PrefixedLogger)(nil)

// NewPrefixed wraps delegate. The delegate's lifetime stays with the caller.
func NewPrefixed(delegate Logger, prefix string) *PrefixedLogger {
	return &PrefixedLogger{delegate: delegate, prefix: prefix}
}

// Prefix returns the current prefix.
func (l *PrefixedLogger) Prefix() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.prefix
}

// SetPrefix replaces the prefix for subsequent messages.
func (l *PrefixedLogger) SetPrefix(prefix string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.prefix = prefix
}

// Delegate returns the wrapped Logger.
func (l *PrefixedLogger) Delegate() Logger { return l.delegate }

func (l *PrefixedLogger) Emergency(msg string) { l.Log(EmergencyLevel, msg) }
func (l *PrefixedLogger) Alert(msg string)     { l.Log(AlertLevel, msg) }
func (l *PrefixedLogger) Critical(msg string)  { l.Log(CriticalLevel, msg) }
func (l *PrefixedLogger) Error(msg string)     { l.Log(ErrorLevel, msg) }
func (l *PrefixedLogger) Warning(msg string)   { l.Log(WarningLevel, msg) }
func (l *PrefixedLogger) Notice(msg string)    { l.Log(NoticeLevel, msg) }
func (l *PrefixedLogger) Info(msg string)      { l.Log(InfoLevel, msg) }
func (l *PrefixedLogger) Debug(msg string)     { l.Log(DebugLevel, msg) }

// Log forwards "[prefix] msg" to the delegate at level.
func (l *PrefixedLogger) Log(level Level, msg string) {
	l.delegate.Log(level, "["+l.Prefix()+"] "+msg)
}

// LogException forwards to the delegate without applying the prefix.
func (l *PrefixedLogger) LogException(err error, trace string) {
	l.delegate.LogException(err, trace)
}
