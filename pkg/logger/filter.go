package logger

import "sync"

// LevelFilter forwards messages at its threshold or more severe and drops
// the rest. Exceptions are always forwarded.
type LevelFilter struct {
	delegate Logger

	mu        sync.RWMutex
	threshold Level
}

var _ Logger = (*LevelFilter)(nil)

// NewLevelFilter wraps delegate, passing through messages no less severe than threshold.
func NewLevelFilter(delegate Logger, threshold Level) *LevelFilter {
	return &LevelFilter{delegate: delegate, threshold: threshold}
}

// Threshold returns the least severe level that is still forwarded.
func (f *LevelFilter) Threshold() Level {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.threshold
}

// SetThreshold changes the least severe level that is still forwarded.
func (f *LevelFilter) SetThreshold(level Level) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.threshold = level
}

// Enabled reports whether a message at level would be forwarded.
func (f *LevelFilter) Enabled(level Level) bool {
	return !f.Threshold().MoreSevereThan(level)
}

func (f *LevelFilter) Emergency(msg string) { f.Log(EmergencyLevel, msg) }
func (f *LevelFilter) Alert(msg string)     { f.Log(AlertLevel, msg) }
func (f *LevelFilter) Critical(msg string)  { f.Log(CriticalLevel, msg) }
func (f *LevelFilter) Error(msg string)     { f.Log(ErrorLevel, msg) }
func (f *LevelFilter) Warning(msg string)   { f.Log(WarningLevel, msg) }
func (f *LevelFilter) Notice(msg string)    { f.Log(NoticeLevel, msg) }
func (f *LevelFilter) Info(msg string)      { f.Log(InfoLevel, msg) }
func (f *LevelFilter) Debug(msg string)     { f.Log(DebugLevel, msg) }

func (f *LevelFilter) Log(level Level, msg string) {
	if f.Enabled(level) {
		f.delegate.Log(level, msg)
	}
}

func (f *LevelFilter) LogException(err error, trace string) {
	f.delegate.LogException(err, trace)
}

// Nop discards everything.
type Nop struct{}

var _ Logger = Nop{}

// NewNop returns a Logger that writes nothing.
func NewNop() Nop { return Nop{} }

func (Nop) Emergency(string)           {}
func (Nop) Alert(string)               {}
func (Nop) Critical(string)            {}
func (Nop) Error(string)               {}
func (Nop) Warning(string)             {}
func (Nop) Notice(string)              {}
func (Nop) Info(string)                {}
func (Nop) Debug(string)               {}
func (Nop) Log(Level, string)          {}
func (Nop) LogException(error, string) {}
