// Package loggertest provides test doubles for the logger package.
// Recorder captures every call so tests can assert on levels and messages
// without parsing console output.
package loggertest

import (
	"sync"

	"github.com/schmitthub/sevlog/pkg/logger"
)

// Entry is one recorded Log call.
type Entry struct {
	Level   logger.Level
	Message string
}

// ExceptionEntry is one recorded LogException call.
type ExceptionEntry struct {
	Err   error
	Trace string
}

// Recorder is a logger.Logger that keeps everything it is given.
// It is safe for concurrent use.
type Recorder struct {
	mu         sync.Mutex
	entries    []Entry
	exceptions []ExceptionEntry
}

var _ logger.Logger = (*Recorder)(nil)

// New creates an empty Recorder.
func New() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Emergency(msg string) { r.Log(logger.EmergencyLevel, msg) }
func (r *Recorder) Alert(msg string)     { r.Log(logger.AlertLevel, msg) }
func (r *Recorder) Critical(msg string)  { r.Log(logger.CriticalLevel, msg) }
func (r *Recorder) Error(msg string)     { r.Log(logger.ErrorLevel, msg) }
func (r *Recorder) Warning(msg string)   { r.Log(logger.WarningLevel, msg) }
func (r *Recorder) Notice(msg string)    { r.Log(logger.NoticeLevel, msg) }
func (r *Recorder) Info(msg string)      { r.Log(logger.InfoLevel, msg) }
func (r *Recorder) Debug(msg string)     { r.Log(logger.DebugLevel, msg) }

// Log records the call.
func (r *Recorder) Log(level logger.Level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Level: level, Message: msg})
}

// LogException records the error and the trace exactly as passed.
func (r *Recorder) LogException(err error, trace string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.exceptions = append(r.exceptions, ExceptionEntry{Err: err, Trace: trace})
}

// Entries returns a copy of the recorded Log calls in order.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Entry(nil), r.entries...)
}

// Exceptions returns a copy of the recorded LogException calls in order.
func (r *Recorder) Exceptions() []ExceptionEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]ExceptionEntry(nil), r.exceptions...)
}

// Messages returns just the message text of each recorded Log call.
func (r *Recorder) Messages() []string {
	entries := r.Entries()
	msgs := make([]string, len(entries))
	for i, e := range entries {
		msgs[i] = e.Message
	}
	return msgs
}

// Reset clears everything recorded so far.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
	r.exceptions = nil
}
