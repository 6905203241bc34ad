package logger

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidLevel is returned when a Level outside the eight defined
// severities, or an unknown label, is converted.
var ErrInvalidLevel = errors.New("invalid log level")

// Level is the severity of a log message. Lower values are more severe.
type Level int

const (
	// EmergencyLevel means the system is unusable.
	EmergencyLevel Level = iota
	// AlertLevel means action must be taken immediately.
	AlertLevel
	// CriticalLevel covers critical conditions.
	CriticalLevel
	// ErrorLevel covers runtime errors that do not require immediate action but
	// should be logged and monitored.
	ErrorLevel
	// WarningLevel covers exceptional occurrences that are not errors, such as use
	// of deprecated APIs.
	WarningLevel
	// NoticeLevel covers normal but significant events.
	NoticeLevel
	// InfoLevel covers interesting events.
	InfoLevel
	// DebugLevel covers detailed debug information.
	DebugLevel
)

var levelLabels = [...]string{
	EmergencyLevel: "emergency",
	AlertLevel:     "alert",
	CriticalLevel:  "critical",
	ErrorLevel:     "error",
	WarningLevel:   "warning",
	NoticeLevel:    "notice",
	InfoLevel:      "info",
	DebugLevel:     "debug",
}

// Levels returns every defined level, most severe first.
func Levels() []Level {
	return []Level{EmergencyLevel, AlertLevel, CriticalLevel, ErrorLevel, WarningLevel, NoticeLevel, InfoLevel, DebugLevel}
}

// LevelToLabel returns the lowercase label for level.
// Values outside the defined set return an error wrapping ErrInvalidLevel.
func LevelToLabel(level Level) (string, error) {
	if !level.Valid() {
		return "", fmt.Errorf("%w: %d", ErrInvalidLevel, int(level))
	}
	return levelLabels[level], nil
}

// ParseLevel is the inverse of LevelToLabel. Matching ignores case and
// surrounding whitespace.
func ParseLevel(label string) (Level, error) {
	want := strings.ToLower(strings.TrimSpace(label))
	for i, l := range levelLabels {
		if l == want {
			return Level(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, label)
}

// Valid reports whether l is one of the eight defined levels.
func (l Level) Valid() bool {
	return l >= EmergencyLevel && l <= DebugLevel
}

// MoreSevereThan reports whether l is strictly more urgent than other.
func (l Level) MoreSevereThan(other Level) bool {
	return l < other
}

// String implements fmt.Stringer. Invalid levels render as "level(N)".
func (l Level) String() string {
	if label, err := LevelToLabel(l); err == nil {
		return label
	}
	return fmt.Sprintf("level(%d)", int(l))
}
