package logger

import (
	"github.com/rs/zerolog"
)

// ZerologLogger sends facade messages to a zerolog.Logger. The facade label
// is kept in a "severity" field since zerolog has fewer levels.
type ZerologLogger struct {
	zl zerolog.Logger
}

var _ Logger = (*ZerologLogger)(nil)

// NewZerolog adapts zl. Level filtering configured on zl still applies.
func NewZerolog(zl zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{zl: zl}
}

// ZerologLevel maps a facade level onto the closest zerolog level.
// Emergency and Alert map to panic and fatal but are emitted with WithLevel,
// which neither panics nor exits.
func ZerologLevel(level Level) zerolog.Level {
	switch level {
	case EmergencyLevel:
		return zerolog.PanicLevel
	case AlertLevel:
		return zerolog.FatalLevel
	case CriticalLevel, ErrorLevel:
		return zerolog.ErrorLevel
	case WarningLevel:
		return zerolog.WarnLevel
	case NoticeLevel, InfoLevel:
		return zerolog.InfoLevel
	case DebugLevel:
		return zerolog.DebugLevel
	default:
		return zerolog.NoLevel
	}
}

func (l *ZerologLogger) Emergency(msg string) { l.Log(EmergencyLevel, msg) }
func (l *ZerologLogger) Alert(msg string)     { l.Log(AlertLevel, msg) }
func (l *ZerologLogger) Critical(msg string)  { l.Log(CriticalLevel, msg) }
func (l *ZerologLogger) Error(msg string)     { l.Log(ErrorLevel, msg) }
func (l *ZerologLogger) Warning(msg string)   { l.Log(WarningLevel, msg) }
func (l *ZerologLogger) Notice(msg string)    { l.Log(NoticeLevel, msg) }
func (l *ZerologLogger) Info(msg string)      { l.Log(InfoLevel, msg) }
func (l *ZerologLogger) Debug(msg string)     { l.Log(DebugLevel, msg) }

func (l *ZerologLogger) Log(level Level, msg string) {
	l.zl.WithLevel(ZerologLevel(level)).
		Str("severity", level.String()).
		Msg(msg)
}

// LogException emits one critical event carrying the error and, when
// available, its trace in a "stack" field.
func (l *ZerologLogger) LogException(err error, trace string) {
	if err == nil {
		return
	}
	event := l.zl.WithLevel(ZerologLevel(CriticalLevel)).
		Str("severity", CriticalLevel.String())
	if st := StackTrace(err, trace); st != "" {
		event = event.Str("stack", st)
	}
	event.Msg(err.Error())
}
