// Package logger holds the CLI's own diagnostic logger. It is separate from
// pkg/logger, which is the facade the CLI exercises: messages emitted by
// "sevlog emit" never pass through here.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogFileName is the diagnostic log file created inside the logs directory.
const LogFileName = "sevlog.log"

var (
	// Log is the global diagnostic logger. It discards everything until Init
	// or InitWithFile is called.
	Log = zerolog.Nop()

	// fileWriter is the rotating file output, nil when file logging is off.
	fileWriter *lumberjack.Logger

	// command is attached to every event once set.
	command   string
	commandMu sync.RWMutex
)

// console is where Init and InitWithFile send human-readable output.
var (
	console      io.Writer = os.Stderr
	consoleColor bool      = true
)

// LoggingConfig controls the optional diagnostic log file.
// Mirrors config.LoggingConfig without importing it.
type LoggingConfig struct {
	FileEnabled bool
	MaxSizeMB   int
	MaxAgeDays  int
	MaxBackups  int
}

// GetMaxSizeMB returns the max size in MB, defaulting to 10 if not set.
func (c *LoggingConfig) GetMaxSizeMB() int {
	if c.MaxSizeMB <= 0 {
		return 10
	}
	return c.MaxSizeMB
}

// GetMaxAgeDays returns the max age in days, defaulting to 7 if not set.
func (c *LoggingConfig) GetMaxAgeDays() int {
	if c.MaxAgeDays <= 0 {
		return 7
	}
	return c.MaxAgeDays
}

// GetMaxBackups returns the max backups, defaulting to 3 if not set.
func (c *LoggingConfig) GetMaxBackups() int {
	if c.MaxBackups <= 0 {
		return 3
	}
	return c.MaxBackups
}

// SetCommand records the running command name on subsequent events.
// Pass "" to clear.
func SetCommand(name string) {
	commandMu.Lock()
	defer commandMu.Unlock()
	command = name
}

func withCommand(event *zerolog.Event) *zerolog.Event {
	commandMu.RLock()
	name := command
	commandMu.RUnlock()
	if name != "" {
		event = event.Str("command", name)
	}
	return event
}

// SetConsole redirects console output for subsequent Init calls. color is
// typically whether out is a terminal.
func SetConsole(out io.Writer, color bool) {
	console = out
	consoleColor = color
}

func consoleWriter() zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        console,
		NoColor:    !consoleColor,
		TimeFormat: time.RFC3339,
	}
}

func levelFor(debug bool) zerolog.Level {
	if debug {
		return zerolog.DebugLevel
	}
	return zerolog.WarnLevel
}

// Init sets up console-only diagnostics, on stderr unless SetConsole says
// otherwise. Without debug only warnings and errors are shown.
func Init(debug bool) {
	Log = zerolog.New(consoleWriter()).
		Level(levelFor(debug)).
		With().
		Timestamp().
		Logger()
}

// InitWithFile adds a rotating JSON file under logsDir to the console output.
// It behaves like Init when logsDir is empty or cfg disables the file.
func InitWithFile(debug bool, logsDir string, cfg *LoggingConfig) error {
	if logsDir == "" || cfg == nil || !cfg.FileEnabled {
		Init(debug)
		return nil
	}

	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	fileWriter = &lumberjack.Logger{
		Filename:   filepath.Join(logsDir, LogFileName),
		MaxSize:    cfg.GetMaxSizeMB(),
		MaxAge:     cfg.GetMaxAgeDays(),
		MaxBackups: cfg.GetMaxBackups(),
		LocalTime:  true,
	}

	// The file always records debug events; the console keeps the flag's level.
	Log = zerolog.New(zerolog.MultiLevelWriter(
		zerolog.LevelWriterAdapter{Writer: fileWriter},
		levelGate{w: consoleWriter(), min: levelFor(debug)},
	)).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Logger()

	return nil
}

// levelGate drops events below min before they reach the console.
type levelGate struct {
	w   io.Writer
	min zerolog.Level
}

func (g levelGate) Write(p []byte) (int, error) {
	return g.w.Write(p)
}

func (g levelGate) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level < g.min {
		return len(p), nil
	}
	return g.w.Write(p)
}

// CloseFileWriter closes the diagnostic file, if any.
// Call this on program shutdown.
func CloseFileWriter() error {
	if fileWriter != nil {
		err := fileWriter.Close()
		fileWriter = nil
		return err
	}
	return nil
}

// GetLogFilePath returns the diagnostic file path, or "" when file logging is off.
func GetLogFilePath() string {
	if fileWriter != nil {
		return fileWriter.Filename
	}
	return ""
}

// Debug starts a debug event.
func Debug() *zerolog.Event { return withCommand(Log.Debug()) }

// Info starts an info event.
func Info() *zerolog.Event { return withCommand(Log.Info()) }

// Warn starts a warn event.
func Warn() *zerolog.Event { return withCommand(Log.Warn()) }

// Error starts an error event.
func Error() *zerolog.Event { return withCommand(Log.Error()) }

// WithField returns a logger with an additional field, plus the command
// field when one is set.
func WithField(key string, value interface{}) zerolog.Logger {
	ctx := Log.With().Interface(key, value)
	commandMu.RLock()
	if command != "" {
		ctx = ctx.Str("command", command)
	}
	commandMu.RUnlock()
	return ctx.Logger()
}
