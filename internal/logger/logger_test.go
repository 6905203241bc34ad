package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestInit(t *testing.T) {
	Init(false)
	if Log.GetLevel() != zerolog.WarnLevel {
		t.Errorf("Init(false) level = %v, want warn", Log.GetLevel())
	}

	Init(true)
	if Log.GetLevel() != zerolog.DebugLevel {
		t.Errorf("Init(true) level = %v, want debug", Log.GetLevel())
	}
}

func TestLogFunctions(t *testing.T) {
	Init(true)

	if Debug() == nil {
		t.Error("Debug() should return non-nil event")
	}
	if Info() == nil {
		t.Error("Info() should return non-nil event")
	}
	if Warn() == nil {
		t.Error("Warn() should return non-nil event")
	}
	if Error() == nil {
		t.Error("Error() should return non-nil event")
	}
}

func TestSetCommand(t *testing.T) {
	var buf bytes.Buffer
	Log = zerolog.New(&buf)
	t.Cleanup(func() {
		SetCommand("")
		Log = zerolog.Nop()
	})

	SetCommand("emit")
	Info().Msg("with command")
	SetCommand("")
	Info().Msg("without command")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], `"command":"emit"`) {
		t.Errorf("first event should carry command field, got %s", lines[0])
	}
	if strings.Contains(lines[1], `"command"`) {
		t.Errorf("second event should not carry command field, got %s", lines[1])
	}
}

func TestLoggingConfigDefaults(t *testing.T) {
	cfg := &LoggingConfig{}
	if cfg.GetMaxSizeMB() != 10 {
		t.Errorf("GetMaxSizeMB should default to 10, got %d", cfg.GetMaxSizeMB())
	}
	if cfg.GetMaxAgeDays() != 7 {
		t.Errorf("GetMaxAgeDays should default to 7, got %d", cfg.GetMaxAgeDays())
	}
	if cfg.GetMaxBackups() != 3 {
		t.Errorf("GetMaxBackups should default to 3, got %d", cfg.GetMaxBackups())
	}

	cfg = &LoggingConfig{MaxSizeMB: 20, MaxAgeDays: 14, MaxBackups: 5}
	if cfg.GetMaxSizeMB() != 20 || cfg.GetMaxAgeDays() != 14 || cfg.GetMaxBackups() != 5 {
		t.Errorf("custom values not returned: %+v", cfg)
	}
}

func TestInitWithFile(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := &LoggingConfig{FileEnabled: true, MaxSizeMB: 1}

	if err := InitWithFile(false, tmpDir, cfg); err != nil {
		t.Fatalf("InitWithFile failed: %v", err)
	}

	expectedPath := filepath.Join(tmpDir, LogFileName)
	if got := GetLogFilePath(); got != expectedPath {
		t.Errorf("GetLogFilePath = %q, want %q", got, expectedPath)
	}

	// Debug events reach the file even though the console is at warn.
	Debug().Msg("debug detail for file")

	if err := CloseFileWriter(); err != nil {
		t.Errorf("CloseFileWriter failed: %v", err)
	}
	if GetLogFilePath() != "" {
		t.Error("GetLogFilePath should be empty after CloseFileWriter")
	}

	content, err := os.ReadFile(expectedPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), "debug detail for file") {
		t.Errorf("log file should contain the debug message, got %q", content)
	}
}

func TestInitWithFileDisabled(t *testing.T) {
	fileWriter = nil

	if err := InitWithFile(false, t.TempDir(), &LoggingConfig{FileEnabled: false}); err != nil {
		t.Fatalf("InitWithFile with file logging disabled should not fail: %v", err)
	}
	if GetLogFilePath() != "" {
		t.Error("GetLogFilePath should return empty when file logging is disabled")
	}
}

func TestInitWithFileEmptyDir(t *testing.T) {
	fileWriter = nil

	if err := InitWithFile(true, "", &LoggingConfig{FileEnabled: true}); err != nil {
		t.Fatalf("InitWithFile with empty dir should not fail: %v", err)
	}
	if GetLogFilePath() != "" {
		t.Error("GetLogFilePath should return empty when logs dir is empty")
	}
}

func TestCloseFileWriter_NoFile(t *testing.T) {
	fileWriter = nil
	if err := CloseFileWriter(); err != nil {
		t.Errorf("CloseFileWriter without a file should be a no-op, got %v", err)
	}
}

func TestLevelGate(t *testing.T) {
	var buf bytes.Buffer
	g := levelGate{w: &buf, min: zerolog.WarnLevel}

	if _, err := g.WriteLevel(zerolog.InfoLevel, []byte("info\n")); err != nil {
		t.Fatal(err)
	}
	if _, err := g.WriteLevel(zerolog.ErrorLevel, []byte("error\n")); err != nil {
		t.Fatal(err)
	}

	if buf.String() != "error\n" {
		t.Errorf("levelGate output = %q, want only the error line", buf.String())
	}
}

func TestSetConsole(t *testing.T) {
	var buf bytes.Buffer
	SetConsole(&buf, false)
	t.Cleanup(func() {
		SetConsole(os.Stderr, true)
		Log = zerolog.Nop()
	})

	Init(false)
	Debug().Msg("hidden below warn")
	Warn().Msg("visible warning")

	out := buf.String()
	if strings.Contains(out, "hidden below warn") {
		t.Errorf("debug event should be filtered at warn, got %q", out)
	}
	if !strings.Contains(out, "visible warning") {
		t.Errorf("console should receive the warning, got %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("console output should be uncolored, got %q", out)
	}
}

func TestWithField(t *testing.T) {
	var buf bytes.Buffer
	Log = zerolog.New(&buf)
	t.Cleanup(func() {
		SetCommand("")
		Log = zerolog.Nop()
	})

	SetCommand("emit")
	l := WithField("backend", "zerolog")
	l.Info().Msg("emitting")

	out := buf.String()
	if !strings.Contains(out, `"backend":"zerolog"`) {
		t.Errorf("event should carry the field, got %s", out)
	}
	if !strings.Contains(out, `"command":"emit"`) {
		t.Errorf("event should carry the command, got %s", out)
	}
}
