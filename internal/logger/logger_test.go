package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogLevels(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{
			level:    "error",
			expected: []string{"ERROR"},
			excluded: []string{"WARN", "INFO", "DEBUG"},
		},
		{
			level:    "warn",
			expected: []string{"ERROR", "WARN"},
			excluded: []string{"INFO", "DEBUG"},
		},
		{
			level:    "info",
			expected: []string{"ERROR", "WARN", "INFO"},
			excluded: []string{"DEBUG"},
		},
		{
			level:    "debug",
			expected: []string{"ERROR", "WARN", "INFO", "DEBUG"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := filepath.Join(tempDir, tt.level+".log")

			opts := DefaultOptions(tt.level, logFile)
			opts.Console = false
			opts.Compress = false
			if err := Init(opts); err != nil {
				t.Fatalf("failed to init logger: %v", err)
			}

			Debug("debug message")
			Info("info message")
			Warn("warn message")
			Error("error message")
			Sync()

			content, err := os.ReadFile(logFile)
			if err != nil {
				t.Fatalf("failed to read log file: %v", err)
			}
			logContent := string(content)

			for _, exp := range tt.expected {
				if !strings.Contains(logContent, exp) {
					t.Errorf("expected %s in log output", exp)
				}
			}
			for _, exc := range tt.excluded {
				if strings.Contains(logContent, exc) {
					t.Errorf("unexpected %s in log output for level %s", exc, tt.level)
				}
			}
		})
	}
}

func TestCallerPointsAtCallSite(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "caller.log")
	opts := DefaultOptions("info", logFile)
	opts.Console = false
	if err := Init(opts); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}

	Info("from helper")
	Sugar.Infof("from sugar %d", 1)
	Sync()

	content, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), content)
	}
	for _, line := range lines {
		if !strings.Contains(line, "logger_test.go") {
			t.Errorf("caller should be the test file: %s", line)
		}
	}
}

func TestInvalidLevel(t *testing.T) {
	if err := Init(Options{Level: "loud"}); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestNoOutputsIsNop(t *testing.T) {
	l, err := New(Options{Level: "debug"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if l.Core().Enabled(0) {
		t.Error("logger without outputs should discard everything")
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions("warn", "/tmp/polyspin.log")

	if opts.FilePath != "/tmp/polyspin.log" {
		t.Errorf("expected path /tmp/polyspin.log, got %s", opts.FilePath)
	}
	if opts.Level != "warn" {
		t.Errorf("expected level warn, got %s", opts.Level)
	}
	if !opts.Console {
		t.Error("expected console output by default")
	}
	if opts.MaxSizeMB != 10 || opts.MaxBackups != 3 || opts.MaxAgeDays != 7 {
		t.Errorf("unexpected rotation settings: %+v", opts)
	}
}
