package log

import (
	"bytes"
	"strings"
	"testing"
)

// TestNewLogger tests level selection for the verbosity flags.
func TestNewLogger(t *testing.T) {
	t.Parallel()

	t.Run("default logs info but not debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, false, false)
		logger.Debug("debug message")
		logger.Info("info message")

		out := buf.String()
		if strings.Contains(out, "debug message") {
			t.Error("expected debug to be suppressed by default")
		}
		if !strings.Contains(out, "info message") {
			t.Error("expected info to be logged by default")
		}
	})

	t.Run("verbose logs debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, true, false)
		logger.Debug("debug message")

		if !strings.Contains(buf.String(), "debug message") {
			t.Error("expected debug to be logged with verbose")
		}
	})

	t.Run("quiet logs only errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, false, true)
		logger.Info("info message")
		logger.Warn("warn message")
		logger.Error("error message")

		out := buf.String()
		if strings.Contains(out, "info message") || strings.Contains(out, "warn message") {
			t.Error("expected info and warn to be suppressed with quiet")
		}
		if !strings.Contains(out, "error message") {
			t.Error("expected error to be logged with quiet")
		}
	})

	t.Run("quiet wins over verbose", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, true, true)
		logger.Info("info message")

		if strings.Contains(buf.String(), "info message") {
			t.Error("expected quiet to win over verbose")
		}
	})
}
