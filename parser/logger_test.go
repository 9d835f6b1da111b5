package parser

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNopLogger(t *testing.T) {
	t.Run("implements Logger interface", func(t *testing.T) {
		var _ Logger = NopLogger{}
	})

	t.Run("methods do nothing", func(t *testing.T) {
		l := NopLogger{}
		// Should not panic
		l.Debug("test message", "key", "value")
		l.Info("test message", "key", "value")
		l.Warn("test message", "key", "value")
		l.Error("test message", "key", "value")
	})

	t.Run("With returns same NopLogger", func(t *testing.T) {
		l := NopLogger{}
		l2 := l.With("key", "value")
		_, ok := l2.(NopLogger)
		if !ok {
			t.Error("With should return NopLogger")
		}
	})
}

func TestSlogAdapter(t *testing.T) {
	newBufAdapter := func() (*bytes.Buffer, *SlogAdapter) {
		var buf bytes.Buffer
		handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
		return &buf, NewSlogAdapter(slog.New(handler))
	}

	t.Run("implements Logger interface", func(t *testing.T) {
		var _ Logger = (*SlogAdapter)(nil)
	})

	t.Run("NewSlogAdapter with nil uses default", func(t *testing.T) {
		adapter := NewSlogAdapter(nil)
		if adapter.logger == nil {
			t.Error("adapter.logger should not be nil")
		}
	})

	t.Run("Debug logs at debug level", func(t *testing.T) {
		buf, adapter := newBufAdapter()
		adapter.Debug("test debug", "foo", "bar")
		output := buf.String()
		if !strings.Contains(output, "DEBUG") {
			t.Errorf("expected DEBUG level, got: %s", output)
		}
		if !strings.Contains(output, "foo=bar") {
			t.Errorf("expected foo=bar attribute, got: %s", output)
		}
	})

	t.Run("Info logs at info level", func(t *testing.T) {
		buf, adapter := newBufAdapter()
		adapter.Info("test info", "count", 42)
		output := buf.String()
		if !strings.Contains(output, "INFO") {
			t.Errorf("expected INFO level, got: %s", output)
		}
		if !strings.Contains(output, "count=42") {
			t.Errorf("expected count=42 attribute, got: %s", output)
		}
	})

	t.Run("Warn and Error log at their levels", func(t *testing.T) {
		buf, adapter := newBufAdapter()
		adapter.Warn("test warn", "problem", "something")
		adapter.Error("test error", "err", "failed")
		output := buf.String()
		if !strings.Contains(output, "WARN") {
			t.Errorf("expected WARN level, got: %s", output)
		}
		if !strings.Contains(output, "ERROR") {
			t.Errorf("expected ERROR level, got: %s", output)
		}
	})

	t.Run("With adds attributes", func(t *testing.T) {
		buf, adapter := newBufAdapter()
		withAdapter := adapter.With("component", "parser")
		withAdapter.Debug("test with", "extra", "data")
		output := buf.String()
		if !strings.Contains(output, "component=parser") {
			t.Errorf("expected component=parser attribute, got: %s", output)
		}
		if !strings.Contains(output, "extra=data") {
			t.Errorf("expected extra=data attribute, got: %s", output)
		}
	})

	t.Run("parser uses configured logger", func(t *testing.T) {
		buf, adapter := newBufAdapter()
		p := New()
		p.Logger = adapter
		_, err := p.ParseBytes([]byte("openapi: 3.0.0\npaths: {}\n"))
		if err != nil {
			t.Fatalf("unexpected parse error: %v", err)
		}
		if !strings.Contains(buf.String(), "DEBUG") {
			t.Errorf("expected debug output from parse, got: %s", buf.String())
		}
	})
}
