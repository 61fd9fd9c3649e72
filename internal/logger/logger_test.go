package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWrapWritesEventAndFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := Wrap(zap.New(core))

	log.WarnObj("fetch failed", "fetch_error", map[string]any{
		"url":    "http://example.com/top",
		"status": 500,
	})

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Level != zapcore.WarnLevel {
		t.Fatalf("level = %v, want warn", e.Level)
	}
	ctx := e.ContextMap()
	if ctx["event"] != "fetch_error" {
		t.Fatalf("event = %v, want fetch_error", ctx["event"])
	}
	if ctx["url"] != "http://example.com/top" {
		t.Fatalf("url = %v", ctx["url"])
	}
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{"", zapcore.InfoLevel, false},
		{"debug", zapcore.DebugLevel, false},
		{" WARN ", zapcore.WarnLevel, false},
		{"loud", zapcore.InfoLevel, true},
	}
	for _, c := range cases {
		got, err := parseLevel(c.in)
		if c.wantErr {
			if err == nil {
				t.Fatalf("parseLevel(%q): expected error", c.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("parseLevel(%q): unexpected error: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("parseLevel(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestWrapNilIsNop(t *testing.T) {
	if _, ok := Wrap(nil).(NopLogger); !ok {
		t.Fatal("Wrap(nil) should return NopLogger")
	}
}
