package logger

import (
	"testing"

	"github.com/Adda-Baaj/thikana/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.WarnLevel,
		"bogus":   zapcore.WarnLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v want %v", in, got, want)
		}
	}
}

func TestInitSetsPackageLogger(t *testing.T) {
	t.Cleanup(func() { S = nil })

	sugar, err := Init(&config.Config{AppName: "thikana", LogLevel: "error"})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if sugar == nil || S != sugar {
		t.Fatalf("expected package logger to be set")
	}
	if sugar.Desugar().Core().Enabled(zapcore.WarnLevel) {
		t.Fatalf("warn should be disabled at error level")
	}
}

func TestNewWrapsSugaredLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := New(zap.New(core).Sugar())

	log.WarnObj("search failed", "search_error", map[string]any{"kind": "parse"})

	entries := logs.FilterMessage("search failed").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Level != zapcore.WarnLevel {
		t.Fatalf("level = %v want warn", entries[0].Level)
	}
	if _, ok := entries[0].ContextMap()["search_error"]; !ok {
		t.Fatalf("missing search_error field: %v", entries[0].ContextMap())
	}
}

func TestNewNilReturnsNop(t *testing.T) {
	if _, ok := New(nil).(NopLogger); !ok {
		t.Fatalf("expected NopLogger for nil input")
	}
	if _, ok := Ensure(nil).(NopLogger); !ok {
		t.Fatalf("expected NopLogger from Ensure(nil)")
	}
}

func TestPackageHelpersWriteToInitializedLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	S = zap.New(core).Sugar()
	t.Cleanup(func() { S = nil })

	InfoObj("thikana starting", "config", map[string]any{"app": "thikana"})
	WarnObj("missing -q flag", "args", []string{"x"})
	DebugObj("search requested", "query", "x")
	ErrorObj("failed", "error", "boom")

	want := []zapcore.Level{zapcore.InfoLevel, zapcore.WarnLevel, zapcore.DebugLevel, zapcore.ErrorLevel}
	entries := logs.All()
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i, e := range entries {
		if e.Level != want[i] {
			t.Errorf("entry %d level = %v want %v", i, e.Level, want[i])
		}
	}
}

func TestPackageHelpersNoopBeforeInit(t *testing.T) {
	S = nil
	InfoObj("ignored", "k", 1)
	WarnObj("ignored", "k", 1)
}
