package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]LogLevel{
		"debug":   DebugLevel,
		" WARN ":  WarnLevel,
		"error":   ErrorLevel,
		"":        InfoLevel,
		"verbose": InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestConfigureWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: WarnLevel, Output: &buf})
	t.Cleanup(func() { Configure(Config{Level: InfoLevel}) })

	Info().Msg("dropped")
	Warn().Str("component", "test").Msg("kept")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	if len(lines) != 1 {
		t.Fatalf("got %d log lines, want 1: %s", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal(lines[0], &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["message"] != "kept" || entry["component"] != "test" {
		t.Fatalf("unexpected entry %v", entry)
	}
}

func TestCtxFallsBackToGlobal(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: InfoLevel, Output: &buf})
	t.Cleanup(func() { Configure(Config{Level: InfoLevel}) })

	Ctx(context.Background()).Info().Msg("global")
	if !bytes.Contains(buf.Bytes(), []byte("global")) {
		t.Fatalf("expected global logger output, got %q", buf.String())
	}

	var reqBuf bytes.Buffer
	reqLogger := zerolog.New(&reqBuf)
	ctx := reqLogger.WithContext(context.Background())
	Ctx(ctx).Info().Msg("scoped")
	if !bytes.Contains(reqBuf.Bytes(), []byte("scoped")) {
		t.Fatalf("expected request logger output, got %q", reqBuf.String())
	}
}
