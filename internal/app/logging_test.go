package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger(t *testing.T) {
	logger, level, err := NewLogger(LogConfig{Level: "warn", Format: "console"})
	if err != nil {
		t.Fatalf("NewLogger() unexpected error: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if logger.Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("info enabled at warn level")
	}
	if err := SetLevel(level, "debug"); err != nil {
		t.Fatalf("SetLevel() unexpected error: %v", err)
	}
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("level change not applied")
	}
	if err := SetLevel(level, "loud"); err == nil {
		t.Fatalf("SetLevel() expected error")
	}

	if _, _, err := NewLogger(LogConfig{Level: "loud", Format: "json"}); err == nil {
		t.Fatalf("NewLogger() expected error for bad level")
	}
}

func TestLogRequests(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	handler := logRequests(zap.New(core), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/pot", nil))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d log entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["path"] != "/pot" || fields["status"] != int64(http.StatusTeapot) || fields["bytes"] != int64(15) {
		t.Fatalf("logged fields = %v", fields)
	}
}
