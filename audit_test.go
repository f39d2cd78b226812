// Copyright 2026 The ScreenPilot Authors
//
// Audit logger unit tests

package screenpilot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNewAuditLogger_Disabled(t *testing.T) {
	logger, err := NewAuditLogger("")
	if err != nil {
		t.Fatalf("NewAuditLogger('') error = %v", err)
	}
	if logger.IsEnabled() {
		t.Error("Expected logger to be disabled when no file path provided")
	}
}

func TestNewAuditLogger_Enabled(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "audit.log")

	logger, err := NewAuditLogger(logPath)
	if err != nil {
		t.Fatalf("NewAuditLogger error = %v", err)
	}
	defer logger.Close()

	if !logger.IsEnabled() {
		t.Error("Expected logger to be enabled")
	}
}

func TestNewAuditLogger_InvalidPath(t *testing.T) {
	_, err := NewAuditLogger("/nonexistent/directory/that/doesnt/exist/audit.log")
	if err == nil {
		t.Error("Expected error for invalid path")
	}
}

func TestAuditLogger_LogCall(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "audit.log")

	logger, err := NewAuditLogger(logPath)
	if err != nil {
		t.Fatalf("NewAuditLogger error = %v", err)
	}
	logger.SetRunID("run-123")

	logger.LogCall("/mouse/click", mousePositionRequest{X: 100, Y: 200}, "ok", 50*time.Millisecond)
	logger.Close()

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile error = %v", err)
	}

	logStr := string(content)
	if !strings.Contains(logStr, `"endpoint":"/mouse/click"`) {
		t.Errorf("Log should contain the endpoint, got: %s", logStr)
	}
	if !strings.Contains(logStr, `"status":"ok"`) {
		t.Errorf("Log should contain the status, got: %s", logStr)
	}
	if !strings.Contains(logStr, `"msg":"automation_call"`) {
		t.Errorf("Log should contain the message type, got: %s", logStr)
	}
	if !strings.Contains(logStr, `"run_id":"run-123"`) {
		t.Errorf("Log should contain the run ID, got: %s", logStr)
	}
}

func TestAuditLogger_Disabled_NoPanic(t *testing.T) {
	logger, err := NewAuditLogger("")
	if err != nil {
		t.Fatalf("NewAuditLogger error = %v", err)
	}

	logger.LogCall("/mouse/click", nil, "ok", 50*time.Millisecond)
}

func TestAuditLogger_Nil(t *testing.T) {
	var logger *AuditLogger
	if logger.IsEnabled() {
		t.Error("nil logger should report disabled")
	}
	logger.SetRunID("ignored")
}

func TestAuditLogger_CloseIdempotent(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "audit.log")
	logger, err := NewAuditLogger(logPath)
	if err != nil {
		t.Fatalf("NewAuditLogger error = %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("first Close error = %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("second Close error = %v", err)
	}
}

func TestAuditLogger_LogCallAfterClose(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "audit.log")
	logger, err := NewAuditLogger(logPath)
	if err != nil {
		t.Fatalf("NewAuditLogger error = %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close error = %v", err)
	}
	if logger.IsEnabled() {
		t.Error("logger should report disabled after Close")
	}

	logger.LogCall("/mouse/click", nil, "ok", time.Millisecond)

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile error = %v", err)
	}
	if len(content) != 0 {
		t.Errorf("call logged after Close: %s", content)
	}
}

func TestRedactParams_SensitiveKeys(t *testing.T) {
	params := map[string]any{
		"url":     "https://example.com",
		"api_key": "super-secret",
		"nested":  map[string]any{"password": "hunter2", "x": 1},
	}

	redacted := redactParams(params)
	if strings.Contains(redacted, "super-secret") {
		t.Errorf("api_key value leaked: %s", redacted)
	}
	if strings.Contains(redacted, "hunter2") {
		t.Errorf("nested password leaked: %s", redacted)
	}
	if !strings.Contains(redacted, "https://example.com") {
		t.Errorf("innocent value should survive: %s", redacted)
	}
	if !strings.Contains(redacted, "[REDACTED]") {
		t.Errorf("expected redaction marker: %s", redacted)
	}
}

func TestRedactParams_Nil(t *testing.T) {
	if got := redactParams(nil); got != "{}" {
		t.Errorf("redactParams(nil) = %q, want {}", got)
	}
}

func TestRedactParams_NonObject(t *testing.T) {
	// A scalar payload cannot be redacted key-by-key.
	if got := redactParams(42); got != "[unparseable]" {
		t.Errorf("redactParams(42) = %q, want [unparseable]", got)
	}
}
