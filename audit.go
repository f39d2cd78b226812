// Copyright 2026 The ScreenPilot Authors
//
// Audit logging for automation calls

package screenpilot

import (
	"encoding/json"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
)

// AuditLogger writes one structured JSON record per automation call:
// endpoint, redacted parameters, outcome, and duration. Disabled (and
// harmless) when constructed with an empty path.
type AuditLogger struct {
	logger  *slog.Logger
	file    *os.File
	runID   string
	enabled bool
	mu      sync.RWMutex
}

// redactedKeys lists parameter keys whose values never reach the audit log.
var redactedKeys = map[string]bool{
	"password":    true,
	"secret":      true,
	"token":       true,
	"api_key":     true,
	"apikey":      true,
	"credential":  true,
	"credentials": true,
	"auth":        true,
	"cookie":      true,
	"passphrase":  true,
}

// NewAuditLogger creates an audit logger appending to filePath. An empty
// path disables audit logging. Returns an error if the file cannot be
// opened.
func NewAuditLogger(filePath string) (*AuditLogger, error) {
	if filePath == "" {
		return &AuditLogger{enabled: false}, nil
	}

	file, err := os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}

	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	return &AuditLogger{
		logger:  slog.New(handler),
		file:    file,
		enabled: true,
	}, nil
}

// SetRunID stamps every subsequent record with a workflow correlation ID.
func (a *AuditLogger) SetRunID(id string) {
	if a == nil {
		return
	}
	a.mu.Lock()
	a.runID = id
	a.mu.Unlock()
}

// Close disables the logger and closes the audit log file if it is open.
// Safe to call multiple times; calls logged after Close are dropped.
func (a *AuditLogger) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.enabled = false
	a.logger = nil
	if a.file != nil {
		err := a.file.Close()
		a.file = nil
		return err
	}
	return nil
}

// IsEnabled returns true if audit logging is enabled.
func (a *AuditLogger) IsEnabled() bool {
	if a == nil {
		return false
	}
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// LogCall logs one automation call with redacted parameters.
func (a *AuditLogger) LogCall(endpoint string, params any, status string, duration time.Duration) {
	if !a.IsEnabled() {
		return
	}

	a.mu.RLock()
	logger := a.logger
	runID := a.runID
	a.mu.RUnlock()

	if logger == nil {
		return
	}

	attrs := []any{
		slog.String("endpoint", endpoint),
		slog.String("params", redactParams(params)),
		slog.String("status", status),
		slog.Float64("duration_seconds", duration.Seconds()),
		slog.Time("timestamp", time.Now().UTC()),
	}
	if runID != "" {
		attrs = append(attrs, slog.String("run_id", runID))
	}
	logger.Info("automation_call", attrs...)
}

// redactParams renders call parameters as JSON with sensitive values
// removed.
func redactParams(params any) string {
	if params == nil {
		return "{}"
	}

	raw, err := json.Marshal(params)
	if err != nil {
		return "[unserializable]"
	}

	var parsed map[string]any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "[unparseable]"
	}

	redactMapValues(parsed)

	redacted, err := json.Marshal(parsed)
	if err != nil {
		return "[error]"
	}
	return string(redacted)
}

// redactMapValues recursively redacts sensitive values in a map.
func redactMapValues(m map[string]any) {
	for key, value := range m {
		lowerKey := strings.ToLower(key)

		redact := redactedKeys[lowerKey]
		if !redact {
			for redactKey := range redactedKeys {
				if strings.Contains(lowerKey, redactKey) {
					redact = true
					break
				}
			}
		}
		if redact {
			m[key] = "[REDACTED]"
			continue
		}

		if nested, ok := value.(map[string]any); ok {
			redactMapValues(nested)
		}
		if arr, ok := value.([]any); ok {
			for _, item := range arr {
				if nestedMap, ok := item.(map[string]any); ok {
					redactMapValues(nestedMap)
				}
			}
		}
	}
}
