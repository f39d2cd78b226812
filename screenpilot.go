// Copyright 2026 The ScreenPilot Authors

// Package screenpilot is a Go client for the ScreenPilot desktop automation
// server: a background process that performs mouse and keyboard input, window
// and application control, screenshot capture, and UI automation tree
// inspection on behalf of HTTP callers.
//
// A Client manages the server lifecycle (spawn a local server binary, or
// attach to one already running) and exposes the automation operations as
// category surfaces: Mouse, Keyboard, Chrome, Screenshot, System, and
// Automation. All calls are plain HTTP POSTs with JSON bodies, authenticated
// with the X-API-Key header. Calls are never retried; one failure surfaces
// one error.
package screenpilot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

const (
	// DefaultRequestTimeout bounds each individual automation call.
	DefaultRequestTimeout = 30 * time.Second

	// DefaultStartupTimeout bounds StartServer's readiness wait.
	DefaultStartupTimeout = 30 * time.Second

	// apiPrefix is the path prefix shared by all server endpoints.
	apiPrefix = "/api/v1"

	// maxResponseBytes caps how much of a response body is read. Automation
	// trees and screenshots are large; anything beyond this is a server bug.
	maxResponseBytes = 64 << 20
)

// ClientConfig holds the configuration for a Client.
type ClientConfig struct {
	// APIKey authenticates every call to the automation server. Required.
	APIKey string

	// ServerAddr, when set (e.g. "127.0.0.1:8817"), makes StartServer attach
	// to an already running server instead of spawning one.
	ServerAddr string

	// ServerPath is the automation server binary spawned by StartServer when
	// ServerAddr is empty.
	ServerPath string

	// AuditLogPath enables JSON audit logging of every call when non-empty.
	AuditLogPath string

	// HTTPClient overrides the HTTP client used for server calls.
	HTTPClient *http.Client

	RequestTimeout time.Duration
	StartupTimeout time.Duration

	// Debug forwards server process output to the process log.
	Debug bool
}

// DefaultClientConfig returns a ClientConfig with default timeouts for the
// given API key.
func DefaultClientConfig(apiKey string) ClientConfig {
	return ClientConfig{
		APIKey:         apiKey,
		RequestTimeout: DefaultRequestTimeout,
		StartupTimeout: DefaultStartupTimeout,
	}
}

// Client is a client for the ScreenPilot automation server.
//
// A Client is safe for concurrent use, though automation workflows are
// typically strictly sequential: the effect of an input call is only
// observable after the desktop has caught up.
type Client struct {
	httpClient *http.Client
	audit      *AuditLogger
	metrics    *CallMetrics
	proc       *serverProcess
	cfg        ClientConfig
	baseURL    string
	mu         sync.Mutex

	// Category surfaces. Assigned once by NewClient, read-only afterwards.
	Mouse      *MouseAPI
	Keyboard   *KeyboardAPI
	Chrome     *ChromeAPI
	Screenshot *ScreenshotAPI
	System     *SystemAPI
	Automation *AutomationAPI
}

// NewClient creates a client for the automation server. The API key is
// required; no call is ever attempted without it.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.StartupTimeout <= 0 {
		cfg.StartupTimeout = DefaultStartupTimeout
	}

	audit, err := NewAuditLogger(cfg.AuditLogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	c := &Client{
		cfg:        cfg,
		httpClient: httpClient,
		audit:      audit,
		metrics:    NewCallMetrics(),
	}
	c.Mouse = &MouseAPI{c: c}
	c.Keyboard = &KeyboardAPI{c: c}
	c.Chrome = &ChromeAPI{c: c}
	c.Screenshot = &ScreenshotAPI{c: c}
	c.System = &SystemAPI{c: c}
	c.Automation = &AutomationAPI{c: c}
	return c, nil
}

// Stats returns a snapshot of per-endpoint call metrics.
func (c *Client) Stats() []CallStats {
	return c.metrics.Snapshot()
}

// WriteStats writes the per-endpoint call metrics to w, one endpoint per
// line.
func (c *Client) WriteStats(w io.Writer) error {
	return c.metrics.WriteText(w)
}

// SetAuditRunID stamps subsequent audit records with a workflow correlation
// ID. A no-op when audit logging is disabled.
func (c *Client) SetAuditRunID(id string) {
	c.audit.SetRunID(id)
}

// Close releases client resources (the audit log, and the server process if
// one was spawned). Safe to call multiple times.
func (c *Client) Close() error {
	stopErr := c.StopServer()
	if err := c.audit.Close(); err != nil {
		return err
	}
	return stopErr
}

// currentBaseURL returns the base URL of the reachable server, or "" if
// StartServer has not succeeded yet.
func (c *Client) currentBaseURL() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.baseURL
}

// envelope is the common wrapper of all server responses. Success is a
// pointer so that responses without the field (e.g. health) are not treated
// as failures.
type envelope struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
}

// call performs one automation call: POST params as JSON to endpoint, decode
// the response into out (which may be nil). Each call is bounded by the
// configured request timeout and recorded in metrics and the audit log.
func (c *Client) call(ctx context.Context, endpoint string, params, out any) error {
	base := c.currentBaseURL()
	if base == "" {
		return ErrServerNotRunning
	}

	start := time.Now()
	err := c.doHTTP(ctx, base, endpoint, params, out)
	duration := time.Since(start)

	status := "ok"
	if err != nil {
		status = "error"
	}
	c.metrics.RecordCall(endpoint, status, duration)
	c.audit.LogCall(endpoint, params, status, duration)
	return err
}

func (c *Client) doHTTP(ctx context.Context, base, endpoint string, params, out any) error {
	body := []byte("{}")
	if params != nil {
		var err error
		body, err = json.Marshal(params)
		if err != nil {
			return fmt.Errorf("failed to encode request for %s: %w", endpoint, err)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.RequestTimeout)
	defer cancel()

	url := base + apiPrefix + endpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call to %s failed: %w", endpoint, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("failed to read response from %s: %w", endpoint, err)
	}

	var env envelope
	// A body that is not valid JSON is reported via the status code path
	// below; the envelope stays zero.
	_ = json.Unmarshal(respBody, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := env.Message
		if msg == "" {
			msg = strings.TrimSpace(string(respBody))
		}
		return &APIError{StatusCode: resp.StatusCode, Endpoint: endpoint, Message: msg}
	}
	if env.Success != nil && !*env.Success {
		return &APIError{StatusCode: resp.StatusCode, Endpoint: endpoint, Message: env.Message}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode response from %s: %w", endpoint, err)
		}
	}
	return nil
}
