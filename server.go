// Copyright 2026 The ScreenPilot Authors
//
// Automation server process lifecycle

package screenpilot

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// portFilePollInterval is how often StartServer re-reads the port file while
// waiting for the spawned server to come up.
const portFilePollInterval = 100 * time.Millisecond

// serverProcess is a spawned automation server.
type serverProcess struct {
	cmd      *exec.Cmd
	drain    *errgroup.Group
	portFile string
}

// StartServer makes the automation server reachable. When ServerAddr is
// configured it attaches to the running server at that address; otherwise it
// spawns the configured server binary with the API key and a fresh port
// file, then waits for the port file and a passing health check.
//
// StartServer is idempotent: once the server is reachable, further calls
// return nil without doing anything.
func (c *Client) StartServer(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.baseURL != "" {
		return nil
	}

	if c.cfg.ServerAddr != "" {
		base := "http://" + c.cfg.ServerAddr
		if err := c.waitForHealth(ctx, base); err != nil {
			return fmt.Errorf("automation server at %s is not healthy: %w", c.cfg.ServerAddr, err)
		}
		c.baseURL = base
		return nil
	}

	if c.cfg.ServerPath == "" {
		return ErrServerPathNotSet
	}

	portFile := filepath.Join(os.TempDir(), fmt.Sprintf("screenpilot-%s.port", uuid.NewString()))
	cmd := exec.Command(c.cfg.ServerPath, "--api-key", c.cfg.APIKey, "--port-file", portFile)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to open server stdout: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("failed to open server stderr: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start automation server %q: %w", c.cfg.ServerPath, err)
	}

	proc := &serverProcess{cmd: cmd, portFile: portFile}
	proc.drain = &errgroup.Group{}
	proc.drain.Go(func() error { return c.drainOutput("server stdout", stdout) })
	proc.drain.Go(func() error { return c.drainOutput("server stderr", stderr) })

	port, err := waitForPortFile(ctx, portFile, c.cfg.StartupTimeout, portFilePollInterval)
	if err != nil {
		killServer(proc)
		return fmt.Errorf("automation server did not report a port: %w", err)
	}

	base := fmt.Sprintf("http://127.0.0.1:%d", port)
	if err := c.waitForHealth(ctx, base); err != nil {
		killServer(proc)
		return fmt.Errorf("automation server on port %d never became healthy: %w", port, err)
	}

	c.proc = proc
	c.baseURL = base
	return nil
}

// StopServer stops a spawned automation server, or detaches from an attached
// one. Best effort and idempotent: stopping an already stopped (or never
// started) server returns nil.
func (c *Client) StopServer() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	proc := c.proc
	c.proc = nil
	c.baseURL = ""
	if proc == nil {
		return nil
	}
	return killServer(proc)
}

// killServer terminates the server process and cleans up its port file.
func killServer(proc *serverProcess) error {
	if proc.cmd.Process != nil {
		// Kill rather than Interrupt: the server runs headless and
		// os.Interrupt is not deliverable on Windows.
		_ = proc.cmd.Process.Kill()
	}
	// Drain before Wait: Wait closes the pipes the drain goroutines read
	// from, and must not run until those reads have finished.
	_ = proc.drain.Wait()
	err := proc.cmd.Wait()
	_ = os.Remove(proc.portFile)
	if err != nil && !isExpectedExit(err) {
		return fmt.Errorf("automation server exited abnormally: %w", err)
	}
	return nil
}

// isExpectedExit reports whether a Wait error is the normal consequence of
// killing the process. Any ExitError after our own Kill is expected.
func isExpectedExit(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}

// drainOutput forwards server process output to the log when Debug is set,
// and discards it otherwise. The pipe must be drained either way so the
// child never blocks on a full pipe.
func (c *Client) drainOutput(name string, r io.Reader) error {
	if !c.cfg.Debug {
		_, err := io.Copy(io.Discard, r)
		return err
	}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		log.Printf("[%s] %s", name, scanner.Text())
	}
	return scanner.Err()
}

// waitForPortFile polls until the port file exists and contains a valid port
// number, the timeout elapses, or ctx is cancelled.
func waitForPortFile(ctx context.Context, path string, timeout, interval time.Duration) (int, error) {
	deadline := time.Now().Add(timeout)
	for {
		data, err := os.ReadFile(path)
		if err == nil {
			text := strings.TrimSpace(string(data))
			if text != "" {
				port, convErr := strconv.Atoi(text)
				if convErr != nil || port <= 0 || port > 65535 {
					return 0, fmt.Errorf("port file %s contains invalid port %q", path, text)
				}
				return port, nil
			}
		} else if !os.IsNotExist(err) {
			return 0, fmt.Errorf("failed to read port file %s: %w", path, err)
		}

		if time.Now().After(deadline) {
			return 0, fmt.Errorf("timed out after %s waiting for port file %s", timeout, path)
		}
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(interval):
		}
	}
}

// waitForHealth polls the server health endpoint until it answers 200, the
// startup timeout elapses, or ctx is cancelled.
func (c *Client) waitForHealth(ctx context.Context, base string) error {
	deadline := time.Now().Add(c.cfg.StartupTimeout)
	var lastErr error
	for {
		lastErr = c.checkHealth(ctx, base)
		if lastErr == nil {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("timed out after %s: %w", c.cfg.StartupTimeout, lastErr)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(portFilePollInterval):
		}
	}
}

func (c *Client) checkHealth(ctx context.Context, base string) error {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.RequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+apiPrefix+"/health", nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-API-Key", c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, Endpoint: "/health", Message: "health check failed"}
	}
	return nil
}
