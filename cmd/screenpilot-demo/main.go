// Copyright 2026 The ScreenPilot Authors
//
// Demo workflows for the ScreenPilot automation server

package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	screenpilot "github.com/screenpilot/screenpilot-go"
	"github.com/screenpilot/screenpilot-go/ai"
	"github.com/screenpilot/screenpilot-go/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "screenpilot-demo",
	Short: "Example workflows driving the ScreenPilot automation server",
	Long: `Example workflows driving the ScreenPilot automation server.

Each workflow is a linear sequence of automation calls with fixed delays.
Set SCREENPILOT_API_KEY (required) and OPENAI_API_KEY (optional, enables the
AI-assisted steps) before running.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(formfillCmd, chromeCmd, screenshotCmd, overviewCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newClient builds the automation client from the environment and stamps a
// fresh run ID for audit correlation.
func newClient(cfg *config.Config) (*screenpilot.Client, string, error) {
	clientCfg := screenpilot.ClientConfig{
		APIKey:         cfg.APIKey,
		ServerAddr:     cfg.ServerAddr,
		ServerPath:     cfg.ServerPath,
		AuditLogPath:   cfg.AuditLogPath,
		RequestTimeout: cfg.RequestTimeout,
		StartupTimeout: cfg.StartupTimeout,
		Debug:          cfg.Debug,
	}
	client, err := screenpilot.NewClient(clientCfg)
	if err != nil {
		return nil, "", err
	}
	runID := uuid.NewString()
	client.SetAuditRunID(runID)
	return client, runID, nil
}

// newAI builds the chat-completion client, or returns nil with a warning
// when the optional credential is absent. The demos continue without the AI
// branch in that case.
func newAI(cfg *config.Config) *ai.Client {
	if cfg.OpenAIKey == "" {
		log.Println("WARNING: OPENAI_API_KEY is not set; AI-assisted steps will be skipped")
		return nil
	}
	aiClient, err := ai.NewClient(cfg.OpenAIKey, cfg.OpenAIModel)
	if err != nil {
		log.Printf("WARNING: could not create AI client (%v); AI-assisted steps will be skipped", err)
		return nil
	}
	return aiClient
}

// stopServer is the deferred, best-effort final step of every workflow.
func stopServer(client *screenpilot.Client) {
	if err := client.StopServer(); err != nil {
		log.Printf("WARNING: failed to stop automation server: %s", screenpilot.DescribeError(err))
	}
}

// saveImage writes screenshot bytes next to the other demo artifacts and
// returns the path.
func saveImage(shot *screenpilot.ScreenshotResult, runID string) (string, error) {
	data, err := shot.Decode()
	if err != nil {
		return "", fmt.Errorf("failed to decode screenshot: %w", err)
	}
	dir := filepath.Join(os.TempDir(), "screenpilot")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("screenshot-%s.png", runID))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// printStats prints per-endpoint call metrics when debug output is on.
func printStats(cfg *config.Config, client *screenpilot.Client) {
	if !cfg.Debug {
		return
	}
	fmt.Println("\n=== Call metrics ===")
	if err := client.WriteStats(os.Stdout); err != nil {
		log.Printf("WARNING: could not write call metrics: %v", err)
	}
}
