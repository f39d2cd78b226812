// Copyright 2026 The ScreenPilot Authors
//
// Configuration package for the demo workflows

package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds the environment configuration of the demo workflows.
type Config struct {
	// APIKey authenticates against the automation server. Required: demos
	// abort before any network or UI call when it is absent.
	APIKey string

	// OpenAIKey enables the AI-assisted branches. Optional: demos degrade
	// with a warning when it is absent.
	OpenAIKey   string
	OpenAIModel string

	// ServerPath is the automation server binary to spawn. ServerAddr, when
	// set, attaches to an already running server instead.
	ServerPath string
	ServerAddr string

	AuditLogPath string
	DemoAppURL   string

	RequestTimeout time.Duration
	StartupTimeout time.Duration

	Debug bool
}

// Load loads the configuration from environment variables. It fails when
// SCREENPILOT_API_KEY is not set; a missing OpenAI key is the caller's
// concern.
func Load() (*Config, error) {
	apiKey := os.Getenv("SCREENPILOT_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("SCREENPILOT_API_KEY is not set; no automation call can be made without it")
	}

	requestTimeout, err := getEnvAsDuration("SCREENPILOT_REQUEST_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}
	startupTimeout, err := getEnvAsDuration("SCREENPILOT_STARTUP_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		APIKey:         apiKey,
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:    os.Getenv("OPENAI_MODEL"),
		ServerPath:     os.Getenv("SCREENPILOT_SERVER_PATH"),
		ServerAddr:     os.Getenv("SCREENPILOT_SERVER_ADDR"),
		AuditLogPath:   os.Getenv("SCREENPILOT_AUDIT_LOG"),
		DemoAppURL:     os.Getenv("SCREENPILOT_DEMO_APP_URL"),
		RequestTimeout: requestTimeout,
		StartupTimeout: startupTimeout,
		Debug:          getEnvAsBool("SCREENPILOT_DEBUG", false),
	}

	if cfg.ServerPath == "" && cfg.ServerAddr == "" {
		return nil, fmt.Errorf("neither SCREENPILOT_SERVER_PATH nor SCREENPILOT_SERVER_ADDR is set")
	}

	return cfg, nil
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q (expected duration, e.g., '30s', '5m')", key, value)
	}
	return d, nil
}
