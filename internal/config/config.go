// Package config resolves runtime settings from the environment.
//
// Everything has a workable default except the Anthropic API key, which the
// SDK reads on its own; Load only checks that it is present so the server can
// fail fast instead of erroring on the first chat turn.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTPAddr     string
	DatabasePath string
	TicketsPath  string
	SessionsDir  string // empty disables session snapshots

	SMTPEmail    string
	SMTPPassword string
	SMTPAddr     string

	MaxCycles    int
	ModelTimeout time.Duration
	ToolTimeout  time.Duration
}

const (
	defaultAddr         = ":8000"
	defaultDatabasePath = "omnibook.db"
	defaultTicketsPath  = "data/tickets.json"
	defaultSMTPAddr     = "smtp.gmail.com:587"
	defaultMaxCycles    = 10
	defaultModelTimeout = 60 * time.Second
	defaultToolTimeout  = 15 * time.Second
)

func Load() (Config, error) {
	if os.Getenv("ANTHROPIC_API_KEY") == "" {
		return Config{}, fmt.Errorf("ANTHROPIC_API_KEY not set; export it then try again")
	}

	cfg := Config{
		HTTPAddr:     envOr("OMNIBOOK_ADDR", defaultAddr),
		DatabasePath: envOr("OMNIBOOK_DB", defaultDatabasePath),
		TicketsPath:  envOr("OMNIBOOK_TICKETS", defaultTicketsPath),
		SessionsDir:  os.Getenv("OMNIBOOK_SESSIONS"),
		SMTPEmail:    os.Getenv("SMTP_EMAIL"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPAddr:     envOr("SMTP_ADDR", defaultSMTPAddr),
		MaxCycles:    defaultMaxCycles,
		ModelTimeout: defaultModelTimeout,
		ToolTimeout:  defaultToolTimeout,
	}

	if v := os.Getenv("OMNIBOOK_MAX_CYCLES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("invalid OMNIBOOK_MAX_CYCLES %q", v)
		}
		cfg.MaxCycles = n
	}
	if v := os.Getenv("OMNIBOOK_MODEL_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("invalid OMNIBOOK_MODEL_TIMEOUT %q", v)
		}
		cfg.ModelTimeout = d
	}
	if v := os.Getenv("OMNIBOOK_TOOL_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("invalid OMNIBOOK_TOOL_TIMEOUT %q", v)
		}
		cfg.ToolTimeout = d
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
