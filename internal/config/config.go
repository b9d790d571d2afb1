// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package config loads the application configuration from environment
// variables.
package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
)

// DefaultSessionSecret is the development fallback secret. It is rejected
// in production.
const DefaultSessionSecret = "dev-secret-change-me"

// Config holds the application configuration loaded from environment variables.
type Config struct {
	Port          int    `env:"PORT" envDefault:"3000"`
	Env           string `env:"NODE_ENV" envDefault:"development"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	SessionSecret string `env:"SESSION_SECRET" envDefault:"dev-secret-change-me"`
	SSL           bool   `env:"SSL"` // set behind HTTPS; controls the Secure cookie flag

	// Environment-configured administrator. Not present in the users file;
	// authenticated against ADMIN_PASS (plaintext) or ADMIN_PASSWORD_HASH
	// (bcrypt), in that order.
	AdminUser         string `env:"ADMIN_USER"`
	AdminEmail        string `env:"ADMIN_EMAIL"`
	AdminPass         string `env:"ADMIN_PASS"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`

	// Directory roots.
	SiteRoot string `env:"SITE_ROOT" envDefault:"."`
	DataDir  string `env:"DATA_DIR" envDefault:"./data"`
	ViewsDir string `env:"VIEWS_DIR" envDefault:"./views"`
}

// IsProduction returns true if the application is running in production mode.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// Addr returns the listen address in :port format.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// UploadsDir returns the root directory for uploaded assets.
func (c Config) UploadsDir() string {
	return filepath.Join(c.SiteRoot, "wp-content", "uploads")
}

// EnvAdminConfigured returns true if an environment admin identity is set.
func (c Config) EnvAdminConfigured() bool {
	return c.AdminUser != "" || c.AdminEmail != ""
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.AdminUser = strings.TrimSpace(cfg.AdminUser)
	cfg.AdminEmail = strings.TrimSpace(cfg.AdminEmail)
	cfg.AdminPass = strings.TrimSpace(cfg.AdminPass)

	if cfg.IsProduction() && cfg.SessionSecret == DefaultSessionSecret {
		return nil, fmt.Errorf("SESSION_SECRET must be set in production; " +
			"generate one with: openssl rand -base64 32")
	}

	if cfg.EnvAdminConfigured() && cfg.AdminPass == "" && cfg.AdminPasswordHash == "" {
		slog.Warn("admin identity configured without ADMIN_PASS or ADMIN_PASSWORD_HASH; env admin logins will fail")
	}

	return cfg, nil
}
