// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/garageup/site-go/internal/auth"
	"github.com/garageup/site-go/internal/config"
)

// DevToolsHandler serves development-only utility endpoints. These routes
// are never registered in production.
type DevToolsHandler struct {
	cfg *config.Config
}

// NewDevToolsHandler creates a new DevToolsHandler.
func NewDevToolsHandler(cfg *config.Config) *DevToolsHandler {
	return &DevToolsHandler{cfg: cfg}
}

// Hash returns a bcrypt hash of the pw query parameter, for provisioning
// ADMIN_PASSWORD_HASH without a local toolchain.
func (h *DevToolsHandler) Hash(w http.ResponseWriter, r *http.Request) {
	pw := r.URL.Query().Get("pw")
	if pw == "" {
		writeJSONError(w, http.StatusBadRequest, "Provide ?pw=")
		return
	}
	hash, err := auth.HashPassword(pw)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "Failed to hash password")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"hash": hash})
}

// AuthStatus reports how the environment admin is configured, without
// leaking any secrets.
func (h *DevToolsHandler) AuthStatus(w http.ResponseWriter, r *http.Request) {
	method := "none"
	switch {
	case h.cfg.AdminPass != "":
		method = "plain"
	case h.cfg.AdminPasswordHash != "":
		method = "hash"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"envConfigured": h.cfg.EnvAdminConfigured(),
		"envUser":       h.cfg.AdminUser != "",
		"envEmail":      h.cfg.AdminEmail != "",
		"method":        method,
	})
}
