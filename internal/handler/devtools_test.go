// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/garageup/site-go/internal/auth"
	"github.com/garageup/site-go/internal/config"
)

func TestDevToolsHash(t *testing.T) {
	h := NewDevToolsHandler(&config.Config{})

	rec := httptest.NewRecorder()
	h.Hash(rec, httptest.NewRequest(http.MethodGet, "/api/util/hash?pw=changeme", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if !auth.CheckPassword("changeme", body["hash"]) {
		t.Errorf("returned hash does not verify: %q", body["hash"])
	}
}

func TestDevToolsHash_MissingParam(t *testing.T) {
	h := NewDevToolsHandler(&config.Config{})

	rec := httptest.NewRecorder()
	h.Hash(rec, httptest.NewRequest(http.MethodGet, "/api/util/hash", nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestDevToolsAuthStatus(t *testing.T) {
	tests := []struct {
		name       string
		cfg        config.Config
		wantMethod string
		wantEnv    bool
	}{
		{"unconfigured", config.Config{}, "none", false},
		{"plain", config.Config{AdminUser: "admin", AdminPass: "x"}, "plain", true},
		{"hash", config.Config{AdminEmail: "a@b.c", AdminPasswordHash: "$2a$10$x"}, "hash", true},
		{"plain wins", config.Config{AdminUser: "admin", AdminPass: "x", AdminPasswordHash: "$2a$10$x"}, "plain", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewDevToolsHandler(&tt.cfg)
			rec := httptest.NewRecorder()
			h.AuthStatus(rec, httptest.NewRequest(http.MethodGet, "/api/util/auth-status", nil))

			var body map[string]any
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decoding body: %v", err)
			}
			if body["method"] != tt.wantMethod {
				t.Errorf("method = %v, want %q", body["method"], tt.wantMethod)
			}
			if body["envConfigured"] != tt.wantEnv {
				t.Errorf("envConfigured = %v, want %v", body["envConfigured"], tt.wantEnv)
			}
			if _, leaked := body["hash"]; leaked {
				t.Error("auth status leaked a credential field")
			}
		})
	}
}
