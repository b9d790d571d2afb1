// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package middleware provides HTTP middleware for the authentication gate
// and static asset caching.
package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/alexedwards/scs/v2"
)

// SessionKeyUserID is the session key holding the authenticated identity:
// a user id from the users file, or the env-admin sentinel.
const SessionKeyUserID = "user_id"

// LoginPath is where unauthenticated browser requests are sent.
const LoginPath = "/admin-login"

// RequireAuth gates protected routes on a live session. API requests get a
// 401 JSON body; page requests are redirected to the login page.
func RequireAuth(sm *scs.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if sm.GetString(r.Context(), SessionKeyUserID) != "" {
				next.ServeHTTP(w, r)
				return
			}

			isAPI := strings.HasPrefix(r.URL.Path, "/api/")
			slog.Warn("unauthorized access",
				"path", r.URL.Path,
				"api", isAPI,
				"has_cookie", r.Header.Get("Cookie") != "",
			)

			if isAPI {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"Unauthorized"}`))
				return
			}
			http.Redirect(w, r, LoginPath, http.StatusSeeOther)
		})
	}
}
