// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package session configures the scs session manager. Sessions live in
// process memory; restarting the server invalidates all of them, which is
// acceptable for a low-traffic admin dashboard.
package session

import (
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
)

// Lifetime is the absolute session expiry from creation.
const Lifetime = 24 * time.Hour

// New creates a session manager backed by the default in-memory store.
// secure controls the Secure cookie flag (set behind HTTPS).
func New(secure bool) *scs.SessionManager {
	sm := scs.New()
	sm.Lifetime = Lifetime
	sm.Cookie.Name = "sid"
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Secure = secure
	return sm
}
