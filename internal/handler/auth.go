// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/alexedwards/scs/v2"

	"github.com/garageup/site-go/internal/auth"
	"github.com/garageup/site-go/internal/config"
	"github.com/garageup/site-go/internal/middleware"
	"github.com/garageup/site-go/internal/model"
	"github.com/garageup/site-go/internal/render"
	"github.com/garageup/site-go/internal/store"
)

// AuthHandler handles the login page and the auth API.
type AuthHandler struct {
	cfg      *config.Config
	store    *store.Store
	renderer *render.Renderer
	sessions *scs.SessionManager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(cfg *config.Config, st *store.Store, renderer *render.Renderer, sm *scs.SessionManager) *AuthHandler {
	return &AuthHandler{
		cfg:      cfg,
		store:    st,
		renderer: renderer,
		sessions: sm,
	}
}

// loginRequest is the login payload. The identifier may arrive under any
// of the three field names; identifier wins, then email, then username.
type loginRequest struct {
	Identifier string `json:"identifier"`
	Email      string `json:"email"`
	Username   string `json:"username"`
	Password   string `json:"password"`
}

func (req loginRequest) identifier() string {
	for _, v := range []string{req.Identifier, req.Email, req.Username} {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// LoginForm renders the login page, or sends already-authenticated users
// to the dashboard.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if h.sessions.GetString(r.Context(), middleware.SessionKeyUserID) != "" {
		http.Redirect(w, r, RouteDashboard, http.StatusSeeOther)
		return
	}
	renderView(w, h.renderer, "admin-login", map[string]any{
		"bodyClass": "login-page " + themeBodyClass,
	})
}

// Login authenticates against the environment admin identity first, then
// the users file. Responds with the resolved identity on success.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	raw, err := decodeBodyMap(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req := loginRequest{
		Identifier: stringField(raw, "identifier"),
		Email:      stringField(raw, "email"),
		Username:   stringField(raw, "username"),
		Password:   stringField(raw, "password"),
	}

	key := req.identifier()
	if key == "" || req.Password == "" {
		writeJSONError(w, http.StatusBadRequest, "Email/username and password required")
		return
	}
	slog.Info("login attempt", "identifier", key)

	if h.matchesEnvAdmin(key) {
		h.loginEnvAdmin(w, r, req.Password)
		return
	}

	user := h.store.FindUserByIdentifier(key)
	if user == nil {
		h.invalidCredentials(w, "user not found")
		return
	}
	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		h.invalidCredentials(w, "wrong password")
		return
	}

	h.establishSession(r, user.ID)
	slog.Info("login succeeded", "user_id", user.ID)
	writeJSON(w, http.StatusOK, identityResponse(*user))
}

// matchesEnvAdmin reports whether the identifier names the configured
// environment admin (case-insensitive username or email equality).
func (h *AuthHandler) matchesEnvAdmin(identifier string) bool {
	return (h.cfg.AdminUser != "" && strings.EqualFold(identifier, h.cfg.AdminUser)) ||
		(h.cfg.AdminEmail != "" && strings.EqualFold(identifier, h.cfg.AdminEmail))
}

// loginEnvAdmin verifies the environment admin credential: plaintext
// ADMIN_PASS when set, else bcrypt ADMIN_PASSWORD_HASH, else the server is
// misconfigured and that is a 500, not a credential failure.
func (h *AuthHandler) loginEnvAdmin(w http.ResponseWriter, r *http.Request, password string) {
	switch {
	case h.cfg.AdminPass != "":
		if password != h.cfg.AdminPass {
			h.invalidCredentials(w, "wrong password (env)")
			return
		}
	case h.cfg.AdminPasswordHash != "":
		if !auth.CheckPassword(password, h.cfg.AdminPasswordHash) {
			h.invalidCredentials(w, "wrong password (env hash)")
			return
		}
	default:
		writeJSONError(w, http.StatusInternalServerError,
			"Server auth is misconfigured: set ADMIN_PASS or ADMIN_PASSWORD_HASH")
		return
	}

	h.establishSession(r, model.EnvAdminID)
	slog.Info("login succeeded", "user_id", model.EnvAdminID)
	writeJSON(w, http.StatusOK, h.envAdminIdentity())
}

// invalidCredentials writes a 401. Production collapses every credential
// failure to one message so identifiers cannot be enumerated; development
// keeps the distinction for debugging.
func (h *AuthHandler) invalidCredentials(w http.ResponseWriter, detail string) {
	msg := "Invalid credentials"
	if !h.cfg.IsProduction() {
		msg += ": " + detail
	}
	writeJSONError(w, http.StatusUnauthorized, msg)
}

// establishSession binds the session to the resolved identity. The token
// is renewed so a pre-login session id never survives authentication.
func (h *AuthHandler) establishSession(r *http.Request, userID string) {
	_ = h.sessions.RenewToken(r.Context())
	h.sessions.Put(r.Context(), middleware.SessionKeyUserID, userID)
}

func (h *AuthHandler) envAdminIdentity() map[string]any {
	return map[string]any{
		"id":    model.EnvAdminID,
		"email": h.cfg.AdminEmail,
		"name":  "Admin",
	}
}

func identityResponse(u model.User) map[string]any {
	return map[string]any{
		"id":    u.ID,
		"email": u.Email,
		"name":  u.Name,
	}
}

// Logout destroys the session. Always succeeds from the caller's
// perspective, with or without an active session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	_ = h.sessions.Destroy(r.Context())
	writeJSONOK(w)
}

// Me returns the current identity, or 401 when no session is live.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	uid := h.sessions.GetString(r.Context(), middleware.SessionKeyUserID)
	if uid == "" {
		writeJSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if uid == model.EnvAdminID {
		writeJSON(w, http.StatusOK, h.envAdminIdentity())
		return
	}
	user := h.store.FindUserByID(uid)
	if user == nil {
		writeJSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, identityResponse(*user))
}

// stringField extracts a string value from a decoded body map.
func stringField(raw map[string]any, key string) string {
	if v, ok := raw[key].(string); ok {
		return v
	}
	return ""
}
