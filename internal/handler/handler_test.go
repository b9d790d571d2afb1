// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/garageup/site-go/internal/config"
	"github.com/garageup/site-go/internal/middleware"
	"github.com/garageup/site-go/internal/render"
	"github.com/garageup/site-go/internal/session"
	"github.com/garageup/site-go/internal/store"
	"github.com/garageup/site-go/internal/testutil"
)

// testApp is a fully wired application over temp directories, routed the
// same way the server binary routes.
type testApp struct {
	cfg   *config.Config
	store *store.Store
	srv   *httptest.Server
}

// newTestApp builds the app. mutate runs on the config before wiring, so
// tests can flip env admin credentials or production mode.
func newTestApp(t *testing.T, mutate func(cfg *config.Config)) *testApp {
	t.Helper()
	testutil.Silence(t)

	root := t.TempDir()
	cfg := &config.Config{
		Port:          0,
		Env:           "development",
		SessionSecret: config.DefaultSessionSecret,
		SiteRoot:      filepath.Join(root, "site"),
		DataDir:       filepath.Join(root, "data"),
		ViewsDir:      filepath.Join(root, "views"),
	}
	if mutate != nil {
		mutate(cfg)
	}

	st := store.New(cfg.DataDir)
	sm := session.New(false)
	renderer := render.New(render.Config{ViewsDir: cfg.ViewsDir, IsDev: !cfg.IsProduction()})

	frontendHandler := NewFrontendHandler(cfg, st, renderer)
	authHandler := NewAuthHandler(cfg, st, renderer, sm)
	contentHandler := NewContentHandler(st)
	leadsHandler := NewLeadsHandler(st)
	mediaHandler := NewMediaHandler(cfg.UploadsDir())

	r := chi.NewRouter()
	r.Use(sm.LoadAndSave)

	r.Get(RouteRoot, frontendHandler.Home)
	r.Get("/about-us", frontendHandler.About)
	r.Get(RouteContactUs, frontendHandler.Contact)
	r.Get("/contact", frontendHandler.ContactRedirect)
	r.Get(RouteBlog, frontendHandler.BlogArchive)
	r.Get(RouteBlog+"/{slug}", frontendHandler.BlogPost)
	r.Get("/services/{slug}", frontendHandler.ServicePage)
	r.Get(RouteAdminLogin, authHandler.LoginForm)

	r.Post("/api/auth/login", authHandler.Login)
	r.Post("/api/auth/logout", authHandler.Logout)
	r.Get("/api/auth/me", authHandler.Me)
	r.Post("/api/leads", leadsHandler.Create)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(sm))
		r.Get(RouteDashboard, frontendHandler.Dashboard)
		r.Get(RouteDashboard+"/{section}", frontendHandler.Dashboard)
		for _, cd := range ContentDomains() {
			r.Get(cd.Route, contentHandler.Get(cd.Domain))
			r.Post(cd.Route, contentHandler.Update(cd.Domain, cd.Fields))
		}
		r.Get("/api/leads", leadsHandler.List)
		r.Post("/api/upload", mediaHandler.Upload)
	})

	r.NotFound(frontendHandler.Resolve)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return &testApp{cfg: cfg, store: st, srv: srv}
}

// client returns a cookie-carrying client that does not follow redirects,
// so tests can assert on them.
func (a *testApp) client(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("creating cookie jar: %v", err)
	}
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func (a *testApp) postJSON(t *testing.T, client *http.Client, path string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshaling body: %v", err)
	}
	resp, err := client.Post(a.srv.URL+path, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	return resp
}

func (a *testApp) get(t *testing.T, client *http.Client, path string) *http.Response {
	t.Helper()
	resp, err := client.Get(a.srv.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	return resp
}

// login authenticates the client against the env admin configured by the
// test's config mutator.
func (a *testApp) login(t *testing.T, client *http.Client, identifier, password string) {
	t.Helper()
	resp := a.postJSON(t, client, "/api/auth/login", map[string]string{
		"identifier": identifier,
		"password":   password,
	})
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("login failed: %d %s", resp.StatusCode, body)
	}
}

func decodeJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return v
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	return string(data)
}
