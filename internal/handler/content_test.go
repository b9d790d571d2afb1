// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"testing"

	"github.com/garageup/site-go/internal/store"
)

func TestContent_RequiresAuth(t *testing.T) {
	app := newTestApp(t, withEnvAdmin)
	client := app.client(t)

	for _, cd := range ContentDomains() {
		resp := app.get(t, client, cd.Route)
		_ = readBody(t, resp)
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("GET %s without session = %d, want 401", cd.Route, resp.StatusCode)
		}
	}
}

func TestContent_GetEmptyDomain(t *testing.T) {
	app := newTestApp(t, withEnvAdmin)
	client := app.client(t)
	app.login(t, client, "admin", "letmein")

	doc := decodeJSON[map[string]string](t, app.get(t, client, "/api/homepage"))
	if len(doc) != 0 {
		t.Errorf("fresh homepage doc = %v, want empty object", doc)
	}
}

func TestContent_UpdateFiltersAndMerges(t *testing.T) {
	app := newTestApp(t, withEnvAdmin)
	client := app.client(t)
	app.login(t, client, "admin", "letmein")

	resp := app.postJSON(t, client, "/api/homepage", map[string]any{
		"heroTitle": "Your Garage, Transformed",
		"ctaLabel":  "Get a Quote",
		"hackerKey": "dropped",
		"heroBg":    "",
		"quickJobs": 12000,
	})
	saved := decodeJSON[map[string]string](t, resp)

	if saved["heroTitle"] != "Your Garage, Transformed" {
		t.Errorf("heroTitle = %q", saved["heroTitle"])
	}
	if saved["quickJobs"] != "12000" {
		t.Errorf("quickJobs = %q, want coerced string", saved["quickJobs"])
	}
	if _, ok := saved["hackerKey"]; ok {
		t.Error("non-allow-listed key persisted")
	}
	if _, ok := saved["heroBg"]; ok {
		t.Error("empty value persisted; must mean leave-unchanged")
	}

	// Second partial update merges, does not replace.
	resp = app.postJSON(t, client, "/api/homepage", map[string]any{"heroTitle": "Updated"})
	merged := decodeJSON[map[string]string](t, resp)
	if merged["heroTitle"] != "Updated" {
		t.Errorf("heroTitle after merge = %q", merged["heroTitle"])
	}
	if merged["ctaLabel"] != "Get a Quote" {
		t.Errorf("ctaLabel lost in merge: %v", merged)
	}

	// And the merge is durable.
	reloaded, err := app.store.Load(store.DomainHomepage)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if reloaded["ctaLabel"] != "Get a Quote" {
		t.Errorf("persisted doc = %v", reloaded)
	}
}

func TestContent_EmptyBodyIsNoOp(t *testing.T) {
	app := newTestApp(t, withEnvAdmin)
	client := app.client(t)
	app.login(t, client, "admin", "letmein")

	resp := app.postJSON(t, client, "/api/about", map[string]any{"introTitle": "Who We Are"})
	_ = decodeJSON[map[string]string](t, resp)

	resp = app.postJSON(t, client, "/api/about", map[string]any{})
	after := decodeJSON[map[string]string](t, resp)
	if after["introTitle"] != "Who We Are" {
		t.Errorf("no-op update changed document: %v", after)
	}
}

func TestContent_InvalidJSONBody(t *testing.T) {
	app := newTestApp(t, withEnvAdmin)
	client := app.client(t)
	app.login(t, client, "admin", "letmein")

	req, err := http.NewRequest(http.MethodPost, app.srv.URL+"/api/blog", nil)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("POST error: %v", err)
	}
	_ = readBody(t, resp)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("empty JSON body status = %d, want 400", resp.StatusCode)
	}
}

func TestContentDomains_Routes(t *testing.T) {
	domains := ContentDomains()
	if len(domains) != 4 {
		t.Fatalf("domain count = %d, want 4", len(domains))
	}
	// The contact document API must not shadow the public contact page.
	for _, cd := range domains {
		if cd.Route == RouteContactUs || cd.Route == "/api/contact" {
			t.Errorf("contact content route %q clashes with page routes", cd.Route)
		}
		if len(cd.Fields) == 0 {
			t.Errorf("domain %s has no editable fields", cd.Domain)
		}
	}
}
