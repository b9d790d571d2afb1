// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/garageup/site-go/internal/model"
)

func TestLeads_CreateAndList(t *testing.T) {
	app := newTestApp(t, withEnvAdmin)
	client := app.client(t)

	resp := app.postJSON(t, client, "/api/leads", map[string]string{
		"firstName": "  Ann  ",
		"lastName":  "Smith",
		"phone":     "555-0100",
		"city":      "Austin",
		"source":    "contact-us",
	})
	ok := decodeJSON[map[string]bool](t, resp)
	if !ok["ok"] {
		t.Fatal("lead capture not acknowledged")
	}

	// Listing is protected.
	resp = app.get(t, client, "/api/leads")
	_ = readBody(t, resp)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("anonymous list = %d, want 401", resp.StatusCode)
	}

	app.login(t, client, "admin", "letmein")
	leads := decodeJSON[[]model.Lead](t, app.get(t, client, "/api/leads"))
	if len(leads) != 1 {
		t.Fatalf("lead count = %d, want 1", len(leads))
	}

	lead := leads[0]
	if lead.FirstName != "Ann" {
		t.Errorf("FirstName = %q, want trimmed", lead.FirstName)
	}
	if lead.City != "Austin" || lead.Source != "contact-us" {
		t.Errorf("lead = %+v", lead)
	}
	if lead.IP == "" {
		t.Error("lead IP not stamped")
	}
	if _, err := time.Parse(time.RFC3339, lead.CreatedAt); err != nil {
		t.Errorf("CreatedAt %q is not RFC3339: %v", lead.CreatedAt, err)
	}
}

func TestLeads_EmailInsteadOfPhone(t *testing.T) {
	app := newTestApp(t, nil)
	client := app.client(t)

	resp := app.postJSON(t, client, "/api/leads", map[string]string{
		"firstName": "Bob",
		"lastName":  "Jones",
		"email":     "bob@example.com",
	})
	ok := decodeJSON[map[string]bool](t, resp)
	if !ok["ok"] {
		t.Fatal("email-only lead rejected")
	}
}

func TestLeads_Validation(t *testing.T) {
	app := newTestApp(t, nil)
	client := app.client(t)

	tests := []struct {
		name string
		body map[string]string
	}{
		{"no names", map[string]string{"phone": "555-0100"}},
		{"no contact", map[string]string{"firstName": "Ann", "lastName": "Smith"}},
		{"whitespace contact", map[string]string{"firstName": "Ann", "lastName": "Smith", "phone": "   "}},
		{"missing last name", map[string]string{"firstName": "Ann", "phone": "555-0100"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := app.postJSON(t, client, "/api/leads", tt.body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
			body := decodeJSON[map[string]string](t, resp)
			if !strings.Contains(body["error"], "first name") {
				t.Errorf("error = %q", body["error"])
			}
		})
	}
}

func TestLeads_FormEncoded(t *testing.T) {
	app := newTestApp(t, withEnvAdmin)
	client := app.client(t)

	resp, err := client.Post(app.srv.URL+"/api/leads",
		"application/x-www-form-urlencoded",
		strings.NewReader("firstName=Carol&lastName=White&phone=555-0199&source=footer"))
	if err != nil {
		t.Fatalf("POST error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("form lead status = %d: %s", resp.StatusCode, readBody(t, resp))
	}
	_ = readBody(t, resp)

	app.login(t, client, "admin", "letmein")
	leads := decodeJSON[[]model.Lead](t, app.get(t, client, "/api/leads"))
	if len(leads) != 1 || leads[0].Source != "footer" {
		t.Errorf("leads = %+v", leads)
	}
}

func TestLeads_EmptyListIsArray(t *testing.T) {
	app := newTestApp(t, withEnvAdmin)
	client := app.client(t)
	app.login(t, client, "admin", "letmein")

	body := readBody(t, app.get(t, client, "/api/leads"))
	if strings.TrimSpace(body) != "[]" {
		t.Errorf("empty lead list = %q, want []", body)
	}
}
