// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/garageup/site-go/internal/model"
	"github.com/garageup/site-go/internal/store"
)

// LeadsHandler captures and lists contact leads.
type LeadsHandler struct {
	store    *store.Store
	validate *validator.Validate
}

// NewLeadsHandler creates a new LeadsHandler.
func NewLeadsHandler(st *store.Store) *LeadsHandler {
	return &LeadsHandler{
		store:    st,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Create is the public lead-capture endpoint. It replaces the insecure
// mailto forms: validates the contact fields, stamps the request metadata,
// and appends the record.
func (h *LeadsHandler) Create(w http.ResponseWriter, r *http.Request) {
	raw, err := decodeBodyMap(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	lead := model.Lead{
		FirstName: trimmedField(raw, "firstName"),
		LastName:  trimmedField(raw, "lastName"),
		Phone:     trimmedField(raw, "phone"),
		Email:     trimmedField(raw, "email"),
		Zip:       trimmedField(raw, "zip"),
		City:      trimmedField(raw, "city"),
		State:     trimmedField(raw, "state"),
		Message:   trimmedField(raw, "message"),
		Source:    trimmedField(raw, "source"),
	}

	if err := h.validate.Struct(lead); err != nil {
		writeJSONError(w, http.StatusBadRequest,
			"Please provide first name, last name, and phone or email.")
		return
	}

	lead.UserAgent = r.UserAgent()
	lead.IP = clientIP(r)
	lead.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := h.store.AppendLead(lead); err != nil {
		slog.Error("failed to save lead", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to save lead")
		return
	}

	slog.Info("lead captured", "source", lead.Source, "city", lead.City)
	writeJSONOK(w)
}

// List returns every captured lead. Protected; the dashboard reads it.
func (h *LeadsHandler) List(w http.ResponseWriter, r *http.Request) {
	leads := h.store.Leads()
	if leads == nil {
		leads = []model.Lead{}
	}
	writeJSON(w, http.StatusOK, leads)
}

// clientIP prefers the forwarded client address over the socket peer.
// Behind the RealIP middleware RemoteAddr is already rewritten; the header
// check covers direct use in tests and odd deployments.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.SplitN(fwd, ",", 2)[0])
	}
	return r.RemoteAddr
}

// trimmedField extracts a trimmed string value from a decoded body map.
func trimmedField(raw map[string]any, key string) string {
	return strings.TrimSpace(stringField(raw, key))
}
