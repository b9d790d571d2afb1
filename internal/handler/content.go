// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"

	"github.com/garageup/site-go/internal/service"
	"github.com/garageup/site-go/internal/store"
)

// ContentDomain binds an API route to its store domain and editable fields.
type ContentDomain struct {
	Route  string
	Domain string
	Fields []string
}

// ContentDomains lists the editable content APIs. The contact document is
// exposed as /api/contact-page to avoid clashing with the public
// /contact-us page route.
func ContentDomains() []ContentDomain {
	return []ContentDomain{
		{Route: "/api/homepage", Domain: store.DomainHomepage, Fields: service.HomepageFields()},
		{Route: "/api/about", Domain: store.DomainAbout, Fields: service.AboutFields()},
		{Route: "/api/blog", Domain: store.DomainBlog, Fields: service.BlogFields()},
		{Route: "/api/contact-page", Domain: store.DomainContact, Fields: service.ContactFields()},
	}
}

// ContentHandler serves the protected per-domain content editing API.
type ContentHandler struct {
	store *store.Store
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(st *store.Store) *ContentHandler {
	return &ContentHandler{store: st}
}

// Get returns a handler serving the raw document of a domain.
func (h *ContentHandler) Get(domain string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := h.store.Load(domain)
		if err != nil {
			slog.Warn("content document unreadable", "domain", domain, "error", err)
		}
		writeJSON(w, http.StatusOK, doc)
	}
}

// Update returns a handler that filters the request body against the
// domain's allow-list and merges it into the stored document. The filter
// is the only path a request body takes to the store.
func (h *ContentHandler) Update(domain string, fields []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := decodeBodyMap(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		payload := service.FilterFields(raw, fields)
		slog.Debug("content update", "domain", domain, "incoming_keys", len(raw), "saved_keys", len(payload))

		saved, err := h.store.Save(domain, payload)
		if err != nil {
			slog.Error("failed to save content", "domain", domain, "error", err)
			writeJSONError(w, http.StatusInternalServerError, "Failed to save "+domain)
			return
		}
		writeJSON(w, http.StatusOK, saved)
	}
}
