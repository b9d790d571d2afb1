// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/garageup/site-go/internal/render"
)

// renderView executes a view with a 200 status.
func renderView(w http.ResponseWriter, renderer *render.Renderer, name string, data any) {
	renderStatus(w, renderer, http.StatusOK, name, data)
}

// renderStatus buffers a view execution so template failures become a
// clean 500 instead of a half-written page.
func renderStatus(w http.ResponseWriter, renderer *render.Renderer, statusCode int, name string, data any) {
	var buf bytes.Buffer
	if err := renderer.Render(&buf, name, data); err != nil {
		slog.Error("render failed", "view", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = buf.WriteTo(w)
}
