// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/garageup/site-go/internal/imaging"
	"github.com/garageup/site-go/internal/util"
)

// MaxUploadSize caps the multipart form size for uploads (20 MB).
const MaxUploadSize = 20 << 20

// uploadsURLMarker is the path segment that anchors public upload URLs.
var uploadsURLMarker = filepath.Join("wp-content", "uploads")

// MediaHandler stores uploaded assets under a date-partitioned tree.
type MediaHandler struct {
	uploadsDir string
}

// NewMediaHandler creates a new MediaHandler rooted at uploadsDir.
func NewMediaHandler(uploadsDir string) *MediaHandler {
	return &MediaHandler{uploadsDir: uploadsDir}
}

// Upload accepts one multipart file per request and stores it under
// uploads/<YYYY>/<MM>/<epochMillis>-<sanitizedName>. Responds with the
// public URL path of the stored file.
func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(MaxUploadSize); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "No file")
		return
	}
	defer func() { _ = file.Close() }()

	now := time.Now().UTC()
	dir := filepath.Join(h.uploadsDir,
		fmt.Sprintf("%04d", now.Year()),
		fmt.Sprintf("%02d", int(now.Month())),
	)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		slog.Error("failed to create upload directory", "dir", dir, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to store file")
		return
	}

	name := fmt.Sprintf("%d-%s", now.UnixMilli(), util.SanitizeFilename(header.Filename))
	dstPath := filepath.Join(dir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		slog.Error("failed to create upload file", "path", dstPath, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to store file")
		return
	}
	if _, err := io.Copy(dst, file); err != nil {
		_ = dst.Close()
		_ = os.Remove(dstPath)
		slog.Error("failed to write upload", "path", dstPath, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to store file")
		return
	}
	if err := dst.Close(); err != nil {
		slog.Error("failed to close upload", "path", dstPath, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to store file")
		return
	}

	// Thumbnail failures never fail the upload.
	if imaging.IsThumbnailable(dstPath) {
		if thumbPath, err := imaging.Thumbnail(dstPath); err != nil {
			slog.Warn("thumbnail generation failed", "file", name, "error", err)
		} else if thumbPath != "" {
			slog.Info("thumbnail created", "file", filepath.Base(thumbPath))
		}
	}

	slog.Info("file uploaded", "file", name)
	writeJSON(w, http.StatusOK, map[string]any{"url": publicUploadURL(dstPath)})
}

// publicUploadURL re-roots an absolute storage path as a URL path at the
// uploads marker segment, with forward slashes.
func publicUploadURL(storedPath string) string {
	if i := strings.Index(storedPath, uploadsURLMarker); i >= 0 {
		return "/" + filepath.ToSlash(storedPath[i:])
	}
	return "/" + filepath.ToSlash(uploadsURLMarker) + "/" + filepath.Base(storedPath)
}
