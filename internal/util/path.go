// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import (
	"path/filepath"
	"regexp"
	"strings"
)

// unsafeFilenameChars matches runs of characters outside the upload
// filename policy [a-zA-Z0-9._-].
var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// SanitizeFilename reduces an uploaded filename to its base name and
// replaces every run of characters outside [a-zA-Z0-9._-] with a hyphen.
// Empty or path-only names become "upload". This prevents path traversal
// via filenames like "../../../etc/passwd".
func SanitizeFilename(filename string) string {
	base := filepath.Base(filename)
	if base == "." || base == ".." || base == string(filepath.Separator) || base == "" {
		base = "upload"
	}
	safe := unsafeFilenameChars.ReplaceAllString(base, "-")
	if strings.Trim(safe, "-.") == "" {
		return "upload"
	}
	return safe
}

// ContainsPathTraversal checks if a path contains traversal sequences.
// Returns true if the path escapes upward after cleaning.
func ContainsPathTraversal(path string) bool {
	cleaned := filepath.Clean(path)
	return cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) ||
		strings.Contains(cleaned, string(filepath.Separator)+"..")
}
