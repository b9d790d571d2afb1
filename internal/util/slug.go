// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package util provides general-purpose utility functions including
// URL slug derivation and filename sanitization.
package util

import (
	"regexp"
	"strings"
)

// MaxSlugLen is the maximum length of a derived slug.
const MaxSlugLen = 120

var (
	// nonAlphanumeric matches runs of characters outside [a-z0-9]
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
)

// Slugify derives a URL slug from a title. It lowercases the input,
// expands "&" to "and", collapses runs of non-alphanumeric characters to a
// single hyphen, trims hyphens, and truncates to MaxSlugLen. The result is
// stable: Slugify(Slugify(s)) == Slugify(s).
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "&", " and ")
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > MaxSlugLen {
		s = strings.Trim(s[:MaxSlugLen], "-")
	}
	return s
}

// IsValidSlug checks if a string is a valid slug format.
func IsValidSlug(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-') {
			return false
		}
	}
	if s[0] == '-' || s[len(s)-1] == '-' {
		return false
	}
	return !strings.Contains(s, "--")
}
