// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// BlogPost is derived from the numbered post slots of the blog content
// document. It is recomputed on every read and never persisted. A slot
// yields a post only when both its title and image are set.
type BlogPost struct {
	ID       int
	Title    string
	URL      string
	Category string
	ReadMin  string
	Image    string
	Excerpt  string
	Body     string
	Slug     string
}
