// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"fmt"

	"github.com/garageup/site-go/internal/model"
	"github.com/garageup/site-go/internal/store"
	"github.com/garageup/site-go/internal/util"
)

// DerivePosts materializes the ordered post list from a blog document by
// scanning the numbered slots 1..MaxPosts. A slot becomes a post only when
// both its title and image are set; the slug is derived from the title.
func DerivePosts(doc store.Document) []model.BlogPost {
	var posts []model.BlogPost
	for i := 1; i <= MaxPosts; i++ {
		key := func(suffix string) string { return fmt.Sprintf("post%d%s", i, suffix) }
		title := doc[key("Title")]
		image := doc[key("Image")]
		if title == "" || image == "" {
			continue
		}
		posts = append(posts, model.BlogPost{
			ID:       i,
			Title:    title,
			URL:      doc[key("Url")],
			Category: doc[key("Category")],
			ReadMin:  doc[key("ReadMin")],
			Image:    image,
			Excerpt:  doc[key("Excerpt")],
			Body:     doc[key("Body")],
			Slug:     util.Slugify(title),
		})
	}
	return posts
}

// FindPostBySlug returns the derived post whose slug matches, or nil.
func FindPostBySlug(doc store.Document, slug string) *model.BlogPost {
	for _, p := range DerivePosts(doc) {
		if p.Slug == slug {
			return &p
		}
	}
	return nil
}
