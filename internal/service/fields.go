// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"fmt"

	"github.com/garageup/site-go/internal/store"
)

// Repeated-group sizes. The persisted documents simulate repetition with
// numbered keys (post1Title..post12Title); the sets below are generated
// from these caps so the JSON shape stays exactly compatible.
const (
	MaxPosts            = 12
	MaxServiceButtons   = 6
	MaxFeaturedServices = 4
	MaxFeaturedPosts    = 3
	MaxReviews          = 3
	MaxBullets          = 6
	MaxCoreValues       = 3
	MaxPromises         = 4
)

// PostFieldSuffixes are the per-slot fields of a numbered blog post.
var PostFieldSuffixes = []string{"Title", "Url", "Category", "ReadMin", "Image", "Excerpt", "Body"}

// numbered expands prefix{i}suffix keys for i in 1..n. With no suffixes it
// expands bare prefix{i} keys.
func numbered(prefix string, n int, suffixes ...string) []string {
	if len(suffixes) == 0 {
		suffixes = []string{""}
	}
	keys := make([]string, 0, n*len(suffixes))
	for i := 1; i <= n; i++ {
		for _, suffix := range suffixes {
			keys = append(keys, fmt.Sprintf("%s%d%s", prefix, i, suffix))
		}
	}
	return keys
}

// HomepageFields is the editable key set of the homepage document.
func HomepageFields() []string {
	fields := []string{
		"heroTitle", "heroSubtitle", "heroBg",
		"whoWeAreTitle", "whoWeAreBody", "whoWeAreImage",
		"ctaLabel", "ctaUrl",
		"scrollerText",
		"servicesTitle",
		"quickLocations", "quickJobs", "quickStates", "quickReviews", "quickEstimates", "quickPossibilities",
		"quickLocationsLabel", "quickJobsLabel", "quickStatesLabel", "quickReviewsLabel", "quickEstimatesLabel", "quickPossibilitiesLabel",
		"blogKicker", "blogTitle",
		"warrantyTitle", "warrantyBody",
		"getStartedTitle", "getStartedBody", "getStartedCtaLabel", "getStartedCtaUrl",
	}
	fields = append(fields, numbered("featuredService", MaxFeaturedServices, "Title", "Url", "Image")...)
	fields = append(fields, numbered("servicesBtn", MaxServiceButtons, "Label", "Url")...)
	fields = append(fields, numbered("blogFeat", MaxFeaturedPosts, "Title", "Url", "Image", "Excerpt")...)
	fields = append(fields, numbered("review", MaxReviews, "Text", "Author")...)
	return fields
}

// AboutFields is the editable key set of the about document.
func AboutFields() []string {
	fields := []string{
		"heroTitle", "heroBg",
		"introTitle", "introBody", "introImage1", "introImage2",
		"coreValuesTitle",
		"coreRightImage1", "coreRightImage2",
		"wayTitle", "wayBody",
		"ctaTitle", "ctaBody", "ctaLabel", "ctaUrl",
	}
	fields = append(fields, numbered("coreValue", MaxCoreValues, "Icon", "Title", "Body")...)
	fields = append(fields, numbered("promise", MaxPromises, "Title", "Body")...)
	return fields
}

// BlogFields is the editable key set of the blog document.
func BlogFields() []string {
	fields := []string{
		"heroTitle", "heroBg",
		"ctaTitle", "ctaBody", "ctaLabel", "ctaUrl",
	}
	fields = append(fields, numbered("post", MaxPosts, PostFieldSuffixes...)...)
	return fields
}

// ContactFields is the editable key set of the contact document.
func ContactFields() []string {
	fields := []string{
		"heroTitle", "heroSubtitle", "heroBg",
		"leftTitle", "leftSubtitle", "leftBg",
		"rightTitle",
		"bottomTitle",
		"reviewsTitle",
		"ctaTitle", "ctaBody", "ctaLabel", "ctaUrl",
	}
	fields = append(fields, numbered("bullet", MaxBullets)...)
	fields = append(fields, numbered("review", MaxReviews, "Text", "Author")...)
	return fields
}

// FieldsForDomain returns the editable key set of a content domain, or nil
// for unknown domains (nothing is editable by default).
func FieldsForDomain(domain string) []string {
	switch domain {
	case store.DomainHomepage:
		return HomepageFields()
	case store.DomainAbout:
		return AboutFields()
	case store.DomainBlog:
		return BlogFields()
	case store.DomainContact:
		return ContactFields()
	default:
		return nil
	}
}
