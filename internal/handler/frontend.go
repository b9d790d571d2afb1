// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/garageup/site-go/internal/config"
	"github.com/garageup/site-go/internal/render"
	"github.com/garageup/site-go/internal/service"
	"github.com/garageup/site-go/internal/store"
	"github.com/garageup/site-go/internal/util"
)

// staticCacheMaxAge is the Cache-Control lifetime for static files served
// in production (7 days).
const staticCacheMaxAge = 7 * 24 * 60 * 60

// FrontendHandler renders the public pages and resolves clean URLs.
//
// Resolution order for a path with no explicit route, first match wins:
// view named rel, view rel/index, static rel/index.html, static rel.html,
// then the generic static server (which retries extensionless paths with
// .html), then 404. A template always beats a static file of the same
// name.
type FrontendHandler struct {
	cfg         *config.Config
	store       *store.Store
	renderer    *render.Renderer
	cacheMaxAge int
}

// NewFrontendHandler creates a new FrontendHandler.
func NewFrontendHandler(cfg *config.Config, st *store.Store, renderer *render.Renderer) *FrontendHandler {
	maxAge := 0
	if cfg.IsProduction() {
		maxAge = staticCacheMaxAge
	}
	return &FrontendHandler{
		cfg:         cfg,
		store:       st,
		renderer:    renderer,
		cacheMaxAge: maxAge,
	}
}

// loadDoc reads a content document, logging corruption and always
// returning a usable document.
func (h *FrontendHandler) loadDoc(domain string) store.Document {
	doc, err := h.store.Load(domain)
	if err != nil {
		slog.Warn("content document unreadable", "domain", domain, "error", err)
	}
	return doc
}

// Home renders the homepage.
func (h *FrontendHandler) Home(w http.ResponseWriter, r *http.Request) {
	renderView(w, h.renderer, "home", map[string]any{
		"homepage": h.loadDoc(store.DomainHomepage),
	})
}

// About renders the about page. The homepage document rides along for the
// shared footer content.
func (h *FrontendHandler) About(w http.ResponseWriter, r *http.Request) {
	renderView(w, h.renderer, "about-us", map[string]any{
		"about":    h.loadDoc(store.DomainAbout),
		"homepage": h.loadDoc(store.DomainHomepage),
	})
}

// Contact renders the contact page.
func (h *FrontendHandler) Contact(w http.ResponseWriter, r *http.Request) {
	renderView(w, h.renderer, "contact-us", map[string]any{
		"bodyClass": "page-template page-template-contact-us page " + themeBodyClass,
		"contact":   h.loadDoc(store.DomainContact),
	})
}

// ContactRedirect permanently redirects the /contact shorthand.
func (h *FrontendHandler) ContactRedirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, RouteContactUs, http.StatusMovedPermanently)
}

// StaticPage returns a handler resolving a fixed page name through the
// view-then-static chain.
func (h *FrontendHandler) StaticPage(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.resolveRel(w, r, name, nil)
	}
}

// ServicePage resolves /services/{slug} to a view or a static folder.
func (h *FrontendHandler) ServicePage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if !util.IsValidSlug(slug) {
		h.NotFound(w, r)
		return
	}
	h.resolveRel(w, r, "services/"+slug, nil)
}

// BlogArchive renders the blog index, falling back to the exported static
// archive when no view is installed.
func (h *FrontendHandler) BlogArchive(w http.ResponseWriter, r *http.Request) {
	if h.renderer.Exists("blog") {
		doc := h.loadDoc(store.DomainBlog)
		renderView(w, h.renderer, "blog", map[string]any{
			"bodyClass": "blog " + themeBodyClass,
			"blog":      doc,
			"posts":     service.DerivePosts(doc),
		})
		return
	}
	if h.sendFileIfExists(w, r, filepath.Join(h.cfg.SiteRoot, "blog", "index.html")) {
		return
	}
	h.NotFound(w, r)
}

// BlogPost renders a post by slug. Unknown slugs redirect to the archive
// instead of 404ing.
func (h *FrontendHandler) BlogPost(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	post := service.FindPostBySlug(h.loadDoc(store.DomainBlog), slug)
	if post == nil {
		http.Redirect(w, r, RouteBlog, http.StatusFound)
		return
	}
	renderView(w, h.renderer, "blog-post", map[string]any{
		"bodyClass": "single single-post " + themeBodyClass,
		"post":      post,
	})
}

// Dashboard renders the admin UI. Section pages get their content
// document preloaded for the editor forms.
func (h *FrontendHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	section := chi.URLParam(r, "section")
	if section == "" {
		section = "home"
	}
	data := map[string]any{"section": section}
	if domain := dashboardSectionDomain(section); domain != "" {
		data[domain] = h.loadDoc(domain)
	}
	renderView(w, h.renderer, "dashboard", data)
}

func dashboardSectionDomain(section string) string {
	switch section {
	case "homepage":
		return store.DomainHomepage
	case "about":
		return store.DomainAbout
	case "blog":
		return store.DomainBlog
	case "contact":
		return store.DomainContact
	default:
		return ""
	}
}

// Resolve is the clean-URL fallback, mounted as the router's NotFound
// handler. Failed steps fall through silently; only exhausting the chain
// yields a 404.
func (h *FrontendHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.NotFound(w, r)
		return
	}

	reqPath := r.URL.Path

	// Paths with extensions are assets; hand them straight to static
	// serving.
	if path.Ext(reqPath) != "" {
		h.serveStatic(w, r)
		return
	}

	rel := strings.Trim(reqPath, "/")
	if rel == "" {
		// Root is handled by an explicit route; reaching here means it
		// was unmatched for another reason.
		h.NotFound(w, r)
		return
	}
	if util.ContainsPathTraversal(filepath.FromSlash(rel)) {
		h.NotFound(w, r)
		return
	}

	h.resolveRel(w, r, rel, func() { h.serveStatic(w, r) })
}

// resolveRel runs the view-then-static chain for a relative page path.
// fallthrough hands off when every step misses; nil means 404.
func (h *FrontendHandler) resolveRel(w http.ResponseWriter, r *http.Request, rel string, fallthroughFn func()) {
	if h.renderer.Exists(rel) {
		renderView(w, h.renderer, rel, nil)
		return
	}
	if h.renderer.Exists(rel + "/index") {
		renderView(w, h.renderer, rel+"/index", nil)
		return
	}
	if h.sendFileIfExists(w, r, filepath.Join(h.cfg.SiteRoot, filepath.FromSlash(rel), "index.html")) {
		return
	}
	if h.sendFileIfExists(w, r, filepath.Join(h.cfg.SiteRoot, filepath.FromSlash(rel)+".html")) {
		return
	}
	if fallthroughFn != nil {
		fallthroughFn()
		return
	}
	h.NotFound(w, r)
}

// serveStatic serves a file from the site root, retrying extensionless
// paths with .html appended before giving up.
func (h *FrontendHandler) serveStatic(w http.ResponseWriter, r *http.Request) {
	rel := strings.TrimLeft(path.Clean(r.URL.Path), "/")
	if rel == "" || rel == "." {
		h.NotFound(w, r)
		return
	}
	if util.ContainsPathTraversal(filepath.FromSlash(rel)) {
		h.NotFound(w, r)
		return
	}

	full := filepath.Join(h.cfg.SiteRoot, filepath.FromSlash(rel))
	if h.sendFileIfExists(w, r, full) {
		return
	}
	if path.Ext(rel) == "" && h.sendFileIfExists(w, r, full+".html") {
		return
	}
	h.NotFound(w, r)
}

// sendFileIfExists serves a regular file with cache headers and reports
// whether it did.
func (h *FrontendHandler) sendFileIfExists(w http.ResponseWriter, r *http.Request, fullPath string) bool {
	info, err := os.Stat(fullPath)
	if err != nil || info.IsDir() {
		return false
	}
	if h.cacheMaxAge > 0 {
		w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", h.cacheMaxAge))
	} else {
		w.Header().Set("Cache-Control", "no-cache")
	}
	http.ServeFile(w, r, fullPath)
	return true
}

// NotFound renders the 404 view when one is installed, plain text
// otherwise.
func (h *FrontendHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	if h.renderer.Exists("404") {
		renderStatus(w, h.renderer, http.StatusNotFound, "404", nil)
		return
	}
	http.Error(w, "Not Found", http.StatusNotFound)
}
