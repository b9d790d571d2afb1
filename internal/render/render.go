// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package render executes server-side views from a directory of
// html/template files. View names map to <dir>/<name>.html; the clean-URL
// resolver probes Exists before committing to a render.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"github.com/garageup/site-go/internal/util"
)

// Config holds renderer configuration.
type Config struct {
	ViewsDir string
	// IsDev disables the parsed-template cache so view edits show up
	// without a restart.
	IsDev bool
}

// Renderer loads and executes views.
type Renderer struct {
	dir   string
	isDev bool
	funcs template.FuncMap

	mu    sync.RWMutex
	cache map[string]*template.Template
}

// New creates a renderer over cfg.ViewsDir.
func New(cfg Config) *Renderer {
	r := &Renderer{
		dir:   cfg.ViewsDir,
		isDev: cfg.IsDev,
		cache: make(map[string]*template.Template),
	}
	r.funcs = template.FuncMap{
		"markdown": renderMarkdown,
		"safeHTML": func(s string) template.HTML { return template.HTML(s) },
	}
	return r
}

// markdownPolicy keeps common formatting tags and strips scripts and event
// handlers from rendered post bodies.
var markdownPolicy = bluemonday.UGCPolicy()

// renderMarkdown converts Markdown to sanitized HTML for template use.
func renderMarkdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(markdownPolicy.SanitizeBytes(buf.Bytes()))
}

// validName reports whether a view name is safe to resolve against the
// views directory. Names are slash-separated and must not escape upward.
func (r *Renderer) validName(name string) bool {
	if name == "" || strings.HasPrefix(name, "/") {
		return false
	}
	return !util.ContainsPathTraversal(filepath.FromSlash(name))
}

// Exists reports whether a view with the given name is present.
func (r *Renderer) Exists(name string) bool {
	if !r.validName(name) {
		return false
	}
	info, err := os.Stat(r.viewPath(name))
	return err == nil && !info.IsDir()
}

func (r *Renderer) viewPath(name string) string {
	return filepath.Join(r.dir, filepath.FromSlash(name)+".html")
}

// Render executes the named view with data into w. Callers buffer the
// output so a late template error can still become a clean 500.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	tmpl, err := r.lookup(name)
	if err != nil {
		return err
	}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("executing view %s: %w", name, err)
	}
	return nil
}

func (r *Renderer) lookup(name string) (*template.Template, error) {
	if !r.validName(name) {
		return nil, fmt.Errorf("invalid view name %q", name)
	}

	if !r.isDev {
		r.mu.RLock()
		cached, ok := r.cache[name]
		r.mu.RUnlock()
		if ok {
			return cached, nil
		}
	}

	tmpl, err := template.New(filepath.Base(name) + ".html").Funcs(r.funcs).ParseFiles(r.viewPath(name))
	if err != nil {
		return nil, fmt.Errorf("parsing view %s: %w", name, err)
	}

	if !r.isDev {
		r.mu.Lock()
		r.cache[name] = tmpl
		r.mu.Unlock()
	}
	return tmpl, nil
}
