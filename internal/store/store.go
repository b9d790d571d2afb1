// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package store persists site state as flat JSON files under a single data
// directory: one object per content domain, plus a users array and a leads
// array. All operations are whole-file reads and writes with no locking;
// concurrent saves to the same domain race and the last write wins on the
// merged object. That is a documented limitation of the single-admin usage
// model, not something this package tries to hide.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Document is a flat string-to-string content mapping persisted as a
// single JSON object.
type Document map[string]string

// Content domains backed by one JSON file each.
const (
	DomainHomepage = "homepage"
	DomainAbout    = "about"
	DomainBlog     = "blog"
	DomainContact  = "contact"
)

// Store reads and writes JSON documents under a data directory.
type Store struct {
	dir string
}

// New creates a store rooted at dir. The directory is created on first write.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the data directory the store is rooted at.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) filePath(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Load reads the document for a domain. A missing file is expected and
// yields an empty document with no error. An unreadable or corrupt file
// also yields an empty document, but with an error the caller should log;
// clients always get a usable document either way.
func (s *Store) Load(domain string) (Document, error) {
	raw, err := os.ReadFile(s.filePath(domain))
	if errors.Is(err, fs.ErrNotExist) {
		return Document{}, nil
	}
	if err != nil {
		return Document{}, fmt.Errorf("reading %s document: %w", domain, err)
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Document{}, fmt.Errorf("parsing %s document: %w", domain, err)
	}
	if doc == nil {
		doc = Document{}
	}
	return doc, nil
}

// Save shallow-merges partial over the current document and writes the
// result back. Keys in partial overwrite; keys absent from partial are
// preserved. An unreadable current document merges over empty, matching
// Load. Returns the merged document.
func (s *Store) Save(domain string, partial Document) (Document, error) {
	merged, _ := s.Load(domain)
	for k, v := range partial {
		merged[k] = v
	}
	if err := s.writeJSON(s.filePath(domain), merged); err != nil {
		return nil, fmt.Errorf("saving %s document: %w", domain, err)
	}
	return merged, nil
}

// writeJSON marshals v and replaces path via a temp file and rename.
// Atomic within the single-process model; no cross-process locking.
func (s *Store) writeJSON(path string, v any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, ".write-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", filepath.Base(path), err)
	}
	return nil
}

// readList reads a JSON array file into out. Missing, unreadable, or
// malformed files leave out untouched and report whether an error occurred
// beyond plain absence.
func (s *Store) readList(name string, out any) error {
	raw, err := os.ReadFile(s.filePath(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s list: %w", name, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parsing %s list: %w", name, err)
	}
	return nil
}
