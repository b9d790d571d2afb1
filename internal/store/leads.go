// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"fmt"
	"log/slog"

	"github.com/garageup/site-go/internal/model"
)

const leadsFile = "leads"

// Leads returns the captured lead list, oldest first. Missing or corrupt
// files yield an empty list; corruption is logged.
func (s *Store) Leads() []model.Lead {
	var leads []model.Lead
	if err := s.readList(leadsFile, &leads); err != nil {
		slog.Warn("leads file unreadable", "error", err)
		return nil
	}
	return leads
}

// AppendLead appends a lead record. Leads are never mutated or deleted
// through this interface.
func (s *Store) AppendLead(l model.Lead) error {
	leads := append(s.Leads(), l)
	if err := s.writeJSON(s.filePath(leadsFile), leads); err != nil {
		return fmt.Errorf("saving leads: %w", err)
	}
	return nil
}
