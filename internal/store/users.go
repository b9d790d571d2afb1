// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/garageup/site-go/internal/model"
)

const usersFile = "users"

// Users returns the user list. Missing or corrupt files yield an empty
// list; corruption is logged rather than surfaced, a login against a
// broken users file simply fails with invalid credentials.
func (s *Store) Users() []model.User {
	var users []model.User
	if err := s.readList(usersFile, &users); err != nil {
		slog.Warn("users file unreadable", "error", err)
		return nil
	}
	return users
}

// FindUserByIdentifier looks up a user by case-insensitive email or
// username match. Returns nil when no user matches.
func (s *Store) FindUserByIdentifier(identifier string) *model.User {
	q := strings.ToLower(strings.TrimSpace(identifier))
	if q == "" {
		return nil
	}
	for _, u := range s.Users() {
		if (u.Email != "" && strings.ToLower(u.Email) == q) ||
			(u.Username != "" && strings.ToLower(u.Username) == q) {
			return &u
		}
	}
	return nil
}

// FindUserByID looks up a user by exact id. Returns nil when absent.
func (s *Store) FindUserByID(id string) *model.User {
	for _, u := range s.Users() {
		if u.ID == id {
			return &u
		}
	}
	return nil
}

// AppendUser adds a user to the users file. The caller is responsible for
// id uniqueness; identifier collisions are rejected here.
func (s *Store) AppendUser(u model.User) error {
	if existing := s.FindUserByIdentifier(u.Email); existing != nil {
		return fmt.Errorf("user with email %q already exists", u.Email)
	}
	if u.Username != "" {
		if existing := s.FindUserByIdentifier(u.Username); existing != nil {
			return fmt.Errorf("user with username %q already exists", u.Username)
		}
	}
	users := append(s.Users(), u)
	if err := s.writeJSON(s.filePath(usersFile), users); err != nil {
		return fmt.Errorf("saving users: %w", err)
	}
	return nil
}
