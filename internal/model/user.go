// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines the persisted record types.
package model

// EnvAdminID is the sentinel identity for the environment-configured
// administrator, which has no entry in the users file.
const EnvAdminID = "env-admin"

// User is an entry in the users file. Identity lookup is by
// case-insensitive match on email or username. IDs are unique; emails are
// unique by convention, not enforcement.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username,omitempty"`
	Name         string `json:"name"`
	PasswordHash string `json:"passwordHash"`
}
