// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Lead is an append-only capture record from the public contact forms.
// A lead needs a first and last name plus at least one way to reach back.
type Lead struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Phone     string `json:"phone" validate:"required_without=Email"`
	Email     string `json:"email" validate:"required_without=Phone"`
	Zip       string `json:"zip"`
	City      string `json:"city"`
	State     string `json:"state"`
	Message   string `json:"message"`
	Source    string `json:"source"`
	UserAgent string `json:"userAgent"`
	IP        string `json:"ip"`
	CreatedAt string `json:"createdAt"`
}
