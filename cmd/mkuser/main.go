// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Command mkuser provisions dashboard users in the users file. Passwords
// are bcrypt-hashed; plaintext never touches disk.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/garageup/site-go/internal/auth"
	"github.com/garageup/site-go/internal/model"
	"github.com/garageup/site-go/internal/store"
)

func main() {
	dataDir := flag.String("data", "./data", "Content data directory")
	email := flag.String("email", "", "User email (required)")
	username := flag.String("username", "", "Optional login username")
	name := flag.String("name", "", "Display name")
	password := flag.String("password", "", "Password (required)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "mkuser - add a dashboard user\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s -email user@example.com -password secret [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(*dataDir, *email, *username, *name, *password); err != nil {
		slog.Error("mkuser failed", "error", err)
		os.Exit(1)
	}
}

func run(dataDir, email, username, name, password string) error {
	email = strings.TrimSpace(email)
	username = strings.TrimSpace(username)
	name = strings.TrimSpace(name)

	if email == "" || password == "" {
		flag.Usage()
		return fmt.Errorf("email and password are required")
	}
	if name == "" {
		name = email
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	user := model.User{
		ID:           uuid.NewString(),
		Email:        email,
		Username:     username,
		Name:         name,
		PasswordHash: hash,
	}

	st := store.New(dataDir)
	if err := st.AppendUser(user); err != nil {
		return err
	}

	fmt.Printf("created user %s (%s)\n", user.Email, user.ID)
	return nil
}
