// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/garageup/site-go/internal/config"
	"github.com/garageup/site-go/internal/handler"
	"github.com/garageup/site-go/internal/middleware"
	"github.com/garageup/site-go/internal/render"
	"github.com/garageup/site-go/internal/session"
	"github.com/garageup/site-go/internal/store"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "garageup - GarageUp marketing site server\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PORT                   Server port (default: 3000)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  NODE_ENV               Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SESSION_SECRET         Session secret (required in production)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SSL                    Set true behind HTTPS to mark cookies Secure\n")
		_, _ = fmt.Fprintf(os.Stderr, "  ADMIN_USER             Environment admin username\n")
		_, _ = fmt.Fprintf(os.Stderr, "  ADMIN_EMAIL            Environment admin email\n")
		_, _ = fmt.Fprintf(os.Stderr, "  ADMIN_PASS             Environment admin password (plaintext)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  ADMIN_PASSWORD_HASH    Environment admin password (bcrypt hash)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SITE_ROOT              Static site root (default: .)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  DATA_DIR               Content JSON directory (default: ./data)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  VIEWS_DIR              Template directory (default: ./views)\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		_, _ = fmt.Printf("garageup %s (commit: %s, built: %s)\n", appVersion, appGitCommit, appBuildTime)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	st := store.New(cfg.DataDir)
	slog.Info("content store ready", "dir", cfg.DataDir)

	sessionManager := session.New(cfg.SSL)
	slog.Info("session manager initialized", "lifetime", "24h")

	renderer := render.New(render.Config{
		ViewsDir: cfg.ViewsDir,
		IsDev:    !cfg.IsProduction(),
	})

	frontendHandler := handler.NewFrontendHandler(cfg, st, renderer)
	authHandler := handler.NewAuthHandler(cfg, st, renderer, sessionManager)
	contentHandler := handler.NewContentHandler(st)
	leadsHandler := handler.NewLeadsHandler(st)
	mediaHandler := handler.NewMediaHandler(cfg.UploadsDir())

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(sessionManager.LoadAndSave)

	// Public pages
	r.Get(handler.RouteRoot, frontendHandler.Home)
	r.Get("/about-us", frontendHandler.About)
	r.Get(handler.RouteContactUs, frontendHandler.Contact)
	r.Get("/contact", frontendHandler.ContactRedirect)
	r.Get(handler.RouteBlog, frontendHandler.BlogArchive)
	r.Get(handler.RouteBlog+"/{slug}", frontendHandler.BlogPost)
	r.Get("/services", frontendHandler.StaticPage("services"))
	r.Get("/services/{slug}", frontendHandler.ServicePage)
	r.Get("/privacy-policy", frontendHandler.StaticPage("privacy-policy"))
	r.Get("/terms-and-conditions", frontendHandler.StaticPage("terms-and-conditions"))
	r.Get("/design-studio", frontendHandler.StaticPage("design-studio"))
	r.Get("/warranty", frontendHandler.StaticPage("warranty"))
	r.Get(handler.RouteAdminLogin, authHandler.LoginForm)

	// Public API
	r.Post("/api/auth/login", authHandler.Login)
	r.Post("/api/auth/logout", authHandler.Logout)
	r.Get("/api/auth/me", authHandler.Me)
	r.Post("/api/leads", leadsHandler.Create)

	// Protected dashboard and editing API
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(sessionManager))

		r.Get(handler.RouteDashboard, frontendHandler.Dashboard)
		r.Get(handler.RouteDashboard+"/{section}", frontendHandler.Dashboard)

		for _, cd := range handler.ContentDomains() {
			r.Get(cd.Route, contentHandler.Get(cd.Domain))
			r.Post(cd.Route, contentHandler.Update(cd.Domain, cd.Fields))
		}

		r.Get("/api/leads", leadsHandler.List)
		r.Post("/api/upload", mediaHandler.Upload)
	})

	// Uploaded assets get long-lived cache headers in production
	uploadsMaxAge := 0
	if cfg.IsProduction() {
		uploadsMaxAge = 7 * 24 * 60 * 60
	}
	uploadsFS := http.StripPrefix("/wp-content/uploads/",
		http.FileServer(http.Dir(cfg.UploadsDir())))
	r.With(middleware.StaticCache(uploadsMaxAge)).
		Handle("/wp-content/uploads/*", uploadsFS)

	// Development-only utilities
	if !cfg.IsProduction() {
		devTools := handler.NewDevToolsHandler(cfg)
		r.Get("/api/util/hash", devTools.Hash)
		r.Get("/api/util/auth-status", devTools.AuthStatus)
	}

	// Everything else resolves through views and the static export
	r.NotFound(frontendHandler.Resolve)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second, // Longer to allow for large uploads and slow connections
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.Addr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
