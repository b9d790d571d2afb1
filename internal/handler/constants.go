// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

// Route paths shared across handlers and router wiring.
const (
	RouteRoot       = "/"
	RouteAdminLogin = "/admin-login"
	RouteDashboard  = "/dashboard"
	RouteBlog       = "/blog"
	RouteContactUs  = "/contact-us"
)

// themeBodyClass carries the WordPress theme body classes the exported
// static styles key off.
const themeBodyClass = "wp-theme-resi-franchise wp-child-theme-garageup"
