// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service holds the content-editing business rules: the field
// allow-list filter that gates every write to the content store, the
// per-domain editable field sets, and blog post derivation.
package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/garageup/site-go/internal/store"
)

// FilterFields reduces a raw request body to the allow-listed payload that
// may reach the content store. A key is included only when it is
// allow-listed, present in the body, and its string form trims non-empty.
// An empty value means "leave the existing value unchanged", never "clear
// it"; fields cannot be cleared through this path at all, which is a
// deliberate product decision. This filter is the sole sanitization
// barrier between request bodies and persistence.
func FilterFields(raw map[string]any, allowed []string) store.Document {
	payload := store.Document{}
	for _, k := range allowed {
		v, ok := raw[k]
		if !ok {
			continue
		}
		str := coerceString(v)
		if strings.TrimSpace(str) == "" {
			continue
		}
		payload[k] = str
	}
	return payload
}

// coerceString renders a decoded JSON or form value as a string.
// Null becomes empty and is later dropped by the trim check.
func coerceString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}
