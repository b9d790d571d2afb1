// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package imaging generates resized variants of uploaded images.
package imaging

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// ThumbWidth is the width of the generated thumbnail variant.
const ThumbWidth = 480

// IsThumbnailable reports whether a stored file is an image type the
// thumbnailer can decode.
func IsThumbnailable(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg", ".png":
		return true
	default:
		return false
	}
}

// Thumbnail writes a ThumbWidth-wide variant next to the source image,
// named <base>-480w<ext>, preserving aspect ratio. Images already at or
// below ThumbWidth are left alone and return an empty path. The original
// file is never modified.
func Thumbnail(srcPath string) (string, error) {
	if !IsThumbnailable(srcPath) {
		return "", fmt.Errorf("unsupported image type %q", filepath.Ext(srcPath))
	}

	img, err := imaging.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", filepath.Base(srcPath), err)
	}
	if img.Bounds().Dx() <= ThumbWidth {
		return "", nil
	}

	thumb := imaging.Resize(img, ThumbWidth, 0, imaging.Lanczos)
	ext := filepath.Ext(srcPath)
	dstPath := fmt.Sprintf("%s-%dw%s", strings.TrimSuffix(srcPath, ext), ThumbWidth, ext)
	if err := imaging.Save(thumb, dstPath); err != nil {
		return "", fmt.Errorf("saving thumbnail: %w", err)
	}
	return dstPath, nil
}
