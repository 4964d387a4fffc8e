// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package preview

import (
	"fmt"
	"strings"
)

type ImageFormat int

const (
	PNG ImageFormat = iota
	JPEG
	BMP

	// DefaultFormat is the format used when not set explicitly.
	DefaultFormat = PNG
)

func (f ImageFormat) String() string {
	switch f {
	case PNG:
		return "PNG"
	case JPEG:
		return "JPEG"
	case BMP:
		return "BMP"
	default:
		return fmt.Sprint(int(f))
	}
}

// Extension returns the usual file name extension, including the dot.
func (f ImageFormat) Extension() string {
	switch f {
	case PNG:
		return ".png"
	case JPEG:
		return ".jpg"
	case BMP:
		return ".bmp"
	}

	return ".bin"
}

func (f ImageFormat) mimeType() string {
	switch f {
	case PNG:
		return "image/png"
	case JPEG:
		return "image/jpeg"
	case BMP:
		return "image/bmp"
	}

	return "application/octet-stream"
}

// ImageFormatFromString returns the ImageFormat value for the given format
// abbreviation or file name extension.
func ImageFormatFromString(value string) (ImageFormat, error) {
	switch strings.TrimPrefix(strings.ToLower(value), ".") {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "bmp":
		return BMP, nil
	}

	return DefaultFormat, fmt.Errorf("unrecognized image format %q", value)
}
