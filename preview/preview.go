// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package preview renders panel frames into common image formats, for
// documentation or for checking a frame without the hardware.
package preview

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// Options for Encode.
type Options struct {
	Format ImageFormat

	// Scale enlarges every pixel to a Scale x Scale square. Values below 2
	// keep the original size.
	Scale int

	// Quality is the JPEG quality, jpeg.DefaultQuality when 0.
	Quality int

	// Compression is the PNG compression level.
	Compression png.CompressionLevel
}

// Encode writes m to w in the requested format.
func Encode(w io.Writer, m image.Image, opts *Options) error {
	if opts.Scale > 1 {
		m = Scale(m, opts.Scale)
	}

	switch opts.Format {
	case PNG:
		return pngEncoder(opts.Compression).Encode(w, m)

	case JPEG:
		q := opts.Quality
		if q == 0 {
			q = jpeg.DefaultQuality
		}
		return jpeg.Encode(w, m, &jpeg.Options{Quality: q})

	case BMP:
		return bmp.Encode(w, m)
	}

	return fmt.Errorf("preview: unsupported format %v (%s)", opts.Format, opts.Format.mimeType())
}

// Scale returns a copy of m enlarged by factor without interpolation, so
// that every pixel stays sharp.
func Scale(m image.Image, factor int) image.Image {
	b := m.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), m, b, draw.Src, nil)
	return dst
}
