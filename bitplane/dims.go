// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package bitplane

import (
	"fmt"
	"image"
)

// Dims is the logical size of a plane in pixels.
type Dims struct {
	Width  int
	Height int
}

// Validate returns ErrInvalidDimensions unless both sides are positive.
func (d Dims) Validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidDimensions, d)
	}
	return nil
}

// Stride returns the number of bytes used by one row.
func (d Dims) Stride() int {
	return (d.Width + 7) / 8
}

// Len returns the number of bytes used by one plane.
func (d Dims) Len() int {
	return d.Stride() * d.Height
}

// Bounds returns the pixel rectangle, anchored at (0, 0).
func (d Dims) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.Width, d.Height)
}

func (d Dims) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// checkLen validates d and the length of a buffer meant to hold one plane.
func (d Dims) checkLen(n int) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if want := d.Len(); n != want {
		return fmt.Errorf("%w: got %d bytes, want %d for %v", ErrLengthMismatch, n, want, d)
	}
	return nil
}

// Window returns the part of the plane covering r, horizontally in bytes
// (thus aligned to 8 pixels) and vertically in pixels. r is clipped to the
// plane bounds first; the result is empty when nothing remains.
func (d Dims) Window(r image.Rectangle) image.Rectangle {
	r = d.Bounds().Intersect(r)
	if r.Empty() {
		return image.Rectangle{}
	}
	return image.Rect(r.Min.X/8, r.Min.Y, (r.Max.X+7)/8, r.Max.Y)
}
