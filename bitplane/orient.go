// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package bitplane

import (
	"fmt"
	"image"
)

// Corner describes a corner on the physical device and is used to define the
// origin of the logical image.
type Corner uint8

const (
	TopLeft Corner = iota
	TopRight
	BottomRight
	BottomLeft
)

func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomRight:
		return "bottom-right"
	case BottomLeft:
		return "bottom-left"
	}
	return fmt.Sprintf("Corner(%d)", uint8(c))
}

// Set sets the Corner to a value represented by the string s. Set implements
// the flag.Value interface.
func (c *Corner) Set(s string) error {
	switch s {
	case "top-left":
		*c = TopLeft
	case "top-right":
		*c = TopRight
	case "bottom-right":
		*c = BottomRight
	case "bottom-left":
		*c = BottomLeft
	default:
		return fmt.Errorf("unknown corner %q: expected top-left, top-right, bottom-right or bottom-left", s)
	}
	return nil
}

// Bounds returns the bounds of the logical image for a plane of size d. The
// sides are exchanged when the origin is TopRight or BottomLeft.
func (c Corner) Bounds(d Dims) (image.Rectangle, error) {
	switch c {
	case TopLeft, BottomRight:
		return image.Rect(0, 0, d.Width, d.Height), nil
	case TopRight, BottomLeft:
		return image.Rect(0, 0, d.Height, d.Width), nil
	}
	return image.Rectangle{}, fmt.Errorf("%w: %v", ErrUnknownCorner, c)
}

// logical returns the position in the logical image of the native pixel
// (x, y) of a plane of size d.
func (c Corner) logical(x, y int, d Dims) image.Point {
	switch c {
	case TopRight:
		return image.Pt(y, d.Width-x-1)
	case BottomRight:
		return image.Pt(d.Width-x-1, d.Height-y-1)
	case BottomLeft:
		return image.Pt(d.Height-y-1, x)
	}
	return image.Pt(x, y)
}

// Rotate returns a Source in the native coordinates of a plane of size d
// reading src, which is addressed in the logical orientation of c.
func Rotate(src Source, c Corner, d Dims) (Source, error) {
	if _, err := c.Bounds(d); err != nil {
		return nil, err
	}
	if c == TopLeft {
		return src, nil
	}
	return SourceFunc(func(x, y int) bool {
		p := c.logical(x, y, d)
		return src.BitAt(p.X, p.Y)
	}), nil
}
