// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package bitplane

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// Layout maps the colours of a panel onto its planes.
//
// Palette index 0 is the background and inks no plane; index i inks plane
// i-1 only, or planes 0 to i-1 when Stacked is set. When several planes are
// inked at the same pixel the last one in Planes wins on decode.
type Layout struct {
	Dims       Dims
	Background color.Color
	Planes     []PlaneConfig
	// Stacked inks every earlier plane below a pixel of a later plane.
	Stacked bool
}

// Validate checks the dimensions and the plane list.
func (l *Layout) Validate() error {
	if err := l.Dims.Validate(); err != nil {
		return err
	}
	if len(l.Planes) == 0 {
		return ErrEmptyPlaneSet
	}
	if l.Background == nil {
		return errors.New("bitplane: layout without background colour")
	}
	seen := make(map[string]bool, len(l.Planes))
	for i, p := range l.Planes {
		switch {
		case p.Name == "":
			return fmt.Errorf("bitplane: plane %d has no name", i)
		case seen[p.Name]:
			return fmt.Errorf("bitplane: duplicate plane %q", p.Name)
		case p.Ink == nil:
			return fmt.Errorf("bitplane: plane %q has no ink colour", p.Name)
		}
		seen[p.Name] = true
	}
	return nil
}

// Palette returns the background followed by the ink of every plane.
func (l *Layout) Palette() color.Palette {
	p := make(color.Palette, 0, len(l.Planes)+1)
	p = append(p, l.Background)
	for _, plane := range l.Planes {
		p = append(p, plane.Ink)
	}
	return p
}

// Encode separates m into one plane per PlaneConfig. Each pixel is assigned
// the closest palette colour. m is in the logical orientation of c and must
// have the size of c.Bounds(l.Dims).
func (l *Layout) Encode(m image.Image, c Corner) (*Image, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	bounds, err := c.Bounds(l.Dims)
	if err != nil {
		return nil, err
	}
	src := m.Bounds()
	if src.Size() != bounds.Size() {
		return nil, fmt.Errorf("bitplane: image size %v does not match %v", src.Size(), bounds.Size())
	}

	pal := l.Palette()
	w := bounds.Dx()
	index := make([]uint8, w*bounds.Dy())

	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < w; x++ {
			index[y*w+x] = uint8(pal.Index(m.At(src.Min.X+x, src.Min.Y+y)))
		}
	}

	planes := make(map[string][]byte, len(l.Planes))

	for i, cfg := range l.Planes {
		want := uint8(i + 1)
		logical := cfg.Source(func(x, y int) bool {
			v := index[y*w+x]
			return v == want || (l.Stacked && v > want)
		})

		native, err := Rotate(logical, c, l.Dims)
		if err != nil {
			return nil, err
		}

		if planes[cfg.Name], err = Encode(native, l.Dims); err != nil {
			return nil, err
		}
	}

	return ComposePlanes(planes, l.Dims)
}

// Decode renders the planes of img named by the layout into a paletted image
// in the logical orientation of c.
func (l *Layout) Decode(img *Image, c Corner) (*image.Paletted, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if img.Dims() != l.Dims {
		return nil, fmt.Errorf("%w: image is %v, layout is %v", ErrInvalidDimensions, img.Dims(), l.Dims)
	}
	bounds, err := c.Bounds(l.Dims)
	if err != nil {
		return nil, err
	}

	bitmaps := make([]*Bitmap, len(l.Planes))
	for i, cfg := range l.Planes {
		data, ok := img.Plane(cfg.Name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPlane, cfg.Name)
		}
		if bitmaps[i], err = Decode(data, l.Dims); err != nil {
			return nil, fmt.Errorf("plane %q: %w", cfg.Name, err)
		}
	}

	out := image.NewPaletted(bounds, l.Palette())

	for i, cfg := range l.Planes {
		for pt, bit := range bitmaps[i].All() {
			if cfg.Polarity.Inked(bit) {
				p := c.logical(pt.X, pt.Y, l.Dims)
				out.SetColorIndex(p.X, p.Y, uint8(i+1))
			}
		}
	}

	return out, nil
}
