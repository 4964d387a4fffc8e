// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package bitplane

import (
	"fmt"
	"maps"
	"slices"
)

// Image is a set of named planes sharing the same dimensions.
//
// The planes are bundled, not merged: each one stays addressable on its own,
// as two-colour controllers keep a separate RAM per plane.
type Image struct {
	dims   Dims
	names  []string
	planes map[string][]byte
}

// ComposePlanes bundles planes of size d into an Image.
//
// The plane buffers are not copied. Every plane must have exactly d.Len()
// bytes.
func ComposePlanes(planes map[string][]byte, d Dims) (*Image, error) {
	if len(planes) == 0 {
		return nil, ErrEmptyPlaneSet
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	names := slices.Sorted(maps.Keys(planes))
	first := len(planes[names[0]])
	want := d.Len()

	for _, name := range names {
		n := len(planes[name])
		if n != first {
			return nil, fmt.Errorf("%w: plane %q has %d bytes, plane %q has %d", ErrPlaneLengthMismatch, name, n, names[0], first)
		}
		if n != want {
			return nil, fmt.Errorf("%w: plane %q has %d bytes, want %d for %v", ErrPlaneLengthMismatch, name, n, want, d)
		}
	}

	return &Image{
		dims:   d,
		names:  names,
		planes: maps.Clone(planes),
	}, nil
}

// Dims returns the dimensions shared by all planes.
func (m *Image) Dims() Dims {
	return m.dims
}

// Names returns the plane names in sorted order.
func (m *Image) Names() []string {
	return slices.Clone(m.names)
}

// Plane returns the packed bytes of a plane.
func (m *Image) Plane(name string) ([]byte, bool) {
	data, ok := m.planes[name]
	return data, ok
}

// Bitmap returns a decoded view of a plane.
func (m *Image) Bitmap(name string) (*Bitmap, error) {
	data, ok := m.planes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlane, name)
	}
	return Decode(data, m.dims)
}

func (m *Image) String() string {
	return fmt.Sprintf("bitplane.Image{%v, %v}", m.dims, m.names)
}
