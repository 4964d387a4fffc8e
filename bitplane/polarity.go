// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package bitplane

import (
	"fmt"
	"image/color"
)

// Polarity defines which bit value marks a pixel as inked in a plane.
//
// The value depends on the panel and on the plane; a black/white plane
// commonly uses InkOnClear (blank is all ones) while a colour plane of the
// same panel uses InkOnSet (blank is all zeros).
type Polarity uint8

const (
	// InkOnClear marks inked pixels with a cleared bit.
	InkOnClear Polarity = iota
	// InkOnSet marks inked pixels with a set bit.
	InkOnSet
)

// Bit returns the bit to store for a pixel.
func (p Polarity) Bit(inked bool) bool {
	return inked == (p == InkOnSet)
}

// Inked reports whether a stored bit marks the pixel as inked.
func (p Polarity) Inked(bit bool) bool {
	return bit == (p == InkOnSet)
}

func (p Polarity) String() string {
	switch p {
	case InkOnClear:
		return "clear"
	case InkOnSet:
		return "set"
	}
	return fmt.Sprintf("Polarity(%d)", uint8(p))
}

// Set sets the Polarity to a value represented by the string s. Set
// implements the flag.Value interface.
func (p *Polarity) Set(s string) error {
	switch s {
	case "clear":
		*p = InkOnClear
	case "set":
		*p = InkOnSet
	default:
		return fmt.Errorf("unknown polarity %q: expected clear or set", s)
	}
	return nil
}

// PlaneConfig describes one plane of a panel.
type PlaneConfig struct {
	// Name identifies the plane within an Image.
	Name string
	// Ink is the colour shown for inked pixels.
	Ink color.Color
	Polarity Polarity
}

// Source returns a Source storing the bit for inked(x, y) according to the
// plane polarity.
func (c PlaneConfig) Source(inked func(x, y int) bool) Source {
	return SourceFunc(func(x, y int) bool {
		return c.Polarity.Bit(inked(x, y))
	})
}

// Blank returns a plane of size d without any inked pixel.
func (c PlaneConfig) Blank(d Dims) ([]byte, error) {
	return Encode(c.Source(func(int, int) bool { return false }), d)
}
