// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package cfap104212e00213

import (
	"image/color"

	"github.com/crystalfontz/CFAP104212E0-0213/bitplane"
)

// Panel geometry in its native orientation.
const (
	Width      = 104
	Height     = 212
	WidthBytes = (Width + 7) / 8
)

// Dims is the size of one plane.
var Dims = bitplane.Dims{Width: Width, Height: Height}

// YellowInk is the colour used for the yellow plane.
var YellowInk = color.RGBA{R: 0xFF, G: 0xFF, A: 0xFF}

var (
	// Mono is the black/white plane. A cleared bit is black.
	Mono = bitplane.PlaneConfig{Name: "mono", Ink: color.Black, Polarity: bitplane.InkOnClear}
	// Yellow is the colour plane. A set bit is yellow.
	Yellow = bitplane.PlaneConfig{Name: "yellow", Ink: YellowInk, Polarity: bitplane.InkOnSet}
)

// Layout maps white, black and yellow onto the planes of the panel. Yellow
// pixels are black on the mono plane as well.
var Layout = bitplane.Layout{
	Dims:       Dims,
	Background: color.White,
	Planes:     []bitplane.PlaneConfig{Mono, Yellow},
	Stacked:    true,
}

// PlaneOrder is the order in which the controller receives the planes.
var PlaneOrder = []string{Mono.Name, Yellow.Name}
