// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package cfap104212e00213

import (
	"bytes"
	_ "embed"

	"github.com/crystalfontz/CFAP104212E0-0213/bitplane"
)

var (
	//go:embed splash_mono.bin
	splashMono []byte

	//go:embed splash_yellow.bin
	splashYellow []byte
)

// Splash returns the Crystalfontz splash screen.
//
// Each call returns fresh copies of the planes.
func Splash() (*bitplane.Image, error) {
	return bitplane.ComposePlanes(map[string][]byte{
		Mono.Name:   bytes.Clone(splashMono),
		Yellow.Name: bytes.Clone(splashYellow),
	}, Dims)
}
