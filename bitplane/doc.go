// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package bitplane converts between logical 1 bit per pixel images and the
// packed byte planes consumed by ePaper controllers.
//
// A plane is stored row-major, top row first. Each row occupies
// ceil(width/8) bytes and pixel (x, y) lives in bit 7-(x%8) of byte
// y*stride+x/8, so the leftmost pixel of a group of eight is the most
// significant bit. When the width is not a multiple of 8 the unused low
// order bits of the last byte of every row are written as 0 and ignored when
// reading.
//
// Multi-colour panels take one plane per colour. Planes sharing a geometry are
// bundled into an Image; a Layout maps a palette onto the planes of a panel.
// What a set bit means is a property of the plane (see Polarity) and never of
// the codec.
//
// All functions in this package are pure: they keep no state, perform no I/O
// and may be called concurrently on disjoint buffers.
package bitplane
