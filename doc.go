// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package epaper is a container for the Crystalfontz CFAP104212E0-0213
// e-paper packages.
//
// bitplane packs images into the 1 bit per pixel planes of two-colour
// controllers, cfap104212e00213 describes the panel, termview and preview
// display frames without the hardware and cmd/epdplane is the command line
// front end.
package epaper
