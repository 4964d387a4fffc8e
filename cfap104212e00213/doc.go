// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package cfap104212e00213 describes the Crystalfontz CFAP104212E0-0213
// 2.13" black/white/yellow e-paper panel: its geometry, the layout of its two
// planes and the splash image shipped with the panel.
//
// Frame is a drawing surface in the colours of the panel which renders to
// the packed planes expected by the controller.
//
// Product page:
//
// https://www.crystalfontz.com/product/cfap104212e00213
//
package cfap104212e00213
