// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/crystalfontz/CFAP104212E0-0213/cfap104212e00213"
)

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// fit scales m to the largest size fitting in bounds, keeping the aspect
// ratio, and centers it on a white background.
func fit(m image.Image, bounds image.Rectangle) image.Image {
	sb := m.Bounds()
	if sb.Size() == bounds.Size() {
		return m
	}

	w, h := bounds.Dx(), sb.Dy()*bounds.Dx()/sb.Dx()
	if h > bounds.Dy() {
		w, h = sb.Dx()*bounds.Dy()/sb.Dy(), bounds.Dy()
	}

	dst := image.NewRGBA(bounds)
	draw.Draw(dst, bounds, image.White, image.Point{}, draw.Src)

	target := image.Rect(0, 0, w, h).Add(bounds.Min).Add(image.Pt((bounds.Dx()-w)/2, (bounds.Dy()-h)/2))
	// resize image using Catmull Rom scaling
	draw.CatmullRom.Scale(dst, target, m, sb, draw.Over, nil)

	return dst
}

// renderText draws text in black, centered in a yellow rounded frame.
func renderText(bounds image.Rectangle, text string, size float64) (image.Image, error) {
	font, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}

	w, h := bounds.Dx(), bounds.Dy()
	dc := gg.NewContext(w, h)
	dc.SetColor(color.White)
	dc.Clear()

	dc.SetFontFace(truetype.NewFace(font, &truetype.Options{Size: size}))

	padding := 6.0
	dc.SetColor(cfap104212e00213.YellowInk)
	dc.SetLineWidth(4)
	dc.DrawRoundedRectangle(padding, padding, float64(w)-2*padding, float64(h)-2*padding, 10)
	dc.Stroke()

	dc.SetColor(color.Black)
	dc.DrawStringAnchored(text, float64(w)/2, float64(h)/2, 0.5, 0.5)

	return dc.Image(), nil
}
