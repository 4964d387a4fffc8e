// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package bitplane

import (
	"image"

	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Source yields the raw bit of every pixel of a plane.
//
// Encode only queries 0 <= x < Width and 0 <= y < Height.
type Source interface {
	BitAt(x, y int) bool
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(x, y int) bool

// BitAt implements Source.
func (f SourceFunc) BitAt(x, y int) bool {
	return f(x, y)
}

// Encode packs the pixels of src into a new plane of d.Len() bytes.
//
// Eight pixels go into each byte, most significant bit first. Padding bits
// at the end of a row are always 0.
func Encode(src Source, d Dims) ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	stride := d.Stride()
	data := make([]byte, stride*d.Height)

	for y := 0; y < d.Height; y++ {
		row := data[y*stride : (y+1)*stride]

		for x := 0; x < d.Width; x++ {
			if src.BitAt(x, y) {
				row[x>>3] |= 0x80 >> (x & 7)
			}
		}
	}

	return data, nil
}

// Decode returns a view of the plane stored in data.
//
// The returned Bitmap shares data; pixels are extracted on access so the
// caller must not modify data while reading from it. Nothing is returned
// unless both the dimensions and the length of data are valid.
func Decode(data []byte, d Dims) (*Bitmap, error) {
	if err := d.checkLen(len(data)); err != nil {
		return nil, err
	}

	return &Bitmap{
		Pix:    data,
		Stride: d.Stride(),
		Rect:   d.Bounds(),
	}, nil
}

// FromVerticalLSB returns a Source reading img, with image1bit.On as a set
// bit. Coordinates are relative to the top-left corner of img.
func FromVerticalLSB(img *image1bit.VerticalLSB) Source {
	min := img.Bounds().Min

	return SourceFunc(func(x, y int) bool {
		return img.BitAt(min.X+x, min.Y+y) == image1bit.On
	})
}

// Extract returns the bytes of plane covered by the window of r (see
// Dims.Window), row after row, along with the window itself.
func Extract(plane []byte, d Dims, r image.Rectangle) ([]byte, image.Rectangle, error) {
	if err := d.checkLen(len(plane)); err != nil {
		return nil, image.Rectangle{}, err
	}

	win := d.Window(r)
	if win.Empty() {
		return nil, win, nil
	}

	stride := d.Stride()
	data := make([]byte, 0, win.Dx()*win.Dy())

	for y := win.Min.Y; y < win.Max.Y; y++ {
		data = append(data, plane[y*stride+win.Min.X:y*stride+win.Max.X]...)
	}

	return data, win, nil
}
