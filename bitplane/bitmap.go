// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package bitplane

import (
	"image"
	"image/color"
	"image/draw"
	"iter"

	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Bitmap is a single plane in its packed form. A set bit is reported as
// image1bit.On.
//
// Rect always starts at (0, 0).
type Bitmap struct {
	Pix    []byte
	Stride int
	Rect   image.Rectangle
}

var _ draw.Image = &Bitmap{}
var _ Source = &Bitmap{}

// NewBitmap returns a Bitmap with all bits cleared.
func NewBitmap(d Dims) (*Bitmap, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &Bitmap{
		Pix:    make([]byte, d.Len()),
		Stride: d.Stride(),
		Rect:   d.Bounds(),
	}, nil
}

// Dims returns the size of the plane.
func (b *Bitmap) Dims() Dims {
	return Dims{Width: b.Rect.Dx(), Height: b.Rect.Dy()}
}

// ColorModel implements image.Image.
func (b *Bitmap) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds implements image.Image.
func (b *Bitmap) Bounds() image.Rectangle {
	return b.Rect
}

// At implements image.Image.
func (b *Bitmap) At(x, y int) color.Color {
	return image1bit.Bit(b.BitAt(x, y))
}

// Set implements draw.Image.
func (b *Bitmap) Set(x, y int, c color.Color) {
	b.SetBit(x, y, image1bit.BitModel.Convert(c).(image1bit.Bit) == image1bit.On)
}

// BitAt returns the bit of pixel (x, y). Pixels outside the bounds, padding
// included, read as false.
func (b *Bitmap) BitAt(x, y int) bool {
	if !(image.Point{X: x, Y: y}.In(b.Rect)) {
		return false
	}
	offset, mask := b.bitOffset(x, y)
	return b.Pix[offset]&mask != 0
}

// SetBit sets the bit of pixel (x, y). Pixels outside the bounds are ignored.
func (b *Bitmap) SetBit(x, y int, v bool) {
	if !(image.Point{X: x, Y: y}.In(b.Rect)) {
		return
	}
	offset, mask := b.bitOffset(x, y)
	if v {
		b.Pix[offset] |= mask
	} else {
		b.Pix[offset] &^= mask
	}
}

// Fill sets every pixel to v. Padding bits stay cleared.
func (b *Bitmap) Fill(v bool) {
	var fill byte
	if v {
		fill = 0xFF
	}

	// Bits of the last byte holding real pixels.
	last := byte(0xFF) << ((8 - b.Rect.Dx()%8) % 8)

	for y := 0; y < b.Rect.Dy(); y++ {
		row := b.Row(y)
		for i := range row {
			row[i] = fill
		}
		if len(row) > 0 {
			row[len(row)-1] &= last
		}
	}
}

// Row returns the packed bytes of row y, sharing the underlying buffer.
func (b *Bitmap) Row(y int) []byte {
	return b.Pix[y*b.Stride : (y+1)*b.Stride]
}

// All returns the pixels in row-major order. The sequence can be iterated
// any number of times.
func (b *Bitmap) All() iter.Seq2[image.Point, bool] {
	return func(yield func(image.Point, bool) bool) {
		for y := b.Rect.Min.Y; y < b.Rect.Max.Y; y++ {
			for x := b.Rect.Min.X; x < b.Rect.Max.X; x++ {
				if !yield(image.Pt(x, y), b.BitAt(x, y)) {
					return
				}
			}
		}
	}
}

// Values is like All without the coordinates.
func (b *Bitmap) Values() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for _, v := range b.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// bitOffset returns the byte offset and the bit mask for pixel (x, y).
func (b *Bitmap) bitOffset(x, y int) (int, byte) {
	x -= b.Rect.Min.X
	y -= b.Rect.Min.Y
	return y*b.Stride + x>>3, 0x80 >> (x & 7)
}
