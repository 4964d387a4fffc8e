// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package cfap104212e00213

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/makeworld-the-better-one/dither/v2"
	"periph.io/x/conn/v3/display"

	"github.com/crystalfontz/CFAP104212E0-0213/bitplane"
)

// Opts configures a Frame.
type Opts struct {
	// Origin is the corner of the panel used as the logical (0, 0).
	Origin bitplane.Corner
	// Dither selects Floyd-Steinberg error diffusion when drawing images
	// with more colours than the panel. Otherwise the closest colour is used.
	Dither bool
}

// Frame is an image in the colours of the panel, kept in logical
// orientation. It is not safe for concurrent use.
type Frame struct {
	opts Opts
	buf  *image.Paletted
}

var _ display.Drawer = (*Frame)(nil)
var _ draw.Image = (*Frame)(nil)

// NewFrame returns a white Frame.
func NewFrame(opts *Opts) (*Frame, error) {
	bounds, err := opts.Origin.Bounds(Dims)
	if err != nil {
		return nil, err
	}

	return &Frame{
		opts: *opts,
		buf:  image.NewPaletted(bounds, Layout.Palette()),
	}, nil
}

func (f *Frame) String() string {
	return fmt.Sprintf("CFAP104212E0-0213{%v, %s}", f.buf.Rect.Size(), f.opts.Origin)
}

// Halt implements conn.Resource.
//
// It clears the frame to white.
func (f *Frame) Halt() error {
	f.Clear()
	return nil
}

// ColorModel implements image.Image. Colours are mapped to white, black or
// yellow.
func (f *Frame) ColorModel() color.Model {
	return f.buf.Palette
}

// Bounds implements image.Image.
func (f *Frame) Bounds() image.Rectangle {
	return f.buf.Rect
}

// At implements image.Image.
func (f *Frame) At(x, y int) color.Color {
	return f.buf.At(x, y)
}

// Set implements draw.Image.
func (f *Frame) Set(x, y int, c color.Color) {
	f.buf.Set(x, y, c)
}

// Draw implements display.Drawer.
func (f *Frame) Draw(dstRect image.Rectangle, src image.Image, sp image.Point) error {
	r := dstRect.Intersect(f.buf.Rect)
	if r.Empty() {
		return nil
	}
	sp = sp.Add(r.Min.Sub(dstRect.Min))

	if !f.opts.Dither {
		draw.Src.Draw(f.buf, r, src, sp)
		return nil
	}

	tmp := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(tmp, tmp.Bounds(), src, sp, draw.Src)

	d := dither.NewDitherer(f.buf.Palette)
	d.Matrix = dither.FloydSteinberg
	d.Serpentine = true
	out := d.DitherPaletted(tmp)

	for y := 0; y < r.Dy(); y++ {
		copy(f.buf.Pix[f.buf.PixOffset(r.Min.X, r.Min.Y+y):], out.Pix[y*out.Stride:y*out.Stride+r.Dx()])
	}

	return nil
}

// Clear sets every pixel to white.
func (f *Frame) Clear() {
	clear(f.buf.Pix)
}

// Planes encodes the frame into the planes of the panel.
func (f *Frame) Planes() (*bitplane.Image, error) {
	return Layout.Encode(f.buf, f.opts.Origin)
}

// Load replaces the content of the frame with img.
func (f *Frame) Load(img *bitplane.Image) error {
	if img.Dims() != Dims {
		return fmt.Errorf("cfap104212e00213: image is %v, want %v", img.Dims(), Dims)
	}

	p, err := Layout.Decode(img, f.opts.Origin)
	if err != nil {
		return err
	}

	copy(f.buf.Pix, p.Pix)
	return nil
}

// Send encodes the frame and writes the planes to s, mono first.
func (f *Frame) Send(s bitplane.Sink) error {
	img, err := f.Planes()
	if err != nil {
		return err
	}
	return bitplane.Send(s, img, PlaneOrder...)
}
