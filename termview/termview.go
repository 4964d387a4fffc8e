// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package termview implements a display.Drawer that outputs to terminal
// (stdout) using ANSI color codes, or plain characters when the output is
// not a terminal.
//
// Useful to look at a frame before flashing it to a panel.
package termview

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"os"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"periph.io/x/conn/v3/display"
)

// Ramp lists the characters used in ASCII mode, from lightest to darkest.
const Ramp = " .:-=+*#%@"

// Opts represents the options available for this display.
type Opts struct {
	Width, Height int
	// W defaults to stdout.
	W       io.Writer
	Palette *ansi256.Palette
	// ASCII disables colours. It is forced when W is not set and stdout is
	// not a terminal.
	ASCII bool

	_ struct{}
}

// Dev is a 2D display emulator that outputs to the console.
type Dev struct {
	w       io.Writer
	palette ansi256.Palette
	ascii   bool

	pixels *image.NRGBA
	buf    bytes.Buffer
}

// New returns a Dev that displays at the console.
func New(opts *Opts) *Dev {
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	w := opts.W
	ascii := opts.ASCII
	if w == nil {
		w = colorable.NewColorableStdout()
		fd := os.Stdout.Fd()
		if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
			ascii = true
		}
	}
	d := &Dev{
		w:       w,
		palette: *p,
		ascii:   ascii,
		pixels:  image.NewNRGBA(image.Rect(0, 0, opts.Width, opts.Height)),
	}
	draw.Draw(d.pixels, d.pixels.Rect, image.White, image.Point{}, draw.Src)
	return d
}

func (d *Dev) String() string {
	return fmt.Sprintf("TermView{%dx%d}", d.pixels.Rect.Dx(), d.pixels.Rect.Dy())
}

// Halt implements conn.Resource.
//
// It resets the terminal colours.
func (d *Dev) Halt() error {
	if d.ascii {
		return nil
	}
	_, err := io.WriteString(d.w, "\033[0m")
	return err
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements display.Drawer.
func (d *Dev) Bounds() image.Rectangle {
	return d.pixels.Rect
}

// Draw implements display.Drawer.
//
// The whole screen is written out after each call.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	draw.Draw(d.pixels, r, src, sp, draw.Src)
	return d.refresh()
}

func (d *Dev) refresh() error {
	// This code is designed to minimize the amount of memory allocated per call.
	d.buf.Reset()
	b := d.pixels.Rect
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := d.pixels.NRGBAAt(x, y)
			if d.ascii {
				_ = d.buf.WriteByte(glyph(c))
			} else {
				_, _ = d.buf.WriteString(d.palette.Block(c))
			}
		}
		if !d.ascii {
			_, _ = d.buf.WriteString("\033[0m")
		}
		_ = d.buf.WriteByte('\n')
	}
	_, err := d.buf.WriteTo(d.w)
	return err
}

// glyph returns the Ramp character for the luminance of c.
func glyph(c color.NRGBA) byte {
	y := color.GrayModel.Convert(c).(color.Gray).Y
	return Ramp[int(255-y)*(len(Ramp)-1)/255]
}

var _ display.Drawer = &Dev{}
var _ fmt.Stringer = &Dev{}
