// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/crystalfontz/CFAP104212E0-0213/bitplane"
	"github.com/crystalfontz/CFAP104212E0-0213/cfap104212e00213"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &errOut
	app.ExitErrHandler = func(*cli.Context, error) {}

	err := app.Run(append([]string{"epdplane"}, args...))
	return out.String(), err
}

func TestSplashExtract(t *testing.T) {
	dir := t.TempDir()
	h := filepath.Join(dir, "splash.h")

	_, err := run(t, "splash", "--prefix", "Splash", "--out", h)
	require.NoError(t, err)

	_, err = run(t, "extract", "--out", dir, h)
	require.NoError(t, err)

	want := splash(t)
	for _, name := range want.Names() {
		got, err := os.ReadFile(filepath.Join(dir, "Splash_"+name+".bin"))
		require.NoError(t, err)
		data, _ := want.Plane(name)
		assert.Equal(t, data, got, name)
	}
}

func TestDecodePreview(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, "extract", "--out", dir, "testdata/splash.h")
	require.NoError(t, err)

	for _, tc := range []struct {
		name   string
		args   []string
		out    string
		bounds image.Rectangle
	}{
		{
			name:   "bin",
			args:   []string{"decode", "--scale", "2", "--out", filepath.Join(dir, "bin.png"), filepath.Join(dir, "Splash_mono.bin"), filepath.Join(dir, "Splash_yellow.bin")},
			out:    filepath.Join(dir, "bin.png"),
			bounds: image.Rect(0, 0, 208, 424),
		},
		{
			name:   "header rotated",
			args:   []string{"--origin", "top-right", "decode", "--out", filepath.Join(dir, "header.png"), "testdata/splash.h"},
			out:    filepath.Join(dir, "header.png"),
			bounds: image.Rect(0, 0, 212, 104),
		},
		{
			name:   "splash",
			args:   []string{"decode", "--out", filepath.Join(dir, "splash.png")},
			out:    filepath.Join(dir, "splash.png"),
			bounds: image.Rect(0, 0, 104, 212),
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := run(t, tc.args...)
			require.NoError(t, err)

			f, err := os.Open(tc.out)
			require.NoError(t, err)
			defer f.Close()

			m, err := png.Decode(f)
			require.NoError(t, err)
			assert.Equal(t, tc.bounds, m.Bounds())
		})
	}
}

func TestShow(t *testing.T) {
	for _, tc := range []struct {
		origin        string
		width, height int
	}{
		{"top-left", 104, 212},
		{"bottom-left", 212, 104},
	} {
		t.Run(tc.origin, func(t *testing.T) {
			out, err := run(t, "--origin", tc.origin, "show", "--ascii")
			require.NoError(t, err)

			lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
			require.Len(t, lines, tc.height)
			for _, l := range lines {
				assert.Len(t, l, tc.width)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	dir := t.TempDir()

	// Left half black, a yellow square, white elsewhere.
	src := image.NewRGBA(image.Rect(0, 0, cfap104212e00213.Width, cfap104212e00213.Height))
	for y := 0; y < cfap104212e00213.Height; y++ {
		for x := 0; x < cfap104212e00213.Width; x++ {
			c := color.Color(color.White)
			switch {
			case x < 52:
				c = color.Black
			case x >= 64 && x < 96 && y >= 100 && y < 132:
				c = cfap104212e00213.YellowInk
			}
			src.Set(x, y, c)
		}
	}
	in := filepath.Join(dir, "in.png")
	f, err := os.Create(in)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, src))
	require.NoError(t, f.Close())

	_, err = run(t, "encode", "--bin", "--prefix", "test", "--out", dir, in)
	require.NoError(t, err)

	frame, err := cfap104212e00213.NewFrame(&cfap104212e00213.Opts{})
	require.NoError(t, err)
	require.NoError(t, frame.Draw(frame.Bounds(), src, image.Point{}))
	want, err := frame.Planes()
	require.NoError(t, err)

	for _, name := range want.Names() {
		got, err := os.ReadFile(filepath.Join(dir, "test_"+name+".bin"))
		require.NoError(t, err)
		data, _ := want.Plane(name)
		assert.Equal(t, data, got, name)
	}

	mono, _ := want.Plane("mono")
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x0F, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, mono[:cfap104212e00213.WidthBytes])
}

func TestEncodeFit(t *testing.T) {
	dir := t.TempDir()

	in := filepath.Join(dir, "small.png")
	f, err := os.Create(in)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewGray(image.Rect(0, 0, 10, 10))))
	require.NoError(t, f.Close())

	out := filepath.Join(dir, "small.h")
	_, err = run(t, "encode", "--dither", "--out", out, in)
	require.NoError(t, err)

	r, err := os.Open(out)
	require.NoError(t, err)
	defer r.Close()

	h, err := parseHeader(r, bitplane.Dims{})
	require.NoError(t, err)
	assert.Equal(t, "Image", h.Prefix)

	// The black square is centered: the first rows stay white.
	mono, _ := h.Image.Plane("mono")
	assert.Equal(t, bytes.Repeat([]byte{0xFF}, cfap104212e00213.WidthBytes), mono[:cfap104212e00213.WidthBytes])
	assert.Equal(t, byte(0x00), mono[106*cfap104212e00213.WidthBytes+6])
}

func TestRender(t *testing.T) {
	out := filepath.Join(t.TempDir(), "hello.h")

	_, err := run(t, "--origin", "top-right", "render", "--prefix", "Hello", "--out", out, "Hello")
	require.NoError(t, err)

	r, err := os.Open(out)
	require.NoError(t, err)
	defer r.Close()

	h, err := parseHeader(r, bitplane.Dims{})
	require.NoError(t, err)

	yellow, err := h.Image.Bitmap("yellow")
	require.NoError(t, err)
	mono, err := h.Image.Bitmap("mono")
	require.NoError(t, err)

	var inkedYellow, inkedMono int
	for pt, bit := range yellow.All() {
		if cfap104212e00213.Yellow.Polarity.Inked(bit) {
			inkedYellow++
		} else if cfap104212e00213.Mono.Polarity.Inked(mono.BitAt(pt.X, pt.Y)) {
			inkedMono++
		}
	}
	assert.NotZero(t, inkedYellow, "frame")
	assert.NotZero(t, inkedMono, "text")
}

func TestVersionAndVerbose(t *testing.T) {
	out := filepath.Join(t.TempDir(), "x.h")

	_, err := run(t, "-v", "splash", "--out", out)
	require.NoError(t, err)
	assert.FileExists(t, out)

	stdout, err := run(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "1.0.0")

	stdout, err = run(t, "-V")
	require.NoError(t, err)
	assert.Contains(t, stdout, "1.0.0")
}

func TestUnknownExtensionCreatesNothing(t *testing.T) {
	out := filepath.Join(t.TempDir(), "x.txt")

	_, err := run(t, "splash", "--out", out)
	assert.Error(t, err)
	assert.NoFileExists(t, out)
}

func TestErrors(t *testing.T) {
	dir := t.TempDir()

	for _, tc := range []struct {
		name string
		args []string
	}{
		{"bad origin", []string{"--origin", "centre", "show"}},
		{"missing out", []string{"splash"}},
		{"unknown extension", []string{"splash", "--out", filepath.Join(dir, "splash.gif")}},
		{"one bin", []string{"decode", "--out", filepath.Join(dir, "x.png"), "testdata/splash.h", "testdata/splash.h", "testdata/splash.h"}},
		{"missing image", []string{"encode", "--out", filepath.Join(dir, "x.h"), filepath.Join(dir, "nothing.png")}},
		{"no text", []string{"render", "--out", filepath.Join(dir, "x.h")}},
		{"no header", []string{"extract"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := run(t, tc.args...)
			assert.Error(t, err)
		})
	}
}
