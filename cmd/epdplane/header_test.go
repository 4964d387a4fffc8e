// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crystalfontz/CFAP104212E0-0213/bitplane"
	"github.com/crystalfontz/CFAP104212E0-0213/cfap104212e00213"
)

func splash(t *testing.T) *bitplane.Image {
	t.Helper()

	img, err := cfap104212e00213.Splash()
	require.NoError(t, err)
	return img
}

func TestParseSplashHeader(t *testing.T) {
	f, err := os.Open("testdata/splash.h")
	require.NoError(t, err)
	defer f.Close()

	h, err := parseHeader(f, bitplane.Dims{})
	require.NoError(t, err)

	assert.Equal(t, "Splash", h.Prefix)
	assert.Equal(t, []string{"yellow", "mono"}, h.Order)
	assert.Equal(t, cfap104212e00213.Dims, h.Image.Dims())

	want := splash(t)
	for _, name := range want.Names() {
		got, ok := h.Image.Plane(name)
		require.True(t, ok, name)
		data, _ := want.Plane(name)
		assert.Equal(t, data, got, name)
	}
}

func TestWriteHeaderTables(t *testing.T) {
	original, err := os.ReadFile("testdata/splash.h")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeHeader(&buf, &header{
		Prefix: "Splash",
		Order:  []string{"yellow", "mono"},
		Image:  splash(t),
	}))

	// The tables match testdata byte for byte.
	tables := func(s string) string {
		start := strings.Index(s, "const uint8_t")
		end := strings.LastIndex(s, "#endif")
		require.True(t, start >= 0 && end > start)
		return s[start:end]
	}
	assert.Equal(t, tables(string(original)), tables(buf.String()))
	assert.Contains(t, buf.String(), "#define WIDTH_MONO_BYTES (13)\n")
	assert.True(t, strings.HasPrefix(buf.String(), "#ifndef __SPLASH_H__\n#define __SPLASH_H__\n"))
}

func TestHeaderRoundTrip(t *testing.T) {
	d := bitplane.Dims{Width: 9, Height: 2}
	img, err := bitplane.ComposePlanes(map[string][]byte{
		"mono":   {0x7F, 0x80, 0xFF, 0x80},
		"yellow": {0x00, 0x00, 0x00, 0x80},
	}, d)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeHeader(&buf, &header{Prefix: "Test_Image", Source: "test.png", Image: img}))
	assert.Contains(t, buf.String(), "const uint8_t Test_Image_Mono_1BPP[4] PROGMEM =\n{ 0x7F,0x80,\n0xFF,0x80 };\n")
	assert.Contains(t, buf.String(), "//Source image file: \"test.png\"\n")

	// Dimensions come from the header, not from the default.
	h, err := parseHeader(&buf, cfap104212e00213.Dims)
	require.NoError(t, err)

	assert.Equal(t, "Test_Image", h.Prefix)
	assert.Equal(t, []string{"mono", "yellow"}, h.Order)
	assert.Equal(t, d, h.Image.Dims())

	for _, name := range img.Names() {
		want, _ := img.Plane(name)
		got, _ := h.Image.Plane(name)
		assert.Equal(t, want, got, name)
	}
}

func TestWriteHeaderErrors(t *testing.T) {
	img := splash(t)

	err := writeHeader(&bytes.Buffer{}, &header{Image: img})
	assert.Error(t, err)

	err = writeHeader(&bytes.Buffer{}, &header{Prefix: "Splash", Order: []string{"red"}, Image: img})
	assert.ErrorIs(t, err, bitplane.ErrUnknownPlane)
}

func TestParseHeaderErrors(t *testing.T) {
	d := bitplane.Dims{Width: 8, Height: 1}

	for _, tc := range []struct {
		name    string
		src     string
		wantErr error
	}{
		{
			name:    "no table",
			src:     "#define WIDTH_PIXELS (8)\n",
			wantErr: bitplane.ErrEmptyPlaneSet,
		},
		{
			name: "short table",
			src:  "const uint8_t A_Mono_1BPP[2] PROGMEM = { 0x00 };",
		},
		{
			name: "mixed prefixes",
			src:  "const uint8_t A_Mono_1BPP[1] PROGMEM = { 0x00 };\nconst uint8_t B_Yellow_1BPP[1] PROGMEM = { 0x00 };",
		},
		{
			name: "duplicate plane",
			src:  "const uint8_t A_Mono_1BPP[1] PROGMEM = { 0x00 };\nconst uint8_t A_Mono_1BPP[1] PROGMEM = { 0x00 };",
		},
		{
			name:    "wrong size",
			src:     "const uint8_t A_Mono_1BPP[2] PROGMEM = { 0x00, 0x00 };",
			wantErr: bitplane.ErrPlaneLengthMismatch,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseHeader(strings.NewReader(tc.src), d)
			require.Error(t, err)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}
