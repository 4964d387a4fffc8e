// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/crystalfontz/CFAP104212E0-0213/bitplane"
)

// header is the content of a C header holding one table per plane, in the
// format used by the Crystalfontz Arduino demos.
type header struct {
	// Prefix of the table names, e.g. "Splash" for Splash_Mono_1BPP.
	Prefix string
	// Source is printed as the source image file when set.
	Source string
	// Order of the tables in the file, by plane name.
	Order []string
	Image *bitplane.Image
}

// errWriter is a wrapper for error management.
type errWriter struct {
	w   *bufio.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) writeString(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = ew.w.WriteString(s)
}

// tableName returns the C identifier of the table holding plane name.
func tableName(prefix, name string) string {
	return fmt.Sprintf("%s_%s%s_1BPP", prefix, strings.ToUpper(name[:1]), name[1:])
}

// writeHeader writes h to w, 13 bytes per line for the 104 pixel wide panel.
func writeHeader(w io.Writer, h *header) error {
	if h.Prefix == "" {
		return errors.New("header: missing table prefix")
	}
	d := h.Image.Dims()
	order := h.Order
	if len(order) == 0 {
		order = h.Image.Names()
	}

	guard := fmt.Sprintf("__%s_H__", strings.ToUpper(h.Prefix))
	ew := errWriter{w: bufio.NewWriter(w)}

	ew.printf("#ifndef %s\n#define %s\n", guard, guard)
	ew.writeString("//=============================================================================\n")
	ew.writeString("// Generated by epdplane for the Crystalfontz CFAP104212E0-0213.\n")
	ew.writeString("//=============================================================================\n")
	if h.Source != "" {
		ew.printf("//Source image file: \"%s\"\n", h.Source)
	}
	ew.printf("#define HEIGHT_PIXELS    (%d)\n", d.Height)
	ew.printf("#define WIDTH_PIXELS     (%d)\n", d.Width)
	ew.printf("#define WIDTH_MONO_BYTES (%d)\n\n", d.Stride())

	for _, name := range order {
		data, ok := h.Image.Plane(name)
		if !ok || name == "" {
			return fmt.Errorf("%w: %q", bitplane.ErrUnknownPlane, name)
		}

		ew.printf("const uint8_t %s[%d] PROGMEM =\n{ ", tableName(h.Prefix, name), len(data))
		for i, b := range data {
			switch {
			case i == len(data)-1:
				ew.printf("0x%02X };\n\n", b)
			case (i+1)%d.Stride() == 0:
				ew.printf("0x%02X,\n", b)
			default:
				ew.printf("0x%02X,", b)
			}
		}
	}

	ew.writeString("#endif\n")

	if ew.err != nil {
		return ew.err
	}
	return ew.w.Flush()
}

var (
	reDefine = regexp.MustCompile(`(?m)^#define\s+(WIDTH_PIXELS|HEIGHT_PIXELS)\s+\(?(\d+)\)?`)
	reTable  = regexp.MustCompile(`(?s)const\s+uint8_t\s+(\w+)_([[:alnum:]]+)_1BPP\s*\[(\d+)\]\s*PROGMEM\s*=\s*\{(.*?)\}\s*;`)
	reByte   = regexp.MustCompile(`0[xX][0-9a-fA-F]{1,2}`)
)

// parseHeader reads the tables of a C header. The dimensions come from the
// WIDTH_PIXELS and HEIGHT_PIXELS definitions, or def when they are missing.
func parseHeader(r io.Reader, def bitplane.Dims) (*header, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	d := def
	for _, m := range reDefine.FindAllSubmatch(src, -1) {
		v, err := strconv.Atoi(string(m[2]))
		if err != nil {
			return nil, fmt.Errorf("header: %s: %w", m[1], err)
		}
		if string(m[1]) == "WIDTH_PIXELS" {
			d.Width = v
		} else {
			d.Height = v
		}
	}

	h := &header{}
	planes := map[string][]byte{}

	for _, m := range reTable.FindAllSubmatch(src, -1) {
		prefix, name := string(m[1]), strings.ToLower(string(m[2]))
		if h.Prefix == "" {
			h.Prefix = prefix
		} else if prefix != h.Prefix {
			return nil, fmt.Errorf("header: table prefix %q differs from %q", prefix, h.Prefix)
		}
		if _, ok := planes[name]; ok {
			return nil, fmt.Errorf("header: duplicate table for plane %q", name)
		}

		n, err := strconv.Atoi(string(m[3]))
		if err != nil {
			return nil, fmt.Errorf("header: table %s: %w", m[2], err)
		}

		data := make([]byte, 0, n)
		for _, b := range reByte.FindAll(m[4], -1) {
			v, err := strconv.ParseUint(string(b[2:]), 16, 8)
			if err != nil {
				return nil, fmt.Errorf("header: table %s: %w", m[2], err)
			}
			data = append(data, byte(v))
		}
		if len(data) != n {
			return nil, fmt.Errorf("header: table %s declares %d bytes, holds %d", m[2], n, len(data))
		}

		planes[name] = data
		h.Order = append(h.Order, name)
	}

	if h.Image, err = bitplane.ComposePlanes(planes, d); err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}
	return h, nil
}
