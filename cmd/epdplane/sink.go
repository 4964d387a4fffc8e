// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/crystalfontz/CFAP104212E0-0213/bitplane"
)

// fileSink writes each plane to "<dir>/<prefix>_<name>.bin".
type fileSink struct {
	dir    string
	prefix string
	// written lists the files created so far.
	written []string
}

var _ bitplane.Sink = (*fileSink)(nil)

func (s *fileSink) path(name string) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s_%s.bin", s.prefix, name))
}

// WritePlane implements bitplane.Sink.
func (s *fileSink) WritePlane(name string, data []byte, d bitplane.Dims) error {
	p := s.path(name)
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return err
	}
	slog.Debug("wrote plane", "plane", name, "dims", d, "bytes", len(data), "file", p)
	s.written = append(s.written, p)
	return nil
}
