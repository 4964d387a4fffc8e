// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package bitplane

import "fmt"

// Sink receives encoded planes, typically to deliver them to a display
// controller. Implementations must not retain or modify data.
type Sink interface {
	WritePlane(name string, data []byte, d Dims) error
}

// errorHandler is a wrapper for error management.
type errorHandler struct {
	s   Sink
	d   Dims
	err error
}

func (eh *errorHandler) writePlane(name string, data []byte) {
	if eh.err != nil {
		return
	}
	if err := eh.s.WritePlane(name, data, eh.d); err != nil {
		eh.err = fmt.Errorf("bitplane: writing plane %q: %w", name, err)
	}
}

// Send writes the planes of img to s in the given order, or in the order of
// img.Names() when none is given. Every name is resolved before the first
// write; writing stops at the first error.
func Send(s Sink, img *Image, order ...string) error {
	if len(order) == 0 {
		order = img.Names()
	}

	planes := make([][]byte, len(order))
	for i, name := range order {
		data, ok := img.Plane(name)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownPlane, name)
		}
		planes[i] = data
	}

	eh := errorHandler{s: s, d: img.Dims()}

	for i, name := range order {
		eh.writePlane(name, planes[i])
	}

	return eh.err
}
