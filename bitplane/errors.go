// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package bitplane

import "errors"

var (
	// ErrInvalidDimensions is returned when the width or height is not
	// positive.
	ErrInvalidDimensions = errors.New("bitplane: invalid dimensions")

	// ErrLengthMismatch is returned when a buffer does not have the length
	// derived from its dimensions.
	ErrLengthMismatch = errors.New("bitplane: buffer length mismatch")

	// ErrPlaneLengthMismatch is returned when the planes of a bundle disagree
	// in length, either with each other or with their dimensions.
	ErrPlaneLengthMismatch = errors.New("bitplane: plane length mismatch")

	// ErrEmptyPlaneSet is returned by multi-plane operations given no planes.
	ErrEmptyPlaneSet = errors.New("bitplane: empty plane set")

	// ErrUnknownCorner is returned for a Corner outside the defined values.
	ErrUnknownCorner = errors.New("bitplane: unknown corner")

	// ErrUnknownPlane is returned when a plane name is not part of an Image.
	ErrUnknownPlane = errors.New("bitplane: unknown plane")
)
