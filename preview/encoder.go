// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package preview

import (
	"image/png"
	"sync"
)

// bufferPool shares encoder buffers between all PNG encodes.
type bufferPool struct {
	p sync.Pool
}

func (b *bufferPool) Get() *png.EncoderBuffer {
	buf, _ := b.p.Get().(*png.EncoderBuffer)
	return buf
}

func (b *bufferPool) Put(buf *png.EncoderBuffer) {
	b.p.Put(buf)
}

var pngBuffers bufferPool

// pngEncoders is indexed by the negated compression level.
var pngEncoders = [...]png.Encoder{
	{CompressionLevel: png.DefaultCompression, BufferPool: &pngBuffers},
	{CompressionLevel: png.NoCompression, BufferPool: &pngBuffers},
	{CompressionLevel: png.BestSpeed, BufferPool: &pngBuffers},
	{CompressionLevel: png.BestCompression, BufferPool: &pngBuffers},
}

// pngEncoder returns an encoder for level. Unknown levels use the default
// compression.
func pngEncoder(level png.CompressionLevel) *png.Encoder {
	if level > png.DefaultCompression || level < png.BestCompression {
		level = png.DefaultCompression
	}
	return &pngEncoders[-level]
}
