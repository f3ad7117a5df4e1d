// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"encoding/binary"
	"math"

	termgrid "github.com/gogpu/termgrid"
)

// InstanceVec is CPU-side staging for one instance stream. Elements are
// encoded into their GPU byte layout as they are appended, so Bytes is a
// zero-copy view ready for upload. Reset keeps the backing storage, which
// converges to the steady-state frame size after a few frames.
type InstanceVec struct {
	stride int
	buf    []byte
}

// NewInstanceVec creates a staging vector for elements of the given byte
// stride.
func NewInstanceVec(stride int) *InstanceVec {
	return &InstanceVec{stride: stride}
}

// Stride returns the element stride in bytes.
func (v *InstanceVec) Stride() int {
	return v.stride
}

// Count returns the number of encoded elements.
func (v *InstanceVec) Count() int {
	return len(v.buf) / v.stride
}

// Bytes returns the encoded elements. The slice aliases internal storage
// and is invalidated by the next append or Reset.
func (v *InstanceVec) Bytes() []byte {
	return v.buf
}

// Reset drops all elements, keeping capacity.
func (v *InstanceVec) Reset() {
	v.buf = v.buf[:0]
}

func (v *InstanceVec) putF32(f float32) {
	v.buf = binary.LittleEndian.AppendUint32(v.buf, math.Float32bits(f))
}

func (v *InstanceVec) putI32(i int32) {
	v.buf = binary.LittleEndian.AppendUint32(v.buf, uint32(i))
}

func (v *InstanceVec) putColor(c termgrid.RGBA) {
	v.putF32(c.R)
	v.putF32(c.G)
	v.putF32(c.B)
	v.putF32(c.A)
}
