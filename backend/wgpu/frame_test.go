package wgpu

import (
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/termgrid/render"
)

// Target is the render loop's surface.
var _ render.Surface = (*Target)(nil)

// The submission path leans on HAL-managed synchronization: Submit
// takes only command buffers and returns a submission index, the
// device drains with WaitIdle, and readback goes through the
// map/copy/unmap sequence. These pin the signatures submitAndWait and
// ReadPixels are written against.
var _ interface {
	Submit(commandBuffers []hal.CommandBuffer) (submissionIndex uint64, err error)
} = hal.Queue(nil)

var _ interface {
	MapBuffer(buffer hal.Buffer, offset, size uint64) (hal.BufferMapping, error)
	UnmapBuffer(buffer hal.Buffer) error
	WaitIdle() error
} = hal.Device(nil)
