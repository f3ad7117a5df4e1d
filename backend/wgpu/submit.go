package wgpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/termgrid/render"
)

// passDraw is one recorded pass: the instance bytes and count, staged
// until Present encodes the whole frame.
type passDraw struct {
	pass  render.PassKind
	data  []byte
	count int
}

// Frame collects the draws of one frame and submits them as a single
// command buffer on Present. Nothing reaches the GPU before Present, so
// a discarded or failed frame leaves the color target untouched.
type Frame struct {
	target *Target
	draws  []passDraw
	done   bool
}

// Draw implements render.FrameTarget. The data is copied; the caller may
// reuse its staging storage immediately.
func (f *Frame) Draw(pass render.PassKind, data []byte, count int) error {
	if f.done {
		return fmt.Errorf("wgpu: draw on finished frame")
	}
	if count == 0 {
		return nil
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	f.draws = append(f.draws, passDraw{pass: pass, data: buf, count: count})
	return nil
}

// Present implements render.FrameTarget: it uploads every pass's
// instance data, encodes one render pass executing the draws in recorded
// order, and submits, blocking until the GPU finishes.
func (f *Frame) Present() error {
	if f.done {
		return fmt.Errorf("wgpu: present on finished frame")
	}
	f.done = true

	t := f.target
	device, queue := t.dev.HAL()

	for _, d := range f.draws {
		if err := t.buffers[d.pass].upload(device, queue, d.data); err != nil {
			return err
		}
	}

	encoder, err := device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "grid_frame_encoder",
	})
	if err != nil {
		return fmt.Errorf("wgpu: create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("grid_frame"); err != nil {
		return fmt.Errorf("wgpu: begin encoding: %w", err)
	}

	clear := t.cfg.ClearColor
	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "grid_frame_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:       t.colorView,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: gputypes.Color{R: float64(clear.R), G: float64(clear.G), B: float64(clear.B), A: float64(clear.A)},
		}},
	})

	for _, d := range f.draws {
		rp.SetPipeline(t.pipes.forPass(d.pass))
		if d.pass == render.PassGlyph {
			rp.SetBindGroup(0, t.atlasBind, nil)
		}
		rp.SetVertexBuffer(0, t.buffers[d.pass].buf, 0)
		if d.pass == render.PassVector {
			// Triangle list: the stream is plain vertices.
			rp.Draw(uint32(d.count), 1, 0, 0)
		} else {
			// Triangle strip: four corners per instance.
			rp.Draw(4, uint32(d.count), 0, 0)
		}
	}
	rp.End()

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("wgpu: end encoding: %w", err)
	}
	return t.submitAndWait(cmdBuf)
}

// Discard implements render.FrameTarget. The recorded draws are dropped;
// nothing was submitted.
func (f *Frame) Discard() {
	f.done = true
	f.draws = nil
}
