package wgpu

import (
	"fmt"
	"unsafe"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/termgrid/atlas"
	"github.com/gogpu/termgrid/render"

	termgrid "github.com/gogpu/termgrid"
)

// atlasFormat is single-channel coverage.
const atlasFormat = gputypes.TextureFormatR8Unorm

// SurfaceConfig describes the offscreen render target.
type SurfaceConfig struct {
	Width  uint32
	Height uint32

	// AtlasDim is the square atlas layer edge length in texels.
	AtlasDim uint32

	// AtlasLayers is the initial array layer count; uploads grow it.
	AtlasLayers uint32

	ClearColor termgrid.RGBA
}

// DefaultSurfaceConfig returns a surface configuration with a 1024 texel
// single-layer atlas. Width and Height must still be set.
func DefaultSurfaceConfig() SurfaceConfig {
	return SurfaceConfig{AtlasDim: 1024, AtlasLayers: 1}
}

// Validate checks the configuration.
func (c *SurfaceConfig) Validate() error {
	if c.Width == 0 || c.Height == 0 {
		return fmt.Errorf("wgpu: surface size %dx%d must be positive", c.Width, c.Height)
	}
	if c.AtlasDim == 0 {
		return fmt.Errorf("wgpu: atlas dimension must be positive")
	}
	if c.AtlasLayers == 0 {
		return fmt.Errorf("wgpu: atlas layer count must be positive")
	}
	return nil
}

// Target is a GPU render surface over an offscreen color texture. It
// implements render.Surface: Acquire hands out one Frame at a time, and
// the frame's passes are submitted as a single command buffer.
//
// Not safe for concurrent use; one Target serves one render loop.
type Target struct {
	dev   *Device
	cfg   SurfaceConfig
	pipes *pipelines

	colorTex  hal.Texture
	colorView hal.TextureView

	atlasTex    hal.Texture
	atlasView   hal.TextureView
	atlasBind   hal.BindGroup
	atlasLayers uint32

	buffers [render.PassVector + 1]*growBuffer

	closed bool
}

// NewTarget creates the pipelines, the color target, and the atlas
// texture on the given device.
func NewTarget(dev *Device, cfg SurfaceConfig) (*Target, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	device, _ := dev.HAL()

	pipes, err := createPipelines(device)
	if err != nil {
		return nil, err
	}
	t := &Target{dev: dev, cfg: cfg, pipes: pipes}

	if err := t.createColorTarget(); err != nil {
		t.Close()
		return nil, err
	}
	if err := t.createAtlas(cfg.AtlasLayers); err != nil {
		t.Close()
		return nil, err
	}
	for i := range t.buffers {
		t.buffers[i] = &growBuffer{label: fmt.Sprintf("grid_pass_%d", i)}
	}
	return t, nil
}

func (t *Target) createColorTarget() error {
	device, _ := t.dev.HAL()
	tex, err := device.CreateTexture(&hal.TextureDescriptor{
		Label:         "grid_color",
		Size:          hal.Extent3D{Width: t.cfg.Width, Height: t.cfg.Height, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        surfaceFormat,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		return fmt.Errorf("wgpu: create color texture: %w", err)
	}
	view, err := device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label: "grid_color_view",
	})
	if err != nil {
		device.DestroyTexture(tex)
		return fmt.Errorf("wgpu: create color view: %w", err)
	}
	t.colorTex = tex
	t.colorView = view
	return nil
}

func (t *Target) createAtlas(layers uint32) error {
	device, _ := t.dev.HAL()
	tex, err := device.CreateTexture(&hal.TextureDescriptor{
		Label:         "grid_atlas",
		Size:          hal.Extent3D{Width: t.cfg.AtlasDim, Height: t.cfg.AtlasDim, DepthOrArrayLayers: layers},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        atlasFormat,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("wgpu: create atlas texture: %w", err)
	}
	view, err := device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:     "grid_atlas_view",
		Format:    atlasFormat,
		Dimension: gputypes.TextureViewDimension2DArray,
		Aspect:    gputypes.TextureAspectAll,
	})
	if err != nil {
		device.DestroyTexture(tex)
		return fmt.Errorf("wgpu: create atlas view: %w", err)
	}
	bind, err := device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "grid_atlas_bind",
		Layout: t.pipes.glyphBindLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.TextureViewBinding{TextureView: view.NativeHandle()}},
			{Binding: 1, Resource: gputypes.SamplerBinding{Sampler: t.pipes.sampler.NativeHandle()}},
		},
	})
	if err != nil {
		device.DestroyTextureView(view)
		device.DestroyTexture(tex)
		return fmt.Errorf("wgpu: create atlas bind group: %w", err)
	}

	t.atlasTex = tex
	t.atlasView = view
	t.atlasBind = bind
	t.atlasLayers = layers
	return nil
}

func (t *Target) destroyAtlas() {
	device, _ := t.dev.HAL()
	if t.atlasBind != nil {
		device.DestroyBindGroup(t.atlasBind)
		t.atlasBind = nil
	}
	if t.atlasView != nil {
		device.DestroyTextureView(t.atlasView)
		t.atlasView = nil
	}
	if t.atlasTex != nil {
		device.DestroyTexture(t.atlasTex)
		t.atlasTex = nil
	}
}

// UploadAtlas pushes the staging store's dirty layers to the GPU. When
// staging has grown past the texture's layer count the texture is
// recreated and every layer re-uploaded. Call between frames only.
func (t *Target) UploadAtlas(staging *atlas.Staging) error {
	_, queue := t.dev.HAL()
	layers := uint32(staging.LayerCount())

	if layers > t.atlasLayers {
		grown := t.atlasLayers
		for grown < layers {
			grown *= 2
		}
		t.destroyAtlas()
		if err := t.createAtlas(grown); err != nil {
			return err
		}
		staging.TakeDirty()
		t.uploadLayers(queue, staging, allLayers(staging.LayerCount()))
		return nil
	}
	t.uploadLayers(queue, staging, staging.TakeDirty())
	return nil
}

func allLayers(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func (t *Target) uploadLayers(queue hal.Queue, staging *atlas.Staging, layers []int) {
	dim := uint32(staging.Dim())
	for _, layer := range layers {
		page := staging.Page(layer)
		if page == nil {
			continue
		}
		queue.WriteTexture(
			&hal.ImageCopyTexture{
				Texture:  t.atlasTex,
				MipLevel: 0,
				Origin:   hal.Origin3D{Z: uint32(layer)},
			},
			page,
			&hal.ImageDataLayout{
				Offset:       0,
				BytesPerRow:  dim,
				RowsPerImage: dim,
			},
			&hal.Extent3D{Width: dim, Height: dim, DepthOrArrayLayers: 1},
		)
	}
}

// Resize recreates the color target for a new surface size. Call between
// frames only.
func (t *Target) Resize(width, height uint32) error {
	if width == 0 || height == 0 {
		return fmt.Errorf("wgpu: resize to %dx%d", width, height)
	}
	device, _ := t.dev.HAL()
	if t.colorView != nil {
		device.DestroyTextureView(t.colorView)
		t.colorView = nil
	}
	if t.colorTex != nil {
		device.DestroyTexture(t.colorTex)
		t.colorTex = nil
	}
	t.cfg.Width = width
	t.cfg.Height = height
	return t.createColorTarget()
}

// Acquire implements render.Surface.
func (t *Target) Acquire() (render.FrameTarget, error) {
	if t.closed || t.colorView == nil {
		return nil, fmt.Errorf("wgpu: target unavailable: %w", render.ErrSurfaceAcquisition)
	}
	return &Frame{target: t}, nil
}

// Close releases every GPU resource. The device itself is left to its
// owner.
func (t *Target) Close() {
	if t.closed {
		return
	}
	t.closed = true
	device, _ := t.dev.HAL()
	for _, b := range t.buffers {
		if b != nil {
			b.destroy(device)
		}
	}
	t.destroyAtlas()
	if t.colorView != nil {
		device.DestroyTextureView(t.colorView)
		t.colorView = nil
	}
	if t.colorTex != nil {
		device.DestroyTexture(t.colorTex)
		t.colorTex = nil
	}
	if t.pipes != nil {
		t.pipes.destroy(device)
		t.pipes = nil
	}
}

// ReadPixels blocks until the GPU is idle and returns the color target's
// BGRA bytes, row-major without padding.
func (t *Target) ReadPixels() ([]byte, error) {
	device, _ := t.dev.HAL()
	w, h := t.cfg.Width, t.cfg.Height
	size := uint64(w) * uint64(h) * 4

	staging, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: "grid_readback",
		Size:  size,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create readback buffer: %w", err)
	}
	defer device.DestroyBuffer(staging)

	encoder, err := device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "grid_readback_encoder"})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create encoder: %w", err)
	}
	if err := encoder.BeginEncoding("grid_readback"); err != nil {
		return nil, fmt.Errorf("wgpu: begin encoding: %w", err)
	}
	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: t.colorTex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageRenderAttachment,
			NewUsage: gputypes.TextureUsageCopySrc,
		},
	}})
	encoder.CopyTextureToBuffer(t.colorTex, staging, []hal.BufferTextureCopy{{
		BufferLayout: hal.ImageDataLayout{Offset: 0, BytesPerRow: w * 4, RowsPerImage: h},
		TextureBase:  hal.ImageCopyTexture{Texture: t.colorTex, MipLevel: 0},
		Size:         hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	}})
	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return nil, fmt.Errorf("wgpu: end encoding: %w", err)
	}

	if err := t.submitAndWait(cmdBuf); err != nil {
		return nil, err
	}

	// The wait in submitAndWait guarantees the copy has landed before
	// the buffer is mapped.
	out := make([]byte, size)
	mapping, err := device.MapBuffer(staging, 0, size)
	if err != nil {
		return nil, fmt.Errorf("wgpu: map readback buffer: %w", err)
	}
	copy(out, unsafe.Slice((*byte)(mapping.Ptr), size))
	if err := device.UnmapBuffer(staging); err != nil {
		return nil, fmt.Errorf("wgpu: unmap readback buffer: %w", err)
	}
	return out, nil
}

// submitAndWait submits one command buffer and blocks until the GPU is
// idle. The HAL manages its own submission fences.
func (t *Target) submitAndWait(cmdBuf hal.CommandBuffer) error {
	device, queue := t.dev.HAL()
	if _, err := queue.Submit([]hal.CommandBuffer{cmdBuf}); err != nil {
		return fmt.Errorf("wgpu: submit: %w", err)
	}
	if err := device.WaitIdle(); err != nil {
		return fmt.Errorf("wgpu: wait for GPU: %w", err)
	}
	return nil
}

// growBuffer is a vertex buffer that doubles its capacity when the
// frame's data outgrows it, so steady-state frames reuse one allocation.
type growBuffer struct {
	label string
	buf   hal.Buffer
	cap   uint64
}

func (g *growBuffer) upload(device hal.Device, queue hal.Queue, data []byte) error {
	need := uint64(len(data))
	if g.buf == nil || g.cap < need {
		if g.buf != nil {
			device.DestroyBuffer(g.buf)
			g.buf = nil
		}
		newCap := g.cap
		if newCap == 0 {
			newCap = 4096
		}
		for newCap < need {
			newCap *= 2
		}
		buf, err := device.CreateBuffer(&hal.BufferDescriptor{
			Label: g.label,
			Size:  newCap,
			Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
		})
		if err != nil {
			return fmt.Errorf("wgpu: create %s buffer: %w", g.label, err)
		}
		g.buf = buf
		g.cap = newCap
	}
	queue.WriteBuffer(g.buf, 0, data)
	return nil
}

func (g *growBuffer) destroy(device hal.Device) {
	if g.buf != nil {
		device.DestroyBuffer(g.buf)
		g.buf = nil
		g.cap = 0
	}
}
