package wgpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/termgrid/render"
)

// surfaceFormat is the color target format of every pipeline.
const surfaceFormat = gputypes.TextureFormatBGRA8Unorm

// pipelines holds the three render pipelines and the glyph pass's
// binding objects. Rect pipelines serve the background, cursor, and
// scrollbar passes; they differ only in draw order.
type pipelines struct {
	rect   hal.RenderPipeline
	glyph  hal.RenderPipeline
	vector hal.RenderPipeline

	rectShader   hal.ShaderModule
	glyphShader  hal.ShaderModule
	vectorShader hal.ShaderModule

	glyphBindLayout hal.BindGroupLayout
	glyphPipeLayout hal.PipelineLayout
	emptyPipeLayout hal.PipelineLayout
	sampler         hal.Sampler
}

func createPipelines(device hal.Device) (*pipelines, error) {
	p := &pipelines{}
	if err := p.create(device); err != nil {
		p.destroy(device)
		return nil, err
	}
	return p, nil
}

func (p *pipelines) create(device hal.Device) error {
	var err error
	if p.rectShader, err = createShaderModule(device, "grid_rect", rectShaderSource); err != nil {
		return err
	}
	if p.glyphShader, err = createShaderModule(device, "grid_glyph", glyphShaderSource); err != nil {
		return err
	}
	if p.vectorShader, err = createShaderModule(device, "grid_vector", vectorShaderSource); err != nil {
		return err
	}

	p.emptyPipeLayout, err = device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label: "grid_empty_layout",
	})
	if err != nil {
		return fmt.Errorf("wgpu: create empty pipeline layout: %w", err)
	}

	// Glyph bindings: the atlas array texture and its sampler.
	p.glyphBindLayout, err = device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "grid_glyph_bind_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2DArray,
				},
			},
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: create glyph bind layout: %w", err)
	}

	p.glyphPipeLayout, err = device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "grid_glyph_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{p.glyphBindLayout},
	})
	if err != nil {
		return fmt.Errorf("wgpu: create glyph pipeline layout: %w", err)
	}

	p.sampler, err = device.CreateSampler(&hal.SamplerDescriptor{
		Label:        "grid_atlas_sampler",
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeLinear,
		MinFilter:    gputypes.FilterModeLinear,
	})
	if err != nil {
		return fmt.Errorf("wgpu: create atlas sampler: %w", err)
	}

	premulBlend := gputypes.BlendStatePremultiplied()

	p.rect, err = device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "grid_rect_pipeline",
		Layout: p.emptyPipeLayout,
		Vertex: hal.VertexState{
			Module:     p.rectShader,
			EntryPoint: "vs_main",
			Buffers:    rectVertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     p.rectShader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{{
				Format:    surfaceFormat,
				Blend:     &premulBlend,
				WriteMask: gputypes.ColorWriteMaskAll,
			}},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleStrip,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{Count: 1, Mask: 0xFFFFFFFF},
	})
	if err != nil {
		return fmt.Errorf("wgpu: create rect pipeline: %w", err)
	}

	p.glyph, err = device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "grid_glyph_pipeline",
		Layout: p.glyphPipeLayout,
		Vertex: hal.VertexState{
			Module:     p.glyphShader,
			EntryPoint: "vs_main",
			Buffers:    glyphVertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     p.glyphShader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{{
				Format:    surfaceFormat,
				Blend:     &premulBlend,
				WriteMask: gputypes.ColorWriteMaskAll,
			}},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleStrip,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{Count: 1, Mask: 0xFFFFFFFF},
	})
	if err != nil {
		return fmt.Errorf("wgpu: create glyph pipeline: %w", err)
	}

	p.vector, err = device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "grid_vector_pipeline",
		Layout: p.emptyPipeLayout,
		Vertex: hal.VertexState{
			Module:     p.vectorShader,
			EntryPoint: "vs_main",
			Buffers:    vectorVertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     p.vectorShader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{{
				Format:    surfaceFormat,
				Blend:     &premulBlend,
				WriteMask: gputypes.ColorWriteMaskAll,
			}},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{Count: 1, Mask: 0xFFFFFFFF},
	})
	if err != nil {
		return fmt.Errorf("wgpu: create vector pipeline: %w", err)
	}
	return nil
}

// forPass maps a render pass to its pipeline.
func (p *pipelines) forPass(pass render.PassKind) hal.RenderPipeline {
	switch pass {
	case render.PassGlyph:
		return p.glyph
	case render.PassVector:
		return p.vector
	default:
		return p.rect
	}
}

func (p *pipelines) destroy(device hal.Device) {
	if p.vector != nil {
		device.DestroyRenderPipeline(p.vector)
		p.vector = nil
	}
	if p.glyph != nil {
		device.DestroyRenderPipeline(p.glyph)
		p.glyph = nil
	}
	if p.rect != nil {
		device.DestroyRenderPipeline(p.rect)
		p.rect = nil
	}
	if p.sampler != nil {
		device.DestroySampler(p.sampler)
		p.sampler = nil
	}
	if p.glyphPipeLayout != nil {
		device.DestroyPipelineLayout(p.glyphPipeLayout)
		p.glyphPipeLayout = nil
	}
	if p.emptyPipeLayout != nil {
		device.DestroyPipelineLayout(p.emptyPipeLayout)
		p.emptyPipeLayout = nil
	}
	if p.glyphBindLayout != nil {
		device.DestroyBindGroupLayout(p.glyphBindLayout)
		p.glyphBindLayout = nil
	}
	if p.vectorShader != nil {
		device.DestroyShaderModule(p.vectorShader)
		p.vectorShader = nil
	}
	if p.glyphShader != nil {
		device.DestroyShaderModule(p.glyphShader)
		p.glyphShader = nil
	}
	if p.rectShader != nil {
		device.DestroyShaderModule(p.rectShader)
		p.rectShader = nil
	}
}

func createShaderModule(device hal.Device, label, wgsl string) (hal.ShaderModule, error) {
	shader, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  label,
		Source: hal.ShaderSource{WGSL: wgsl},
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: compile %s shader: %w", label, err)
	}
	return shader, nil
}

// rectVertexLayout is one instance-stepped buffer: rect and color.
func rectVertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{{
		ArrayStride: render.RectInstanceStride,
		StepMode:    gputypes.VertexStepModeInstance,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x4, Offset: 0, ShaderLocation: 0},  // rect
			{Format: gputypes.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 1}, // color
		},
	}}
}

// glyphVertexLayout adds the texel rect and the atlas layer.
func glyphVertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{{
		ArrayStride: render.GlyphInstanceStride,
		StepMode:    gputypes.VertexStepModeInstance,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x4, Offset: 0, ShaderLocation: 0},  // rect
			{Format: gputypes.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 1}, // tex rect
			{Format: gputypes.VertexFormatFloat32x4, Offset: 32, ShaderLocation: 2}, // color
			{Format: gputypes.VertexFormatSint32, Offset: 48, ShaderLocation: 3},    // layer
		},
	}}
}

// vectorVertexLayout is vertex-stepped: position and color per vertex.
func vectorVertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{{
		ArrayStride: render.PathVertexStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
			{Format: gputypes.VertexFormatFloat32x4, Offset: 8, ShaderLocation: 1}, // color
		},
	}}
}
