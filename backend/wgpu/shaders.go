package wgpu

import (
	"fmt"

	"github.com/gogpu/naga"
)

// rectShaderSource draws solid quads. Each instance carries an NDC rect
// and a color; the four strip vertices select a corner from vertex_index,
// bit 0 adding the X extent and bit 1 the Y extent. The arithmetic is
// sign-agnostic, so rects with negative extents cover the same region.
const rectShaderSource = `
struct VsOut {
    @builtin(position) pos: vec4<f32>,
    @location(0) color: vec4<f32>,
};

@vertex
fn vs_main(
    @builtin(vertex_index) vi: u32,
    @location(0) rect: vec4<f32>,
    @location(1) color: vec4<f32>,
) -> VsOut {
    let corner = vec2<f32>(f32(vi & 1u), f32((vi >> 1u) & 1u));
    let p = rect.xy + corner * rect.zw;
    var out: VsOut;
    out.pos = vec4<f32>(p, 0.0, 1.0);
    out.color = color;
    return out;
}

@fragment
fn fs_main(in: VsOut) -> @location(0) vec4<f32> {
    return in.color;
}
`

// glyphShaderSource draws textured quads sampling one layer of the atlas
// array texture. Corner selection is shared with the rect shader; the
// same corner interpolates the texel rect, keeping position and texture
// sampling aligned for any extent sign.
const glyphShaderSource = `
struct VsOut {
    @builtin(position) pos: vec4<f32>,
    @location(0) uv: vec2<f32>,
    @location(1) color: vec4<f32>,
    @location(2) @interpolate(flat) layer: i32,
};

@group(0) @binding(0) var atlas_tex: texture_2d_array<f32>;
@group(0) @binding(1) var atlas_smp: sampler;

@vertex
fn vs_main(
    @builtin(vertex_index) vi: u32,
    @location(0) rect: vec4<f32>,
    @location(1) tex: vec4<f32>,
    @location(2) color: vec4<f32>,
    @location(3) layer: i32,
) -> VsOut {
    let corner = vec2<f32>(f32(vi & 1u), f32((vi >> 1u) & 1u));
    var out: VsOut;
    out.pos = vec4<f32>(rect.xy + corner * rect.zw, 0.0, 1.0);
    out.uv = tex.xy + corner * tex.zw;
    out.color = color;
    out.layer = layer;
    return out;
}

@fragment
fn fs_main(in: VsOut) -> @location(0) vec4<f32> {
    let coverage = textureSample(atlas_tex, atlas_smp, in.uv, in.layer).r;
    return in.color * coverage;
}
`

// vectorShaderSource draws pre-tessellated triangles with per-vertex
// color. Positions arrive already in NDC.
const vectorShaderSource = `
struct VsOut {
    @builtin(position) pos: vec4<f32>,
    @location(0) color: vec4<f32>,
};

@vertex
fn vs_main(
    @location(0) position: vec2<f32>,
    @location(1) color: vec4<f32>,
) -> VsOut {
    var out: VsOut;
    out.pos = vec4<f32>(position, 0.0, 1.0);
    out.color = color;
    return out;
}

@fragment
fn fs_main(in: VsOut) -> @location(0) vec4<f32> {
    return in.color;
}
`

// compileSPIRV compiles WGSL to SPIR-V words for backends that reject
// WGSL at module creation. SPIR-V is little-endian 32-bit words.
func compileSPIRV(wgslSource string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("wgpu: compile shader: %w", err)
	}
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}
