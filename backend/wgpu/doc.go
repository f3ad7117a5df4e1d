// Package wgpu executes instance streams on the GPU through the wgpu
// hardware abstraction layer. It owns the device, the three render
// pipelines (solid rects, atlas glyphs, vector triangles), the layered
// atlas texture, and the per-pass vertex buffers, and implements the
// render.Surface contract against an offscreen color target.
package wgpu
