// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render turns a grid snapshot into per-pass GPU instance
// streams and drives them through a surface in painter's order.
//
// Per frame the Builder walks the snapshot once and emits five streams:
// cell backgrounds, glyph quads, the cursor, the scrollbar, and vector
// decorations. Streams are byte-packed in their final vertex buffer
// layout so the backend uploads them without a second copy. Instance
// buffers are rebuilt from scratch every frame; nothing persists across
// frames except the reusable staging storage.
package render
