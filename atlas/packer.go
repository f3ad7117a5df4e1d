package atlas

import "log"

// Packer is the packing collaborator: it assigns dense slots to runes,
// rasterizes each rune once, and stages the bitmap at the slot's texel
// origin. The renderer side consumes the same Index arithmetically.
//
// Glyph is shaped to serve as a cell-content lookup during snapshot
// production; runes that cannot be packed (atlas full) report no glyph
// and the cell renders as background only.
type Packer struct {
	registry *Registry
	raster   *Rasterizer
	staging  *Staging
	index    *Index
}

// NewPacker wires the packing side together. The staging dimension and
// the index's texture dimension must agree.
func NewPacker(registry *Registry, raster *Rasterizer, staging *Staging, index *Index) *Packer {
	return &Packer{registry: registry, raster: raster, staging: staging, index: index}
}

// Glyph returns the slot identifier for ch, packing it on first sight.
func (p *Packer) Glyph(ch rune) (uint32, bool) {
	id, created, err := p.registry.Ensure(ch)
	if err != nil {
		log.Printf("atlas: cannot pack %q: %v", ch, err)
		return 0, false
	}
	if created {
		layer, x, y := p.index.TexelOrigin(id)
		w, h := p.raster.CellSize()
		if err := p.staging.Blit(int(layer), x, y, w, h, p.raster.Rasterize(ch)); err != nil {
			log.Printf("atlas: stage %q: %v", ch, err)
		}
	}
	return id, true
}

// Publish reports the packed layer count to the index. Call between
// frames, before the renderer resolves the new identifiers.
func (p *Packer) Publish() {
	p.index.SetLayerCount(p.registry.LayersInUse())
}

// Staging exposes the staged texel data for GPU upload.
func (p *Packer) Staging() *Staging {
	return p.staging
}
