// Command griddemo renders a terminal grid frame offscreen and saves it
// as a PNG.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"os"

	"golang.org/x/image/font/gofont/goregular"

	termgrid "github.com/gogpu/termgrid"
	"github.com/gogpu/termgrid/atlas"
	"github.com/gogpu/termgrid/backend/wgpu"
	"github.com/gogpu/termgrid/grid"
	"github.com/gogpu/termgrid/render"
	"github.com/gogpu/termgrid/vector"
)

const (
	cellWidth  = 12
	cellHeight = 24
	atlasDim   = 512
	atlasCols  = 16
	atlasRows  = 16
)

func main() {
	var (
		columns = flag.Uint("columns", 48, "grid width in cells")
		rows    = flag.Uint("rows", 12, "grid height in cells")
		text    = flag.String("text", "hello, grid", "line of text to render")
		output  = flag.String("output", "grid.png", "output file")
	)
	flag.Parse()

	width := uint32(*columns) * cellWidth
	height := uint32(*rows) * cellHeight

	dev, err := wgpu.NewDevice()
	if err != nil {
		log.Fatalf("Failed to open device: %v", err)
	}
	defer dev.Close()

	cfg := wgpu.SurfaceConfig{
		Width:       width,
		Height:      height,
		AtlasDim:    atlasDim,
		AtlasLayers: 1,
		ClearColor:  termgrid.RGB(0.08, 0.08, 0.1),
	}
	target, err := wgpu.NewTarget(dev, cfg)
	if err != nil {
		log.Fatalf("Failed to create render target: %v", err)
	}
	defer target.Close()

	packer, index, err := newPacker()
	if err != nil {
		log.Fatalf("Failed to set up glyph atlas: %v", err)
	}

	snapshot, err := buildSnapshot(uint32(*columns), uint32(*rows), *text, packer)
	if err != nil {
		log.Fatalf("Failed to build snapshot: %v", err)
	}
	packer.Publish()
	if err := target.UploadAtlas(packer.Staging()); err != nil {
		log.Fatalf("Failed to upload atlas: %v", err)
	}

	metrics := termgrid.WindowMetrics{
		SurfaceWidth:  float32(width),
		SurfaceHeight: float32(height),
		CellWidth:     cellWidth,
		CellHeight:    cellHeight,
		Columns:       uint32(*columns),
	}
	builder, err := render.NewBuilder(metrics, index)
	if err != nil {
		log.Fatalf("Failed to create frame builder: %v", err)
	}

	var slot grid.Slot
	slot.Publish(snapshot)

	orch := render.NewOrchestrator(builder, target, &slot, nil)
	if err := orch.RenderFrame(0); err != nil {
		log.Fatalf("Failed to render frame: %v", err)
	}

	if err := savePNG(target, *output, int(width), int(height)); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Grid saved to %s (%dx%d)\n", *output, width, height)
}

func newPacker() (*atlas.Packer, *atlas.Index, error) {
	cfg := atlas.Config{
		LayerCols:  atlasCols,
		LayerRows:  atlasRows,
		CellWidth:  cellWidth,
		CellHeight: cellHeight,
		TextureDim: atlasDim,
	}
	index, err := atlas.NewIndex(cfg)
	if err != nil {
		return nil, nil, err
	}
	ras, err := atlas.NewRasterizer(goregular.TTF, cellWidth, cellHeight)
	if err != nil {
		return nil, nil, err
	}
	registry := atlas.NewRegistry(atlas.NewSlotAllocator(atlasCols*atlasRows, 4))
	return atlas.NewPacker(registry, ras, atlas.NewStaging(atlasDim), index), index, nil
}

func buildSnapshot(columns, rows uint32, text string, packer *atlas.Packer) (*grid.Snapshot, error) {
	fg := termgrid.RGB(0.9, 0.9, 0.85)
	bg := termgrid.RGB(0.13, 0.14, 0.18)

	cells := grid.PlaceLine(1, columns, 2, text, fg, bg, packer.Glyph)
	cells = append(cells, grid.PlaceLine(3, columns, 2, "wide: 世界 mixed", fg, bg, packer.Glyph)...)

	cursorCol := uint32(2 + len(text))
	if cursorCol >= columns {
		cursorCol = columns - 1
	}
	overlay := grid.OverlayState{
		CursorVisible: true,
		CursorCol:     cursorCol,
		CursorRow:     1,
		CursorColor:   termgrid.RGB(0.95, 0.7, 0.2),

		ScrollVisible: true,
		TrackRect: termgrid.CellRect{
			X: float32(columns*cellWidth) - 6,
			Y: 0,
			W: 6,
			H: float32(rows * cellHeight),
		},
		ThumbTop:    0.1,
		ThumbBottom: 0.35,
		ScrollFG:    termgrid.RGBA{R: 0.6, G: 0.6, B: 0.65, A: 0.9},
		ScrollBG:    termgrid.RGBA{R: 0.2, G: 0.2, B: 0.24, A: 0.6},
	}

	// Engrave a vector title above the text line.
	engraver, err := vector.NewEngraver(goregular.TTF)
	if err != nil {
		return nil, err
	}
	verts, err := engraver.Engrave("termgrid", 18)
	if err != nil {
		return nil, err
	}
	decorations := []grid.Decoration{{
		Column:   2,
		Row:      0,
		Vertices: vector.Translate(verts, 0, cellHeight*0.8),
		Color:    termgrid.RGB(0.4, 0.75, 0.95),
	}}

	return grid.NewSnapshot(columns, rows, cells, overlay, decorations), nil
}

func savePNG(target *wgpu.Target, path string, width, height int) error {
	bgra, err := target.ReadPixels()
	if err != nil {
		return err
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 0; i+3 < len(bgra) && i+3 < len(img.Pix); i += 4 {
		img.Pix[i+0] = bgra[i+2]
		img.Pix[i+1] = bgra[i+1]
		img.Pix[i+2] = bgra[i+0]
		img.Pix[i+3] = bgra[i+3]
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
