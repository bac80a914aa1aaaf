// Command shadedemo demonstrates the shade span pipeline.
package main

import (
	"flag"
	"image/png"
	"log"
	"math"
	"os"

	"github.com/gogpu/shade"
	"github.com/gogpu/shade/blend"
	"github.com/gogpu/shade/pixels"
)

func main() {
	var (
		width   = flag.Int("width", 768, "image width")
		height  = flag.Int("height", 512, "image height")
		output  = flag.String("output", "shade.png", "output file")
		workers = flag.Int("workers", 0, "blit workers, 0 = GOMAXPROCS")
	)
	flag.Parse()

	src := makeCheckerboard(64, 8)

	dst, err := pixels.New(pixels.Info{
		Width:  *width,
		Height: *height,
		Format: pixels.FormatRGBA8,
		Alpha:  pixels.AlphaPremul,
		Gamma:  pixels.GammaSRGB,
	})
	if err != nil {
		log.Fatalf("Failed to allocate destination: %v", err)
	}

	// Top band: rotated, filtered, tiled shading through Color4f spans.
	drawRotatedTiles(dst.SubPixmap(0, 0, *width, *height/2), src)

	// Bottom band: a zoomed view blitted straight to bytes in parallel.
	if err := drawZoomBlit(dst.SubPixmap(0, *height/2, *width, *height-*height/2), src, *workers); err != nil {
		log.Fatalf("Failed to blit: %v", err)
	}

	if err := savePNG(*output, dst); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

func makeCheckerboard(size, cells int) *pixels.Pixmap {
	pm, err := pixels.New(pixels.Info{
		Width:  size,
		Height: size,
		Format: pixels.FormatRGBA8,
		Alpha:  pixels.AlphaOpaque,
		Gamma:  pixels.GammaSRGB,
	})
	if err != nil {
		log.Fatalf("Failed to allocate source: %v", err)
	}

	cell := size / cells
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if ((x/cell)+(y/cell))%2 == 0 {
				_ = pm.SetRGBA(x, y, 235, 240, 250, 255)
			} else {
				r := uint8(40 + 180*x/size)
				b := uint8(220 - 160*y/size)
				_ = pm.SetRGBA(x, y, r, 60, b, 255)
			}
		}
	}
	return pm
}

func drawRotatedTiles(dst, src *pixels.Pixmap) {
	// Forward transform places the source spinning around the band
	// center; the pipeline wants its inverse.
	forward := shade.Translate(float32(dst.Width())/2, float32(dst.Height())/2).
		Multiply(shade.Rotate(math.Pi / 6)).
		Multiply(shade.Scale(1.5, 1.5))

	p := shade.NewPipeline(forward.Invert(), shade.FilterLow,
		shade.TileRepeat, shade.TileMirror,
		shade.ColorFromLinear(0, 0, 0, 1), src)

	row := make([]shade.Color4f, dst.Width())
	for y := 0; y < dst.Height(); y++ {
		p.ShadeSpan4f(0, y, row, len(row))
		storeRow(dst, y, row)
	}
}

func drawZoomBlit(dst, src *pixels.Pixmap, workers int) error {
	// Eight destination pixels per source pixel, nearest filtered, so
	// the individual board cells are visible.
	forward := shade.Scale(8, 8)
	base := shade.NewPipeline(forward.Invert(), shade.FilterNone,
		shade.TileRepeat, shade.TileRepeat,
		shade.ColorFromLinear(0, 0, 0, 1), src)
	return shade.BlitParallel(dst, base, blend.Src, 1, workers)
}

func storeRow(dst *pixels.Pixmap, y int, row []shade.Color4f) {
	for x, c := range row {
		r, g, b, a := c.SRGB()
		_ = dst.SetRGBA(x, y, quant(r), quant(g), quant(b), quant(a))
	}
}

func quant(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

func savePNG(path string, pm *pixels.Pixmap) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, pm.ToRGBA())
}
