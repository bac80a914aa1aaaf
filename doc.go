// Package shade provides a span-based pipeline for shading destination
// pixels from a source image.
//
// # Overview
//
// shade is a Pure Go image shading engine for the GoGPU ecosystem. A
// Pipeline maps destination positions through an inverse matrix into a
// source pixmap, wraps them with per-axis tile modes, samples texels
// with nearest or bilinear filtering, and resolves the resulting colors
// into a destination. All color math happens in linear space on
// premultiplied float components.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/shade"
//		"github.com/gogpu/shade/pixels"
//	)
//
//	// Wrap decoded image data, sRGB bytes
//	src, _ := pixels.FromRGBA(img, pixels.AlphaPremul, pixels.GammaSRGB)
//
//	// Shade a row of a half-size draw
//	inverse := shade.Scale(2, 2)
//	p := shade.NewPipeline(inverse, shade.FilterLow,
//		shade.TileRepeat, shade.TileRepeat,
//		shade.ColorFromLinear(0, 0, 0, 1), src)
//
//	row := make([]shade.Color4f, 256)
//	for y := 0; y < 256; y++ {
//		p.ShadeSpan4f(0, y, row, len(row))
//		// hand row to a blitter
//	}
//
// # Architecture
//
// A pipeline is a chain of fixed-size stage slots, each holding the one
// variant construction selected:
//   - Matrix: translate, scale, affine or perspective point mapping
//   - Tile: clamp, repeat or mirror wrapping per axis
//   - Sample: nearest or bilinear texel filtering
//   - Blender: a shading sink or a raw-format blit sink
//
// Work moves through the chain in spans and four-point batches, so
// dynamic dispatch is paid per batch, not per pixel, and the span entry
// points never allocate.
//
// # Blitting
//
// When a draw reduces to writing source pixels straight into a
// destination surface, ClonePipelineForBlitting retargets an existing
// pipeline to encode destination bytes itself, skipping the
// intermediate Color4f spans. BlitParallel fans that out across a
// worker pool.
package shade

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
