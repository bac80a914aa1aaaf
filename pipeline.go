package shade

import (
	"math"

	"github.com/gogpu/shade/blend"
	"github.com/gogpu/shade/pixels"
)

// Pipeline shades horizontal spans of destination pixels from a source
// pixmap. Construction selects one variant per stage for the given
// matrix, tile modes, filter quality and source format; after that,
// pushing a span through the chain performs no allocation and no
// per-pixel dispatch beyond one interface call per stage per batch.
//
// A Pipeline is not safe for concurrent use; each goroutine gets its
// own, usually through ClonePipelineForBlitting.
type Pipeline struct {
	firstStage   PointProcessor
	matrixStage  MatrixStage
	tileStage    TileStage
	sampleStage  SampleStage
	blenderStage BlenderStage
	lastStage    DestinationWriter
	accessor     Accessor

	cfg pipelineConfig
}

// pipelineConfig records the inputs the stage selection ran on, after
// mipmap substitution, so a retargeted pipeline can rebuild or clone
// the same chain.
type pipelineConfig struct {
	inverse Matrix
	quality FilterQuality
	xTile   TileMode
	yTile   TileMode
	paint   Color4f
	src     *pixels.Pixmap
	origSrc *pixels.Pixmap
}

// NewPipeline builds a shading pipeline. inverse maps destination
// positions into src's coordinates; paint is the premultiplied paint
// color, whose alpha scales every shaded pixel and whose color shades
// alpha-only sources. Panics when src is nil.
func NewPipeline(inverse Matrix, quality FilterQuality, xTile, yTile TileMode,
	paint Color4f, src *pixels.Pixmap) *Pipeline {
	p := &Pipeline{}
	p.init(inverse, quality, xTile, yTile, paint, src)
	return p
}

// NewBlitPipeline rebuilds base to write raw destination pixels through
// mode instead of shading Color4f spans. The matrix and tile stages are
// cloned from base; the sampler, accessor and blender are built fresh
// against dst. src must be the pixmap base was built on. Panics when no
// blit sink exists for dst.
func NewBlitPipeline(base *Pipeline, src *pixels.Pixmap, mode blend.Mode, dst pixels.Info) *Pipeline {
	p := &Pipeline{}
	p.initBlit(base, src, mode, dst)
	return p
}

func (p *Pipeline) init(inverse Matrix, quality FilterQuality, xTile, yTile TileMode,
	paint Color4f, src *pixels.Pixmap) {
	if src == nil {
		panic("shade: nil source pixmap")
	}
	p.resetSlots()

	sampled, adjusted := adjustForMipmaps(src, inverse, quality)
	p.cfg = pipelineConfig{
		inverse: adjusted,
		quality: quality,
		xTile:   xTile, yTile: yTile,
		paint: paint,
		src:   sampled, origSrc: src,
	}

	// Alpha-only sources shade with the premultiplied paint, alpha
	// included, so the sink must not apply it a second time.
	postAlpha := paint.A
	if sampled.Format() == pixels.FormatAlpha8 {
		postAlpha = 1
	}
	blender := chooseShadingBlender(&p.blenderStage, postAlpha)
	p.buildSamplingChain(blender)
	p.bindWriter()

	Logger().Debug("shading pipeline constructed",
		"matrix", p.cfg.inverse.Kind().String(),
		"quality", quality.String(),
		"xTile", xTile.String(),
		"yTile", yTile.String(),
		"source", sampled.Format().String())
}

func (p *Pipeline) initBlit(base *Pipeline, src *pixels.Pixmap, mode blend.Mode, dst pixels.Info) {
	if src == nil {
		panic("shade: nil source pixmap")
	}
	if src != base.cfg.origSrc && src != base.cfg.src {
		panic("shade: blit pipeline source differs from its base")
	}
	if !canBlitTo(dst) {
		panic("shade: no blit sink for destination format " + dst.Format.String())
	}
	p.resetSlots()
	p.cfg = base.cfg

	blender := chooseBlitBlender(&p.blenderStage, mode, dst)

	// The sampler and accessor are rebuilt fresh on the new blender.
	// Only the point stages clone; an empty matrix slot stays empty.
	cfg := &p.cfg
	accessor := chooseAccessor(&p.accessor, cfg.src, cfg.paint)
	sampler := chooseSampler(&p.sampleStage, blender, accessor,
		cfg.quality, cfg.src.Width(), cfg.src.Height(), cfg.xTile, cfg.yTile)

	var points PointProcessor = sampler
	if tiler, ok := base.tileStage.CloneStageTo(sampler, &p.tileStage); ok {
		points = tiler
	}
	p.firstStage = points
	if first, ok := base.matrixStage.CloneStageTo(points, &p.matrixStage); ok {
		p.firstStage = first
	}
	p.bindWriter()

	Logger().Debug("pipeline retargeted for blitting",
		"mode", mode.String(),
		"dst", dst.Format.String())
}

func (p *Pipeline) resetSlots() {
	p.matrixStage = newMatrixStage()
	p.tileStage = newTileStage()
	p.sampleStage = newSampleStage()
	p.blenderStage = newBlenderStage()
	p.accessor = newAccessor()
}

// buildSamplingChain fills accessor, sampler, tiler and matrix slots in
// back-to-front order against the given blender.
func (p *Pipeline) buildSamplingChain(blender BlendProcessor) {
	cfg := &p.cfg
	accessor := chooseAccessor(&p.accessor, cfg.src, cfg.paint)
	sampler := chooseSampler(&p.sampleStage, blender, accessor,
		cfg.quality, cfg.src.Width(), cfg.src.Height(), cfg.xTile, cfg.yTile)
	tiler := chooseTiler(&p.tileStage, sampler, cfg.src.Width(), cfg.src.Height(), cfg.xTile, cfg.yTile)
	p.firstStage = chooseMatrix(&p.matrixStage, tiler, cfg.inverse)
}

func (p *Pipeline) bindWriter() {
	writer, ok := GetInterface[DestinationWriter](&p.blenderStage)
	if !ok {
		panic("shade: blender stage is not a destination writer")
	}
	p.lastStage = writer
}

// adjustForMipmaps swaps in a prefiltered mip level when medium quality
// minifies the source, rescaling the inverse so destination points land
// on the level's smaller grid. Other qualities sample the source as is,
// as do alpha-only sources, whose coverage does not survive the RGBA
// levels.
func adjustForMipmaps(src *pixels.Pixmap, inverse Matrix, quality FilterQuality) (*pixels.Pixmap, Matrix) {
	if quality != FilterMedium || src.Format() == pixels.FormatAlpha8 {
		return src, inverse
	}
	sx := float32(math.Hypot(float64(inverse.A), float64(inverse.D)))
	sy := float32(math.Hypot(float64(inverse.B), float64(inverse.E)))
	scale := max(sx, sy)
	if scale <= 1 {
		return src, inverse
	}
	mips := pixels.BuildMipmaps(src)
	lp := mips.LevelForScale(1 / scale)
	if lp == nil || lp == src {
		return src, inverse
	}
	rx := float32(lp.Width()) / float32(src.Width())
	ry := float32(lp.Height()) / float32(src.Height())
	Logger().Debug("mip level selected",
		"width", lp.Width(),
		"height", lp.Height())
	return lp, Scale(rx, ry).Multiply(inverse)
}

// ClonePipelineForBlitting tries to retarget base into storage as a
// pipeline blitting raw dst pixels. It succeeds only when blitting is
// pixel-exact against shading and converting: the source must be
// opaque, finalAlpha and the base's paint alpha 1, mode Src or SrcOver,
// and dst a format a blit sink exists for. On success storage holds the
// new pipeline; on failure storage is left untouched and the caller
// shades instead.
func ClonePipelineForBlitting(storage *EmbeddablePipeline, base *Pipeline,
	finalAlpha float32, mode blend.Mode, dst pixels.Info) bool {
	if finalAlpha != 1 || base.cfg.paint.A != 1 {
		return false
	}
	if mode != blend.Src && mode != blend.SrcOver {
		return false
	}
	if !base.cfg.origSrc.Info().Opaque() {
		return false
	}
	if !canBlitTo(dst) {
		return false
	}
	storage.InitBlit(base, base.cfg.origSrc, mode, dst)
	return true
}

// ShadeSpan4f shades count pixels of the destination row starting at
// pixel (x, y) into dst as linear premultiplied colors. dst must hold
// at least count entries. This path performs no allocation.
func (p *Pipeline) ShadeSpan4f(x, y int, dst []Color4f, count int) {
	if count <= 0 {
		return
	}
	p.lastStage.SetDestination(Destination{Colors: dst}, count)
	p.runSpan(x, y, count)
}

// BlitSpan writes count pixels starting at pixel (x, y) directly into
// dst, raw bytes in the destination format the pipeline was built for.
// Panics on a pipeline built for shading.
func (p *Pipeline) BlitSpan(x, y int, dst []byte, count int) {
	if count <= 0 {
		return
	}
	p.lastStage.SetDestination(Destination{Bytes: dst}, count)
	p.runSpan(x, y, count)
}

// runSpan pushes one destination row span through the chain. Sample
// points sit on pixel centers.
func (p *Pipeline) runSpan(x, y, count int) {
	p.firstStage.PointSpan(Span{
		Start:  Pt(float32(x)+0.5, float32(y)+0.5),
		Length: float32(count - 1),
		Count:  count,
	})
}
