package shade

import (
	"math"

	"github.com/gogpu/shade/internal/wide"
)

// chooseSampler fills the sample slot with a sampler reading texels
// through pixels. FilterNone picks the nearest texel; every other
// quality filters bilinearly. FilterMedium's mip level was already
// chosen by the pipeline before the sampler is built.
func chooseSampler(stage *SampleStage, next BlendProcessor, pixels PixelAccessor,
	quality FilterQuality, width, height int, xTile, yTile TileMode) SampleProcessor {
	switch quality {
	case FilterNone:
		return InitStage(stage, next, func(n BlendProcessor) *nearestSampler {
			return &nearestSampler{
				next: n, pixels: pixels,
				width: int32(width), height: int32(height),
			}
		})
	case FilterLow, FilterMedium, FilterHigh:
		return InitStage(stage, next, func(n BlendProcessor) *bilinearSampler {
			return &bilinearSampler{
				next: n, pixels: pixels,
				width: int32(width), height: int32(height),
				xWrap: xTile, yWrap: yTile,
			}
		})
	default:
		panic("shade: unknown filter quality " + quality.String())
	}
}

// floorClamp converts a wrapped sample coordinate to a texel index.
// The clamp absorbs float error from upstream wrap arithmetic landing
// exactly on a bound.
func floorClamp(v float32, limit int32) int32 {
	i := int32(math.Floor(float64(v)))
	if i < 0 {
		i = 0
	}
	if i > limit {
		i = limit
	}
	return i
}

// wrapIndex maps a texel index that may sit one step outside the source
// back into [0, size). Bilinear neighbors cross the edge even when the
// sample point itself is inside.
func wrapIndex(i, size int32, mode TileMode) int32 {
	switch mode {
	case TileClamp:
		if i < 0 {
			return 0
		}
		if i >= size {
			return size - 1
		}
		return i
	case TileRepeat:
		i %= size
		if i < 0 {
			i += size
		}
		return i
	default: // TileMirror
		period := 2 * size
		i %= period
		if i < 0 {
			i += period
		}
		if i >= size {
			i = period - 1 - i
		}
		return i
	}
}

// nearestSampler reads the texel under each sample point.
type nearestSampler struct {
	next   BlendProcessor
	pixels PixelAccessor
	width  int32
	height int32
}

func (s *nearestSampler) PointList4(xs, ys *[4]float32) {
	xi := (*wide.F32x4)(xs).FloorI32().Clamp(0, s.width-1)
	yi := (*wide.F32x4)(ys).FloorI32().Clamp(0, s.height-1)
	var px [4]Color4f
	s.pixels.Get4Pixels((*[4]int32)(&xi), (*[4]int32)(&yi), &px)
	s.next.Blend4Pixels(&px)
}

func (s *nearestSampler) PointListFew(n int, xs, ys *[4]float32) {
	for i := 0; i < n; i++ {
		xi := floorClamp(xs[i], s.width-1)
		yi := floorClamp(ys[i], s.height-1)
		s.next.BlendPixel(s.pixels.GetPixel(xi, yi))
	}
}

func (s *nearestSampler) PointSpan(span Span) {
	yi := floorClamp(span.Start.Y, s.height-1)
	x := span.Start.X
	dx := span.DX()
	count := span.Count

	var xs, ys [4]int32
	ys[0], ys[1], ys[2], ys[3] = yi, yi, yi, yi
	var px [4]Color4f
	for count >= 4 {
		xs[0] = floorClamp(x, s.width-1)
		xs[1] = floorClamp(x+dx, s.width-1)
		xs[2] = floorClamp(x+2*dx, s.width-1)
		xs[3] = floorClamp(x+3*dx, s.width-1)
		s.pixels.Get4Pixels(&xs, &ys, &px)
		s.next.Blend4Pixels(&px)
		x += 4 * dx
		count -= 4
	}
	for ; count > 0; count-- {
		s.next.BlendPixel(s.pixels.GetPixel(floorClamp(x, s.width-1), yi))
		x += dx
	}
}

func (s *nearestSampler) RepeatSpan(span Span, repeat int) {
	for i := 0; i < repeat; i++ {
		s.PointSpan(span)
	}
}

// bilinearSampler blends the 2x2 texel quad around each sample point.
// Sample points sit on pixel centers, so the quad around x covers
// floor(x-0.5) and its right neighbor; neighbors that cross the source
// edge re-wrap with the same tile modes the tiler used.
type bilinearSampler struct {
	next   BlendProcessor
	pixels PixelAccessor
	width  int32
	height int32
	xWrap  TileMode
	yWrap  TileMode
}

// sampleRow filters one point against a precomputed texel row pair.
func (s *bilinearSampler) sampleRow(x float32, y0, y1 int32, wy float32) Color4f {
	fx := x - 0.5
	x0f := float32(math.Floor(float64(fx)))
	wx := fx - x0f
	x0 := wrapIndex(int32(x0f), s.width, s.xWrap)
	x1 := wrapIndex(int32(x0f)+1, s.width, s.xWrap)

	xs := [4]int32{x0, x1, x0, x1}
	ys := [4]int32{y0, y0, y1, y1}
	var px [4]Color4f
	s.pixels.Get4Pixels(&xs, &ys, &px)

	top := px[0].vec().Lerp(px[1].vec(), wx)
	bot := px[2].vec().Lerp(px[3].vec(), wx)
	return colorFromVec(top.Lerp(bot, wy))
}

func (s *bilinearSampler) sample(x, y float32) Color4f {
	fy := y - 0.5
	y0f := float32(math.Floor(float64(fy)))
	wy := fy - y0f
	y0 := wrapIndex(int32(y0f), s.height, s.yWrap)
	y1 := wrapIndex(int32(y0f)+1, s.height, s.yWrap)
	return s.sampleRow(x, y0, y1, wy)
}

func (s *bilinearSampler) PointList4(xs, ys *[4]float32) {
	var out [4]Color4f
	for i := 0; i < 4; i++ {
		out[i] = s.sample(xs[i], ys[i])
	}
	s.next.Blend4Pixels(&out)
}

func (s *bilinearSampler) PointListFew(n int, xs, ys *[4]float32) {
	for i := 0; i < n; i++ {
		s.next.BlendPixel(s.sample(xs[i], ys[i]))
	}
}

func (s *bilinearSampler) PointSpan(span Span) {
	fy := span.Start.Y - 0.5
	y0f := float32(math.Floor(float64(fy)))
	wy := fy - y0f
	y0 := wrapIndex(int32(y0f), s.height, s.yWrap)
	y1 := wrapIndex(int32(y0f)+1, s.height, s.yWrap)

	x := span.Start.X
	dx := span.DX()
	count := span.Count

	var out [4]Color4f
	for count >= 4 {
		out[0] = s.sampleRow(x, y0, y1, wy)
		out[1] = s.sampleRow(x+dx, y0, y1, wy)
		out[2] = s.sampleRow(x+2*dx, y0, y1, wy)
		out[3] = s.sampleRow(x+3*dx, y0, y1, wy)
		s.next.Blend4Pixels(&out)
		x += 4 * dx
		count -= 4
	}
	for ; count > 0; count-- {
		s.next.BlendPixel(s.sampleRow(x, y0, y1, wy))
		x += dx
	}
}

func (s *bilinearSampler) RepeatSpan(span Span, repeat int) {
	for i := 0; i < repeat; i++ {
		s.PointSpan(span)
	}
}
