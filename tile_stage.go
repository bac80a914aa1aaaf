package shade

import (
	"math"

	"github.com/gogpu/shade/internal/wide"
)

// chooseTiler fills the tile slot with a tiler for the source bounds.
// The tile slot is never left empty; even in-bounds sampling needs the
// edge handling the tiler provides.
func chooseTiler(stage *TileStage, next SampleProcessor, width, height int, xTile, yTile TileMode) PointProcessor {
	switch xTile {
	case TileClamp, TileRepeat, TileMirror:
	default:
		panic("shade: unknown x tile mode " + xTile.String())
	}
	switch yTile {
	case TileClamp, TileRepeat, TileMirror:
	default:
		panic("shade: unknown y tile mode " + yTile.String())
	}
	return InitStage(stage, next, func(n SampleProcessor) *tilerStage {
		return &tilerStage{
			next:  n,
			xMode: xTile, yMode: yTile,
			width: float32(width), height: float32(height),
		}
	})
}

// tilerStage wraps sample coordinates into the source bounds, one tile
// mode per axis. Coordinates leaving the tiler lie in [0, width) x
// [0, height), except clamped ones which stay on pixel centers in
// [0.5, size-0.5] so edge filtering reads only edge texels.
type tilerStage struct {
	next   SampleProcessor
	xMode  TileMode
	yMode  TileMode
	width  float32
	height float32
}

// tileRepeat wraps v into [0, size).
func tileRepeat(v, size float32) float32 {
	return v - float32(math.Floor(float64(v/size)))*size
}

// tileMirror folds v into [0, size], flipping every other period.
func tileMirror(v, size float32) float32 {
	period := 2 * size
	t := v - float32(math.Floor(float64(v/period)))*period
	return min(t, period-t)
}

func tileRepeat4(v wide.F32x4, size float32) wide.F32x4 {
	sz := wide.SplatF32(size)
	q := v.Div(sz).Floor()
	return v.Sub(q.Mul(sz))
}

func tileMirror4(v wide.F32x4, size float32) wide.F32x4 {
	period := wide.SplatF32(2 * size)
	q := v.Div(period).Floor()
	t := v.Sub(q.Mul(period))
	return t.Min(period.Sub(t))
}

func (s *tilerStage) wrapX4(v *wide.F32x4) {
	switch s.xMode {
	case TileClamp:
		*v = v.Clamp(0.5, s.width-0.5)
	case TileRepeat:
		*v = tileRepeat4(*v, s.width)
	case TileMirror:
		*v = tileMirror4(*v, s.width)
	}
}

func (s *tilerStage) wrapY4(v *wide.F32x4) {
	switch s.yMode {
	case TileClamp:
		*v = v.Clamp(0.5, s.height-0.5)
	case TileRepeat:
		*v = tileRepeat4(*v, s.height)
	case TileMirror:
		*v = tileMirror4(*v, s.height)
	}
}

func (s *tilerStage) wrapY(y float32) float32 {
	switch s.yMode {
	case TileClamp:
		return min(max(y, 0.5), s.height-0.5)
	case TileRepeat:
		return tileRepeat(y, s.height)
	default:
		return tileMirror(y, s.height)
	}
}

func (s *tilerStage) PointList4(xs, ys *[4]float32) {
	s.wrapX4((*wide.F32x4)(xs))
	s.wrapY4((*wide.F32x4)(ys))
	s.next.PointList4(xs, ys)
}

func (s *tilerStage) PointListFew(n int, xs, ys *[4]float32) {
	s.wrapX4((*wide.F32x4)(xs))
	s.wrapY4((*wide.F32x4)(ys))
	s.next.PointListFew(n, xs, ys)
}

// PointSpan keeps a span a span whenever the x wrap allows it. A span
// already inside the source passes straight through; a clamped span
// splits into a pinned head, an inside middle and a pinned tail; a
// repeating span walking one pixel per point becomes a head, a repeated
// full period and a tail. Everything else degrades to point batches.
func (s *tilerStage) PointSpan(span Span) {
	x0 := span.Start.X
	x1 := x0 + span.Length
	dx := span.DX()

	switch s.xMode {
	case TileClamp:
		lo, hi := float32(0.5), s.width-0.5
		if x0 >= lo && x0 <= hi && x1 >= lo && x1 <= hi {
			span.Start.Y = s.wrapY(span.Start.Y)
			s.next.PointSpan(span)
			return
		}
		if dx > 0 {
			s.clampSplitSpan(span, lo, hi, dx)
			return
		}
	case TileRepeat:
		if x0 >= 0 && x1 < s.width {
			span.Start.Y = s.wrapY(span.Start.Y)
			s.next.PointSpan(span)
			return
		}
		if dx == 1 && span.Count > 1 {
			s.repeatUnitSpan(span)
			return
		}
	case TileMirror:
		if x0 >= 0 && x1 < s.width {
			span.Start.Y = s.wrapY(span.Start.Y)
			s.next.PointSpan(span)
			return
		}
	}
	spanFallback(span, s)
}

// clampSplitSpan handles a left-to-right span that leaves [lo, hi] on
// either side. Points past an edge all clamp to the same coordinate, so
// each overhang collapses to a zero-length span pinned at the edge.
func (s *tilerStage) clampSplitSpan(span Span, lo, hi, dx float32) {
	y := s.wrapY(span.Start.Y)
	x0 := span.Start.X
	count := span.Count

	head := 0
	if x0 < lo {
		head = int(math.Ceil(float64((lo - x0) / dx)))
		if head > count {
			head = count
		}
	}
	tail := 0
	if last := x0 + span.Length; last > hi {
		inside := -1
		if hi >= x0 {
			inside = int(math.Floor(float64((hi - x0) / dx)))
		}
		tail = count - 1 - inside
		if tail > count-head {
			tail = count - head
		}
	}
	middle := count - head - tail

	if head > 0 {
		s.next.PointSpan(Span{Start: Pt(lo, y), Length: 0, Count: head})
	}
	if middle > 0 {
		mx := x0 + float32(head)*dx
		s.next.PointSpan(Span{Start: Pt(mx, y), Length: dx * float32(middle-1), Count: middle})
	}
	if tail > 0 {
		s.next.PointSpan(Span{Start: Pt(hi, y), Length: 0, Count: tail})
	}
}

// repeatUnitSpan handles a repeating span whose step is exactly one
// source pixel. After the first partial period the walk revisits the
// same coordinates every width pixels, so the middle is sampled once
// and emitted repeatedly.
func (s *tilerStage) repeatUnitSpan(span Span) {
	w := s.width
	y := s.wrapY(span.Start.Y)
	count := span.Count

	x0 := tileRepeat(span.Start.X, w)
	head := int(math.Ceil(float64(w - x0)))
	if head > count {
		head = count
	}
	s.next.PointSpan(Span{Start: Pt(x0, y), Length: float32(head - 1), Count: head})

	rest := count - head
	if rest == 0 {
		return
	}
	x1 := x0 + float32(head) - w
	wi := int(w)
	periods := rest / wi
	tail := rest - periods*wi
	if periods > 0 {
		s.next.RepeatSpan(Span{Start: Pt(x1, y), Length: w - 1, Count: wi}, periods)
	}
	if tail > 0 {
		s.next.PointSpan(Span{Start: Pt(x1, y), Length: float32(tail - 1), Count: tail})
	}
}
