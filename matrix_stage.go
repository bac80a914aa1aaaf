package shade

import "github.com/gogpu/shade/internal/wide"

// chooseMatrix fills the matrix slot with the cheapest variant that can
// apply inverse, and returns the stage the caller should feed points
// into. The identity needs no work at all, so the slot stays empty and
// the successor is returned directly.
func chooseMatrix(stage *MatrixStage, next PointProcessor, inverse Matrix) PointProcessor {
	switch inverse.Kind() {
	case KindIdentity:
		return next
	case KindTranslate:
		return InitStage(stage, next, func(n PointProcessor) *translateMatrixStage {
			return &translateMatrixStage{next: n, tx: inverse.C, ty: inverse.F}
		})
	case KindScale:
		return InitStage(stage, next, func(n PointProcessor) *scaleMatrixStage {
			return &scaleMatrixStage{
				next: n,
				sx:   inverse.A, sy: inverse.E,
				tx: inverse.C, ty: inverse.F,
			}
		})
	case KindAffine:
		return InitStage(stage, next, func(n PointProcessor) *affineMatrixStage {
			return &affineMatrixStage{
				next: n,
				sx:   inverse.A, kx: inverse.B, tx: inverse.C,
				ky: inverse.D, sy: inverse.E, ty: inverse.F,
			}
		})
	case KindPerspective:
		return InitStage(stage, next, func(n PointProcessor) *perspectiveMatrixStage {
			return &perspectiveMatrixStage{
				next: n,
				sx:   inverse.A, kx: inverse.B, tx: inverse.C,
				ky: inverse.D, sy: inverse.E, ty: inverse.F,
				px: inverse.G, py: inverse.H, pw: inverse.I,
			}
		})
	default:
		panic("shade: unknown matrix kind " + inverse.Kind().String())
	}
}

// spanFallback feeds span through p as explicit point batches, for
// stages that cannot express their mapping on a span in closed form.
func spanFallback(span Span, p PointProcessor) {
	var xs, ys [4]float32
	x, y := span.Start.X, span.Start.Y
	dx := span.DX()
	count := span.Count
	for count >= 4 {
		xs[0], xs[1], xs[2], xs[3] = x, x+dx, x+2*dx, x+3*dx
		ys[0], ys[1], ys[2], ys[3] = y, y, y, y
		p.PointList4(&xs, &ys)
		x += 4 * dx
		count -= 4
	}
	if count > 0 {
		for i := 0; i < count; i++ {
			xs[i] = x + float32(i)*dx
			ys[i] = y
		}
		p.PointListFew(count, &xs, &ys)
	}
}

// translateMatrixStage maps destination points by an offset. Spans stay
// spans; only the start moves.
type translateMatrixStage struct {
	next   PointProcessor
	tx, ty float32
}

func (s *translateMatrixStage) PointList4(xs, ys *[4]float32) {
	vx := (*wide.F32x4)(xs)
	vy := (*wide.F32x4)(ys)
	*vx = vx.Add(wide.SplatF32(s.tx))
	*vy = vy.Add(wide.SplatF32(s.ty))
	s.next.PointList4(xs, ys)
}

func (s *translateMatrixStage) PointListFew(n int, xs, ys *[4]float32) {
	vx := (*wide.F32x4)(xs)
	vy := (*wide.F32x4)(ys)
	*vx = vx.Add(wide.SplatF32(s.tx))
	*vy = vy.Add(wide.SplatF32(s.ty))
	s.next.PointListFew(n, xs, ys)
}

func (s *translateMatrixStage) PointSpan(span Span) {
	span.Start.X += s.tx
	span.Start.Y += s.ty
	s.next.PointSpan(span)
}

// scaleMatrixStage maps destination points by a scale and an offset.
// Spans stay spans; the step stretches with the scale and flips sign
// for negative scales.
type scaleMatrixStage struct {
	next   PointProcessor
	sx, sy float32
	tx, ty float32
}

func (s *scaleMatrixStage) PointList4(xs, ys *[4]float32) {
	vx := (*wide.F32x4)(xs)
	vy := (*wide.F32x4)(ys)
	*vx = vx.MulAdd(wide.SplatF32(s.sx), wide.SplatF32(s.tx))
	*vy = vy.MulAdd(wide.SplatF32(s.sy), wide.SplatF32(s.ty))
	s.next.PointList4(xs, ys)
}

func (s *scaleMatrixStage) PointListFew(n int, xs, ys *[4]float32) {
	vx := (*wide.F32x4)(xs)
	vy := (*wide.F32x4)(ys)
	*vx = vx.MulAdd(wide.SplatF32(s.sx), wide.SplatF32(s.tx))
	*vy = vy.MulAdd(wide.SplatF32(s.sy), wide.SplatF32(s.ty))
	s.next.PointListFew(n, xs, ys)
}

func (s *scaleMatrixStage) PointSpan(span Span) {
	span.Start.X = span.Start.X*s.sx + s.tx
	span.Start.Y = span.Start.Y*s.sy + s.ty
	span.Length *= s.sx
	s.next.PointSpan(span)
}

// affineMatrixStage maps destination points by a full 2x3 transform.
// A rotated span no longer has constant y, so spans are broken into
// point batches.
type affineMatrixStage struct {
	next       PointProcessor
	sx, kx, tx float32
	ky, sy, ty float32
}

func (s *affineMatrixStage) PointList4(xs, ys *[4]float32) {
	vx := (*wide.F32x4)(xs)
	vy := (*wide.F32x4)(ys)
	nx := vx.MulAdd(wide.SplatF32(s.sx), vy.MulAdd(wide.SplatF32(s.kx), wide.SplatF32(s.tx)))
	ny := vx.MulAdd(wide.SplatF32(s.ky), vy.MulAdd(wide.SplatF32(s.sy), wide.SplatF32(s.ty)))
	*vx, *vy = nx, ny
	s.next.PointList4(xs, ys)
}

func (s *affineMatrixStage) PointListFew(n int, xs, ys *[4]float32) {
	vx := (*wide.F32x4)(xs)
	vy := (*wide.F32x4)(ys)
	nx := vx.MulAdd(wide.SplatF32(s.sx), vy.MulAdd(wide.SplatF32(s.kx), wide.SplatF32(s.tx)))
	ny := vx.MulAdd(wide.SplatF32(s.ky), vy.MulAdd(wide.SplatF32(s.sy), wide.SplatF32(s.ty)))
	*vx, *vy = nx, ny
	s.next.PointListFew(n, xs, ys)
}

func (s *affineMatrixStage) PointSpan(span Span) {
	spanFallback(span, s)
}

// perspectiveMatrixStage maps destination points by a full 3x3
// transform with a per-point perspective divide.
type perspectiveMatrixStage struct {
	next       PointProcessor
	sx, kx, tx float32
	ky, sy, ty float32
	px, py, pw float32
}

func (s *perspectiveMatrixStage) PointList4(xs, ys *[4]float32) {
	vx := (*wide.F32x4)(xs)
	vy := (*wide.F32x4)(ys)
	w := vx.MulAdd(wide.SplatF32(s.px), vy.MulAdd(wide.SplatF32(s.py), wide.SplatF32(s.pw)))
	nx := vx.MulAdd(wide.SplatF32(s.sx), vy.MulAdd(wide.SplatF32(s.kx), wide.SplatF32(s.tx)))
	ny := vx.MulAdd(wide.SplatF32(s.ky), vy.MulAdd(wide.SplatF32(s.sy), wide.SplatF32(s.ty)))
	*vx = nx.Div(w)
	*vy = ny.Div(w)
	s.next.PointList4(xs, ys)
}

func (s *perspectiveMatrixStage) PointListFew(n int, xs, ys *[4]float32) {
	vx := (*wide.F32x4)(xs)
	vy := (*wide.F32x4)(ys)
	w := vx.MulAdd(wide.SplatF32(s.px), vy.MulAdd(wide.SplatF32(s.py), wide.SplatF32(s.pw)))
	nx := vx.MulAdd(wide.SplatF32(s.sx), vy.MulAdd(wide.SplatF32(s.kx), wide.SplatF32(s.tx)))
	ny := vx.MulAdd(wide.SplatF32(s.ky), vy.MulAdd(wide.SplatF32(s.sy), wide.SplatF32(s.ty)))
	*vx = nx.Div(w)
	*vy = ny.Div(w)
	s.next.PointListFew(n, xs, ys)
}

func (s *perspectiveMatrixStage) PointSpan(span Span) {
	spanFallback(span, s)
}
