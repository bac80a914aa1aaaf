package shade

// The shading pipeline is a chain of small processors, each owning one
// concern: point mapping, tiling, sampling, blending, destination writing.
// Every stage receives work in batches and hands the result to its
// successor through one of the capability interfaces below, so the cost
// of dynamic dispatch is paid once per batch rather than once per pixel.

// PointProcessor consumes batches of sample points in source space.
// Matrix and tile stages implement it.
type PointProcessor interface {
	// PointList4 processes exactly four points held in xs and ys.
	PointList4(xs, ys *[4]float32)

	// PointListFew processes the first n points of xs and ys; 0 < n < 4.
	PointListFew(n int, xs, ys *[4]float32)

	// PointSpan processes a whole span of evenly spaced points.
	PointSpan(span Span)
}

// SampleProcessor consumes points that are ready to be sampled. Sampler
// stages implement it; tile stages feed it coordinates already wrapped
// into the source bounds.
type SampleProcessor interface {
	PointProcessor

	// RepeatSpan emits the pixels of span repeat times over. Tile
	// stages use it to cover horizontal repeats of the whole source
	// with a single call.
	RepeatSpan(span Span, repeat int)
}

// BlendProcessor consumes source colors produced by a sampler and
// resolves them against the destination. Blender stages implement it.
// Colors are linear premultiplied.
type BlendProcessor interface {
	// Blend4Pixels blends exactly four colors.
	Blend4Pixels(px *[4]Color4f)

	// BlendPixel blends a single color.
	BlendPixel(c Color4f)
}

// Destination aims the terminal stage at one span's output. Exactly one
// of the two slices is non-nil: Colors when shading into Color4f, Bytes
// when blitting into raw pixel memory.
type Destination struct {
	Colors []Color4f
	Bytes  []byte
}

// DestinationWriter is implemented by terminal blender stages. The
// pipeline points the writer at the output buffer before pushing a span
// through the chain; the writer advances through it as pixels arrive.
type DestinationWriter interface {
	// SetDestination aims the writer at dst for the next count pixels.
	SetDestination(dst Destination, count int)
}

// PixelAccessor fetches source texels for a sampler. Implementations
// decode one pixel format and gamma into linear premultiplied colors.
// Coordinates are integer texel indices already wrapped into bounds.
type PixelAccessor interface {
	// GetPixel fetches the texel at (x, y).
	GetPixel(x, y int32) Color4f

	// Get4Pixels fetches four texels at (xs[i], ys[i]).
	Get4Pixels(xs, ys *[4]int32, px *[4]Color4f)
}
