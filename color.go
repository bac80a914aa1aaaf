package shade

import (
	"github.com/gogpu/shade/internal/color"
	"github.com/gogpu/shade/internal/wide"
)

// Color4f is the pipeline's working color: linear gamma, premultiplied
// alpha, float32 components in [0, 1]. Every accessor decodes source
// texels to this form and ShadeSpan4f emits it.
type Color4f struct {
	R, G, B, A float32
}

// ColorFromSRGB converts an unpremultiplied sRGB-encoded color (the usual
// paint representation) to the pipeline's working form: channels are
// linearized, then premultiplied by alpha. Alpha is never gamma-encoded.
func ColorFromSRGB(r, g, b, a float32) Color4f {
	return Color4f{
		R: color.SRGBToLinear(r) * a,
		G: color.SRGBToLinear(g) * a,
		B: color.SRGBToLinear(b) * a,
		A: a,
	}
}

// ColorFromLinear converts an unpremultiplied linear color to the
// pipeline's working form by premultiplying.
func ColorFromLinear(r, g, b, a float32) Color4f {
	return Color4f{R: r * a, G: g * a, B: b * a, A: a}
}

// SRGB converts back to unpremultiplied sRGB-encoded components, the
// inverse of ColorFromSRGB. Fully transparent colors return zeros.
func (c Color4f) SRGB() (r, g, b, a float32) {
	if c.A == 0 {
		return 0, 0, 0, 0
	}
	inv := 1 / c.A
	return color.LinearToSRGB(c.R * inv),
		color.LinearToSRGB(c.G * inv),
		color.LinearToSRGB(c.B * inv),
		c.A
}

// vec returns the color as four wide lanes in R, G, B, A order.
func (c Color4f) vec() wide.F32x4 {
	return wide.F32x4{c.R, c.G, c.B, c.A}
}

// colorFromVec rebuilds a Color4f from four wide lanes.
func colorFromVec(v wide.F32x4) Color4f {
	return Color4f{R: v[0], G: v[1], B: v[2], A: v[3]}
}
