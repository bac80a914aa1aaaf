package shade

import (
	"github.com/gogpu/shade/blend"
	"github.com/gogpu/shade/pixels"
)

// chooseShadingBlender fills the blender slot with the shading sink,
// which writes sampled colors scaled by the paint alpha into a Color4f
// destination.
func chooseShadingBlender(stage *BlenderStage, paintAlpha float32) BlendProcessor {
	return InitSink(stage, func() *shadeSink {
		return &shadeSink{alpha: paintAlpha}
	})
}

// shadeSink terminates a shading pipeline. It applies the paint alpha
// to every lane of the premultiplied color and stores the result; no
// destination read happens here, blending against existing pixels is
// the caller's business.
type shadeSink struct {
	out   []Color4f
	alpha float32
}

func (s *shadeSink) SetDestination(dst Destination, count int) {
	if dst.Colors == nil {
		panic("shade: shading sink needs a color destination")
	}
	s.out = dst.Colors[:count]
}

func (s *shadeSink) Blend4Pixels(px *[4]Color4f) {
	out := s.out
	out[0] = colorFromVec(px[0].vec().Scale(s.alpha))
	out[1] = colorFromVec(px[1].vec().Scale(s.alpha))
	out[2] = colorFromVec(px[2].vec().Scale(s.alpha))
	out[3] = colorFromVec(px[3].vec().Scale(s.alpha))
	s.out = out[4:]
}

func (s *shadeSink) BlendPixel(c Color4f) {
	s.out[0] = colorFromVec(c.vec().Scale(s.alpha))
	s.out = s.out[1:]
}

// canBlitTo reports whether a blit sink exists for dst. Blit sinks
// store premultiplied values, so unpremultiplied destinations are out,
// as is every format without a codec.
func canBlitTo(dst pixels.Info) bool {
	if dst.Alpha == pixels.AlphaUnpremul {
		return false
	}
	switch dst.Format {
	case pixels.FormatRGBA8, pixels.FormatBGRA8:
		return true
	case pixels.FormatRGBAF32:
		return dst.Gamma == pixels.GammaLinear
	default:
		return false
	}
}

// chooseBlitBlender fills the blender slot with a blit sink writing raw
// dst-format pixels. The caller gates formats through canBlitTo first.
func chooseBlitBlender(stage *BlenderStage, mode blend.Mode, dst pixels.Info) BlendProcessor {
	fn := blend.GetFunc(mode)
	switch dst.Format {
	case pixels.FormatRGBA8:
		if dst.Gamma == pixels.GammaSRGB {
			return InitSink(stage, func() *blitSink[rgba8SRGBCodec] {
				return &blitSink[rgba8SRGBCodec]{blend: fn}
			})
		}
		return InitSink(stage, func() *blitSink[rgba8LinearCodec] {
			return &blitSink[rgba8LinearCodec]{blend: fn}
		})
	case pixels.FormatBGRA8:
		if dst.Gamma == pixels.GammaSRGB {
			return InitSink(stage, func() *blitSink[bgra8SRGBCodec] {
				return &blitSink[bgra8SRGBCodec]{blend: fn}
			})
		}
		return InitSink(stage, func() *blitSink[bgra8LinearCodec] {
			return &blitSink[bgra8LinearCodec]{blend: fn}
		})
	case pixels.FormatRGBAF32:
		return InitSink(stage, func() *blitSink[rgbaF32Codec] {
			return &blitSink[rgbaF32Codec]{blend: fn}
		})
	default:
		panic("shade: no blit sink for destination format " + dst.Format.String())
	}
}

// blitSink terminates a blitting pipeline. Each arriving color is
// blended against the destination pixel it lands on and stored back in
// the destination's own format. The codec type parameter folds the
// format conversion into the sink with no per-pixel dispatch.
type blitSink[C dstCodec] struct {
	out   []byte
	blend blend.Func
	codec C
}

func (s *blitSink[C]) SetDestination(dst Destination, count int) {
	if dst.Bytes == nil {
		panic("shade: blit sink needs a byte destination")
	}
	s.out = dst.Bytes[:count*s.codec.bytesPerPixel()]
}

func (s *blitSink[C]) blendOne(b []byte, c Color4f) {
	src := blend.RGBA{c.R, c.G, c.B, c.A}
	s.codec.store(b, s.blend(src, s.codec.load(b)))
}

func (s *blitSink[C]) Blend4Pixels(px *[4]Color4f) {
	bpp := s.codec.bytesPerPixel()
	out := s.out
	s.blendOne(out, px[0])
	s.blendOne(out[bpp:], px[1])
	s.blendOne(out[2*bpp:], px[2])
	s.blendOne(out[3*bpp:], px[3])
	s.out = out[4*bpp:]
}

func (s *blitSink[C]) BlendPixel(c Color4f) {
	s.blendOne(s.out, c)
	s.out = s.out[s.codec.bytesPerPixel():]
}
