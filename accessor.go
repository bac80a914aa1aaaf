package shade

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/shade/internal/color"
	"github.com/gogpu/shade/pixels"
)

// texelCodec decodes one source texel into linear color with the
// channels as stored; the accessor settles premultiplication afterward.
// Implementations are zero-size.
type texelCodec interface {
	bytesPerPixel() int
	decode(b []byte) Color4f
}

type gray8LinearTexel struct{}

func (gray8LinearTexel) bytesPerPixel() int { return 1 }

func (gray8LinearTexel) decode(b []byte) Color4f {
	v := color.UnitF32(b[0])
	return Color4f{R: v, G: v, B: v, A: 1}
}

type gray8SRGBTexel struct{}

func (gray8SRGBTexel) bytesPerPixel() int { return 1 }

func (gray8SRGBTexel) decode(b []byte) Color4f {
	v := color.SRGBToLinearFast(b[0])
	return Color4f{R: v, G: v, B: v, A: 1}
}

type rgb8LinearTexel struct{}

func (rgb8LinearTexel) bytesPerPixel() int { return 3 }

func (rgb8LinearTexel) decode(b []byte) Color4f {
	return Color4f{
		R: color.UnitF32(b[0]),
		G: color.UnitF32(b[1]),
		B: color.UnitF32(b[2]),
		A: 1,
	}
}

type rgb8SRGBTexel struct{}

func (rgb8SRGBTexel) bytesPerPixel() int { return 3 }

func (rgb8SRGBTexel) decode(b []byte) Color4f {
	return Color4f{
		R: color.SRGBToLinearFast(b[0]),
		G: color.SRGBToLinearFast(b[1]),
		B: color.SRGBToLinearFast(b[2]),
		A: 1,
	}
}

type rgba8LinearTexel struct{}

func (rgba8LinearTexel) bytesPerPixel() int { return 4 }

func (rgba8LinearTexel) decode(b []byte) Color4f {
	return Color4f{
		R: color.UnitF32(b[0]),
		G: color.UnitF32(b[1]),
		B: color.UnitF32(b[2]),
		A: color.UnitF32(b[3]),
	}
}

type rgba8SRGBTexel struct{}

func (rgba8SRGBTexel) bytesPerPixel() int { return 4 }

func (rgba8SRGBTexel) decode(b []byte) Color4f {
	return Color4f{
		R: color.SRGBToLinearFast(b[0]),
		G: color.SRGBToLinearFast(b[1]),
		B: color.SRGBToLinearFast(b[2]),
		A: color.UnitF32(b[3]),
	}
}

type bgra8LinearTexel struct{}

func (bgra8LinearTexel) bytesPerPixel() int { return 4 }

func (bgra8LinearTexel) decode(b []byte) Color4f {
	return Color4f{
		R: color.UnitF32(b[2]),
		G: color.UnitF32(b[1]),
		B: color.UnitF32(b[0]),
		A: color.UnitF32(b[3]),
	}
}

type bgra8SRGBTexel struct{}

func (bgra8SRGBTexel) bytesPerPixel() int { return 4 }

func (bgra8SRGBTexel) decode(b []byte) Color4f {
	return Color4f{
		R: color.SRGBToLinearFast(b[2]),
		G: color.SRGBToLinearFast(b[1]),
		B: color.SRGBToLinearFast(b[0]),
		A: color.UnitF32(b[3]),
	}
}

type rgbaF32Texel struct{}

func (rgbaF32Texel) bytesPerPixel() int { return 16 }

func (rgbaF32Texel) decode(b []byte) Color4f {
	return Color4f{
		R: math.Float32frombits(binary.LittleEndian.Uint32(b[0:4])),
		G: math.Float32frombits(binary.LittleEndian.Uint32(b[4:8])),
		B: math.Float32frombits(binary.LittleEndian.Uint32(b[8:12])),
		A: math.Float32frombits(binary.LittleEndian.Uint32(b[12:16])),
	}
}

// pixmapAccessor reads texels straight out of pixmap memory through a
// monomorphized codec, then settles the pixmap's alpha convention so
// samplers always see premultiplied color.
type pixmapAccessor[C texelCodec] struct {
	data   []byte
	stride int
	alpha  pixels.AlphaType
	codec  C
}

func (a *pixmapAccessor[C]) finish(c Color4f) Color4f {
	switch a.alpha {
	case pixels.AlphaUnpremul:
		return Color4f{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
	case pixels.AlphaOpaque:
		c.A = 1
		return c
	default:
		return c
	}
}

func (a *pixmapAccessor[C]) GetPixel(x, y int32) Color4f {
	off := int(y)*a.stride + int(x)*a.codec.bytesPerPixel()
	return a.finish(a.codec.decode(a.data[off:]))
}

func (a *pixmapAccessor[C]) Get4Pixels(xs, ys *[4]int32, px *[4]Color4f) {
	bpp := a.codec.bytesPerPixel()
	for i := 0; i < 4; i++ {
		off := int(ys[i])*a.stride + int(xs[i])*bpp
		px[i] = a.finish(a.codec.decode(a.data[off:]))
	}
}

// alpha8PaintAccessor turns an alpha-only source into coverage of the
// paint color. Each texel scales the premultiplied paint.
type alpha8PaintAccessor struct {
	data   []byte
	stride int
	paint  Color4f
}

func (a *alpha8PaintAccessor) GetPixel(x, y int32) Color4f {
	v := color.UnitF32(a.data[int(y)*a.stride+int(x)])
	return colorFromVec(a.paint.vec().Scale(v))
}

func (a *alpha8PaintAccessor) Get4Pixels(xs, ys *[4]int32, px *[4]Color4f) {
	for i := 0; i < 4; i++ {
		px[i] = a.GetPixel(xs[i], ys[i])
	}
}

func initPixmapAccessor[C texelCodec](acc *Accessor, data []byte, stride int, alpha pixels.AlphaType) PixelAccessor {
	return InitPoly(acc, func() *pixmapAccessor[C] {
		return &pixmapAccessor[C]{data: data, stride: stride, alpha: alpha}
	})
}

// chooseAccessor fills the accessor slot for the source pixmap. Alpha
// sources shade with the paint color; everything else decodes the
// stored pixels. Float sources are taken as linear regardless of the
// tagged gamma.
func chooseAccessor(acc *Accessor, src *pixels.Pixmap, paint Color4f) PixelAccessor {
	info := src.Info()
	data := src.Data()
	stride := src.Stride()
	srgb := info.Gamma == pixels.GammaSRGB

	switch info.Format {
	case pixels.FormatGray8:
		if srgb {
			return initPixmapAccessor[gray8SRGBTexel](acc, data, stride, info.Alpha)
		}
		return initPixmapAccessor[gray8LinearTexel](acc, data, stride, info.Alpha)
	case pixels.FormatAlpha8:
		return InitPoly(acc, func() *alpha8PaintAccessor {
			return &alpha8PaintAccessor{data: data, stride: stride, paint: paint}
		})
	case pixels.FormatRGB8:
		if srgb {
			return initPixmapAccessor[rgb8SRGBTexel](acc, data, stride, info.Alpha)
		}
		return initPixmapAccessor[rgb8LinearTexel](acc, data, stride, info.Alpha)
	case pixels.FormatRGBA8:
		if srgb {
			return initPixmapAccessor[rgba8SRGBTexel](acc, data, stride, info.Alpha)
		}
		return initPixmapAccessor[rgba8LinearTexel](acc, data, stride, info.Alpha)
	case pixels.FormatBGRA8:
		if srgb {
			return initPixmapAccessor[bgra8SRGBTexel](acc, data, stride, info.Alpha)
		}
		return initPixmapAccessor[bgra8LinearTexel](acc, data, stride, info.Alpha)
	case pixels.FormatRGBAF32:
		return initPixmapAccessor[rgbaF32Texel](acc, data, stride, info.Alpha)
	default:
		panic("shade: no accessor for source format " + info.Format.String())
	}
}
