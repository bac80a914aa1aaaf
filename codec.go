package shade

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/shade/blend"
	"github.com/gogpu/shade/internal/color"
)

// dstCodec translates between destination pixel memory and linear
// premultiplied color. Implementations are zero-size, so a blit sink
// instantiated with one carries the conversion in its code path alone.
type dstCodec interface {
	bytesPerPixel() int
	load(b []byte) blend.RGBA
	store(b []byte, c blend.RGBA)
}

// rgba8LinearCodec handles 8-bit RGBA with linear gamma.
type rgba8LinearCodec struct{}

func (rgba8LinearCodec) bytesPerPixel() int { return 4 }

func (rgba8LinearCodec) load(b []byte) blend.RGBA {
	return blend.RGBA{
		color.UnitF32(b[0]),
		color.UnitF32(b[1]),
		color.UnitF32(b[2]),
		color.UnitF32(b[3]),
	}
}

func (rgba8LinearCodec) store(b []byte, c blend.RGBA) {
	b[0] = color.ClampRoundU8(c[0])
	b[1] = color.ClampRoundU8(c[1])
	b[2] = color.ClampRoundU8(c[2])
	b[3] = color.ClampRoundU8(c[3])
}

// rgba8SRGBCodec handles 8-bit RGBA with sRGB-encoded color channels.
// The alpha channel stays linear.
type rgba8SRGBCodec struct{}

func (rgba8SRGBCodec) bytesPerPixel() int { return 4 }

func (rgba8SRGBCodec) load(b []byte) blend.RGBA {
	return blend.RGBA{
		color.SRGBToLinearFast(b[0]),
		color.SRGBToLinearFast(b[1]),
		color.SRGBToLinearFast(b[2]),
		color.UnitF32(b[3]),
	}
}

func (rgba8SRGBCodec) store(b []byte, c blend.RGBA) {
	b[0] = color.LinearToSRGBFast(c[0])
	b[1] = color.LinearToSRGBFast(c[1])
	b[2] = color.LinearToSRGBFast(c[2])
	b[3] = color.ClampRoundU8(c[3])
}

// bgra8LinearCodec handles 8-bit BGRA with linear gamma.
type bgra8LinearCodec struct{}

func (bgra8LinearCodec) bytesPerPixel() int { return 4 }

func (bgra8LinearCodec) load(b []byte) blend.RGBA {
	return blend.RGBA{
		color.UnitF32(b[2]),
		color.UnitF32(b[1]),
		color.UnitF32(b[0]),
		color.UnitF32(b[3]),
	}
}

func (bgra8LinearCodec) store(b []byte, c blend.RGBA) {
	b[2] = color.ClampRoundU8(c[0])
	b[1] = color.ClampRoundU8(c[1])
	b[0] = color.ClampRoundU8(c[2])
	b[3] = color.ClampRoundU8(c[3])
}

// bgra8SRGBCodec handles 8-bit BGRA with sRGB-encoded color channels.
type bgra8SRGBCodec struct{}

func (bgra8SRGBCodec) bytesPerPixel() int { return 4 }

func (bgra8SRGBCodec) load(b []byte) blend.RGBA {
	return blend.RGBA{
		color.SRGBToLinearFast(b[2]),
		color.SRGBToLinearFast(b[1]),
		color.SRGBToLinearFast(b[0]),
		color.UnitF32(b[3]),
	}
}

func (bgra8SRGBCodec) store(b []byte, c blend.RGBA) {
	b[2] = color.LinearToSRGBFast(c[0])
	b[1] = color.LinearToSRGBFast(c[1])
	b[0] = color.LinearToSRGBFast(c[2])
	b[3] = color.ClampRoundU8(c[3])
}

// rgbaF32Codec handles 128-bit float RGBA, stored little-endian and
// already linear.
type rgbaF32Codec struct{}

func (rgbaF32Codec) bytesPerPixel() int { return 16 }

func (rgbaF32Codec) load(b []byte) blend.RGBA {
	return blend.RGBA{
		math.Float32frombits(binary.LittleEndian.Uint32(b[0:4])),
		math.Float32frombits(binary.LittleEndian.Uint32(b[4:8])),
		math.Float32frombits(binary.LittleEndian.Uint32(b[8:12])),
		math.Float32frombits(binary.LittleEndian.Uint32(b[12:16])),
	}
}

func (rgbaF32Codec) store(b []byte, c blend.RGBA) {
	binary.LittleEndian.PutUint32(b[0:4], math.Float32bits(c[0]))
	binary.LittleEndian.PutUint32(b[4:8], math.Float32bits(c[1]))
	binary.LittleEndian.PutUint32(b[8:12], math.Float32bits(c[2]))
	binary.LittleEndian.PutUint32(b[12:16], math.Float32bits(c[3]))
}
