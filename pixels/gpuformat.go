package pixels

import "github.com/gogpu/gputypes"

// TextureFormat returns the WebGPU texture format with the same byte
// layout as f, for handing shaded buffers to gogpu-based renderers.
//
// The mapping covers layout only; transfer functions and premultiplication
// are not expressible here and must be carried alongside (see Info).
// Returns (TextureFormatUndefined, false) for layouts with no single-texel
// WebGPU equivalent.
func (f Format) TextureFormat() (gputypes.TextureFormat, bool) {
	switch f {
	case FormatGray8, FormatAlpha8:
		return gputypes.TextureFormatR8Unorm, true
	case FormatRGBA8:
		return gputypes.TextureFormatRGBA8Unorm, true
	case FormatBGRA8:
		return gputypes.TextureFormatBGRA8Unorm, true
	default:
		// RGB8 has no packed 24-bit texture format; RGBAF32 needs a
		// float texture format outside the mapped set.
		return gputypes.TextureFormatUndefined, false
	}
}

// FormatFromTexture returns the pixel Format matching a WebGPU texture
// format's byte layout. Single-channel formats map to FormatGray8; callers
// wanting coverage semantics can rewrap as FormatAlpha8.
func FormatFromTexture(tf gputypes.TextureFormat) (Format, bool) {
	switch tf {
	case gputypes.TextureFormatR8Unorm:
		return FormatGray8, true
	case gputypes.TextureFormatRGBA8Unorm:
		return FormatRGBA8, true
	case gputypes.TextureFormatBGRA8Unorm:
		return FormatBGRA8, true
	default:
		return formatCount, false
	}
}
