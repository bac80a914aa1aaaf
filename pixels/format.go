// Package pixels provides pixel buffer management for gogpu/shade.
//
// This package implements the data side of the shading pipeline: pixel
// storage formats, alpha and gamma metadata, the Pixmap byte container,
// and mipmap chains. The pipeline's accessors and codecs interpret the
// bytes; this package only describes and holds them.
package pixels

// Format represents a pixel storage layout.
//
// A Format describes byte layout only. Whether alpha is premultiplied and
// whether color channels are sRGB-encoded are properties of the buffer,
// carried by Info as AlphaType and GammaType.
type Format uint8

const (
	// FormatGray8 is 8-bit grayscale (1 byte per pixel). Gray replicates
	// into R, G and B when read; alpha reads as opaque.
	FormatGray8 Format = iota

	// FormatAlpha8 is 8-bit alpha-only coverage (1 byte per pixel).
	// Readers color it with the paint.
	FormatAlpha8

	// FormatRGB8 is 24-bit RGB (3 bytes per pixel, no alpha).
	FormatRGB8

	// FormatRGBA8 is 32-bit RGBA (4 bytes per pixel).
	// This is the standard format for most operations.
	FormatRGBA8

	// FormatBGRA8 is 32-bit BGRA (4 bytes per pixel).
	// Common on Windows and some GPU formats.
	FormatBGRA8

	// FormatRGBAF32 is 128-bit RGBA with float32 channels stored
	// little-endian (16 bytes per pixel).
	FormatRGBAF32

	// formatCount is the number of formats (for internal use).
	formatCount
)

// AlphaType describes how a buffer's alpha channel relates to its color
// channels.
type AlphaType uint8

const (
	// AlphaOpaque means every pixel is fully opaque; any stored alpha is
	// ignored and reads as 1.
	AlphaOpaque AlphaType = iota

	// AlphaPremul means color channels are premultiplied by alpha.
	AlphaPremul

	// AlphaUnpremul means color channels are independent of alpha.
	AlphaUnpremul

	alphaTypeCount
)

// GammaType describes the transfer function of a buffer's color channels.
// Alpha is never gamma-encoded.
type GammaType uint8

const (
	// GammaLinear means channel values are proportional to light.
	GammaLinear GammaType = iota

	// GammaSRGB means channel values use the sRGB transfer function.
	GammaSRGB

	gammaTypeCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// BytesPerPixel is the number of bytes per pixel.
	BytesPerPixel int

	// Channels is the number of color channels.
	Channels int

	// HasAlpha indicates if the format stores an alpha channel.
	HasAlpha bool

	// IsGrayscale indicates if this is a grayscale format.
	IsGrayscale bool

	// IsFloat indicates if channels are float32 rather than bytes.
	IsFloat bool

	// BitsPerChannel is the number of bits per color channel.
	BitsPerChannel int
}

// formatInfoTable contains metadata for each format.
var formatInfoTable = [formatCount]FormatInfo{
	FormatGray8: {
		BytesPerPixel:  1,
		Channels:       1,
		HasAlpha:       false,
		IsGrayscale:    true,
		BitsPerChannel: 8,
	},
	FormatAlpha8: {
		BytesPerPixel:  1,
		Channels:       1,
		HasAlpha:       true,
		IsGrayscale:    false,
		BitsPerChannel: 8,
	},
	FormatRGB8: {
		BytesPerPixel:  3,
		Channels:       3,
		HasAlpha:       false,
		IsGrayscale:    false,
		BitsPerChannel: 8,
	},
	FormatRGBA8: {
		BytesPerPixel:  4,
		Channels:       4,
		HasAlpha:       true,
		IsGrayscale:    false,
		BitsPerChannel: 8,
	},
	FormatBGRA8: {
		BytesPerPixel:  4,
		Channels:       4,
		HasAlpha:       true,
		IsGrayscale:    false,
		BitsPerChannel: 8,
	},
	FormatRGBAF32: {
		BytesPerPixel:  16,
		Channels:       4,
		HasAlpha:       true,
		IsFloat:        true,
		BitsPerChannel: 32,
	},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// BytesPerPixel returns the number of bytes per pixel for this format.
func (f Format) BytesPerPixel() int {
	return f.Info().BytesPerPixel
}

// Channels returns the number of color channels.
func (f Format) Channels() int {
	return f.Info().Channels
}

// HasAlpha returns true if this format stores an alpha channel.
func (f Format) HasAlpha() bool {
	return f.Info().HasAlpha
}

// IsGrayscale returns true if this is a grayscale format.
func (f Format) IsGrayscale() bool {
	return f.Info().IsGrayscale
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// ImageBytes calculates the total number of bytes needed for an image.
func (f Format) ImageBytes(width, height int) int {
	return f.RowBytes(width) * height
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatGray8:
		return "Gray8"
	case FormatAlpha8:
		return "Alpha8"
	case FormatRGB8:
		return "RGB8"
	case FormatRGBA8:
		return "RGBA8"
	case FormatBGRA8:
		return "BGRA8"
	case FormatRGBAF32:
		return "RGBAF32"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the alpha type is a valid known value.
func (a AlphaType) IsValid() bool {
	return a < alphaTypeCount
}

// String returns a string representation of the alpha type.
func (a AlphaType) String() string {
	switch a {
	case AlphaOpaque:
		return "Opaque"
	case AlphaPremul:
		return "Premul"
	case AlphaUnpremul:
		return "Unpremul"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the gamma type is a valid known value.
func (g GammaType) IsValid() bool {
	return g < gammaTypeCount
}

// String returns a string representation of the gamma type.
func (g GammaType) String() string {
	switch g {
	case GammaLinear:
		return "Linear"
	case GammaSRGB:
		return "SRGB"
	default:
		return "Unknown"
	}
}

// Info describes the dimensions and interpretation of a pixel buffer.
type Info struct {
	// Width and Height are the dimensions in pixels.
	Width, Height int

	// Format is the pixel storage layout.
	Format Format

	// Alpha describes the relation of alpha to the color channels.
	Alpha AlphaType

	// Gamma is the transfer function of the color channels.
	Gamma GammaType
}

// IsValid reports whether dimensions are positive and every enum is known.
func (in Info) IsValid() bool {
	return in.Width > 0 && in.Height > 0 &&
		in.Format.IsValid() && in.Alpha.IsValid() && in.Gamma.IsValid()
}

// Opaque reports whether pixels described by this info are always fully
// opaque, either by alpha type or because the format stores no alpha.
func (in Info) Opaque() bool {
	return in.Alpha == AlphaOpaque || !in.Format.HasAlpha()
}

// MinRowBytes returns the tightest legal stride for this info.
func (in Info) MinRowBytes() int {
	return in.Format.RowBytes(in.Width)
}

// ByteSize returns the number of bytes a tightly packed buffer needs.
func (in Info) ByteSize() int {
	return in.Format.ImageBytes(in.Width, in.Height)
}
