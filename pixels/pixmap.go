package pixels

import (
	"encoding/binary"
	"errors"
	"image"
	"math"

	"github.com/gogpu/shade/internal/color"
)

// Common errors for pixel buffer operations.
var (
	// ErrInvalidInfo is returned when dimensions are non-positive or an
	// enum field is unknown.
	ErrInvalidInfo = errors.New("pixels: invalid buffer info")

	// ErrInvalidStride is returned when stride is less than minimum required.
	ErrInvalidStride = errors.New("pixels: stride too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("pixels: data buffer too small")

	// ErrOutOfBounds is returned when pixel coordinates are outside the bounds.
	ErrOutOfBounds = errors.New("pixels: coordinates out of bounds")
)

// Pixmap couples pixel memory with the Info describing how to read it.
//
// Pixel data lives in a contiguous byte slice with optional stride for
// memory alignment. A Pixmap does not interpret color on its own beyond
// the byte-level accessors below; the pipeline's accessors decode texels
// to linear premultiplied color.
//
// Thread safety: Pixmap is safe for concurrent read access. Write
// operations (Set*, Clear, Fill) require external synchronization.
type Pixmap struct {
	data   []byte
	info   Info
	stride int
}

// New creates a tightly packed pixel buffer for the given info.
// Returns an error if the info is invalid.
func New(info Info) (*Pixmap, error) {
	if !info.IsValid() {
		return nil, ErrInvalidInfo
	}

	stride := info.MinRowBytes()
	data := make([]byte, stride*info.Height)

	return &Pixmap{
		data:   data,
		info:   info,
		stride: stride,
	}, nil
}

// NewWithStride creates a pixel buffer with a custom stride for alignment.
// Stride must be at least info.MinRowBytes().
func NewWithStride(info Info, stride int) (*Pixmap, error) {
	if !info.IsValid() {
		return nil, ErrInvalidInfo
	}
	if stride < info.MinRowBytes() {
		return nil, ErrInvalidStride
	}

	data := make([]byte, stride*info.Height)

	return &Pixmap{
		data:   data,
		info:   info,
		stride: stride,
	}, nil
}

// FromRaw creates a Pixmap over existing data without copying.
// The caller must ensure data remains valid for the lifetime of the Pixmap.
// Stride must be at least info.MinRowBytes().
func FromRaw(data []byte, info Info, stride int) (*Pixmap, error) {
	if !info.IsValid() {
		return nil, ErrInvalidInfo
	}
	if stride < info.MinRowBytes() {
		return nil, ErrInvalidStride
	}

	requiredSize := stride * info.Height
	if len(data) < requiredSize {
		return nil, ErrDataTooSmall
	}

	return &Pixmap{
		data:   data[:requiredSize],
		info:   info,
		stride: stride,
	}, nil
}

// Clone creates a deep copy of the pixel buffer.
func (p *Pixmap) Clone() *Pixmap {
	newData := make([]byte, len(p.data))
	copy(newData, p.data)

	return &Pixmap{
		data:   newData,
		info:   p.info,
		stride: p.stride,
	}
}

// Info returns the buffer description.
func (p *Pixmap) Info() Info {
	return p.info
}

// Width returns the width in pixels.
func (p *Pixmap) Width() int {
	return p.info.Width
}

// Height returns the height in pixels.
func (p *Pixmap) Height() int {
	return p.info.Height
}

// Stride returns the number of bytes per row (including padding).
func (p *Pixmap) Stride() int {
	return p.stride
}

// Format returns the pixel storage layout.
func (p *Pixmap) Format() Format {
	return p.info.Format
}

// Data returns the raw pixel data slice.
// Modifying this data affects the Pixmap.
func (p *Pixmap) Data() []byte {
	return p.data
}

// Row returns a slice of the pixel data for row y.
// Returns nil if y is out of bounds.
func (p *Pixmap) Row(y int) []byte {
	if y < 0 || y >= p.info.Height {
		return nil
	}
	start := y * p.stride
	end := start + p.info.MinRowBytes()
	return p.data[start:end]
}

// PixelOffset returns the byte offset of pixel (x, y) in the data slice.
// Returns -1 if coordinates are out of bounds.
func (p *Pixmap) PixelOffset(x, y int) int {
	if x < 0 || x >= p.info.Width || y < 0 || y >= p.info.Height {
		return -1
	}
	return y*p.stride + x*p.info.Format.BytesPerPixel()
}

// PixelBytes returns a slice of the raw bytes for pixel (x, y).
// Returns nil if coordinates are out of bounds.
func (p *Pixmap) PixelBytes(x, y int) []byte {
	offset := p.PixelOffset(x, y)
	if offset < 0 {
		return nil
	}
	bpp := p.info.Format.BytesPerPixel()
	return p.data[offset : offset+bpp]
}

// GetRGBA returns the stored channel values at (x, y) as (r, g, b, a) in
// 0-255 range, reordered to RGBA but otherwise uninterpreted: premultiplied
// buffers return premultiplied bytes and gamma-encoded buffers return
// encoded bytes. Grayscale replicates into r, g, b; formats without alpha
// and opaque buffers return a=255; alpha-only returns color 0.
// Returns (0,0,0,0) if coordinates are out of bounds.
func (p *Pixmap) GetRGBA(x, y int) (r, g, b, a uint8) {
	pixel := p.PixelBytes(x, y)
	if pixel == nil {
		return 0, 0, 0, 0
	}

	switch p.info.Format {
	case FormatGray8:
		v := pixel[0]
		return v, v, v, 255
	case FormatAlpha8:
		return 0, 0, 0, pixel[0]
	case FormatRGB8:
		return pixel[0], pixel[1], pixel[2], 255
	case FormatRGBA8:
		r, g, b, a = pixel[0], pixel[1], pixel[2], pixel[3]
	case FormatBGRA8:
		r, g, b, a = pixel[2], pixel[1], pixel[0], pixel[3]
	case FormatRGBAF32:
		r = color.ClampRoundU8(getF32(pixel, 0))
		g = color.ClampRoundU8(getF32(pixel, 1))
		b = color.ClampRoundU8(getF32(pixel, 2))
		a = color.ClampRoundU8(getF32(pixel, 3))
	default:
		return 0, 0, 0, 0
	}
	if p.info.Alpha == AlphaOpaque {
		a = 255
	}
	return r, g, b, a
}

// SetRGBA stores channel values at (x, y) from (r, g, b, a) in 0-255 range.
// Values are written as given; callers are responsible for matching the
// buffer's alpha and gamma interpretation. Grayscale uses standard
// luminance weights. Returns ErrOutOfBounds if coordinates are outside the
// bounds.
func (p *Pixmap) SetRGBA(x, y int, r, g, b, a uint8) error {
	offset := p.PixelOffset(x, y)
	if offset < 0 {
		return ErrOutOfBounds
	}

	switch p.info.Format {
	case FormatGray8:
		// Standard luminance: 0.299*R + 0.587*G + 0.114*B
		gray := (int(r)*299 + int(g)*587 + int(b)*114) / 1000
		p.data[offset] = byte(gray)
	case FormatAlpha8:
		p.data[offset] = a
	case FormatRGB8:
		p.data[offset] = r
		p.data[offset+1] = g
		p.data[offset+2] = b
	case FormatRGBA8:
		p.data[offset] = r
		p.data[offset+1] = g
		p.data[offset+2] = b
		p.data[offset+3] = a
	case FormatBGRA8:
		p.data[offset] = b
		p.data[offset+1] = g
		p.data[offset+2] = r
		p.data[offset+3] = a
	case FormatRGBAF32:
		px := p.data[offset : offset+16]
		putF32(px, 0, color.UnitF32(r))
		putF32(px, 1, color.UnitF32(g))
		putF32(px, 2, color.UnitF32(b))
		putF32(px, 3, color.UnitF32(a))
	}

	return nil
}

// GetF32 returns the four float32 channels at (x, y) for FormatRGBAF32
// buffers. Returns zeros for other formats or out-of-bounds coordinates.
func (p *Pixmap) GetF32(x, y int) (r, g, b, a float32) {
	if p.info.Format != FormatRGBAF32 {
		return 0, 0, 0, 0
	}
	pixel := p.PixelBytes(x, y)
	if pixel == nil {
		return 0, 0, 0, 0
	}
	return getF32(pixel, 0), getF32(pixel, 1), getF32(pixel, 2), getF32(pixel, 3)
}

// SetF32 stores four float32 channels at (x, y) for FormatRGBAF32 buffers.
// Returns ErrOutOfBounds for other formats or out-of-bounds coordinates.
func (p *Pixmap) SetF32(x, y int, r, g, b, a float32) error {
	if p.info.Format != FormatRGBAF32 {
		return ErrOutOfBounds
	}
	pixel := p.PixelBytes(x, y)
	if pixel == nil {
		return ErrOutOfBounds
	}
	putF32(pixel, 0, r)
	putF32(pixel, 1, g)
	putF32(pixel, 2, b)
	putF32(pixel, 3, a)
	return nil
}

// Clear sets all pixels to zero (transparent black for alpha formats).
func (p *Pixmap) Clear() {
	clear(p.data)
}

// Fill sets all pixels to the given RGBA channel values.
func (p *Pixmap) Fill(r, g, b, a uint8) {
	for y := range p.info.Height {
		for x := range p.info.Width {
			_ = p.SetRGBA(x, y, r, g, b, a)
		}
	}
}

// SubPixmap returns a view into a rectangular region of the buffer.
// The returned Pixmap shares the underlying data with the original.
// Modifications to the sub-pixmap affect the original and vice versa.
// Returns nil if the bounds are invalid or outside the buffer.
func (p *Pixmap) SubPixmap(x, y, width, height int) *Pixmap {
	if x < 0 || y < 0 || width <= 0 || height <= 0 {
		return nil
	}
	if x+width > p.info.Width || y+height > p.info.Height {
		return nil
	}

	bpp := p.info.Format.BytesPerPixel()
	offset := y*p.stride + x*bpp
	endOffset := (y+height-1)*p.stride + (x+width)*bpp

	sub := p.info
	sub.Width = width
	sub.Height = height

	return &Pixmap{
		data:   p.data[offset:endOffset],
		info:   sub,
		stride: p.stride, // keep original stride for proper row access
	}
}

// ByteSize returns the total size of the pixel data in bytes.
func (p *Pixmap) ByteSize() int {
	return len(p.data)
}

// IsEmpty returns true if the buffer has zero dimensions.
func (p *Pixmap) IsEmpty() bool {
	return p.info.Width == 0 || p.info.Height == 0
}

// ToRGBA converts the buffer to a standard library *image.RGBA.
//
// image.RGBA is alpha-premultiplied, so unpremultiplied buffers are
// premultiplied during conversion. Channel values are copied in storage
// space; no gamma conversion happens here.
func (p *Pixmap) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.info.Width, p.info.Height))
	premul := p.info.Alpha == AlphaUnpremul && p.info.Format.HasAlpha()

	for y := range p.info.Height {
		for x := range p.info.Width {
			r, g, b, a := p.GetRGBA(x, y)
			if premul && a != 255 {
				r = mulDiv255(r, a)
				g = mulDiv255(g, a)
				b = mulDiv255(b, a)
			}
			o := img.PixOffset(x, y)
			img.Pix[o] = r
			img.Pix[o+1] = g
			img.Pix[o+2] = b
			img.Pix[o+3] = a
		}
	}
	return img
}

// FromRGBA copies a standard library *image.RGBA into a new Pixmap with
// the given alpha and gamma interpretation. image.RGBA is premultiplied;
// requesting AlphaUnpremul unpremultiplies during conversion.
func FromRGBA(img *image.RGBA, alpha AlphaType, gamma GammaType) (*Pixmap, error) {
	bounds := img.Bounds()
	info := Info{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Format: FormatRGBA8,
		Alpha:  alpha,
		Gamma:  gamma,
	}
	p, err := New(info)
	if err != nil {
		return nil, err
	}

	for y := range info.Height {
		for x := range info.Width {
			o := img.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)
			r, g, b, a := img.Pix[o], img.Pix[o+1], img.Pix[o+2], img.Pix[o+3]
			if alpha == AlphaUnpremul && a != 0 && a != 255 {
				r = divMul255(r, a)
				g = divMul255(g, a)
				b = divMul255(b, a)
			}
			_ = p.SetRGBA(x, y, r, g, b, a)
		}
	}
	return p, nil
}

// mulDiv255 computes v*a/255 with rounding.
func mulDiv255(v, a uint8) uint8 {
	return uint8((uint32(v)*uint32(a) + 127) / 255)
}

// divMul255 computes v*255/a with rounding, the inverse of mulDiv255.
func divMul255(v, a uint8) uint8 {
	x := (uint32(v)*255 + uint32(a)/2) / uint32(a)
	if x > 255 {
		x = 255
	}
	return uint8(x)
}

// getF32 reads channel c of a little-endian float32 pixel.
func getF32(px []byte, c int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(px[c*4:]))
}

// putF32 writes channel c of a little-endian float32 pixel.
func putF32(px []byte, c int, v float32) {
	binary.LittleEndian.PutUint32(px[c*4:], math.Float32bits(v))
}
