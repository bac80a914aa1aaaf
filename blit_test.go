package shade

import (
	"bytes"
	"testing"

	"github.com/gogpu/shade/blend"
	"github.com/gogpu/shade/pixels"
)

// newOpaqueSource builds an 8x8 opaque gradient pixmap.
func newOpaqueSource(t testing.TB) *pixels.Pixmap {
	t.Helper()
	src := newTestPixmap(t, pixels.Info{
		Width: 8, Height: 8,
		Format: pixels.FormatRGBA8,
		Alpha:  pixels.AlphaOpaque,
		Gamma:  pixels.GammaSRGB,
	})
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			src.SetRGBA(x, y, uint8(x*32), uint8(y*32), uint8(255-x*16), 255)
		}
	}
	return src
}

// storeShaded converts shaded colors to destination bytes with the same
// codec a blit sink uses.
func storeShaded(codec dstCodec, colors []Color4f) []byte {
	bpp := codec.bytesPerPixel()
	out := make([]byte, len(colors)*bpp)
	for i, c := range colors {
		codec.store(out[i*bpp:], blend.RGBA{c.R, c.G, c.B, c.A})
	}
	return out
}

func TestClonePipelineForBlittingMatchesShading(t *testing.T) {
	src := newOpaqueSource(t)

	tests := []struct {
		name         string
		inverse      Matrix
		quality      FilterQuality
		xTile, yTile TileMode
		dst          pixels.Info
		codec        dstCodec
	}{
		{
			"identity clamp nearest to linear rgba",
			Identity(), FilterNone, TileClamp, TileClamp,
			pixels.Info{Width: 9, Height: 1, Format: pixels.FormatRGBA8, Alpha: pixels.AlphaPremul, Gamma: pixels.GammaLinear},
			rgba8LinearCodec{},
		},
		{
			"translate repeat nearest to srgb bgra",
			Translate(1.25, 0.5), FilterNone, TileRepeat, TileRepeat,
			pixels.Info{Width: 9, Height: 1, Format: pixels.FormatBGRA8, Alpha: pixels.AlphaPremul, Gamma: pixels.GammaSRGB},
			bgra8SRGBCodec{},
		},
		{
			"scale mirror bilinear to srgb rgba",
			Scale(1.7, 0.8), FilterLow, TileMirror, TileMirror,
			pixels.Info{Width: 9, Height: 1, Format: pixels.FormatRGBA8, Alpha: pixels.AlphaPremul, Gamma: pixels.GammaSRGB},
			rgba8SRGBCodec{},
		},
		{
			"affine bilinear to float rgba",
			Rotate(0.5), FilterLow, TileClamp, TileRepeat,
			pixels.Info{Width: 9, Height: 1, Format: pixels.FormatRGBAF32, Alpha: pixels.AlphaPremul, Gamma: pixels.GammaLinear},
			rgbaF32Codec{},
		},
		{
			"minified medium to linear rgba",
			Scale(2.3, 2.3), FilterMedium, TileRepeat, TileClamp,
			pixels.Info{Width: 9, Height: 1, Format: pixels.FormatRGBA8, Alpha: pixels.AlphaPremul, Gamma: pixels.GammaLinear},
			rgba8LinearCodec{},
		},
	}

	const count = 9
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := NewPipeline(tt.inverse, tt.quality, tt.xTile, tt.yTile, opaquePaint(), src)

			var storage EmbeddablePipeline
			if !ClonePipelineForBlitting(&storage, base, 1, blend.Src, tt.dst) {
				t.Fatal("blit clone refused an opaque source and a supported destination")
			}
			pipe := storage.Get()

			shaded := make([]Color4f, count)
			base.ShadeSpan4f(2, 3, shaded, count)
			want := storeShaded(tt.codec, shaded)

			got := make([]byte, count*tt.codec.bytesPerPixel())
			for i := range got {
				got[i] = 0xA5
			}
			pipe.BlitSpan(2, 3, got, count)

			if !bytes.Equal(got, want) {
				t.Errorf("blitted bytes differ from shaded and converted bytes\ngot  %x\nwant %x", got, want)
			}
		})
	}
}

func TestClonePipelineForBlittingSrcOver(t *testing.T) {
	src := newOpaqueSource(t)
	base := NewPipeline(Identity(), FilterNone, TileClamp, TileClamp, opaquePaint(), src)
	dst := pixels.Info{Width: 8, Height: 1, Format: pixels.FormatRGBA8, Alpha: pixels.AlphaPremul, Gamma: pixels.GammaLinear}

	var srcPipe, overPipe EmbeddablePipeline
	if !ClonePipelineForBlitting(&srcPipe, base, 1, blend.Src, dst) {
		t.Fatal("Src clone refused")
	}
	if !ClonePipelineForBlitting(&overPipe, base, 1, blend.SrcOver, dst) {
		t.Fatal("SrcOver clone refused")
	}

	// An opaque source fully replaces the destination either way.
	a := make([]byte, 8*4)
	b := make([]byte, 8*4)
	for i := range b {
		b[i] = 0x5A
	}
	srcPipe.Get().BlitSpan(0, 4, a, 8)
	overPipe.Get().BlitSpan(0, 4, b, 8)
	if !bytes.Equal(a, b) {
		t.Errorf("SrcOver of an opaque source differs from Src\nsrc     %x\nsrcover %x", a, b)
	}
}

func TestClonePipelineForBlittingRefusals(t *testing.T) {
	opaque := newOpaqueSource(t)
	translucent := newTestPixmap(t, rgbaLinearPremul(4, 4))
	translucent.Fill(64, 64, 64, 128)

	goodDst := pixels.Info{Width: 4, Height: 4, Format: pixels.FormatRGBA8, Alpha: pixels.AlphaPremul, Gamma: pixels.GammaLinear}

	tests := []struct {
		name  string
		src   *pixels.Pixmap
		paint Color4f
		alpha float32
		mode  blend.Mode
		dst   pixels.Info
	}{
		{"final alpha below one", opaque, opaquePaint(), 0.5, blend.Src, goodDst},
		{"translucent paint", opaque, ColorFromLinear(1, 1, 1, 0.5), 1, blend.Src, goodDst},
		{"unsupported blend mode", opaque, opaquePaint(), 1, blend.Xor, goodDst},
		{"translucent source", translucent, opaquePaint(), 1, blend.Src, goodDst},
		{"gray destination", opaque, opaquePaint(), 1, blend.Src,
			pixels.Info{Width: 4, Height: 4, Format: pixels.FormatGray8, Alpha: pixels.AlphaOpaque, Gamma: pixels.GammaLinear}},
		{"unpremultiplied destination", opaque, opaquePaint(), 1, blend.Src,
			pixels.Info{Width: 4, Height: 4, Format: pixels.FormatRGBA8, Alpha: pixels.AlphaUnpremul, Gamma: pixels.GammaLinear}},
		{"srgb float destination", opaque, opaquePaint(), 1, blend.Src,
			pixels.Info{Width: 4, Height: 4, Format: pixels.FormatRGBAF32, Alpha: pixels.AlphaPremul, Gamma: pixels.GammaSRGB}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := NewPipeline(Identity(), FilterNone, TileClamp, TileClamp, tt.paint, tt.src)
			var storage EmbeddablePipeline
			if ClonePipelineForBlitting(&storage, base, tt.alpha, tt.mode, tt.dst) {
				t.Fatal("blit clone accepted a case it cannot blit exactly")
			}
			if storage.IsInitialized() {
				t.Error("refused clone still initialized the storage")
			}
		})
	}
}

func TestNewBlitPipeline(t *testing.T) {
	src := newOpaqueSource(t)
	base := NewPipeline(Translate(0.5, 0), FilterNone, TileRepeat, TileClamp, opaquePaint(), src)
	dst := pixels.Info{Width: 8, Height: 1, Format: pixels.FormatRGBA8, Alpha: pixels.AlphaPremul, Gamma: pixels.GammaLinear}

	pipe := NewBlitPipeline(base, src, blend.Src, dst)

	shaded := make([]Color4f, 8)
	base.ShadeSpan4f(0, 0, shaded, 8)
	want := storeShaded(rgba8LinearCodec{}, shaded)

	got := make([]byte, 8*4)
	pipe.BlitSpan(0, 0, got, 8)
	if !bytes.Equal(got, want) {
		t.Errorf("blitted bytes differ from shaded bytes\ngot  %x\nwant %x", got, want)
	}
}

func TestNewBlitPipelinePanics(t *testing.T) {
	src := newOpaqueSource(t)
	other := newOpaqueSource(t)
	base := NewPipeline(Identity(), FilterNone, TileClamp, TileClamp, opaquePaint(), src)
	goodDst := pixels.Info{Width: 8, Height: 1, Format: pixels.FormatRGBA8, Alpha: pixels.AlphaPremul, Gamma: pixels.GammaLinear}

	tests := []struct {
		name string
		fn   func()
	}{
		{"foreign source", func() {
			NewBlitPipeline(base, other, blend.Src, goodDst)
		}},
		{"nil source", func() {
			NewBlitPipeline(base, nil, blend.Src, goodDst)
		}},
		{"unsupported destination", func() {
			NewBlitPipeline(base, src, blend.Src,
				pixels.Info{Width: 8, Height: 1, Format: pixels.FormatGray8, Alpha: pixels.AlphaOpaque, Gamma: pixels.GammaLinear})
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Error("expected panic, got none")
				}
			}()
			tt.fn()
		})
	}
}

func TestSpanEntryPointsRejectWrongDestination(t *testing.T) {
	src := newOpaqueSource(t)
	base := NewPipeline(Identity(), FilterNone, TileClamp, TileClamp, opaquePaint(), src)
	dst := pixels.Info{Width: 8, Height: 1, Format: pixels.FormatRGBA8, Alpha: pixels.AlphaPremul, Gamma: pixels.GammaLinear}
	blitter := NewBlitPipeline(base, src, blend.Src, dst)

	t.Run("blit span on shading pipeline", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("expected panic, got none")
			}
		}()
		base.BlitSpan(0, 0, make([]byte, 16), 4)
	})
	t.Run("shade span on blitting pipeline", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("expected panic, got none")
			}
		}()
		blitter.ShadeSpan4f(0, 0, make([]Color4f, 4), 4)
	})
}
