package shade

import (
	"testing"

	"github.com/gogpu/shade/internal/color"
	"github.com/gogpu/shade/pixels"
)

func newTestAccessor(t *testing.T, src *pixels.Pixmap, paint Color4f) PixelAccessor {
	t.Helper()
	slot := newAccessor()
	return chooseAccessor(&slot, src, paint)
}

func TestAccessorRGBA8Linear(t *testing.T) {
	src := newTestPixmap(t, rgbaLinearPremul(2, 2))
	src.SetRGBA(1, 0, 255, 128, 0, 255)

	acc := newTestAccessor(t, src, opaquePaint())
	got := acc.GetPixel(1, 0)
	want := Color4f{R: 1, G: float32(128) / 255, B: 0, A: 1}
	if got != want {
		t.Errorf("GetPixel = %v, want %v", got, want)
	}
}

func TestAccessorRGBA8SRGB(t *testing.T) {
	src := newTestPixmap(t, pixels.Info{
		Width: 1, Height: 1,
		Format: pixels.FormatRGBA8,
		Alpha:  pixels.AlphaPremul,
		Gamma:  pixels.GammaSRGB,
	})
	src.SetRGBA(0, 0, 188, 255, 0, 255)

	acc := newTestAccessor(t, src, opaquePaint())
	got := acc.GetPixel(0, 0)

	// Color channels linearize; alpha never does.
	want := Color4f{R: color.SRGBToLinearFast(188), G: 1, B: 0, A: 1}
	if got != want {
		t.Errorf("GetPixel = %v, want %v", got, want)
	}
}

func TestAccessorBGRA8Swizzle(t *testing.T) {
	src := newTestPixmap(t, pixels.Info{
		Width: 1, Height: 1,
		Format: pixels.FormatBGRA8,
		Alpha:  pixels.AlphaPremul,
		Gamma:  pixels.GammaLinear,
	})
	src.SetRGBA(0, 0, 255, 128, 0, 255)

	acc := newTestAccessor(t, src, opaquePaint())
	got := acc.GetPixel(0, 0)
	want := Color4f{R: 1, G: float32(128) / 255, B: 0, A: 1}
	if got != want {
		t.Errorf("GetPixel = %v, want %v", got, want)
	}
}

func TestAccessorGray8Replicates(t *testing.T) {
	src := newTestPixmap(t, pixels.Info{
		Width: 2, Height: 1,
		Format: pixels.FormatGray8,
		Alpha:  pixels.AlphaOpaque,
		Gamma:  pixels.GammaLinear,
	})
	src.Data()[1] = 128

	acc := newTestAccessor(t, src, opaquePaint())
	got := acc.GetPixel(1, 0)
	v := float32(128) / 255
	want := Color4f{R: v, G: v, B: v, A: 1}
	if got != want {
		t.Errorf("GetPixel = %v, want %v", got, want)
	}
}

func TestAccessorRGB8HasNoAlpha(t *testing.T) {
	src := newTestPixmap(t, pixels.Info{
		Width: 1, Height: 1,
		Format: pixels.FormatRGB8,
		Alpha:  pixels.AlphaOpaque,
		Gamma:  pixels.GammaLinear,
	})
	src.SetRGBA(0, 0, 255, 0, 128, 0)

	acc := newTestAccessor(t, src, opaquePaint())
	got := acc.GetPixel(0, 0)
	want := Color4f{R: 1, G: 0, B: float32(128) / 255, A: 1}
	if got != want {
		t.Errorf("GetPixel = %v, want %v", got, want)
	}
}

func TestAccessorAlpha8ShadesPaint(t *testing.T) {
	src := newTestPixmap(t, pixels.Info{
		Width: 2, Height: 1,
		Format: pixels.FormatAlpha8,
		Alpha:  pixels.AlphaPremul,
		Gamma:  pixels.GammaLinear,
	})
	src.SetRGBA(0, 0, 0, 0, 0, 255)
	src.SetRGBA(1, 0, 0, 0, 0, 51)

	paint := ColorFromLinear(1, 0.5, 0.25, 1)
	acc := newTestAccessor(t, src, paint)

	if got := acc.GetPixel(0, 0); got != paint {
		t.Errorf("full coverage = %v, want the paint %v", got, paint)
	}
	cov := float32(51) / 255
	want := colorFromVec(paint.vec().Scale(cov))
	if got := acc.GetPixel(1, 0); got != want {
		t.Errorf("fifth coverage = %v, want %v", got, want)
	}
}

func TestAccessorUnpremulMultiplies(t *testing.T) {
	src := newTestPixmap(t, pixels.Info{
		Width: 1, Height: 1,
		Format: pixels.FormatRGBA8,
		Alpha:  pixels.AlphaUnpremul,
		Gamma:  pixels.GammaLinear,
	})
	src.SetRGBA(0, 0, 255, 128, 0, 51)

	acc := newTestAccessor(t, src, opaquePaint())
	got := acc.GetPixel(0, 0)

	a := float32(51) / 255
	want := Color4f{R: 1 * a, G: float32(128) / 255 * a, B: 0, A: a}
	if got != want {
		t.Errorf("GetPixel = %v, want %v", got, want)
	}
}

func TestAccessorOpaqueForcesAlpha(t *testing.T) {
	src := newTestPixmap(t, pixels.Info{
		Width: 1, Height: 1,
		Format: pixels.FormatRGBA8,
		Alpha:  pixels.AlphaOpaque,
		Gamma:  pixels.GammaLinear,
	})
	src.SetRGBA(0, 0, 255, 0, 0, 37)

	acc := newTestAccessor(t, src, opaquePaint())
	if got := acc.GetPixel(0, 0); got.A != 1 {
		t.Errorf("opaque pixel alpha = %v, want 1", got.A)
	}
}

func TestAccessorRGBAF32(t *testing.T) {
	src := newTestPixmap(t, pixels.Info{
		Width: 1, Height: 1,
		Format: pixels.FormatRGBAF32,
		Alpha:  pixels.AlphaPremul,
		Gamma:  pixels.GammaLinear,
	})
	src.SetF32(0, 0, 0.25, 0.5, 0.75, 1)

	acc := newTestAccessor(t, src, opaquePaint())
	got := acc.GetPixel(0, 0)
	want := Color4f{R: 0.25, G: 0.5, B: 0.75, A: 1}
	if got != want {
		t.Errorf("GetPixel = %v, want %v", got, want)
	}
}

func TestAccessorGet4Pixels(t *testing.T) {
	src := newTestPixmap(t, rgbaLinearPremul(2, 2))
	src.SetRGBA(0, 0, 255, 0, 0, 255)
	src.SetRGBA(1, 0, 0, 255, 0, 255)
	src.SetRGBA(0, 1, 0, 0, 255, 255)
	src.SetRGBA(1, 1, 255, 255, 0, 255)

	acc := newTestAccessor(t, src, opaquePaint())

	xs := [4]int32{0, 1, 0, 1}
	ys := [4]int32{0, 0, 1, 1}
	var px [4]Color4f
	acc.Get4Pixels(&xs, &ys, &px)

	want := [4]Color4f{
		{R: 1, A: 1}, {G: 1, A: 1}, {B: 1, A: 1}, {R: 1, G: 1, A: 1},
	}
	if px != want {
		t.Errorf("Get4Pixels = %v, want %v", px, want)
	}
}
