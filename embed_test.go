package shade

import (
	"testing"

	"github.com/gogpu/shade/blend"
	"github.com/gogpu/shade/pixels"
)

func TestEmbeddablePipelineZeroValue(t *testing.T) {
	var e EmbeddablePipeline
	if e.IsInitialized() {
		t.Error("zero value reports initialized")
	}
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic getting an empty embedded pipeline")
		}
	}()
	e.Get()
}

func TestEmbeddablePipelineInit(t *testing.T) {
	src := newTestPixmap(t, rgbaLinearPremul(2, 2))
	src.SetRGBA(0, 0, 255, 0, 0, 255)

	var e EmbeddablePipeline
	p := e.Init(Identity(), FilterNone, TileClamp, TileClamp, opaquePaint(), src)
	if p == nil {
		t.Fatal("Init returned nil")
	}
	if !e.IsInitialized() {
		t.Error("pipeline not marked initialized")
	}
	if e.Get() != p {
		t.Error("Get() returns a different pipeline than Init")
	}

	var dst [1]Color4f
	p.ShadeSpan4f(0, 0, dst[:], 1)
	if want := (Color4f{R: 1, A: 1}); dst[0] != want {
		t.Errorf("embedded pipeline shaded %v, want %v", dst[0], want)
	}
}

func TestEmbeddablePipelineInitBlit(t *testing.T) {
	src := newOpaqueSource(t)
	base := NewPipeline(Identity(), FilterNone, TileClamp, TileClamp, opaquePaint(), src)
	dst := pixels.Info{Width: 8, Height: 8, Format: pixels.FormatRGBA8, Alpha: pixels.AlphaPremul, Gamma: pixels.GammaLinear}

	var e EmbeddablePipeline
	p := e.InitBlit(base, src, blend.Src, dst)
	if p == nil || !e.IsInitialized() {
		t.Fatal("InitBlit did not initialize the pipeline")
	}

	row := make([]byte, 8*4)
	p.BlitSpan(0, 0, row, 8)
}

func TestEmbeddablePipelineDoubleInit(t *testing.T) {
	src := newTestPixmap(t, rgbaLinearPremul(2, 2))

	tests := []struct {
		name string
		fn   func(e *EmbeddablePipeline)
	}{
		{"init twice", func(e *EmbeddablePipeline) {
			e.Init(Identity(), FilterNone, TileClamp, TileClamp, opaquePaint(), src)
		}},
		{"init then init blit", func(e *EmbeddablePipeline) {
			base := e.Get()
			e.InitBlit(base, src, blend.Src,
				pixels.Info{Width: 2, Height: 2, Format: pixels.FormatRGBA8, Alpha: pixels.AlphaPremul, Gamma: pixels.GammaLinear})
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e EmbeddablePipeline
			e.Init(Identity(), FilterNone, TileClamp, TileClamp, opaquePaint(), src)
			defer func() {
				if r := recover(); r == nil {
					t.Error("expected panic, got none")
				}
			}()
			tt.fn(&e)
		})
	}
}
