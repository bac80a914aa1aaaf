package blend

import (
	"math"
	"testing"
)

func approxEqual(a, b RGBA, eps float64) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > eps {
			return false
		}
	}
	return true
}

func TestPorterDuffCoefficients(t *testing.T) {
	// Half-transparent red over half-transparent blue, premultiplied.
	src := RGBA{0.5, 0, 0, 0.5}
	dst := RGBA{0, 0, 0.5, 0.5}

	tests := []struct {
		mode Mode
		want RGBA
	}{
		{Clear, RGBA{0, 0, 0, 0}},
		{Src, src},
		{Dst, dst},
		{SrcOver, RGBA{0.5, 0, 0.25, 0.75}},
		{DstOver, RGBA{0.25, 0, 0.5, 0.75}},
		{SrcIn, RGBA{0.25, 0, 0, 0.25}},
		{DstIn, RGBA{0, 0, 0.25, 0.25}},
		{SrcOut, RGBA{0.25, 0, 0, 0.25}},
		{DstOut, RGBA{0, 0, 0.25, 0.25}},
		{SrcAtop, RGBA{0.25, 0, 0.25, 0.5}},
		{DstAtop, RGBA{0.25, 0, 0.25, 0.5}},
		{Xor, RGBA{0.25, 0, 0.25, 0.5}},
		{Plus, RGBA{0.5, 0, 0.5, 1}},
		{Modulate, RGBA{0, 0, 0, 0.25}},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			got := GetFunc(tt.mode)(src, dst)
			if !approxEqual(got, tt.want, 1e-6) {
				t.Errorf("%v(src, dst) = %v, want %v", tt.mode, got, tt.want)
			}
		})
	}
}

func TestSrcOverIdentities(t *testing.T) {
	over := GetFunc(SrcOver)

	opaque := RGBA{0.2, 0.4, 0.6, 1}
	dst := RGBA{0.9, 0.1, 0.3, 1}
	if got := over(opaque, dst); got != opaque {
		t.Errorf("opaque source over dst = %v, want %v", got, opaque)
	}

	transparent := RGBA{}
	if got := over(transparent, dst); got != dst {
		t.Errorf("transparent source over dst = %v, want %v", got, dst)
	}
}

func TestPremulInvariantPreserved(t *testing.T) {
	// Premultiplied colors keep every color lane <= alpha lane.
	src := RGBA{0.3, 0.1, 0.2, 0.4}
	dst := RGBA{0.5, 0.2, 0.6, 0.7}

	for mode := Clear; mode < modeCount; mode++ {
		got := GetFunc(mode)(src, dst)
		for lane := 0; lane < 3; lane++ {
			if got[lane] > got[3]+1e-6 {
				t.Errorf("%v breaks premul invariant: lane %d = %f > alpha %f",
					mode, lane, got[lane], got[3])
			}
		}
	}
}

func TestPlusSaturates(t *testing.T) {
	a := RGBA{0.8, 0.8, 0.8, 0.8}
	got := GetFunc(Plus)(a, a)
	want := RGBA{1, 1, 1, 1}
	if got != want {
		t.Errorf("Plus saturation = %v, want %v", got, want)
	}
}

func TestGetFuncUnknownMode(t *testing.T) {
	src := RGBA{0.5, 0, 0, 0.5}
	dst := RGBA{0, 0, 0.5, 0.5}
	got := GetFunc(Mode(250))(src, dst)
	want := GetFunc(SrcOver)(src, dst)
	if got != want {
		t.Errorf("unknown mode = %v, want SrcOver result %v", got, want)
	}
}

func TestModeString(t *testing.T) {
	if SrcOver.String() != "SrcOver" {
		t.Errorf("SrcOver.String() = %q", SrcOver.String())
	}
	if Mode(99).String() != "Unknown" {
		t.Errorf("Mode(99).String() = %q", Mode(99).String())
	}
	if !Xor.IsValid() || Mode(99).IsValid() {
		t.Error("IsValid misclassifies modes")
	}
}
