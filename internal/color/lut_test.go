package color

import (
	"math"
	"testing"
)

// TestLUTTables verifies endpoints and monotonicity of both tables.
func TestLUTTables(t *testing.T) {
	if sRGBToLinearLUT[0] != 0 {
		t.Errorf("sRGBToLinearLUT[0] = %f, want 0", sRGBToLinearLUT[0])
	}
	if sRGBToLinearLUT[255] < 0.99 || sRGBToLinearLUT[255] > 1.01 {
		t.Errorf("sRGBToLinearLUT[255] = %f, want ~1.0", sRGBToLinearLUT[255])
	}
	if linearToSRGBLUT[0] != 0 {
		t.Errorf("linearToSRGBLUT[0] = %d, want 0", linearToSRGBLUT[0])
	}
	if linearToSRGBLUT[4095] != 255 {
		t.Errorf("linearToSRGBLUT[4095] = %d, want 255", linearToSRGBLUT[4095])
	}

	for i := 1; i < 256; i++ {
		if sRGBToLinearLUT[i] < sRGBToLinearLUT[i-1] {
			t.Errorf("sRGBToLinearLUT[%d] < sRGBToLinearLUT[%d]: not monotonic", i, i-1)
		}
	}
	for i := 1; i < 4096; i++ {
		if linearToSRGBLUT[i] < linearToSRGBLUT[i-1] {
			t.Errorf("linearToSRGBLUT[%d] < linearToSRGBLUT[%d]: not monotonic", i, i-1)
		}
	}
}

// TestLinearToSRGBFastClamps verifies out-of-range inputs clamp instead
// of indexing outside the table.
func TestLinearToSRGBFastClamps(t *testing.T) {
	tests := []struct {
		name   string
		linear float32
		want   uint8
	}{
		{"black", 0, 0},
		{"white", 1, 255},
		{"below zero", -0.5, 0},
		{"above one", 1.5, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LinearToSRGBFast(tt.linear); got != tt.want {
				t.Errorf("LinearToSRGBFast(%f) = %d, want %d", tt.linear, got, tt.want)
			}
		})
	}
}

// TestLinearRoundTrip tests that Linear → sRGB → Linear stays within the
// 8-bit quantization error.
func TestLinearRoundTrip(t *testing.T) {
	maxError := float32(0.0)
	for i := 0; i <= 1000; i++ {
		linear := float32(i) / 1000.0
		srgb := LinearToSRGBFast(linear)
		result := SRGBToLinearFast(srgb)
		diff := float32(math.Abs(float64(result - linear)))
		if diff > maxError {
			maxError = diff
		}
		if diff > 0.01 {
			t.Errorf("round trip %f → %d → %f (error=%f)", linear, srgb, result, diff)
		}
	}
	t.Logf("Max linear round-trip error: %f", maxError)
}

func BenchmarkSRGBToLinearFast(b *testing.B) {
	var result float32
	for i := 0; i < b.N; i++ {
		result = SRGBToLinearFast(uint8(i & 0xFF))
	}
	_ = result
}

func BenchmarkSRGBToLinearSlow(b *testing.B) {
	var result float32
	for i := 0; i < b.N; i++ {
		result = SRGBToLinearSlow(uint8(i & 0xFF))
	}
	_ = result
}

func BenchmarkLinearToSRGBFast(b *testing.B) {
	var result uint8
	for i := 0; i < b.N; i++ {
		result = LinearToSRGBFast(float32(i&0xFF) / 255.0)
	}
	_ = result
}

func BenchmarkLinearToSRGBSlow(b *testing.B) {
	var result uint8
	for i := 0; i < b.N; i++ {
		result = LinearToSRGBSlow(float32(i&0xFF) / 255.0)
	}
	_ = result
}
