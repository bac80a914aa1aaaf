package wide

import "math"

// F32x4 represents 4 float32 values for SIMD-style operations.
// Designed for Go compiler auto-vectorization with fixed-size arrays.
// It serves both as a batch of four coordinates and as the RGBA lanes
// of a single color.
type F32x4 [4]float32

// SplatF32 creates an F32x4 with all elements set to n.
// This is useful for initializing constants or broadcasting a single value.
func SplatF32(n float32) F32x4 {
	var result F32x4
	for i := range result {
		result[i] = n
	}
	return result
}

// Add performs element-wise addition.
// Returns a new F32x4 with v[i] + other[i] for each element.
func (v F32x4) Add(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// Sub performs element-wise subtraction.
// Returns a new F32x4 with v[i] - other[i] for each element.
func (v F32x4) Sub(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] - other[i]
	}
	return result
}

// Mul performs element-wise multiplication.
// Returns a new F32x4 with v[i] * other[i] for each element.
func (v F32x4) Mul(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] * other[i]
	}
	return result
}

// MulAdd performs a fused multiply-add: v[i]*m[i] + a[i].
// This is the core operation of the matrix stages.
func (v F32x4) MulAdd(m, a F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i]*m[i] + a[i]
	}
	return result
}

// Scale multiplies each element by the scalar s.
func (v F32x4) Scale(s float32) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] * s
	}
	return result
}

// Div performs element-wise division.
// Returns a new F32x4 with v[i] / other[i] for each element.
// Note: Division by zero results in +Inf, -Inf, or NaN according to IEEE 754.
func (v F32x4) Div(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] / other[i]
	}
	return result
}

// Clamp clamps each element to [minVal, maxVal].
// Any value less than minVal is set to minVal, any value greater than maxVal
// is set to maxVal.
func (v F32x4) Clamp(minVal, maxVal float32) F32x4 {
	var result F32x4
	for i := range v {
		switch {
		case v[i] < minVal:
			result[i] = minVal
		case v[i] > maxVal:
			result[i] = maxVal
		default:
			result[i] = v[i]
		}
	}
	return result
}

// Lerp performs linear interpolation: v + (other - v) * t.
// When t=0, returns v; when t=1, returns other.
func (v F32x4) Lerp(other F32x4, t float32) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] + (other[i]-v[i])*t
	}
	return result
}

// Min performs element-wise minimum.
// Returns a new F32x4 with min(v[i], other[i]) for each element.
func (v F32x4) Min(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		if v[i] < other[i] {
			result[i] = v[i]
		} else {
			result[i] = other[i]
		}
	}
	return result
}

// Max performs element-wise maximum.
// Returns a new F32x4 with max(v[i], other[i]) for each element.
func (v F32x4) Max(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		if v[i] > other[i] {
			result[i] = v[i]
		} else {
			result[i] = other[i]
		}
	}
	return result
}

// Floor rounds each element down to the nearest integer value.
func (v F32x4) Floor() F32x4 {
	var result F32x4
	for i := range v {
		result[i] = float32(math.Floor(float64(v[i])))
	}
	return result
}

// FloorI32 rounds each element down and converts to int32 texel indices.
func (v F32x4) FloorI32() I32x4 {
	var result I32x4
	for i := range v {
		result[i] = int32(math.Floor(float64(v[i])))
	}
	return result
}
