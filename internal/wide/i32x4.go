package wide

// I32x4 represents 4 int32 texel indices for SIMD-style operations.
// Like F32x4 it relies on fixed-size arrays and simple loops for
// auto-vectorization.
type I32x4 [4]int32

// SplatI32 creates an I32x4 with all elements set to n.
func SplatI32(n int32) I32x4 {
	var result I32x4
	for i := range result {
		result[i] = n
	}
	return result
}

// Clamp clamps each element to [minVal, maxVal].
func (v I32x4) Clamp(minVal, maxVal int32) I32x4 {
	var result I32x4
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

// ToF32 converts each element to float32.
func (v I32x4) ToF32() F32x4 {
	var result F32x4
	for i := range v {
		result[i] = float32(v[i])
	}
	return result
}
