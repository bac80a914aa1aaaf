// Package wide provides SIMD-friendly wide types for batch coordinate and
// color processing.
//
// This package implements four-lane types (F32x4, I32x4) designed to enable
// Go compiler auto-vectorization. By using fixed-size arrays and simple loops,
// these types allow the compiler to generate SIMD instructions on supported
// architectures (SSE, AVX, NEON).
//
// # Wide Types
//
// F32x4: 4 float32 values. Used both as a batch of four coordinates (the
// pipeline's point-batch unit) and as the four RGBA lanes of a single color.
// I32x4: 4 int32 values for texel indices.
//
// # Design Philosophy
//
//   - Use simple loops over fixed-size arrays for auto-vectorization
//   - Avoid unsafe and assembly - rely on compiler optimization
//   - Keep functions small and inlineable
//   - Never allocate; all operations are value-in, value-out
package wide
