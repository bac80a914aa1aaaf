// Package blend implements Porter-Duff compositing operators for the
// shading pipeline.
//
// All blend operations work on premultiplied alpha values in linear gamma,
// with the RGBA lanes carried in a fixed four-element array and components
// in [0,1]. Working in linear space keeps compositing physically correct;
// the blit codecs encode back to the destination's transfer function
// afterwards.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// RGBA carries one premultiplied linear color as four float32 lanes in
// R, G, B, A order. The fixed-size array keeps lane loops vectorizable.
type RGBA [4]float32

// Mode represents a Porter-Duff compositing operation.
type Mode uint8

const (
	Clear    Mode = iota // Result: 0 (clear destination)
	Src                  // Result: S (replace with source)
	Dst                  // Result: D (keep destination)
	SrcOver              // Result: S + D*(1-Sa) [default]
	DstOver              // Result: S*(1-Da) + D
	SrcIn                // Result: S*Da
	DstIn                // Result: D*Sa
	SrcOut               // Result: S*(1-Da)
	DstOut               // Result: D*(1-Sa)
	SrcAtop              // Result: S*Da + D*(1-Sa)
	DstAtop              // Result: S*(1-Da) + D*Sa
	Xor                  // Result: S*(1-Da) + D*(1-Sa)
	Plus                 // Result: S + D (clamped to 1)
	Modulate             // Result: S*D (multiply)

	modeCount
)

// IsValid returns true if the mode is a valid known operator.
func (m Mode) IsValid() bool {
	return m < modeCount
}

// String returns a string representation of the mode.
func (m Mode) String() string {
	switch m {
	case Clear:
		return "Clear"
	case Src:
		return "Src"
	case Dst:
		return "Dst"
	case SrcOver:
		return "SrcOver"
	case DstOver:
		return "DstOver"
	case SrcIn:
		return "SrcIn"
	case DstIn:
		return "DstIn"
	case SrcOut:
		return "SrcOut"
	case DstOut:
		return "DstOut"
	case SrcAtop:
		return "SrcAtop"
	case DstAtop:
		return "DstAtop"
	case Xor:
		return "Xor"
	case Plus:
		return "Plus"
	case Modulate:
		return "Modulate"
	default:
		return "Unknown"
	}
}

// Func is the signature for blend operations.
// src and dst are premultiplied linear colors with components in [0,1].
// Returns the blended premultiplied color.
type Func func(src, dst RGBA) RGBA

// GetFunc returns the blend function for the given mode.
// Returns srcOver for unknown modes.
func GetFunc(mode Mode) Func {
	switch mode {
	case Clear:
		return blendClear
	case Src:
		return blendSrc
	case Dst:
		return blendDst
	case SrcOver:
		return blendSrcOver
	case DstOver:
		return blendDstOver
	case SrcIn:
		return blendSrcIn
	case DstIn:
		return blendDstIn
	case SrcOut:
		return blendSrcOut
	case DstOut:
		return blendDstOut
	case SrcAtop:
		return blendSrcAtop
	case DstAtop:
		return blendDstAtop
	case Xor:
		return blendXor
	case Plus:
		return blendPlus
	case Modulate:
		return blendModulate
	default:
		return blendSrcOver
	}
}

// Lane helpers. Simple fixed-length loops so the compiler can vectorize.

// madd computes a + b*s per lane.
func madd(a, b RGBA, s float32) RGBA {
	var result RGBA
	for i := range a {
		result[i] = a[i] + b[i]*s
	}
	return result
}

// scale multiplies every lane of a by s.
func scale(a RGBA, s float32) RGBA {
	var result RGBA
	for i := range a {
		result[i] = a[i] * s
	}
	return result
}

// scale2 computes a*sa + b*sb per lane.
func scale2(a RGBA, sa float32, b RGBA, sb float32) RGBA {
	var result RGBA
	for i := range a {
		result[i] = a[i]*sa + b[i]*sb
	}
	return result
}

// Porter-Duff implementations (premultiplied alpha, linear gamma).
// With premultiplied lanes the alpha lane follows the same coefficient
// formula as the color lanes, so no mode needs a separate alpha path.

// blendClear clears the destination to transparent black.
func blendClear(src, dst RGBA) RGBA {
	return RGBA{}
}

// blendSrc replaces destination with source.
func blendSrc(src, dst RGBA) RGBA {
	return src
}

// blendDst keeps destination unchanged.
func blendDst(src, dst RGBA) RGBA {
	return dst
}

// blendSrcOver composites source over destination (default blend mode).
// Formula: S + D * (1 - Sa)
func blendSrcOver(src, dst RGBA) RGBA {
	return madd(src, dst, 1-src[3])
}

// blendDstOver composites destination over source.
// Formula: S * (1 - Da) + D
func blendDstOver(src, dst RGBA) RGBA {
	return madd(dst, src, 1-dst[3])
}

// blendSrcIn shows source where destination is opaque.
// Formula: S * Da
func blendSrcIn(src, dst RGBA) RGBA {
	return scale(src, dst[3])
}

// blendDstIn shows destination where source is opaque.
// Formula: D * Sa
func blendDstIn(src, dst RGBA) RGBA {
	return scale(dst, src[3])
}

// blendSrcOut shows source where destination is transparent.
// Formula: S * (1 - Da)
func blendSrcOut(src, dst RGBA) RGBA {
	return scale(src, 1-dst[3])
}

// blendDstOut shows destination where source is transparent.
// Formula: D * (1 - Sa)
func blendDstOut(src, dst RGBA) RGBA {
	return scale(dst, 1-src[3])
}

// blendSrcAtop composites source over destination, keeping destination alpha.
// Formula: S * Da + D * (1 - Sa)
func blendSrcAtop(src, dst RGBA) RGBA {
	return scale2(src, dst[3], dst, 1-src[3])
}

// blendDstAtop composites destination over source, keeping source alpha.
// Formula: S * (1 - Da) + D * Sa
func blendDstAtop(src, dst RGBA) RGBA {
	return scale2(src, 1-dst[3], dst, src[3])
}

// blendXor shows source and destination where they do not overlap.
// Formula: S * (1 - Da) + D * (1 - Sa)
func blendXor(src, dst RGBA) RGBA {
	return scale2(src, 1-dst[3], dst, 1-src[3])
}

// blendPlus adds source and destination with saturation.
// Formula: min(S + D, 1)
func blendPlus(src, dst RGBA) RGBA {
	var result RGBA
	for i := range src {
		v := src[i] + dst[i]
		if v > 1 {
			v = 1
		}
		result[i] = v
	}
	return result
}

// blendModulate multiplies source and destination.
// Formula: S * D
func blendModulate(src, dst RGBA) RGBA {
	var result RGBA
	for i := range src {
		result[i] = src[i] * dst[i]
	}
	return result
}
