package shade

import "math"

// Matrix represents a 2D projective transformation.
// It uses a 3x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//	| g  h  i |
//
// This represents the transformation:
//
//	w  = g*x + h*y + i
//	x' = (a*x + b*y + c) / w
//	y' = (d*x + e*y + f) / w
//
// Affine matrices leave the bottom row at (0, 0, 1) and skip the divide.
// Pipelines take the inverse matrix, mapping destination points back into
// source space.
type Matrix struct {
	A, B, C float32
	D, E, F float32
	G, H, I float32
}

// MatrixKind classifies a matrix by the cheapest stage that can apply it.
type MatrixKind uint8

const (
	// KindIdentity applies no transform at all.
	KindIdentity MatrixKind = iota

	// KindTranslate only moves points.
	KindTranslate

	// KindScale scales per axis, possibly with a translation.
	KindScale

	// KindAffine has rotation or skew terms.
	KindAffine

	// KindPerspective needs the projective divide.
	KindPerspective
)

// String returns a string representation of the kind.
func (k MatrixKind) String() string {
	switch k {
	case KindIdentity:
		return "Identity"
	case KindTranslate:
		return "Translate"
	case KindScale:
		return "Scale"
	case KindAffine:
		return "Affine"
	case KindPerspective:
		return "Perspective"
	default:
		return "Unknown"
	}
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
		G: 0, H: 0, I: 1,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float32) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
		G: 0, H: 0, I: 1,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float32) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
		G: 0, H: 0, I: 1,
	}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float32) Matrix {
	cos := float32(math.Cos(float64(angle)))
	sin := float32(math.Sin(float64(angle)))
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
		G: 0, H: 0, I: 1,
	}
}

// Shear creates a shear matrix.
func Shear(x, y float32) Matrix {
	return Matrix{
		A: 1, B: x, C: 0,
		D: y, E: 1, F: 0,
		G: 0, H: 0, I: 1,
	}
}

// Multiply multiplies two matrices (m * other).
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D + m.C*other.G,
		B: m.A*other.B + m.B*other.E + m.C*other.H,
		C: m.A*other.C + m.B*other.F + m.C*other.I,
		D: m.D*other.A + m.E*other.D + m.F*other.G,
		E: m.D*other.B + m.E*other.E + m.F*other.H,
		F: m.D*other.C + m.E*other.F + m.F*other.I,
		G: m.G*other.A + m.H*other.D + m.I*other.G,
		H: m.G*other.B + m.H*other.E + m.I*other.H,
		I: m.G*other.C + m.H*other.F + m.I*other.I,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	x := m.A*p.X + m.B*p.Y + m.C
	y := m.D*p.X + m.E*p.Y + m.F
	if m.hasPerspective() {
		w := m.G*p.X + m.H*p.Y + m.I
		if w != 0 {
			inv := 1 / w
			return Point{X: x * inv, Y: y * inv}
		}
	}
	return Point{X: x, Y: y}
}

// Invert returns the inverse matrix.
// Returns the identity matrix if the matrix is not invertible.
func (m Matrix) Invert() Matrix {
	// Cofactor expansion of the full 3x3; affine inputs produce affine
	// inverses because the bottom-row cofactors collapse to (0, 0, det').
	a, b, c := float64(m.A), float64(m.B), float64(m.C)
	d, e, f := float64(m.D), float64(m.E), float64(m.F)
	g, h, i := float64(m.G), float64(m.H), float64(m.I)

	det := a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
	if math.Abs(det) < 1e-10 {
		return Identity()
	}

	invDet := 1.0 / det
	return Matrix{
		A: float32((e*i - f*h) * invDet),
		B: float32((c*h - b*i) * invDet),
		C: float32((b*f - c*e) * invDet),
		D: float32((f*g - d*i) * invDet),
		E: float32((a*i - c*g) * invDet),
		F: float32((c*d - a*f) * invDet),
		G: float32((d*h - e*g) * invDet),
		H: float32((b*g - a*h) * invDet),
		I: float32((a*e - b*d) * invDet),
	}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.Kind() == KindIdentity
}

func (m Matrix) hasPerspective() bool {
	return m.G != 0 || m.H != 0 || m.I != 1
}

// Kind classifies the matrix so pipeline construction can pick the
// cheapest stage variant that still applies it exactly.
func (m Matrix) Kind() MatrixKind {
	switch {
	case m.hasPerspective():
		return KindPerspective
	case m.B != 0 || m.D != 0:
		return KindAffine
	case m.A != 1 || m.E != 1:
		return KindScale
	case m.C != 0 || m.F != 0:
		return KindTranslate
	default:
		return KindIdentity
	}
}
