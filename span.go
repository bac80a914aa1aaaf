package shade

// Span describes a horizontal run of sample points with a uniform x step.
//
// The run has Count points starting at Start; the last point lies at
// Start.X + Length with the same Y. Length is a signed distance and is 0
// when Count is 1. Destination spans step one pixel at a time; a matrix
// stage may stretch or flip Length while keeping Count.
type Span struct {
	Start  Point
	Length float32
	Count  int
}

// DX returns the x distance between consecutive points.
// A single-point span has no step and returns 0.
func (s Span) DX() float32 {
	if s.Count <= 1 {
		return 0
	}
	return s.Length / float32(s.Count-1)
}
