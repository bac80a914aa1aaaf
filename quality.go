package shade

// FilterQuality selects how source pixels are sampled.
type FilterQuality int

const (
	// FilterNone samples the nearest source pixel.
	FilterNone FilterQuality = iota

	// FilterLow blends the four nearest source pixels bilinearly.
	FilterLow

	// FilterMedium adds mipmapping on top of bilinear filtering, so
	// heavy downscales read from a prefiltered level instead of
	// skipping source pixels.
	FilterMedium

	// FilterHigh currently samples like FilterLow.
	FilterHigh
)

// String returns the filter quality name.
func (q FilterQuality) String() string {
	switch q {
	case FilterNone:
		return "None"
	case FilterLow:
		return "Low"
	case FilterMedium:
		return "Medium"
	case FilterHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// TileMode selects how sample coordinates outside the source bounds map
// back into the source. The two axes tile independently.
type TileMode int

const (
	// TileClamp extends the edge pixels outward.
	TileClamp TileMode = iota

	// TileRepeat tiles the source periodically.
	TileRepeat

	// TileMirror tiles the source, flipping every other period.
	TileMirror
)

// String returns the tile mode name.
func (m TileMode) String() string {
	switch m {
	case TileClamp:
		return "Clamp"
	case TileRepeat:
		return "Repeat"
	case TileMirror:
		return "Mirror"
	default:
		return "Unknown"
	}
}
