package pixels

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

// Mipmaps holds pre-computed downscaled versions of a pixel buffer.
//
// A mipmap chain consists of multiple levels, where each level is half the
// size of the previous level (both width and height). Level 0 is the
// original full-resolution buffer. The chain continues until the smallest
// dimension reaches 1 pixel.
//
// Minifying samplers pick a level near the draw scale, trading one
// Catmull-Rom prefilter for heavy aliasing at small scales.
type Mipmaps struct {
	levels []*Pixmap // Level 0 = original size
}

// BuildMipmaps creates a mipmap chain from the source buffer.
//
// Each level below 0 is produced by Catmull-Rom downscaling of the previous
// level and stored as FormatRGBA8 premultiplied with the source's gamma.
// The source buffer becomes level 0 and is not copied.
//
// Returns nil if src is nil or empty.
func BuildMipmaps(src *Pixmap) *Mipmaps {
	if src == nil || src.IsEmpty() {
		return nil
	}

	maxDim := max(src.Width(), src.Height())
	numLevels := 1 + int(math.Floor(math.Log2(float64(maxDim))))

	chain := &Mipmaps{
		levels: make([]*Pixmap, numLevels),
	}

	// Level 0 is the original buffer (no copy)
	chain.levels[0] = src

	prev := src.ToRGBA()
	gamma := src.Info().Gamma
	for i := 1; i < numLevels; i++ {
		w := max(1, prev.Bounds().Dx()/2)
		h := max(1, prev.Bounds().Dy()/2)

		down := image.NewRGBA(image.Rect(0, 0, w, h))
		xdraw.CatmullRom.Scale(down, down.Bounds(), prev, prev.Bounds(), xdraw.Src, nil)

		level, err := FromRGBA(down, AlphaPremul, gamma)
		if err != nil {
			return nil
		}
		chain.levels[i] = level
		prev = down
	}

	return chain
}

// Level returns the mipmap at the specified level.
// Level 0 is the original buffer. Returns nil if level is out of range.
func (m *Mipmaps) Level(n int) *Pixmap {
	if m == nil || n < 0 || n >= len(m.levels) {
		return nil
	}
	return m.levels[n]
}

// NumLevels returns the total number of mipmap levels in the chain.
// Returns 0 if the chain is nil.
func (m *Mipmaps) NumLevels() int {
	if m == nil {
		return 0
	}
	return len(m.levels)
}

// LevelForScale returns the appropriate level for a given scale factor.
//
// The scale parameter is the ratio of displayed size to original size:
//   - scale = 1.0: original size (level 0)
//   - scale = 0.5: half size (level 1)
//   - scale = 0.25: quarter size (level 2)
//
// The level is floor(-log2(scale)), clamped to [0, NumLevels-1].
// Returns level 0 if scale >= 1.0; nil if the chain is nil.
func (m *Mipmaps) LevelForScale(scale float32) *Pixmap {
	if m == nil || len(m.levels) == 0 {
		return nil
	}

	if scale >= 1.0 {
		return m.levels[0]
	}

	level := int(math.Floor(-math.Log2(float64(scale))))
	if level < 0 {
		level = 0
	}
	if level >= len(m.levels) {
		level = len(m.levels) - 1
	}

	return m.levels[level]
}
