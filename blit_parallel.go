package shade

import (
	"errors"

	"github.com/gogpu/shade/blend"
	"github.com/gogpu/shade/internal/parallel"
	"github.com/gogpu/shade/pixels"
)

// ErrCannotBlit reports that a pipeline cannot write a destination
// directly and the caller must shade and convert instead.
var ErrCannotBlit = errors.New("shade: pipeline cannot blit this destination directly")

// BlitParallel fills all of dst by blitting base across horizontal
// bands on a worker pool. Each band gets its own retargeted pipeline
// clone, so bands never share mutable state. workers <= 0 uses
// GOMAXPROCS.
//
// Returns ErrCannotBlit when ClonePipelineForBlitting rejects the
// combination of base, finalAlpha, mode and dst.
func BlitParallel(dst *pixels.Pixmap, base *Pipeline, mode blend.Mode, finalAlpha float32, workers int) error {
	if dst == nil {
		panic("shade: nil destination pixmap")
	}
	info := dst.Info()

	var probe EmbeddablePipeline
	if !ClonePipelineForBlitting(&probe, base, finalAlpha, mode, info) {
		Logger().Warn("blit rejected, caller must shade and convert",
			"mode", mode.String(),
			"finalAlpha", finalAlpha,
			"dstFormat", info.Format.String())
		return ErrCannotBlit
	}

	height, width := dst.Height(), dst.Width()
	if height == 0 || width == 0 {
		return nil
	}

	pool := parallel.NewWorkerPool(workers)
	defer pool.Close()

	n := min(pool.Workers(), height)
	Logger().Debug("parallel blit",
		"bands", n,
		"height", height,
		"mode", mode.String())

	storages := make([]EmbeddablePipeline, n)
	work := make([]func(), n)
	for i := range n {
		storage := &probe
		if i > 0 {
			if !ClonePipelineForBlitting(&storages[i], base, finalAlpha, mode, info) {
				return ErrCannotBlit
			}
			storage = &storages[i]
		}
		pipe := storage.Get()
		y0 := i * height / n
		y1 := (i + 1) * height / n
		work[i] = func() {
			for y := y0; y < y1; y++ {
				pipe.BlitSpan(0, y, dst.Row(y), width)
			}
		}
	}
	pool.ExecuteAll(work)
	return nil
}
