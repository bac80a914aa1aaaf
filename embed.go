package shade

import (
	"github.com/gogpu/shade/blend"
	"github.com/gogpu/shade/pixels"
)

// EmbeddablePipeline reserves room for a Pipeline inside a larger
// struct without constructing it. Blitters embed one per band and fill
// it only once they know a blit pipeline applies, avoiding a heap
// pipeline per decision.
//
// The zero value is empty. A pipeline is put in place exactly once,
// with Init or InitBlit; ClonePipelineForBlitting calls InitBlit on the
// caller's behalf.
type EmbeddablePipeline struct {
	pipeline    Pipeline
	initialized bool
}

// Init constructs a shading pipeline in place. Arguments match
// NewPipeline. Panics if the storage already holds a pipeline.
func (e *EmbeddablePipeline) Init(inverse Matrix, quality FilterQuality, xTile, yTile TileMode,
	paint Color4f, src *pixels.Pixmap) *Pipeline {
	if e.initialized {
		panic("shade: embeddable pipeline initialized twice")
	}
	e.pipeline.init(inverse, quality, xTile, yTile, paint, src)
	e.initialized = true
	return &e.pipeline
}

// InitBlit constructs a blitting pipeline in place. Arguments match
// NewBlitPipeline. Panics if the storage already holds a pipeline.
func (e *EmbeddablePipeline) InitBlit(base *Pipeline, src *pixels.Pixmap, mode blend.Mode, dst pixels.Info) *Pipeline {
	if e.initialized {
		panic("shade: embeddable pipeline initialized twice")
	}
	e.pipeline.initBlit(base, src, mode, dst)
	e.initialized = true
	return &e.pipeline
}

// Get returns the pipeline put in place earlier. Panics while the
// storage is empty.
func (e *EmbeddablePipeline) Get() *Pipeline {
	if !e.initialized {
		panic("shade: embeddable pipeline used while empty")
	}
	return &e.pipeline
}

// IsInitialized reports whether the storage holds a pipeline.
func (e *EmbeddablePipeline) IsInitialized() bool {
	return e.initialized
}
