package shade

import (
	"fmt"
	"reflect"
)

// Byte budgets for the stage slots. Each is the measured size of the
// largest variant that slot must hold, so a variant that grows past its
// budget fails loudly at construction instead of silently bloating every
// pipeline.
const (
	matrixStageBudget  = 56
	tileStageBudget    = 48
	sampleStageBudget  = 160
	blenderStageBudget = 48
	accessorBudget     = 64
)

// Stage is a fixed-capacity slot in a pipeline that holds at most one
// stage variant. The variant is stored by interface but its concrete
// size is checked against the slot's byte budget, keeping the whole
// pipeline's footprint bounded no matter which variants are selected.
//
// Base is the capability interface the variant exposes to its caller;
// Next is the capability interface of the following stage. A slot also
// remembers how its variant was built, so an initialized stage can be
// cloned into another pipeline with a different successor.
//
// The zero value is an unconfigured slot; pipelines create usable empty
// slots with newStage, which fixes the name and budget.
type Stage[Base any, Next any] struct {
	name        string
	budget      uintptr
	variant     Base
	cloner      func(next Next, dst *Stage[Base, Next]) Base
	initialized bool
}

func newStage[Base any, Next any](name string, budget uintptr) Stage[Base, Next] {
	return Stage[Base, Next]{name: name, budget: budget}
}

// IsInitialized reports whether the slot holds a variant.
func (s *Stage[Base, Next]) IsInitialized() bool {
	return s.initialized
}

// Get returns the held variant through its capability interface.
// Panics if the slot is empty.
func (s *Stage[Base, Next]) Get() Base {
	if !s.initialized {
		panic("shade: " + s.name + " stage used while empty")
	}
	return s.variant
}

// CloneStageTo rebuilds this slot's variant inside dst, wired to next
// instead of the original successor. It returns the new variant and
// true, or the zero Base and false when this slot is empty; an empty
// slot clones to an empty slot and the caller links next directly.
//
// Panics when this slot holds a sink, or when dst is already occupied.
func (s *Stage[Base, Next]) CloneStageTo(next Next, dst *Stage[Base, Next]) (Base, bool) {
	var zero Base
	if !s.initialized {
		return zero, false
	}
	if s.cloner == nil {
		panic("shade: " + s.name + " sink stage cannot be cloned")
	}
	return s.cloner(next, dst), true
}

// InitStage constructs a stage variant inside the slot s and links it to
// next. build receives the successor and returns the new variant; the
// variant's concrete type V is checked against the slot's byte budget
// and must implement Base. The build closure is retained as the slot's
// clone recipe.
//
// Returns the variant as Base. Panics if the slot is unconfigured,
// already holds a variant, V exceeds the budget, or V does not
// implement Base.
func InitStage[Base any, Next any, V any](s *Stage[Base, Next], next Next, build func(Next) *V) Base {
	checkSlot[Base, Next, V](s)
	v := build(next)
	base, ok := any(v).(Base)
	if !ok {
		panic(fmt.Sprintf("shade: %s stage variant %T does not implement its capability interface", s.name, v))
	}
	s.variant = base
	s.cloner = func(n Next, dst *Stage[Base, Next]) Base {
		return InitStage(dst, n, build)
	}
	s.initialized = true
	return base
}

// InitSink constructs a terminal stage variant inside the slot s. Sinks
// have no successor and no clone recipe; a pipeline that needs a
// different sink builds a fresh one.
//
// Panic conditions match InitStage.
func InitSink[Base any, Next any, V any](s *Stage[Base, Next], build func() *V) Base {
	checkSlot[Base, Next, V](s)
	v := build()
	base, ok := any(v).(Base)
	if !ok {
		panic(fmt.Sprintf("shade: %s stage variant %T does not implement its capability interface", s.name, v))
	}
	s.variant = base
	s.cloner = nil
	s.initialized = true
	return base
}

func checkSlot[Base any, Next any, V any](s *Stage[Base, Next]) {
	if s.budget == 0 {
		panic("shade: stage slot used before being configured")
	}
	if s.initialized {
		panic("shade: " + s.name + " stage initialized twice")
	}
	t := reflect.TypeFor[V]()
	if size := t.Size(); size > s.budget {
		panic(fmt.Sprintf("shade: %s stage variant %s is %d bytes, budget is %d",
			s.name, t.String(), size, s.budget))
	}
}

// GetInterface asks an initialized slot's variant for an extra
// capability beyond its Base interface. It returns the zero To and
// false when the slot is empty or the variant does not implement To.
func GetInterface[To any, Base any, Next any](s *Stage[Base, Next]) (To, bool) {
	var zero To
	if !s.initialized {
		return zero, false
	}
	to, ok := any(s.variant).(To)
	return to, ok
}

// PolyMemory is a budgeted slot for pipeline helpers that sit outside
// the stage chain, such as pixel accessors. It enforces the same size
// discipline as Stage but has no successor and no clone recipe; a clone
// rebuilds its accessor from the source pixels.
type PolyMemory[Base any] struct {
	name        string
	budget      uintptr
	variant     Base
	initialized bool
}

func newPolyMemory[Base any](name string, budget uintptr) PolyMemory[Base] {
	return PolyMemory[Base]{name: name, budget: budget}
}

// IsInitialized reports whether the slot holds a value.
func (m *PolyMemory[Base]) IsInitialized() bool {
	return m.initialized
}

// Get returns the held value. Panics if the slot is empty.
func (m *PolyMemory[Base]) Get() Base {
	if !m.initialized {
		panic("shade: " + m.name + " memory used while empty")
	}
	return m.variant
}

// InitPoly constructs a value inside the slot m, enforcing the byte
// budget against V. Panic conditions match InitStage.
func InitPoly[Base any, V any](m *PolyMemory[Base], build func() *V) Base {
	if m.budget == 0 {
		panic("shade: poly memory used before being configured")
	}
	if m.initialized {
		panic("shade: " + m.name + " memory initialized twice")
	}
	t := reflect.TypeFor[V]()
	if size := t.Size(); size > m.budget {
		panic(fmt.Sprintf("shade: %s memory variant %s is %d bytes, budget is %d",
			m.name, t.String(), size, m.budget))
	}
	v := build()
	base, ok := any(v).(Base)
	if !ok {
		panic(fmt.Sprintf("shade: %s memory variant %T does not implement its capability interface", m.name, v))
	}
	m.variant = base
	m.initialized = true
	return base
}

// The pipeline's slots, named by the stage they hold. MatrixStage and
// TileStage both speak PointProcessor downstream and can therefore be
// skipped when empty; SampleStage converts points to colors; the
// BlenderStage is the sink.
type (
	MatrixStage  = Stage[PointProcessor, PointProcessor]
	TileStage    = Stage[PointProcessor, SampleProcessor]
	SampleStage  = Stage[SampleProcessor, BlendProcessor]
	BlenderStage = Stage[BlendProcessor, BlendProcessor]
	Accessor     = PolyMemory[PixelAccessor]
)

func newMatrixStage() MatrixStage {
	return newStage[PointProcessor, PointProcessor]("matrix", matrixStageBudget)
}

func newTileStage() TileStage {
	return newStage[PointProcessor, SampleProcessor]("tile", tileStageBudget)
}

func newSampleStage() SampleStage {
	return newStage[SampleProcessor, BlendProcessor]("sample", sampleStageBudget)
}

func newBlenderStage() BlenderStage {
	return newStage[BlendProcessor, BlendProcessor]("blender", blenderStageBudget)
}

func newAccessor() Accessor {
	return newPolyMemory[PixelAccessor]("accessor", accessorBudget)
}
