package ecs

import (
	"fmt"
	"iter"
)

// Range stands in for length identifiers allocated as one contiguous block
// starting at slot start. It is only meaningful for blocks that really were
// issued together (see Allocator.CreateRange). Members are materialised with
// firstGeneration, which holds because Allocator never recycles a slot; a
// range must carry its generation if slot reuse is ever added.
type Range[K any] struct {
	start  uint32
	length uint32
}

// RangeOf returns the range [first, first+n).
func RangeOf[K any](first ID[K], n int) Range[K] {
	return Range[K]{start: first.Index(), length: uint32(n)}
}

func (r Range[K]) Len() int      { return int(r.length) }
func (r Range[K]) IsEmpty() bool { return r.length == 0 }

// Start returns the first member, or for an empty range the slot the first
// member would occupy.
func (r Range[K]) Start() ID[K] { return NewID[K](r.start, firstGeneration) }

// End is the index one past the last member, i.e. the slot a contiguous
// extension must occupy.
func (r Range[K]) End() uint32 { return r.start + r.length }

// Contains reports whether id's slot lies inside the range.
func (r Range[K]) Contains(id ID[K]) bool {
	idx := id.Index()
	return idx >= r.start && idx < r.End()
}

// At returns the i-th member. Out-of-range access panics.
func (r Range[K]) At(i int) ID[K] {
	if i < 0 || i >= int(r.length) {
		panic(fmt.Sprintf("ecs: range index %d out of bounds [0,%d)", i, r.length))
	}
	return NewID[K](r.start+uint32(i), firstGeneration)
}

// Offset returns id's position inside the range.
func (r Range[K]) Offset(id ID[K]) (int, bool) {
	if !r.Contains(id) {
		return 0, false
	}
	return int(id.Index() - r.start), true
}

// Extend returns the range grown by one slot at the end.
func (r Range[K]) Extend() Range[K] {
	return Range[K]{start: r.start, length: r.length + 1}
}

// All yields the members in allocation order.
func (r Range[K]) All() iter.Seq[ID[K]] {
	return func(yield func(ID[K]) bool) {
		for i := uint32(0); i < r.length; i++ {
			if !yield(NewID[K](r.start+i, firstGeneration)) {
				return
			}
		}
	}
}

func (r Range[K]) String() string {
	return fmt.Sprintf("[%d,%d)", r.start, r.End())
}
