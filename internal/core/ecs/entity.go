package ecs

import (
	"fmt"
	"math"
)

// ID encodes a 32-bit index in the lower bits and a 32-bit generation in the
// upper bits. K is a kind marker: an ID[Star] can never index a Body table.
// The zero ID is never issued and means "no entity".
type ID[K any] uint64

const firstGeneration uint32 = 1

func NewID[K any](index uint32, generation uint32) ID[K] {
	return ID[K](uint64(generation)<<32 | uint64(index))
}

func (id ID[K]) Index() uint32      { return uint32(id) }
func (id ID[K]) Generation() uint32 { return uint32(id >> 32) }
func (id ID[K]) IsZero() bool       { return id == 0 }

// Less orders identifiers of one kind by slot index.
func (id ID[K]) Less(other ID[K]) bool { return id.Index() < other.Index() }

func (id ID[K]) String() string {
	if id.IsZero() {
		return "id(none)"
	}
	return fmt.Sprintf("id(%d/%d)", id.Index(), id.Generation())
}

// Allocator issues identifiers for one kind, either one at a time or as a
// contiguous block. Indices only ever grow; slots are not recycled, so a fresh
// slot always carries firstGeneration.
type Allocator[K any] struct {
	generations []uint32
	nextIndex   uint32
}

func NewAllocator[K any]() *Allocator[K] {
	return &Allocator[K]{
		generations: make([]uint32, 0, 64),
	}
}

// Create issues one new identifier.
func (a *Allocator[K]) Create() ID[K] {
	return a.CreateRange(1).Start()
}

// CreateRange issues n identifiers with consecutive indices. n == 0 yields an
// empty range positioned at the next free slot.
func (a *Allocator[K]) CreateRange(n int) Range[K] {
	if n < 0 {
		panic(fmt.Sprintf("ecs: negative allocation size %d", n))
	}
	start := a.nextIndex
	if uint64(start)+uint64(n) > math.MaxUint32 {
		panic("ecs: identifier space exhausted")
	}
	for i := 0; i < n; i++ {
		a.generations = append(a.generations, firstGeneration)
	}
	a.nextIndex += uint32(n)
	return Range[K]{start: start, length: uint32(n)}
}

// Alive reports whether id was issued by this allocator and still refers to
// the entity occupying its slot.
func (a *Allocator[K]) Alive(id ID[K]) bool {
	idx := id.Index()
	if idx >= a.nextIndex {
		return false
	}
	return a.generations[idx] == id.Generation()
}

// Issued returns the range covering every identifier issued so far.
func (a *Allocator[K]) Issued() Range[K] {
	return Range[K]{start: 0, length: a.nextIndex}
}

// Len returns the number of identifiers issued so far.
func (a *Allocator[K]) Len() int {
	return int(a.nextIndex)
}
