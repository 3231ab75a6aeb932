package ecs

import (
	"errors"
	"iter"
)

var (
	// ErrDuplicate is returned when an identifier is inserted or linked twice.
	ErrDuplicate = errors.New("ecs: identifier already present")

	// ErrUnknownParent is returned when a child names a parent that was never inserted.
	ErrUnknownParent = errors.New("ecs: unknown parent")

	// ErrNotContiguous is returned when a range-coded insert does not occupy
	// the slot immediately after the current range end.
	ErrNotContiguous = errors.New("ecs: identifier not contiguous with range")

	// ErrCoverage is returned by Registry.Verify.
	ErrCoverage = errors.New("ecs: component coverage mismatch")
)

// Relations encodes a forest over one kind. Forest (range-coded) and Graph
// (explicit child lists) both implement it.
type Relations[K any] interface {
	// InsertParent marks id as a root with no children yet.
	InsertParent(id ID[K]) error
	// InsertChild marks id as a child of parent.
	InsertChild(id, parent ID[K]) error
	// Parent returns id's parent, or false for roots. Unknown ids panic.
	Parent(id ID[K]) (ID[K], bool)
	// Ordinal returns id's zero-based position among its siblings, or false
	// for roots. Unknown ids panic.
	Ordinal(id ID[K]) (int, bool)
	// Roots filters r down to the root entries, in order.
	Roots(r Range[K]) iter.Seq[ID[K]]
	Has(id ID[K]) bool
	Len() int
}

// Kind tags a relation entry.
type Kind uint8

const (
	ParentOf Kind = iota // root: owns children, no parent
	ChildOf              // has a parent
)

func (k Kind) String() string {
	if k == ChildOf {
		return "ChildOf"
	}
	return "ParentOf"
}

// Ancestors yields id's parent, grandparent and so on up to the root.
func Ancestors[K any](rel Relations[K], id ID[K]) iter.Seq[ID[K]] {
	return func(yield func(ID[K]) bool) {
		cur := id
		for {
			parent, ok := rel.Parent(cur)
			if !ok {
				return
			}
			if !yield(parent) {
				return
			}
			cur = parent
		}
	}
}

// Root walks up from id to the root of its tree.
func Root[K any](rel Relations[K], id ID[K]) ID[K] {
	root := id
	for a := range Ancestors(rel, id) {
		root = a
	}
	return root
}

func rootsOf[K any](r Range[K], isRoot func(ID[K]) bool) iter.Seq[ID[K]] {
	return func(yield func(ID[K]) bool) {
		for id := range r.All() {
			if isRoot(id) && !yield(id) {
				return
			}
		}
	}
}

var (
	_ Relations[struct{}] = (*Forest[struct{}])(nil)
	_ Relations[struct{}] = (*Graph[struct{}])(nil)
)
