package ecs

import (
	"fmt"
	"iter"
)

// Relation is the result of a Forest lookup. For a ChildOf entry Parent is
// set; Children is the (possibly empty) contiguous child block of the node.
type Relation[K any] struct {
	Kind     Kind
	Parent   ID[K]
	Children Range[K]
}

type forestNode[K any] struct {
	parent   ID[K]
	children Range[K]
}

// Forest is the range-coded relation store. Each parent keeps its children
// as a single Range, so a child must be inserted into the slot immediately
// after its previous sibling. This holds whenever siblings are allocated as
// one burst, which lets the store index "child k of p" in O(1) and gives
// sibling ordinals by offset.
type Forest[K any] struct {
	nodes map[ID[K]]*forestNode[K]
}

func NewForest[K any]() *Forest[K] {
	return &Forest[K]{
		nodes: make(map[ID[K]]*forestNode[K], 64),
	}
}

func (f *Forest[K]) InsertParent(id ID[K]) error {
	if _, ok := f.nodes[id]; ok {
		return fmt.Errorf("insert parent %s: %w", id, ErrDuplicate)
	}
	f.nodes[id] = &forestNode[K]{}
	return nil
}

func (f *Forest[K]) InsertChild(id, parent ID[K]) error {
	if _, ok := f.nodes[id]; ok {
		return fmt.Errorf("insert child %s: %w", id, ErrDuplicate)
	}
	p, ok := f.nodes[parent]
	if !ok {
		return fmt.Errorf("insert child %s under %s: %w", id, parent, ErrUnknownParent)
	}
	if p.children.IsEmpty() {
		p.children = RangeOf(id, 1)
	} else {
		if id.Index() != p.children.End() {
			return fmt.Errorf("insert child %s under %s (children %s): %w",
				id, parent, p.children, ErrNotContiguous)
		}
		p.children = p.children.Extend()
	}
	f.nodes[id] = &forestNode[K]{parent: parent}
	return nil
}

// Lookup returns the entry for id. Unknown ids panic.
func (f *Forest[K]) Lookup(id ID[K]) Relation[K] {
	n := f.node(id)
	rel := Relation[K]{Kind: ParentOf, Parent: n.parent, Children: n.children}
	if !n.parent.IsZero() {
		rel.Kind = ChildOf
	}
	return rel
}

func (f *Forest[K]) Parent(id ID[K]) (ID[K], bool) {
	n := f.node(id)
	return n.parent, !n.parent.IsZero()
}

func (f *Forest[K]) Ordinal(id ID[K]) (int, bool) {
	n := f.node(id)
	if n.parent.IsZero() {
		return 0, false
	}
	return f.nodes[n.parent].children.Offset(id)
}

// Children returns parent's contiguous child block.
func (f *Forest[K]) Children(parent ID[K]) Range[K] {
	return f.node(parent).children
}

// ChildAt returns the k-th child of parent.
func (f *Forest[K]) ChildAt(parent ID[K], k int) ID[K] {
	return f.node(parent).children.At(k)
}

func (f *Forest[K]) Roots(r Range[K]) iter.Seq[ID[K]] {
	return rootsOf(r, func(id ID[K]) bool {
		n, ok := f.nodes[id]
		return ok && n.parent.IsZero()
	})
}

func (f *Forest[K]) Has(id ID[K]) bool {
	_, ok := f.nodes[id]
	return ok
}

func (f *Forest[K]) Len() int {
	return len(f.nodes)
}

func (f *Forest[K]) node(id ID[K]) *forestNode[K] {
	n, ok := f.nodes[id]
	if !ok {
		panic(fmt.Sprintf("ecs: forest: no relation for %s", id))
	}
	return n
}
