package ecs

import (
	"fmt"
	"iter"
	"slices"
)

// GraphNode is the result of a Graph lookup.
type GraphNode[K any] struct {
	Kind     Kind
	Parent   ID[K]
	Children []ID[K]
}

type graphNode[K any] struct {
	parent   ID[K]
	children []ID[K]
}

// Graph is the general relation store: one edge per entry and an explicit
// child list per parent, so children may be inserted in any order and
// interleaved across parents.
type Graph[K any] struct {
	nodes map[ID[K]]*graphNode[K]
}

func NewGraph[K any]() *Graph[K] {
	return &Graph[K]{
		nodes: make(map[ID[K]]*graphNode[K], 64),
	}
}

func (g *Graph[K]) InsertParent(id ID[K]) error {
	if _, ok := g.nodes[id]; ok {
		return fmt.Errorf("insert parent %s: %w", id, ErrDuplicate)
	}
	g.nodes[id] = &graphNode[K]{}
	return nil
}

func (g *Graph[K]) InsertChild(id, parent ID[K]) error {
	if _, ok := g.nodes[id]; ok {
		return fmt.Errorf("insert child %s: %w", id, ErrDuplicate)
	}
	p, ok := g.nodes[parent]
	if !ok {
		return fmt.Errorf("insert child %s under %s: %w", id, parent, ErrUnknownParent)
	}
	p.children = append(p.children, id)
	g.nodes[id] = &graphNode[K]{parent: parent}
	return nil
}

// Lookup returns the entry for id; the child slice is a copy. Unknown ids panic.
func (g *Graph[K]) Lookup(id ID[K]) GraphNode[K] {
	n := g.node(id)
	out := GraphNode[K]{Kind: ParentOf, Parent: n.parent, Children: slices.Clone(n.children)}
	if !n.parent.IsZero() {
		out.Kind = ChildOf
	}
	return out
}

func (g *Graph[K]) Parent(id ID[K]) (ID[K], bool) {
	n := g.node(id)
	return n.parent, !n.parent.IsZero()
}

// Ordinal is the child's position in insertion order; linear in the number
// of siblings.
func (g *Graph[K]) Ordinal(id ID[K]) (int, bool) {
	n := g.node(id)
	if n.parent.IsZero() {
		return 0, false
	}
	i := slices.Index(g.nodes[n.parent].children, id)
	return i, i >= 0
}

func (g *Graph[K]) Roots(r Range[K]) iter.Seq[ID[K]] {
	return rootsOf(r, func(id ID[K]) bool {
		n, ok := g.nodes[id]
		return ok && n.parent.IsZero()
	})
}

func (g *Graph[K]) Has(id ID[K]) bool {
	_, ok := g.nodes[id]
	return ok
}

func (g *Graph[K]) Len() int {
	return len(g.nodes)
}

func (g *Graph[K]) node(id ID[K]) *graphNode[K] {
	n, ok := g.nodes[id]
	if !ok {
		panic(fmt.Sprintf("ecs: graph: no relation for %s", id))
	}
	return n
}
