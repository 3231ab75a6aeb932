package ecs

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildSystem allocates planet, moon, moon, planet, planet, moon the way the
// seeding pass does and inserts them into rel.
func buildSystem(t *testing.T, rel Relations[testBody]) (Range[testBody], []ID[testBody]) {
	t.Helper()
	a := NewAllocator[testBody]()
	all := a.CreateRange(0)

	p1 := a.Create()
	require.NoError(t, rel.InsertParent(p1))
	m1 := a.Create()
	require.NoError(t, rel.InsertChild(m1, p1))
	m2 := a.Create()
	require.NoError(t, rel.InsertChild(m2, p1))
	p2 := a.Create()
	require.NoError(t, rel.InsertParent(p2))
	p3 := a.Create()
	require.NoError(t, rel.InsertParent(p3))
	m3 := a.Create()
	require.NoError(t, rel.InsertChild(m3, p3))

	return RangeOf(all.Start(), a.Len()), []ID[testBody]{p1, m1, m2, p2, p3, m3}
}

func TestForestRoundTrip(t *testing.T) {
	f := NewForest[testBody]()
	all, ids := buildSystem(t, f)
	p1, m1, m2, p2, p3, m3 := ids[0], ids[1], ids[2], ids[3], ids[4], ids[5]

	assert.Equal(t, Relation[testBody]{Kind: ChildOf, Parent: p1}, f.Lookup(m1))
	assert.Equal(t, Relation[testBody]{Kind: ChildOf, Parent: p1}, f.Lookup(m2))

	root := f.Lookup(p1)
	assert.Equal(t, ParentOf, root.Kind)
	assert.True(t, root.Parent.IsZero())
	assert.Equal(t, RangeOf(m1, 2), root.Children)
	assert.True(t, f.Lookup(p2).Children.IsEmpty())
	assert.Equal(t, m3, f.ChildAt(p3, 0))
	assert.Equal(t, m2, f.ChildAt(p1, 1))

	assert.Equal(t, []ID[testBody]{p1, p2, p3}, slices.Collect(f.Roots(all)))

	ord, ok := f.Ordinal(m2)
	assert.True(t, ok)
	assert.Equal(t, 1, ord)
	_, ok = f.Ordinal(p2)
	assert.False(t, ok)
	assert.Equal(t, 6, f.Len())
}

func TestForestRejectsNonContiguousChild(t *testing.T) {
	a := NewAllocator[testBody]()
	f := NewForest[testBody]()
	p := a.Create()
	require.NoError(t, f.InsertParent(p))
	c1 := a.Create()
	require.NoError(t, f.InsertChild(c1, p))
	gap := a.Create()
	require.NoError(t, f.InsertParent(gap))
	c2 := a.Create()

	err := f.InsertChild(c2, p)
	assert.ErrorIs(t, err, ErrNotContiguous)
	assert.False(t, f.Has(c2))
	assert.Equal(t, RangeOf(c1, 1), f.Children(p))
}

func TestForestErrors(t *testing.T) {
	a := NewAllocator[testBody]()
	f := NewForest[testBody]()
	p := a.Create()
	require.NoError(t, f.InsertParent(p))
	assert.ErrorIs(t, f.InsertParent(p), ErrDuplicate)
	assert.ErrorIs(t, f.InsertChild(p, p), ErrDuplicate)
	assert.ErrorIs(t, f.InsertChild(a.Create(), NewID[testBody](99, 1)), ErrUnknownParent)
	assert.Panics(t, func() { f.Lookup(NewID[testBody](42, 1)) })
}

func TestForestDeepNesting(t *testing.T) {
	a := NewAllocator[testBody]()
	f := NewForest[testBody]()
	root := a.Create()
	require.NoError(t, f.InsertParent(root))
	mid := a.CreateRange(2)
	for id := range mid.All() {
		require.NoError(t, f.InsertChild(id, root))
	}
	leaf := a.Create()
	require.NoError(t, f.InsertChild(leaf, mid.At(1)))

	rel := f.Lookup(mid.At(1))
	assert.Equal(t, ChildOf, rel.Kind)
	assert.Equal(t, RangeOf(leaf, 1), rel.Children)
	assert.Equal(t, []ID[testBody]{mid.At(1), root}, slices.Collect(Ancestors[testBody](f, leaf)))
	assert.Equal(t, root, Root[testBody](f, leaf))
	assert.Equal(t, root, Root[testBody](f, root))
}

func TestGraphRoundTrip(t *testing.T) {
	g := NewGraph[testBody]()
	all, ids := buildSystem(t, g)
	p1, m1, m2, p2, p3, m3 := ids[0], ids[1], ids[2], ids[3], ids[4], ids[5]

	assert.Equal(t, GraphNode[testBody]{Kind: ParentOf, Children: []ID[testBody]{m1, m2}}, g.Lookup(p1))
	assert.Equal(t, ChildOf, g.Lookup(m3).Kind)
	assert.Equal(t, p3, g.Lookup(m3).Parent)
	assert.Empty(t, g.Lookup(p2).Children)
	assert.Equal(t, []ID[testBody]{p1, p2, p3}, slices.Collect(g.Roots(all)))

	ord, ok := g.Ordinal(m2)
	assert.True(t, ok)
	assert.Equal(t, 1, ord)
}

func TestGraphAcceptsInterleavedChildren(t *testing.T) {
	a := NewAllocator[testBody]()
	g := NewGraph[testBody]()
	p1, p2 := a.Create(), a.Create()
	require.NoError(t, g.InsertParent(p1))
	require.NoError(t, g.InsertParent(p2))
	c1, c2, c3 := a.Create(), a.Create(), a.Create()
	require.NoError(t, g.InsertChild(c1, p1))
	require.NoError(t, g.InsertChild(c2, p2))
	require.NoError(t, g.InsertChild(c3, p1))

	assert.Equal(t, []ID[testBody]{c1, c3}, g.Lookup(p1).Children)
	ord, _ := g.Ordinal(c3)
	assert.Equal(t, 1, ord)

	// Lookup hands out a copy.
	node := g.Lookup(p1)
	node.Children[0] = c2
	assert.Equal(t, c1, g.Lookup(p1).Children[0])
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "ParentOf", ParentOf.String())
	assert.Equal(t, "ChildOf", ChildOf.String())
}
