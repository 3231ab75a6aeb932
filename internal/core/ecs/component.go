package ecs

import "fmt"

// Sized is implemented by all component tables so the Registry can check
// attribute coverage after a construction burst.
type Sized interface {
	Len() int
}

// Table is a sparse attribute store for one kind: at most one value per
// identifier, no updates, no removal. Missing values on the mandatory path
// are programming errors and panic.
type Table[K any, T any] struct {
	name string
	data map[ID[K]]T
}

func NewTable[K any, T any](name string) *Table[K, T] {
	return &Table[K, T]{
		name: name,
		data: make(map[ID[K]]T, 64),
	}
}

func (t *Table[K, T]) Name() string { return t.name }

// Insert stores v for id. A second insert for the same id panics.
func (t *Table[K, T]) Insert(id ID[K], v T) {
	if _, ok := t.data[id]; ok {
		panic(fmt.Sprintf("ecs: %s: duplicate insert for %s", t.name, id))
	}
	t.data[id] = v
}

// Get is the optional lookup.
func (t *Table[K, T]) Get(id ID[K]) (T, bool) {
	v, ok := t.data[id]
	return v, ok
}

// Index is the mandatory lookup: it panics if id has no value.
func (t *Table[K, T]) Index(id ID[K]) T {
	v, ok := t.data[id]
	if !ok {
		panic(fmt.Sprintf("ecs: %s: no value for %s", t.name, id))
	}
	return v
}

func (t *Table[K, T]) Has(id ID[K]) bool {
	_, ok := t.data[id]
	return ok
}

func (t *Table[K, T]) Len() int {
	return len(t.data)
}

// Each visits every entry in unspecified order.
func (t *Table[K, T]) Each(fn func(ID[K], T)) {
	for id, v := range t.data {
		fn(id, v)
	}
}
