package ecs

import "fmt"

// Registry tracks the component tables of one kind so a builder can verify,
// after each construction burst, that every issued identifier received every
// attribute.
type Registry struct {
	kind   string
	stores []Sized
	names  []string
}

func NewRegistry(kind string) *Registry {
	return &Registry{
		kind:   kind,
		stores: make([]Sized, 0, 8),
	}
}

// Register adds a table to the registry.
func (r *Registry) Register(name string, store Sized) {
	r.stores = append(r.stores, store)
	r.names = append(r.names, name)
}

// Verify fails if any registered table does not hold exactly want entries.
func (r *Registry) Verify(want int) error {
	for i, s := range r.stores {
		if got := s.Len(); got != want {
			return fmt.Errorf("%s.%s holds %d entries, want %d: %w",
				r.kind, r.names[i], got, want, ErrCoverage)
		}
	}
	return nil
}

// Len returns the number of registered tables.
func (r *Registry) Len() int {
	return len(r.stores)
}
