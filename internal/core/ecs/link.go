package ecs

import "fmt"

// OwnerRange is a symmetric one-to-many link between two kinds: owner → the
// contiguous range of its owned ids, owned → its single owner. All ids owned
// by one owner must be linked as one unbroken run of consecutive slots;
// anything else is rejected with ErrNotContiguous.
type OwnerRange[O any, T any] struct {
	name    string
	targets map[ID[O]]Range[T]
	source  map[ID[T]]ID[O]
}

func NewOwnerRange[O any, T any](name string) *OwnerRange[O, T] {
	return &OwnerRange[O, T]{
		name:    name,
		targets: make(map[ID[O]]Range[T], 16),
		source:  make(map[ID[T]]ID[O], 64),
	}
}

// Link attaches owned to owner, starting a new range for an unseen owner or
// extending the existing one by exactly one slot.
func (l *OwnerRange[O, T]) Link(owner ID[O], owned ID[T]) error {
	if prev, ok := l.source[owned]; ok {
		return fmt.Errorf("%s: link %s to %s (owned by %s): %w", l.name, owned, owner, prev, ErrDuplicate)
	}
	r, ok := l.targets[owner]
	switch {
	case !ok:
		r = RangeOf(owned, 1)
	case owned.Index() == r.End():
		r = r.Extend()
	default:
		return fmt.Errorf("%s: link %s to %s (owns %s): %w", l.name, owned, owner, r, ErrNotContiguous)
	}
	l.targets[owner] = r
	l.source[owned] = owner
	return nil
}

// LinkRange links every member of r to owner in order.
func (l *OwnerRange[O, T]) LinkRange(owner ID[O], r Range[T]) error {
	for id := range r.All() {
		if err := l.Link(owner, id); err != nil {
			return err
		}
	}
	return nil
}

// Owned is the mandatory owner → range lookup; unknown owners panic.
func (l *OwnerRange[O, T]) Owned(owner ID[O]) Range[T] {
	r, ok := l.targets[owner]
	if !ok {
		panic(fmt.Sprintf("ecs: %s: %s owns nothing", l.name, owner))
	}
	return r
}

// TryOwned returns an empty range and false for owners never linked.
func (l *OwnerRange[O, T]) TryOwned(owner ID[O]) (Range[T], bool) {
	r, ok := l.targets[owner]
	return r, ok
}

// Owner is the mandatory owned → owner lookup; unlinked ids panic.
func (l *OwnerRange[O, T]) Owner(owned ID[T]) ID[O] {
	o, ok := l.source[owned]
	if !ok {
		panic(fmt.Sprintf("ecs: %s: %s has no owner", l.name, owned))
	}
	return o
}

func (l *OwnerRange[O, T]) TryOwner(owned ID[T]) (ID[O], bool) {
	o, ok := l.source[owned]
	return o, ok
}

// Len returns the number of linked owned ids.
func (l *OwnerRange[O, T]) Len() int {
	return len(l.source)
}
