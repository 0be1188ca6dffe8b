package scene

import (
	"errors"
	"fmt"
	"iter"

	"curvescope/internal/geom"
)

// InitialCapacity is the capacity of a freshly created store.
const InitialCapacity = 8

// ErrStoreFull is returned when the store cannot grow any further.
// Callers treat it as fatal.
var ErrStoreFull = errors.New("scene: object store full")

// Store is an insertion-ordered collection of objects. It owns its backing
// array; objects share their shapes.
type Store struct {
	objects []Object
	limit   int

	// OnGrow, if set, is called after the backing array is reallocated.
	OnGrow func(oldCap, newCap int)
}

// NewStore returns an empty store. A limit of zero means unbounded.
func NewStore(limit int) *Store {
	return &Store{
		objects: make([]Object, 0, InitialCapacity),
		limit:   limit,
	}
}

// Len returns the number of objects.
func (s *Store) Len() int { return len(s.objects) }

// Cap returns the capacity of the backing array.
func (s *Store) Cap() int { return cap(s.objects) }

// At returns a pointer to the object at index i. The pointer is only
// valid until the next Insert or Remove.
func (s *Store) At(i int) *Object { return &s.objects[i] }

// Insert appends o, doubling the capacity when the store is full.
func (s *Store) Insert(o Object) (int, error) {
	n := len(s.objects)
	if s.limit > 0 && n >= s.limit {
		return -1, fmt.Errorf("insert object %d: %w", n, ErrStoreFull)
	}
	if n == cap(s.objects) {
		newCap := 2 * cap(s.objects)
		if newCap == 0 {
			newCap = InitialCapacity
		}
		if s.limit > 0 && newCap > s.limit {
			newCap = s.limit
		}
		grown := make([]Object, n, newCap)
		copy(grown, s.objects)
		oldCap := cap(s.objects)
		s.objects = grown
		if s.OnGrow != nil {
			s.OnGrow(oldCap, newCap)
		}
	}
	s.objects = append(s.objects, o)
	return n, nil
}

// Remove deletes the object at index i and shifts the following objects
// down by one. An out-of-range index is a no-op and reports false.
func (s *Store) Remove(i int) bool {
	n := len(s.objects)
	if i < 0 || i >= n {
		return false
	}
	copy(s.objects[i:], s.objects[i+1:])
	s.objects[n-1] = Object{}
	s.objects = s.objects[:n-1]
	return true
}

// Reset removes every object but keeps the backing array.
func (s *Store) Reset() {
	clear(s.objects)
	s.objects = s.objects[:0]
}

// HitTest returns the index of the first object in store order that
// contains p, or -1.
func (s *Store) HitTest(p geom.Point) int {
	for i := range s.objects {
		if s.objects[i].Contains(p) {
			return i
		}
	}
	return -1
}

// All iterates the objects in store order.
func (s *Store) All() iter.Seq2[int, *Object] {
	return func(yield func(int, *Object) bool) {
		for i := range s.objects {
			if !yield(i, &s.objects[i]) {
				return
			}
		}
	}
}
