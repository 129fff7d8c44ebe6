package ecs

import (
	"iter"
	"reflect"
)

// componentStore is type-erased storage for a single component type within
// one archetype. Indices are stable for the lifetime of the entity.
type componentStore interface {
	Append(item any) int
	Delete(index int)
	Get(index int) any
	Has(index int) bool
	Len() int
	Iter() iter.Seq[int]
}

// ComponentRegistry maps component types to storage factories. Each Storage
// owns its own registry so independent worlds never interfere.
type ComponentRegistry struct {
	factories map[reflect.Type]func() componentStore
}

// NewComponentRegistry creates an empty component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() componentStore),
	}
}

// RegisterComponent registers the component type T with the registry. Every
// component type must be registered before an entity carrying it is spawned.
func RegisterComponent[T any](r *ComponentRegistry) {
	t := reflect.TypeFor[T]()
	r.factories[t] = func() componentStore {
		return &sliceStore[T]{}
	}
}

func (r *ComponentRegistry) getFactory(t reflect.Type) func() componentStore {
	return r.factories[t]
}

// sliceStore keeps components of one type in a flat slice with a free list.
// Deleted slots are zeroed and recycled; live slots never move, so a slot
// index identifies the entity for its whole lifetime.
type sliceStore[T any] struct {
	items []T
	live  []bool
	free  []int
	count int
}

func (s *sliceStore[T]) Append(item any) int {
	var value T
	switch v := item.(type) {
	case T:
		value = v
	case *T:
		value = *v
	default:
		return -1
	}

	s.count++

	if n := len(s.free); n > 0 {
		index := s.free[n-1]
		s.free = s.free[:n-1]
		s.items[index] = value
		s.live[index] = true
		return index
	}

	s.items = append(s.items, value)
	s.live = append(s.live, true)
	return len(s.items) - 1
}

func (s *sliceStore[T]) Get(index int) any {
	if index < 0 || index >= len(s.items) || !s.live[index] {
		return nil
	}
	return &s.items[index]
}

func (s *sliceStore[T]) Delete(index int) {
	if index < 0 || index >= len(s.items) || !s.live[index] {
		return
	}
	var zero T
	s.items[index] = zero
	s.live[index] = false
	s.free = append(s.free, index)
	s.count--
}

func (s *sliceStore[T]) Has(index int) bool {
	return index >= 0 && index < len(s.items) && s.live[index]
}

func (s *sliceStore[T]) Len() int {
	return s.count
}

func (s *sliceStore[T]) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := range s.items {
			if !s.live[i] {
				continue
			}
			if !yield(i) {
				return
			}
		}
	}
}
