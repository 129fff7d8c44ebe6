package ecs

import (
	"reflect"
	"slices"
	"weak"

	"github.com/kamstrup/intmap"
)

type byTypeName []reflect.Type

func (a byTypeName) Len() int           { return len(a) }
func (a byTypeName) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a byTypeName) Less(i, j int) bool { return a[i].String() < a[j].String() }

// Archetype holds every entity with one exact combination of component
// types. Component data lives in per-type stores that share slot indices.
type Archetype struct {
	id     uint32
	types  []reflect.Type
	stores []componentStore
	refs   *intmap.Map[EntityId, weak.Pointer[EntityRef]]
}

// NewArchetype creates an archetype for the given sorted component types.
// Panics if any type has not been registered.
func NewArchetype(id uint32, types []reflect.Type, registry *ComponentRegistry) *Archetype {
	a := &Archetype{
		id:     id,
		types:  types,
		stores: make([]componentStore, len(types)),
		refs:   intmap.New[EntityId, weak.Pointer[EntityRef]](16),
	}

	for idx, typ := range types {
		factory := registry.getFactory(typ)
		if factory == nil {
			panic("component type " + typ.String() + " not registered")
		}
		a.stores[idx] = factory()
	}

	return a
}

// Spawn appends the components into this archetype's stores and returns the
// shared slot index.
func (a *Archetype) Spawn(components []any) uint32 {
	var slot int
	for _, comp := range components {
		compType := reflect.TypeOf(comp)
		if compType.Kind() == reflect.Ptr {
			compType = compType.Elem()
		}

		for idx, typ := range a.types {
			if typ == compType {
				slot = a.stores[idx].Append(comp)
			}
		}
	}

	return uint32(slot)
}

// GetComponent returns a pointer (as any) to the component of the given type
// at the given slot, or nil if the type or slot is absent.
func (a *Archetype) GetComponent(index uint32, compType reflect.Type) any {
	for i, typ := range a.types {
		if typ == compType {
			return a.stores[i].Get(int(index))
		}
	}
	return nil
}

// Delete clears the slot across all stores and invalidates any live
// EntityRef pointing at it.
func (a *Archetype) Delete(index uint32) {
	entityId := NewEntityId(a.id, index)

	if weakPtr, ok := a.refs.Get(entityId); ok {
		if ref := weakPtr.Value(); ref != nil {
			ref.Id = 0
			ref.Archetype = nil
		}
		a.refs.Del(entityId)
	}

	for _, store := range a.stores {
		store.Delete(int(index))
	}
}

// HasComponent reports whether this archetype carries the component type.
func (a *Archetype) HasComponent(compType reflect.Type) bool {
	return slices.Contains(a.types, compType)
}

// ID returns the archetype's identifier.
func (a *Archetype) ID() uint32 {
	return a.id
}

// Types returns the sorted component types for this archetype.
func (a *Archetype) Types() []reflect.Type {
	return a.types
}

// Len returns the number of live entities in this archetype.
func (a *Archetype) Len() int {
	if len(a.stores) == 0 {
		return 0
	}
	return a.stores[0].Len()
}

// Iter yields every live EntityId in this archetype.
func (a *Archetype) Iter() func(yield func(EntityId) bool) {
	return func(yield func(EntityId) bool) {
		if len(a.stores) == 0 {
			return
		}

		for index := range a.stores[0].Iter() {
			if !yield(NewEntityId(a.id, uint32(index))) {
				return
			}
		}
	}
}
