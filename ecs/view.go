package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

// View finds entities carrying a specific combination of components. The
// type parameter T must be a struct whose fields are pointers to component
// types; embedded fields are required, named fields may carry the tag
// `ecs:"optional"`. A field of type EntityId is also allowed and receives
// the entity's id. Field pointers are written through precomputed offsets,
// so iteration does no per-entity reflection.
type View[T any] struct {
	storage *Storage
	fields  []viewField
}

type viewField struct {
	compType reflect.Type
	offset   uintptr
	optional bool
	isId     bool
}

var entityIdType = reflect.TypeFor[EntityId]()

// NewView builds a view for the struct type T against the given storage.
func NewView[T any](storage *Storage) *View[T] {
	structType := reflect.TypeFor[T]()
	if structType.Kind() != reflect.Struct {
		panic("View type parameter must be a struct")
	}

	fields := make([]viewField, 0, structType.NumField())
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)

		if field.Type == entityIdType {
			fields = append(fields, viewField{offset: field.Offset, isId: true})
			continue
		}

		if field.Type.Kind() != reflect.Ptr {
			panic("View struct fields must be pointer types or EntityId")
		}

		optional := false
		if !field.Anonymous {
			switch tag := field.Tag.Get("ecs"); tag {
			case "":
			case "optional":
				optional = true
			default:
				panic("invalid ecs tag value: \"" + tag + "\" (only \"optional\" is supported)")
			}
		}

		fields = append(fields, viewField{
			compType: field.Type.Elem(),
			offset:   field.Offset,
			optional: optional,
		})
	}

	return &View[T]{storage: storage, fields: fields}
}

// Get returns a populated view struct for the entity, or nil if the entity
// is missing a required component.
func (v *View[T]) Get(id EntityId) *T {
	archetype, ok := v.storage.archetypes[id.ArchetypeId()]
	if !ok {
		return nil
	}

	var result T
	if !v.fill(unsafe.Pointer(&result), archetype, id) {
		return nil
	}
	return &result
}

// GetRef resolves the ref and returns a populated view struct, or nil.
func (v *View[T]) GetRef(ref *EntityRef) *T {
	id, ok := v.storage.ResolveEntityRef(ref)
	if !ok {
		return nil
	}
	return v.Get(id)
}

// fill writes component pointers (and the entity id) into the struct at
// resultPtr. Returns false if a required component is absent.
func (v *View[T]) fill(resultPtr unsafe.Pointer, archetype *Archetype, id EntityId) bool {
	for i := range v.fields {
		f := &v.fields[i]
		fieldPtr := unsafe.Pointer(uintptr(resultPtr) + f.offset)

		if f.isId {
			*(*EntityId)(fieldPtr) = id
			continue
		}

		component := archetype.GetComponent(id.Index(), f.compType)
		if component == nil {
			if !f.optional {
				return false
			}
			*(*unsafe.Pointer)(fieldPtr) = nil
			continue
		}

		*(*unsafe.Pointer)(fieldPtr) = (*iface)(unsafe.Pointer(&component)).data
	}
	return true
}

// matchesArchetype reports whether the archetype carries every required
// component of this view.
func (v *View[T]) matchesArchetype(archetype *Archetype) bool {
	for i := range v.fields {
		f := &v.fields[i]
		if f.isId || f.optional {
			continue
		}
		if !archetype.HasComponent(f.compType) {
			return false
		}
	}
	return true
}

// Iter yields (EntityId, T) for every entity carrying the view's required
// components.
func (v *View[T]) Iter() iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		for _, archetype := range v.storage.archetypes {
			if !v.matchesArchetype(archetype) {
				continue
			}

			var result T
			resultPtr := unsafe.Pointer(&result)

			for id := range archetype.Iter() {
				if !v.fill(resultPtr, archetype, id) {
					continue
				}
				if !yield(id, result) {
					return
				}
			}
		}
	}
}

// Values yields just the view structs, for callers that do not need ids.
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range v.Iter() {
			if !yield(value) {
				return
			}
		}
	}
}
