package lightassist

import (
	"fmt"
	"reflect"
	"slices"
	"sync"
)

// EntityId 0 is never handed out and means "no entity".
type EntityId uint64

type set[T comparable] = map[T]struct{}

// componentStore keeps every component of one type in a typed slice ([]T held as a
// reflect.Value) in insertion order, so queries visit entities deterministically.
type componentStore struct {
	typ  reflect.Type
	rows map[EntityId]int
	ids  []EntityId
	data reflect.Value
}

func newComponentStore(t reflect.Type) *componentStore {
	return &componentStore{
		typ:  t,
		rows: make(map[EntityId]int),
		data: reflect.MakeSlice(reflect.SliceOf(t), 0, 4),
	}
}

func (s *componentStore) put(eid EntityId, v reflect.Value) {
	if r, ok := s.rows[eid]; ok {
		s.data.Index(r).Set(v)
		return
	}
	s.rows[eid] = len(s.ids)
	s.ids = append(s.ids, eid)
	s.data = reflect.Append(s.data, v)
}

func (s *componentStore) remove(eid EntityId) {
	r, ok := s.rows[eid]
	if !ok {
		return
	}
	n := s.data.Len()
	reflect.Copy(s.data.Slice(r, n), s.data.Slice(r+1, n))
	s.data.Index(n - 1).Set(reflect.Zero(s.typ))
	s.data = s.data.Slice(0, n-1)

	s.ids = slices.Delete(s.ids, r, r+1)
	delete(s.rows, eid)
	for i := r; i < len(s.ids); i++ {
		s.rows[s.ids[i]] = i
	}
}

func (s *componentStore) get(eid EntityId) (reflect.Value, bool) {
	r, ok := s.rows[eid]
	if !ok {
		return reflect.Value{}, false
	}
	return s.data.Index(r), true
}

type Ecs struct {
	stores map[reflect.Type]*componentStore
	alive  set[EntityId]

	idGeneratorLock sync.Mutex
	entityIdCounter EntityId
}

func MakeEcs() Ecs {
	return Ecs{
		stores: make(map[reflect.Type]*componentStore),
		alive:  make(set[EntityId]),
	}
}

func (ecs *Ecs) nextEntityId() EntityId {
	ecs.idGeneratorLock.Lock()
	defer ecs.idGeneratorLock.Unlock()

	ecs.entityIdCounter += 1
	return ecs.entityIdCounter
}

func (ecs *Ecs) addEntity(components ...any) EntityId {
	return ecs.insertEntity(ecs.nextEntityId(), components...)
}

func (ecs *Ecs) insertEntity(entityId EntityId, components ...any) EntityId {
	ecs.alive[entityId] = struct{}{}
	for _, component := range components {
		ecs.writeComponent(entityId, component)
	}
	return entityId
}

func (ecs *Ecs) addComponents(entityId EntityId, components ...any) {
	if !ecs.hasEntity(entityId) {
		return
	}
	for _, component := range components {
		ecs.writeComponent(entityId, component)
	}
}

func (ecs *Ecs) removeComponents(entityId EntityId, components ...any) {
	for _, component := range components {
		if store, ok := ecs.stores[componentType(component)]; ok {
			store.remove(entityId)
		}
	}
}

func (ecs *Ecs) removeEntity(entityId EntityId) {
	for _, store := range ecs.stores {
		store.remove(entityId)
	}
	delete(ecs.alive, entityId)
}

func (ecs *Ecs) hasEntity(entityId EntityId) bool {
	_, ok := ecs.alive[entityId]
	return ok
}

func (ecs *Ecs) writeComponent(entityId EntityId, component any) {
	value := reflect.ValueOf(component)
	if value.Kind() == reflect.Pointer {
		value = value.Elem()
	}
	t := componentType(component)

	store, ok := ecs.stores[t]
	if !ok {
		store = newComponentStore(t)
		ecs.stores[t] = store
	}
	store.put(entityId, value)
}

// allComponents returns copies of every component attached to entityId.
func (ecs *Ecs) allComponents(entityId EntityId) []any {
	var res []any
	for _, store := range ecs.stores {
		if v, ok := store.get(entityId); ok {
			res = append(res, v.Interface())
		}
	}
	return res
}

// componentType accepts a struct or a pointer to a struct and returns the struct type.
func componentType(component any) reflect.Type {
	t := reflect.TypeOf(component)
	if t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		panic(fmt.Errorf("expected Component to be a struct or a pointer to a struct, got %v", reflect.TypeOf(component)))
	}
	return t
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
