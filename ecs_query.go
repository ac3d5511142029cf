package lightassist

// Queries visit every entity that has all of their component types, in the order the
// first component type was attached. Returning false from the callback stops the walk.
// Component pointers stay valid until the next command flush.
type Query1[A any] struct{ ecs *Ecs }
type Query2[A, B any] struct{ ecs *Ecs }

func MakeQuery1[A any](cmd *Commands) Query1[A]       { return Query1[A]{ecs: cmd.app.ecs} }
func MakeQuery2[A, B any](cmd *Commands) Query2[A, B] { return Query2[A, B]{ecs: cmd.app.ecs} }

func (q Query1[A]) Map(m func(EntityId, *A) bool) {
	sa := q.ecs.stores[typeOf[A]()]
	if sa == nil {
		return
	}
	compsA := sa.data.Interface().([]A)
	for row, eid := range sa.ids {
		if !m(eid, &compsA[row]) {
			return
		}
	}
}

func (q Query2[A, B]) Map(m func(EntityId, *A, *B) bool) {
	sa, sb := q.ecs.stores[typeOf[A]()], q.ecs.stores[typeOf[B]()]
	if sa == nil || sb == nil {
		return
	}
	compsA := sa.data.Interface().([]A)
	compsB := sb.data.Interface().([]B)
	for row, eid := range sa.ids {
		rb, ok := sb.rows[eid]
		if !ok {
			continue
		}
		if !m(eid, &compsA[row], &compsB[rb]) {
			return
		}
	}
}

// GetComponent returns the live component of type T on entityId, or nil.
func GetComponent[T any](cmd *Commands, entityId EntityId) *T {
	store := cmd.app.ecs.stores[typeOf[T]()]
	if store == nil {
		return nil
	}
	r, ok := store.rows[entityId]
	if !ok {
		return nil
	}
	return &store.data.Interface().([]T)[r]
}
