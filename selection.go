package lightassist

import (
	"slices"
)

// Selection is the editor's object selection. The last selected object is the
// active one.
type Selection struct {
	objects []EntityId
	version uint64
}

func (s *Selection) Set(objects ...EntityId) {
	next := make([]EntityId, 0, len(objects))
	for _, eid := range objects {
		if eid != 0 && !slices.Contains(next, eid) {
			next = append(next, eid)
		}
	}
	if slices.Equal(next, s.objects) {
		return
	}
	s.objects = next
	s.version++
}

// Toggle adds eid to the selection, or removes it when already selected.
func (s *Selection) Toggle(eid EntityId) {
	if i := slices.Index(s.objects, eid); i >= 0 {
		s.Set(slices.Delete(slices.Clone(s.objects), i, i+1)...)
		return
	}
	s.Set(append(slices.Clone(s.objects), eid)...)
}

func (s *Selection) Clear() { s.Set() }

func (s *Selection) Objects() []EntityId { return slices.Clone(s.objects) }

// Active returns the most recently selected object, or 0.
func (s *Selection) Active() EntityId {
	if len(s.objects) == 0 {
		return 0
	}
	return s.objects[len(s.objects)-1]
}

func (s *Selection) Contains(eid EntityId) bool { return slices.Contains(s.objects, eid) }

func (s *Selection) Version() uint64 { return s.version }

// SelectionEvents.Changed is true for the one frame after the selection changed.
type SelectionEvents struct {
	Changed bool
	seen    uint64
}

type SelectionModule struct{}

func (SelectionModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&Selection{}, &SelectionEvents{})
	app.UseSystem(System(selectionChangeSystem).InStage(Prelude))
}

// selectionChangeSystem drops despawned objects and raises Changed when the selection
// differs from what the previous frame saw.
func selectionChangeSystem(cmd *Commands, sel *Selection, events *SelectionEvents) {
	alive := sel.objects[:0:0]
	for _, eid := range sel.objects {
		if cmd.HasEntity(eid) {
			alive = append(alive, eid)
		}
	}
	if len(alive) != len(sel.objects) {
		sel.Set(alive...)
	}
	events.Changed = sel.version != events.seen
	events.seen = sel.version
}
