package lightassist

import (
	"github.com/google/uuid"
)

const defaultUndoLimit = 128

// lightSnapshot is the editable state of a light entity.
type lightSnapshot struct {
	transform *TransformComponent
	light     *LightComponent
}

func captureLight(cmd *Commands, eid EntityId) lightSnapshot {
	var s lightSnapshot
	if tr := GetComponent[TransformComponent](cmd, eid); tr != nil {
		c := *tr
		s.transform = &c
	}
	if l := GetComponent[LightComponent](cmd, eid); l != nil {
		c := *l
		s.light = &c
	}
	return s
}

func (s lightSnapshot) restore(cmd *Commands, eid EntityId) {
	if tr := GetComponent[TransformComponent](cmd, eid); tr != nil && s.transform != nil {
		*tr = *s.transform
	}
	if l := GetComponent[LightComponent](cmd, eid); l != nil && s.light != nil {
		*l = *s.light
	}
}

// UndoRecord is one checkpoint taken right before an edit.
type UndoRecord struct {
	ID     uuid.UUID
	Label  string
	Entity EntityId

	before lightSnapshot
	after  lightSnapshot
}

// UndoStack keeps checkpoints of light edits. Record is called before the edit is
// written; the post-edit state is captured when the record is undone.
type UndoStack struct {
	Limit int

	undo []UndoRecord
	redo []UndoRecord
}

func NewUndoStack(limit int) *UndoStack {
	if limit <= 0 {
		limit = defaultUndoLimit
	}
	return &UndoStack{Limit: limit}
}

// Record checkpoints the current state of eid and drops the redo history.
func (u *UndoStack) Record(cmd *Commands, label string, eid EntityId) uuid.UUID {
	rec := UndoRecord{
		ID:     uuid.New(),
		Label:  label,
		Entity: eid,
		before: captureLight(cmd, eid),
	}
	u.undo = append(u.undo, rec)
	if u.Limit > 0 && len(u.undo) > u.Limit {
		u.undo = u.undo[len(u.undo)-u.Limit:]
	}
	u.redo = u.redo[:0]
	return rec.ID
}

// Undo restores the newest checkpoint. It returns the undone record, or false when the
// stack is empty or the entity is gone.
func (u *UndoStack) Undo(cmd *Commands) (UndoRecord, bool) {
	for len(u.undo) > 0 {
		rec := u.undo[len(u.undo)-1]
		u.undo = u.undo[:len(u.undo)-1]
		if !cmd.HasEntity(rec.Entity) {
			continue
		}
		rec.after = captureLight(cmd, rec.Entity)
		rec.before.restore(cmd, rec.Entity)
		u.redo = append(u.redo, rec)
		return rec, true
	}
	return UndoRecord{}, false
}

func (u *UndoStack) Redo(cmd *Commands) (UndoRecord, bool) {
	for len(u.redo) > 0 {
		rec := u.redo[len(u.redo)-1]
		u.redo = u.redo[:len(u.redo)-1]
		if !cmd.HasEntity(rec.Entity) {
			continue
		}
		rec.after.restore(cmd, rec.Entity)
		u.undo = append(u.undo, rec)
		return rec, true
	}
	return UndoRecord{}, false
}

func (u *UndoStack) CanUndo() bool { return len(u.undo) > 0 }
func (u *UndoStack) CanRedo() bool { return len(u.redo) > 0 }

type UndoModule struct {
	Limit int
}

func (m UndoModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(NewUndoStack(m.Limit))

	log := app.Logger()
	app.UseSystem(System(func(cmd *Commands, input *Input, stack *UndoStack) {
		if !input.Pressed[KeyControl] {
			return
		}
		switch {
		case input.JustPressed[KeyZ] && input.Pressed[KeyShift], input.JustPressed[KeyY]:
			if rec, ok := stack.Redo(cmd); ok {
				log.Debugf("redo %s on entity %d", rec.Label, rec.Entity)
			}
		case input.JustPressed[KeyZ]:
			if rec, ok := stack.Undo(cmd); ok {
				log.Debugf("undo %s on entity %d", rec.Label, rec.Entity)
			}
		}
	}).InStage(PreUpdate))
}
