package lightassist

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUndoScene(t *testing.T) (*App, *Commands, EntityId) {
	t.Helper()
	app := NewApp()
	cmd := app.Commands()
	eid := cmd.AddEntity(
		NewTransformComponent(mgl32.Vec3{1, 2, 3}, mgl32.QuatIdent()),
		NewPointLight([3]float32{1, 1, 1}, 1, 5),
	)
	app.FlushCommands()
	return app, cmd, eid
}

func TestUndoStack_UndoRedo(t *testing.T) {
	_, cmd, eid := newUndoScene(t)
	stack := NewUndoStack(0)

	id := stack.Record(cmd, "Modify Light", eid)
	assert.NotEqual(t, uuid.Nil, id)

	GetComponent[TransformComponent](cmd, eid).Position = mgl32.Vec3{9, 9, 9}
	GetComponent[LightComponent](cmd, eid).Range = 1

	rec, ok := stack.Undo(cmd)
	require.True(t, ok)
	assert.Equal(t, id, rec.ID)
	assert.Equal(t, "Modify Light", rec.Label)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, GetComponent[TransformComponent](cmd, eid).Position)
	assert.Equal(t, float32(5), GetComponent[LightComponent](cmd, eid).Range)
	assert.True(t, stack.CanRedo())

	_, ok = stack.Redo(cmd)
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{9, 9, 9}, GetComponent[TransformComponent](cmd, eid).Position)
	assert.Equal(t, float32(1), GetComponent[LightComponent](cmd, eid).Range)
}

func TestUndoStack_RecordClearsRedo(t *testing.T) {
	_, cmd, eid := newUndoScene(t)
	stack := NewUndoStack(0)

	stack.Record(cmd, "first", eid)
	stack.Undo(cmd)
	require.True(t, stack.CanRedo())

	stack.Record(cmd, "second", eid)
	assert.False(t, stack.CanRedo())
}

func TestUndoStack_Limit(t *testing.T) {
	_, cmd, eid := newUndoScene(t)
	stack := NewUndoStack(2)
	for i := 0; i < 5; i++ {
		stack.Record(cmd, "edit", eid)
	}

	undone := 0
	for {
		if _, ok := stack.Undo(cmd); !ok {
			break
		}
		undone++
	}
	assert.Equal(t, 2, undone)
}

func TestUndoStack_SkipsRemovedEntities(t *testing.T) {
	app, cmd, eid := newUndoScene(t)
	stack := NewUndoStack(0)
	stack.Record(cmd, "edit", eid)

	cmd.RemoveEntity(eid)
	app.FlushCommands()

	_, ok := stack.Undo(cmd)
	assert.False(t, ok)
	assert.False(t, stack.CanUndo())
}
