package lightassist

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/lightassist/geom"
)

// lookSensitivity is radians of camera turn per pixel of right-drag.
const lookSensitivity = 0.004

// panFocusDistance is the depth at which a middle-drag pan tracks the cursor.
const panFocusDistance = 10

// EditorModule installs the light tools and everything they run on. Headless skips
// the glfw window; Input is then driven by the caller.
type EditorModule struct {
	Config   Config
	Headless bool
}

func (m EditorModule) Install(app *App, cmd *Commands) {
	modules := []Module{TimeModule{}}
	if !m.Headless {
		modules = append(modules, NewPlatformWindow(m.Config.Window))
	}
	modules = append(modules,
		InputModule{},
		GizmoModule{},
		UiModule{},
		SelectionModule{},
		UndoModule{},
		ViewportModule{Config: m.Config},
		LightAssistantModule{Config: m.Config},
		LightRelationshipsModule{Config: m.Config},
	)
	for _, module := range modules {
		module.Install(app, cmd)
	}

	app.UseSystem(System(editorKeysSystem).InStage(PreUpdate))
	app.UseSystem(System(editorLookSystem).InStage(PreUpdate))
	app.UseSystem(System(editorPanSystem).InStage(PreUpdate))

	app.Logger().Infof("F1: light assistant, F2: light relationships, Del: clear selection, Esc: quit")
}

// editorKeysSystem toggles the tool windows: F1 for the assistant, F2 for relationships.
// Delete clears the selection and Escape quits.
func editorKeysSystem(cmd *Commands, input *Input, sel *Selection, la *LightAssistant, lr *LightRelationships) {
	if input.JustPressed[KeyEscape] {
		cmd.Exit()
	}
	if input.JustPressed[KeyF1] {
		la.SetOpen(cmd, sel, !la.Panel.Open)
	}
	if input.JustPressed[KeyF2] {
		lr.SetOpen(cmd, !lr.Panel.Open)
	}
	if input.JustPressed[KeyDelete] {
		sel.Clear()
	}
}

// editorLookSystem turns the editor camera while the right mouse button is held.
func editorLookSystem(input *Input, camera *EditorCamera) {
	if !input.Pressed[MouseButtonRight] || (input.MouseDeltaX == 0 && input.MouseDeltaY == 0) {
		return
	}
	yaw := mgl32.QuatRotate(float32(input.MouseDeltaX)*lookSensitivity, geom.Up)
	pitch := mgl32.QuatRotate(float32(input.MouseDeltaY)*lookSensitivity, geom.Right)
	camera.Rotation = yaw.Mul(camera.Rotation).Mul(pitch).Normalize()
}

// editorPanSystem slides the editor camera in its view plane while the middle mouse
// button is held.
func editorPanSystem(input *Input, camera *EditorCamera) {
	if !input.Pressed[MouseButtonMiddle] || (input.MouseDeltaX == 0 && input.MouseDeltaY == 0) {
		return
	}
	focus := camera.Position.Add(camera.Forward().Mul(panFocusDistance))
	perPixel := camera.WorldSize(focus, 1, input.WindowHeight)
	right := camera.Rotation.Rotate(geom.Right)
	up := camera.Rotation.Rotate(geom.Up)
	camera.Position = camera.Position.
		Sub(right.Mul(float32(input.MouseDeltaX) * perPixel)).
		Add(up.Mul(float32(input.MouseDeltaY) * perPixel))
}
