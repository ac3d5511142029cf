package lightassist

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	KeyY int = iota
	KeyZ
	KeyF1
	KeyF2
	KeyEscape
	KeyDelete
	KeyShift
	KeyControl
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle

	inputSlots
)

type InputModule struct{}

// Input is the per-frame snapshot of keyboard and mouse state.
type Input struct {
	Pressed      [inputSlots]bool
	JustPressed  [inputSlots]bool
	JustReleased [inputSlots]bool

	MouseX, MouseY           float64
	MouseDeltaX, MouseDeltaY float64
	ScrollY                  float64

	WindowWidth, WindowHeight int

	pendingScroll float64
}

// Press sets a button's state for this frame and derives the edge flags from the
// previous frame.
func (input *Input) Press(button int, down bool) {
	input.JustPressed[button] = down && !input.Pressed[button]
	input.JustReleased[button] = !down && input.Pressed[button]
	input.Pressed[button] = down
}

// MoveMouse records the cursor position and the delta since the last frame.
func (input *Input) MoveMouse(x, y float64) {
	input.MouseDeltaX = x - input.MouseX
	input.MouseDeltaY = y - input.MouseY
	input.MouseX = x
	input.MouseY = y
}

func (mod InputModule) Install(app *App, cmd *Commands) {
	input := &Input{}
	cmd.AddResources(input)

	// Without a window the Input resource is driven by hand (tests, embedding hosts).
	ws := Resource[WindowState](app)
	if ws == nil {
		return
	}
	ws.windowGlfw.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		input.pendingScroll += yoff
	})
	app.UseSystem(System(inputSystem).InStage(Prelude))
}

func inputSystem(s *WindowState, input *Input) {
	glfw.PollEvents()

	for key, glfwKey := range keyToGlfw {
		input.Press(key, s.windowGlfw.GetKey(glfwKey) == glfw.Press)
	}
	for btn, glfwBtn := range mouseToGlfw {
		input.Press(btn, s.windowGlfw.GetMouseButton(glfwBtn) == glfw.Press)
	}

	input.MoveMouse(s.windowGlfw.GetCursorPos())
	input.WindowWidth, input.WindowHeight = s.windowGlfw.GetSize()

	input.ScrollY = input.pendingScroll
	input.pendingScroll = 0
}

var keyToGlfw = map[int]glfw.Key{
	KeyY:       glfw.KeyY,
	KeyZ:       glfw.KeyZ,
	KeyF1:      glfw.KeyF1,
	KeyF2:      glfw.KeyF2,
	KeyEscape:  glfw.KeyEscape,
	KeyDelete:  glfw.KeyDelete,
	KeyShift:   glfw.KeyLeftShift,
	KeyControl: glfw.KeyLeftControl,
}

var mouseToGlfw = map[int]glfw.MouseButton{
	MouseButtonLeft:   glfw.MouseButtonLeft,
	MouseButtonRight:  glfw.MouseButtonRight,
	MouseButtonMiddle: glfw.MouseButtonMiddle,
}
