package lightassist

import (
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// WindowState owns the shared GLFW window the editor tools draw into.
type WindowState struct {
	windowGlfw   *glfw.Window
	WindowWidth  int
	WindowHeight int
	windowTitle  string
}

func createWindowState(windowWidth int, windowHeight int, windowTitle string) *WindowState {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		panic(err)
	}

	// Presentation belongs to the host renderer, which brings its own graphics API.
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		panic(err)
	}

	return &WindowState{
		windowGlfw:   win,
		WindowWidth:  windowWidth,
		WindowHeight: windowHeight,
		windowTitle:  windowTitle,
	}
}

func (s *WindowState) ShouldClose() bool {
	return s.windowGlfw.ShouldClose()
}

func (s *WindowState) Destroy() {
	s.windowGlfw.Destroy()
	glfw.Terminate()
}

// PlatformWindowModule creates the shared window resource and stops the app when the
// window is closed. Install is a no-op if a WindowState already exists.
type PlatformWindowModule struct {
	Width  int
	Height int
	Title  string
}

func NewPlatformWindow(cfg WindowConfig) *PlatformWindowModule {
	m := &PlatformWindowModule{Width: cfg.Width, Height: cfg.Height, Title: cfg.Title}
	if m.Width <= 0 {
		m.Width = 1280
	}
	if m.Height <= 0 {
		m.Height = 720
	}
	if m.Title == "" {
		m.Title = "Light Assistant"
	}
	return m
}

func (m PlatformWindowModule) Install(app *App, cmd *Commands) {
	if Resource[WindowState](app) != nil {
		return
	}

	ws := createWindowState(m.Width, m.Height, m.Title)
	cmd.AddResources(ws)
	app.Logger().Infof("Created shared window (%dx%d) '%s'", m.Width, m.Height, m.Title)

	app.UseSystem(System(windowCloseSystem).InStage(Finale))
}

func windowCloseSystem(cmd *Commands, s *WindowState) {
	if s.ShouldClose() {
		cmd.Exit()
	}
}
