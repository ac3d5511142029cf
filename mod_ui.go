package lightassist

import (
	"image"
)

type UiModule struct{}

// UiFrame holds the registered tool panels and the image they were last rasterized to.
type UiFrame struct {
	Panels []*Panel
	Image  *image.RGBA
}

func (f *UiFrame) Register(p *Panel) {
	f.Panels = append(f.Panels, p)
}

// Blocking returns the rects of the open panels.
func (f *UiFrame) Blocking() []Rect {
	var rects []Rect
	for _, p := range f.Panels {
		if p.Open {
			rects = append(rects, p.Rect)
		}
	}
	return rects
}

func (UiModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&UiFrame{})
	app.UseSystem(System(uiRenderSystem).InStage(Render))
}

func uiRenderSystem(frame *UiFrame, input *Input) {
	if input.WindowWidth <= 0 || input.WindowHeight <= 0 {
		return
	}
	bounds := image.Rect(0, 0, input.WindowWidth, input.WindowHeight)
	if frame.Image == nil || frame.Image.Bounds() != bounds {
		frame.Image = image.NewRGBA(bounds)
	} else {
		clear(frame.Image.Pix)
	}
	for _, p := range frame.Panels {
		if p.Open {
			RasterizePanel(p, frame.Image)
		}
	}
}
