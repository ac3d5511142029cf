package lightassist

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

func (c Color) NRGBA() color.NRGBA {
	u8 := func(v float32) uint8 {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 255
		}
		return uint8(v*255 + 0.5)
	}
	return color.NRGBA{R: u8(c[0]), G: u8(c[1]), B: u8(c[2]), A: u8(c[3])}
}

func (r Rect) bounds() image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.X+r.W+0.5), int(r.Y+r.H+0.5))
}

// RasterizePanel paints the panel's draw list onto dst, clipped to the panel rect.
func RasterizePanel(p *Panel, dst *image.RGBA) {
	clip := p.Rect.bounds().Intersect(dst.Bounds())
	if clip.Empty() {
		return
	}
	target := dst.SubImage(clip).(*image.RGBA)
	face := basicfont.Face7x13

	for _, c := range p.Commands() {
		src := image.NewUniform(c.Color.NRGBA())
		switch c.Kind {
		case PanelFill:
			draw.Draw(target, c.Rect.bounds(), src, image.Point{}, draw.Over)
		case PanelOutline:
			r := c.Rect.bounds()
			for _, edge := range []image.Rectangle{
				image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1),
				image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y),
				image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y),
				image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y),
			} {
				draw.Draw(target, edge, src, image.Point{}, draw.Over)
			}
		case PanelText:
			d := font.Drawer{
				Dst:  target,
				Src:  src,
				Face: face,
				Dot:  fixed.P(int(c.Rect.X), int(c.Rect.Y)+face.Metrics().Ascent.Ceil()),
			}
			d.DrawString(c.Text)
		}
	}
}
