package handles

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Project returns the scalar projection of (position - anchor) onto direction.
func Project(anchor, direction, position mgl32.Vec3) float32 {
	return position.Sub(anchor).Dot(direction)
}

// SizeSlider places a dot marker at anchor + direction*magnitude and returns the
// magnitude the user dragged it to.
func SizeSlider(ctx Context, anchor, direction mgl32.Vec3, magnitude float32) (float32, bool) {
	position := anchor.Add(direction.Mul(magnitude))
	size := ctx.HandleSize(position)
	moved, changed := ctx.Slider(position, direction, size*sliderCapScale)
	if changed {
		magnitude = Project(anchor, direction, moved)
	}
	return magnitude, changed
}
