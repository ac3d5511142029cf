package handles

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/lightassist/geom"
)

// RadiusHandle edits a sphere radius with six sliders on the rotated axes and draws the
// sphere as three great circles unless handlesOnly is set.
func RadiusHandle(ctx Context, draw Drawer, rotation mgl32.Quat, position mgl32.Vec3, radius float32, handlesOnly bool) (float32, bool) {
	forward := rotation.Rotate(geom.Forward)
	up := rotation.Rotate(geom.Up)
	right := rotation.Rotate(geom.Right)

	changed := false
	for _, dir := range [6]mgl32.Vec3{right, right.Mul(-1), up, up.Mul(-1), forward, forward.Mul(-1)} {
		var moved bool
		radius, moved = SizeSlider(ctx, position, dir, radius)
		changed = changed || moved
	}
	if changed && radius < 0 {
		radius = 0
	}

	if !handlesOnly && draw != nil {
		draw.DrawWireDisc(position, right, radius)
		draw.DrawWireDisc(position, up, radius)
		draw.DrawWireDisc(position, forward, radius)
	}
	return radius, changed
}
