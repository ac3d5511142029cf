package handles

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/lightassist/geom"
)

// PositionHandle drags position along the three axes of rotation.
func PositionHandle(ctx Context, position mgl32.Vec3, rotation mgl32.Quat) (mgl32.Vec3, bool) {
	size := ctx.HandleSize(position)
	changed := false
	for _, axis := range [3]mgl32.Vec3{geom.Right, geom.Up, geom.Forward} {
		var moved bool
		position, moved = ctx.Slider(position, rotation.Rotate(axis), size)
		changed = changed || moved
	}
	return position, changed
}

// RotationHandle spins rotation around its own three axes.
func RotationHandle(ctx Context, rotation mgl32.Quat, position mgl32.Vec3) (mgl32.Quat, bool) {
	size := ctx.HandleSize(position)
	changed := false
	for _, axis := range [3]mgl32.Vec3{geom.Right, geom.Up, geom.Forward} {
		var moved bool
		rotation, moved = ctx.Disc(rotation, position, rotation.Rotate(axis), size)
		changed = changed || moved
	}
	return rotation.Normalize(), changed
}

// TransformHandle combines the position and rotation handles.
func TransformHandle(ctx Context, position mgl32.Vec3, rotation mgl32.Quat) (mgl32.Vec3, mgl32.Quat, bool) {
	position, moved := PositionHandle(ctx, position, rotation)
	rotation, spun := RotationHandle(ctx, rotation, position)
	return position, rotation, moved || spun
}

// DirectionalRays returns eight parallel rays that show a directional light's heading,
// starting on a ring of radius handleSize/4 around the light and running handleSize
// along its forward axis.
func DirectionalRays(transform geom.Transform, handleSize float32) [8][2]mgl32.Vec3 {
	var rays [8][2]mgl32.Vec3
	forward := transform.Forward()
	for i := range rays {
		spin := mgl32.QuatRotate(mgl32.DegToRad(float32(i)*360/8), geom.Forward)
		p := transform.TransformPoint(spin.Rotate(geom.Up.Mul(handleSize * 0.25)))
		rays[i] = [2]mgl32.Vec3{p, p.Add(forward.Mul(handleSize))}
	}
	return rays
}
