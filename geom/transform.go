package geom

import (
	"github.com/go-gl/mathgl/mgl32"
)

var (
	Forward = mgl32.Vec3{0, 0, 1}
	Up      = mgl32.Vec3{0, 1, 0}
	Right   = mgl32.Vec3{1, 0, 0}
)

// Transform is a value copy of an object's placement in the world.
// Local forward is +Z, up is +Y and right is +X.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

func NewTransform(position mgl32.Vec3, rotation mgl32.Quat) Transform {
	return Transform{
		Position: position,
		Rotation: rotation,
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

func (t Transform) Forward() mgl32.Vec3 { return t.Rotation.Rotate(Forward) }
func (t Transform) Up() mgl32.Vec3      { return t.Rotation.Rotate(Up) }
func (t Transform) Right() mgl32.Vec3   { return t.Rotation.Rotate(Right) }

// TransformPoint maps p from local space to world space (scale, rotate, translate).
func (t Transform) TransformPoint(p mgl32.Vec3) mgl32.Vec3 {
	scaled := mgl32.Vec3{p.X() * t.Scale.X(), p.Y() * t.Scale.Y(), p.Z() * t.Scale.Z()}
	return t.Position.Add(t.Rotation.Rotate(scaled))
}

// InverseTransformPoint maps p from world space to local space.
func (t Transform) InverseTransformPoint(p mgl32.Vec3) mgl32.Vec3 {
	local := t.Rotation.Conjugate().Rotate(p.Sub(t.Position))
	return mgl32.Vec3{
		safeDiv(local.X(), t.Scale.X()),
		safeDiv(local.Y(), t.Scale.Y()),
		safeDiv(local.Z(), t.Scale.Z()),
	}
}

// ObjectToWorld builds M = T * R * S.
func (t Transform) ObjectToWorld() mgl32.Mat4 {
	translate := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	scale := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())
	return translate.Mul4(t.Rotation.Mat4()).Mul4(scale)
}

// a zero scale axis collapses to zero instead of producing Inf
func safeDiv(v, s float32) float32 {
	if s == 0 {
		return 0
	}
	return v / s
}
