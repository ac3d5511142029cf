package lightassist

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/lightassist/geom"
)

// EditorCamera is the scene view camera. It looks down its local +Z axis.
type EditorCamera struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Fov      float32 // vertical, degrees
}

func NewEditorCamera(position mgl32.Vec3, target mgl32.Vec3) *EditorCamera {
	cam := &EditorCamera{Position: position, Rotation: mgl32.QuatIdent(), Fov: 60}
	cam.LookAt(target)
	return cam
}

func (c *EditorCamera) Forward() mgl32.Vec3 { return c.Rotation.Rotate(geom.Forward) }

// LookAt turns the camera to face target while keeping world up.
func (c *EditorCamera) LookAt(target mgl32.Vec3) {
	dir := target.Sub(c.Position)
	if dir.Len() < 1e-6 {
		return
	}
	dir = dir.Normalize()
	yaw := math.Atan2(float64(dir.X()), float64(dir.Z()))
	pitch := -math.Asin(float64(mgl32.Clamp(dir.Y(), -1, 1)))
	c.Rotation = mgl32.QuatRotate(float32(yaw), geom.Up).
		Mul(mgl32.QuatRotate(float32(pitch), geom.Right)).
		Normalize()
}

// AlignTo moves the camera onto an object's pose so it looks along the object's forward.
func (c *EditorCamera) AlignTo(tr TransformComponent) {
	g := tr.Geom()
	c.Position = g.Position
	c.Rotation = g.Rotation
}

func (c *EditorCamera) tanHalfFov() float32 {
	fov := c.Fov
	if fov <= 0 {
		fov = 60
	}
	return float32(math.Tan(float64(mgl32.DegToRad(fov)) / 2))
}

// ScreenToWorldRay returns a ray through pixel (x, y) of a width x height viewport.
func (c *EditorCamera) ScreenToWorldRay(x, y float64, width, height int) (mgl32.Vec3, mgl32.Vec3) {
	if width <= 0 || height <= 0 {
		return c.Position, c.Forward()
	}
	aspect := float32(width) / float32(height)
	t := c.tanHalfFov()
	ndcX := float32(2*x/float64(width) - 1)
	ndcY := float32(1 - 2*y/float64(height))

	local := mgl32.Vec3{ndcX * t * aspect, ndcY * t, 1}
	return c.Position, c.Rotation.Rotate(local).Normalize()
}

// WorldToScreen projects p to pixel coordinates. ok is false behind the camera.
func (c *EditorCamera) WorldToScreen(p mgl32.Vec3, width, height int) (x, y float64, ok bool) {
	local := c.Rotation.Conjugate().Rotate(p.Sub(c.Position))
	if local.Z() <= 1e-6 || width <= 0 || height <= 0 {
		return 0, 0, false
	}
	aspect := float32(width) / float32(height)
	t := c.tanHalfFov()
	ndcX := local.X() / (local.Z() * t * aspect)
	ndcY := local.Y() / (local.Z() * t)
	x = float64(ndcX+1) / 2 * float64(width)
	y = float64(1-ndcY) / 2 * float64(height)
	return x, y, true
}

// WorldSize is the world-space length that covers pixels on screen at p.
func (c *EditorCamera) WorldSize(p mgl32.Vec3, pixels float32, height int) float32 {
	depth := c.Rotation.Conjugate().Rotate(p.Sub(c.Position)).Z()
	if depth < 1e-3 {
		depth = 1e-3
	}
	if height <= 0 {
		return depth * 0.1
	}
	return 2 * depth * c.tanHalfFov() * pixels / float32(height)
}
