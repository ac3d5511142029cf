package lightassist

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/lightassist/geom"
)

type TransformComponent struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

func NewTransformComponent(position mgl32.Vec3, rotation mgl32.Quat) *TransformComponent {
	return &TransformComponent{
		Position: position,
		Rotation: rotation,
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// Geom returns a value copy usable by the pure geometry packages. A zero scale is
// treated as unit scale.
func (t TransformComponent) Geom() geom.Transform {
	g := geom.Transform{Position: t.Position, Rotation: t.Rotation, Scale: t.Scale}
	if g.Scale == (mgl32.Vec3{}) {
		g.Scale = mgl32.Vec3{1, 1, 1}
	}
	if g.Rotation == (mgl32.Quat{}) {
		g.Rotation = mgl32.QuatIdent()
	}
	return g
}

func (t TransformComponent) Forward() mgl32.Vec3 { return t.Geom().Forward() }

type NameComponent struct {
	Name string
}

func entityName(cmd *Commands, eid EntityId) string {
	if n := GetComponent[NameComponent](cmd, eid); n != nil && n.Name != "" {
		return n.Name
	}
	return fmt.Sprintf("Entity %d", eid)
}
