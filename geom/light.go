package geom

import (
	"github.com/go-gl/mathgl/mgl32"
)

type LightType uint32

const (
	LightTypePoint       LightType = 0
	LightTypeDirectional LightType = 1
	LightTypeSpot        LightType = 2
	LightTypeAmbient     LightType = 3
)

var lightTypeNames = [...]string{"Point", "Directional", "Spot", "Ambient"}

func (t LightType) String() string {
	if int(t) < len(lightTypeNames) {
		return lightTypeNames[t]
	}
	return "Unknown"
}

// LightVolume is the part of a light that decides what it can reach.
// SpotAngle is the full cone angle in degrees.
type LightVolume struct {
	Type      LightType
	Transform Transform
	Range     float32
	SpotAngle float32
}

// IsOutOfRange reports whether target lies outside the light's illumination volume.
// Point lights use a sphere of radius Range; spot lights additionally require the
// target to sit inside the cone. Any other light type never puts a target out of range.
func IsOutOfRange(light LightVolume, target mgl32.Vec3) bool {
	switch light.Type {
	case LightTypePoint:
		return target.Sub(light.Transform.Position).Len() > light.Range
	case LightTypeSpot:
		if target.Sub(light.Transform.Position).Len() > light.Range {
			return true
		}
		local := light.Transform.InverseTransformPoint(target)
		return Angle(Forward, local) > light.SpotAngle*0.5
	default:
		return false
	}
}
