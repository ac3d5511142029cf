package handles

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/lightassist/geom"
)

// Cone is a spot light's shape. Angle is the full cone angle in degrees.
type Cone struct {
	Angle float32
	Range float32
}

// DiscRadius is the displayed radius of the cone's far disc.
func DiscRadius(angle, actualRange, angleScale float32) float32 {
	half := float64(mgl32.DegToRad(angle)) / 2
	return actualRange * float32(math.Tan(half)) * angleScale
}

// AngleFromDisc recovers the full cone angle from a far disc radius, clamped to
// [0, MaxSpotAngle]. actualRange*angleScale must be non-zero; zero gives NaN or the clamp
// bound depending on disc.
func AngleFromDisc(disc, actualRange, angleScale float32) float32 {
	rad := math.Atan(float64(disc) / float64(actualRange*angleScale))
	return ClampSpotAngle(float32(rad*180/math.Pi) * 2)
}

// RangeFromSlider converts a dragged handle distance back to a light range.
func RangeFromSlider(actualRange, rangeScale float32) float32 {
	return float32(math.Max(0, float64(actualRange/rangeScale)))
}

// ConeHandle shows a range slider at the cone's far centre and four disc sliders on
// its rim, and returns the edited cone. draw may be nil when handlesOnly is set.
func ConeHandle(ctx Context, draw Drawer, rotation mgl32.Quat, position mgl32.Vec3, cone Cone, angleScale, rangeScale float32, handlesOnly bool) (Cone, bool) {
	actualRange := cone.Range * rangeScale

	forward := rotation.Rotate(geom.Forward)
	up := rotation.Rotate(geom.Up)
	right := rotation.Rotate(geom.Right)

	changed := false

	var rangeMoved bool
	actualRange, rangeMoved = SizeSlider(ctx, position, forward, actualRange)
	if rangeMoved {
		cone.Range = RangeFromSlider(actualRange, rangeScale)
		changed = true
	}

	center := position.Add(forward.Mul(actualRange))
	disc := DiscRadius(cone.Angle, actualRange, angleScale)
	discMoved := false
	for _, dir := range [4]mgl32.Vec3{up, up.Mul(-1), right, right.Mul(-1)} {
		var moved bool
		disc, moved = SizeSlider(ctx, center, dir, disc)
		discMoved = discMoved || moved
	}
	if discMoved {
		cone.Angle = AngleFromDisc(disc, actualRange, angleScale)
		changed = true
	}

	if !handlesOnly && draw != nil {
		draw.DrawLine(position, center.Add(up.Mul(disc)))
		draw.DrawLine(position, center.Sub(up.Mul(disc)))
		draw.DrawLine(position, center.Add(right.Mul(disc)))
		draw.DrawLine(position, center.Sub(right.Mul(disc)))
		draw.DrawWireDisc(center, forward, disc)
	}

	return cone, changed
}
