// Package handles turns pointer drags on viewport handles into light shape edits.
//
// The math here never touches scene objects: every function takes plain values,
// returns the updated values plus a changed flag, and leaves committing and undo
// recording to the caller.
package handles

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// MinRange is the smallest range a committed light may have.
	MinRange float32 = 0.01
	// MaxSpotAngle is the widest full cone angle in degrees.
	MaxSpotAngle float32 = 179

	// sliderCapScale sizes the dot cap of a 1-D slider relative to the handle size.
	sliderCapScale float32 = 0.03
)

// Context is the interactive surface handles live on.
type Context interface {
	// HandleSize returns a world-space size that appears constant on screen at position.
	HandleSize(position mgl32.Vec3) float32
	// Slider lets the user drag position along direction. The returned position is the
	// input position when nothing moved.
	Slider(position, direction mgl32.Vec3, size float32) (mgl32.Vec3, bool)
	// Disc lets the user spin rotation around axis with a ring of radius size centred at position.
	Disc(rotation mgl32.Quat, position, axis mgl32.Vec3, size float32) (mgl32.Quat, bool)
}

// Drawer receives the wireframe feedback of a handle.
type Drawer interface {
	DrawLine(a, b mgl32.Vec3)
	DrawWireDisc(center, normal mgl32.Vec3, radius float32)
}

// ClampRange floors a committed range.
func ClampRange(r float32) float32 {
	if r < MinRange {
		return MinRange
	}
	return r
}

// ClampSpotAngle keeps a committed cone angle inside [0, MaxSpotAngle].
// NaN passes through untouched.
func ClampSpotAngle(a float32) float32 {
	return mgl32.Clamp(a, 0, MaxSpotAngle)
}

// ClampCone applies both commit clamps.
func ClampCone(c Cone) Cone {
	return Cone{Angle: ClampSpotAngle(c.Angle), Range: ClampRange(c.Range)}
}
