package geom

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestIsOutOfRange_PointLight(t *testing.T) {
	light := LightVolume{
		Type:      LightTypePoint,
		Transform: NewTransform(mgl32.Vec3{0, 0, 0}, mgl32.QuatIdent()),
		Range:     10,
	}

	tests := []struct {
		name   string
		target mgl32.Vec3
		out    bool
	}{
		{"inside", mgl32.Vec3{1, 2, 3}, false},
		{"exactly on boundary", mgl32.Vec3{6, 8, 0}, false},
		{"on boundary along axis", mgl32.Vec3{0, 0, -10}, false},
		{"just outside", mgl32.Vec3{0, 10.01, 0}, true},
		{"far away", mgl32.Vec3{100, 0, 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.out, IsOutOfRange(light, tt.target))
		})
	}
}

func TestIsOutOfRange_SpotLight(t *testing.T) {
	light := LightVolume{
		Type:      LightTypeSpot,
		Transform: NewTransform(mgl32.Vec3{0, 0, 0}, mgl32.QuatIdent()),
		Range:     10,
		SpotAngle: 60,
	}

	assert.False(t, IsOutOfRange(light, mgl32.Vec3{0, 0, 5}), "on axis and within range")
	assert.True(t, IsOutOfRange(light, mgl32.Vec3{3, 0, 5}), "about 31 degrees off axis")
	assert.False(t, IsOutOfRange(light, mgl32.Vec3{2, 0, 5}), "about 22 degrees off axis")
	assert.True(t, IsOutOfRange(light, mgl32.Vec3{0, 0, 11}), "on axis but beyond range")
	assert.True(t, IsOutOfRange(light, mgl32.Vec3{0, 0, -5}), "behind the light")
	assert.False(t, IsOutOfRange(light, mgl32.Vec3{0, 0, 0}), "at the apex")
}

func TestIsOutOfRange_SpotLightUsesLocalSpace(t *testing.T) {
	// Facing +X after a 90 degree turn around Y.
	rot := mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0})
	light := LightVolume{
		Type:      LightTypeSpot,
		Transform: NewTransform(mgl32.Vec3{1, 0, 0}, rot),
		Range:     10,
		SpotAngle: 60,
	}

	assert.False(t, IsOutOfRange(light, mgl32.Vec3{6, 0, 0}))
	assert.True(t, IsOutOfRange(light, mgl32.Vec3{1, 0, 5}))
}

func TestIsOutOfRange_DirectionalNeverOut(t *testing.T) {
	for _, lt := range []LightType{LightTypeDirectional, LightTypeAmbient} {
		light := LightVolume{Type: lt, Transform: NewTransform(mgl32.Vec3{}, mgl32.QuatIdent()), Range: 0.01}
		assert.False(t, IsOutOfRange(light, mgl32.Vec3{1000, -1000, 1000}), lt.String())
	}
}

func TestAngle(t *testing.T) {
	assert.InDelta(t, 90, Angle(mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}), 1e-4)
	assert.InDelta(t, 180, Angle(mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 0, -3}), 1e-4)
	assert.InDelta(t, 45, Angle(mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 1}), 1e-4)
	assert.Equal(t, float32(0), Angle(mgl32.Vec3{0, 0, 1}, mgl32.Vec3{}))
}

func TestTransform_InverseRoundTrip(t *testing.T) {
	tr := Transform{
		Position: mgl32.Vec3{3, -2, 7},
		Rotation: mgl32.QuatRotate(mgl32.DegToRad(37), mgl32.Vec3{1, 1, 0}.Normalize()),
		Scale:    mgl32.Vec3{2, 1, 0.5},
	}
	p := mgl32.Vec3{1, 2, 3}

	back := tr.InverseTransformPoint(tr.TransformPoint(p))
	assert.True(t, back.ApproxEqualThreshold(p, 1e-4), "got %v", back)

	m := tr.ObjectToWorld()
	viaMatrix := m.Mul4x1(p.Vec4(1)).Vec3()
	assert.True(t, viaMatrix.ApproxEqualThreshold(tr.TransformPoint(p), 1e-4))
}
