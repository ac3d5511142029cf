package handles

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/lightassist/geom"
)

func TestRadiusHandle_SixSlidersAndThreeCircles(t *testing.T) {
	ctx := newFakeContext()
	draw := &fakeDrawer{}

	r, changed := RadiusHandle(ctx, draw, mgl32.QuatIdent(), mgl32.Vec3{}, 3, false)

	assert.False(t, changed)
	assert.Equal(t, float32(3), r)
	assert.Equal(t, 6, ctx.calls)
	require.Len(t, draw.discs, 3)
	for _, d := range draw.discs {
		assert.Equal(t, float32(3), d.radius)
	}
}

func TestRadiusHandle_DragGrowsAndFloorsAtZero(t *testing.T) {
	ctx := newFakeContext()
	ctx.drag = 3 // -up
	ctx.offset = mgl32.Vec3{0, -2, 0}

	r, changed := RadiusHandle(ctx, nil, mgl32.QuatIdent(), mgl32.Vec3{}, 3, true)
	require.True(t, changed)
	assert.InDelta(t, 5, r, 1e-6)

	ctx = newFakeContext()
	ctx.drag = 0
	ctx.offset = mgl32.Vec3{-100, 0, 0}
	r, changed = RadiusHandle(ctx, nil, mgl32.QuatIdent(), mgl32.Vec3{}, 3, true)
	require.True(t, changed)
	assert.Equal(t, float32(0), r)
}

func TestTransformHandle(t *testing.T) {
	ctx := newFakeContext()
	ctx.drag = 2 // forward slider
	ctx.offset = mgl32.Vec3{0, 0, 4}

	pos, rot, changed := TransformHandle(ctx, mgl32.Vec3{1, 0, 0}, mgl32.QuatIdent())
	require.True(t, changed)
	assert.Equal(t, mgl32.Vec3{1, 0, 4}, pos)
	assert.True(t, rot.ApproxEqual(mgl32.QuatIdent()))
	assert.Equal(t, 6, ctx.calls)
	assert.Equal(t, 3, ctx.discs)

	ctx = newFakeContext()
	ctx.drag = 4 // spin around up
	ctx.spin = mgl32.DegToRad(90)
	_, rot, changed = TransformHandle(ctx, mgl32.Vec3{}, mgl32.QuatIdent())
	require.True(t, changed)
	assert.True(t, rot.Rotate(geom.Forward).ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, 1e-5))
}

func TestDirectionalRays(t *testing.T) {
	tr := geom.NewTransform(mgl32.Vec3{0, 5, 0}, mgl32.QuatIdent())
	rays := DirectionalRays(tr, 4)

	for i, ray := range rays {
		offset := ray[0].Sub(tr.Position)
		assert.InDelta(t, 1, offset.Len(), 1e-5, "ray %d starts on the ring", i)
		assert.InDelta(t, 0, offset.Z(), 1e-5, "ray %d ring is across forward", i)
		assert.True(t, ray[1].Sub(ray[0]).ApproxEqualThreshold(mgl32.Vec3{0, 0, 4}, 1e-5), "ray %d", i)
	}
	assert.True(t, rays[0][0].ApproxEqualThreshold(mgl32.Vec3{0, 6, 0}, 1e-5))
}
