package handles

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject_InvariantUnderRigidTransform(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	randVec := func(scale float32) mgl32.Vec3 {
		return mgl32.Vec3{
			(rng.Float32()*2 - 1) * scale,
			(rng.Float32()*2 - 1) * scale,
			(rng.Float32()*2 - 1) * scale,
		}
	}

	for i := 0; i < 200; i++ {
		anchor := randVec(50)
		direction := randVec(1).Normalize()
		position := randVec(50)
		want := Project(anchor, direction, position)

		rot := mgl32.QuatRotate(rng.Float32()*6.28, randVec(1).Normalize())
		shift := randVec(100)
		move := func(p mgl32.Vec3) mgl32.Vec3 { return rot.Rotate(p).Add(shift) }

		got := Project(move(anchor), rot.Rotate(direction), move(position))
		assert.InDelta(t, want, got, 1e-2, "case %d", i)
	}
}

func TestSizeSlider_PlacesMarkerAndProjects(t *testing.T) {
	ctx := newFakeContext()
	ctx.size = 2
	anchor := mgl32.Vec3{1, 1, 1}
	dir := mgl32.Vec3{0, 1, 0}

	r, changed := SizeSlider(ctx, anchor, dir, 4)
	assert.False(t, changed)
	assert.Equal(t, float32(4), r)
	require.Len(t, ctx.seen, 1)
	assert.Equal(t, mgl32.Vec3{1, 5, 1}, ctx.seen[0])
	assert.InDelta(t, 2*sliderCapScale, ctx.sizes[0], 1e-6)
}

func TestSizeSlider_OffAxisDragOnlyCountsAxisComponent(t *testing.T) {
	ctx := newFakeContext()
	ctx.drag = 0
	ctx.offset = mgl32.Vec3{5, -1.5, 3}

	r, changed := SizeSlider(ctx, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, 4)
	require.True(t, changed)
	assert.InDelta(t, 2.5, r, 1e-6)
}

func TestSizeSlider_CanGoNegative(t *testing.T) {
	ctx := newFakeContext()
	ctx.drag = 0
	ctx.offset = mgl32.Vec3{0, 0, -10}

	r, changed := SizeSlider(ctx, mgl32.Vec3{}, mgl32.Vec3{0, 0, 1}, 4)
	require.True(t, changed)
	assert.InDelta(t, -6, r, 1e-6)
}
