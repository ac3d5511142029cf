package lightassist

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/lightassist/geom"
)

type viewportRig struct {
	v      *Viewport
	input  *Input
	camera *EditorCamera
	gizmos *GizmoBuffer
}

func newViewportRig() *viewportRig {
	return &viewportRig{
		v:      NewViewport(DefaultConfig()),
		input:  &Input{WindowWidth: 800, WindowHeight: 600},
		camera: NewEditorCamera(mgl32.Vec3{0, 0, -10}, mgl32.Vec3{}),
		gizmos: &GizmoBuffer{},
	}
}

// frame points the mouse at world point p with the left button in the given state and
// starts a new viewport frame.
func (r *viewportRig) frame(t *testing.T, p mgl32.Vec3, down bool) {
	t.Helper()
	x, y, ok := r.camera.WorldToScreen(p, r.input.WindowWidth, r.input.WindowHeight)
	require.True(t, ok)
	r.input.MoveMouse(x, y)
	r.input.Press(MouseButtonLeft, down)
	r.gizmos.Reset()
	r.v.BeginFrame(r.input, r.camera, r.gizmos)
}

func vecNear(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	assert.True(t, want.ApproxEqualThreshold(got, 1e-3), "want %v, got %v", want, got)
}

func TestViewport_SliderDrag(t *testing.T) {
	r := newViewportRig()
	origin := mgl32.Vec3{}

	r.frame(t, mgl32.Vec3{0.5, 0, 0}, true)
	pos, changed := r.v.Slider(origin, geom.Right, 1)
	assert.False(t, changed)
	assert.Equal(t, origin, pos)
	assert.True(t, r.v.Active())
	assert.True(t, r.v.Captured())

	r.frame(t, mgl32.Vec3{2.5, 0, 0}, true)
	pos, changed = r.v.Slider(origin, geom.Right, 1)
	assert.True(t, changed)
	vecNear(t, mgl32.Vec3{2, 0, 0}, pos)
	assert.False(t, r.v.Captured(), "only the press frame captures")

	r.frame(t, mgl32.Vec3{2.5, 0, 0}, false)
	_, changed = r.v.Slider(pos, geom.Right, 1)
	assert.False(t, changed)
	assert.False(t, r.v.Active())
}

func TestViewport_SliderMiss(t *testing.T) {
	r := newViewportRig()

	r.frame(t, mgl32.Vec3{0, 3, 0}, true)
	_, changed := r.v.Slider(mgl32.Vec3{}, geom.Right, 1)
	assert.False(t, changed)
	assert.False(t, r.v.Active())
	assert.False(t, r.v.Captured())
}

func TestViewport_FirstControlWins(t *testing.T) {
	r := newViewportRig()

	r.frame(t, mgl32.Vec3{0.5, 0, 0}, true)
	r.v.Slider(mgl32.Vec3{}, geom.Right, 1)
	r.v.Slider(mgl32.Vec3{}, geom.Right, 1)

	r.frame(t, mgl32.Vec3{1.5, 0, 0}, true)
	_, first := r.v.Slider(mgl32.Vec3{}, geom.Right, 1)
	_, second := r.v.Slider(mgl32.Vec3{}, geom.Right, 1)
	assert.True(t, first)
	assert.False(t, second)
}

func TestViewport_BlockedRect(t *testing.T) {
	r := newViewportRig()
	x, y, _ := r.camera.WorldToScreen(mgl32.Vec3{0.5, 0, 0}, 800, 600)

	r.frame(t, mgl32.Vec3{0.5, 0, 0}, true)
	r.v.Block(Rect{X: float32(x) - 10, Y: float32(y) - 10, W: 20, H: 20})
	r.v.Slider(mgl32.Vec3{}, geom.Right, 1)
	assert.False(t, r.v.Active())
}

func TestViewport_DiscDrag(t *testing.T) {
	r := newViewportRig()
	rot := mgl32.QuatIdent()

	r.frame(t, mgl32.Vec3{2, 0, 0}, true)
	got, changed := r.v.Disc(rot, mgl32.Vec3{}, geom.Forward, 2)
	assert.False(t, changed)
	assert.True(t, r.v.Active())
	assert.Equal(t, rot, got)

	r.frame(t, mgl32.Vec3{0, 2, 0}, true)
	got, changed = r.v.Disc(rot, mgl32.Vec3{}, geom.Forward, 2)
	require.True(t, changed)
	vecNear(t, geom.Up, got.Rotate(geom.Right))

	// Holding still is not a change.
	r.frame(t, mgl32.Vec3{0, 2, 0}, true)
	_, changed = r.v.Disc(got, mgl32.Vec3{}, geom.Forward, 2)
	assert.False(t, changed)
}

func TestViewport_DrawsHandles(t *testing.T) {
	r := newViewportRig()
	r.frame(t, mgl32.Vec3{5, 5, 0}, false)
	r.v.Slider(mgl32.Vec3{}, geom.Right, 1)
	r.v.Disc(mgl32.QuatIdent(), mgl32.Vec3{}, geom.Forward, 1)

	assert.Equal(t, 1, r.gizmos.Count(GizmoLine))
	assert.Equal(t, 1, r.gizmos.Count(GizmoDot))
	assert.Equal(t, 1, r.gizmos.Count(GizmoWireDisc))
}

func TestViewport_HandleSizeGrowsWithDistance(t *testing.T) {
	r := newViewportRig()
	r.frame(t, mgl32.Vec3{}, false)
	near := r.v.HandleSize(mgl32.Vec3{0, 0, 0})
	far := r.v.HandleSize(mgl32.Vec3{0, 0, 10})
	assert.InDelta(t, 2*near, far, 1e-4)
}

func TestClosestPoints(t *testing.T) {
	tRay, s, d := closestPoints(mgl32.Vec3{0, 0, -10}, geom.Forward, mgl32.Vec3{}, geom.Right)
	assert.InDelta(t, 10, tRay, 1e-5)
	assert.InDelta(t, 0, s, 1e-5)
	assert.InDelta(t, 0, d, 1e-5)

	// Parallel lines fall back to the axis point nearest the ray origin.
	_, s, d = closestPoints(mgl32.Vec3{3, 1, 0}, geom.Right, mgl32.Vec3{}, geom.Right)
	assert.InDelta(t, 3, s, 1e-5)
	assert.InDelta(t, 1, d, 1e-5)
}

func TestRaySphere(t *testing.T) {
	dist, ok := raySphere(mgl32.Vec3{0, 0, -10}, geom.Forward, mgl32.Vec3{}, 1)
	require.True(t, ok)
	assert.InDelta(t, 9, dist, 1e-5)

	_, ok = raySphere(mgl32.Vec3{0, 0, -10}, geom.Forward, mgl32.Vec3{0, 3, 0}, 1)
	assert.False(t, ok)

	_, ok = raySphere(mgl32.Vec3{0, 0, 10}, geom.Forward, mgl32.Vec3{}, 1)
	assert.False(t, ok, "spheres behind the ray are not hit")
}

func TestEditorCamera_ScreenRoundTrip(t *testing.T) {
	cam := NewEditorCamera(mgl32.Vec3{3, 4, -8}, mgl32.Vec3{1, 0, 2})
	p := mgl32.Vec3{1.5, 0.5, 2}
	x, y, ok := cam.WorldToScreen(p, 800, 600)
	require.True(t, ok)

	origin, dir := cam.ScreenToWorldRay(x, y, 800, 600)
	toP := p.Sub(origin).Normalize()
	vecNear(t, toP, dir)

	_, _, ok = cam.WorldToScreen(cam.Position.Sub(cam.Forward()), 800, 600)
	assert.False(t, ok)
}
