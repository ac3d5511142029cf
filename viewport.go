package lightassist

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// pickPixels is how close, on screen, the cursor must be to a handle to grab it.
const pickPixels = 8

// Viewport is the scene view's handle surface. Controls are identified by the order
// they are drawn in each frame; the one under the cursor on mouse down becomes hot and
// keeps the mouse until the button is released.
type Viewport struct {
	Camera *EditorCamera

	input  *Input
	gizmos *GizmoBuffer

	handlePixels float32
	handleColor  Color
	hotColor     Color

	blocked     []Rect
	nextControl int
	hotControl  int
	captured    bool

	// slider drag
	grabOffset float32
	// disc drag
	dragAxis     mgl32.Vec3
	dragStartVec mgl32.Vec3
	dragStartRot mgl32.Quat
	lastAngle    float32
}

func NewViewport(cfg Config) *Viewport {
	return &Viewport{
		handlePixels: cfg.HandlePixels,
		handleColor:  cfg.Colors.Handle,
		hotColor:     cfg.Colors.HotHandle,
	}
}

// BeginFrame resets control numbering and drops the hot control once the mouse is up.
func (v *Viewport) BeginFrame(input *Input, camera *EditorCamera, gizmos *GizmoBuffer) {
	v.input = input
	v.Camera = camera
	v.gizmos = gizmos
	v.nextControl = 0
	v.captured = false
	v.blocked = v.blocked[:0]
	if !input.Pressed[MouseButtonLeft] {
		v.hotControl = 0
	}
}

// Block keeps handles from grabbing mouse presses inside r (e.g. an open tool panel).
func (v *Viewport) Block(r Rect) {
	v.blocked = append(v.blocked, r)
}

// Active reports whether a handle is being dragged.
func (v *Viewport) Active() bool { return v.hotControl != 0 }

// Captured reports whether a handle grabbed this frame's mouse press.
func (v *Viewport) Captured() bool { return v.captured }

func (v *Viewport) HandleSize(position mgl32.Vec3) float32 {
	if v.Camera == nil || v.input == nil {
		return 1
	}
	return v.Camera.WorldSize(position, v.handlePixels, v.input.WindowHeight)
}

func (v *Viewport) pickTolerance(position mgl32.Vec3) float32 {
	return v.Camera.WorldSize(position, pickPixels, v.input.WindowHeight)
}

func (v *Viewport) control() int {
	v.nextControl++
	return v.nextControl
}

func (v *Viewport) ray() (mgl32.Vec3, mgl32.Vec3) {
	return v.Camera.ScreenToWorldRay(v.input.MouseX, v.input.MouseY, v.input.WindowWidth, v.input.WindowHeight)
}

func (v *Viewport) pressAvailable() bool {
	if v.input == nil || v.Camera == nil || !v.input.JustPressed[MouseButtonLeft] || v.hotControl != 0 {
		return false
	}
	for _, r := range v.blocked {
		if r.Contains(float32(v.input.MouseX), float32(v.input.MouseY)) {
			return false
		}
	}
	return true
}

func (v *Viewport) color(id int) Color {
	if id == v.hotControl {
		return v.hotColor
	}
	return v.handleColor
}

// Slider drags position along direction. The grabbable part spans from position to
// position + direction*size and is drawn as a shaft with a dot at the end.
func (v *Viewport) Slider(position, direction mgl32.Vec3, size float32) (mgl32.Vec3, bool) {
	id := v.control()
	if v.Camera == nil || v.input == nil {
		return position, false
	}
	origin, dir := v.ray()

	if v.pressAvailable() {
		tip := position.Add(direction.Mul(size))
		if raySegmentDistance(origin, dir, position, tip) <= v.pickTolerance(position) {
			_, s, _ := closestPoints(origin, dir, position, direction)
			v.hotControl = id
			v.captured = true
			v.grabOffset = s
		}
	}

	changed := false
	if v.hotControl == id {
		_, s, _ := closestPoints(origin, dir, position, direction)
		delta := s - v.grabOffset
		if math.Abs(float64(delta)) > 1e-6 {
			position = position.Add(direction.Mul(delta))
			changed = true
		}
	}

	if v.gizmos != nil {
		v.gizmos.Color = v.color(id)
		tip := position.Add(direction.Mul(size))
		if size > v.HandleSize(position)*0.1 {
			v.gizmos.DrawLine(position, tip)
		}
		v.gizmos.DrawDot(tip, v.pickTolerance(tip))
	}
	return position, changed
}

// Disc spins rotation around axis with a ring of radius size.
func (v *Viewport) Disc(rotation mgl32.Quat, position, axis mgl32.Vec3, size float32) (mgl32.Quat, bool) {
	id := v.control()
	if v.Camera == nil || v.input == nil {
		return rotation, false
	}
	origin, dir := v.ray()

	if v.pressAvailable() {
		if hit, ok := rayPlane(origin, dir, position, axis); ok {
			dist := hit.Sub(position).Len()
			if math.Abs(float64(dist-size)) <= float64(v.pickTolerance(position)) {
				v.hotControl = id
				v.captured = true
				v.dragAxis = axis
				v.dragStartVec = hit.Sub(position).Normalize()
				v.dragStartRot = rotation
				v.lastAngle = 0
			}
		}
	}

	changed := false
	if v.hotControl == id {
		if hit, ok := rayPlane(origin, dir, position, v.dragAxis); ok && hit.Sub(position).Len() > 1e-6 {
			current := hit.Sub(position).Normalize()
			cosTheta := mgl32.Clamp(current.Dot(v.dragStartVec), -1.0, 1.0)
			angle := float32(math.Acos(float64(cosTheta)))
			if v.dragStartVec.Cross(current).Dot(v.dragAxis) < 0 {
				angle = -angle
			}
			if math.Abs(float64(angle-v.lastAngle)) > 1e-6 {
				v.lastAngle = angle
				rotation = mgl32.QuatRotate(angle, v.dragAxis).Mul(v.dragStartRot).Normalize()
				changed = true
			}
		}
	}

	if v.gizmos != nil {
		v.gizmos.Color = v.color(id)
		v.gizmos.DrawWireDisc(position, axis, size)
	}
	return rotation, changed
}

// closestPoints returns the ray parameter t, the axis parameter s, and the distance
// between the closest points of the ray ro+t*rd and the line ao+s*ad.
func closestPoints(ro, rd, ao, ad mgl32.Vec3) (float32, float32, float32) {
	r := ro.Sub(ao)
	a := rd.Dot(rd)
	b := rd.Dot(ad)
	e := ad.Dot(ad)
	f := ad.Dot(r)

	det := a*e - b*b
	if det < 1e-6 {
		return 0, f / e, r.Sub(ad.Mul(f / e)).Len()
	}

	c := rd.Dot(r)
	t := (b*f - c*e) / det
	s := (a*f - b*c) / det

	p1 := ro.Add(rd.Mul(t))
	p2 := ao.Add(ad.Mul(s))
	return t, s, p1.Sub(p2).Len()
}

func rayPointDistance(ro, rd, p mgl32.Vec3) float32 {
	t := p.Sub(ro).Dot(rd) / rd.Dot(rd)
	if t < 0 {
		t = 0
	}
	return ro.Add(rd.Mul(t)).Sub(p).Len()
}

func raySegmentDistance(ro, rd, a, b mgl32.Vec3) float32 {
	ab := b.Sub(a)
	length := ab.Len()
	if length < 1e-6 {
		return rayPointDistance(ro, rd, a)
	}
	t, s, d := closestPoints(ro, rd, a, ab.Mul(1/length))
	if s < 0 || s > length || t < 0 {
		return float32(math.Min(float64(rayPointDistance(ro, rd, a)), float64(rayPointDistance(ro, rd, b))))
	}
	return d
}

func rayPlane(ro, rd, point, normal mgl32.Vec3) (mgl32.Vec3, bool) {
	denom := rd.Dot(normal)
	if math.Abs(float64(denom)) < 1e-6 {
		return mgl32.Vec3{}, false
	}
	t := point.Sub(ro).Dot(normal) / denom
	if t < 0 {
		return mgl32.Vec3{}, false
	}
	return ro.Add(rd.Mul(t)), true
}

// raySphere returns the distance along a unit ray to a sphere, if hit.
func raySphere(ro, rd, center mgl32.Vec3, radius float32) (float32, bool) {
	oc := ro.Sub(center)
	b := oc.Dot(rd)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	t := -b - float32(math.Sqrt(float64(disc)))
	if t < 0 {
		t = -b + float32(math.Sqrt(float64(disc)))
	}
	return t, t >= 0
}

type ViewportModule struct {
	Config Config
}

func (m ViewportModule) Install(app *App, cmd *Commands) {
	if Resource[EditorCamera](app) == nil {
		cmd.AddResources(NewEditorCamera(mgl32.Vec3{0, 5, -15}, mgl32.Vec3{}))
	}
	cmd.AddResources(NewViewport(m.Config))

	app.UseSystem(System(viewportBeginSystem).InStage(PreUpdate))
	app.UseSystem(System(viewportPickSystem).InStage(PostUpdate))
}

func viewportBeginSystem(v *Viewport, input *Input, camera *EditorCamera, gizmos *GizmoBuffer, frame *UiFrame) {
	v.BeginFrame(input, camera, gizmos)
	for _, r := range frame.Blocking() {
		v.Block(r)
	}
}

// viewportPickSystem selects the nearest renderer under the cursor on a click that no
// handle or panel took. Control adds to the selection; clicking empty space clears it.
func viewportPickSystem(cmd *Commands, v *Viewport, input *Input, selection *Selection) {
	if !v.pressAvailable() || v.Captured() {
		return
	}
	origin, dir := v.ray()

	var best EntityId
	bestT := float32(math.MaxFloat32)
	MakeQuery2[RendererComponent, TransformComponent](cmd).Map(func(eid EntityId, r *RendererComponent, tr *TransformComponent) bool {
		radius := r.Radius
		if radius <= 0 {
			radius = 0.5
		}
		if t, ok := raySphere(origin, dir, tr.Position, radius); ok && t < bestT {
			bestT = t
			best = eid
		}
		return true
	})

	additive := input.Pressed[KeyControl]
	switch {
	case best != 0 && additive:
		selection.Toggle(best)
	case best != 0:
		selection.Set(best)
	case !additive:
		selection.Clear()
	}
}
