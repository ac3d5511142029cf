package lightassist

import (
	"github.com/go-gl/mathgl/mgl32"
)

type GizmoType int

const (
	GizmoLine GizmoType = iota
	GizmoDottedLine
	GizmoPolyLine
	GizmoWireDisc
	GizmoSolidDisc
	GizmoDot
)

// Gizmo is one immediate-mode wireframe primitive for the host renderer.
type Gizmo struct {
	Type  GizmoType
	Color Color

	// For lines: P1 is Start, P2 is End. For discs and dots: P1 is the centre.
	P1, P2 mgl32.Vec3
	Normal mgl32.Vec3
	Radius float32
	// Width for poly lines, dash length for dotted lines.
	Width float32
}

// GizmoBuffer collects this frame's gizmos. Primitives take the current Color.
type GizmoBuffer struct {
	Color  Color
	Gizmos []Gizmo
}

func (b *GizmoBuffer) Reset() {
	b.Gizmos = b.Gizmos[:0]
	b.Color = Color{1, 1, 1, 1}
}

func (b *GizmoBuffer) add(g Gizmo) {
	g.Color = b.Color
	b.Gizmos = append(b.Gizmos, g)
}

func (b *GizmoBuffer) DrawLine(p1, p2 mgl32.Vec3) {
	b.add(Gizmo{Type: GizmoLine, P1: p1, P2: p2})
}

func (b *GizmoBuffer) DrawDottedLine(p1, p2 mgl32.Vec3, dashSize float32) {
	b.add(Gizmo{Type: GizmoDottedLine, P1: p1, P2: p2, Width: dashSize})
}

func (b *GizmoBuffer) DrawPolyLine(width float32, p1, p2 mgl32.Vec3) {
	b.add(Gizmo{Type: GizmoPolyLine, P1: p1, P2: p2, Width: width})
}

func (b *GizmoBuffer) DrawWireDisc(center, normal mgl32.Vec3, radius float32) {
	b.add(Gizmo{Type: GizmoWireDisc, P1: center, Normal: normal, Radius: radius})
}

func (b *GizmoBuffer) DrawSolidDisc(center, normal mgl32.Vec3, radius float32) {
	b.add(Gizmo{Type: GizmoSolidDisc, P1: center, Normal: normal, Radius: radius})
}

func (b *GizmoBuffer) DrawDot(center mgl32.Vec3, radius float32) {
	b.add(Gizmo{Type: GizmoDot, P1: center, Radius: radius})
}

// Count returns how many gizmos of type t were drawn this frame.
func (b *GizmoBuffer) Count(t GizmoType) int {
	n := 0
	for _, g := range b.Gizmos {
		if g.Type == t {
			n++
		}
	}
	return n
}

type GizmoModule struct{}

func (GizmoModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&GizmoBuffer{Color: Color{1, 1, 1, 1}})
	app.UseSystem(System(gizmoResetSystem).InStage(Prelude))
}

func gizmoResetSystem(b *GizmoBuffer) {
	b.Reset()
}

// Tinted returns a drawer that draws in c regardless of the buffer's current color.
func (b *GizmoBuffer) Tinted(c Color) tintedDrawer {
	return tintedDrawer{buf: b, color: c}
}

type tintedDrawer struct {
	buf   *GizmoBuffer
	color Color
}

func (t tintedDrawer) DrawLine(a, b mgl32.Vec3) {
	t.buf.Color = t.color
	t.buf.DrawLine(a, b)
}

func (t tintedDrawer) DrawWireDisc(center, normal mgl32.Vec3, radius float32) {
	t.buf.Color = t.color
	t.buf.DrawWireDisc(center, normal, radius)
}
