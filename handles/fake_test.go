package handles

import (
	"github.com/go-gl/mathgl/mgl32"
)

// fakeContext drags the slider with index drag by offset (world units) and leaves every
// other control alone. Controls are numbered in call order like the real viewport does.
type fakeContext struct {
	drag   int
	offset mgl32.Vec3
	spin   float32
	size   float32

	calls int
	seen  []mgl32.Vec3
	sizes []float32
	dirs  []mgl32.Vec3
	discs int
}

func newFakeContext() *fakeContext {
	return &fakeContext{drag: -1, size: 1}
}

func (f *fakeContext) HandleSize(position mgl32.Vec3) float32 { return f.size }

func (f *fakeContext) Slider(position, direction mgl32.Vec3, size float32) (mgl32.Vec3, bool) {
	id := f.calls
	f.calls++
	f.seen = append(f.seen, position)
	f.sizes = append(f.sizes, size)
	f.dirs = append(f.dirs, direction)
	if id != f.drag || f.offset == (mgl32.Vec3{}) {
		return position, false
	}
	return position.Add(f.offset), true
}

func (f *fakeContext) Disc(rotation mgl32.Quat, position, axis mgl32.Vec3, size float32) (mgl32.Quat, bool) {
	id := f.calls
	f.calls++
	f.discs++
	if id != f.drag || f.spin == 0 {
		return rotation, false
	}
	return mgl32.QuatRotate(f.spin, axis).Mul(rotation), true
}

type recordedLine struct{ a, b mgl32.Vec3 }
type recordedDisc struct {
	center, normal mgl32.Vec3
	radius         float32
}

type fakeDrawer struct {
	lines []recordedLine
	discs []recordedDisc
}

func (d *fakeDrawer) DrawLine(a, b mgl32.Vec3) { d.lines = append(d.lines, recordedLine{a, b}) }
func (d *fakeDrawer) DrawWireDisc(center, normal mgl32.Vec3, radius float32) {
	d.discs = append(d.discs, recordedDisc{center, normal, radius})
}
