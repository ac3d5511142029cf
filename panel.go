package lightassist

import (
	"fmt"
	"slices"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding  = 6.0
	panelSpacing  = 4.0
	panelRowH     = 18.0
	panelTitleH   = 20.0
	panelLabelW   = 0.45 // share of the row given to field labels
	panelScrollPx = 3 * panelRowH
)

var (
	panelBackground = Color{0.16, 0.16, 0.16, 0.92}
	panelTitleBar   = Color{0.24, 0.24, 0.24, 1}
	panelText       = Color{0.92, 0.92, 0.92, 1}
	panelButton     = Color{0.32, 0.32, 0.32, 1}
	panelButtonHot  = Color{0.42, 0.42, 0.42, 1}
	panelField      = Color{0.1, 0.1, 0.1, 1}
	panelBoxColor   = Color{0.2, 0.2, 0.2, 1}
	panelWarning    = Color{0.45, 0.35, 0.1, 1}
)

type Rect struct {
	X, Y, W, H float32
}

func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

func (r Rect) Inset(d float32) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

type PanelCommandKind int

const (
	PanelFill PanelCommandKind = iota
	PanelOutline
	PanelText
)

// PanelCommand is one draw instruction in window pixels.
type PanelCommand struct {
	Kind  PanelCommandKind
	Rect  Rect
	Color Color
	Text  string
}

// Panel is an immediate-mode tool window: widgets are laid out top to bottom in call
// order between Begin and End, and report clicks from the frame's Input.
type Panel struct {
	Title  string
	Open   bool
	Rect   Rect
	Scroll float32

	input    *Input
	cursorY  float32
	indent   float32
	boxes    []panelBox
	commands []PanelCommand

	nextID   int
	activeID int
}

type panelBox struct {
	top     float32
	command int
}

func NewPanel(title string, rect Rect) *Panel {
	return &Panel{Title: title, Rect: rect, Open: true}
}

// textWidth measures s in the panel font, in pixels.
func textWidth(s string) float32 {
	return float32(font.MeasureString(basicfont.Face7x13, s).Ceil())
}

func (p *Panel) Begin(input *Input) {
	p.input = input
	p.commands = p.commands[:0]
	p.boxes = p.boxes[:0]
	p.indent = 0
	p.nextID = 0
	if input != nil && !input.Pressed[MouseButtonLeft] {
		p.activeID = 0
	}
	if input != nil && input.ScrollY != 0 && p.ContainsMouse() {
		p.Scroll -= float32(input.ScrollY) * panelScrollPx
	}
	if p.Scroll < 0 {
		p.Scroll = 0
	}

	p.emit(PanelFill, p.Rect, panelBackground, "")
	title := Rect{X: p.Rect.X, Y: p.Rect.Y, W: p.Rect.W, H: panelTitleH}
	p.emit(PanelFill, title, panelTitleBar, "")
	p.emit(PanelText, title.Inset(3), panelText, p.Title)

	p.cursorY = p.Rect.Y + panelTitleH + panelPadding - p.Scroll
}

// End closes the layout and keeps the scroll offset inside the content.
func (p *Panel) End() {
	for len(p.boxes) > 0 {
		p.EndBox(false, Color{})
	}
	content := p.cursorY + p.Scroll - (p.Rect.Y + panelTitleH)
	maxScroll := content - (p.Rect.H - panelTitleH)
	if maxScroll < 0 {
		maxScroll = 0
	}
	if p.Scroll > maxScroll {
		p.Scroll = maxScroll
	}
}

func (p *Panel) Commands() []PanelCommand { return p.commands }

func (p *Panel) ContainsMouse() bool {
	if p.input == nil {
		return false
	}
	return p.Rect.Contains(float32(p.input.MouseX), float32(p.input.MouseY))
}

func (p *Panel) emit(kind PanelCommandKind, r Rect, c Color, text string) {
	p.commands = append(p.commands, PanelCommand{Kind: kind, Rect: r, Color: c, Text: text})
}

func (p *Panel) row(h float32) Rect {
	r := Rect{
		X: p.Rect.X + panelPadding + p.indent,
		Y: p.cursorY,
		W: p.Rect.W - 2*panelPadding - 2*p.indent,
		H: h,
	}
	p.cursorY += h + panelSpacing
	return r
}

// visible reports whether r lies in the scrolled client area.
func (p *Panel) visible(r Rect) bool {
	top := p.Rect.Y + panelTitleH
	return r.Y+r.H > top && r.Y < p.Rect.Y+p.Rect.H
}

func (p *Panel) hovered(r Rect) bool {
	if p.input == nil || !p.visible(r) || !p.ContainsMouse() {
		return false
	}
	return r.Contains(float32(p.input.MouseX), float32(p.input.MouseY))
}

func (p *Panel) clicked(r Rect) bool {
	return p.hovered(r) && p.input.JustPressed[MouseButtonLeft]
}

func (p *Panel) control() int {
	p.nextID++
	return p.nextID
}

func (p *Panel) Space(h float32) {
	p.cursorY += h
}

func (p *Panel) Label(text string) {
	r := p.row(panelRowH)
	if p.visible(r) {
		p.emit(PanelText, r, panelText, text)
	}
}

func (p *Panel) button(r Rect, label string, c Color) bool {
	p.control()
	if !p.visible(r) {
		return false
	}
	fill := panelButton
	if p.hovered(r) {
		fill = panelButtonHot
	}
	p.emit(PanelFill, r, fill, "")
	tx := r.X + (r.W-textWidth(label))/2
	p.emit(PanelText, Rect{X: tx, Y: r.Y + 2, W: r.W, H: r.H}, c, label)
	return p.clicked(r)
}

func (p *Panel) Button(label string) bool {
	return p.button(p.row(panelRowH), label, panelText)
}

// ButtonRow lays labels out side by side. The first label takes the remaining width,
// the others are sized to their text. It returns the index clicked, or -1.
func (p *Panel) ButtonRow(labels ...string) int {
	return p.ButtonRowColored(panelText, labels...)
}

func (p *Panel) ButtonRowColored(first Color, labels ...string) int {
	if len(labels) == 0 {
		return -1
	}
	r := p.row(panelRowH)
	widths := make([]float32, len(labels))
	rest := r.W
	for i := 1; i < len(labels); i++ {
		widths[i] = textWidth(labels[i]) + 2*panelPadding
		rest -= widths[i] + panelSpacing
	}
	widths[0] = rest

	hit := -1
	x := r.X
	for i, label := range labels {
		c := panelText
		if i == 0 {
			c = first
		}
		if p.button(Rect{X: x, Y: r.Y, W: widths[i], H: r.H}, label, c) {
			hit = i
		}
		x += widths[i] + panelSpacing
	}
	return hit
}

func (p *Panel) fieldRects(label string) (Rect, Rect) {
	r := p.row(panelRowH)
	lw := r.W * panelLabelW
	if p.visible(r) {
		p.emit(PanelText, Rect{X: r.X, Y: r.Y + 2, W: lw, H: r.H}, panelText, label)
	}
	return r, Rect{X: r.X + lw, Y: r.Y, W: r.W - lw, H: r.H}
}

// FloatField shows value and lets the user scrub it by dragging horizontally; step is
// the change per pixel.
func (p *Panel) FloatField(label string, value, step float32) (float32, bool) {
	_, field := p.fieldRects(label)
	id := p.control()
	if p.clicked(field) {
		p.activeID = id
	}
	changed := false
	if p.activeID == id && p.input.MouseDeltaX != 0 {
		value += float32(p.input.MouseDeltaX) * step
		changed = true
	}
	if p.visible(field) {
		p.emit(PanelFill, field, panelField, "")
		p.emit(PanelText, Rect{X: field.X + 3, Y: field.Y + 2, W: field.W, H: field.H}, panelText, formatFloat(value))
	}
	return value, changed
}

// EnumField cycles through names on click.
func (p *Panel) EnumField(label string, value int, names []string) (int, bool) {
	_, field := p.fieldRects(label)
	text := "?"
	if value >= 0 && value < len(names) {
		text = names[value]
	}
	if p.button(field, text, panelText) && len(names) > 0 {
		return (value + 1) % len(names), true
	}
	return value, false
}

func (p *Panel) ColorField(label string, c [3]float32) {
	_, field := p.fieldRects(label)
	if p.visible(field) {
		p.emit(PanelFill, field, Color{c[0], c[1], c[2], 1}, "")
		p.emit(PanelOutline, field, panelText, "")
	}
}

func (p *Panel) HelpBox(text string) {
	r := p.row(panelRowH)
	if p.visible(r) {
		p.emit(PanelFill, r, panelWarning, "")
		p.emit(PanelText, Rect{X: r.X + 3, Y: r.Y + 2, W: r.W, H: r.H}, panelText, text)
	}
}

// BeginBox starts an inset group. Its background is drawn behind everything added
// before the matching EndBox.
func (p *Panel) BeginBox() {
	p.boxes = append(p.boxes, panelBox{top: p.cursorY, command: len(p.commands)})
	p.cursorY += panelPadding
	p.indent += panelPadding
}

// EndBox closes the innermost box, optionally outlining it, and returns its rect.
func (p *Panel) EndBox(outline bool, c Color) Rect {
	if len(p.boxes) == 0 {
		return Rect{}
	}
	box := p.boxes[len(p.boxes)-1]
	p.boxes = p.boxes[:len(p.boxes)-1]
	p.indent -= panelPadding
	p.cursorY += panelPadding

	r := Rect{
		X: p.Rect.X + panelPadding + p.indent,
		Y: box.top,
		W: p.Rect.W - 2*panelPadding - 2*p.indent,
		H: p.cursorY - box.top,
	}
	p.cursorY += panelSpacing
	if p.visible(r) {
		p.commands = slices.Insert(p.commands, box.command, PanelCommand{Kind: PanelFill, Rect: r, Color: panelBoxColor})
		if outline {
			p.emit(PanelOutline, r, c, "")
		}
	}
	return r
}

func formatFloat(v float32) string {
	return fmt.Sprintf("%.2f", v)
}
