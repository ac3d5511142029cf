package lightassist

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/lightassist/geom"
	"github.com/gekko3d/lightassist/handles"
	"github.com/gekko3d/lightassist/relations"
)

const (
	moveToViewDistance = 1.5
	connectorDash      = 5
)

var lightTypeOptions = []string{
	geom.LightTypePoint.String(),
	geom.LightTypeDirectional.String(),
	geom.LightTypeSpot.String(),
	geom.LightTypeAmbient.String(),
}

// lightEdit is a working copy of a light while one of its handles is dragged.
type lightEdit struct {
	Transform TransformComponent
	Light     LightComponent
}

// LightAssistant is the session state of the "Light Assistant" window: the lights that
// can reach the current selection, what each of them reaches, and the light being
// worked on.
type LightAssistant struct {
	Panel *Panel

	Lights   []EntityId
	Affected map[EntityId][]EntityId
	// HotLight indexes Lights, -1 for none.
	HotLight int

	ShowHandles    bool
	ShowConnectors bool

	config       Config
	logger       Logger
	lastHotLight int
	ping         float32
	previews     map[EntityId]lightEdit
	fieldEdit    EntityId
}

func NewLightAssistant(cfg Config, logger Logger) *LightAssistant {
	return &LightAssistant{
		Panel:          NewPanel("Light Assistant", cfg.AssistantPanel.Rect()),
		Affected:       make(map[EntityId][]EntityId),
		HotLight:       -1,
		lastHotLight:   -1,
		ShowHandles:    true,
		ShowConnectors: true,
		config:         cfg,
		logger:         logger,
		previews:       make(map[EntityId]lightEdit),
	}
}

// Rebuild recomputes the lights and affected objects for the selection from scratch.
func (la *LightAssistant) Rebuild(cmd *Commands, sel *Selection) {
	var selected []relations.Renderer[EntityId]
	for _, eid := range sel.Objects() {
		if r := GetComponent[RendererComponent](cmd, eid); r != nil {
			selected = append(selected, relations.Renderer[EntityId]{ID: eid, Layer: r.Layer})
		}
	}
	lights, renderers := sceneRelations(cmd)
	idx := relations.BuildSelectionIndex(selected, lights, renderers)

	la.Lights = idx.Lights
	la.Affected = idx.Affected
	la.HotLight = -1
	clear(la.previews)
	la.logger.Debugf("light assistant: %d lights reach mask %#x", len(la.Lights), uint32(idx.Mask))
}

// sceneRelations lists every light and renderer in scene order.
func sceneRelations(cmd *Commands) ([]relations.Light[EntityId], []relations.Renderer[EntityId]) {
	var lights []relations.Light[EntityId]
	MakeQuery2[LightComponent, TransformComponent](cmd).Map(func(eid EntityId, l *LightComponent, _ *TransformComponent) bool {
		lights = append(lights, relations.Light[EntityId]{ID: eid, CullingMask: l.CullingMask})
		return true
	})
	var renderers []relations.Renderer[EntityId]
	MakeQuery1[RendererComponent](cmd).Map(func(eid EntityId, r *RendererComponent) bool {
		renderers = append(renderers, relations.Renderer[EntityId]{ID: eid, Layer: r.Layer})
		return true
	})
	return lights, renderers
}

func (la *LightAssistant) SetOpen(cmd *Commands, sel *Selection, open bool) {
	if open && !la.Panel.Open {
		la.Panel.Open = true
		la.Rebuild(cmd, sel)
		return
	}
	if !open {
		la.Panel.Open = false
		clear(la.previews)
	}
}

func (la *LightAssistant) setHot(i int) {
	la.HotLight = i
}

// Pinged reports whether the hot light is still highlighted after becoming hot.
func (la *LightAssistant) Pinged() bool { return la.ping > 0 }

// Dragging reports whether eid has an uncommitted handle edit.
func (la *LightAssistant) Dragging(eid EntityId) bool {
	_, ok := la.previews[eid]
	return ok
}

func (la *LightAssistant) gizmoColor(l LightComponent) Color {
	if l.Enabled {
		return la.config.Colors.Light
	}
	return la.config.Colors.DisabledLight
}

// drawHandles runs the handles for one light against edit and reports whether any moved.
func (la *LightAssistant) drawHandles(vp *Viewport, gizmos *GizmoBuffer, edit *lightEdit) bool {
	g := edit.Transform.Geom()
	tint := gizmos.Tinted(la.gizmoColor(edit.Light))

	switch edit.Light.Type {
	case geom.LightTypePoint:
		pos, moved := handles.PositionHandle(vp, g.Position, mgl32.QuatIdent())
		r, resized := handles.RadiusHandle(vp, tint, g.Rotation, pos, edit.Light.Range, false)
		edit.Transform.Position = pos
		edit.Light.Range = r
		return moved || resized

	case geom.LightTypeSpot:
		pos, rot, moved := handles.TransformHandle(vp, g.Position, g.Rotation)
		cone, reshaped := handles.ConeHandle(vp, tint, rot, pos,
			handles.Cone{Angle: edit.Light.SpotAngle, Range: edit.Light.Range},
			la.config.AngleScale, la.config.RangeScale, false)
		edit.Transform.Position, edit.Transform.Rotation = pos, rot
		edit.Light.SpotAngle, edit.Light.Range = cone.Angle, cone.Range
		return moved || reshaped

	case geom.LightTypeDirectional:
		pos, rot, moved := handles.TransformHandle(vp, g.Position, g.Rotation)
		edit.Transform.Position, edit.Transform.Rotation = pos, rot
		for _, ray := range handles.DirectionalRays(geom.NewTransform(pos, rot), vp.HandleSize(pos)) {
			tint.DrawLine(ray[0], ray[1])
		}
		return moved
	}
	return false
}

// commit writes a released handle edit to the light, checkpointing it first.
func (la *LightAssistant) commit(cmd *Commands, undo *UndoStack, i int, eid EntityId, edit lightEdit) {
	tr := GetComponent[TransformComponent](cmd, eid)
	light := GetComponent[LightComponent](cmd, eid)
	if tr == nil || light == nil {
		return
	}
	undo.Record(cmd, "Modify Light", eid)

	tr.Position = edit.Transform.Position
	tr.Rotation = edit.Transform.Rotation
	if light.Type == geom.LightTypeSpot {
		light.SpotAngle = edit.Light.SpotAngle
	}
	light.Range = edit.Light.Range
	light.Clamp()
	la.setHot(i)
}

// sceneGUI draws handles and connectors for every indexed light while the selection
// has an active object.
func (la *LightAssistant) sceneGUI(cmd *Commands, sel *Selection, vp *Viewport, gizmos *GizmoBuffer, camera *EditorCamera, undo *UndoStack) {
	active := sel.Active()
	if active == 0 || GetComponent[TransformComponent](cmd, active) == nil {
		return
	}

	for i, eid := range la.Lights {
		tr := GetComponent[TransformComponent](cmd, eid)
		light := GetComponent[LightComponent](cmd, eid)
		if tr == nil || light == nil {
			continue
		}

		edit, dragging := la.previews[eid]
		if !dragging {
			edit = lightEdit{Transform: *tr, Light: *light}
		}
		if la.ShowHandles && la.drawHandles(vp, gizmos, &edit) {
			la.previews[eid] = edit
			dragging = true
		}
		if dragging && !vp.Active() {
			la.commit(cmd, undo, i, eid, edit)
			delete(la.previews, eid)
			edit = lightEdit{Transform: *tr, Light: *light}
		}

		position := edit.Transform.Position
		if la.HotLight == i {
			size := vp.HandleSize(position)
			gizmos.Color = la.config.Colors.SceneSelection
			gizmos.DrawSolidDisc(position, camera.Forward(), size)
			if la.Pinged() {
				gizmos.Color = la.config.Colors.GuiSelection
				gizmos.DrawWireDisc(position, camera.Forward(), size)
			}
		}

		if !la.ShowConnectors {
			continue
		}
		volume := edit.Light.Volume(edit.Transform)
		gizmos.Color = Color{edit.Light.Color[0], edit.Light.Color[1], edit.Light.Color[2], 1}
		for _, other := range la.Affected[eid] {
			otr := GetComponent[TransformComponent](cmd, other)
			if otr == nil {
				continue
			}
			if geom.IsOutOfRange(volume, otr.Position) {
				gizmos.DrawDottedLine(otr.Position, position, connectorDash)
			} else {
				gizmos.DrawPolyLine(1, otr.Position, position)
			}
		}
	}
}

// panelGUI lays out the window: display toggles, then one box per light.
func (la *LightAssistant) panelGUI(cmd *Commands, input *Input, sel *Selection, camera *EditorCamera, undo *UndoStack) {
	p := la.Panel
	if !p.Open {
		return
	}
	if !input.Pressed[MouseButtonLeft] {
		la.fieldEdit = 0
	}

	p.Begin(input)
	switch p.ButtonRow("Lights", onOff("Handles", la.ShowHandles), onOff("Lines", la.ShowConnectors)) {
	case 1:
		la.ShowHandles = !la.ShowHandles
	case 2:
		la.ShowConnectors = !la.ShowConnectors
	}

	for i, eid := range la.Lights {
		tr := GetComponent[TransformComponent](cmd, eid)
		light := GetComponent[LightComponent](cmd, eid)
		if tr == nil || light == nil {
			continue
		}

		p.BeginBox()
		nameColor := panelText
		if la.HotLight == i {
			nameColor = la.config.Colors.GuiSelection
		}
		switch p.ButtonRowColored(nameColor, entityName(cmd, eid), "A", "B") {
		case 0:
			la.setHot(i)
		case 1:
			camera.AlignTo(*tr)
			la.setHot(i)
		case 2:
			undo.Record(cmd, "Move Light To View", eid)
			tr.Rotation = camera.Rotation
			tr.Position = camera.Position.Add(camera.Forward().Mul(moveToViewDistance))
			delete(la.previews, eid)
			la.setHot(i)
		}

		if la.lightFields(cmd, sel, undo, eid, tr, light) {
			light.Clamp()
			delete(la.previews, eid)
			la.setHot(i)
		}
		p.EndBox(la.HotLight == i, la.config.Colors.GuiSelection)
		p.Space(8)
	}
	p.End()
}

func onOff(label string, on bool) string {
	if on {
		return label + ": on"
	}
	return label + ": off"
}

// lightFields shows the editable light properties. Edits are written in place after a
// checkpoint taken when the edit started.
func (la *LightAssistant) lightFields(cmd *Commands, sel *Selection, undo *UndoStack, eid EntityId, tr *TransformComponent, light *LightComponent) bool {
	p := la.Panel
	next := *light
	changed := false
	var edited bool

	var kind int
	kind, edited = p.EnumField("Type", int(next.Type), lightTypeOptions)
	next.Type = geom.LightType(kind)
	changed = changed || edited

	p.ColorField("Color", next.Color)

	var mode int
	mode, edited = p.EnumField("Render Mode", int(next.RenderMode), renderModeNames)
	next.RenderMode = LightRenderMode(mode)
	changed = changed || edited

	next.Intensity, edited = p.FloatField("Intensity", next.Intensity, 0.01)
	if next.Intensity < 0 {
		next.Intensity = 0
	}
	changed = changed || edited

	if next.Type == geom.LightTypePoint || next.Type == geom.LightTypeSpot {
		next.Range, edited = p.FloatField("Range", next.Range, 0.05)
		changed = changed || edited

		if active := sel.Active(); active != 0 {
			if atr := GetComponent[TransformComponent](cmd, active); atr != nil && geom.IsOutOfRange(next.Volume(*tr), atr.Position) {
				p.HelpBox("Out of Range")
			}
		}
	}
	if next.Type == geom.LightTypeSpot {
		next.SpotAngle, edited = p.FloatField("Spot Angle", next.SpotAngle, 0.5)
		changed = changed || edited
	}

	if !changed {
		return false
	}
	if la.fieldEdit != eid {
		undo.Record(cmd, "Modify Light", eid)
		la.fieldEdit = eid
	}
	*light = next
	return true
}

// updatePing starts the highlight when the hot light changes and runs it down.
func (la *LightAssistant) updatePing(cmd *Commands, dt float32) {
	if la.lastHotLight != la.HotLight {
		la.lastHotLight = la.HotLight
		if la.HotLight >= 0 && la.HotLight < len(la.Lights) {
			la.ping = la.config.PingSeconds
			la.logger.Infof("ping %s", entityName(cmd, la.Lights[la.HotLight]))
		}
	}
	if la.ping > 0 {
		la.ping -= dt
	}
}

type LightAssistantModule struct {
	Config Config
}

func (m LightAssistantModule) Install(app *App, cmd *Commands) {
	la := NewLightAssistant(m.Config, app.Logger())
	cmd.AddResources(la)
	if frame := Resource[UiFrame](app); frame != nil {
		frame.Register(la.Panel)
	}

	app.UseSystem(System(lightAssistantSelectionSystem).InStage(PreUpdate))
	app.UseSystem(System(lightAssistantPanelSystem).InStage(Update))
	app.UseSystem(System(lightAssistantSceneSystem).InStage(Update))
	app.UseSystem(System(lightAssistantPingSystem).InStage(PostUpdate))
}

func lightAssistantSelectionSystem(cmd *Commands, la *LightAssistant, sel *Selection, events *SelectionEvents) {
	if events.Changed && la.Panel.Open {
		la.Rebuild(cmd, sel)
	}
}

func lightAssistantPanelSystem(cmd *Commands, la *LightAssistant, input *Input, sel *Selection, camera *EditorCamera, undo *UndoStack) {
	la.panelGUI(cmd, input, sel, camera, undo)
}

func lightAssistantSceneSystem(cmd *Commands, la *LightAssistant, sel *Selection, vp *Viewport, gizmos *GizmoBuffer, camera *EditorCamera, undo *UndoStack) {
	if la.Panel.Open {
		la.sceneGUI(cmd, sel, vp, gizmos, camera, undo)
	}
}

func lightAssistantPingSystem(cmd *Commands, la *LightAssistant, t *Time) {
	la.updatePing(cmd, t.Seconds())
}
