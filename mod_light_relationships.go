package lightassist

import (
	"github.com/gekko3d/lightassist/relations"
)

// LightRelationships is the session state of the "Light Relationships" window: every
// light grouped by culling mask, with the renderers each mask reaches.
type LightRelationships struct {
	Panel  *Panel
	Groups relations.Groups[EntityId]

	layers relations.LayerNames
	logger Logger
}

func NewLightRelationships(cfg Config, logger Logger) *LightRelationships {
	p := NewPanel("Light Relationships", cfg.RelationshipsPanel.Rect())
	p.Open = false
	return &LightRelationships{
		Panel:  p,
		layers: cfg.Layers(),
		logger: logger,
	}
}

// Refresh regroups the whole scene.
func (lr *LightRelationships) Refresh(cmd *Commands) {
	lights, renderers := sceneRelations(cmd)
	lr.Groups = relations.BuildGroups(lights, renderers)
	lr.logger.Debugf("light relationships: %d lights in %d groups", len(lights), len(lr.Groups.Lights))
}

func (lr *LightRelationships) SetOpen(cmd *Commands, open bool) {
	switch {
	case open && !lr.Panel.Open:
		lr.Panel.Open = true
		lr.Refresh(cmd)
	case !open:
		lr.Panel.Open = false
		lr.Groups = relations.Groups[EntityId]{}
	}
}

func (lr *LightRelationships) panelGUI(cmd *Commands, input *Input, sel *Selection) {
	p := lr.Panel
	if !p.Open {
		return
	}
	p.Begin(input)
	if p.Button("Refresh") {
		lr.Refresh(cmd)
	}
	p.Label("Lights")
	for _, mask := range lr.Groups.Masks() {
		p.BeginBox()
		p.Label(lr.layers.Describe(mask))

		lights := relations.Members(lr.Groups.Lights[mask])
		if p.Button("Select All Lights") {
			sel.Set(lights...)
		}
		for _, eid := range lights {
			p.Label(" - " + entityName(cmd, eid))
		}

		if group, ok := lr.Groups.Renderers[mask]; ok {
			renderers := relations.Members(group)
			if p.Button("Select All Renderers") {
				sel.Set(renderers...)
			}
			for _, eid := range renderers {
				p.Label(entityName(cmd, eid))
			}
		}
		p.EndBox(false, Color{})
		p.Space(panelRowH)
	}
	p.End()
}

type LightRelationshipsModule struct {
	Config Config
}

func (m LightRelationshipsModule) Install(app *App, cmd *Commands) {
	lr := NewLightRelationships(m.Config, app.Logger())
	cmd.AddResources(lr)
	if frame := Resource[UiFrame](app); frame != nil {
		frame.Register(lr.Panel)
	}
	app.UseSystem(System(lightRelationshipsPanelSystem).InStage(Update))
}

func lightRelationshipsPanelSystem(cmd *Commands, lr *LightRelationships, input *Input, sel *Selection) {
	lr.panelGUI(cmd, input, sel)
}
