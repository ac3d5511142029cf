package lightassist

import (
	"github.com/gekko3d/lightassist/geom"
	"github.com/gekko3d/lightassist/handles"
	"github.com/gekko3d/lightassist/relations"
)

type LightRenderMode uint32

const (
	RenderModeAuto LightRenderMode = iota
	RenderModeImportant
	RenderModeNotImportant
)

var renderModeNames = []string{"Auto", "Important", "Not Important"}

func (m LightRenderMode) String() string {
	if int(m) < len(renderModeNames) {
		return renderModeNames[m]
	}
	return "Unknown"
}

// LightComponent is the ECS component for lights
type LightComponent struct {
	Type        geom.LightType
	Color       [3]float32 // RGB
	Intensity   float32
	Range       float32 // For point/spot
	SpotAngle   float32 // Full cone angle in degrees (spot)
	Enabled     bool
	RenderMode  LightRenderMode
	CullingMask relations.Mask
}

func NewPointLight(color [3]float32, intensity, lightRange float32) *LightComponent {
	return &LightComponent{
		Type:        geom.LightTypePoint,
		Color:       color,
		Intensity:   intensity,
		Range:       lightRange,
		SpotAngle:   30,
		Enabled:     true,
		CullingMask: relations.Everything,
	}
}

func NewSpotLight(color [3]float32, intensity, lightRange, spotAngle float32) *LightComponent {
	l := NewPointLight(color, intensity, lightRange)
	l.Type = geom.LightTypeSpot
	l.SpotAngle = spotAngle
	return l
}

func NewDirectionalLight(color [3]float32, intensity float32) *LightComponent {
	l := NewPointLight(color, intensity, 10)
	l.Type = geom.LightTypeDirectional
	return l
}

// Volume pairs the light's shape with its placement.
func (l LightComponent) Volume(tr TransformComponent) geom.LightVolume {
	return geom.LightVolume{
		Type:      l.Type,
		Transform: tr.Geom(),
		Range:     l.Range,
		SpotAngle: l.SpotAngle,
	}
}

// Clamp enforces the committed shape invariants.
func (l *LightComponent) Clamp() {
	l.Range = handles.ClampRange(l.Range)
	l.SpotAngle = handles.ClampSpotAngle(l.SpotAngle)
}

// RendererComponent marks an entity as drawn on Layer. Radius is the pick sphere used
// by viewport selection.
type RendererComponent struct {
	Layer  relations.Layer
	Radius float32
}
