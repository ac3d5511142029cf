package lightassist

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/lightassist/geom"
	"github.com/gekko3d/lightassist/relations"
)

func TestParseScene(t *testing.T) {
	scene, err := ParseScene([]byte(`
objects:
  - name: Crate
    position: [0, 1, 0]
    layer: 3
lights:
  - name: Key
    type: Spot
    position: [0, 5, 0]
    rotation: [90, 0, 0]
    range: 8
    spot_angle: 40
    layers: [3, 4]
    render_mode: not important
`))
	require.NoError(t, err)

	app := NewApp()
	cmd := app.Commands()
	require.NoError(t, LoadScene(cmd, scene))
	app.FlushCommands()

	var light *LightComponent
	var tr *TransformComponent
	MakeQuery2[LightComponent, TransformComponent](cmd).Map(func(_ EntityId, l *LightComponent, t *TransformComponent) bool {
		light, tr = l, t
		return false
	})
	require.NotNil(t, light)
	assert.Equal(t, geom.LightTypeSpot, light.Type)
	assert.Equal(t, relations.MaskOf(3, 4), light.CullingMask)
	assert.Equal(t, RenderModeNotImportant, light.RenderMode)
	assert.Equal(t, float32(40), light.SpotAngle)
	vecNear(t, mgl32.Vec3{0, -1, 0}, tr.Forward())

	var renderer *RendererComponent
	MakeQuery1[RendererComponent](cmd).Map(func(_ EntityId, r *RendererComponent) bool {
		renderer = r
		return false
	})
	require.NotNil(t, renderer)
	assert.Equal(t, relations.Layer(3), renderer.Layer)
	assert.Equal(t, float32(0.5), renderer.Radius)
}

func TestParseScene_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"light type", "lights: [{name: x, type: laser}]"},
		{"render mode", "lights: [{name: x, render_mode: loud}]"},
		{"light layer", "lights: [{name: x, layers: [32]}]"},
		{"object layer", "objects: [{name: x, layer: -1}]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScene([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestDefaultScene_Loads(t *testing.T) {
	app := NewApp().UseModules(SceneModule{})
	app.build()

	lights := 0
	MakeQuery1[LightComponent](app.Commands()).Map(func(EntityId, *LightComponent) bool {
		lights++
		return true
	})
	assert.Equal(t, len(DefaultScene().Lights), lights)
}

func TestSpawnLight_RejectsBadDefinition(t *testing.T) {
	app := NewApp()
	cmd := app.Commands()

	eid, err := spawnLight(cmd, LightDef{Name: "Laser", Type: "laser"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `light "Laser"`)
	assert.Equal(t, EntityId(0), eid)

	app.FlushCommands()
	lights := 0
	MakeQuery1[LightComponent](cmd).Map(func(EntityId, *LightComponent) bool {
		lights++
		return true
	})
	assert.Zero(t, lights)
}
