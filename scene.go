package lightassist

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/gekko3d/lightassist/geom"
	"github.com/gekko3d/lightassist/relations"
)

// SceneDef defines the initial state of a scene.
type SceneDef struct {
	Objects []ObjectDef `yaml:"objects"`
	Lights  []LightDef  `yaml:"lights"`
}

// ObjectDef is a renderer placed on a layer. Rotation is Euler degrees (pitch, yaw, roll).
type ObjectDef struct {
	Name     string     `yaml:"name"`
	Position [3]float32 `yaml:"position"`
	Rotation [3]float32 `yaml:"rotation"`
	Layer    int        `yaml:"layer"`
	Radius   float32    `yaml:"radius"`
}

// LightDef defines a light instantiation. An empty Layers list lights everything.
type LightDef struct {
	Name       string     `yaml:"name"`
	Type       string     `yaml:"type"`
	Position   [3]float32 `yaml:"position"`
	Rotation   [3]float32 `yaml:"rotation"`
	Color      [3]float32 `yaml:"color"`
	Intensity  float32    `yaml:"intensity"`
	Range      float32    `yaml:"range"`
	SpotAngle  float32    `yaml:"spot_angle"`
	Layers     []int      `yaml:"layers"`
	Disabled   bool       `yaml:"disabled"`
	RenderMode string     `yaml:"render_mode"`
}

func eulerDegrees(v [3]float32) mgl32.Quat {
	pitch := mgl32.QuatRotate(mgl32.DegToRad(v[0]), geom.Right)
	yaw := mgl32.QuatRotate(mgl32.DegToRad(v[1]), geom.Up)
	roll := mgl32.QuatRotate(mgl32.DegToRad(v[2]), geom.Forward)
	return yaw.Mul(pitch).Mul(roll).Normalize()
}

func parseLightType(s string) (geom.LightType, error) {
	if s == "" {
		return geom.LightTypePoint, nil
	}
	for i, name := range lightTypeOptions {
		if strings.EqualFold(name, s) {
			return geom.LightType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown light type %q", s)
}

func parseRenderMode(s string) (LightRenderMode, error) {
	if s == "" {
		return RenderModeAuto, nil
	}
	for i, name := range renderModeNames {
		if strings.EqualFold(strings.ReplaceAll(name, " ", ""), strings.ReplaceAll(s, " ", "")) {
			return LightRenderMode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown render mode %q", s)
}

func layerOf(l int) (relations.Layer, error) {
	if l < 0 || l >= relations.MaxLayers {
		return 0, fmt.Errorf("layer %d out of range", l)
	}
	return relations.Layer(l), nil
}

func (def LightDef) component() (*LightComponent, error) {
	typ, err := parseLightType(def.Type)
	if err != nil {
		return nil, fmt.Errorf("light %q: %w", def.Name, err)
	}
	mode, err := parseRenderMode(def.RenderMode)
	if err != nil {
		return nil, fmt.Errorf("light %q: %w", def.Name, err)
	}

	l := NewPointLight(def.Color, def.Intensity, def.Range)
	l.Type = typ
	l.RenderMode = mode
	l.Enabled = !def.Disabled
	if def.SpotAngle > 0 {
		l.SpotAngle = def.SpotAngle
	}
	if len(def.Layers) > 0 {
		l.CullingMask = relations.Nothing
		for _, n := range def.Layers {
			layer, err := layerOf(n)
			if err != nil {
				return nil, fmt.Errorf("light %q: %w", def.Name, err)
			}
			l.CullingMask |= layer.Mask()
		}
	}
	l.Clamp()
	return l, nil
}

// Validate checks every definition without spawning anything.
func (scene *SceneDef) Validate() error {
	for _, obj := range scene.Objects {
		if _, err := layerOf(obj.Layer); err != nil {
			return fmt.Errorf("object %q: %w", obj.Name, err)
		}
	}
	for _, def := range scene.Lights {
		if _, err := def.component(); err != nil {
			return err
		}
	}
	return nil
}

// LoadScene iterates through the SceneDef and spawns entities.
func LoadScene(cmd *Commands, scene *SceneDef) error {
	if err := scene.Validate(); err != nil {
		return err
	}
	for _, obj := range scene.Objects {
		spawnObject(cmd, obj)
	}
	for _, light := range scene.Lights {
		if _, err := spawnLight(cmd, light); err != nil {
			return err
		}
	}
	return nil
}

func spawnObject(cmd *Commands, def ObjectDef) EntityId {
	radius := def.Radius
	if radius <= 0 {
		radius = 0.5
	}
	return cmd.AddEntity(
		&NameComponent{Name: def.Name},
		NewTransformComponent(mgl32.Vec3(def.Position), eulerDegrees(def.Rotation)),
		&RendererComponent{Layer: relations.Layer(def.Layer), Radius: radius},
	)
}

func spawnLight(cmd *Commands, def LightDef) (EntityId, error) {
	light, err := def.component()
	if err != nil {
		return 0, err
	}
	return cmd.AddEntity(
		&NameComponent{Name: def.Name},
		NewTransformComponent(mgl32.Vec3(def.Position), eulerDegrees(def.Rotation)),
		light,
	), nil
}

func ParseScene(data []byte) (*SceneDef, error) {
	var scene SceneDef
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	if err := scene.Validate(); err != nil {
		return nil, err
	}
	return &scene, nil
}

func LoadSceneFile(path string) (*SceneDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene %q: %w", path, err)
	}
	return ParseScene(data)
}

// DefaultScene is a small set of props on different layers with lights of every kind.
func DefaultScene() *SceneDef {
	return &SceneDef{
		Objects: []ObjectDef{
			{Name: "Crate", Position: [3]float32{0, 0.5, 0}, Layer: 0, Radius: 0.75},
			{Name: "Barrel", Position: [3]float32{3, 0.5, 2}, Layer: 8, Radius: 0.75},
			{Name: "Pond", Position: [3]float32{-4, 0, 3}, Layer: 4, Radius: 1.5},
			{Name: "Statue", Position: [3]float32{6, 1, 8}, Layer: 0, Radius: 1},
		},
		Lights: []LightDef{
			{Name: "Key Light", Type: "spot", Position: [3]float32{0, 6, -4}, Rotation: [3]float32{56, 0, 0},
				Color: [3]float32{1, 0.95, 0.8}, Intensity: 2, Range: 12, SpotAngle: 45},
			{Name: "Fill Light", Type: "point", Position: [3]float32{2, 3, 1},
				Color: [3]float32{0.6, 0.7, 1}, Intensity: 1, Range: 6, Layers: []int{0, 8}},
			{Name: "Water Glow", Type: "point", Position: [3]float32{-4, 1, 3},
				Color: [3]float32{0.2, 0.5, 1}, Intensity: 1.5, Range: 4, Layers: []int{4}, RenderMode: "important"},
			{Name: "Sun", Type: "directional", Position: [3]float32{0, 10, 0}, Rotation: [3]float32{50, 0, 0},
				Color: [3]float32{1, 1, 0.9}, Intensity: 1},
		},
	}
}

// SceneModule spawns a scene when the app is built.
type SceneModule struct {
	Scene *SceneDef
}

func (m SceneModule) Install(app *App, cmd *Commands) {
	scene := m.Scene
	if scene == nil {
		scene = DefaultScene()
	}
	if err := LoadScene(cmd, scene); err != nil {
		app.Logger().Errorf("scene not loaded: %v", err)
		return
	}
	app.Logger().Infof("Loaded scene: %d objects, %d lights", len(scene.Objects), len(scene.Lights))
}
