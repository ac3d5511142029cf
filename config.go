package lightassist

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gekko3d/lightassist/relations"
)

type Color [4]float32

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// PanelConfig places a tool window on screen, in pixels from the top-left corner.
type PanelConfig struct {
	X      float32 `yaml:"x"`
	Y      float32 `yaml:"y"`
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

func (p PanelConfig) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

type ColorConfig struct {
	SceneSelection Color `yaml:"scene_selection"`
	GuiSelection   Color `yaml:"gui_selection"`
	Light          Color `yaml:"light"`
	DisabledLight  Color `yaml:"disabled_light"`
	Handle         Color `yaml:"handle"`
	HotHandle      Color `yaml:"hot_handle"`
}

type Config struct {
	Debug bool `yaml:"debug"`

	Window WindowConfig `yaml:"window"`

	// AngleScale and RangeScale stretch the cone handle relative to the light's real shape.
	AngleScale float32 `yaml:"angle_scale"`
	RangeScale float32 `yaml:"range_scale"`
	// HandlePixels is the on-screen size of a unit handle.
	HandlePixels float32 `yaml:"handle_pixels"`
	// PingSeconds is how long a newly hot light stays highlighted.
	PingSeconds float32 `yaml:"ping_seconds"`

	Colors ColorConfig `yaml:"colors"`

	AssistantPanel     PanelConfig `yaml:"assistant_panel"`
	RelationshipsPanel PanelConfig `yaml:"relationships_panel"`

	LayerNames []string `yaml:"layer_names"`
}

func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "Light Assistant",
		},
		AngleScale:   1,
		RangeScale:   1,
		HandlePixels: 80,
		PingSeconds:  1.5,
		Colors: ColorConfig{
			SceneSelection: Color{1, 1, 0, 0.15},
			GuiSelection:   Color{1, 1, 0, 1},
			Light:          Color{254 / 255.0, 253 / 255.0, 136 / 255.0, 128 / 255.0},
			DisabledLight:  Color{135 / 255.0, 116 / 255.0, 50 / 255.0, 128 / 255.0},
			Handle:         Color{0.8, 0.8, 0.8, 1},
			HotHandle:      Color{1, 1, 0, 1},
		},
		AssistantPanel:     PanelConfig{X: 10, Y: 10, Width: 320, Height: 700},
		RelationshipsPanel: PanelConfig{X: 950, Y: 10, Width: 320, Height: 700},
	}
}

// ParseConfig reads YAML over the defaults and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %q: %w", path, err)
	}
	return ParseConfig(data)
}

func (c Config) Validate() error {
	if c.AngleScale <= 0 {
		return fmt.Errorf("angle_scale must be positive, got %v", c.AngleScale)
	}
	if c.RangeScale <= 0 {
		return fmt.Errorf("range_scale must be positive, got %v", c.RangeScale)
	}
	if c.HandlePixels <= 0 {
		return fmt.Errorf("handle_pixels must be positive, got %v", c.HandlePixels)
	}
	if len(c.LayerNames) > relations.MaxLayers {
		return fmt.Errorf("at most %d layer names, got %d", relations.MaxLayers, len(c.LayerNames))
	}
	return nil
}

func (c Config) Layers() relations.LayerNames {
	return relations.NewLayerNames(c.LayerNames)
}
