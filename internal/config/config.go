// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Scene    SceneConfig    `yaml:"scene"`
	Camera   CameraConfig   `yaml:"camera"`
	Lights   LightsConfig   `yaml:"lights"`
	Preview  PreviewConfig  `yaml:"preview"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// SceneConfig describes the sphere grid. Metallic varies across columns
// and roughness across rows, so the grid sweeps the material space.
type SceneConfig struct {
	Rows         int        `yaml:"rows"`
	Cols         int        `yaml:"cols"`
	Spacing      float32    `yaml:"spacing"`
	SphereRadius float32    `yaml:"sphere_radius"`
	SphereSlices int        `yaml:"sphere_slices"`
	SphereStacks int        `yaml:"sphere_stacks"`
	Albedo       [3]float32 `yaml:"albedo"`
}

// CameraConfig holds the orbit camera's start state and feel.
type CameraConfig struct {
	Radius      float32 `yaml:"radius"`
	Phi         float32 `yaml:"phi"`
	Theta       float32 `yaml:"theta"`
	Sensitivity float32 `yaml:"sensitivity"`
	FOVDegrees  float32 `yaml:"fov_degrees"`
}

// LightsConfig declares the light list in evaluation order. The default
// scene wires exactly one camera-relative directional light; point and
// spot entries are supported but empty unless configured.
type LightsConfig struct {
	Directional []DirectionalLightConfig `yaml:"directional"`
	Point       []PointLightConfig       `yaml:"point"`
	Spot        []SpotLightConfig        `yaml:"spot"`
}

// DirectionalLightConfig describes one directional light. Space is
// "view" for a camera-relative direction or "world" for a fixed one.
type DirectionalLightConfig struct {
	Direction [3]float32 `yaml:"direction"`
	Color     [3]float32 `yaml:"color"`
	Space     string     `yaml:"space"`
}

// PointLightConfig describes one point light. Distance 0 means no range
// cutoff; decay 0 means no falloff.
type PointLightConfig struct {
	Position [3]float32 `yaml:"position"`
	Color    [3]float32 `yaml:"color"`
	Distance float32    `yaml:"distance"`
	Decay    float32    `yaml:"decay"`
}

// SpotLightConfig describes one spot light. Angles are in degrees; the
// penumbra angle marks where the falloff toward the cone edge begins.
type SpotLightConfig struct {
	Position    [3]float32 `yaml:"position"`
	Direction   [3]float32 `yaml:"direction"`
	Color       [3]float32 `yaml:"color"`
	Distance    float32    `yaml:"distance"`
	Decay       float32    `yaml:"decay"`
	ConeDegrees float32    `yaml:"cone_degrees"`
	PenumbraDeg float32    `yaml:"penumbra_degrees"`
}

// PreviewConfig holds the CPU reference renderer settings.
type PreviewConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      960,
			Height:     540,
			Fullscreen: false,
			VSync:      true,
		},
		Scene: SceneConfig{
			Rows:         5,
			Cols:         5,
			Spacing:      0.25,
			SphereRadius: 0.1,
			SphereSlices: 32,
			SphereStacks: 16,
			Albedo:       [3]float32{1, 1, 1},
		},
		Camera: CameraConfig{
			Radius:      1.0,
			Phi:         0,
			Theta:       1.5707964, // pi/2: start on the equator
			Sensitivity: 0.002,
			FOVDegrees:  60,
		},
		Lights: LightsConfig{
			Directional: []DirectionalLightConfig{{
				Direction: [3]float32{1, 1, 1},
				Color:     [3]float32{1, 1, 1},
				Space:     "view",
			}},
		},
		Preview: PreviewConfig{
			Width:  960,
			Height: 540,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
