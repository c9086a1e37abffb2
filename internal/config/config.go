// Package config handles application configuration loading and management.
package config

// Config holds all application settings.
type Config struct {
	Graphics   GraphicsConfig   `yaml:"graphics"`
	Camera     CameraConfig     `yaml:"camera"`
	Simulation SimulationConfig `yaml:"simulation"`
	Data       DataConfig       `yaml:"data"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// CameraConfig holds camera movement settings.
type CameraConfig struct {
	MoveSpeed   float32 `yaml:"move_speed"`   // world units per second
	Sensitivity float32 `yaml:"sensitivity"`  // degrees per mouse pixel
	Zoom        float32 `yaml:"zoom"`         // initial field of view, degrees
	FarPlane    float32 `yaml:"far_plane"`    // projection far clip distance
}

// SimulationConfig holds scene generation and timing settings.
//
// SphereSteps and RingSegments are independent: the sphere's angular
// resolution does not constrain how round the orbit rings look.
type SimulationConfig struct {
	TimeScale    float32 `yaml:"time_scale"`    // multiplier on the shared clock
	SphereSteps  int     `yaml:"sphere_steps"`  // sphere grid subdivisions per axis
	RingSegments int     `yaml:"ring_segments"` // points per orbit ring
}

// DataConfig holds asset file paths.
type DataConfig struct {
	AssetDir string `yaml:"asset_dir"` // directory holding textures and skybox images
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
			Width:      1920,
			Height:     1080,
			Fullscreen: false,
			VSync:      true,
		},
		Camera: CameraConfig{
			MoveSpeed:   12.0,
			Sensitivity: 0.1,
			Zoom:        45.0,
			FarPlane:    300.0,
		},
		Simulation: SimulationConfig{
			TimeScale:    1.0,
			SphereSteps:  64,
			RingSegments: 120,
		},
		Data: DataConfig{
			AssetDir: "assets",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
