// Package config handles pipeline configuration loading.
package config

// Config holds all pipeline settings.
type Config struct {
	Assets  AssetsConfig  `yaml:"assets"`
	Atlas   AtlasConfig   `yaml:"atlas"`
	Bake    BakeConfig    `yaml:"bake"`
	Logging LoggingConfig `yaml:"logging"`
}

// AssetsConfig holds asset directory layout.
type AssetsConfig struct {
	// Dir is the asset root containing models/, blockstates/ and
	// textures/ subdirectories.
	Dir string `yaml:"dir"`
}

// AtlasConfig holds sprite sheet settings.
type AtlasConfig struct {
	TileSize int `yaml:"tile_size"`
}

// BakeConfig holds default bake parameters.
type BakeConfig struct {
	// RotationY rotates every baked model about the vertical axis, in
	// degrees. Blockstate variants override it per model.
	RotationY float32 `yaml:"rotation_y"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Assets: AssetsConfig{
			Dir: "assets",
		},
		Atlas: AtlasConfig{
			TileSize: 16,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
