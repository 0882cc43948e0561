// Package config handles uvtool configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/brushuv/pkg/texture"
	"github.com/Faultbox/brushuv/pkg/uv"
)

// Config holds all uvtool settings.
type Config struct {
	UV      UVConfig      `yaml:"uv" toml:"uv"`
	Input   InputConfig   `yaml:"input" toml:"input"`
	Output  OutputConfig  `yaml:"output" toml:"output"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
}

// UVConfig holds UV projection settings.
type UVConfig struct {
	DefaultTextureWidth  uint32 `yaml:"default_texture_width" toml:"default_texture_width"`
	DefaultTextureHeight uint32 `yaml:"default_texture_height" toml:"default_texture_height"`
	EmptyTextureMarker   string `yaml:"empty_texture_marker" toml:"empty_texture_marker"` // No warning for unknown textures with this in their name
	Workers              int    `yaml:"workers" toml:"workers"`                           // 0 = GOMAXPROCS
	Strict               bool   `yaml:"strict" toml:"strict"`                             // Abort on the first bad face
}

// InputConfig holds input file paths.
type InputConfig struct {
	FaceSet string `yaml:"face_set" toml:"face_set"`
}

// OutputConfig holds output settings.
type OutputConfig struct {
	Path string `yaml:"path" toml:"path"` // Empty writes to stdout
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		UV: UVConfig{
			DefaultTextureWidth:  texture.DefaultWidth,
			DefaultTextureHeight: texture.DefaultHeight,
			EmptyTextureMarker:   texture.EmptyMarker,
			Workers:              0,
			Strict:               true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks settings that cannot be defaulted.
func (c *Config) Validate() error {
	var errs []error
	if c.UV.DefaultTextureWidth == 0 || c.UV.DefaultTextureHeight == 0 {
		errs = append(errs, fmt.Errorf("invalid default texture size %dx%d",
			c.UV.DefaultTextureWidth, c.UV.DefaultTextureHeight))
	}
	if c.UV.Workers < 0 {
		errs = append(errs, fmt.Errorf("invalid worker count %d", c.UV.Workers))
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("invalid log level %q", c.Logging.Level))
	}
	return errors.Join(errs...)
}

// BuildOptions returns the uv.Build options for these settings.
func (c UVConfig) BuildOptions(log *zap.Logger) []uv.Option {
	return []uv.Option{
		uv.WithWorkers(c.Workers),
		uv.WithStrict(c.Strict),
		uv.WithLogger(log),
		uv.WithResolverOptions(c.ResolverOptions()...),
	}
}

// ResolverOptions returns the texture resolver options for these settings.
func (c UVConfig) ResolverOptions() []texture.ResolverOption {
	return []texture.ResolverOption{
		texture.WithDefaultSize(texture.Size{Width: c.DefaultTextureWidth, Height: c.DefaultTextureHeight}),
		texture.WithEmptyMarker(c.EmptyTextureMarker),
	}
}
