// Package config loads settings from defaults, an optional clubsite.{yaml,json,toml}
// file, optional .env files and the process environment, in increasing priority.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"clubsite/wireframe"
)

type Window struct {
	Width  int    `mapstructure:"width" validate:"gte=0"`
	Height int    `mapstructure:"height" validate:"gte=0"`
	Title  string `mapstructure:"title"`
}

type Headless struct {
	Hz    int    `mapstructure:"hz" validate:"gt=0"`
	Ticks uint64 `mapstructure:"ticks"`
}

// Background configures the wireframe animation.
type Background struct {
	Shape        string  `mapstructure:"shape" validate:"required"`
	Color        string  `mapstructure:"color" validate:"required"`
	LineColor    string  `mapstructure:"line_color" validate:"required"`
	LineWidth    float64 `mapstructure:"line_width" validate:"gt=0"`
	FPS          float64 `mapstructure:"fps" validate:"gt=0"`
	Speed        float64 `mapstructure:"speed" validate:"gte=0"`
	Axis         string  `mapstructure:"axis" validate:"oneof=x y z X Y Z"`
	Pixelated    bool    `mapstructure:"pixelated"`
	SplashTitle  string  `mapstructure:"splash_title"`
	SplashFrames int     `mapstructure:"splash_frames" validate:"gte=0"`
	Restart      bool    `mapstructure:"restart"`
	RestartDelay int     `mapstructure:"restart_delay" validate:"gte=0"`
}

type Config struct {
	Env       string `mapstructure:"node_env"`
	Port      string `mapstructure:"port" validate:"required,numeric"`
	StaticDir string `mapstructure:"static_dir"`
	Debug     bool   `mapstructure:"debug"`
	LogLevel  string `mapstructure:"log_level" validate:"oneof=debug info warn warning error off"`

	Window     Window     `mapstructure:"window"`
	Headless   Headless   `mapstructure:"headless"`
	Background Background `mapstructure:"background"`
}

// Production reports whether static assets should be served.
func (c *Config) Production() bool {
	return strings.EqualFold(c.Env, "production")
}

// Address is the listen address of the HTTP shell.
func (c *Config) Address() string {
	return ":" + c.Port
}

// WireframeOptions converts the background section into renderer options.
func (c *Config) WireframeOptions() (wireframe.Options, error) {
	b := c.Background
	opts := wireframe.DefaultOptions()

	bg, err := wireframe.ParseHexColor(b.Color)
	if err != nil {
		return opts, errors.Wrap(err, "background.color")
	}
	fg, err := wireframe.ParseHexColor(b.LineColor)
	if err != nil {
		return opts, errors.Wrap(err, "background.line_color")
	}
	axis, ok := wireframe.ParseAxis(b.Axis)
	if !ok {
		return opts, errors.Errorf("background.axis: unknown axis %q", b.Axis)
	}

	opts.Background = bg
	opts.Foreground = fg
	opts.LineWidth = b.LineWidth
	opts.ReferenceFPS = b.FPS
	opts.RotationSpeed = b.Speed
	opts.Axis = axis
	return opts, nil
}

// Geometry resolves the configured shape.
func (c *Config) Geometry() (wireframe.Geometry, error) {
	g, ok := wireframe.Preset(c.Background.Shape)
	if !ok {
		return wireframe.Geometry{}, errors.Errorf("background.shape: unknown shape %q (have %s)",
			c.Background.Shape, strings.Join(wireframe.PresetNames(), ", "))
	}
	return g, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("node_env", "development")
	v.SetDefault("port", "3000")
	v.SetDefault("static_dir", filepath.Join("..", "frontend", "dist"))
	v.SetDefault("debug", false)
	v.SetDefault("log_level", "info")

	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.title", "clubsite")

	v.SetDefault("headless.hz", 90)
	v.SetDefault("headless.ticks", 0)

	v.SetDefault("background.shape", "cube")
	v.SetDefault("background.color", "#101010")
	v.SetDefault("background.line_color", "#c05621")
	v.SetDefault("background.line_width", 2.0)
	v.SetDefault("background.fps", 90.0)
	v.SetDefault("background.speed", 0.0)
	v.SetDefault("background.axis", "y")
	v.SetDefault("background.pixelated", false)
	v.SetDefault("background.splash_title", "")
	v.SetDefault("background.splash_frames", 0)
	v.SetDefault("background.restart", true)
	v.SetDefault("background.restart_delay", 90)
}

// Options tweaks where Load looks.
type Options struct {
	// Dir holds the config file and the .env files. Empty means the working directory.
	Dir string
	// Overrides take precedence over every other source (command-line flags).
	Overrides map[string]interface{}
}

var validate = validator.New()

// Load reads the configuration.
//
// .env and .env.<node_env> in Dir are loaded into the environment when present; values
// already set in the environment win.
func Load(opts Options) (*Config, error) {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	if err := loadDotEnv(filepath.Join(dir, ".env")); err != nil {
		return nil, err
	}
	if env := os.Getenv("NODE_ENV"); env != "" {
		if err := loadDotEnv(filepath.Join(dir, ".env."+strings.ToLower(env))); err != nil {
			return nil, err
		}
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("clubsite")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "config: read file")
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for k, val := range opts.Overrides {
		v.Set(k, val)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "config: unmarshal")
	}
	if err := validate.Struct(&c); err != nil {
		return nil, errors.Wrap(err, "config: validate")
	}
	if _, err := c.WireframeOptions(); err != nil {
		return nil, errors.Wrap(err, "config")
	}
	if _, err := c.Geometry(); err != nil {
		return nil, errors.Wrap(err, "config")
	}
	return &c, nil
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "config: stat %s", path)
	}
	if err := godotenv.Load(path); err != nil {
		return errors.Wrapf(err, "config: load %s", path)
	}
	return nil
}
