// Package config loads cardpanel settings from a TOML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cardpanel/internal/card"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment overrides, e.g. CARDPANEL_LAYOUT_BUFFER.
const EnvPrefix = "CARDPANEL"

// ConfigEnv points at an explicit config file.
const ConfigEnv = "CARDPANEL_CONFIG"

// Config holds application configuration.
type Config struct {
	Layout    LayoutConfig    `mapstructure:"layout"`
	Animation AnimationConfig `mapstructure:"animation"`
	Shadow    ShadowConfig    `mapstructure:"shadow"`
	UI        UIConfig        `mapstructure:"ui"`
}

// LayoutConfig holds the geometry of the three states, in cells.
type LayoutConfig struct {
	SideMargin      float64 `mapstructure:"side_margin"`
	HeightRatio     float64 `mapstructure:"height_ratio"`
	MinimizedReveal float64 `mapstructure:"minimized_reveal"`
	StackRatio      float64 `mapstructure:"stack_ratio"`
	ExpandedRatio   float64 `mapstructure:"expanded_ratio"`
	Buffer          float64 `mapstructure:"buffer"`
}

// AnimationConfig holds the spring used between states.
type AnimationConfig struct {
	Damping         float64       `mapstructure:"damping"`
	InitialVelocity float64       `mapstructure:"initial_velocity"`
	Duration        time.Duration `mapstructure:"duration"`
	FPS             int           `mapstructure:"fps"`
}

// ShadowConfig holds snapshot decoration.
type ShadowConfig struct {
	Opacity float64 `mapstructure:"opacity"`
	Radius  float64 `mapstructure:"radius"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	InitialState string `mapstructure:"initial_state"`
	ExportDir    string `mapstructure:"export_dir"`
}

func setDefaults(v *viper.Viper) {
	// a terminal is a few dozen cells tall, so the unit defaults of
	// card.DefaultMetrics are scaled down here
	v.SetDefault("layout.side_margin", 2)
	v.SetDefault("layout.height_ratio", 0.9)
	v.SetDefault("layout.minimized_reveal", 3)
	v.SetDefault("layout.stack_ratio", 0.4)
	v.SetDefault("layout.expanded_ratio", 0.1)
	v.SetDefault("layout.buffer", 2)

	d := card.DefaultMetrics()
	v.SetDefault("animation.damping", d.Spring.Damping)
	v.SetDefault("animation.initial_velocity", d.Spring.InitialVelocity)
	v.SetDefault("animation.duration", d.Spring.Duration)
	v.SetDefault("animation.fps", d.Spring.FPS)
	v.SetDefault("shadow.opacity", d.Shadow.Opacity)
	v.SetDefault("shadow.radius", d.Shadow.Radius)

	v.SetDefault("ui.initial_state", card.Stack.String())
	v.SetDefault("ui.export_dir", os.TempDir())
}

// Load reads configuration from file and env. The file is $CARDPANEL_CONFIG
// or ~/.config/cardpanel/config.toml; a missing file is not an error.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	if path := os.Getenv(ConfigEnv); path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "cardpanel"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings that would stall the animation or that name an
// unknown state. Layout values are not checked; odd ones give odd but
// harmless rectangles.
func (c Config) Validate() error {
	if c.Animation.FPS <= 0 {
		return fmt.Errorf("animation.fps must be positive, got %d", c.Animation.FPS)
	}
	if c.Animation.Duration <= 0 {
		return fmt.Errorf("animation.duration must be positive, got %s", c.Animation.Duration)
	}
	if _, err := card.ParseState(c.UI.InitialState); err != nil {
		return fmt.Errorf("ui.initial_state: %w", err)
	}
	return nil
}

// InitialState returns the configured starting state.
func (c Config) InitialState() card.State {
	s, err := card.ParseState(c.UI.InitialState)
	if err != nil {
		return card.Stack
	}
	return s
}

// Metrics converts the configuration into card metrics.
func (c Config) Metrics() card.Metrics {
	return card.Metrics{
		SideMargin:      c.Layout.SideMargin,
		HeightRatio:     c.Layout.HeightRatio,
		MinimizedReveal: c.Layout.MinimizedReveal,
		StackRatio:      c.Layout.StackRatio,
		ExpandedRatio:   c.Layout.ExpandedRatio,
		Buffer:          c.Layout.Buffer,
		Spring: card.SpringParams{
			Damping:         c.Animation.Damping,
			InitialVelocity: c.Animation.InitialVelocity,
			Duration:        c.Animation.Duration,
			FPS:             c.Animation.FPS,
		},
		Shadow: card.Shadow{
			Opacity: c.Shadow.Opacity,
			Radius:  c.Shadow.Radius,
		},
	}
}
