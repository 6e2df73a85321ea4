package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"cardpanel/internal/card"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(ConfigEnv, "")

	c, err := Load()
	require.NoError(t, err)

	m := c.Metrics()
	assert.Equal(t, 2.0, m.SideMargin)
	assert.Equal(t, 3.0, m.MinimizedReveal)
	assert.Equal(t, 2.0, m.Buffer)
	assert.Equal(t, 0.4, m.StackRatio)
	assert.Equal(t, 450*time.Millisecond, m.Spring.Duration)
	assert.Equal(t, card.Shadow{Opacity: 0.25, Radius: 5}, m.Shadow)
	assert.Equal(t, card.Stack, c.InitialState())
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cardpanel.toml")
	err := os.WriteFile(path, []byte(`
[layout]
side_margin = 10
minimized_reveal = 110
buffer = 25

[animation]
duration = "300ms"

[ui]
initial_state = "expanded"
`), 0o644)
	require.NoError(t, err)

	t.Setenv(ConfigEnv, path)
	t.Setenv("CARDPANEL_LAYOUT_BUFFER", "7")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10.0, c.Layout.SideMargin)
	assert.Equal(t, 110.0, c.Layout.MinimizedReveal)
	assert.Equal(t, 7.0, c.Layout.Buffer, "env overrides the file")
	assert.Equal(t, 300*time.Millisecond, c.Animation.Duration)
	assert.Equal(t, card.Expanded, c.InitialState())
}

func TestLoad_InvalidState(t *testing.T) {
	t.Setenv(ConfigEnv, "")
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CARDPANEL_UI_INITIAL_STATE", "sideways")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Setenv(ConfigEnv, filepath.Join(t.TempDir(), "nope.toml"))
	_, err := Load()
	assert.NoError(t, err)
}

func TestValidate(t *testing.T) {
	c := Config{
		Animation: AnimationConfig{FPS: 60, Duration: time.Second},
		UI:        UIConfig{InitialState: "stack"},
	}
	assert.NoError(t, c.Validate())

	bad := c
	bad.Animation.FPS = 0
	assert.Error(t, bad.Validate())

	bad = c
	bad.Animation.Duration = 0
	assert.Error(t, bad.Validate())
}

func TestMetrics_MatchesCardDefaultsWhenConfiguredSo(t *testing.T) {
	d := card.DefaultMetrics()
	c := Config{
		Layout: LayoutConfig{
			SideMargin:      d.SideMargin,
			HeightRatio:     d.HeightRatio,
			MinimizedReveal: d.MinimizedReveal,
			StackRatio:      d.StackRatio,
			ExpandedRatio:   d.ExpandedRatio,
			Buffer:          d.Buffer,
		},
		Animation: AnimationConfig{
			Damping:         d.Spring.Damping,
			InitialVelocity: d.Spring.InitialVelocity,
			Duration:        d.Spring.Duration,
			FPS:             d.Spring.FPS,
		},
		Shadow: ShadowConfig{Opacity: d.Shadow.Opacity, Radius: d.Shadow.Radius},
	}
	assert.Equal(t, d, c.Metrics())
}
