package actionsheet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigurationIsValid(t *testing.T) {
	cfg := DefaultConfiguration()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, constants.CancelPositionRight, cfg.CancelPosition)
	assert.Equal(t, constants.TextAlignCenter, cfg.HeaderAlignment)
	assert.False(t, cfg.CancelMatchesAlignment)
	assert.Nil(t, cfg.LandscapeCornerRadius)
}

func TestParseConfigurationTOML(t *testing.T) {
	data := []byte(`
header_alignment = "left"
action_alignment = "right"
cancel_position = "left"
cancel_matches_alignment = true
corner_radius = 6.0
landscape_corner_radius = 16.0
locale = "fr"

[action_font]
path = "/mnt/SDCARD/fonts/sheet.ttf"
size = 18
`)

	cfg, err := ParseConfiguration(data, ".toml")
	require.NoError(t, err)

	assert.Equal(t, constants.TextAlignLeft, cfg.HeaderAlignment)
	assert.Equal(t, constants.TextAlignRight, cfg.ActionAlignment)
	assert.Equal(t, constants.CancelPositionLeft, cfg.CancelPosition)
	assert.True(t, cfg.CancelMatchesAlignment)
	assert.Equal(t, 6.0, cfg.CornerRadius)
	require.NotNil(t, cfg.LandscapeCornerRadius)
	assert.Equal(t, 16.0, *cfg.LandscapeCornerRadius)
	assert.Equal(t, "/mnt/SDCARD/fonts/sheet.ttf", cfg.ActionFont.Path)
	assert.Equal(t, 18, cfg.ActionFont.Size)
	assert.Equal(t, constants.DefaultButtonHeight, cfg.ButtonHeight)
	assert.Equal(t, "fr", cfg.Locale)
}

func TestParseConfigurationYAML(t *testing.T) {
	data := []byte(`
header_alignment: right
cancel_position: left
button_height: 56
action_font:
  size: 14
`)

	cfg, err := ParseConfiguration(data, "yaml")
	require.NoError(t, err)

	assert.Equal(t, constants.TextAlignRight, cfg.HeaderAlignment)
	assert.Equal(t, constants.CancelPositionLeft, cfg.CancelPosition)
	assert.Equal(t, int32(56), cfg.ButtonHeight)
	assert.Equal(t, 14, cfg.ActionFont.Size)
	assert.Equal(t, constants.DefaultCornerRadius, cfg.CornerRadius)
}

func TestParseConfigurationErrors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format string
	}{
		{name: "unknown format", data: "", format: ".json"},
		{name: "bad alignment", data: `header_alignment = "diagonal"`, format: ".toml"},
		{name: "bad position", data: "cancel_position: middle", format: ".yml"},
		{name: "negative radius", data: "corner_radius = -1.0", format: ".toml"},
		{name: "zero height", data: "button_height = 0", format: ".toml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfiguration([]byte(tt.data), tt.format)
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigurationFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.toml")
	require.NoError(t, os.WriteFile(path, []byte(`cancel_position = "left"`), 0644))

	cfg, err := LoadConfiguration(path)
	require.NoError(t, err)
	assert.Equal(t, constants.CancelPositionLeft, cfg.CancelPosition)

	_, err = LoadConfiguration(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestCornerRadiusFor(t *testing.T) {
	cfg := DefaultConfiguration()
	assert.Equal(t, cfg.CornerRadius, cfg.CornerRadiusFor(true))

	landscape := 12.0
	cfg.LandscapeCornerRadius = &landscape
	assert.Equal(t, 12.0, cfg.CornerRadiusFor(true))
	assert.Equal(t, cfg.CornerRadius, cfg.CornerRadiusFor(false))
}
