package actionsheet

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet/constants"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Font names a font file and point size.
type Font struct {
	Path string `toml:"path" yaml:"path"` // Path to a TTF file, empty uses the renderer default
	Size int    `toml:"size" yaml:"size"`
}

// Configuration controls how a Controller lays out and styles its sheet.
type Configuration struct {
	HeaderAlignment        constants.TextAlign      `toml:"header_alignment" yaml:"header_alignment"`
	ActionAlignment        constants.TextAlign      `toml:"action_alignment" yaml:"action_alignment"`
	CancelPosition         constants.CancelPosition `toml:"cancel_position" yaml:"cancel_position"`
	CancelMatchesAlignment bool                     `toml:"cancel_matches_alignment" yaml:"cancel_matches_alignment"` // Cancel follows ActionAlignment in the default state instead of centering
	ActionFont             Font                     `toml:"action_font" yaml:"action_font"`
	CornerRadius           float64                  `toml:"corner_radius" yaml:"corner_radius"`
	LandscapeCornerRadius  *float64                 `toml:"landscape_corner_radius" yaml:"landscape_corner_radius"` // nil uses CornerRadius in both orientations
	ButtonHeight           int32                    `toml:"button_height" yaml:"button_height"`
	Locale                 string                   `toml:"locale" yaml:"locale"` // BCP 47 tag for built-in titles, empty means English
}

// DefaultConfiguration returns the configuration used when none is supplied.
func DefaultConfiguration() Configuration {
	return Configuration{
		HeaderAlignment: constants.TextAlignCenter,
		ActionAlignment: constants.TextAlignCenter,
		CancelPosition:  constants.DefaultCancelPosition,
		ActionFont:      Font{Size: constants.DefaultActionFontSize},
		CornerRadius:    constants.DefaultCornerRadius,
		ButtonHeight:    constants.DefaultButtonHeight,
	}
}

// Validate reports configuration values no sheet can be drawn with.
func (c Configuration) Validate() error {
	var errs []error

	if c.CornerRadius < 0 {
		errs = append(errs, fmt.Errorf("corner_radius must not be negative, got %v", c.CornerRadius))
	}
	if c.LandscapeCornerRadius != nil && *c.LandscapeCornerRadius < 0 {
		errs = append(errs, fmt.Errorf("landscape_corner_radius must not be negative, got %v", *c.LandscapeCornerRadius))
	}
	if c.ButtonHeight <= 0 {
		errs = append(errs, fmt.Errorf("button_height must be positive, got %d", c.ButtonHeight))
	}
	if c.ActionFont.Size <= 0 {
		errs = append(errs, fmt.Errorf("action_font.size must be positive, got %d", c.ActionFont.Size))
	}

	return errors.Join(errs...)
}

// CornerRadiusFor returns the radius for the current orientation.
// Compact vertical size class means landscape.
func (c Configuration) CornerRadiusFor(compact bool) float64 {
	if compact && c.LandscapeCornerRadius != nil {
		return *c.LandscapeCornerRadius
	}
	return c.CornerRadius
}

// LoadConfiguration reads a TOML or YAML file over DefaultConfiguration.
// The format is picked from the file extension.
func LoadConfiguration(path string) (Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Configuration{}, fmt.Errorf("read configuration: %w", err)
	}

	cfg, err := ParseConfiguration(data, filepath.Ext(path))
	if err != nil {
		return Configuration{}, fmt.Errorf("configuration %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfiguration decodes data in the named format (".toml", ".yaml" or ".yml")
// over DefaultConfiguration and validates the result.
func ParseConfiguration(data []byte, format string) (Configuration, error) {
	cfg := DefaultConfiguration()

	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return Configuration{}, fmt.Errorf("decode toml: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Configuration{}, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return Configuration{}, fmt.Errorf("unsupported configuration format %q", format)
	}

	if err := cfg.Validate(); err != nil {
		return Configuration{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
