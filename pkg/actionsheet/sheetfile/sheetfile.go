// Package sheetfile describes an action sheet in a TOML or YAML file, so shell
// scripts can show a sheet without writing Go.
//
//	title = "Which Mac Pro would you like to buy?"
//
//	[[actions]]
//	title = "Buy Gen 1"
//
//	[[actions]]
//	title = "Buy All"
//	style = "confirm"
//	icon = "icons/cart.svg"
//	confirmation = { title = "Buy All Mac Pro Gens", button = "Buy All" }
//
//	[[actions]]
//	title = "Never mind"
//	style = "cancel"
package sheetfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Style names accepted in the style field.
const (
	StyleDefault = "default"
	StyleCancel  = "cancel"
	StyleConfirm = "confirm"
)

// Confirmation is the confirmation step of a "confirm" action.
type Confirmation struct {
	Title   string `toml:"title" yaml:"title"`
	Message string `toml:"message" yaml:"message"`
	Button  string `toml:"button" yaml:"button"` // Empty reuses the action title
}

// ActionDefinition is one action in a sheet file.
type ActionDefinition struct {
	Title        string       `toml:"title" yaml:"title"`
	Style        string       `toml:"style" yaml:"style"`
	Enabled      *bool        `toml:"enabled" yaml:"enabled"`
	Icon         string       `toml:"icon" yaml:"icon"` // SVG path, relative to the sheet file
	Confirmation Confirmation `toml:"confirmation" yaml:"confirmation"`
}

// Definition is a whole sheet.
type Definition struct {
	Title   string             `toml:"title" yaml:"title"`
	Message string             `toml:"message" yaml:"message"`
	Actions []ActionDefinition `toml:"actions" yaml:"actions"`

	baseDir string
}

// Load reads a sheet file. The format is picked from the file extension.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sheet: %w", err)
	}

	def, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("sheet %s: %w", path, err)
	}
	def.baseDir = filepath.Dir(path)
	return def, nil
}

// Parse decodes data in the named format (".toml", ".yaml" or ".yml") and validates it.
func Parse(data []byte, format string) (*Definition, error) {
	def := &Definition{}

	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "toml":
		if _, err := toml.Decode(string(data), def); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, def); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported sheet format %q", format)
	}

	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sheet: %w", err)
	}
	return def, nil
}

// Validate reports actions that cannot be built or shown, including more than
// one cancel action.
func (d *Definition) Validate() error {
	var errs []error
	cancels := 0

	for i, a := range d.Actions {
		if strings.TrimSpace(a.Title) == "" {
			errs = append(errs, fmt.Errorf("actions[%d]: title is required", i))
		}

		switch strings.ToLower(a.Style) {
		case "", StyleDefault:
		case StyleCancel:
			cancels++
		case StyleConfirm:
			if strings.TrimSpace(a.Confirmation.Title) == "" {
				errs = append(errs, fmt.Errorf("actions[%d]: confirm style needs confirmation.title", i))
			}
		default:
			errs = append(errs, fmt.Errorf("actions[%d]: unknown style %q", i, a.Style))
		}
	}

	if cancels > 1 {
		errs = append(errs, fmt.Errorf("only one action can have the cancel style, found %d", cancels))
	}

	return errors.Join(errs...)
}

// PickFunc receives the index and definition of the action the user picked. For a
// confirm action it runs once the confirmation step is accepted.
type PickFunc func(index int, picked ActionDefinition)

// Build creates the actions. Every handler reports its own definition to onPick,
// so confirm actions sharing a button label stay distinguishable.
func (d *Definition) Build(onPick PickFunc) ([]*actionsheet.Action, error) {
	actions := make([]*actionsheet.Action, 0, len(d.Actions))

	for i, a := range d.Actions {
		var opts []actionsheet.ActionOption
		if a.Enabled != nil {
			opts = append(opts, actionsheet.WithEnabled(*a.Enabled))
		}

		if a.Icon != "" {
			path := a.Icon
			if !filepath.IsAbs(path) {
				path = filepath.Join(d.baseDir, path)
			}
			svg, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("actions[%d]: read icon: %w", i, err)
			}
			opts = append(opts, actionsheet.WithIcon(svg))
		}

		var handler actionsheet.Handler
		if onPick != nil {
			index, def := i, a
			handler = func(*actionsheet.Action) { onPick(index, def) }
		}

		actions = append(actions, actionsheet.NewAction(a.Title, a.style(), handler, opts...))
	}

	return actions, nil
}

func (a ActionDefinition) style() actionsheet.Style {
	switch strings.ToLower(a.Style) {
	case StyleCancel:
		return actionsheet.StyleCancel
	case StyleConfirm:
		return actionsheet.HasConfirmation(a.Confirmation.Title, a.Confirmation.Message, a.Confirmation.Button)
	default:
		return actionsheet.StyleDefault
	}
}
