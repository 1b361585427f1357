package main

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet"
	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet/sdlsheet"
	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet/sheetfile"
)

type options struct {
	sheetPath  string
	title      string
	message    string
	actions    []string
	cancel     string
	configPath string
	locale     string
	devicePath string
	fontPath   string
	logLevel   string
	logPath    string
}

// loadSheet builds the sheet definition from the sheet file and flags.
func loadSheet(opts *options) (*sheetfile.Definition, error) {
	def := &sheetfile.Definition{}
	if opts.sheetPath != "" {
		loaded, err := sheetfile.Load(opts.sheetPath)
		if err != nil {
			return nil, err
		}
		def = loaded
	}

	if opts.title != "" {
		def.Title = opts.title
	}
	if opts.message != "" {
		def.Message = opts.message
	}
	for _, title := range opts.actions {
		def.Actions = append(def.Actions, sheetfile.ActionDefinition{Title: title})
	}
	if opts.cancel != "" {
		def.Actions = append(def.Actions, sheetfile.ActionDefinition{Title: opts.cancel, Style: sheetfile.StyleCancel})
	}

	if len(def.Actions) == 0 {
		return nil, errors.New("no actions: pass --sheet or at least one --action")
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return def, nil
}

func loadConfiguration(opts *options) (actionsheet.Configuration, error) {
	cfg := actionsheet.DefaultConfiguration()
	if opts.configPath != "" {
		loaded, err := actionsheet.LoadConfiguration(opts.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if opts.locale != "" {
		cfg.Locale = opts.locale
	}
	return cfg, nil
}

func run(opts *options) (string, error) {
	if opts.logPath != "" {
		actionsheet.SetLogPath(opts.logPath)
	}
	actionsheet.SetRawLogLevel(opts.logLevel)
	logger := actionsheet.GetLogger()

	def, err := loadSheet(opts)
	if err != nil {
		return "", err
	}

	cfg, err := loadConfiguration(opts)
	if err != nil {
		return "", err
	}

	localizer, err := actionsheet.NewLocalizer(cfg.Locale)
	if err != nil {
		return "", fmt.Errorf("load translations: %w", err)
	}

	actions, picked, err := buildActions(def)
	if err != nil {
		return "", err
	}

	if err := sdlsheet.Init(sdlsheet.Options{WindowTitle: def.Title, FontPath: opts.fontPath, LogPath: opts.logPath}); err != nil {
		return "", err
	}
	defer sdlsheet.Close()

	settings := sdlsheet.Settings{
		Configuration: &cfg,
		Localizer:     localizer,
	}

	if opts.devicePath != "" {
		source, closeSource, err := openButtonSource(opts.devicePath)
		if err != nil {
			return "", err
		}
		defer closeSource()
		settings.ButtonSource = source
	}

	result, err := sdlsheet.ActionSheet(def.Title, def.Message, actions, settings)
	if err != nil {
		if sdlsheet.IsCancelled(err) {
			return "", errCancelled
		}
		return "", err
	}

	if result.Cancelled || !picked.ok {
		logger.Debug("Sheet cancelled")
		return "", errCancelled
	}

	logger.Debug("Action picked", "title", picked.title)
	return picked.title, nil
}

// pick is the sheet-file action whose handler ran.
type pick struct {
	title string
	index int
	ok    bool
}

// buildActions creates the sheet's actions, reporting the picked definition's
// own title even when it ran behind a confirmation step.
func buildActions(def *sheetfile.Definition) ([]*actionsheet.Action, *pick, error) {
	picked := &pick{}
	actions, err := def.Build(func(index int, a sheetfile.ActionDefinition) {
		picked.title = a.Title
		picked.index = index
		picked.ok = true
	})
	if err != nil {
		return nil, nil, err
	}
	return actions, picked, nil
}
