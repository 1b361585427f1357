package actionsheet

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

var cancelMessage = &i18n.Message{
	ID:          "Cancel",
	Description: "Title of the cancel action added to a sheet without one",
	Other:       "Cancel",
}

// Localizer resolves the titles the library generates itself.
type Localizer struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
}

// NewLocalizer creates a localizer for the given BCP 47 tags, most preferred first.
// The built-in English, Spanish, French and German messages are always loaded.
func NewLocalizer(langs ...string) (*Localizer, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return nil, fmt.Errorf("read built-in locales: %w", err)
	}

	for _, entry := range entries {
		name := path.Join("locales", entry.Name())
		data, err := localeFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, entry.Name()); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
	}

	return &Localizer{
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, langs...),
	}, nil
}

// LoadMessageFile adds a message file such as "active.it.toml".
// The language is taken from the file name.
func (l *Localizer) LoadMessageFile(filename string) error {
	if _, err := l.bundle.LoadMessageFile(filename); err != nil {
		return fmt.Errorf("load message file: %w", err)
	}
	return nil
}

// SetLanguages changes the preferred languages for later lookups.
func (l *Localizer) SetLanguages(langs ...string) {
	l.localizer = i18n.NewLocalizer(l.bundle, langs...)
}

// CancelTitle returns the title for a synthesized cancel action.
func (l *Localizer) CancelTitle() string {
	if l == nil {
		return cancelMessage.Other
	}

	title, err := l.localizer.Localize(&i18n.LocalizeConfig{DefaultMessage: cancelMessage})
	if title == "" {
		if err != nil {
			GetInternalLogger().Debug("Falling back to default cancel title", "error", err)
		}
		return cancelMessage.Other
	}
	return title
}
