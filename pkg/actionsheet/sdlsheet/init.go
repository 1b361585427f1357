// Package sdlsheet draws action sheets with SDL2 on handheld Linux devices and
// desktops.
//
//	if err := sdlsheet.Init(sdlsheet.Options{WindowTitle: "Store"}); err != nil {
//	    log.Fatal(err)
//	}
//	defer sdlsheet.Close()
//
//	result, err := sdlsheet.ActionSheet("Which Mac Pro would you like to buy?", "", actions, sdlsheet.Settings{})
package sdlsheet

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet"
	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet/constants"
	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet/sdlsheet/internal"
	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet/sdlsheet/platform/cannoli"
)

// Options configures SDL initialization.
type Options struct {
	WindowTitle          string                 // Window title displayed in windowed mode
	WindowOptions        internal.WindowOptions // SDL window flags (borderless, resizable, etc.)
	FontPath             string                 // Primary font; defaults to the Cannoli font
	BackgroundImagePath  string                 // Image drawn behind the dimmed overlay
	PrimaryThemeColorHex uint32                 // Custom accent color
	LogPath              string                 // Full path for log file including filename
}

// Init initializes SDL, the window, theming and controllers.
// Must be called before ActionSheet.
func Init(options Options) error {
	if options.LogPath != "" {
		actionsheet.SetLogPath(options.LogPath)
	}

	if level := os.Getenv(constants.LogLevelEnvVar); level != "" {
		actionsheet.SetRawLogLevel(level)
	}
	if constants.IsDevMode() {
		actionsheet.SetInternalLogLevel(slog.LevelDebug)
	}

	fontPath := options.FontPath
	if fontPath == "" {
		fontPath = cannoli.DefaultFontPath
	}

	theme := cannoli.InitCannoliTheme(fontPath)
	theme.BackgroundImagePath = options.BackgroundImagePath
	if options.PrimaryThemeColorHex != 0 {
		theme.AccentColor = internal.HexToColor(options.PrimaryThemeColorHex)
	}
	internal.SetTheme(theme)

	if err := internal.Init(options.WindowTitle, options.WindowOptions); err != nil {
		return NewInfrastructureError("init", err)
	}
	return nil
}

// Close releases all SDL resources.
func Close() {
	internal.SDLCleanup()
	actionsheet.CloseLogger()
}

// HideWindow hides the application window.
func HideWindow() {
	if w := internal.GetWindow(); w != nil {
		w.Window.Hide()
	}
}

// ShowWindow shows the application window.
func ShowWindow() {
	if w := internal.GetWindow(); w != nil {
		w.Window.Show()
	}
}
