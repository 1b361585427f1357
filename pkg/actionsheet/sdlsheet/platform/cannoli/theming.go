// Package cannoli provides theming support for the Cannoli custom firmware.
// Cannoli is a community-developed CFW for retro handheld gaming devices.
package cannoli

import (
	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet/sdlsheet/internal"
)

// DefaultFontPath is where Cannoli keeps its UI font.
const DefaultFontPath = "/mnt/SDCARD/System/fonts/Cannoli.ttf"

// InitCannoliTheme creates a sheet theme with Cannoli's default colors and the specified font.
func InitCannoliTheme(fontPath string) internal.Theme {
	return internal.Theme{
		SheetColor:           internal.HexToColor(0x1E1E1E),
		HighlightColor:       internal.HexToColor(0xFFFFFF),
		AccentColor:          internal.HexToColor(0x008080),
		TextColor:            internal.HexToColor(0xFFFFFF),
		HighlightedTextColor: internal.HexToColor(0x000000),
		HintColor:            internal.HexToColor(0x9E9E9E),
		DividerColor:         internal.HexToColor(0x3A3A3A),
		BackgroundColor:      internal.HexToColor(0x000000),
		FontPath:             fontPath,
	}
}
