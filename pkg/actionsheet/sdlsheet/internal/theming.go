package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the colors and font of a sheet.
type Theme struct {
	SheetColor           sdl.Color // Sheet background
	HighlightColor       sdl.Color // Focused row background
	AccentColor          sdl.Color // Scroll indicator, cancel row text
	TextColor            sdl.Color // Default text color
	HighlightedTextColor sdl.Color // Text on the focused row
	HintColor            sdl.Color // Message text, disabled rows
	DividerColor         sdl.Color // Line between header and rows
	BackgroundColor      sdl.Color // Screen behind the dimmed overlay
	FontPath             string    // Path to the primary UI font
	BackgroundImagePath  string    // Optional background image
}

var currentTheme Theme

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts 0xRRGGBB to an opaque color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16 & 0xFF),
		G: uint8(hex >> 8 & 0xFF),
		B: uint8(hex & 0xFF),
		A: 255,
	}
}
