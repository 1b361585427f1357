// Package constants defines shared constants, types, and configuration values
// used throughout the actionsheet packages.
package constants

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variable names read by the SDL renderer.
const (
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
	LogLevelEnvVar     = "ACTIONSHEET_LOG_LEVEL"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// VirtualButton represents an abstract input button, mapped from physical hardware.
// Keyboard, game controller and evdev input all resolve to these values.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonStart:
		return "Start"
	case VirtualButtonSelect:
		return "Select"
	case VirtualButtonMenu:
		return "Menu"
	default:
		return "Unknown"
	}
}

// TextAlign specifies horizontal alignment for header text and button content.
type TextAlign int

const (
	TextAlignCenter TextAlign = iota // Center content horizontally
	TextAlignLeft                    // Align content to the left edge
	TextAlignRight                   // Align content to the right edge
)

func (a TextAlign) String() string {
	switch a {
	case TextAlignLeft:
		return "left"
	case TextAlignRight:
		return "right"
	default:
		return "center"
	}
}

func (a TextAlign) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *TextAlign) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "center", "centre", "":
		*a = TextAlignCenter
	case "left", "leading":
		*a = TextAlignLeft
	case "right", "trailing":
		*a = TextAlignRight
	default:
		return fmt.Errorf("unknown text alignment %q", string(text))
	}
	return nil
}

// CancelPosition decides which side of the confirmation action the cancel
// action sits on while a sheet is in its confirmation state.
type CancelPosition int

const (
	CancelPositionRight CancelPosition = iota // Cancel in the right slot (index 1)
	CancelPositionLeft                        // Cancel in the left slot (index 0)
)

// DefaultCancelPosition is the placement used when none is configured.
const DefaultCancelPosition = CancelPositionRight

func (p CancelPosition) String() string {
	if p == CancelPositionLeft {
		return "left"
	}
	return "right"
}

func (p CancelPosition) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *CancelPosition) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "right", "":
		*p = CancelPositionRight
	case "left":
		*p = CancelPositionLeft
	default:
		return fmt.Errorf("unknown cancel position %q", string(text))
	}
	return nil
}

// Default timing, sizing and spacing constants.
const (
	DefaultInputDelay          = 20 * time.Millisecond  // Debounce delay between input events
	TraitChangeFlashDelay      = 400 * time.Millisecond // Delay before flashing scroll indicators after a trait change
	ScrollIndicatorFlashLength = time.Second            // How long flashed scroll indicators stay visible

	DefaultCornerRadius       = 8.0
	DefaultButtonHeight int32 = 48
	DefaultActionFontSize     = 15
	DefaultTitleFontSize      = 20
	DefaultMessageFontSize    = 15

	SheetInset         int32 = 20 // Inset between sheet edge and content
	SheetBottomInset   int32 = 32
	TitleSpacing       int32 = 16 // Space below the title
	MessageSpacing     int32 = 20 // Space below the message
	DividerSpacing     int32 = 20 // Space below the divider
	RowSpacing         int32 = 8
	BackgroundDimAlpha uint8 = 102 // 40% black behind the sheet

	PortraitMaxHeightRatio  = 0.8  // Maximum sheet height relative to the window in portrait
	LandscapeMaxHeightRatio = 0.97 // Maximum sheet height relative to the window in landscape
)
