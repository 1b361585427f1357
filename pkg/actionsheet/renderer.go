package actionsheet

import (
	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet/constants"
)

// Entry is an action plus the display attributes the Controller resolved for it.
type Entry struct {
	Action    *Action
	Alignment constants.TextAlign
	Font      Font
	Height    int32
}

// Appearance is the sheet-wide styling applied when a sheet appears.
type Appearance struct {
	HeaderAlignment constants.TextAlign
	CancelPosition  constants.CancelPosition
	CornerRadius    float64
}

// Renderer draws a sheet. The Controller drives it; a Renderer reports taps back
// through Controller.Tap and never decides what a tap does.
type Renderer interface {
	SetAppearance(appearance Appearance)
	UpdateHeader(title, message string)
	SetActionButtons(entries []Entry)
	SetCancelAction(entry Entry)
	EnterConfirmationState(confirmation, cancel Entry, position constants.CancelPosition)
	// SetNeedsLayout tells the renderer its content size changed.
	SetNeedsLayout()
	SetCornerRadius(radius float64)
	FlashScrollIndicators()
}

// Host is the presenting environment that owns the sheet on screen.
type Host interface {
	RequestDismiss()
}

// HostFunc adapts a function to the Host interface.
type HostFunc func()

func (f HostFunc) RequestDismiss() { f() }
