package actionsheet

import (
	"github.com/google/uuid"
)

// Handler runs when the user selects an action. It receives the selected action.
type Handler func(action *Action)

// Action is a single selectable operation in an action sheet.
//
// Actions have reference identity: two actions built with the same title are
// distinct, and the Controller finds them by ID. Create actions with NewAction
// and add them to a Controller before it appears.
type Action struct {
	id      uuid.UUID
	title   string
	style   Style
	enabled bool
	handler Handler
	icon    []byte
}

// ActionOption customizes an Action at construction.
type ActionOption func(*Action)

// WithIcon attaches SVG icon data rendered next to the action title.
func WithIcon(svg []byte) ActionOption {
	return func(a *Action) {
		a.icon = svg
	}
}

// WithEnabled sets the initial enabled state. Actions are enabled by default.
func WithEnabled(enabled bool) ActionOption {
	return func(a *Action) {
		a.enabled = enabled
	}
}

// NewAction creates an action with the given title, style and handler.
// A nil style means StyleDefault. A nil handler is allowed.
func NewAction(title string, style Style, handler Handler, opts ...ActionOption) *Action {
	if style == nil {
		style = StyleDefault
	}

	a := &Action{
		id:      uuid.New(),
		title:   title,
		style:   style,
		enabled: true,
		handler: handler,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

func (a *Action) ID() uuid.UUID    { return a.id }
func (a *Action) Title() string    { return a.title }
func (a *Action) Style() Style     { return a.style }
func (a *Action) Handler() Handler { return a.handler }
func (a *Action) Icon() []byte     { return a.icon }
func (a *Action) IsEnabled() bool  { return a.enabled }

// SetEnabled toggles the action. Taps on a disabled action have no effect.
func (a *Action) SetEnabled(enabled bool) {
	a.enabled = enabled
}

func (a *Action) run() {
	if a.handler != nil {
		a.handler(a)
	}
}

// confirmationFor builds the confirmation-step action for a tapped action.
// The handler is passed through unchanged.
func confirmationFor(source *Action, style ConfirmationStyle) *Action {
	title := style.ConfirmationTitle
	if title == "" {
		title = source.title
	}

	return &Action{
		id:      uuid.New(),
		title:   title,
		style:   styleIsConfirmation,
		enabled: true,
		handler: source.handler,
		icon:    source.icon,
	}
}
