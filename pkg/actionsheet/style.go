package actionsheet

// StyleKind identifies which variant a Style is.
type StyleKind int

const (
	StyleKindDefault         StyleKind = iota // Runs the handler, then dismisses
	StyleKindCancel                           // Like default, rendered last, at most one per sheet
	StyleKindHasConfirmation                  // Defers the handler behind a confirmation step
	StyleKindIsConfirmation                   // The synthesized confirmation step action
)

func (k StyleKind) String() string {
	switch k {
	case StyleKindDefault:
		return "default"
	case StyleKindCancel:
		return "cancel"
	case StyleKindHasConfirmation:
		return "hasConfirmation"
	case StyleKindIsConfirmation:
		return "isConfirmation"
	default:
		return "unknown"
	}
}

// Style describes how an action is placed and what a tap on it does.
//
// The set of styles is closed. Use StyleDefault, StyleCancel or HasConfirmation;
// the confirmation-step style is only ever assigned by the Controller.
type Style interface {
	Kind() StyleKind
	sealed()
}

type defaultStyle struct{}

func (defaultStyle) Kind() StyleKind { return StyleKindDefault }
func (defaultStyle) sealed()         {}

type cancelStyle struct{}

func (cancelStyle) Kind() StyleKind { return StyleKindCancel }
func (cancelStyle) sealed()         {}

type isConfirmationStyle struct{}

func (isConfirmationStyle) Kind() StyleKind { return StyleKindIsConfirmation }
func (isConfirmationStyle) sealed()         {}

// ConfirmationStyle is a default style action with a confirmation step attached.
//
// The first tap replaces the sheet header with Title and Message and shows a
// confirmation action next to the cancel action. The handler only runs once the
// confirmation action is tapped.
type ConfirmationStyle struct {
	Title             string // New sheet title for the confirmation step, required
	Message           string // New sheet message, optional
	ConfirmationTitle string // Title of the confirmation action, defaults to the action title
}

func (ConfirmationStyle) Kind() StyleKind { return StyleKindHasConfirmation }
func (ConfirmationStyle) sealed()         {}

var (
	StyleDefault Style = defaultStyle{}
	StyleCancel  Style = cancelStyle{}

	styleIsConfirmation Style = isConfirmationStyle{}
)

// HasConfirmation returns a style that asks for confirmation before running the handler.
func HasConfirmation(title, message, confirmationTitle string) Style {
	return ConfirmationStyle{
		Title:             title,
		Message:           message,
		ConfirmationTitle: confirmationTitle,
	}
}

func isCancel(s Style) bool {
	return s != nil && s.Kind() == StyleKindCancel
}
