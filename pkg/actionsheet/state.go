package actionsheet

import (
	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet/constants"
)

// State is the content set an action sheet currently shows.
type State int

const (
	// StateDefault shows the header, every non-cancel action, then the cancel action.
	StateDefault State = iota
	// StateConfirmation shows the replaced header and the confirmation/cancel pair.
	// A sheet leaves it only by being dismissed.
	StateConfirmation
)

func (s State) String() string {
	switch s {
	case StateDefault:
		return "default"
	case StateConfirmation:
		return "confirmation"
	default:
		return "unknown"
	}
}

// ConfirmationSlots orders the confirmation pair. Slot 0 is the left slot and
// slot 1 the right slot; a left cancel position puts cancel at slot 0.
func ConfirmationSlots[T any](position constants.CancelPosition, confirmation, cancel T) [2]T {
	if position == constants.CancelPositionLeft {
		return [2]T{cancel, confirmation}
	}
	return [2]T{confirmation, cancel}
}

// Transition is the input for the default to confirmation transition.
type Transition struct {
	Title        string
	Message      string
	Confirmation *Action
	Position     constants.CancelPosition
}

// stateMachine tracks what the sheet shows. It never renders; the Controller
// forwards its results to the Renderer.
type stateMachine struct {
	state   State
	title   string
	message string
	buttons []*Action
	cancel  *Action
}

func newStateMachine(title, message string) *stateMachine {
	return &stateMachine{
		state:   StateDefault,
		title:   title,
		message: message,
	}
}

// reset puts the machine back in the default state with a fresh list.
// Only used when the sheet appears.
func (m *stateMachine) reset(title, message string, buttons []*Action, cancel *Action) {
	m.state = StateDefault
	m.title = title
	m.message = message
	m.buttons = buttons
	m.cancel = cancel
}

func (m *stateMachine) enterConfirmation(t Transition) error {
	if m.state == StateConfirmation {
		return ErrAlreadyConfirming
	}

	slots := ConfirmationSlots(t.Position, t.Confirmation, m.cancel)

	m.state = StateConfirmation
	m.title = t.Title
	m.message = t.Message
	m.buttons = slots[:]
	return nil
}

// visible returns the actions a user can currently tap.
func (m *stateMachine) visible() []*Action {
	if m.state == StateConfirmation {
		return m.buttons
	}

	out := make([]*Action, 0, len(m.buttons)+1)
	out = append(out, m.buttons...)
	if m.cancel != nil {
		out = append(out, m.cancel)
	}
	return out
}
