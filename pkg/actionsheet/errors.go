package actionsheet

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrAlreadyConfirming is returned when the state machine is asked to enter
	// the confirmation state a second time.
	ErrAlreadyConfirming = errors.New("action sheet is already in its confirmation state")
)

// MultipleCancelActionsError reports an action list with more than one cancel action.
// It is a programmer error; the Controller panics with it when the sheet appears.
type MultipleCancelActionsError struct {
	Count int
}

func (e *MultipleCancelActionsError) Error() string {
	return fmt.Sprintf("actionsheet: an action sheet can only have one action with a cancel style, found %d", e.Count)
}

// EmptyConfirmationTitleError reports a confirmation-style action whose
// confirmation title is empty or whitespace. The Controller panics with it
// when such an action is tapped.
type EmptyConfirmationTitleError struct {
	ActionTitle string
}

func (e *EmptyConfirmationTitleError) Error() string {
	return fmt.Sprintf("actionsheet: a confirmation title cannot be empty (action %q)", e.ActionTitle)
}

// IsMultipleCancelActions checks if an error reports too many cancel actions.
func IsMultipleCancelActions(err error) bool {
	var target *MultipleCancelActionsError
	return errors.As(err, &target)
}

// IsEmptyConfirmationTitle checks if an error reports an empty confirmation title.
func IsEmptyConfirmationTitle(err error) bool {
	var target *EmptyConfirmationTitleError
	return errors.As(err, &target)
}
