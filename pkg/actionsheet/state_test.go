package actionsheet

import (
	"testing"

	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateMachineStartsInDefault(t *testing.T) {
	m := newStateMachine("Title", "Message")

	assert.Equal(t, StateDefault, m.state)
	assert.Equal(t, "default", m.state.String())
	assert.Empty(t, m.visible())
}

func TestStateMachineDefaultVisibleOrder(t *testing.T) {
	a := NewAction("A", nil, nil)
	b := NewAction("B", nil, nil)
	cancel := NewAction("Cancel", StyleCancel, nil)

	m := newStateMachine("", "")
	m.reset("T", "M", []*Action{a, b}, cancel)

	assert.Equal(t, []*Action{a, b, cancel}, m.visible())
}

func TestStateMachineEnterConfirmation(t *testing.T) {
	a := NewAction("A", nil, nil)
	cancel := NewAction("Cancel", StyleCancel, nil)
	confirmation := NewAction("Yes", nil, nil)

	m := newStateMachine("", "")
	m.reset("T", "M", []*Action{a}, cancel)

	err := m.enterConfirmation(Transition{
		Title:        "Sure?",
		Message:      "Really",
		Confirmation: confirmation,
		Position:     constants.CancelPositionLeft,
	})
	require.NoError(t, err)

	assert.Equal(t, StateConfirmation, m.state)
	assert.Equal(t, "Sure?", m.title)
	assert.Equal(t, "Really", m.message)
	assert.Equal(t, []*Action{cancel, confirmation}, m.visible())

	err = m.enterConfirmation(Transition{Title: "Again", Confirmation: confirmation})
	assert.ErrorIs(t, err, ErrAlreadyConfirming)
	assert.Equal(t, "Sure?", m.title)
}

func TestConfirmationSlots(t *testing.T) {
	assert.Equal(t, [2]string{"cancel", "confirm"}, ConfirmationSlots(constants.CancelPositionLeft, "confirm", "cancel"))
	assert.Equal(t, [2]string{"confirm", "cancel"}, ConfirmationSlots(constants.CancelPositionRight, "confirm", "cancel"))
	assert.Equal(t, [2]int{1, 2}, ConfirmationSlots(constants.DefaultCancelPosition, 1, 2))
}

func TestStyleKindStrings(t *testing.T) {
	assert.Equal(t, "default", StyleDefault.Kind().String())
	assert.Equal(t, "cancel", StyleCancel.Kind().String())
	assert.Equal(t, "hasConfirmation", HasConfirmation("t", "", "").Kind().String())
	assert.Equal(t, "isConfirmation", styleIsConfirmation.Kind().String())
}
