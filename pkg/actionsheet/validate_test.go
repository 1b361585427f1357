package actionsheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateActions(t *testing.T) {
	tests := []struct {
		name    string
		actions []*Action
		wantErr bool
	}{
		{name: "empty"},
		{name: "no cancel", actions: []*Action{NewAction("A", StyleDefault, nil)}},
		{name: "one cancel", actions: []*Action{NewAction("A", nil, nil), NewAction("C", StyleCancel, nil)}},
		{
			name:    "two cancels",
			actions: []*Action{NewAction("C1", StyleCancel, nil), NewAction("A", nil, nil), NewAction("C2", StyleCancel, nil)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateActions(tt.actions)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, IsMultipleCancelActions(err))

			var target *MultipleCancelActionsError
			require.ErrorAs(t, err, &target)
			assert.Equal(t, 2, target.Count)
		})
	}
}

func TestResolveCancelActionSynthesizes(t *testing.T) {
	for _, actions := range [][]*Action{
		nil,
		{NewAction("A", StyleDefault, nil)},
		{NewAction("A", StyleDefault, nil), NewAction("B", HasConfirmation("Sure?", "", ""), nil)},
	} {
		cancel := ResolveCancelAction(actions, "Cancel")
		assert.Equal(t, "Cancel", cancel.Title())
		assert.Equal(t, StyleKindCancel, cancel.Style().Kind())
		assert.Nil(t, cancel.Handler())
		assert.True(t, cancel.IsEnabled())
	}
}

func TestResolveCancelActionReturnsCallerInstance(t *testing.T) {
	custom := NewAction("Keep Editing", StyleCancel, nil)
	actions := []*Action{NewAction("Discard", StyleDefault, nil), custom}

	assert.Same(t, custom, ResolveCancelAction(actions, "Cancel"))
}

func TestResolveCancelActionPicksFirstMatch(t *testing.T) {
	first := NewAction("First", StyleCancel, nil)
	second := NewAction("Second", StyleCancel, nil)

	assert.Same(t, first, ResolveCancelAction([]*Action{first, second}, "Cancel"))
}

func TestFilterActionsKeepsInsertionOrder(t *testing.T) {
	a := NewAction("A", StyleDefault, nil)
	cancel := NewAction("Cancel", StyleCancel, nil)
	b := NewAction("B", HasConfirmation("Sure?", "", ""), nil)

	assert.Equal(t, []*Action{a, b}, FilterActions([]*Action{a, cancel, b}))
}

func TestActionsWithSameTitleAreDistinct(t *testing.T) {
	a := NewAction("Same", StyleDefault, nil)
	b := NewAction("Same", StyleDefault, nil)

	assert.NotSame(t, a, b)
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestNewActionDefaults(t *testing.T) {
	a := NewAction("Plain", nil, nil)

	assert.Equal(t, StyleKindDefault, a.Style().Kind())
	assert.True(t, a.IsEnabled())
	assert.Nil(t, a.Icon())

	icon := []byte("<svg/>")
	b := NewAction("Icon", StyleDefault, nil, WithIcon(icon), WithEnabled(false))
	assert.Equal(t, icon, b.Icon())
	assert.False(t, b.IsEnabled())
	b.SetEnabled(true)
	assert.True(t, b.IsEnabled())
}

func TestValidationSkipsNilActions(t *testing.T) {
	one := NewAction("One", nil, nil)
	cancel := NewAction("Back", StyleCancel, nil)
	actions := []*Action{nil, one, nil, cancel}

	assert.NoError(t, ValidateActions(actions))
	assert.Equal(t, []*Action{one}, FilterActions(actions))
	assert.Same(t, cancel, ResolveCancelAction(actions, "Cancel"))
	assert.Equal(t, "Cancel", ResolveCancelAction([]*Action{nil}, "Cancel").Title())
}
