package actionsheet

import (
	"reflect"
	"testing"
	"time"

	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRenderer struct {
	calls        []string
	appearance   Appearance
	title        string
	message      string
	buttons      []Entry
	cancel       Entry
	confirmation Entry
	pairCancel   Entry
	position     constants.CancelPosition
	layouts      int
	radius       float64
	flashes      int
}

func (r *recordingRenderer) SetAppearance(a Appearance) {
	r.calls = append(r.calls, "SetAppearance")
	r.appearance = a
}

func (r *recordingRenderer) UpdateHeader(title, message string) {
	r.calls = append(r.calls, "UpdateHeader")
	r.title, r.message = title, message
}

func (r *recordingRenderer) SetActionButtons(entries []Entry) {
	r.calls = append(r.calls, "SetActionButtons")
	r.buttons = entries
}

func (r *recordingRenderer) SetCancelAction(entry Entry) {
	r.calls = append(r.calls, "SetCancelAction")
	r.cancel = entry
}

func (r *recordingRenderer) EnterConfirmationState(confirmation, cancel Entry, position constants.CancelPosition) {
	r.calls = append(r.calls, "EnterConfirmationState")
	r.confirmation, r.pairCancel, r.position = confirmation, cancel, position
}

func (r *recordingRenderer) SetNeedsLayout() {
	r.calls = append(r.calls, "SetNeedsLayout")
	r.layouts++
}

func (r *recordingRenderer) SetCornerRadius(radius float64) {
	r.calls = append(r.calls, "SetCornerRadius")
	r.radius = radius
}

func (r *recordingRenderer) FlashScrollIndicators() {
	r.calls = append(r.calls, "FlashScrollIndicators")
	r.flashes++
}

type countingHost struct {
	dismissals int
}

func (h *countingHost) RequestDismiss() { h.dismissals++ }

func newTestController(t *testing.T, opts ...ControllerOption) (*Controller, *recordingRenderer, *countingHost) {
	t.Helper()
	renderer := &recordingRenderer{}
	host := &countingHost{}
	opts = append([]ControllerOption{WithRenderer(renderer), WithHost(host)}, opts...)
	return NewController("Title", "Message", opts...), renderer, host
}

func TestWillAppearSynthesizesCancelAction(t *testing.T) {
	c, r, _ := newTestController(t)
	c.AddActions(
		NewAction("One", StyleDefault, nil),
		NewAction("Two", StyleDefault, nil),
	)

	c.WillAppear()

	cancel := c.CancelAction()
	require.NotNil(t, cancel)
	assert.Equal(t, "Cancel", cancel.Title())
	assert.Equal(t, StyleKindCancel, cancel.Style().Kind())
	assert.Nil(t, cancel.Handler())
	assert.Same(t, cancel, r.cancel.Action)
	assert.Len(t, r.buttons, 2)
	assert.Equal(t, StateDefault, c.State())
}

func TestWillAppearKeepsCallerCancelAction(t *testing.T) {
	keepEditing := NewAction("Keep Editing", StyleCancel, nil)

	c, r, _ := newTestController(t)
	c.AddActions(NewAction("Discard", StyleDefault, nil), keepEditing)
	c.WillAppear()

	assert.Same(t, keepEditing, c.CancelAction())
	assert.Same(t, keepEditing, r.cancel.Action)
	assert.Equal(t, "Keep Editing", r.cancel.Action.Title())
	require.Len(t, r.buttons, 1)
	assert.Equal(t, "Discard", r.buttons[0].Action.Title())
}

func TestWillAppearPanicsOnMultipleCancelActionsBeforeRendering(t *testing.T) {
	c, r, _ := newTestController(t)
	c.AddActions(
		NewAction("Cancel", StyleCancel, nil),
		NewAction("Also Cancel", StyleCancel, nil),
	)

	assert.PanicsWithError(t, (&MultipleCancelActionsError{Count: 2}).Error(), c.WillAppear)
	assert.Empty(t, r.calls)
}

func TestAddActionDoesNotValidate(t *testing.T) {
	c, _, _ := newTestController(t)

	assert.NotPanics(t, func() {
		c.AddAction(NewAction("A", StyleCancel, nil))
		c.AddAction(NewAction("B", StyleCancel, nil))
	})
	assert.Len(t, c.Actions(), 2)
}

func TestWillAppearRenderOrder(t *testing.T) {
	c, r, _ := newTestController(t)
	c.AddAction(NewAction("One", StyleDefault, nil))
	c.WillAppear()

	assert.Equal(t, []string{
		"SetAppearance",
		"SetCancelAction",
		"SetActionButtons",
		"UpdateHeader",
		"SetNeedsLayout",
	}, r.calls)
	assert.Equal(t, "Title", r.title)
	assert.Equal(t, "Message", r.message)
	assert.Equal(t, constants.DefaultCornerRadius, r.appearance.CornerRadius)
}

func TestTapDefaultRunsHandlerThenDismisses(t *testing.T) {
	var order []string
	host := HostFunc(func() { order = append(order, "dismiss") })

	action := NewAction("Run", StyleDefault, func(a *Action) {
		order = append(order, "handler:"+a.Title())
	})

	c := NewController("", "", WithHost(host))
	c.AddAction(action)
	c.WillAppear()
	c.TapAction(action)

	assert.Equal(t, []string{"handler:Run", "dismiss"}, order)
	assert.True(t, c.IsDismissed())
}

func TestTapCancelWithoutHandlerDismisses(t *testing.T) {
	c, _, host := newTestController(t)
	c.WillAppear()

	c.TapAction(c.CancelAction())

	assert.Equal(t, 1, host.dismissals)
}

func TestTapDisabledActionIsNoop(t *testing.T) {
	styles := []Style{StyleDefault, StyleCancel, HasConfirmation("Are you sure?", "", "Yes")}
	for _, style := range styles {
		t.Run(style.Kind().String(), func(t *testing.T) {
			called := false
			action := NewAction("Disabled", style, func(*Action) { called = true }, WithEnabled(false))

			c, r, host := newTestController(t)
			c.AddAction(action)
			c.WillAppear()
			rendered := len(r.calls)
			c.TapAction(action)

			assert.False(t, called)
			assert.Zero(t, host.dismissals)
			assert.False(t, c.IsDismissed())
			assert.Equal(t, StateDefault, c.State())
			assert.Len(t, r.calls, rendered)
		})
	}
}

func TestAddActionIgnoresNil(t *testing.T) {
	c, _, _ := newTestController(t)
	c.AddAction(nil)
	c.AddActions(nil, NewAction("One", nil, nil))

	require.Len(t, c.Actions(), 1)
	assert.NotPanics(t, c.WillAppear)
	assert.Len(t, c.VisibleActions(), 2)
}

func TestTapIgnoresActionsNotOnScreen(t *testing.T) {
	called := false
	stranger := NewAction("Stranger", StyleDefault, func(*Action) { called = true })

	c, _, host := newTestController(t)
	c.AddAction(NewAction("Member", StyleDefault, nil))
	c.WillAppear()
	c.TapAction(stranger)

	assert.False(t, called)
	assert.Zero(t, host.dismissals)
}

func TestTapAfterDismissIsIgnored(t *testing.T) {
	calls := 0
	action := NewAction("Once", StyleDefault, func(*Action) { calls++ })

	c, _, host := newTestController(t)
	c.AddAction(action)
	c.WillAppear()
	c.TapAction(action)
	c.TapAction(action)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, host.dismissals)
}

func TestTapConfirmationStyleEntersConfirmationState(t *testing.T) {
	calls := 0
	handler := func(*Action) { calls++ }
	deleteAction := NewAction("Delete", HasConfirmation("Delete Something", "Cannot be undone", "Delete"), handler)
	cancel := NewAction("Cancel", StyleCancel, nil)

	c, r, host := newTestController(t)
	c.AddActions(deleteAction, cancel)
	c.WillAppear()
	layoutsBefore := r.layouts

	c.TapAction(deleteAction)

	assert.Equal(t, StateConfirmation, c.State())
	assert.Equal(t, "Delete Something", c.Title())
	assert.Equal(t, "Cannot be undone", c.Message())
	assert.Equal(t, "Delete Something", r.title)
	assert.Equal(t, "Cannot be undone", r.message)
	assert.Zero(t, calls)
	assert.Zero(t, host.dismissals)
	assert.Equal(t, layoutsBefore+1, r.layouts)

	confirmation := r.confirmation.Action
	require.NotNil(t, confirmation)
	assert.Equal(t, StyleKindIsConfirmation, confirmation.Style().Kind())
	assert.Equal(t, "Delete", confirmation.Title())
	assert.NotEqual(t, deleteAction.ID(), confirmation.ID())
	assert.Equal(t, reflect.ValueOf(deleteAction.Handler()).Pointer(), reflect.ValueOf(confirmation.Handler()).Pointer())
	assert.Same(t, cancel, r.pairCancel.Action)
	assert.Equal(t, constants.CancelPositionRight, r.position)

	visible := c.VisibleActions()
	require.Len(t, visible, 2)
	assert.Same(t, confirmation, visible[0])
	assert.Same(t, cancel, visible[1])

	c.TapAction(confirmation)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, host.dismissals)
}

func TestConfirmationTitleFallsBackToActionTitle(t *testing.T) {
	action := NewAction("Buy All", HasConfirmation("Buy Everything", "", ""), nil)

	c, r, _ := newTestController(t)
	c.AddAction(action)
	c.WillAppear()
	c.TapAction(action)

	assert.Equal(t, "Buy All", r.confirmation.Action.Title())
	assert.Empty(t, r.message)
}

func TestTapConfirmationWithBlankTitlePanics(t *testing.T) {
	for _, title := range []string{"", "   ", "\t\n"} {
		action := NewAction("Delete", HasConfirmation(title, "msg", "Delete"), nil)

		c, r, _ := newTestController(t)
		c.AddAction(action)
		c.WillAppear()
		calls := len(r.calls)

		assert.Panics(t, func() { c.TapAction(action) })
		assert.Equal(t, StateDefault, c.State())
		assert.Len(t, r.calls, calls)
	}
}

func TestConfirmationSlotsFollowCancelPosition(t *testing.T) {
	tests := []struct {
		name     string
		position constants.CancelPosition
		want     [2]string
	}{
		{name: "left", position: constants.CancelPositionLeft, want: [2]string{"cancel", "confirm"}},
		{name: "right", position: constants.CancelPositionRight, want: [2]string{"confirm", "cancel"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfiguration()
			cfg.CancelPosition = tt.position

			action := NewAction("confirm", HasConfirmation("Sure?", "", ""), nil)
			c, _, _ := newTestController(t, WithConfiguration(cfg))
			c.AddActions(action, NewAction("cancel", StyleCancel, nil))
			c.WillAppear()
			c.TapAction(action)

			visible := c.VisibleActions()
			require.Len(t, visible, 2)
			assert.Equal(t, tt.want, [2]string{visible[0].Title(), visible[1].Title()})
		})
	}
}

func TestEntryAlignment(t *testing.T) {
	cfg := DefaultConfiguration()
	cfg.ActionAlignment = constants.TextAlignLeft

	c, r, _ := newTestController(t, WithConfiguration(cfg))
	c.AddActions(
		NewAction("Left", StyleDefault, nil),
		NewAction("Confirm", HasConfirmation("Sure?", "", ""), nil),
	)
	c.WillAppear()

	assert.Equal(t, constants.TextAlignLeft, r.buttons[0].Alignment)
	assert.Equal(t, constants.TextAlignCenter, r.cancel.Alignment)

	c.TapAction(r.buttons[1].Action)
	assert.Equal(t, constants.TextAlignCenter, r.confirmation.Alignment)
	assert.Equal(t, constants.TextAlignCenter, r.pairCancel.Alignment)

	cfg.CancelMatchesAlignment = true
	c, r, _ = newTestController(t, WithConfiguration(cfg))
	c.WillAppear()
	assert.Equal(t, constants.TextAlignLeft, r.cancel.Alignment)
}

func TestTraitChangedSchedulesFlashAndSwapsRadius(t *testing.T) {
	landscape := 16.0
	cfg := DefaultConfiguration()
	cfg.CornerRadius = 6
	cfg.LandscapeCornerRadius = &landscape

	now := time.Unix(0, 0)
	queue := NewMainQueueWithClock(func() time.Time { return now })

	c, r, _ := newTestController(t, WithConfiguration(cfg), WithScheduler(queue))
	c.WillAppear()
	c.DidAppear()
	assert.Equal(t, 1, r.flashes)

	c.TraitChanged(true)
	assert.Equal(t, 16.0, r.radius)
	assert.Equal(t, 1, r.flashes)

	assert.Zero(t, queue.Drain())
	now = now.Add(constants.TraitChangeFlashDelay)
	assert.Equal(t, 1, queue.Drain())
	assert.Equal(t, 2, r.flashes)

	c.TraitChanged(false)
	assert.Equal(t, 6.0, r.radius)
}

func TestTraitChangedWithoutLandscapeRadiusKeepsRadius(t *testing.T) {
	c, r, _ := newTestController(t, WithScheduler(ImmediateScheduler{}))
	c.WillAppear()
	c.TraitChanged(true)

	assert.NotContains(t, r.calls, "SetCornerRadius")
	assert.Equal(t, 1, r.flashes)
}

func TestLocalizedCancelTitle(t *testing.T) {
	cfg := DefaultConfiguration()
	cfg.Locale = "es"

	c, _, _ := newTestController(t, WithConfiguration(cfg))
	c.WillAppear()

	assert.Equal(t, "Cancelar", c.CancelAction().Title())
}
