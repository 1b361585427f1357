package actionsheet

import (
	"log/slog"
	"strings"

	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet/constants"
	"github.com/google/uuid"
)

// Controller owns an action list and the presentation state of one sheet.
//
// All methods must be called from the UI goroutine.
type Controller struct {
	title   string
	message string
	actions []*Action

	config    Configuration
	renderer  Renderer
	host      Host
	scheduler Scheduler
	localizer *Localizer
	logger    *slog.Logger

	machine   *stateMachine
	cancel    *Action
	compact   bool
	dismissed bool
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

func WithConfiguration(cfg Configuration) ControllerOption {
	return func(c *Controller) {
		c.config = cfg
	}
}

func WithRenderer(r Renderer) ControllerOption {
	return func(c *Controller) {
		c.renderer = r
	}
}

func WithHost(h Host) ControllerOption {
	return func(c *Controller) {
		c.host = h
	}
}

// WithScheduler sets where delayed cosmetic work runs. Defaults to NopScheduler.
func WithScheduler(s Scheduler) ControllerOption {
	return func(c *Controller) {
		c.scheduler = s
	}
}

// WithLocalizer sets the localizer for generated titles. Without one, the
// Configuration's Locale is used.
func WithLocalizer(l *Localizer) ControllerOption {
	return func(c *Controller) {
		c.localizer = l
	}
}

func WithLogger(l *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = l
	}
}

// NewController creates a sheet with the given header. Either may be empty.
func NewController(title, message string, opts ...ControllerOption) *Controller {
	c := &Controller{
		title:   title,
		message: message,
		config:  DefaultConfiguration(),
		machine: newStateMachine(title, message),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = GetInternalLogger()
	}
	if c.renderer == nil {
		c.renderer = nopRenderer{}
	}
	if c.host == nil {
		c.host = HostFunc(func() {})
	}
	if c.scheduler == nil {
		c.scheduler = NopScheduler{}
	}
	if c.localizer == nil && c.config.Locale != "" {
		l, err := NewLocalizer(c.config.Locale)
		if err != nil {
			c.logger.Warn("Unable to load localizer, using English titles", "locale", c.config.Locale, "error", err)
		} else {
			c.localizer = l
		}
	}

	return c
}

// AddAction attaches an action. The order actions are added is the order they
// are shown in. Nothing is validated until the sheet appears. A nil action is ignored.
func (c *Controller) AddAction(action *Action) {
	if action == nil {
		return
	}
	c.actions = append(c.actions, action)
}

// AddActions attaches several actions in order.
func (c *Controller) AddActions(actions ...*Action) {
	for _, a := range actions {
		c.AddAction(a)
	}
}

// Actions returns the attached actions in insertion order.
func (c *Controller) Actions() []*Action {
	out := make([]*Action, len(c.actions))
	copy(out, c.actions)
	return out
}

func (c *Controller) Configuration() Configuration { return c.config }
func (c *Controller) State() State                 { return c.machine.state }
func (c *Controller) Title() string                { return c.machine.title }
func (c *Controller) Message() string              { return c.machine.message }
func (c *Controller) IsDismissed() bool            { return c.dismissed }

// CancelAction returns the cancel action resolved when the sheet last appeared,
// or nil before it first appears.
func (c *Controller) CancelAction() *Action { return c.cancel }

// VisibleActions returns the actions currently on screen, in display order.
func (c *Controller) VisibleActions() []*Action {
	return c.machine.visible()
}

// WillAppear validates the action list and hands the default state to the renderer.
// It panics with a *MultipleCancelActionsError before any renderer call when
// more than one cancel action was added.
func (c *Controller) WillAppear() {
	if err := ValidateActions(c.actions); err != nil {
		c.logger.Error("Invalid action sheet configuration", "error", err)
		panic(err)
	}

	c.dismissed = false
	c.cancel = ResolveCancelAction(c.actions, c.localizer.CancelTitle())
	buttons := FilterActions(c.actions)
	c.machine.reset(c.title, c.message, buttons, c.cancel)

	entries := make([]Entry, 0, len(buttons))
	for _, a := range buttons {
		entries = append(entries, c.entryFor(a))
	}

	c.renderer.SetAppearance(Appearance{
		HeaderAlignment: c.config.HeaderAlignment,
		CancelPosition:  c.config.CancelPosition,
		CornerRadius:    c.config.CornerRadiusFor(c.compact),
	})
	c.renderer.SetCancelAction(c.entryFor(c.cancel))
	c.renderer.SetActionButtons(entries)
	c.renderer.UpdateHeader(c.title, c.message)
	c.renderer.SetNeedsLayout()

	c.logger.Debug("Action sheet will appear", "title", c.title, "actions", len(buttons), "cancel", c.cancel.title)
}

// DidAppear flashes the scroll indicators so users notice a scrolling list.
func (c *Controller) DidAppear() {
	c.renderer.FlashScrollIndicators()
}

// TraitChanged handles an orientation change. Compact means the vertical
// size class is compact, i.e. landscape.
func (c *Controller) TraitChanged(compact bool) {
	c.compact = compact

	c.scheduler.Schedule(constants.TraitChangeFlashDelay, func() {
		if !c.dismissed {
			c.renderer.FlashScrollIndicators()
		}
	})

	if c.config.LandscapeCornerRadius != nil {
		c.renderer.SetCornerRadius(c.config.CornerRadiusFor(compact))
	}
}

// TapAction is Tap for an action value.
func (c *Controller) TapAction(action *Action) {
	if action == nil {
		return
	}
	c.Tap(action.id)
}

// Tap handles a tap on the action with the given ID.
//
// Taps on actions that are not on screen, on disabled actions, or after the
// sheet was dismissed do nothing. A confirmation-style action switches the sheet
// to its confirmation state; every other action runs its handler and dismisses.
func (c *Controller) Tap(id uuid.UUID) {
	if c.dismissed {
		c.logger.Debug("Ignoring tap on dismissed action sheet", "id", id)
		return
	}

	action := c.findVisible(id)
	if action == nil {
		c.logger.Debug("Ignoring tap on action that is not visible", "id", id)
		return
	}

	if !action.enabled {
		c.logger.Debug("Ignoring tap on disabled action", "title", action.title)
		return
	}

	switch style := action.style.(type) {
	case ConfirmationStyle:
		c.beginConfirmation(action, style)
	default:
		c.logger.Debug("Running action", "title", action.title, "style", style.Kind().String())
		action.run()
		c.dismiss()
	}
}

func (c *Controller) beginConfirmation(action *Action, style ConfirmationStyle) {
	if strings.TrimSpace(style.Title) == "" {
		err := &EmptyConfirmationTitleError{ActionTitle: action.title}
		c.logger.Error("Invalid confirmation action", "error", err)
		panic(err)
	}

	confirmation := confirmationFor(action, style)

	err := c.machine.enterConfirmation(Transition{
		Title:        style.Title,
		Message:      style.Message,
		Confirmation: confirmation,
		Position:     c.config.CancelPosition,
	})
	if err != nil {
		c.logger.Warn("Unable to enter confirmation state", "error", err)
		return
	}

	c.renderer.UpdateHeader(style.Title, style.Message)
	c.renderer.EnterConfirmationState(c.entryFor(confirmation), c.entryFor(c.cancel), c.config.CancelPosition)
	c.renderer.SetNeedsLayout()

	c.logger.Debug("Action sheet entered confirmation state", "title", style.Title, "confirmation", confirmation.title)
}

// DidDismiss records that the host took the sheet off screen. Later taps are ignored.
func (c *Controller) DidDismiss() {
	c.dismissed = true
}

func (c *Controller) dismiss() {
	c.dismissed = true
	c.host.RequestDismiss()
}

func (c *Controller) findVisible(id uuid.UUID) *Action {
	for _, a := range c.machine.visible() {
		if a.id == id {
			return a
		}
	}
	return nil
}

func (c *Controller) entryFor(a *Action) Entry {
	alignment := c.config.ActionAlignment
	switch {
	case c.machine.state == StateConfirmation:
		alignment = constants.TextAlignCenter
	case isCancel(a.style) && !c.config.CancelMatchesAlignment:
		alignment = constants.TextAlignCenter
	}

	return Entry{
		Action:    a,
		Alignment: alignment,
		Font:      c.config.ActionFont,
		Height:    c.config.ButtonHeight,
	}
}

type nopRenderer struct{}

func (nopRenderer) SetAppearance(Appearance)                                      {}
func (nopRenderer) UpdateHeader(string, string)                                   {}
func (nopRenderer) SetActionButtons([]Entry)                                      {}
func (nopRenderer) SetCancelAction(Entry)                                         {}
func (nopRenderer) EnterConfirmationState(Entry, Entry, constants.CancelPosition) {}
func (nopRenderer) SetNeedsLayout()                                               {}
func (nopRenderer) SetCornerRadius(float64)                                       {}
func (nopRenderer) FlashScrollIndicators()                                        {}
