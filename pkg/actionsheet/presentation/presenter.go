package presentation

import (
	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet"
	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet/view"
)

// Settings configures a Presenter.
type Settings struct {
	// TapOutsideToDismiss lets DismissTop remove the top sheet, like tapping the
	// dimmed background behind it.
	TapOutsideToDismiss bool
	// OnDismiss runs after any sheet is dismissed, after the sheet's own callback.
	OnDismiss func(sheet *actionsheet.Controller)
}

// DefaultSettings returns the settings used by New.
func DefaultSettings() Settings {
	return Settings{TapOutsideToDismiss: true}
}

// Presenter is the host environment for action sheets: it presents sheets
// modally over whatever is on screen and tears them down on request.
type Presenter struct {
	settings Settings
	stack    *Stack
}

// New creates a Presenter with DefaultSettings.
func New() *Presenter {
	return NewWithSettings(DefaultSettings())
}

func NewWithSettings(settings Settings) *Presenter {
	return &Presenter{
		settings: settings,
		stack:    NewStack(),
	}
}

// PresentOption customizes a single presentation.
type PresentOption func(*presentConfig)

type presentConfig struct {
	onDismiss  func()
	controller []actionsheet.ControllerOption
}

// OnDismiss runs fn when this sheet is dismissed.
func OnDismiss(fn func()) PresentOption {
	return func(pc *presentConfig) {
		pc.onDismiss = fn
	}
}

// WithControllerOptions passes options through to the sheet's Controller.
func WithControllerOptions(opts ...actionsheet.ControllerOption) PresentOption {
	return func(pc *presentConfig) {
		pc.controller = append(pc.controller, opts...)
	}
}

// tapBinder is implemented by renderers that report taps back to a
// controller, like *view.Model.
type tapBinder interface {
	Bind(t view.Tapper)
}

// Present builds a sheet from the header and actions, puts it on top of the
// stack and runs its appearance lifecycle. It panics like Controller.WillAppear
// when the action list is invalid, leaving the stack unchanged.
func (p *Presenter) Present(title, message string, actions []*actionsheet.Action, renderer actionsheet.Renderer, opts ...PresentOption) *actionsheet.Controller {
	pc := &presentConfig{}
	for _, opt := range opts {
		opt(pc)
	}

	entry := &StackEntry{
		Renderer:  renderer,
		OnDismiss: pc.onDismiss,
	}

	host := actionsheet.HostFunc(func() {
		p.dismiss(entry)
	})

	controllerOpts := append([]actionsheet.ControllerOption{
		actionsheet.WithRenderer(renderer),
		actionsheet.WithHost(host),
	}, pc.controller...)

	sheet := actionsheet.NewController(title, message, controllerOpts...)
	sheet.AddActions(actions...)
	entry.Sheet = sheet

	if b, ok := renderer.(tapBinder); ok {
		b.Bind(sheet)
	}

	sheet.WillAppear()
	p.stack.Push(entry)
	sheet.DidAppear()

	actionsheet.GetInternalLogger().Debug("Presented action sheet", "title", title, "depth", p.stack.Len())
	return sheet
}

// DismissTop dismisses the topmost sheet without running any action, the way a
// tap on the dimmed background does. Returns false when nothing was dismissed.
func (p *Presenter) DismissTop() bool {
	if !p.settings.TapOutsideToDismiss {
		return false
	}

	entry := p.stack.Peek()
	if entry == nil {
		return false
	}
	return p.dismiss(entry)
}

// Top returns the topmost sheet, or nil.
func (p *Presenter) Top() *actionsheet.Controller {
	if entry := p.stack.Peek(); entry != nil {
		return entry.Sheet
	}
	return nil
}

// TopRenderer returns the renderer of the topmost sheet, or nil.
func (p *Presenter) TopRenderer() actionsheet.Renderer {
	if entry := p.stack.Peek(); entry != nil {
		return entry.Renderer
	}
	return nil
}

func (p *Presenter) Len() int      { return p.stack.Len() }
func (p *Presenter) IsEmpty() bool { return p.stack.IsEmpty() }

func (p *Presenter) dismiss(entry *StackEntry) bool {
	if !p.stack.Remove(entry) {
		return false
	}

	entry.Sheet.DidDismiss()
	actionsheet.GetInternalLogger().Debug("Dismissed action sheet", "title", entry.Sheet.Title(), "depth", p.stack.Len())

	if entry.OnDismiss != nil {
		entry.OnDismiss()
	}
	if p.settings.OnDismiss != nil {
		p.settings.OnDismiss(entry.Sheet)
	}
	return true
}
