package sdlsheet

import (
	"time"

	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet"
	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet/constants"
	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet/presentation"
	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet/sdlsheet/internal"
	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet/view"
	"github.com/google/uuid"
	"github.com/veandco/go-sdl2/sdl"
)

// WindowOptions are the SDL window flags accepted by Init.
type WindowOptions = internal.WindowOptions

// ButtonSource delivers virtual button presses from outside SDL, such as an
// evinput.Source reading a raw input device.
type ButtonSource interface {
	Buttons() <-chan constants.VirtualButton
}

// Settings configures a single ActionSheet call.
type Settings struct {
	// Configuration styles the sheet. Nil uses actionsheet.DefaultConfiguration.
	Configuration *actionsheet.Configuration
	// Localizer translates the synthesized cancel title.
	Localizer *actionsheet.Localizer
	// ButtonSource is polled alongside SDL events when set.
	ButtonSource ButtonSource
	// KeepOnOutsideTap ignores clicks on the dimmed background.
	KeepOnOutsideTap bool
}

// Result describes how the sheet was dismissed.
type Result struct {
	// Action is the action whose handler ran, or nil when the background was tapped.
	Action *actionsheet.Action
	// Cancelled is true when the cancel action or the background dismissed the sheet.
	Cancelled bool
}

type sheetController struct {
	sheet     *actionsheet.Controller
	model     *view.Model
	presenter *presentation.Presenter
	queue     *actionsheet.MainQueue
	layout    *sheetLayout

	directional   *view.DirectionalInput
	buttons       <-chan constants.VirtualButton
	inputDelay    time.Duration
	lastInputTime time.Time
	landscape     bool

	tapped   *actionsheet.Action
	outside  bool
	finished bool
	quit     bool
}

// Tap records the tapped action before handing the tap to the controller.
func (c *sheetController) Tap(id uuid.UUID) {
	for _, row := range c.model.Rows() {
		if row.Entry.Action.ID() == id {
			c.tapped = row.Entry.Action
			break
		}
	}
	c.sheet.Tap(id)
}

// ActionSheet presents a sheet and blocks until it is dismissed. It panics like
// actionsheet.Controller.WillAppear when the action list is invalid.
func ActionSheet(title, message string, actions []*actionsheet.Action, settings Settings) (*Result, error) {
	window := internal.GetWindow()
	if window == nil {
		return nil, NewInfrastructureError("present", errNotInitialized)
	}

	cfg := actionsheet.DefaultConfiguration()
	if settings.Configuration != nil {
		cfg = *settings.Configuration
	}

	controllerOpts := []actionsheet.ControllerOption{actionsheet.WithConfiguration(cfg)}
	if settings.Localizer != nil {
		controllerOpts = append(controllerOpts, actionsheet.WithLocalizer(settings.Localizer))
	}

	c := &sheetController{
		model:         view.New(),
		queue:         actionsheet.NewMainQueue(),
		layout:        newSheetLayout(window.Renderer),
		directional:   view.NewDirectionalInput(),
		inputDelay:    constants.DefaultInputDelay,
		lastInputTime: time.Now(),
		landscape:     window.IsLandscape(),
	}
	defer c.layout.destroy()
	defer c.queue.Stop()

	if settings.ButtonSource != nil {
		c.buttons = settings.ButtonSource.Buttons()
	}

	c.presenter = presentation.NewWithSettings(presentation.Settings{
		TapOutsideToDismiss: !settings.KeepOnOutsideTap,
	})

	controllerOpts = append(controllerOpts, actionsheet.WithScheduler(c.queue))
	c.sheet = c.presenter.Present(title, message, actions, c.model,
		presentation.OnDismiss(func() { c.finished = true }),
		presentation.WithControllerOptions(controllerOpts...),
	)
	c.model.Bind(c)

	if c.landscape {
		c.sheet.TraitChanged(true)
	}

	for !c.finished && !c.quit {
		c.handleEvents()
		c.pollButtonSource()
		if dir := c.directional.Update(); dir != view.DirectionNone {
			c.model.HandleButton(dir.VirtualButton())
		}
		c.queue.Drain()

		if c.finished || c.quit {
			break
		}

		if err := c.layout.render(window, c.model); err != nil {
			return nil, NewInfrastructureError("render", err)
		}
	}

	return outcome{
		tapped:   c.tapped,
		cancel:   c.sheet.CancelAction(),
		outside:  c.outside,
		finished: c.finished,
	}.result()
}

func (c *sheetController) handleEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			c.quit = true
			return

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				c.sizeChanged(e.Data1, e.Data2)
			}

		case *sdl.MouseButtonEvent:
			if e.Type == sdl.MOUSEBUTTONDOWN && e.Button == sdl.BUTTON_LEFT {
				c.handleClick(e.X, e.Y)
			}

		case *sdl.KeyboardEvent, *sdl.ControllerButtonEvent:
			inputEvent := internal.ProcessSDLEvent(event)
			if inputEvent == nil {
				continue
			}
			c.handleButton(inputEvent.Button, inputEvent.Pressed)
		}

		if c.finished {
			return
		}
	}
}

func (c *sheetController) pollButtonSource() {
	if c.buttons == nil {
		return
	}
	for {
		select {
		case button, ok := <-c.buttons:
			if !ok {
				c.buttons = nil
				return
			}
			c.press(button)
		default:
			return
		}
	}
}

func (c *sheetController) handleButton(button constants.VirtualButton, pressed bool) {
	c.directional.SetHeld(button, pressed)
	if pressed {
		c.press(button)
	}
}

func (c *sheetController) press(button constants.VirtualButton) {
	if time.Since(c.lastInputTime) < c.inputDelay {
		return
	}
	c.lastInputTime = time.Now()

	c.model.HandleButton(button)
}

func (c *sheetController) handleClick(x, y int32) {
	point := sdl.Point{X: x, Y: y}

	if id, ok := c.layout.hit(point); ok {
		c.Tap(id)
		return
	}

	if !point.InRect(&c.layout.sheetRect) && c.presenter.DismissTop() {
		c.outside = true
	}
}

func (c *sheetController) sizeChanged(width, height int32) {
	landscape := width > height
	if landscape == c.landscape {
		return
	}
	c.landscape = landscape
	c.sheet.TraitChanged(landscape)
	actionsheet.GetInternalLogger().Debug("Orientation changed", "landscape", landscape, "width", width, "height", height)
}
