package internal

import (
	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet"
	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// InputEvent is a virtual button press or release.
type InputEvent struct {
	Button  constants.VirtualButton
	Pressed bool
}

var controllers []*sdl.GameController

var keyboardMapping = map[sdl.Keycode]constants.VirtualButton{
	sdl.K_UP:        constants.VirtualButtonUp,
	sdl.K_DOWN:      constants.VirtualButtonDown,
	sdl.K_LEFT:      constants.VirtualButtonLeft,
	sdl.K_RIGHT:     constants.VirtualButtonRight,
	sdl.K_a:         constants.VirtualButtonA,
	sdl.K_RETURN:    constants.VirtualButtonA,
	sdl.K_b:         constants.VirtualButtonB,
	sdl.K_ESCAPE:    constants.VirtualButtonB,
	sdl.K_BACKSPACE: constants.VirtualButtonB,
	sdl.K_SPACE:     constants.VirtualButtonStart,
	sdl.K_TAB:       constants.VirtualButtonSelect,
	sdl.K_m:         constants.VirtualButtonMenu,
}

var controllerMapping = map[sdl.GameControllerButton]constants.VirtualButton{
	sdl.CONTROLLER_BUTTON_DPAD_UP:    constants.VirtualButtonUp,
	sdl.CONTROLLER_BUTTON_DPAD_DOWN:  constants.VirtualButtonDown,
	sdl.CONTROLLER_BUTTON_DPAD_LEFT:  constants.VirtualButtonLeft,
	sdl.CONTROLLER_BUTTON_DPAD_RIGHT: constants.VirtualButtonRight,
	sdl.CONTROLLER_BUTTON_A:          constants.VirtualButtonA,
	sdl.CONTROLLER_BUTTON_B:          constants.VirtualButtonB,
	sdl.CONTROLLER_BUTTON_START:      constants.VirtualButtonStart,
	sdl.CONTROLLER_BUTTON_BACK:       constants.VirtualButtonSelect,
	sdl.CONTROLLER_BUTTON_GUIDE:      constants.VirtualButtonMenu,
}

func openControllers() {
	for i := 0; i < sdl.NumJoysticks(); i++ {
		if !sdl.IsGameController(i) {
			continue
		}
		if c := sdl.GameControllerOpen(i); c != nil {
			actionsheet.GetInternalLogger().Debug("Opened game controller", "index", i, "name", c.Name())
			controllers = append(controllers, c)
		}
	}
}

func closeControllers() {
	for _, c := range controllers {
		c.Close()
	}
	controllers = nil
}

// ProcessSDLEvent maps keyboard and controller events to virtual buttons.
// Returns nil for events that carry no button.
func ProcessSDLEvent(event sdl.Event) *InputEvent {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return nil
		}
		button, ok := keyboardMapping[e.Keysym.Sym]
		if !ok {
			return nil
		}
		return &InputEvent{Button: button, Pressed: e.Type == sdl.KEYDOWN}

	case *sdl.ControllerButtonEvent:
		button, ok := controllerMapping[sdl.GameControllerButton(e.Button)]
		if !ok {
			return nil
		}
		return &InputEvent{Button: button, Pressed: e.Type == sdl.CONTROLLERBUTTONDOWN}
	}
	return nil
}
