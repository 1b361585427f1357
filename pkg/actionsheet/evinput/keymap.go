//go:build linux

package evinput

import (
	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet/constants"
	"github.com/holoplot/go-evdev"
)

// KeyMap maps evdev key codes to virtual buttons.
type KeyMap map[evdev.EvCode]constants.VirtualButton

// DefaultKeyMap covers the buttons most handhelds report through evdev, plus a
// keyboard fallback.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		evdev.KEY_UP:    constants.VirtualButtonUp,
		evdev.KEY_DOWN:  constants.VirtualButtonDown,
		evdev.KEY_LEFT:  constants.VirtualButtonLeft,
		evdev.KEY_RIGHT: constants.VirtualButtonRight,

		evdev.BTN_DPAD_UP:    constants.VirtualButtonUp,
		evdev.BTN_DPAD_DOWN:  constants.VirtualButtonDown,
		evdev.BTN_DPAD_LEFT:  constants.VirtualButtonLeft,
		evdev.BTN_DPAD_RIGHT: constants.VirtualButtonRight,

		evdev.BTN_SOUTH: constants.VirtualButtonA,
		evdev.KEY_ENTER: constants.VirtualButtonA,
		evdev.BTN_EAST:  constants.VirtualButtonB,
		evdev.KEY_ESC:   constants.VirtualButtonB,

		evdev.BTN_START:  constants.VirtualButtonStart,
		evdev.BTN_SELECT: constants.VirtualButtonSelect,
		evdev.BTN_MODE:   constants.VirtualButtonMenu,
		evdev.KEY_MENU:   constants.VirtualButtonMenu,
	}
}

// Lookup returns the button for code, or VirtualButtonUnassigned.
func (k KeyMap) Lookup(code evdev.EvCode) constants.VirtualButton {
	if b, ok := k[code]; ok {
		return b
	}
	return constants.VirtualButtonUnassigned
}

// Merge returns a copy of k with overrides applied on top.
func (k KeyMap) Merge(overrides KeyMap) KeyMap {
	out := make(KeyMap, len(k)+len(overrides))
	for code, b := range k {
		out[code] = b
	}
	for code, b := range overrides {
		out[code] = b
	}
	return out
}

// buttonFor turns an event into a button press. Only key-down events count;
// releases and autorepeat are dropped.
func (k KeyMap) buttonFor(ev *evdev.InputEvent) (constants.VirtualButton, bool) {
	if ev == nil || ev.Type != evdev.EV_KEY || ev.Value != 1 {
		return constants.VirtualButtonUnassigned, false
	}
	b := k.Lookup(ev.Code)
	return b, b != constants.VirtualButtonUnassigned
}
