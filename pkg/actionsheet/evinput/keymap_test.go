//go:build linux

package evinput

import (
	"testing"

	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet/constants"
	"github.com/holoplot/go-evdev"
	"github.com/stretchr/testify/assert"
)

func TestDefaultKeyMapLookup(t *testing.T) {
	k := DefaultKeyMap()

	tests := []struct {
		code evdev.EvCode
		want constants.VirtualButton
	}{
		{evdev.KEY_UP, constants.VirtualButtonUp},
		{evdev.BTN_DPAD_DOWN, constants.VirtualButtonDown},
		{evdev.BTN_SOUTH, constants.VirtualButtonA},
		{evdev.KEY_ESC, constants.VirtualButtonB},
		{evdev.BTN_START, constants.VirtualButtonStart},
		{evdev.KEY_A, constants.VirtualButtonUnassigned},
	}

	for _, tt := range tests {
		t.Run(tt.want.GetName(), func(t *testing.T) {
			assert.Equal(t, tt.want, k.Lookup(tt.code))
		})
	}
}

func TestMergeOverrides(t *testing.T) {
	base := DefaultKeyMap()
	merged := base.Merge(KeyMap{
		evdev.BTN_SOUTH: constants.VirtualButtonB,
		evdev.BTN_EAST:  constants.VirtualButtonA,
	})

	assert.Equal(t, constants.VirtualButtonB, merged.Lookup(evdev.BTN_SOUTH))
	assert.Equal(t, constants.VirtualButtonA, merged.Lookup(evdev.BTN_EAST))
	assert.Equal(t, constants.VirtualButtonA, base.Lookup(evdev.BTN_SOUTH))
}

func TestButtonForOnlyCountsPresses(t *testing.T) {
	k := DefaultKeyMap()

	b, ok := k.buttonFor(&evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.BTN_SOUTH, Value: 1})
	assert.True(t, ok)
	assert.Equal(t, constants.VirtualButtonA, b)

	_, ok = k.buttonFor(&evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.BTN_SOUTH, Value: 0})
	assert.False(t, ok)

	_, ok = k.buttonFor(&evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.BTN_SOUTH, Value: 2})
	assert.False(t, ok)

	_, ok = k.buttonFor(&evdev.InputEvent{Type: evdev.EV_ABS, Code: evdev.ABS_X, Value: 1})
	assert.False(t, ok)

	_, ok = k.buttonFor(nil)
	assert.False(t, ok)
}
