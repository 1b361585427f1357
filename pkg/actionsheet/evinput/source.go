//go:build linux

// Package evinput reads button presses straight from a Linux input device, for
// handhelds where SDL does not see the physical buttons.
package evinput

import (
	"fmt"
	"log/slog"

	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet"
	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet/constants"
	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

const bufferSize = 16

// Source delivers virtual button presses read from one evdev device.
type Source struct {
	device  *evdev.InputDevice
	keymap  KeyMap
	buttons chan constants.VirtualButton
	running *atomic.Bool
	logger  *slog.Logger
}

// Open starts reading from the device at path. A nil keymap uses DefaultKeyMap.
func Open(path string, keymap KeyMap) (*Source, error) {
	device, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("evinput: open %s: %w", path, err)
	}

	if keymap == nil {
		keymap = DefaultKeyMap()
	}

	s := &Source{
		device:  device,
		keymap:  keymap,
		buttons: make(chan constants.VirtualButton, bufferSize),
		running: atomic.NewBool(true),
		logger:  actionsheet.GetInternalLogger().With("device", path),
	}

	if name, err := device.Name(); err == nil {
		s.logger.Debug("Opened input device", "name", name)
	}

	go s.read()
	return s, nil
}

// OpenByName opens the first input device whose name matches.
func OpenByName(name string, keymap KeyMap) (*Source, error) {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return nil, fmt.Errorf("evinput: list devices: %w", err)
	}
	for _, p := range paths {
		if p.Name == name {
			return Open(p.Path, keymap)
		}
	}
	return nil, fmt.Errorf("evinput: no input device named %q", name)
}

// Buttons returns the channel of presses. It is closed when the source stops.
func (s *Source) Buttons() <-chan constants.VirtualButton {
	return s.buttons
}

// Close stops reading and releases the device.
func (s *Source) Close() error {
	if !s.running.CompareAndSwap(true, false) {
		return nil
	}
	return s.device.Close()
}

func (s *Source) read() {
	defer close(s.buttons)

	for s.running.Load() {
		ev, err := s.device.ReadOne()
		if err != nil {
			if s.running.Load() {
				s.logger.Error("Failed to read input event", "error", err)
				s.running.Store(false)
			}
			return
		}

		button, ok := s.keymap.buttonFor(ev)
		if !ok {
			continue
		}

		select {
		case s.buttons <- button:
		default:
			s.logger.Debug("Dropping button press, reader is behind", "button", button.GetName())
		}
	}
}
