//go:build !linux

package main

import (
	"errors"

	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet/sdlsheet"
)

func openButtonSource(string) (sdlsheet.ButtonSource, func(), error) {
	return nil, nil, errors.New("--evdev is only supported on linux")
}
