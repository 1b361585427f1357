//go:build linux

package main

import (
	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet/evinput"
	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet/sdlsheet"
)

func openButtonSource(path string) (sdlsheet.ButtonSource, func(), error) {
	source, err := evinput.Open(path, nil)
	if err != nil {
		return nil, nil, err
	}
	return source, func() { _ = source.Close() }, nil
}
