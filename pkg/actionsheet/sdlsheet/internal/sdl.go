package internal

import (
	"fmt"

	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet/constants"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var window *Window

// Init brings up SDL, the window, fonts and game controllers.
func Init(title string, winOpts WindowOptions) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("init sdl: %w", err)
	}

	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return fmt.Errorf("init ttf: %w", err)
	}

	if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
		ttf.Quit()
		sdl.Quit()
		return fmt.Errorf("init img: %w", err)
	}

	if winOpts.IsZero() {
		if constants.IsDevMode() {
			winOpts = WindowOptions{Resizable: true}
		} else {
			winOpts = WindowOptions{Borderless: true, FullscreenDesktop: true}
		}
	}

	w, err := initWindow(title, winOpts)
	if err != nil {
		img.Quit()
		ttf.Quit()
		sdl.Quit()
		return err
	}
	window = w

	openControllers()
	return nil
}

// SDLCleanup releases everything Init created.
func SDLCleanup() {
	if window != nil {
		window.closeWindow()
		window = nil
	}
	closeControllers()
	closeFonts()
	img.Quit()
	ttf.Quit()
	sdl.Quit()
}
