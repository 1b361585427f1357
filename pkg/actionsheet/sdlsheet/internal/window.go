package internal

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet"
	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet/constants"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	devWindowWidth  int32 = 1024
	devWindowHeight int32 = 768
)

// WindowOptions selects SDL window flags. The zero value lets Init pick flags
// for the current mode.
type WindowOptions struct {
	Borderless        bool
	Resizable         bool
	Fullscreen        bool
	FullscreenDesktop bool
	AlwaysOnTop       bool
	Hidden            bool // Omits SDL_WINDOW_SHOWN
}

func (wo WindowOptions) IsZero() bool {
	return wo == WindowOptions{}
}

// ToSDLFlags returns the flags for sdl.CreateWindow.
func (wo WindowOptions) ToSDLFlags() uint32 {
	set := []struct {
		on   bool
		flag uint32
	}{
		{!wo.Hidden, sdl.WINDOW_SHOWN},
		{wo.Resizable, sdl.WINDOW_RESIZABLE},
		{wo.Borderless, sdl.WINDOW_BORDERLESS},
		{wo.Fullscreen, sdl.WINDOW_FULLSCREEN},
		{wo.FullscreenDesktop, sdl.WINDOW_FULLSCREEN_DESKTOP},
		{wo.AlwaysOnTop, sdl.WINDOW_ALWAYS_ON_TOP},
	}

	var flags uint32
	for _, f := range set {
		if f.on {
			flags |= f.flag
		}
	}
	return flags
}

// Window wraps the SDL window and renderer.
type Window struct {
	Window          *sdl.Window
	Renderer        *sdl.Renderer
	Title           string
	Background      *sdl.Texture
	hasVSync        bool
	lastPresentTime uint64
}

func initWindow(title string, winOpts WindowOptions) (*Window, error) {
	displayMode, err := sdl.GetCurrentDisplayMode(0)
	if err != nil {
		actionsheet.GetInternalLogger().Error("Failed to get display mode", "error", err)
	}

	return initWindowWithSize(title, displayMode.W, displayMode.H, winOpts)
}

func initWindowWithSize(title string, width, height int32, winOpts WindowOptions) (*Window, error) {
	x, y := int32(0), int32(0)

	if constants.IsDevMode() {
		winOpts.Borderless = false
		x, y = 50, 50
		width = envDimension(constants.WindowWidthEnvVar, devWindowWidth)
		height = envDimension(constants.WindowHeightEnvVar, devWindowHeight)
	}

	actionsheet.GetInternalLogger().Debug("Initializing SDL window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, x, y, width, height, winOpts.ToSDLFlags())
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	win := &Window{
		Window:   window,
		Renderer: renderer,
		Title:    title,
		hasVSync: vsync,
	}
	win.loadBackground()

	return win, nil
}

func envDimension(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		actionsheet.GetInternalLogger().Warn("Invalid window dimension; using default", "name", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

func (window *Window) loadBackground() {
	path := GetTheme().BackgroundImagePath
	if path == "" {
		return
	}

	bgTexture, err := img.LoadTexture(window.Renderer, path)
	if err != nil {
		actionsheet.GetInternalLogger().Debug("No background image", "path", path, "error", err)
		return
	}
	window.Background = bgTexture
}

func (window *Window) closeWindow() {
	if window.Background != nil {
		window.Background.Destroy()
	}
	window.Renderer.Destroy()
	window.Window.Destroy()
}

func GetWindow() *Window {
	return window
}

func (window *Window) GetWidth() int32 {
	w, _ := window.Window.GetSize()
	return w
}

func (window *Window) GetHeight() int32 {
	_, h := window.Window.GetSize()
	return h
}

// IsLandscape reports whether the window is wider than it is tall, which is the
// compact vertical size class on a handheld.
func (window *Window) IsLandscape() bool {
	w, h := window.Window.GetSize()
	return w > h
}

func (window *Window) RenderBackground() {
	theme := GetTheme()
	c := theme.BackgroundColor
	window.Renderer.SetDrawColor(c.R, c.G, c.B, 255)
	window.Renderer.Clear()

	if window.Background != nil {
		window.Renderer.Copy(window.Background, nil, &sdl.Rect{X: 0, Y: 0, W: window.GetWidth(), H: window.GetHeight()})
	}
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available. Use this instead of renderer.Present().
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}
