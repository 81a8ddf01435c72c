package internal

import (
	"os"
	"strconv"

	"github.com/veandco/go-sdl2/sdl"

	"mediscan-kiosk/pkg/intake/constants"
)

// Window wraps the SDL window and renderer plus frame pacing state.
type Window struct {
	Window   *sdl.Window
	Renderer *sdl.Renderer
	Title    string

	hasVSync        bool
	lastPresentTime uint64
}

var window *Window

func initWindow(title string) *Window {
	displayMode, err := sdl.GetCurrentDisplayMode(0)
	if err != nil {
		Logger().Error("failed to get display mode", "error", err)
	}

	width, height := displayMode.W, displayMode.H
	x, y := int32(0), int32(0)
	flags := uint32(sdl.WINDOW_SHOWN | sdl.WINDOW_BORDERLESS)

	if constants.IsDevMode() {
		flags = sdl.WINDOW_SHOWN
		x, y = 50, 50
		width, height = 1024, 768
		if v := os.Getenv(constants.WindowWidthEnvVar); v != "" {
			if n, err := strconv.ParseInt(v, 10, 32); err == nil {
				width = int32(n)
			} else {
				Logger().Warn("invalid WINDOW_WIDTH; using default", "value", v, "error", err)
			}
		}
		if v := os.Getenv(constants.WindowHeightEnvVar); v != "" {
			if n, err := strconv.ParseInt(v, 10, 32); err == nil {
				height = int32(n)
			} else {
				Logger().Warn("invalid WINDOW_HEIGHT; using default", "value", v, "error", err)
			}
		}
	}

	Logger().Debug("initializing SDL window", "width", width, "height", height)

	win, err := sdl.CreateWindow(title, x, y, width, height, flags)
	if err != nil {
		panic(err)
	}

	renderer, err := sdl.CreateRenderer(win, -1,
		sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		Logger().Error("failed to create renderer", "error", err)
		os.Exit(1)
	}

	renderer.SetLogicalSize(width, height)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &Window{
		Window:   win,
		Renderer: renderer,
		Title:    title,
		hasVSync: vsync,
	}
}

func (w *Window) closeWindow() {
	w.Renderer.Destroy()
	w.Window.Destroy()
}

// GetWindow returns the process-wide window wrapper.
func GetWindow() *Window {
	return window
}

func (w *Window) GetWidth() int32 {
	width, _ := w.Window.GetSize()
	return width
}

func (w *Window) GetHeight() int32 {
	_, height := w.Window.GetSize()
	return height
}

// Clear fills the frame with the theme background color.
func (w *Window) Clear() {
	bg := GetTheme().BackgroundColor
	w.Renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	w.Renderer.Clear()
}

// Present swaps the render buffer and enforces ~60fps frame timing when
// VSync is not available. Use this instead of renderer.Present().
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
