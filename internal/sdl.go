package internal

import (
	"os"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Init brings up SDL, the window, fonts and input. Must be called before
// any screen runs. inputDevicePath optionally names an evdev node for the
// kiosk's hardware keys.
func Init(title, inputDevicePath string) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_EVENTS); err != nil {
		Logger().Error("SDL init failed", "error", err)
		os.Exit(1)
	}
	if err := ttf.Init(); err != nil {
		Logger().Error("SDL_ttf init failed", "error", err)
		os.Exit(1)
	}
	img.Init(img.INIT_PNG | img.INIT_JPG)

	InitInputProcessor(inputDevicePath)

	window = initWindow(title)

	initFonts()
}

// SDLCleanup releases everything Init acquired. Call once on shutdown.
func SDLCleanup() {
	StopInputProcessor()
	destroyIconCache()
	if window != nil {
		window.closeWindow()
	}
	closeFonts()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
	CloseLogger()
}
