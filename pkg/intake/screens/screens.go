// Package screens implements the kiosk's UI: one blocking function per
// wizard step, each running its own poll/update/render loop.
package screens

import (
	"errors"
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"mediscan-kiosk/pkg/intake/capture"
	"mediscan-kiosk/pkg/intake/config"
	"mediscan-kiosk/pkg/intake/constants"
	"mediscan-kiosk/pkg/intake/i18n"
	"mediscan-kiosk/internal"
	"mediscan-kiosk/pkg/intake/store"
)

// ErrCancelled indicates the kiosk was asked to quit (window close or
// hardware power event). This is flow control, not a failure.
var ErrCancelled = errors.New("intake cancelled")

// InfrastructureError wraps failures of the kiosk itself (SDL, devices,
// fonts) as opposed to user-flow conditions.
type InfrastructureError struct {
	Op  string
	Err error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("mediscan: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("mediscan: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// Context carries everything screens need. One instance is shared by all
// steps for the life of the process.
type Context struct {
	Store    store.Store
	Loc      *i18n.Localizer
	Cfg      config.Config
	Detector capture.Detector // nil when the face cascade is unavailable
}

// NewCamera builds the capture camera from the configuration.
func (ctx *Context) NewCamera() capture.Camera {
	return capture.NewV4L2Camera(ctx.Cfg.CameraDevice, 1280, 720)
}

// pollInput gathers this frame's button events, presses and releases, from
// both input sources. A quit event surfaces as ok=false.
func pollInput() (events []internal.InputEvent, ok bool) {
	processor := internal.GetInputProcessor()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if _, isQuit := event.(*sdl.QuitEvent); isQuit {
			return nil, false
		}
		if ie := processor.ProcessSDLEvent(event); ie != nil {
			events = append(events, *ie)
		}
	}

	for {
		select {
		case ie := <-processor.HardwareEvents():
			events = append(events, ie)
		default:
			return events, true
		}
	}
}

// pollButtons is pollInput reduced to presses, for screens that do not
// track held keys.
func pollButtons() ([]constants.VirtualButton, bool) {
	events, ok := pollInput()
	if !ok {
		return nil, false
	}
	var presses []constants.VirtualButton
	for _, ie := range events {
		if ie.Pressed {
			presses = append(presses, ie.Button)
		}
	}
	return presses, true
}

// renderHeader draws the screen title and optional subtitle, returning the
// Y coordinate where content should start.
func renderHeader(win *internal.Window, title, subtitle string) int32 {
	renderer := win.Renderer
	theme := internal.GetTheme()
	centerX := win.GetWidth() / 2

	y := int32(60)
	h := internal.RenderMultilineText(renderer, title, internal.Fonts.LargeFont,
		win.GetWidth()-120, centerX, y, theme.TextColor, constants.TextAlignCenter)
	y += h + 16

	if subtitle != "" {
		h = internal.RenderMultilineText(renderer, subtitle, internal.Fonts.SmallFont,
			win.GetWidth()-160, centerX, y, theme.HintColor, constants.TextAlignCenter)
		y += h + 24
	}
	return y + 16
}

// renderErrorPanel draws an inline error with a retry hint near the bottom
// of the screen.
func renderErrorPanel(win *internal.Window, message, retryLabel string) {
	renderer := win.Renderer
	theme := internal.GetTheme()
	centerX := win.GetWidth() / 2
	y := win.GetHeight() - 180

	internal.RenderIcon(renderer, internal.IconWarning, centerX-24, y-56, 48)
	h := internal.RenderMultilineText(renderer, message, internal.Fonts.MediumFont,
		win.GetWidth()-200, centerX, y, theme.ErrorColor, constants.TextAlignCenter)
	internal.RenderText(renderer, retryLabel, internal.Fonts.SmallFont,
		centerX, y+h+20, theme.HintColor, constants.TextAlignCenter)
}
