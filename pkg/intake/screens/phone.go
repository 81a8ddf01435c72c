package screens

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"mediscan-kiosk/pkg/intake/constants"
	"mediscan-kiosk/internal"
	"mediscan-kiosk/pkg/intake/phone"
	"mediscan-kiosk/pkg/intake/store"
	"mediscan-kiosk/pkg/intake/wizard"
)

const (
	keypadDelete = "del"
	keypadDone   = "ok"
	maxDigits    = 12
)

var keypadRows = [][]string{
	{"1", "2", "3"},
	{"4", "5", "6"},
	{"7", "8", "9"},
	{keypadDelete, "0", keypadDone},
}

type phoneController struct {
	ctx *Context

	digits        string
	row, col      int
	directional   internal.DirectionalInput
	lastInputTime time.Time

	showError bool
	done      bool
	cancelled bool
}

// PhoneScreen collects the patient's mobile number on an on-screen keypad.
// The display formats live while typing; the number is validated and stored
// in canonical form on submit.
func PhoneScreen(ctx *Context) wizard.StepFunc {
	return func(any) (any, error) {
		win := internal.GetWindow()

		c := &phoneController{
			ctx:           ctx,
			directional:   internal.NewDirectionalInput(),
			lastInputTime: time.Now(),
		}

		for !c.done {
			if !c.handleInput() {
				break
			}
			c.render(win)
			win.Present()
		}

		if c.cancelled {
			return nil, ErrCancelled
		}

		canonical, err := phone.Canonical(c.digits)
		if err != nil {
			return nil, fmt.Errorf("phone accepted invalid number %q: %w", c.digits, err)
		}
		if err := ctx.Store.Set(store.KeyPhoneNumber, canonical); err != nil {
			return nil, fmt.Errorf("persisting phone number: %w", err)
		}
		return canonical, nil
	}
}

func (c *phoneController) handleInput() bool {
	events, ok := pollInput()
	if !ok {
		c.cancelled = true
		return false
	}

	for _, ie := range events {
		c.directional.SetHeld(ie.Button, ie.Pressed)
		if !ie.Pressed {
			continue
		}
		if time.Since(c.lastInputTime) < constants.DefaultInputDelay {
			continue
		}
		c.lastInputTime = time.Now()
		c.handleButton(ie.Button)
	}

	if dir := c.directional.Update(); dir != constants.VirtualButtonUnassigned {
		c.handleButton(dir)
	}
	return true
}

func (c *phoneController) handleButton(button constants.VirtualButton) {
	switch button {
	case constants.VirtualButtonUp:
		c.moveRow(-1)
	case constants.VirtualButtonDown:
		c.moveRow(1)
	case constants.VirtualButtonLeft:
		c.moveCol(-1)
	case constants.VirtualButtonRight:
		c.moveCol(1)
	case constants.VirtualButtonBack:
		c.erase()
	case constants.VirtualButtonConfirm:
		c.press(keypadRows[c.row][c.col])
	}
}

func (c *phoneController) moveRow(delta int) {
	c.row = (c.row + delta + len(keypadRows)) % len(keypadRows)
}

func (c *phoneController) moveCol(delta int) {
	cols := len(keypadRows[c.row])
	c.col = (c.col + delta + cols) % cols
}

func (c *phoneController) erase() {
	if len(c.digits) > 0 {
		c.digits = c.digits[:len(c.digits)-1]
	}
	c.showError = false
}

func (c *phoneController) press(key string) {
	switch key {
	case keypadDelete:
		c.erase()
	case keypadDone:
		if err := phone.Validate(c.digits); err != nil {
			// Nothing is persisted on a failed submit; the patient
			// corrects the number in place.
			c.showError = true
			return
		}
		c.done = true
	default:
		if len(phone.Digits(c.digits)) < maxDigits {
			c.digits += key
			c.showError = false
		}
	}
}

func (c *phoneController) render(win *internal.Window) {
	win.Clear()
	renderer := win.Renderer
	theme := internal.GetTheme()
	t := c.ctx.Loc.T
	centerX := win.GetWidth() / 2

	y := renderHeader(win, t("phoneNumber.title"), t("phoneNumber.instruction"))

	// Live-formatted number, or the placeholder when empty.
	display := phone.Format(c.digits)
	color := theme.TextColor
	if display == "" {
		display = t("phoneNumber.placeholder")
		color = theme.HintColor
	}
	internal.RenderText(renderer, display, internal.Fonts.LargeFont,
		centerX, y, color, constants.TextAlignCenter)
	y += int32(internal.Fonts.LargeFont.Height()) + 8

	internal.RenderText(renderer, t("phoneNumber.format"), internal.Fonts.SmallFont,
		centerX, y, theme.HintColor, constants.TextAlignCenter)
	y += int32(internal.Fonts.SmallFont.Height()) + 24

	if c.showError {
		internal.RenderText(renderer, t("phoneNumber.error"), internal.Fonts.SmallFont,
			centerX, y, theme.ErrorColor, constants.TextAlignCenter)
	}
	y += int32(internal.Fonts.SmallFont.Height()) + 16

	c.renderKeypad(win, y)
}

func (c *phoneController) renderKeypad(win *internal.Window, y int32) {
	renderer := win.Renderer
	theme := internal.GetTheme()
	t := c.ctx.Loc.T

	keyW, keyH := int32(120), int32(72)
	gap := int32(16)
	gridW := 3*keyW + 2*gap
	startX := (win.GetWidth() - gridW) / 2

	for ri, row := range keypadRows {
		for ci, key := range row {
			rect := sdl.Rect{
				X: startX + int32(ci)*(keyW+gap),
				Y: y + int32(ri)*(keyH+gap),
				W: keyW, H: keyH,
			}

			selected := ri == c.row && ci == c.col
			if selected {
				renderer.SetDrawColor(theme.AccentColor.R, theme.AccentColor.G, theme.AccentColor.B, 255)
				renderer.FillRect(&rect)
			} else {
				renderer.SetDrawColor(theme.HintColor.R, theme.HintColor.G, theme.HintColor.B, 80)
				renderer.DrawRect(&rect)
			}

			label := key
			switch key {
			case keypadDelete:
				label = "⌫"
			case keypadDone:
				label = t("phoneNumber.continue")
			}

			color := theme.TextColor
			if selected {
				color = theme.HighlightedTextColor
			}
			font := internal.Fonts.MediumFont
			if key == keypadDone {
				font = internal.Fonts.SmallFont
			}
			textY := rect.Y + keyH/2 - int32(font.Height())/2
			internal.RenderText(renderer, label, font,
				rect.X+keyW/2, textY, color, constants.TextAlignCenter)
		}
	}
}
