package screens

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"mediscan-kiosk/pkg/intake/constants"
	"mediscan-kiosk/internal"
)

// choiceOption is one entry in a vertical choice list.
type choiceOption struct {
	Label string
	Value string
}

type choiceListController struct {
	title    string
	subtitle string
	options  []choiceOption

	selectedIndex int
	directional   internal.DirectionalInput
	lastInputTime time.Time

	// Once confirmed, the choice stays highlighted briefly before the
	// screen returns, so the patient sees what they picked.
	confirmedAt time.Time
	cancelled   bool
}

// choiceList runs a blocking vertical selection and returns the chosen
// option's value. Returns ErrCancelled on quit.
func choiceList(title, subtitle string, options []choiceOption) (string, error) {
	win := internal.GetWindow()

	c := &choiceListController{
		title:         title,
		subtitle:      subtitle,
		options:       options,
		directional:   internal.NewDirectionalInput(),
		lastInputTime: time.Now(),
	}

	for {
		if !c.handleInput() {
			break
		}
		c.render(win)
		win.Present()

		if !c.confirmedAt.IsZero() && time.Since(c.confirmedAt) >= constants.ChoiceFlashDelay {
			break
		}
	}

	if c.cancelled {
		return "", ErrCancelled
	}
	return c.options[c.selectedIndex].Value, nil
}

func (c *choiceListController) handleInput() bool {
	events, ok := pollInput()
	if !ok {
		c.cancelled = true
		return false
	}
	if !c.confirmedAt.IsZero() {
		// Flashing the confirmation; ignore further input.
		return true
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

		switch ie.Button {
		case constants.VirtualButtonUp:
			c.move(-1)
		case constants.VirtualButtonDown:
			c.move(1)
		case constants.VirtualButtonConfirm:
			c.directional.Reset()
			c.confirmedAt = time.Now()
		}
	}

	switch c.directional.Update() {
	case constants.VirtualButtonUp:
		c.move(-1)
	case constants.VirtualButtonDown:
		c.move(1)
	}
	return true
}

func (c *choiceListController) move(delta int) {
	c.selectedIndex += delta
	if c.selectedIndex < 0 {
		c.selectedIndex = len(c.options) - 1
	}
	if c.selectedIndex >= len(c.options) {
		c.selectedIndex = 0
	}
}

func (c *choiceListController) render(win *internal.Window) {
	win.Clear()
	renderer := win.Renderer
	theme := internal.GetTheme()

	y := renderHeader(win, c.title, c.subtitle)

	itemHeight := int32(72)
	itemWidth := win.GetWidth() - 240
	x := (win.GetWidth() - itemWidth) / 2

	for i, opt := range c.options {
		rect := sdl.Rect{X: x, Y: y, W: itemWidth, H: itemHeight - 12}

		selected := i == c.selectedIndex
		if selected {
			accent := theme.AccentColor
			if !c.confirmedAt.IsZero() {
				accent = theme.MildColor
			}
			renderer.SetDrawColor(accent.R, accent.G, accent.B, accent.A)
			renderer.FillRect(&rect)
		} else {
			renderer.SetDrawColor(theme.HintColor.R, theme.HintColor.G, theme.HintColor.B, 60)
			renderer.DrawRect(&rect)
		}

		color := theme.TextColor
		if selected {
			color = theme.HighlightedTextColor
		}
		textY := y + (itemHeight-12)/2 - int32(internal.Fonts.MediumFont.Height())/2
		internal.RenderText(renderer, opt.Label, internal.Fonts.MediumFont,
			win.GetWidth()/2, textY, color, constants.TextAlignCenter)

		y += itemHeight
	}
}
