package screens

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"mediscan-kiosk/pkg/intake/constants"
	"mediscan-kiosk/pkg/intake/disease"
	"mediscan-kiosk/internal"
	"mediscan-kiosk/pkg/intake/questionnaire"
	"mediscan-kiosk/pkg/intake/wizard"
)

type questionnaireController struct {
	ctx    *Context
	engine *questionnaire.Engine

	selectedIndex int
	lastInputTime time.Time
	cancelled     bool
}

var answerOrder = []questionnaire.Answer{
	questionnaire.AnswerYes,
	questionnaire.AnswerNo,
	questionnaire.AnswerSometimes,
}

// QuestionnaireScreen walks the patient through the disease's questions.
// Each answer auto-advances after a short delay; answering again inside
// that delay changes the answer. The completed bundle is persisted for the
// results step.
func QuestionnaireScreen(ctx *Context) wizard.StepFunc {
	return func(input any) (any, error) {
		d, ok := input.(disease.ID)
		if !ok {
			return nil, fmt.Errorf("questionnaire: missing disease id")
		}

		questions, err := questionnaire.Questions(d, ctx.Loc.Language())
		if err != nil {
			return nil, err
		}

		win := internal.GetWindow()
		c := &questionnaireController{
			ctx:           ctx,
			engine:        questionnaire.NewEngine(d, questions),
			lastInputTime: time.Now(),
		}

		for !c.engine.Done() {
			if !c.handleInput() {
				break
			}
			if c.engine.Tick(time.Now()) {
				c.selectedIndex = 0
			}
			c.render(win)
			win.Present()
		}

		if c.cancelled {
			return nil, ErrCancelled
		}

		bundle, err := c.engine.Bundle(time.Now())
		if err != nil {
			return nil, err
		}
		if err := questionnaire.Save(ctx.Store, bundle); err != nil {
			return nil, err
		}
		return d, nil
	}
}

func (c *questionnaireController) handleInput() bool {
	presses, ok := pollButtons()
	if !ok {
		c.cancelled = true
		return false
	}

	for _, button := range presses {
		if time.Since(c.lastInputTime) < constants.DefaultInputDelay {
			continue
		}
		c.lastInputTime = time.Now()

		switch button {
		case constants.VirtualButtonLeft:
			c.selectedIndex--
			if c.selectedIndex < 0 {
				c.selectedIndex = len(answerOrder) - 1
			}
		case constants.VirtualButtonRight:
			c.selectedIndex++
			if c.selectedIndex >= len(answerOrder) {
				c.selectedIndex = 0
			}
		case constants.VirtualButtonConfirm:
			c.engine.Record(answerOrder[c.selectedIndex], time.Now())
		}
	}
	return true
}

func (c *questionnaireController) render(win *internal.Window) {
	win.Clear()
	renderer := win.Renderer
	theme := internal.GetTheme()
	t := c.ctx.Loc.T
	centerX := win.GetWidth() / 2

	progress := fmt.Sprintf("%s %d %s %d",
		t("questionnaire.question"), c.engine.Index()+1,
		t("questionnaire.of"), c.engine.Total())

	y := renderHeader(win, t("questionnaire.title"), progress)

	// Progress bar under the header.
	barW := win.GetWidth() - 320
	barRect := sdl.Rect{X: (win.GetWidth() - barW) / 2, Y: y, W: barW, H: 8}
	renderer.SetDrawColor(theme.HintColor.R, theme.HintColor.G, theme.HintColor.B, 70)
	renderer.FillRect(&barRect)
	fillW := barW * int32(c.engine.Index()) / int32(c.engine.Total())
	fill := sdl.Rect{X: barRect.X, Y: barRect.Y, W: fillW, H: 8}
	renderer.SetDrawColor(theme.AccentColor.R, theme.AccentColor.G, theme.AccentColor.B, 255)
	renderer.FillRect(&fill)
	y += 48

	y += internal.RenderMultilineText(renderer, c.engine.Question(),
		internal.Fonts.MediumFont, win.GetWidth()-240, centerX, y,
		theme.TextColor, constants.TextAlignCenter)
	y += 60

	c.renderAnswers(win, y)
}

func (c *questionnaireController) renderAnswers(win *internal.Window, y int32) {
	renderer := win.Renderer
	theme := internal.GetTheme()
	t := c.ctx.Loc.T

	labels := []string{
		t("questionnaire.yes"),
		t("questionnaire.no"),
		t("questionnaire.sometimes"),
	}

	recorded, hasRecorded := c.engine.Current()

	pillW, pillH := int32(200), int32(64)
	gap := int32(24)
	totalW := int32(len(labels))*pillW + int32(len(labels)-1)*gap
	x := (win.GetWidth() - totalW) / 2

	for i, label := range labels {
		rect := sdl.Rect{X: x, Y: y, W: pillW, H: pillH}

		switch {
		case hasRecorded && answerOrder[i] == recorded:
			// The pending answer stays highlighted until it commits.
			renderer.SetDrawColor(theme.MildColor.R, theme.MildColor.G, theme.MildColor.B, 255)
			renderer.FillRect(&rect)
		case i == c.selectedIndex:
			renderer.SetDrawColor(theme.AccentColor.R, theme.AccentColor.G, theme.AccentColor.B, 255)
			renderer.FillRect(&rect)
		default:
			renderer.SetDrawColor(theme.HintColor.R, theme.HintColor.G, theme.HintColor.B, 80)
			renderer.DrawRect(&rect)
		}

		color := theme.TextColor
		if i == c.selectedIndex || (hasRecorded && answerOrder[i] == recorded) {
			color = theme.HighlightedTextColor
		}
		textY := y + pillH/2 - int32(internal.Fonts.MediumFont.Height())/2
		internal.RenderText(renderer, label, internal.Fonts.MediumFont,
			x+pillW/2, textY, color, constants.TextAlignCenter)

		x += pillW + gap
	}
}
