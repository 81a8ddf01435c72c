package screens

import (
	"errors"
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"mediscan-kiosk/pkg/intake/constants"
	"mediscan-kiosk/internal"
	"mediscan-kiosk/pkg/intake/questionnaire"
	"mediscan-kiosk/pkg/intake/report"
	"mediscan-kiosk/pkg/intake/scoring"
	"mediscan-kiosk/pkg/intake/store"
	"mediscan-kiosk/pkg/intake/wizard"
)

type resultsController struct {
	ctx     *Context
	summary scoring.Summary

	selectedIndex int // 0 = download, 1 = back to home
	exported      bool
	exportFailed  bool

	lastInputTime time.Time
	outcome       wizard.ResultsOutcome
	decided       bool
	cancelled     bool
}

// ResultsScreen scores the persisted questionnaire, shows the risk summary
// and recommendations, and offers report export before handing the kiosk
// back for the next patient.
func ResultsScreen(ctx *Context) wizard.StepFunc {
	return func(any) (any, error) {
		bundle, err := questionnaire.Load(ctx.Store)
		if errors.Is(err, store.ErrNotFound) {
			// Deep link with no completed questionnaire: start over.
			internal.Logger().Warn("results requested without answers")
			return wizard.ResultsRestart, nil
		}
		if err != nil {
			return nil, fmt.Errorf("results: loading answers: %w", err)
		}

		win := internal.GetWindow()
		c := &resultsController{
			ctx:           ctx,
			summary:       scoring.Score(bundle),
			lastInputTime: time.Now(),
		}

		for !c.decided {
			if !c.handleInput() {
				break
			}
			c.render(win)
			win.Present()
		}

		if c.cancelled {
			return nil, ErrCancelled
		}
		return c.outcome, nil
	}
}

func (c *resultsController) severityLabel() string {
	return c.ctx.Loc.T("questionnaire." + string(c.summary.Severity))
}

func (c *resultsController) severityColor() sdl.Color {
	theme := internal.GetTheme()
	switch c.summary.Severity {
	case scoring.SeveritySevere:
		return theme.SevereColor
	case scoring.SeverityModerate:
		return theme.ModerateColor
	}
	return theme.MildColor
}

func (c *resultsController) handleInput() bool {
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
		case constants.VirtualButtonLeft, constants.VirtualButtonRight:
			c.selectedIndex = 1 - c.selectedIndex
		case constants.VirtualButtonConfirm:
			if c.selectedIndex == 0 {
				c.export()
			} else {
				c.outcome = wizard.ResultsRestart
				c.decided = true
			}
		case constants.VirtualButtonBack:
			// The operator's back key shuts the kiosk down.
			c.outcome = wizard.ResultsExit
			c.decided = true
		}
	}
	return true
}

func (c *resultsController) export() {
	r := report.New(c.summary, c.severityLabel(), time.Now())

	if _, err := r.WriteText(c.ctx.Cfg.ExportDir); err != nil {
		internal.Logger().Error("text report export failed", "error", err)
		c.exportFailed = true
		return
	}
	if _, err := r.WritePDF(c.ctx.Cfg.ExportDir, c.ctx.Cfg.FontPath); err != nil {
		// The text report already landed; a missing PDF font should not
		// block the patient.
		internal.Logger().Warn("pdf report export failed", "error", err)
	}
	c.exported = true
	c.exportFailed = false
}

func (c *resultsController) render(win *internal.Window) {
	win.Clear()
	renderer := win.Renderer
	theme := internal.GetTheme()
	t := c.ctx.Loc.T
	centerX := win.GetWidth() / 2

	internal.RenderIcon(renderer, internal.IconHeartbeat, centerX-16, 16, 32)
	y := renderHeader(win, t("results.title"), "")

	// Risk score badge tinted by severity.
	accent := c.severityColor()
	badge := sdl.Rect{X: centerX - 80, Y: y, W: 160, H: 160}
	renderer.SetDrawColor(accent.R, accent.G, accent.B, 255)
	renderer.FillRect(&badge)
	scoreText := fmt.Sprintf("%d%%", c.summary.RiskScore)
	internal.RenderText(renderer, scoreText, internal.Fonts.LargeFont,
		centerX, y+80-int32(internal.Fonts.LargeFont.Height())/2,
		theme.HighlightedTextColor, constants.TextAlignCenter)
	y += 180

	severityLine := fmt.Sprintf("%s: %s", t("results.severity"), c.severityLabel())
	internal.RenderText(renderer, severityLine, internal.Fonts.MediumFont,
		centerX, y, accent, constants.TextAlignCenter)
	y += int32(internal.Fonts.MediumFont.Height()) + 24

	summaryLine := fmt.Sprintf("%s: %d  |  %s: %d  |  %s: %d",
		t("questionnaire.question"), c.summary.TotalQuestions,
		t("questionnaire.yes"), c.summary.YesCount,
		t("questionnaire.sometimes"), c.summary.SometimesCount)
	internal.RenderText(renderer, summaryLine, internal.Fonts.SmallFont,
		centerX, y, theme.HintColor, constants.TextAlignCenter)
	y += int32(internal.Fonts.SmallFont.Height()) + 32

	internal.RenderText(renderer, t("results.recommendations"), internal.Fonts.MediumFont,
		centerX, y, theme.TextColor, constants.TextAlignCenter)
	y += int32(internal.Fonts.MediumFont.Height()) + 12

	for i, rec := range c.summary.Recommendations {
		line := fmt.Sprintf("%d. %s", i+1, rec)
		h := internal.RenderMultilineText(renderer, line, internal.Fonts.SmallFont,
			win.GetWidth()-280, centerX, y, theme.TextColor, constants.TextAlignCenter)
		y += h + 8
	}

	c.renderButtons(win)
}

func (c *resultsController) renderButtons(win *internal.Window) {
	renderer := win.Renderer
	theme := internal.GetTheme()
	t := c.ctx.Loc.T

	downloadLabel := t("results.downloadReport")
	if c.exported {
		downloadLabel = "✓ " + downloadLabel
	}
	labels := []string{downloadLabel, t("results.backToHome")}

	btnW, btnH := int32(320), int32(64)
	gap := int32(40)
	totalW := 2*btnW + gap
	x := (win.GetWidth() - totalW) / 2
	y := win.GetHeight() - 120

	for i, label := range labels {
		rect := sdl.Rect{X: x, Y: y, W: btnW, H: btnH}
		if i == c.selectedIndex {
			renderer.SetDrawColor(theme.AccentColor.R, theme.AccentColor.G, theme.AccentColor.B, 255)
			renderer.FillRect(&rect)
		} else {
			renderer.SetDrawColor(theme.HintColor.R, theme.HintColor.G, theme.HintColor.B, 80)
			renderer.DrawRect(&rect)
		}

		color := theme.TextColor
		if i == c.selectedIndex {
			color = theme.HighlightedTextColor
		}
		textY := y + btnH/2 - int32(internal.Fonts.SmallFont.Height())/2
		internal.RenderText(renderer, label, internal.Fonts.SmallFont,
			x+btnW/2, textY, color, constants.TextAlignCenter)

		x += btnW + gap
	}

	if c.exportFailed {
		internal.RenderText(renderer, t("common.tryAgain"), internal.Fonts.SmallFont,
			win.GetWidth()/2, y-30, theme.ErrorColor, constants.TextAlignCenter)
	}
}
