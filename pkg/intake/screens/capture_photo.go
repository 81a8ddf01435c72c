package screens

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"

	"mediscan-kiosk/pkg/intake/capture"
	"mediscan-kiosk/pkg/intake/constants"
	"mediscan-kiosk/internal"
	"mediscan-kiosk/pkg/intake/store"
)

// photoOpts parameterizes the shared photo capture controller. All five
// photo screens (patient, CNIC, eyes, skin, dengue kit) are this controller
// with different text and target keys.
type photoOpts struct {
	titleID       string
	instructionID string
	captureID     string
	retakeID      string
	continueID    string

	storeKey string

	// faceGuided enables the detector-driven countdown auto-shutter.
	faceGuided bool
	// mirror flips the live preview horizontally (front camera).
	mirror bool
}

type photoController struct {
	ctx  *Context
	opts photoOpts

	session *capture.Session
	guide   *capture.FaceGuide

	previewTexture *sdl.Texture
	frozen         capture.Frame

	lastInputTime time.Time
	done          bool
	cancelled     bool
}

// photoCapture runs one guided photo capture and persists the confirmed
// shot under opts.storeKey as a data-URL JPEG.
func photoCapture(ctx *Context, opts photoOpts) error {
	win := internal.GetWindow()

	var detector capture.Detector
	if opts.faceGuided {
		detector = ctx.Detector
	}

	c := &photoController{
		ctx:           ctx,
		opts:          opts,
		session:       capture.NewSession(ctx.NewCamera()),
		guide:         capture.NewFaceGuide(detector),
		lastInputTime: time.Now(),
	}
	defer c.teardown()

	c.session.Begin()

	for !c.done {
		if !c.handleInput() {
			break
		}
		c.update()
		c.render(win)
		win.Present()
	}

	if c.cancelled {
		return ErrCancelled
	}

	encoded := store.EncodeArtifact("image/jpeg", c.session.Shot().JPEG)
	if err := c.ctx.Store.Set(opts.storeKey, encoded); err != nil {
		return fmt.Errorf("persisting %s: %w", opts.storeKey, err)
	}
	return nil
}

func (c *photoController) teardown() {
	c.session.Close()
	if c.previewTexture != nil {
		c.previewTexture.Destroy()
		c.previewTexture = nil
	}
}

func (c *photoController) handleInput() bool {
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

		switch c.session.State() {
		case capture.StatePreviewing:
			if button == constants.VirtualButtonShutter || button == constants.VirtualButtonConfirm {
				c.freeze()
			}
		case capture.StateCaptured:
			switch button {
			case constants.VirtualButtonConfirm:
				if err := c.session.Confirm(); err == nil {
					c.done = true
				}
			case constants.VirtualButtonBack:
				c.guide.Reset()
				c.session.Retake()
			}
		case capture.StateFailed:
			if button == constants.VirtualButtonConfirm {
				c.session.Retry()
			}
		}
	}
	return true
}

func (c *photoController) update() {
	if c.session.State() != capture.StatePreviewing {
		return
	}

	frame, err := c.session.Preview()
	if err != nil {
		return
	}
	c.frozen = frame
	c.setPreview(frame.JPEG)

	now := time.Now()
	c.guide.Observe(frame.Image, now)
	if c.guide.ShouldCapture(now) {
		c.freeze()
	}
}

func (c *photoController) freeze() {
	if err := c.session.Capture(c.frozen); err == nil {
		c.guide.Reset()
	}
}

func (c *photoController) setPreview(jpeg []byte) {
	if len(jpeg) == 0 {
		return
	}
	rw, err := sdl.RWFromMem(jpeg)
	if err != nil {
		return
	}
	texture, err := img.LoadTextureRW(internal.GetWindow().Renderer, rw, true)
	if err != nil {
		return
	}
	if c.previewTexture != nil {
		c.previewTexture.Destroy()
	}
	c.previewTexture = texture
}

func (c *photoController) render(win *internal.Window) {
	win.Clear()
	renderer := win.Renderer
	theme := internal.GetTheme()
	t := c.ctx.Loc.T
	centerX := win.GetWidth() / 2

	y := renderHeader(win, t(c.opts.titleID), t(c.opts.instructionID))

	viewW := win.GetWidth() - 320
	viewH := viewW * 9 / 16
	viewRect := sdl.Rect{X: (win.GetWidth() - viewW) / 2, Y: y, W: viewW, H: viewH}

	switch c.session.State() {
	case capture.StatePreviewing, capture.StateCaptured, capture.StateConfirmed:
		if c.previewTexture != nil {
			flip := sdl.FLIP_NONE
			if c.opts.mirror && c.session.State() == capture.StatePreviewing {
				flip = sdl.FLIP_HORIZONTAL
			}
			renderer.CopyEx(c.previewTexture, nil, &viewRect, 0, nil, flip)
		} else {
			internal.RenderText(renderer, t("cameraCapture.loading"), internal.Fonts.MediumFont,
				centerX, viewRect.Y+viewH/2, theme.HintColor, constants.TextAlignCenter)
		}

		renderer.SetDrawColor(theme.AccentColor.R, theme.AccentColor.G, theme.AccentColor.B, 255)
		renderer.DrawRect(&viewRect)

		c.renderOverlay(win, viewRect)
		c.renderFooter(win)

	case capture.StateFailed:
		messageID := "cameraCapture.error"
		if c.session.Reason() == capture.FailNoDevice {
			messageID = "cameraCapture.noCamera"
		}
		renderErrorPanel(win, t(messageID), t("common.tryAgain"))

	default:
		internal.RenderText(renderer, t("cameraCapture.loading"), internal.Fonts.MediumFont,
			centerX, viewRect.Y+viewH/2, theme.HintColor, constants.TextAlignCenter)
	}
}

func (c *photoController) renderOverlay(win *internal.Window, viewRect sdl.Rect) {
	renderer := win.Renderer
	theme := internal.GetTheme()

	if c.session.State() != capture.StatePreviewing {
		internal.RenderIcon(renderer, internal.IconCheck,
			viewRect.X+viewRect.W-56, viewRect.Y+8, 48)
		return
	}

	step := c.guide.CountdownStep(time.Now())
	if step > 0 {
		internal.RenderText(renderer, fmt.Sprintf("%d", step), internal.Fonts.LargeFont,
			viewRect.X+viewRect.W/2,
			viewRect.Y+viewRect.H/2-int32(internal.Fonts.LargeFont.Height())/2,
			theme.HighlightedTextColor, constants.TextAlignCenter)
	}
}

func (c *photoController) renderFooter(win *internal.Window) {
	theme := internal.GetTheme()
	t := c.ctx.Loc.T
	centerX := win.GetWidth() / 2
	y := win.GetHeight() - 80

	var hint string
	switch c.session.State() {
	case capture.StatePreviewing:
		hint = t(c.opts.captureID)
		internal.RenderIcon(win.Renderer, internal.IconCamera, centerX-140, y-6, 32)
	case capture.StateCaptured:
		hint = t(c.opts.continueID) + "  /  " + t(c.opts.retakeID)
	}
	internal.RenderText(win.Renderer, hint, internal.Fonts.SmallFont,
		centerX, y, theme.HintColor, constants.TextAlignCenter)
}
