package screens

import (
	"fmt"
	"time"

	"mediscan-kiosk/pkg/intake/capture"
	"mediscan-kiosk/pkg/intake/constants"
	"mediscan-kiosk/internal"
	"mediscan-kiosk/pkg/intake/store"
)

// breathingCapture is the two-phase breathing flow: the X-ray photo first,
// then the stethoscope recording. Both artifacts are required before the
// step completes.
func breathingCapture(ctx *Context) error {
	if err := photoCapture(ctx, photoOpts{
		titleID:       "breathingCapture.xrayTitle",
		instructionID: "breathingCapture.xrayInstruction",
		captureID:     "breathingCapture.xrayCapture",
		retakeID:      "breathingCapture.retake",
		continueID:    "breathingCapture.continue",
		storeKey:      store.KeyBreathingXray,
	}); err != nil {
		return err
	}
	return audioCapture(ctx)
}

type audioPhase int

const (
	audioIdle audioPhase = iota
	audioRecording
	audioRecorded
	audioFailed
)

type audioController struct {
	ctx      *Context
	recorder *capture.SDLRecorder

	phase     audioPhase
	startedAt time.Time
	wav       []byte

	lastInputTime time.Time
	done          bool
	cancelled     bool
}

// audioCapture records the stethoscope audio and persists it as a data-URL
// WAV under the breathing audio key.
func audioCapture(ctx *Context) error {
	win := internal.GetWindow()

	c := &audioController{
		ctx:           ctx,
		recorder:      capture.NewSDLRecorder(ctx.Cfg.AudioDevice),
		lastInputTime: time.Now(),
	}
	defer c.recorder.Stop()

	for !c.done {
		if !c.handleInput() {
			break
		}
		if c.phase == audioRecording {
			c.recorder.Drain()
		}
		c.render(win)
		win.Present()
	}

	if c.cancelled {
		return ErrCancelled
	}

	encoded := store.EncodeArtifact("audio/wav", c.wav)
	if err := c.ctx.Store.Set(store.KeyBreathingAudio, encoded); err != nil {
		return fmt.Errorf("persisting breathing audio: %w", err)
	}
	return nil
}

func (c *audioController) handleInput() bool {
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

		switch c.phase {
		case audioIdle, audioFailed:
			if button == constants.VirtualButtonConfirm {
				c.startRecording()
			}
		case audioRecording:
			if button == constants.VirtualButtonConfirm {
				c.stopRecording()
			}
		case audioRecorded:
			switch button {
			case constants.VirtualButtonConfirm:
				c.done = true
			case constants.VirtualButtonBack:
				// Discard and record again; the new take overwrites.
				c.wav = nil
				c.startRecording()
			}
		}
	}
	return true
}

func (c *audioController) startRecording() {
	if err := c.recorder.Start(); err != nil {
		internal.Logger().Error("audio recording failed to start", "error", err)
		c.phase = audioFailed
		return
	}
	c.phase = audioRecording
	c.startedAt = time.Now()
}

func (c *audioController) stopRecording() {
	wav, err := c.recorder.Bytes()
	if err != nil {
		internal.Logger().Error("audio recording failed", "error", err)
		c.phase = audioFailed
		return
	}
	c.wav = wav
	c.phase = audioRecorded
}

func (c *audioController) render(win *internal.Window) {
	win.Clear()
	renderer := win.Renderer
	theme := internal.GetTheme()
	t := c.ctx.Loc.T
	centerX := win.GetWidth() / 2

	y := renderHeader(win, t("breathingCapture.stethoscopeTitle"),
		t("breathingCapture.stethoscopeInstruction"))

	internal.RenderIcon(renderer, internal.IconMicrophone, centerX-32, y+20, 64)
	y += 120

	switch c.phase {
	case audioIdle:
		internal.RenderText(renderer, t("breathingCapture.stethoscopeRecord"),
			internal.Fonts.MediumFont, centerX, y, theme.AccentColor, constants.TextAlignCenter)

	case audioRecording:
		elapsed := time.Since(c.startedAt).Round(time.Second)
		internal.RenderText(renderer, elapsed.String(), internal.Fonts.LargeFont,
			centerX, y, theme.SevereColor, constants.TextAlignCenter)
		y += int32(internal.Fonts.LargeFont.Height()) + 12
		internal.RenderText(renderer, t("breathingCapture.stethoscopeStop"),
			internal.Fonts.SmallFont, centerX, y, theme.HintColor, constants.TextAlignCenter)

	case audioRecorded:
		internal.RenderIcon(renderer, internal.IconCheck, centerX-24, y, 48)
		y += 64
		internal.RenderText(renderer,
			t("breathingCapture.continue")+"  /  "+t("breathingCapture.retake"),
			internal.Fonts.SmallFont, centerX, y, theme.HintColor, constants.TextAlignCenter)

	case audioFailed:
		renderErrorPanel(win, t("breathingCapture.microphoneError"), t("common.tryAgain"))
	}
}
