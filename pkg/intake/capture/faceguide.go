package capture

import (
	"image"
	"time"

	"mediscan-kiosk/pkg/intake/constants"
)

// Detection is one detector result in frame-normalized coordinates: the
// face center as fractions of width/height and the face area as a fraction
// of the frame area.
type Detection struct {
	Found   bool
	CenterX float64
	CenterY float64
	Area    float64
}

// Detector finds the most prominent face in a frame.
type Detector interface {
	Detect(img image.Image) (Detection, error)
}

// Acceptance window for the auto-shutter.
const (
	maxCenterOffset = 0.4
	minFaceArea     = 0.05
	maxFaceArea     = 0.5
)

// InWindow reports whether the detection sits inside the acceptance window:
// roughly centered and neither too small nor filling the frame.
func (d Detection) InWindow() bool {
	if !d.Found {
		return false
	}
	offX := d.CenterX - 0.5
	if offX < 0 {
		offX = -offX
	}
	offY := d.CenterY - 0.5
	if offY < 0 {
		offY = -offY
	}
	return offX < maxCenterOffset && offY < maxCenterOffset &&
		d.Area >= minFaceArea && d.Area <= maxFaceArea
}

// FaceGuide runs the detector on a fixed cadence and manages the countdown
// that auto-fires the shutter once a face holds still inside the window.
// It is a pure state machine driven by the screen loop; all timing comes in
// through the now arguments, which keeps it directly testable.
type FaceGuide struct {
	detector Detector

	nextSample     time.Time
	last           Detection
	countdownStart time.Time
}

// NewFaceGuide wraps the detector. A nil detector disables the guide;
// Observe then reports nothing and the screen falls back to manual capture.
func NewFaceGuide(detector Detector) *FaceGuide {
	return &FaceGuide{detector: detector}
}

// Enabled reports whether a detector is present.
func (g *FaceGuide) Enabled() bool { return g.detector != nil }

// Last returns the most recent detection.
func (g *FaceGuide) Last() Detection { return g.last }

// Observe feeds one preview frame. The detector only actually runs once per
// sampling interval; frames in between are ignored. Entering the acceptance
// window starts the countdown, leaving it or losing the face cancels it.
func (g *FaceGuide) Observe(img image.Image, now time.Time) error {
	if g.detector == nil || now.Before(g.nextSample) {
		return nil
	}
	g.nextSample = now.Add(constants.DetectionInterval)

	det, err := g.detector.Detect(img)
	if err != nil {
		g.last = Detection{}
		g.cancel()
		return err
	}
	g.last = det

	if !det.InWindow() {
		g.cancel()
		return nil
	}
	if g.countdownStart.IsZero() {
		g.countdownStart = now
	}
	return nil
}

// CountdownStep returns the step currently displayed (3, 2, 1), or 0 when
// no countdown is running.
func (g *FaceGuide) CountdownStep(now time.Time) int {
	if g.countdownStart.IsZero() {
		return 0
	}
	elapsed := now.Sub(g.countdownStart)
	step := constants.CountdownSteps - int(elapsed/constants.CountdownInterval)
	if step < 1 {
		step = 1
	}
	return step
}

// ShouldCapture reports whether the countdown has run to completion.
func (g *FaceGuide) ShouldCapture(now time.Time) bool {
	if g.countdownStart.IsZero() {
		return false
	}
	total := time.Duration(constants.CountdownSteps) * constants.CountdownInterval
	return now.Sub(g.countdownStart) >= total
}

// Reset clears all guide state, for reuse after a retake.
func (g *FaceGuide) Reset() {
	g.nextSample = time.Time{}
	g.last = Detection{}
	g.cancel()
}

func (g *FaceGuide) cancel() {
	g.countdownStart = time.Time{}
}
