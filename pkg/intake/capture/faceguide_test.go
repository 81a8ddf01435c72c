package capture

import (
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediscan-kiosk/pkg/intake/constants"
)

type stubDetector struct {
	det   Detection
	err   error
	calls int
}

func (d *stubDetector) Detect(image.Image) (Detection, error) {
	d.calls++
	return d.det, d.err
}

func centeredFace() Detection {
	return Detection{Found: true, CenterX: 0.5, CenterY: 0.5, Area: 0.2}
}

var testFrame = image.NewGray(image.Rect(0, 0, 4, 4))

func TestDetectionWindow(t *testing.T) {
	cases := []struct {
		name string
		det  Detection
		want bool
	}{
		{"centered", centeredFace(), true},
		{"not found", Detection{}, false},
		{"too far left", Detection{Found: true, CenterX: 0.05, CenterY: 0.5, Area: 0.2}, false},
		{"too far down", Detection{Found: true, CenterX: 0.5, CenterY: 0.95, Area: 0.2}, false},
		{"too small", Detection{Found: true, CenterX: 0.5, CenterY: 0.5, Area: 0.04}, false},
		{"too large", Detection{Found: true, CenterX: 0.5, CenterY: 0.5, Area: 0.6}, false},
		{"area boundaries inclusive", Detection{Found: true, CenterX: 0.5, CenterY: 0.5, Area: 0.05}, true},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, c.det.InWindow(), c.name)
	}
}

func TestFaceGuideCountdownFires(t *testing.T) {
	det := &stubDetector{det: centeredFace()}
	g := NewFaceGuide(det)
	now := time.Unix(1700000000, 0)

	require.NoError(t, g.Observe(testFrame, now))
	assert.Equal(t, 3, g.CountdownStep(now))
	assert.False(t, g.ShouldCapture(now))

	now = now.Add(constants.CountdownInterval)
	require.NoError(t, g.Observe(testFrame, now))
	assert.Equal(t, 2, g.CountdownStep(now))

	now = now.Add(constants.CountdownInterval)
	require.NoError(t, g.Observe(testFrame, now))
	assert.Equal(t, 1, g.CountdownStep(now))
	assert.False(t, g.ShouldCapture(now))

	now = now.Add(constants.CountdownInterval)
	assert.True(t, g.ShouldCapture(now))
}

func TestFaceGuideLosingFaceCancelsCountdown(t *testing.T) {
	det := &stubDetector{det: centeredFace()}
	g := NewFaceGuide(det)
	now := time.Unix(1700000000, 0)

	require.NoError(t, g.Observe(testFrame, now))
	require.Equal(t, 3, g.CountdownStep(now))

	// Face drifts out of frame on the next sample.
	det.det = Detection{}
	now = now.Add(constants.DetectionInterval)
	require.NoError(t, g.Observe(testFrame, now))
	assert.Equal(t, 0, g.CountdownStep(now))

	// Even well past the original deadline nothing fires.
	now = now.Add(10 * constants.CountdownInterval)
	assert.False(t, g.ShouldCapture(now))
}

func TestFaceGuideLeavingWindowCancels(t *testing.T) {
	det := &stubDetector{det: centeredFace()}
	g := NewFaceGuide(det)
	now := time.Unix(1700000000, 0)

	require.NoError(t, g.Observe(testFrame, now))

	det.det = Detection{Found: true, CenterX: 0.02, CenterY: 0.5, Area: 0.2}
	now = now.Add(constants.DetectionInterval)
	require.NoError(t, g.Observe(testFrame, now))
	assert.Equal(t, 0, g.CountdownStep(now))

	// Coming back restarts the countdown from the top.
	det.det = centeredFace()
	now = now.Add(constants.DetectionInterval)
	require.NoError(t, g.Observe(testFrame, now))
	assert.Equal(t, 3, g.CountdownStep(now))
}

func TestFaceGuideSamplingInterval(t *testing.T) {
	det := &stubDetector{det: centeredFace()}
	g := NewFaceGuide(det)
	now := time.Unix(1700000000, 0)

	// Frames arriving faster than the sampling interval hit the detector
	// only once per interval.
	for i := 0; i < 10; i++ {
		require.NoError(t, g.Observe(testFrame, now.Add(time.Duration(i)*16*time.Millisecond)))
	}
	assert.Equal(t, 1, det.calls)

	require.NoError(t, g.Observe(testFrame, now.Add(constants.DetectionInterval)))
	assert.Equal(t, 2, det.calls)
}

func TestFaceGuideDetectorErrorCancels(t *testing.T) {
	det := &stubDetector{det: centeredFace()}
	g := NewFaceGuide(det)
	now := time.Unix(1700000000, 0)

	require.NoError(t, g.Observe(testFrame, now))
	require.Equal(t, 3, g.CountdownStep(now))

	det.err = ErrDetectorUnavailable
	now = now.Add(constants.DetectionInterval)
	assert.Error(t, g.Observe(testFrame, now))
	assert.Equal(t, 0, g.CountdownStep(now))
	assert.False(t, g.Last().Found)
}

func TestFaceGuideDisabledWithoutDetector(t *testing.T) {
	g := NewFaceGuide(nil)
	assert.False(t, g.Enabled())
	assert.NoError(t, g.Observe(testFrame, time.Now()))
	assert.Equal(t, 0, g.CountdownStep(time.Now()))
	assert.False(t, g.ShouldCapture(time.Now().Add(time.Hour)))
}
