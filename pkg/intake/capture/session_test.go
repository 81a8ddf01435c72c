package capture

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCamera struct {
	startErr error
	frameErr error

	starts int
	stops  int
	frames int
}

func (c *stubCamera) Start() error {
	c.starts++
	return c.startErr
}

func (c *stubCamera) Frame() (Frame, error) {
	c.frames++
	if c.frameErr != nil {
		return Frame{}, c.frameErr
	}
	return Frame{
		Image: image.NewGray(image.Rect(0, 0, 4, 4)),
		JPEG:  []byte{0xFF, 0xD8, byte(c.frames)},
	}, nil
}

func (c *stubCamera) Stop() error {
	c.stops++
	return nil
}

func TestSessionHappyPath(t *testing.T) {
	cam := &stubCamera{}
	s := NewSession(cam)
	assert.Equal(t, StateAcquiring, s.State())

	require.NoError(t, s.Begin())
	assert.Equal(t, StatePreviewing, s.State())

	f, err := s.Preview()
	require.NoError(t, err)

	require.NoError(t, s.Capture(f))
	assert.Equal(t, StateCaptured, s.State())
	assert.Equal(t, 1, cam.stops, "camera released when the shot freezes")

	require.NoError(t, s.Confirm())
	assert.Equal(t, StateConfirmed, s.State())
	assert.Equal(t, f.JPEG, s.Shot().JPEG)
}

func TestSessionRetakeOverwritesShot(t *testing.T) {
	cam := &stubCamera{}
	s := NewSession(cam)
	require.NoError(t, s.Begin())

	first, err := s.Preview()
	require.NoError(t, err)
	require.NoError(t, s.Capture(first))

	require.NoError(t, s.Retake())
	assert.Equal(t, StatePreviewing, s.State())
	assert.Equal(t, 2, cam.starts)

	second, err := s.Preview()
	require.NoError(t, err)
	require.NoError(t, s.Capture(second))
	require.NoError(t, s.Confirm())

	assert.NotEqual(t, first.JPEG, s.Shot().JPEG)
	assert.Equal(t, second.JPEG, s.Shot().JPEG)
}

func TestSessionFailureClassification(t *testing.T) {
	cases := []struct {
		err  error
		want FailReason
	}{
		{ErrNoDevice, FailNoDevice},
		{ErrPermissionDenied, FailPermission},
		{assert.AnError, FailOther},
	}

	for _, c := range cases {
		s := NewSession(&stubCamera{startErr: c.err})
		assert.Error(t, s.Begin())
		assert.Equal(t, StateFailed, s.State())
		assert.Equal(t, c.want, s.Reason())
		assert.ErrorIs(t, s.FailErr(), c.err)
	}
}

func TestSessionRetryAfterFailure(t *testing.T) {
	cam := &stubCamera{startErr: ErrPermissionDenied}
	s := NewSession(cam)
	require.Error(t, s.Begin())

	// Device becomes usable (e.g. udev rule applied) and the retry works.
	cam.startErr = nil
	require.NoError(t, s.Retry())
	assert.Equal(t, StatePreviewing, s.State())
	assert.Equal(t, FailNone, s.Reason())
	assert.NoError(t, s.FailErr())
}

func TestSessionPreviewErrorReleasesDevice(t *testing.T) {
	cam := &stubCamera{frameErr: assert.AnError}
	s := NewSession(cam)
	require.NoError(t, s.Begin())

	_, err := s.Preview()
	assert.Error(t, err)
	assert.Equal(t, StateFailed, s.State())
	assert.Equal(t, 1, cam.stops)
}

func TestSessionCloseReleasesLiveCamera(t *testing.T) {
	cam := &stubCamera{}
	s := NewSession(cam)
	require.NoError(t, s.Begin())

	s.Close()
	assert.Equal(t, 1, cam.stops)

	// Close on a finished session does not touch the device again.
	s2 := NewSession(cam)
	require.NoError(t, s2.Begin())
	f, err := s2.Preview()
	require.NoError(t, err)
	require.NoError(t, s2.Capture(f))
	require.NoError(t, s2.Confirm())
	stops := cam.stops
	s2.Close()
	assert.Equal(t, stops, cam.stops)
}

func TestSessionGuardsInvalidTransitions(t *testing.T) {
	s := NewSession(&stubCamera{})
	assert.Error(t, s.Confirm())
	assert.Error(t, s.Retake())
	assert.Error(t, s.Retry())
	_, err := s.Preview()
	assert.Error(t, err)
}
