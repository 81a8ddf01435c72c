package capture

import (
	"errors"
	"fmt"

	"mediscan-kiosk/internal"
)

// State is the session's position in the confirm/retake flow.
type State int

const (
	// StateAcquiring means the camera is live and no shot has been taken.
	StateAcquiring State = iota
	// StatePreviewing means the camera is live and frames are flowing.
	StatePreviewing
	// StateCaptured means a shot is frozen on screen awaiting a decision.
	StateCaptured
	// StateConfirmed means the shot was accepted; the session is over.
	StateConfirmed
	// StateFailed means the device could not be used; Retry is available.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateAcquiring:
		return "acquiring"
	case StatePreviewing:
		return "previewing"
	case StateCaptured:
		return "captured"
	case StateConfirmed:
		return "confirmed"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// FailReason tells the screen which message to show.
type FailReason int

const (
	FailNone FailReason = iota
	FailNoDevice
	FailPermission
	FailOther
)

// Session drives one photo capture with preview, confirm and retake. The
// camera is released on every path out of the live states so a crash in one
// screen never wedges the device for the next.
type Session struct {
	camera Camera

	state   State
	reason  FailReason
	failErr error
	shot    Frame
}

// NewSession creates a session over the camera. Call Begin to go live.
func NewSession(camera Camera) *Session {
	return &Session{camera: camera, state: StateAcquiring}
}

func (s *Session) State() State       { return s.state }
func (s *Session) Reason() FailReason { return s.reason }
func (s *Session) FailErr() error     { return s.failErr }

// Shot returns the frozen frame. Valid only in StateCaptured and
// StateConfirmed.
func (s *Session) Shot() Frame { return s.shot }

// Begin starts the camera and enters StatePreviewing, or StateFailed when
// the device cannot be opened.
func (s *Session) Begin() error {
	if s.state != StateAcquiring {
		return fmt.Errorf("capture: begin from state %s", s.state)
	}
	if err := s.camera.Start(); err != nil {
		s.fail(err)
		return err
	}
	s.state = StatePreviewing
	return nil
}

// Preview returns the next live frame. A device error mid-stream fails the
// session and releases the camera.
func (s *Session) Preview() (Frame, error) {
	if s.state != StatePreviewing {
		return Frame{}, fmt.Errorf("capture: preview from state %s", s.state)
	}
	f, err := s.camera.Frame()
	if err != nil {
		s.camera.Stop()
		s.fail(err)
		return Frame{}, err
	}
	return f, nil
}

// Capture freezes the given frame, stops the camera and enters
// StateCaptured. A later Capture after Retake overwrites the previous shot.
func (s *Session) Capture(f Frame) error {
	if s.state != StatePreviewing {
		return fmt.Errorf("capture: capture from state %s", s.state)
	}
	if err := s.camera.Stop(); err != nil {
		internal.Logger().Warn("camera stop after capture", "error", err)
	}
	s.shot = f
	s.state = StateCaptured
	return nil
}

// Confirm accepts the frozen shot. The session is finished afterwards.
func (s *Session) Confirm() error {
	if s.state != StateCaptured {
		return fmt.Errorf("capture: confirm from state %s", s.state)
	}
	s.state = StateConfirmed
	return nil
}

// Retake discards the frozen shot and restarts the camera.
func (s *Session) Retake() error {
	if s.state != StateCaptured {
		return fmt.Errorf("capture: retake from state %s", s.state)
	}
	s.shot = Frame{}
	s.state = StateAcquiring
	return s.Begin()
}

// Retry re-enters StateAcquiring after a failure and tries the device again.
func (s *Session) Retry() error {
	if s.state != StateFailed {
		return fmt.Errorf("capture: retry from state %s", s.state)
	}
	s.state = StateAcquiring
	s.reason = FailNone
	s.failErr = nil
	return s.Begin()
}

// Close releases the camera regardless of state. Safe to defer.
func (s *Session) Close() {
	if s.state == StatePreviewing {
		s.camera.Stop()
	}
}

func (s *Session) fail(err error) {
	s.state = StateFailed
	s.failErr = err
	switch {
	case errors.Is(err, ErrNoDevice):
		s.reason = FailNoDevice
	case errors.Is(err, ErrPermissionDenied):
		s.reason = FailPermission
	default:
		s.reason = FailOther
	}
	internal.Logger().Error("capture session failed", "reason", s.reason, "error", err)
}
