// Package capture owns the camera and microphone: thin device wrappers, the
// confirm/retake session state machine, and the face-guided auto-shutter.
package capture

import (
	"errors"
	"image"
)

// Device failures are classified so screens can show the right message and
// offer a sensible retry.
var (
	// ErrNoDevice means the device node does not exist.
	ErrNoDevice = errors.New("capture: device not found")

	// ErrPermissionDenied means the device exists but cannot be opened.
	ErrPermissionDenied = errors.New("capture: device permission denied")

	// ErrDetectorUnavailable means the face cascade could not be loaded;
	// capture still works, just without the auto-shutter.
	ErrDetectorUnavailable = errors.New("capture: face detector unavailable")
)

// Frame is one decoded camera frame plus its original encoded bytes, kept so
// a confirmed capture can be persisted without re-encoding.
type Frame struct {
	Image image.Image
	JPEG  []byte
}

// Camera produces preview frames. Implementations must be safe to Stop more
// than once.
type Camera interface {
	Start() error
	Frame() (Frame, error)
	Stop() error
}

// Recorder captures microphone audio. Bytes returns a complete WAV file.
type Recorder interface {
	Start() error
	Bytes() ([]byte, error)
	Stop() error
}
