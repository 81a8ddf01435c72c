package capture

import (
	"bytes"
	"errors"
	"fmt"
	"image/jpeg"
	"io/fs"

	"github.com/blackjack/webcam"

	"mediscan-kiosk/internal"
)

// MJPEG fourcc. The kiosk cameras all advertise motion-JPEG, which keeps the
// decode path down to image/jpeg.
const pixelFormatMJPEG = webcam.PixelFormat(0x47504A4D)

const frameWaitSeconds = 5

// V4L2Camera streams MJPEG frames from a Video4Linux device.
type V4L2Camera struct {
	path          string
	width, height uint32

	cam     *webcam.Webcam
	started bool
}

// NewV4L2Camera wraps the device node at path (e.g. /dev/video0). The
// device is not opened until Start.
func NewV4L2Camera(path string, width, height uint32) *V4L2Camera {
	return &V4L2Camera{path: path, width: width, height: height}
}

// Start opens the device, negotiates MJPEG and begins streaming.
func (c *V4L2Camera) Start() error {
	cam, err := webcam.Open(c.path)
	if err != nil {
		return classifyDeviceError(c.path, err)
	}

	if _, ok := cam.GetSupportedFormats()[pixelFormatMJPEG]; !ok {
		cam.Close()
		return fmt.Errorf("capture: %s does not support MJPEG", c.path)
	}

	_, w, h, err := cam.SetImageFormat(pixelFormatMJPEG, c.width, c.height)
	if err != nil {
		cam.Close()
		return fmt.Errorf("capture: setting image format on %s: %w", c.path, err)
	}
	c.width, c.height = w, h

	if err := cam.StartStreaming(); err != nil {
		cam.Close()
		return fmt.Errorf("capture: starting stream on %s: %w", c.path, err)
	}

	c.cam = cam
	c.started = true
	internal.Logger().Debug("camera streaming", "device", c.path, "width", w, "height", h)
	return nil
}

// Frame blocks for the next frame and decodes it.
func (c *V4L2Camera) Frame() (Frame, error) {
	if !c.started {
		return Frame{}, errors.New("capture: camera not started")
	}

	for {
		if err := c.cam.WaitForFrame(frameWaitSeconds); err != nil {
			var timeout *webcam.Timeout
			if errors.As(err, &timeout) {
				continue
			}
			return Frame{}, fmt.Errorf("capture: waiting for frame: %w", err)
		}

		raw, err := c.cam.ReadFrame()
		if err != nil {
			return Frame{}, fmt.Errorf("capture: reading frame: %w", err)
		}
		if len(raw) == 0 {
			continue
		}

		img, err := jpeg.Decode(bytes.NewReader(raw))
		if err != nil {
			// Cameras occasionally emit a truncated frame; skip it.
			continue
		}

		encoded := make([]byte, len(raw))
		copy(encoded, raw)
		return Frame{Image: img, JPEG: encoded}, nil
	}
}

// Stop ends streaming and releases the device. Safe to call repeatedly.
func (c *V4L2Camera) Stop() error {
	if c.cam == nil {
		return nil
	}
	cam := c.cam
	c.cam = nil
	c.started = false

	if err := cam.StopStreaming(); err != nil {
		cam.Close()
		return fmt.Errorf("capture: stopping stream on %s: %w", c.path, err)
	}
	if err := cam.Close(); err != nil {
		return fmt.Errorf("capture: closing %s: %w", c.path, err)
	}
	return nil
}

func classifyDeviceError(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s", ErrNoDevice, path)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %s", ErrPermissionDenied, path)
	}
	return fmt.Errorf("capture: opening %s: %w", path, err)
}
