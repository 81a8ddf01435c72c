package capture

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"mediscan-kiosk/internal"
)

const (
	audioSampleRate = 44100
	audioChannels   = 1
	audioBits       = 16
)

// SDLRecorder captures microphone audio through SDL's queued capture API
// and packages it as a mono 16-bit WAV.
type SDLRecorder struct {
	deviceName string

	dev     sdl.AudioDeviceID
	pcm     bytes.Buffer
	started bool
}

// NewSDLRecorder wraps the named capture device. An empty name selects the
// system default.
func NewSDLRecorder(deviceName string) *SDLRecorder {
	return &SDLRecorder{deviceName: deviceName}
}

// Start opens the capture device and begins recording.
func (r *SDLRecorder) Start() error {
	desired := sdl.AudioSpec{
		Freq:     audioSampleRate,
		Format:   sdl.AUDIO_S16LSB,
		Channels: audioChannels,
		Samples:  4096,
	}
	var obtained sdl.AudioSpec

	dev, err := sdl.OpenAudioDevice(r.deviceName, true, &desired, &obtained, 0)
	if err != nil {
		if sdl.GetNumAudioDevices(true) == 0 {
			return fmt.Errorf("%w: no capture devices", ErrNoDevice)
		}
		return fmt.Errorf("capture: opening audio device %q: %w", r.deviceName, err)
	}

	r.dev = dev
	r.pcm.Reset()
	r.started = true
	sdl.PauseAudioDevice(dev, false)
	internal.Logger().Debug("audio recording started", "device", r.deviceName)
	return nil
}

// Drain moves queued samples into the recording buffer. Screens call this
// once per frame so the SDL queue never grows unbounded.
func (r *SDLRecorder) Drain() error {
	if !r.started {
		return nil
	}
	queued := sdl.GetQueuedAudioSize(r.dev)
	if queued == 0 {
		return nil
	}
	chunk := make([]byte, queued)
	if err := sdl.DequeueAudio(r.dev, chunk); err != nil {
		return fmt.Errorf("capture: dequeuing audio: %w", err)
	}
	r.pcm.Write(chunk)
	return nil
}

// Bytes stops the device and returns the recording as a WAV file.
func (r *SDLRecorder) Bytes() ([]byte, error) {
	if !r.started {
		return nil, errors.New("capture: recorder not started")
	}
	if err := r.Drain(); err != nil {
		return nil, err
	}
	if err := r.Stop(); err != nil {
		return nil, err
	}
	return encodeWAV(r.pcm.Bytes(), audioSampleRate, audioChannels, audioBits), nil
}

// Stop pauses and closes the device. Safe to call repeatedly.
func (r *SDLRecorder) Stop() error {
	if !r.started {
		return nil
	}
	sdl.PauseAudioDevice(r.dev, true)
	sdl.CloseAudioDevice(r.dev)
	r.started = false
	return nil
}
