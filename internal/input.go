package internal

import (
	"errors"
	"os"

	"github.com/holoplot/go-evdev"
	"github.com/veandco/go-sdl2/sdl"

	"mediscan-kiosk/pkg/intake/constants"
)

// InputEvent is one button state change, from either input source.
type InputEvent struct {
	Button  constants.VirtualButton
	Pressed bool
}

// InputProcessor merges the two input sources: SDL keyboard events (used in
// development) and the kiosk's hardware keys read from an evdev device.
// Hardware events arrive on a channel that screens drain each frame.
type InputProcessor struct {
	hw   chan InputEvent
	stop chan struct{}
	dev  *evdev.InputDevice
}

var inputProcessor *InputProcessor

// InitInputProcessor sets up input handling. devicePath may be empty, in
// which case only the SDL keyboard is used.
func InitInputProcessor(devicePath string) {
	p := &InputProcessor{
		hw:   make(chan InputEvent, 32),
		stop: make(chan struct{}),
	}
	inputProcessor = p

	if devicePath == "" {
		return
	}

	dev, err := evdev.Open(devicePath)
	if err != nil {
		Logger().Warn("hardware input device unavailable, keyboard only",
			"device", devicePath, "error", err)
		return
	}
	p.dev = dev

	name, _ := dev.Name()
	Logger().Info("hardware input device opened", "device", devicePath, "name", name)

	go p.readHardware()
}

// GetInputProcessor returns the process-wide input processor.
func GetInputProcessor() *InputProcessor {
	return inputProcessor
}

// StopInputProcessor closes the hardware device and stops its reader.
func StopInputProcessor() {
	if inputProcessor == nil {
		return
	}
	close(inputProcessor.stop)
	if inputProcessor.dev != nil {
		inputProcessor.dev.Close()
	}
}

// ProcessSDLEvent translates an SDL keyboard event into a virtual button
// event, or nil when the event is not a mapped key.
func (p *InputProcessor) ProcessSDLEvent(event sdl.Event) *InputEvent {
	ke, ok := event.(*sdl.KeyboardEvent)
	if !ok || ke.Repeat != 0 {
		return nil
	}

	var button constants.VirtualButton
	switch ke.Keysym.Sym {
	case sdl.K_UP:
		button = constants.VirtualButtonUp
	case sdl.K_DOWN:
		button = constants.VirtualButtonDown
	case sdl.K_LEFT:
		button = constants.VirtualButtonLeft
	case sdl.K_RIGHT:
		button = constants.VirtualButtonRight
	case sdl.K_RETURN, sdl.K_SPACE:
		button = constants.VirtualButtonConfirm
	case sdl.K_BACKSPACE, sdl.K_ESCAPE:
		button = constants.VirtualButtonBack
	case sdl.K_c:
		button = constants.VirtualButtonShutter
	default:
		return nil
	}

	return &InputEvent{Button: button, Pressed: ke.State == sdl.PRESSED}
}

// HardwareEvents returns the channel carrying evdev button events. Screens
// drain it non-blocking once per frame.
func (p *InputProcessor) HardwareEvents() <-chan InputEvent {
	return p.hw
}

func (p *InputProcessor) readHardware() {
	for {
		select {
		case <-p.stop:
			return
		default:
		}

		ev, err := p.dev.ReadOne()
		if err != nil {
			if errors.Is(err, os.ErrClosed) {
				return
			}
			Logger().Warn("hardware input read failed", "error", err)
			return
		}
		if ev.Type != evdev.EV_KEY || ev.Value > 1 {
			continue
		}

		var button constants.VirtualButton
		switch ev.Code {
		case evdev.KEY_UP:
			button = constants.VirtualButtonUp
		case evdev.KEY_DOWN:
			button = constants.VirtualButtonDown
		case evdev.KEY_LEFT:
			button = constants.VirtualButtonLeft
		case evdev.KEY_RIGHT:
			button = constants.VirtualButtonRight
		case evdev.KEY_ENTER, evdev.KEY_OK:
			button = constants.VirtualButtonConfirm
		case evdev.KEY_BACK, evdev.KEY_ESC:
			button = constants.VirtualButtonBack
		case evdev.KEY_CAMERA:
			button = constants.VirtualButtonShutter
		default:
			continue
		}

		select {
		case p.hw <- InputEvent{Button: button, Pressed: ev.Value == 1}:
		default:
			// Screen is not draining; drop rather than block the reader.
		}
	}
}
