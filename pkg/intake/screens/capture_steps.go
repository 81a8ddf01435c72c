package screens

import (
	"fmt"

	"mediscan-kiosk/pkg/intake/disease"
	"mediscan-kiosk/pkg/intake/store"
	"mediscan-kiosk/pkg/intake/wizard"
)

// CameraScreen captures the patient's photo with the face-guided
// auto-shutter and a mirrored preview.
func CameraScreen(ctx *Context) wizard.StepFunc {
	return func(any) (any, error) {
		return nil, photoCapture(ctx, photoOpts{
			titleID:       "cameraCapture.title",
			instructionID: "cameraCapture.instruction",
			captureID:     "cameraCapture.capture",
			retakeID:      "cameraCapture.retake",
			continueID:    "cameraCapture.continue",
			storeKey:      store.KeyPatientPhoto,
			faceGuided:    true,
			mirror:        ctx.Cfg.MirrorPreview,
		})
	}
}

// CNICScreen captures the identity document. Adults only; the transition
// skips it for minors.
func CNICScreen(ctx *Context) wizard.StepFunc {
	return func(any) (any, error) {
		return nil, photoCapture(ctx, photoOpts{
			titleID:       "cnicCapture.title",
			instructionID: "cnicCapture.instruction",
			captureID:     "cnicCapture.capture",
			retakeID:      "cnicCapture.retake",
			continueID:    "cnicCapture.continue",
			storeKey:      store.KeyCNICPhoto,
		})
	}
}

// DiseaseCaptureScreen runs the capture flow for the selected disease and
// passes the disease id through for the questionnaire.
func DiseaseCaptureScreen(ctx *Context) wizard.StepFunc {
	return func(input any) (any, error) {
		d, ok := input.(disease.ID)
		if !ok {
			return nil, fmt.Errorf("disease capture: missing disease id")
		}

		var err error
		switch d {
		case disease.Eyes:
			err = photoCapture(ctx, photoOpts{
				titleID:       "eyesCapture.title",
				instructionID: "eyesCapture.instruction",
				captureID:     "eyesCapture.capture",
				retakeID:      "eyesCapture.retake",
				continueID:    "eyesCapture.continue",
				storeKey:      store.KeyEyesPhoto,
			})
		case disease.Skin:
			err = photoCapture(ctx, photoOpts{
				titleID:       "skinCapture.title",
				instructionID: "skinCapture.instruction",
				captureID:     "skinCapture.capture",
				retakeID:      "skinCapture.retake",
				continueID:    "skinCapture.continue",
				storeKey:      store.KeySkinPhoto,
			})
		case disease.Dengue:
			err = photoCapture(ctx, photoOpts{
				titleID:       "dengueCapture.title",
				instructionID: "dengueCapture.instruction",
				captureID:     "dengueCapture.capture",
				retakeID:      "dengueCapture.retake",
				continueID:    "dengueCapture.continue",
				storeKey:      store.KeyDenguePhoto,
			})
		case disease.Breathing:
			err = breathingCapture(ctx)
		default:
			return nil, fmt.Errorf("disease capture: unknown disease %q", d)
		}
		if err != nil {
			return nil, err
		}
		return d, nil
	}
}
