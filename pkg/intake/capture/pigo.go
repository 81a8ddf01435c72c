package capture

import (
	"fmt"
	"image"
	"os"

	pigo "github.com/esimov/pigo/core"
	"go.uber.org/atomic"

	"mediscan-kiosk/internal"
)

const detectionQualityThreshold = 5.0

// PigoDetector finds faces with the pigo cascade classifier. The cascade is
// unpacked in the background so screen startup never blocks on disk; Detect
// reports ErrDetectorUnavailable until loading finishes, and permanently if
// loading fails.
type PigoDetector struct {
	ready      atomic.Bool
	failed     atomic.Bool
	classifier *pigo.Pigo
}

// NewPigoDetector starts loading the facefinder cascade at cascadePath.
func NewPigoDetector(cascadePath string) *PigoDetector {
	d := &PigoDetector{}
	go d.load(cascadePath)
	return d
}

func (d *PigoDetector) load(cascadePath string) {
	raw, err := os.ReadFile(cascadePath)
	if err != nil {
		internal.Logger().Warn("face cascade unavailable, manual capture only",
			"path", cascadePath, "error", err)
		d.failed.Store(true)
		return
	}
	classifier, err := pigo.NewPigo().Unpack(raw)
	if err != nil {
		internal.Logger().Warn("face cascade unpack failed, manual capture only",
			"path", cascadePath, "error", err)
		d.failed.Store(true)
		return
	}
	d.classifier = classifier
	d.ready.Store(true)
	internal.Logger().Debug("face cascade loaded", "path", cascadePath)
}

// Ready reports whether the cascade has finished loading successfully.
func (d *PigoDetector) Ready() bool { return d.ready.Load() }

// Detect runs the cascade and returns the highest-quality face, if any.
func (d *PigoDetector) Detect(img image.Image) (Detection, error) {
	if !d.ready.Load() {
		if d.failed.Load() {
			return Detection{}, ErrDetectorUnavailable
		}
		return Detection{}, fmt.Errorf("%w: still loading", ErrDetectorUnavailable)
	}

	bounds := img.Bounds()
	cols := bounds.Dx()
	rows := bounds.Dy()
	pixels := pigo.RgbToGrayscale(img)

	minSize := rows / 8
	if minSize < 20 {
		minSize = 20
	}

	dets := d.classifier.RunCascade(pigo.CascadeParams{
		MinSize:     minSize,
		MaxSize:     rows,
		ShiftFactor: 0.1,
		ScaleFactor: 1.1,
		ImageParams: pigo.ImageParams{
			Pixels: pixels,
			Rows:   rows,
			Cols:   cols,
			Dim:    cols,
		},
	}, 0.0)
	dets = d.classifier.ClusterDetections(dets, 0.2)

	best := Detection{}
	var bestQ float32
	for _, det := range dets {
		if det.Q < detectionQualityThreshold || det.Q < bestQ {
			continue
		}
		bestQ = det.Q
		side := float64(det.Scale)
		best = Detection{
			Found:   true,
			CenterX: float64(det.Col) / float64(cols),
			CenterY: float64(det.Row) / float64(rows),
			Area:    (side * side) / float64(cols*rows),
		}
	}
	return best, nil
}
