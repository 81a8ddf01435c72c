package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/signintech/gopdf"

	"mediscan-kiosk/internal"
)

// Candidate font locations; DejaVu ships on most of the distro images the
// kiosk targets. A configured path is tried first.
var fontPaths = []string{
	"/usr/share/fonts/ttf-dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
}

// WritePDF renders the report as an A4 PDF into dir and returns the full
// path. fontPath, when non-empty, overrides the built-in font search.
func (r Report) WritePDF(dir, fontPath string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("report: creating export dir: %w", err)
	}

	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	candidates := fontPaths
	if fontPath != "" {
		candidates = append([]string{fontPath}, fontPaths...)
	}

	var fontErr error
	loaded := false
	for _, p := range candidates {
		if err := pdf.AddTTFFont("body", p); err == nil {
			loaded = true
			break
		} else {
			fontErr = err
		}
	}
	if !loaded {
		return "", fmt.Errorf("report: no usable TTF font found: %w", fontErr)
	}

	setFont := func(size float64) error {
		return pdf.SetFont("body", "", size)
	}

	if err := setFont(20); err != nil {
		return "", err
	}
	pdf.Cell(nil, "MediScan AI - Diagnosis Report")
	pdf.Br(30)

	if err := setFont(12); err != nil {
		return "", err
	}
	pdf.Cell(nil, fmt.Sprintf("Disease Type: %s", r.Summary.Disease))
	pdf.Br(15)
	pdf.Cell(nil, fmt.Sprintf("Risk Score: %d%%", r.Summary.RiskScore))
	pdf.Br(15)
	pdf.Cell(nil, fmt.Sprintf("Severity: %s", r.SeverityLabel))
	pdf.Br(25)

	if err := setFont(14); err != nil {
		return "", err
	}
	pdf.Cell(nil, "Summary:")
	pdf.Br(15)

	if err := setFont(11); err != nil {
		return "", err
	}
	pdf.Cell(nil, fmt.Sprintf("- Total Questions: %d", r.Summary.TotalQuestions))
	pdf.Br(12)
	pdf.Cell(nil, fmt.Sprintf("- Positive Answers: %d", r.Summary.YesCount))
	pdf.Br(12)
	pdf.Cell(nil, fmt.Sprintf("- Sometimes Answers: %d", r.Summary.SometimesCount))
	pdf.Br(25)

	if err := setFont(14); err != nil {
		return "", err
	}
	pdf.Cell(nil, "Recommendations:")
	pdf.Br(15)

	if err := setFont(11); err != nil {
		return "", err
	}
	for i, rec := range r.Summary.Recommendations {
		line := fmt.Sprintf("%d. %s", i+1, rec)
		lines, _ := pdf.SplitText(line, 500)
		for _, l := range lines {
			pdf.Cell(nil, l)
			pdf.Br(12)
		}
		pdf.Br(5)
	}

	pdf.SetY(790)
	if err := setFont(9); err != nil {
		return "", err
	}
	pdf.Cell(nil, fmt.Sprintf("Report %s, generated %s",
		r.ID, r.GeneratedAt.Format("2006-01-02 15:04:05")))

	path := filepath.Join(dir, r.FileName("pdf"))
	if err := pdf.WritePdf(path); err != nil {
		return "", fmt.Errorf("report: writing pdf: %w", err)
	}

	internal.Logger().Info("report exported", "path", path, "report_id", r.ID.String())
	return path, nil
}
