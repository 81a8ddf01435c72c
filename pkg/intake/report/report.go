// Package report renders the diagnosis summary into downloadable files.
// Plain text mirrors the on-screen layout; the PDF variant is for printing.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"mediscan-kiosk/pkg/intake/scoring"
)

// Report wraps a scored summary with the metadata the exported files carry.
type Report struct {
	ID            uuid.UUID
	Summary       scoring.Summary
	SeverityLabel string
	GeneratedAt   time.Time
}

// New stamps the summary with a fresh report id and generation time.
// severityLabel is the localized tier name shown to the patient.
func New(s scoring.Summary, severityLabel string, now time.Time) Report {
	return Report{
		ID:            uuid.New(),
		Summary:       s,
		SeverityLabel: severityLabel,
		GeneratedAt:   now,
	}
}

// FileName builds the export file name for the given extension, keyed by
// disease and generation time so repeated exports never collide.
func (r Report) FileName(ext string) string {
	return fmt.Sprintf("mediscan-report-%s-%d.%s",
		r.Summary.Disease, r.GeneratedAt.UnixMilli(), ext)
}

// Text renders the report as plain text.
func (r Report) Text() string {
	var b strings.Builder

	b.WriteString("MediScan AI - Diagnosis Report\n")
	b.WriteString("==============================\n\n")

	fmt.Fprintf(&b, "Disease Type: %s\n", r.Summary.Disease)
	fmt.Fprintf(&b, "Risk Score: %d%%\n", r.Summary.RiskScore)
	fmt.Fprintf(&b, "Severity: %s\n\n", r.SeverityLabel)

	b.WriteString("Summary:\n")
	fmt.Fprintf(&b, "- Total Questions: %d\n", r.Summary.TotalQuestions)
	fmt.Fprintf(&b, "- Positive Answers: %d\n", r.Summary.YesCount)
	fmt.Fprintf(&b, "- Sometimes Answers: %d\n\n", r.Summary.SometimesCount)

	b.WriteString("Recommendations:\n")
	for i, rec := range r.Summary.Recommendations {
		fmt.Fprintf(&b, "%d. %s\n", i+1, rec)
	}

	fmt.Fprintf(&b, "\nReport ID: %s\n", r.ID)
	fmt.Fprintf(&b, "Generated on: %s\n", r.GeneratedAt.Format("2006-01-02 15:04:05"))

	return b.String()
}

// WriteText writes the plain-text report into dir and returns the full path.
func (r Report) WriteText(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("report: creating export dir: %w", err)
	}
	path := filepath.Join(dir, r.FileName("txt"))
	if err := os.WriteFile(path, []byte(r.Text()), 0644); err != nil {
		return "", fmt.Errorf("report: writing text report: %w", err)
	}
	return path, nil
}
