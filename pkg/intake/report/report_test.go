package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediscan-kiosk/pkg/intake/disease"
	"mediscan-kiosk/pkg/intake/scoring"
)

func sampleSummary() scoring.Summary {
	return scoring.Summary{
		Disease:         disease.Dengue,
		RiskScore:       90,
		Severity:        scoring.SeveritySevere,
		YesCount:        8,
		SometimesCount:  2,
		TotalQuestions:  10,
		Recommendations: scoring.Recommendations(disease.Dengue, scoring.SeveritySevere),
	}
}

func TestTextLayout(t *testing.T) {
	r := New(sampleSummary(), "Severe", time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC))
	text := r.Text()

	assert.True(t, strings.HasPrefix(text, "MediScan AI - Diagnosis Report\n=============================="))
	assert.Contains(t, text, "Disease Type: dengue")
	assert.Contains(t, text, "Risk Score: 90%")
	assert.Contains(t, text, "Severity: Severe")
	assert.Contains(t, text, "- Total Questions: 10")
	assert.Contains(t, text, "- Positive Answers: 8")
	assert.Contains(t, text, "- Sometimes Answers: 2")
	assert.Contains(t, text, "1. Seek emergency medical attention immediately")
	assert.Contains(t, text, "Generated on: 2026-03-14 09:30:00")
	assert.Contains(t, text, "Report ID: "+r.ID.String())
}

func TestFileName(t *testing.T) {
	at := time.UnixMilli(1700000000000)
	r := New(sampleSummary(), "Severe", at)
	assert.Equal(t, "mediscan-report-dengue-1700000000000.txt", r.FileName("txt"))
	assert.Equal(t, "mediscan-report-dengue-1700000000000.pdf", r.FileName("pdf"))
}

func TestWriteTextCreatesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	r := New(sampleSummary(), "Severe", time.Now())

	path, err := r.WriteText(dir)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, r.Text(), string(raw))
}

func TestReportIDsAreUnique(t *testing.T) {
	now := time.Now()
	a := New(sampleSummary(), "Severe", now)
	b := New(sampleSummary(), "Severe", now)
	assert.NotEqual(t, a.ID, b.ID)
}
