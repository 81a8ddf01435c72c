package scoring

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediscan-kiosk/pkg/intake/disease"
	"mediscan-kiosk/pkg/intake/questionnaire"
)

func bundle(d disease.ID, yes, sometimes, no int) questionnaire.Bundle {
	b := questionnaire.Bundle{
		Disease: d,
		Answers: make(map[string]questionnaire.Answer),
		Total:   yes + sometimes + no,
	}
	i := 0
	add := func(n int, a questionnaire.Answer) {
		for k := 0; k < n; k++ {
			b.Answers[fmt.Sprintf("%d", i)] = a
			i++
		}
	}
	add(yes, questionnaire.AnswerYes)
	add(sometimes, questionnaire.AnswerSometimes)
	add(no, questionnaire.AnswerNo)
	return b
}

func TestScoreDengueHighRisk(t *testing.T) {
	// 8 yes + 2 sometimes over 10 questions: (8 + 1) / 10 = 90%.
	s := Score(bundle(disease.Dengue, 8, 2, 0))
	assert.Equal(t, 90, s.RiskScore)
	assert.Equal(t, SeveritySevere, s.Severity)
	assert.Equal(t, 8, s.YesCount)
	assert.Equal(t, 2, s.SometimesCount)
	assert.Equal(t, 10, s.TotalQuestions)
	assert.Equal(t, Recommendations(disease.Dengue, SeveritySevere), s.Recommendations)
}

func TestScoreEyesLowRisk(t *testing.T) {
	// 2 yes over 10 questions: 20%.
	s := Score(bundle(disease.Eyes, 2, 0, 8))
	assert.Equal(t, 20, s.RiskScore)
	assert.Equal(t, SeverityMild, s.Severity)
}

func TestSeverityBoundaries(t *testing.T) {
	cases := []struct {
		yes, sometimes, no int
		wantScore          int
		wantSeverity       Severity
	}{
		{7, 0, 3, 70, SeveritySevere},   // exactly at the severe threshold
		{6, 2, 2, 70, SeveritySevere},   // 6 + 1 = 70
		{6, 1, 3, 65, SeverityModerate}, // just below severe
		{4, 0, 6, 40, SeverityModerate}, // exactly at the moderate threshold
		{3, 2, 5, 40, SeverityModerate}, // 3 + 1 = 40
		{3, 1, 6, 35, SeverityMild},     // just below moderate
		{0, 0, 10, 0, SeverityMild},
		{10, 0, 0, 100, SeveritySevere},
	}

	for _, c := range cases {
		s := Score(bundle(disease.Skin, c.yes, c.sometimes, c.no))
		assert.Equal(t, c.wantScore, s.RiskScore, "yes=%d sometimes=%d", c.yes, c.sometimes)
		assert.Equal(t, c.wantSeverity, s.Severity, "yes=%d sometimes=%d", c.yes, c.sometimes)
	}
}

func TestScoreMonotonicInYesAnswers(t *testing.T) {
	prev := -1
	for yes := 0; yes <= 10; yes++ {
		s := Score(bundle(disease.Breathing, yes, 0, 10-yes))
		require.Greater(t, s.RiskScore, prev, "yes=%d", yes)
		prev = s.RiskScore
	}
}

func TestScoreEmptyBundle(t *testing.T) {
	s := Score(questionnaire.Bundle{Disease: disease.Eyes})
	assert.Equal(t, 0, s.RiskScore)
	assert.Equal(t, SeverityMild, s.Severity)
}

func TestRecommendationsEveryDiseaseEveryTier(t *testing.T) {
	for _, d := range disease.All() {
		for _, sev := range []Severity{SeverityMild, SeverityModerate, SeveritySevere} {
			assert.Len(t, Recommendations(d, sev), 4, "disease %s severity %s", d, sev)
		}
	}
}

func TestRecommendationsFallbacks(t *testing.T) {
	// Unrecognized severity falls back to the mild list.
	assert.Equal(t,
		Recommendations(disease.Eyes, SeverityMild),
		Recommendations(disease.Eyes, Severity("critical")))

	// Unknown disease yields an empty list, not nil panic.
	assert.Empty(t, Recommendations(disease.ID("bones"), SeverityMild))
}
