// Package scoring turns a completed questionnaire into a risk score,
// severity tier and care recommendations. Everything is computed locally;
// no answer data leaves the device.
package scoring

import (
	"math"

	"mediscan-kiosk/pkg/intake/disease"
	"mediscan-kiosk/pkg/intake/questionnaire"
)

// Severity is the risk tier derived from the score.
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// Tier thresholds on the 0-100 risk score.
const (
	severeThreshold   = 70
	moderateThreshold = 40
)

// Summary is the full scoring result shown on the results screen and
// embedded in exported reports.
type Summary struct {
	Disease         disease.ID
	RiskScore       int
	Severity        Severity
	YesCount        int
	SometimesCount  int
	TotalQuestions  int
	Recommendations []string
}

// Score computes the summary for a completed questionnaire. Yes answers
// weigh 1, sometimes answers weigh 0.5, and the score is the weighted
// fraction of questions as a rounded percentage.
func Score(b questionnaire.Bundle) Summary {
	var yes, sometimes int
	for _, a := range b.Answers {
		switch a {
		case questionnaire.AnswerYes:
			yes++
		case questionnaire.AnswerSometimes:
			sometimes++
		}
	}

	total := b.Total
	if total == 0 {
		total = len(b.Answers)
	}

	var score int
	if total > 0 {
		raw := (float64(yes) + 0.5*float64(sometimes)) / float64(total) * 100
		score = int(math.Round(raw))
	}

	sev := SeverityMild
	if score >= severeThreshold {
		sev = SeveritySevere
	} else if score >= moderateThreshold {
		sev = SeverityModerate
	}

	return Summary{
		Disease:         b.Disease,
		RiskScore:       score,
		Severity:        sev,
		YesCount:        yes,
		SometimesCount:  sometimes,
		TotalQuestions:  total,
		Recommendations: Recommendations(b.Disease, sev),
	}
}

var recommendations = map[disease.ID]map[Severity][]string{
	disease.Eyes: {
		SeverityMild: {
			"Use artificial tears to keep your eyes moist",
			"Avoid rubbing your eyes",
			"Take regular breaks from screen time",
			"Consult an ophthalmologist if symptoms persist",
		},
		SeverityModerate: {
			"Schedule an appointment with an ophthalmologist immediately",
			"Avoid wearing contact lenses until consultation",
			"Apply cold compresses to reduce inflammation",
			"Keep your eyes clean and avoid touching them",
		},
		SeveritySevere: {
			"Seek immediate medical attention",
			"Do not delay visiting an eye specialist",
			"Avoid self-medication",
			"Follow up with regular check-ups",
		},
	},
	disease.Breathing: {
		SeverityMild: {
			"Practice deep breathing exercises",
			"Avoid exposure to allergens and pollutants",
			"Stay hydrated and maintain good air quality",
			"Monitor your symptoms and consult if they worsen",
		},
		SeverityModerate: {
			"Consult a pulmonologist as soon as possible",
			"Avoid smoking and secondhand smoke",
			"Use a humidifier in your living space",
			"Keep your rescue inhaler handy if prescribed",
		},
		SeveritySevere: {
			"Seek emergency medical care immediately",
			"Do not ignore breathing difficulties",
			"Avoid strenuous activities",
			"Follow up with a respiratory specialist",
		},
	},
	disease.Skin: {
		SeverityMild: {
			"Keep your skin clean and moisturized",
			"Use gentle, fragrance-free skincare products",
			"Avoid scratching or picking at affected areas",
			"Protect your skin from excessive sun exposure",
		},
		SeverityModerate: {
			"Consult a dermatologist for proper diagnosis",
			"Avoid using harsh chemicals on your skin",
			"Follow a gentle skincare routine",
			"Consider patch testing for allergies",
		},
		SeveritySevere: {
			"Seek immediate dermatological consultation",
			"Do not self-treat with over-the-counter medications",
			"Keep affected areas clean and covered",
			"Follow medical advice strictly",
		},
	},
	disease.Dengue: {
		SeverityMild: {
			"Rest and stay hydrated",
			"Monitor your temperature regularly",
			"Take paracetamol for fever (avoid aspirin)",
			"Watch for warning signs and seek medical help if needed",
		},
		SeverityModerate: {
			"Consult a doctor immediately",
			"Maintain adequate fluid intake",
			"Monitor for signs of bleeding",
			"Avoid self-medication",
		},
		SeveritySevere: {
			"Seek emergency medical attention immediately",
			"Dengue can be life-threatening if not treated properly",
			"Do not delay medical consultation",
			"Follow hospital admission if recommended",
		},
	},
}

// Recommendations returns the advice list for the disease and severity.
// Unknown severities fall back to the disease's mild list; unknown diseases
// yield an empty list.
func Recommendations(d disease.ID, sev Severity) []string {
	bySeverity, ok := recommendations[d]
	if !ok {
		return []string{}
	}
	if recs, ok := bySeverity[sev]; ok {
		return recs
	}
	return bySeverity[SeverityMild]
}
