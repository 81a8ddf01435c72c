package wizard

import (
	"strings"

	"mediscan-kiosk/pkg/intake/disease"
)

var pathSteps = map[string]Step{
	"/":                  StepLanguage,
	"/age-verification":  StepAge,
	"/gender-selection":  StepGender,
	"/camera-capture":    StepCamera,
	"/cnic-capture":      StepCNIC,
	"/phone-number":      StepPhone,
	"/disease-selection": StepDisease,
	"/results":           StepResults,
}

// FromPath resolves a deep-link path to a step and its input. Unknown paths
// resolve to language selection; a capture or questionnaire path with an
// unknown disease id resolves to disease selection, with nothing persisted.
func FromPath(path string) (Step, any) {
	path = strings.TrimSuffix(path, "/")
	if path == "" {
		path = "/"
	}

	if step, ok := pathSteps[path]; ok {
		return step, nil
	}

	if rest, ok := strings.CutPrefix(path, "/disease-capture/"); ok {
		if disease.Valid(rest) {
			return StepDiseaseCapture, disease.ID(rest)
		}
		return StepDisease, nil
	}
	if rest, ok := strings.CutPrefix(path, "/questionnaire/"); ok {
		if disease.Valid(rest) {
			return StepQuestionnaire, disease.ID(rest)
		}
		return StepDisease, nil
	}

	return StepLanguage, nil
}

// PathFor returns the canonical path of a step. Parameterized steps take
// the disease id from input when present.
func PathFor(step Step, input any) string {
	for p, s := range pathSteps {
		if s == step {
			return p
		}
	}
	d, _ := input.(disease.ID)
	switch step {
	case StepDiseaseCapture:
		return "/disease-capture/" + string(d)
	case StepQuestionnaire:
		return "/questionnaire/" + string(d)
	}
	return "/"
}
