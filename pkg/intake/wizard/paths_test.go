package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mediscan-kiosk/pkg/intake/disease"
)

func TestFromPathKnownRoutes(t *testing.T) {
	cases := map[string]Step{
		"/":                  StepLanguage,
		"/age-verification":  StepAge,
		"/gender-selection":  StepGender,
		"/camera-capture":    StepCamera,
		"/cnic-capture":      StepCNIC,
		"/phone-number":      StepPhone,
		"/disease-selection": StepDisease,
		"/results":           StepResults,
	}
	for path, want := range cases {
		step, input := FromPath(path)
		assert.Equal(t, want, step, path)
		assert.Nil(t, input, path)
	}
}

func TestFromPathDiseaseRoutes(t *testing.T) {
	for _, d := range disease.All() {
		step, input := FromPath("/disease-capture/" + string(d))
		assert.Equal(t, StepDiseaseCapture, step)
		assert.Equal(t, d, input)

		step, input = FromPath("/questionnaire/" + string(d))
		assert.Equal(t, StepQuestionnaire, step)
		assert.Equal(t, d, input)
	}
}

func TestFromPathUnknownDiseaseRedirectsToSelection(t *testing.T) {
	for _, path := range []string{"/disease-capture/bones", "/questionnaire/unknown"} {
		step, input := FromPath(path)
		assert.Equal(t, StepDisease, step, path)
		assert.Nil(t, input, path)
	}
}

func TestFromPathUnknownFallsBackToLanguage(t *testing.T) {
	for _, path := range []string{"/nope", "/admin", "/results/extra", ""} {
		step, _ := FromPath(path)
		if path == "" {
			assert.Equal(t, StepLanguage, step)
			continue
		}
		assert.Equal(t, StepLanguage, step, path)
	}
}

func TestFromPathTrailingSlash(t *testing.T) {
	step, _ := FromPath("/phone-number/")
	assert.Equal(t, StepPhone, step)
}

func TestPathForRoundTrip(t *testing.T) {
	assert.Equal(t, "/disease-selection", PathFor(StepDisease, nil))
	assert.Equal(t, "/disease-capture/skin", PathFor(StepDiseaseCapture, disease.Skin))
	assert.Equal(t, "/questionnaire/eyes", PathFor(StepQuestionnaire, disease.Eyes))
	assert.Equal(t, "/", PathFor(StepLanguage, nil))
}
