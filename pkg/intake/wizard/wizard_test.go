package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediscan-kiosk/pkg/intake/disease"
	"mediscan-kiosk/pkg/intake/store"
)

// runFlow drives the default transition through a full intake with stub
// steps that only write the store keys the transition reads.
func runFlow(t *testing.T, age string, diseaseID disease.ID) (*Router, *store.MemStore) {
	t.Helper()

	st := store.NewMemStore()
	r := NewRouter().OnTransition(DefaultTransition(st))

	noop := func(any) (any, error) { return nil, nil }
	r.Register(StepLanguage, noop)
	r.Register(StepAge, func(any) (any, error) {
		return nil, st.Set(store.KeyAge, age)
	})
	r.Register(StepGender, noop)
	r.Register(StepCamera, noop)
	r.Register(StepCNIC, noop)
	r.Register(StepPhone, noop)
	r.Register(StepDisease, func(any) (any, error) {
		return nil, st.Set(store.KeyDisease, string(diseaseID))
	})
	r.Register(StepDiseaseCapture, func(input any) (any, error) {
		return input, nil
	})
	r.Register(StepQuestionnaire, func(input any) (any, error) {
		require.Equal(t, diseaseID, input)
		return nil, st.Set(store.KeyAnswers, "{}")
	})
	r.Register(StepResults, func(any) (any, error) {
		return ResultsExit, nil
	})

	require.NoError(t, r.Run(StepLanguage, nil))
	return r, st
}

func TestFlowAdultGoesThroughCNIC(t *testing.T) {
	r, _ := runFlow(t, store.AgeAbove18, disease.Breathing)
	assert.Equal(t, []Step{
		StepLanguage, StepAge, StepGender, StepCamera, StepCNIC,
		StepPhone, StepDisease, StepDiseaseCapture, StepQuestionnaire, StepResults,
	}, r.Trail())
}

func TestFlowMinorSkipsCNIC(t *testing.T) {
	r, _ := runFlow(t, store.AgeUnder18, disease.Eyes)
	assert.Equal(t, []Step{
		StepLanguage, StepAge, StepGender, StepCamera,
		StepPhone, StepDisease, StepDiseaseCapture, StepQuestionnaire, StepResults,
	}, r.Trail())
}

func TestResultsRestartClearsAnswers(t *testing.T) {
	st := store.NewMemStore()
	require.NoError(t, st.Set(store.KeyAnswers, "{}"))

	tr := DefaultTransition(st)

	next, _ := tr(StepResults, ResultsRestart)
	assert.Equal(t, StepLanguage, next)

	_, err := st.Get(store.KeyAnswers)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestResultsExitStopsWizard(t *testing.T) {
	tr := DefaultTransition(store.NewMemStore())
	next, _ := tr(StepResults, ResultsExit)
	assert.Equal(t, StepExit, next)
}

func TestDiseaseGateRejectsInvalidSelection(t *testing.T) {
	st := store.NewMemStore()
	tr := DefaultTransition(st)

	// Nothing selected: stay on the selection step.
	next, _ := tr(StepDisease, nil)
	assert.Equal(t, StepDisease, next)

	// Garbage selection: same.
	require.NoError(t, st.Set(store.KeyDisease, "bones"))
	next, _ = tr(StepDisease, nil)
	assert.Equal(t, StepDisease, next)

	require.NoError(t, st.Set(store.KeyDisease, "dengue"))
	next, input := tr(StepDisease, nil)
	assert.Equal(t, StepDiseaseCapture, next)
	assert.Equal(t, disease.Dengue, input)
}

func TestRunFailsOnUnregisteredStep(t *testing.T) {
	r := NewRouter().OnTransition(DefaultTransition(store.NewMemStore()))
	assert.Error(t, r.Run(StepLanguage, nil))
}

func TestRunRequiresTransition(t *testing.T) {
	r := NewRouter()
	r.Register(StepLanguage, func(any) (any, error) { return nil, nil })
	assert.Error(t, r.Run(StepLanguage, nil))
}
