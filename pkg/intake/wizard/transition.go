package wizard

import (
	"mediscan-kiosk/pkg/intake/disease"
	"mediscan-kiosk/internal"
	"mediscan-kiosk/pkg/intake/store"
)

// ResultsOutcome is the results screen's decision.
type ResultsOutcome int

const (
	// ResultsRestart starts a fresh intake for the next patient.
	ResultsRestart ResultsOutcome = iota
	// ResultsExit shuts the kiosk down.
	ResultsExit
)

// DefaultTransition holds the entire intake flow in one place. Screens
// persist their own data; the transition only reads the store for the two
// gates (age bracket after the photo, selected disease after selection).
func DefaultTransition(st store.Store) TransitionFunc {
	return func(from Step, result any) (Step, any) {
		switch from {
		case StepLanguage:
			return StepAge, nil

		case StepAge:
			return StepGender, nil

		case StepGender:
			return StepCamera, nil

		case StepCamera:
			// Adults provide an identity document; minors skip it.
			age, err := st.Get(store.KeyAge)
			if err == nil && age == store.AgeAbove18 {
				return StepCNIC, nil
			}
			return StepPhone, nil

		case StepCNIC:
			return StepPhone, nil

		case StepPhone:
			return StepDisease, nil

		case StepDisease:
			raw, err := st.Get(store.KeyDisease)
			if err != nil || !disease.Valid(raw) {
				internal.Logger().Warn("disease selection missing or invalid", "value", raw)
				return StepDisease, nil
			}
			return StepDiseaseCapture, disease.ID(raw)

		case StepDiseaseCapture:
			if d, ok := result.(disease.ID); ok {
				return StepQuestionnaire, d
			}
			raw, err := st.Get(store.KeyDisease)
			if err != nil || !disease.Valid(raw) {
				return StepDisease, nil
			}
			return StepQuestionnaire, disease.ID(raw)

		case StepQuestionnaire:
			return StepResults, nil

		case StepResults:
			if outcome, ok := result.(ResultsOutcome); ok && outcome == ResultsExit {
				return StepExit, nil
			}
			// Next patient: clear the answers and restart at language
			// selection. Demographic keys are overwritten by the new run.
			if err := st.Remove(store.KeyAnswers); err != nil {
				internal.Logger().Warn("clearing answers on restart", "error", err)
			}
			return StepLanguage, nil
		}

		internal.Logger().Warn("transition from unknown step", "step", from.String())
		return StepLanguage, nil
	}
}
