// Package wizard sequences the intake flow: one blocking function per step,
// a single transition function holding all routing decisions, and path
// resolution for deep links.
package wizard

import (
	"fmt"

	"mediscan-kiosk/internal"
)

// Step is a type-safe identifier for wizard steps.
type Step int

const (
	StepLanguage Step = iota
	StepAge
	StepGender
	StepCamera
	StepCNIC
	StepPhone
	StepDisease
	StepDiseaseCapture
	StepQuestionnaire
	StepResults
)

// StepExit signals the router to stop.
const StepExit Step = -1

func (s Step) String() string {
	switch s {
	case StepLanguage:
		return "language"
	case StepAge:
		return "age"
	case StepGender:
		return "gender"
	case StepCamera:
		return "camera"
	case StepCNIC:
		return "cnic"
	case StepPhone:
		return "phone"
	case StepDisease:
		return "disease"
	case StepDiseaseCapture:
		return "disease-capture"
	case StepQuestionnaire:
		return "questionnaire"
	case StepResults:
		return "results"
	case StepExit:
		return "exit"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// StepFunc runs one step. Input and result types are step-specific; capture
// and questionnaire steps receive the disease id.
type StepFunc func(input any) (result any, err error)

// TransitionFunc decides the next step after one completes.
// Return (StepExit, nil) to stop the wizard.
type TransitionFunc func(from Step, result any) (next Step, input any)

// Router runs steps until the transition function exits. The flow is
// strictly forward, so instead of a back stack it keeps a visited trail for
// logging and tests.
type Router struct {
	steps      map[Step]StepFunc
	transition TransitionFunc
	trail      []Step
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{steps: make(map[Step]StepFunc)}
}

// Register adds a step function.
func (r *Router) Register(step Step, fn StepFunc) *Router {
	r.steps[step] = fn
	return r
}

// OnTransition sets the transition function.
func (r *Router) OnTransition(fn TransitionFunc) *Router {
	r.transition = fn
	return r
}

// Trail returns the steps visited so far, in order.
func (r *Router) Trail() []Step {
	return r.trail
}

// Run starts at the given step and continues until the transition function
// returns StepExit or a step fails.
func (r *Router) Run(start Step, input any) error {
	if r.transition == nil {
		return fmt.Errorf("wizard: no transition function set")
	}

	current := start
	currentInput := input

	for {
		fn, ok := r.steps[current]
		if !ok {
			return fmt.Errorf("wizard: step %s not registered", current)
		}

		r.trail = append(r.trail, current)
		internal.Logger().Debug("entering step", "step", current.String())

		result, err := fn(currentInput)
		if err != nil {
			return fmt.Errorf("wizard: step %s: %w", current, err)
		}

		next, nextInput := r.transition(current, result)
		if next == StepExit {
			return nil
		}
		current = next
		currentInput = nextInput
	}
}
