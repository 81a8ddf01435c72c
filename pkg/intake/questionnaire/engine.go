package questionnaire

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"mediscan-kiosk/pkg/intake/constants"
	"mediscan-kiosk/pkg/intake/disease"
	"mediscan-kiosk/pkg/intake/store"
)

// Answer is one of the three choices offered for every question.
type Answer string

const (
	AnswerYes       Answer = "yes"
	AnswerNo        Answer = "no"
	AnswerSometimes Answer = "sometimes"
)

// ValidAnswer reports whether raw is one of the three answer values.
func ValidAnswer(raw string) bool {
	switch Answer(raw) {
	case AnswerYes, AnswerNo, AnswerSometimes:
		return true
	}
	return false
}

// Bundle is the completed questionnaire as persisted under
// store.KeyAnswers. Answers are indexed by question position.
type Bundle struct {
	Disease   disease.ID        `json:"disease"`
	Answers   map[string]Answer `json:"answers"`
	Total     int               `json:"total"`
	Timestamp string            `json:"timestamp"`
}

// ErrIncomplete is returned when finalizing before every question has an
// answer, which can only happen through misuse of the engine.
var ErrIncomplete = errors.New("questionnaire: not all questions answered")

// Engine drives one questionnaire session. It is not safe for concurrent
// use; the screen loop owns it and calls Record and Tick from one goroutine.
//
// Recording an answer arms an auto-advance deadline rather than moving on
// immediately, so the patient sees their choice highlighted and can still
// change it before the step commits.
type Engine struct {
	diseaseID disease.ID
	questions []string

	index    int
	answers  map[int]Answer
	deadline time.Time
	done     bool
}

// NewEngine starts a session over the given questions.
func NewEngine(d disease.ID, questions []string) *Engine {
	return &Engine{
		diseaseID: d,
		questions: questions,
		answers:   make(map[int]Answer),
	}
}

// Index returns the zero-based position of the current question.
func (e *Engine) Index() int { return e.index }

// Total returns the number of questions in the session.
func (e *Engine) Total() int { return len(e.questions) }

// Question returns the current question text, or "" once the session is done.
func (e *Engine) Question() string {
	if e.index >= len(e.questions) {
		return ""
	}
	return e.questions[e.index]
}

// Current returns the recorded answer for the current question and whether
// one has been recorded yet.
func (e *Engine) Current() (Answer, bool) {
	a, ok := e.answers[e.index]
	return a, ok
}

// Done reports whether the last question has committed.
func (e *Engine) Done() bool { return e.done }

// Record stores the answer for the current question and (re)arms the
// auto-advance deadline. Answering again before the deadline fires replaces
// the recorded answer and restarts the countdown.
func (e *Engine) Record(a Answer, now time.Time) {
	if e.done {
		return
	}
	e.answers[e.index] = a
	e.deadline = now.Add(constants.QuestionAdvanceDelay)
}

// Tick advances the session when the pending deadline has passed. It returns
// true when the step moved (either to the next question or to completion).
func (e *Engine) Tick(now time.Time) bool {
	if e.done || e.deadline.IsZero() || now.Before(e.deadline) {
		return false
	}
	e.deadline = time.Time{}
	e.index++
	if e.index >= len(e.questions) {
		e.done = true
	}
	return true
}

// Pending reports whether an answer is recorded and waiting to commit.
func (e *Engine) Pending() bool {
	return !e.done && !e.deadline.IsZero()
}

// Bundle assembles the completed session for persistence. Every question
// must have an answer.
func (e *Engine) Bundle(now time.Time) (Bundle, error) {
	if len(e.answers) < len(e.questions) {
		return Bundle{}, ErrIncomplete
	}
	b := Bundle{
		Disease:   e.diseaseID,
		Answers:   make(map[string]Answer, len(e.answers)),
		Total:     len(e.questions),
		Timestamp: now.UTC().Format(time.RFC3339),
	}
	for i, a := range e.answers {
		b.Answers[fmt.Sprintf("%d", i)] = a
	}
	return b, nil
}

// Save marshals the bundle and persists it under store.KeyAnswers.
func Save(st store.Store, b Bundle) error {
	raw, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("questionnaire: encoding answers: %w", err)
	}
	if err := st.Set(store.KeyAnswers, string(raw)); err != nil {
		return fmt.Errorf("questionnaire: persisting answers: %w", err)
	}
	return nil
}

// Load reads the persisted bundle back. Returns store.ErrNotFound when no
// questionnaire has been completed.
func Load(st store.Store) (Bundle, error) {
	raw, err := st.Get(store.KeyAnswers)
	if err != nil {
		return Bundle{}, err
	}
	var b Bundle
	if err := json.Unmarshal([]byte(raw), &b); err != nil {
		return Bundle{}, fmt.Errorf("questionnaire: decoding answers: %w", err)
	}
	return b, nil
}
