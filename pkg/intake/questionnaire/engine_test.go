package questionnaire

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediscan-kiosk/pkg/intake/constants"
	"mediscan-kiosk/pkg/intake/disease"
	"mediscan-kiosk/pkg/intake/store"
)

var threeQuestions = []string{"q one", "q two", "q three"}

func TestEngineWalksAllQuestions(t *testing.T) {
	e := NewEngine(disease.Eyes, threeQuestions)
	now := time.Now()

	for i := 0; i < len(threeQuestions); i++ {
		assert.Equal(t, i, e.Index())
		assert.Equal(t, threeQuestions[i], e.Question())
		assert.False(t, e.Done())

		e.Record(AnswerYes, now)
		assert.True(t, e.Pending())

		// Deadline not yet reached: no movement.
		assert.False(t, e.Tick(now.Add(constants.QuestionAdvanceDelay/2)))
		assert.Equal(t, i, e.Index())

		now = now.Add(constants.QuestionAdvanceDelay)
		assert.True(t, e.Tick(now))
	}

	assert.True(t, e.Done())
	assert.Equal(t, "", e.Question())
}

func TestEngineReAnswerOverwritesAndRestartsDeadline(t *testing.T) {
	e := NewEngine(disease.Skin, threeQuestions)
	now := time.Now()

	e.Record(AnswerYes, now)

	// Change the answer just before the first deadline would fire.
	almost := now.Add(constants.QuestionAdvanceDelay - time.Millisecond)
	e.Record(AnswerNo, almost)

	// The original deadline passes without advancing.
	assert.False(t, e.Tick(now.Add(constants.QuestionAdvanceDelay)))
	assert.Equal(t, 0, e.Index())

	got, ok := e.Current()
	require.True(t, ok)
	assert.Equal(t, AnswerNo, got)

	// The restarted deadline fires with the replacement answer recorded.
	assert.True(t, e.Tick(almost.Add(constants.QuestionAdvanceDelay)))
	assert.Equal(t, 1, e.Index())
}

func TestEngineTickWithoutAnswerIsNoop(t *testing.T) {
	e := NewEngine(disease.Dengue, threeQuestions)
	assert.False(t, e.Pending())
	assert.False(t, e.Tick(time.Now().Add(time.Hour)))
	assert.Equal(t, 0, e.Index())
}

func TestEngineBundleRequiresAllAnswers(t *testing.T) {
	e := NewEngine(disease.Breathing, threeQuestions)
	now := time.Now()

	e.Record(AnswerSometimes, now)
	now = now.Add(constants.QuestionAdvanceDelay)
	e.Tick(now)

	_, err := e.Bundle(now)
	assert.ErrorIs(t, err, ErrIncomplete)
}

func TestBundleSaveLoadRoundTrip(t *testing.T) {
	e := NewEngine(disease.Dengue, threeQuestions)
	now := time.Unix(1700000000, 0)

	answers := []Answer{AnswerYes, AnswerNo, AnswerSometimes}
	for _, a := range answers {
		e.Record(a, now)
		now = now.Add(constants.QuestionAdvanceDelay)
		require.True(t, e.Tick(now))
	}
	require.True(t, e.Done())

	b, err := e.Bundle(now)
	require.NoError(t, err)
	assert.Equal(t, disease.Dengue, b.Disease)
	assert.Equal(t, 3, b.Total)
	assert.Equal(t, AnswerYes, b.Answers["0"])
	assert.Equal(t, AnswerNo, b.Answers["1"])
	assert.Equal(t, AnswerSometimes, b.Answers["2"])

	st := store.NewMemStore()
	require.NoError(t, Save(st, b))

	got, err := Load(st)
	require.NoError(t, err)
	assert.Equal(t, b, got)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(store.NewMemStore())
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestValidAnswer(t *testing.T) {
	assert.True(t, ValidAnswer("yes"))
	assert.True(t, ValidAnswer("no"))
	assert.True(t, ValidAnswer("sometimes"))
	assert.False(t, ValidAnswer("maybe"))
	assert.False(t, ValidAnswer(""))
}
