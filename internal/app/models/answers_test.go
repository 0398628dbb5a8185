package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func specifyQuestion() Question {
	return Question{
		QuestionID: 4, QuestionText: "Primary concern", Kind: SingleChoice,
		Options: []Option{
			{OptionID: 41, OptionText: "Back pain"},
			{OptionID: 42, OptionText: "Other (Please Specify)"},
		},
	}
}

func multiQuestion() Question {
	return Question{
		QuestionID: 5, QuestionText: "Current medications", Kind: MultipleChoice,
		Options: []Option{
			{OptionID: 51, OptionText: "None"},
			{OptionID: 52, OptionText: "Other (Please List)"},
		},
	}
}

func TestSelectSingle(t *testing.T) {
	q := specifyQuestion()

	t.Run("switching off a specify option clears its text", func(t *testing.T) {
		answers := NewAnswerSet()
		answers.SelectSingle(q, 42)
		answers.SetSpecify(SpecifyKeySingle(q.QuestionID), "knee pain")

		answers.SelectSingle(q, 41)

		assert.Equal(t, 41, answers.Single[q.QuestionID])
		assert.Empty(t, answers.Specify[SpecifyKeySingle(q.QuestionID)])
	})

	t.Run("re-selecting the specify option keeps its text", func(t *testing.T) {
		answers := NewAnswerSet()
		answers.SelectSingle(q, 42)
		answers.SetSpecify(SpecifyKeySingle(q.QuestionID), "knee pain")

		answers.SelectSingle(q, 42)

		assert.Equal(t, "knee pain", answers.Specify[SpecifyKeySingle(q.QuestionID)])
	})
}

func TestToggleMulti(t *testing.T) {
	q := multiQuestion()

	t.Run("unchecking clears only that option's text", func(t *testing.T) {
		answers := NewAnswerSet()
		answers.ToggleMulti(q, 51, true)
		answers.ToggleMulti(q, 52, true)
		answers.SetSpecify(SpecifyKeyMulti(q.QuestionID, 52), "ibuprofen")

		answers.ToggleMulti(q, 52, false)

		assert.True(t, answers.Multi[q.QuestionID][51])
		assert.False(t, answers.Multi[q.QuestionID][52])
		assert.Empty(t, answers.Specify[SpecifyKeyMulti(q.QuestionID, 52)])
	})
}

func TestSelectedOptions(t *testing.T) {
	t.Run("multi choice IDs come back sorted", func(t *testing.T) {
		q := multiQuestion()
		answers := NewAnswerSet()
		answers.ToggleMulti(q, 52, true)
		answers.ToggleMulti(q, 51, true)

		assert.Equal(t, []int{51, 52}, answers.SelectedOptions(q))
	})

	t.Run("unanswered question yields nothing", func(t *testing.T) {
		answers := NewAnswerSet()
		assert.Empty(t, answers.SelectedOptions(specifyQuestion()))
	})
}

func TestRequiresSpecify(t *testing.T) {
	assert.True(t, Option{OptionText: "Other (Please Specify)"}.RequiresSpecify())
	assert.True(t, Option{OptionText: "Medications (please list)"}.RequiresSpecify())
	assert.False(t, Option{OptionText: "None"}.RequiresSpecify())
	assert.False(t, Option{OptionText: "Specify later"}.RequiresSpecify())
}

func TestIsConsent(t *testing.T) {
	assert.True(t, Question{QuestionText: "I consent to treatment"}.IsConsent())
	assert.True(t, Question{QuestionText: "I AGREE to the privacy policy"}.IsConsent())
	assert.False(t, Question{QuestionText: "Current smoker"}.IsConsent())
}
