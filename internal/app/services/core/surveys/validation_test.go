package surveys

import (
	"intake-service/internal/app/models"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validationFixture() ([]models.Question, [][]int) {
	questions := []models.Question{
		{
			QuestionID: 1, QuestionText: "Current smoker", Kind: models.SingleChoice,
			Options: []models.Option{
				{OptionID: 11, OptionText: "Yes"},
				{OptionID: 12, OptionText: "Other (Please Specify)"},
			},
		},
		{
			QuestionID: 2, QuestionText: "Known allergies", Kind: models.MultipleChoice,
			Options: []models.Option{
				{OptionID: 21, OptionText: "Penicillin"},
				{OptionID: 22, OptionText: "Other (Please List)"},
			},
		},
		{QuestionID: testImageQuestionID, QuestionText: "Patient photos", Kind: models.ImageCapture},
		{QuestionID: 90, QuestionText: "I consent to treatment", Kind: models.SingleChoice},
	}
	steps := [][]int{{1, 2}, {testImageQuestionID}, {90}}
	return questions, steps
}

func completeAnswers(questions []models.Question) *models.AnswerSet {
	answers := models.NewAnswerSet()
	answers.SelectSingle(questions[0], 11)
	answers.ToggleMulti(questions[1], 21, true)
	for _, slot := range models.ImageSlots() {
		answers.SetImage(slot, "/uploads/"+slot+".jpg")
	}
	answers.SetConsent(90, true)
	return answers
}

func TestValidateStep(t *testing.T) {
	questions, steps := validationFixture()

	t.Run("passes when every question on the step is answered", func(t *testing.T) {
		answers := completeAnswers(questions)
		assert.NoError(t, ValidateStep(questions, steps, 0, answers))
	})

	t.Run("fails on an unanswered question", func(t *testing.T) {
		answers := models.NewAnswerSet()
		answers.SelectSingle(questions[0], 11)

		err := ValidateStep(questions, steps, 0, answers)
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.ErrClientMissingRequiredAnswer, customErr.ClientMessage)
	})

	t.Run("selected specify option demands its text", func(t *testing.T) {
		answers := completeAnswers(questions)
		answers.SelectSingle(questions[0], 12)

		err := ValidateStep(questions, steps, 0, answers)
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.ErrClientMissingSpecifyText, customErr.ClientMessage)

		answers.SetSpecify(models.SpecifyKeySingle(1), "pipe smoker")
		assert.NoError(t, ValidateStep(questions, steps, 0, answers))
	})

	t.Run("checked multi specify option demands its text", func(t *testing.T) {
		answers := completeAnswers(questions)
		answers.ToggleMulti(questions[1], 22, true)

		err := ValidateStep(questions, steps, 0, answers)
		require.Error(t, err)

		answers.SetSpecify(models.SpecifyKeyMulti(2, 22), "pollen")
		assert.NoError(t, ValidateStep(questions, steps, 0, answers))
	})

	t.Run("image step requires all three slots", func(t *testing.T) {
		answers := completeAnswers(questions)
		answers.Images[constvars.ImageSlotLeft] = ""

		err := ValidateStep(questions, steps, 1, answers)
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.ErrClientMissingImages, customErr.ClientMessage)
	})

	t.Run("consent is exempt at step level", func(t *testing.T) {
		answers := models.NewAnswerSet()
		assert.NoError(t, ValidateStep(questions, steps, 2, answers))
	})

	t.Run("out of range step is a no-op", func(t *testing.T) {
		answers := models.NewAnswerSet()
		assert.NoError(t, ValidateStep(questions, steps, -1, answers))
		assert.NoError(t, ValidateStep(questions, steps, len(steps), answers))
	})
}

func TestValidateAll(t *testing.T) {
	questions, steps := validationFixture()

	t.Run("complete answers pass", func(t *testing.T) {
		assert.NoError(t, ValidateAll(questions, steps, completeAnswers(questions)))
	})

	t.Run("checks every step regardless of position", func(t *testing.T) {
		answers := completeAnswers(questions)
		delete(answers.Single, 1)

		assert.Error(t, ValidateAll(questions, steps, answers))
	})

	t.Run("unaccepted consent blocks submission", func(t *testing.T) {
		answers := completeAnswers(questions)
		answers.SetConsent(90, false)

		err := ValidateAll(questions, steps, answers)
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.ErrClientConsentNotGiven, customErr.ClientMessage)
	})
}
