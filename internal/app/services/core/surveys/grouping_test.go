package surveys

import (
	"intake-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testImageQuestionID = 13

func sampleRows() []models.OptionRow {
	return []models.OptionRow{
		{QuestionID: 2, QuestionText: "Known allergies", QuestionType: "multiple_choice", OptionID: 21, OptionText: "Penicillin", DisplayOrder: 2, DisplayOrder1: 1},
		{QuestionID: 1, QuestionText: "Current smoker", QuestionType: "single_choice", OptionID: 12, OptionText: "No", DisplayOrder: 1, DisplayOrder1: 2},
		{QuestionID: 2, QuestionText: "Known allergies", QuestionType: "multiple_choice", OptionID: 23, OptionText: "Other (Please Specify)", DisplayOrder: 2, DisplayOrder1: 3},
		{QuestionID: 1, QuestionText: "Current smoker", QuestionType: "single_choice", OptionID: 11, OptionText: "Yes", DisplayOrder: 1, DisplayOrder1: 1},
		{QuestionID: 2, QuestionText: "Known allergies", QuestionType: "multiple_choice", OptionID: 22, OptionText: "Latex", DisplayOrder: 2, DisplayOrder1: 2},
		{QuestionID: testImageQuestionID, QuestionText: "Patient photos", QuestionType: "single_choice", OptionID: 0, OptionText: "", DisplayOrder: 3, DisplayOrder1: 1},
	}
}

func TestGroupQuestions(t *testing.T) {
	t.Run("groups rows by question and sorts by display order", func(t *testing.T) {
		questions := GroupQuestions(sampleRows(), testImageQuestionID)

		require.Len(t, questions, 3)
		assert.Equal(t, 1, questions[0].QuestionID)
		assert.Equal(t, 2, questions[1].QuestionID)
		assert.Equal(t, testImageQuestionID, questions[2].QuestionID)

		assert.Equal(t, models.SingleChoice, questions[0].Kind)
		assert.Equal(t, models.MultipleChoice, questions[1].Kind)
		assert.Equal(t, models.ImageCapture, questions[2].Kind)
	})

	t.Run("options sort by DisplayOrder1 with ID tiebreak", func(t *testing.T) {
		questions := GroupQuestions(sampleRows(), testImageQuestionID)

		allergies := questions[1]
		require.Len(t, allergies.Options, 3)
		assert.Equal(t, []int{21, 22, 23}, []int{
			allergies.Options[0].OptionID,
			allergies.Options[1].OptionID,
			allergies.Options[2].OptionID,
		})
	})

	t.Run("output does not depend on row order", func(t *testing.T) {
		rows := sampleRows()
		reversed := make([]models.OptionRow, len(rows))
		for i, row := range rows {
			reversed[len(rows)-1-i] = row
		}

		forward := GroupQuestions(rows, testImageQuestionID)
		backward := GroupQuestions(reversed, testImageQuestionID)

		assert.Equal(t, forward, backward)
	})

	t.Run("duplicate option rows are dropped", func(t *testing.T) {
		rows := append(sampleRows(), models.OptionRow{
			QuestionID: 1, QuestionText: "Current smoker", QuestionType: "single_choice",
			OptionID: 11, OptionText: "Yes", DisplayOrder: 1, DisplayOrder1: 1,
		})

		questions := GroupQuestions(rows, testImageQuestionID)
		require.Len(t, questions, 3)
		assert.Len(t, questions[0].Options, 2)
	})

	t.Run("first row seen establishes question metadata", func(t *testing.T) {
		rows := []models.OptionRow{
			{QuestionID: 5, QuestionText: "Original text", QuestionType: "single_choice", OptionID: 51, OptionText: "A", DisplayOrder: 1, DisplayOrder1: 1},
			{QuestionID: 5, QuestionText: "Conflicting text", QuestionType: "multiple_choice", OptionID: 52, OptionText: "B", DisplayOrder: 9, DisplayOrder1: 2},
		}

		questions := GroupQuestions(rows, testImageQuestionID)
		require.Len(t, questions, 1)
		assert.Equal(t, "Original text", questions[0].QuestionText)
		assert.Equal(t, models.SingleChoice, questions[0].Kind)
		assert.Equal(t, 1, questions[0].DisplayOrder)
	})
}

func TestBuildSteps(t *testing.T) {
	makeQuestions := func(regularCount int, withImage, withConsent bool) []models.Question {
		var questions []models.Question
		for i := 1; i <= regularCount; i++ {
			questions = append(questions, models.Question{QuestionID: i, QuestionText: "Question", Kind: models.SingleChoice})
		}
		if withImage {
			questions = append(questions, models.Question{QuestionID: testImageQuestionID, QuestionText: "Patient photos", Kind: models.ImageCapture})
		}
		if withConsent {
			questions = append(questions,
				models.Question{QuestionID: 90, QuestionText: "I consent to treatment", Kind: models.SingleChoice},
				models.Question{QuestionID: 91, QuestionText: "I agree to the terms", Kind: models.SingleChoice},
			)
		}
		return questions
	}

	t.Run("chunks regular questions then image then consent", func(t *testing.T) {
		steps := BuildSteps(makeQuestions(7, true, true), 5)

		require.Len(t, steps, 4)
		assert.Equal(t, []int{1, 2, 3, 4, 5}, steps[0])
		assert.Equal(t, []int{6, 7}, steps[1])
		assert.Equal(t, []int{testImageQuestionID}, steps[2])
		assert.Equal(t, []int{90, 91}, steps[3])
	})

	t.Run("no image step without an image question", func(t *testing.T) {
		steps := BuildSteps(makeQuestions(3, false, false), 5)

		require.Len(t, steps, 1)
		assert.Equal(t, []int{1, 2, 3}, steps[0])
	})

	t.Run("non-positive chunk size keeps everything on one step", func(t *testing.T) {
		steps := BuildSteps(makeQuestions(4, false, false), 0)

		require.Len(t, steps, 1)
		assert.Len(t, steps[0], 4)
	})
}
