package surveys

import (
	"intake-service/internal/app/models"
	"intake-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSubmission(t *testing.T) {
	questions, _ := validationFixture()

	t.Run("multi choice options are comma-joined", func(t *testing.T) {
		answers := completeAnswers(questions)
		answers.ToggleMulti(questions[1], 22, true)
		answers.SetSpecify(models.SpecifyKeyMulti(2, 22), "pollen")

		submission := BuildSubmission(7, questions, answers)
		assert.Equal(t, 7, submission.UserID)

		for _, response := range submission.Responses {
			if response.QuestionID == 2 {
				assert.Equal(t, "21,22", response.OptionID)
				assert.Equal(t, "pollen", response.TextResponse)
			}
		}
	})

	t.Run("image question carries the three server paths", func(t *testing.T) {
		answers := completeAnswers(questions)
		submission := BuildSubmission(7, questions, answers)

		var found bool
		for _, response := range submission.Responses {
			if response.QuestionID == testImageQuestionID {
				found = true
				assert.Equal(t, "0", response.OptionID)
				assert.Equal(t, answers.Images[constvars.ImageSlotFront], response.FrontSide)
				assert.Equal(t, answers.Images[constvars.ImageSlotLeft], response.LeftSide)
				assert.Equal(t, answers.Images[constvars.ImageSlotRight], response.RightSide)
			}
		}
		require.True(t, found, "image response missing from submission")
	})

	t.Run("unanswered questions are dropped", func(t *testing.T) {
		answers := completeAnswers(questions)
		submission := BuildSubmission(7, questions, answers)

		for _, response := range submission.Responses {
			assert.NotEqual(t, 90, response.QuestionID, "consent question has no selected options and must not appear")
		}
	})

	t.Run("single choice specify text travels with the answer", func(t *testing.T) {
		answers := completeAnswers(questions)
		answers.SelectSingle(questions[0], 12)
		answers.SetSpecify(models.SpecifyKeySingle(1), "pipe smoker")

		submission := BuildSubmission(7, questions, answers)
		for _, response := range submission.Responses {
			if response.QuestionID == 1 {
				assert.Equal(t, "12", response.OptionID)
				assert.Equal(t, "pipe smoker", response.TextResponse)
			}
		}
	})
}
