package surveys

import (
	"intake-service/internal/app/models"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/dto/requests"
	"strconv"
	"strings"
)

// BuildSubmission aggregates the answer set into the backend's
// submission payload. Option IDs are comma-joined per question and
// responses whose OptionId came out empty are dropped. The image
// question contributes one response carrying the three server paths.
func BuildSubmission(userID int, questions []models.Question, answers *models.AnswerSet) *requests.SurveySubmission {
	submission := &requests.SurveySubmission{
		UserID:    userID,
		Responses: make([]requests.SurveyResponse, 0, len(questions)),
	}

	for _, question := range questions {
		if question.Kind == models.ImageCapture {
			submission.Responses = append(submission.Responses, requests.SurveyResponse{
				QuestionID: question.QuestionID,
				OptionID:   "0",
				FrontSide:  answers.Images[constvars.ImageSlotFront],
				LeftSide:   answers.Images[constvars.ImageSlotLeft],
				RightSide:  answers.Images[constvars.ImageSlotRight],
			})
			continue
		}

		selected := answers.SelectedOptions(question)
		if len(selected) == 0 {
			continue
		}

		ids := make([]string, 0, len(selected))
		for _, id := range selected {
			ids = append(ids, strconv.Itoa(id))
		}

		submission.Responses = append(submission.Responses, requests.SurveyResponse{
			QuestionID:   question.QuestionID,
			OptionID:     strings.Join(ids, ","),
			TextResponse: textResponse(question, answers, selected),
		})
	}

	return submission
}

func textResponse(question models.Question, answers *models.AnswerSet, selected []int) string {
	switch question.Kind {
	case models.SingleChoice:
		return answers.Specify[models.SpecifyKeySingle(question.QuestionID)]
	case models.MultipleChoice:
		texts := make([]string, 0)
		for _, optionID := range selected {
			if text := answers.Specify[models.SpecifyKeyMulti(question.QuestionID, optionID)]; text != "" {
				texts = append(texts, text)
			}
		}
		return strings.Join(texts, "; ")
	}
	return ""
}
