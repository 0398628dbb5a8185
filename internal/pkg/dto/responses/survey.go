package responses

import "intake-service/internal/app/models"

type SurveyQuestions struct {
	Questions []models.Question `json:"Questions"`
	Steps     [][]int           `json:"Steps"` // question IDs per step
}

type SurveyDraft struct {
	Answers *models.AnswerSet `json:"answers"`
	Step    int               `json:"step"`
}

type UploadedImage struct {
	Slot       string `json:"slot"`
	ServerPath string `json:"serverPath"`
}
