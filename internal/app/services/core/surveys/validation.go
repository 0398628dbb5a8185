package surveys

import (
	"intake-service/internal/app/models"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/exceptions"
)

// ValidateStep checks only the questions on the given step. Consent
// statements are exempt from the answered rule here; they are enforced
// by ValidateAll at submission time.
func ValidateStep(questions []models.Question, steps [][]int, step int, answers *models.AnswerSet) error {
	if step < 0 || step >= len(steps) {
		return nil
	}
	byID := questionIndex(questions)
	for _, questionID := range steps[step] {
		question, ok := byID[questionID]
		if !ok {
			continue
		}
		if question.IsConsent() {
			continue
		}
		if err := validateQuestion(question, answers); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAll re-checks every step from scratch, deliberately ignoring
// whatever step the caller is currently on, then enforces that each
// consent statement has been individually accepted.
func ValidateAll(questions []models.Question, steps [][]int, answers *models.AnswerSet) error {
	for step := range steps {
		if err := ValidateStep(questions, steps, step, answers); err != nil {
			return err
		}
	}

	for _, question := range questions {
		if !question.IsConsent() {
			continue
		}
		if !answers.Consent[question.QuestionID] {
			return exceptions.ErrAnswerValidation(constvars.ErrClientConsentNotGiven)
		}
	}
	return nil
}

func validateQuestion(question models.Question, answers *models.AnswerSet) error {
	switch question.Kind {
	case models.ImageCapture:
		for _, slot := range models.ImageSlots() {
			if answers.Images[slot] == "" {
				return exceptions.ErrAnswerValidation(constvars.ErrClientMissingImages)
			}
		}
		return nil

	case models.SingleChoice:
		optionID, ok := answers.Single[question.QuestionID]
		if !ok {
			return exceptions.ErrMissingRequiredAnswer(question.QuestionID)
		}
		option, found := question.Option(optionID)
		if found && option.RequiresSpecify() {
			if answers.Specify[models.SpecifyKeySingle(question.QuestionID)] == "" {
				return exceptions.ErrAnswerValidation(constvars.ErrClientMissingSpecifyText)
			}
		}
		return nil

	case models.MultipleChoice:
		checked := answers.Multi[question.QuestionID]
		if len(checked) == 0 {
			return exceptions.ErrMissingRequiredAnswer(question.QuestionID)
		}
		for optionID := range checked {
			option, found := question.Option(optionID)
			if !found || !option.RequiresSpecify() {
				continue
			}
			if answers.Specify[models.SpecifyKeyMulti(question.QuestionID, optionID)] == "" {
				return exceptions.ErrAnswerValidation(constvars.ErrClientMissingSpecifyText)
			}
		}
		return nil
	}
	return nil
}

func questionIndex(questions []models.Question) map[int]models.Question {
	byID := make(map[int]models.Question, len(questions))
	for _, q := range questions {
		byID[q.QuestionID] = q
	}
	return byID
}
