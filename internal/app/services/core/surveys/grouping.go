package surveys

import (
	"intake-service/internal/app/models"
	"intake-service/internal/pkg/constvars"
	"sort"
)

// GroupQuestions folds the backend's flat option rows into a question
// tree. The first row seen for a QuestionID establishes the question's
// metadata; later rows contribute only options not already present.
// Output order does not depend on input order: questions sort by
// DisplayOrder (QuestionID breaking ties) and options by DisplayOrder1
// (OptionID breaking ties).
func GroupQuestions(rows []models.OptionRow, imageQuestionID int) []models.Question {
	byID := make(map[int]*models.Question)
	order := make([]int, 0)

	for _, row := range rows {
		question, ok := byID[row.QuestionID]
		if !ok {
			question = &models.Question{
				QuestionID:   row.QuestionID,
				QuestionText: row.QuestionText,
				Kind:         questionKind(row, imageQuestionID),
				DisplayOrder: row.DisplayOrder,
			}
			byID[row.QuestionID] = question
			order = append(order, row.QuestionID)
		}

		if _, exists := question.Option(row.OptionID); exists {
			continue
		}
		question.Options = append(question.Options, models.Option{
			OptionID:     row.OptionID,
			OptionText:   row.OptionText,
			DisplayOrder: row.DisplayOrder1,
		})
	}

	questions := make([]models.Question, 0, len(order))
	for _, id := range order {
		question := byID[id]
		sort.Slice(question.Options, func(i, j int) bool {
			if question.Options[i].DisplayOrder != question.Options[j].DisplayOrder {
				return question.Options[i].DisplayOrder < question.Options[j].DisplayOrder
			}
			return question.Options[i].OptionID < question.Options[j].OptionID
		})
		questions = append(questions, *question)
	}

	sort.Slice(questions, func(i, j int) bool {
		if questions[i].DisplayOrder != questions[j].DisplayOrder {
			return questions[i].DisplayOrder < questions[j].DisplayOrder
		}
		return questions[i].QuestionID < questions[j].QuestionID
	})

	return questions
}

func questionKind(row models.OptionRow, imageQuestionID int) models.QuestionKind {
	if row.QuestionID == imageQuestionID {
		return models.ImageCapture
	}
	if row.QuestionType == constvars.QuestionTypeMultipleChoice {
		return models.MultipleChoice
	}
	return models.SingleChoice
}
