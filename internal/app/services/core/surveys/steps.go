package surveys

import "intake-service/internal/app/models"

// BuildSteps partitions the questions into the fixed sequential steps
// the form walks through: choice questions chunked by questionsPerStep,
// then the image question on its own step, then every consent statement
// on the final step. Each step is a list of question IDs.
func BuildSteps(questions []models.Question, questionsPerStep int) [][]int {
	if questionsPerStep < 1 {
		questionsPerStep = len(questions)
	}

	var regular, consent []int
	imagePresent := false
	for _, q := range questions {
		switch {
		case q.Kind == models.ImageCapture:
			imagePresent = true
		case q.IsConsent():
			consent = append(consent, q.QuestionID)
		default:
			regular = append(regular, q.QuestionID)
		}
	}

	var steps [][]int
	for start := 0; start < len(regular); start += questionsPerStep {
		end := start + questionsPerStep
		if end > len(regular) {
			end = len(regular)
		}
		steps = append(steps, regular[start:end])
	}
	if imagePresent {
		steps = append(steps, []int{imageQuestionID(questions)})
	}
	if len(consent) > 0 {
		steps = append(steps, consent)
	}
	return steps
}

func imageQuestionID(questions []models.Question) int {
	for _, q := range questions {
		if q.Kind == models.ImageCapture {
			return q.QuestionID
		}
	}
	return 0
}
