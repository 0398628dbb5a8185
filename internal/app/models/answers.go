package models

import (
	"sort"
	"strconv"
)

// AnswerSet holds a patient's in-progress answers for one survey. Keys of
// Specify are the question ID for single-choice answers and
// "questionID_optionID" for multiple-choice ones.
type AnswerSet struct {
	Single  map[int]int          `json:"single"`
	Multi   map[int]map[int]bool `json:"multi"`
	Specify map[string]string    `json:"specify"`
	Images  map[string]string    `json:"images"`
	Consent map[int]bool         `json:"consent"`
}

func NewAnswerSet() *AnswerSet {
	return &AnswerSet{
		Single:  make(map[int]int),
		Multi:   make(map[int]map[int]bool),
		Specify: make(map[string]string),
		Images:  make(map[string]string),
		Consent: make(map[int]bool),
	}
}

func SpecifyKeySingle(questionID int) string {
	return strconv.Itoa(questionID)
}

func SpecifyKeyMulti(questionID, optionID int) string {
	return strconv.Itoa(questionID) + "_" + strconv.Itoa(optionID)
}

// SelectSingle records an exclusive choice. Switching to an option that
// does not require elaboration clears the question's stored specify text.
func (a *AnswerSet) SelectSingle(q Question, optionID int) {
	a.Single[q.QuestionID] = optionID
	opt, ok := q.Option(optionID)
	if !ok || !opt.RequiresSpecify() {
		delete(a.Specify, SpecifyKeySingle(q.QuestionID))
	}
}

// ToggleMulti checks or unchecks one option of a multiple-choice
// question. Unchecking clears only that option's specify text.
func (a *AnswerSet) ToggleMulti(q Question, optionID int, checked bool) {
	set := a.Multi[q.QuestionID]
	if set == nil {
		set = make(map[int]bool)
		a.Multi[q.QuestionID] = set
	}
	if checked {
		set[optionID] = true
		return
	}
	delete(set, optionID)
	delete(a.Specify, SpecifyKeyMulti(q.QuestionID, optionID))
}

func (a *AnswerSet) SetSpecify(key, text string) {
	a.Specify[key] = text
}

func (a *AnswerSet) SetImage(slot, serverPath string) {
	a.Images[slot] = serverPath
}

func (a *AnswerSet) SetConsent(questionID int, accepted bool) {
	if accepted {
		a.Consent[questionID] = true
		return
	}
	delete(a.Consent, questionID)
}

// SelectedOptions returns the chosen option IDs for a question in
// ascending order, regardless of its kind.
func (a *AnswerSet) SelectedOptions(q Question) []int {
	switch q.Kind {
	case SingleChoice:
		if id, ok := a.Single[q.QuestionID]; ok {
			return []int{id}
		}
	case MultipleChoice:
		ids := make([]int, 0, len(a.Multi[q.QuestionID]))
		for id := range a.Multi[q.QuestionID] {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		return ids
	}
	return nil
}
