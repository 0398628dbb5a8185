package models

import (
	"regexp"
	"strings"

	"intake-service/internal/pkg/constvars"
)

// OptionRow is one flat row of the questionnaire as delivered by the
// records backend. Every row carries exactly one option; rows sharing a
// QuestionID belong to the same question.
type OptionRow struct {
	QuestionID    int    `json:"QuestionId"`
	QuestionText  string `json:"QuestionText"`
	QuestionType  string `json:"QuestionType"`
	OptionID      int    `json:"OptionId"`
	OptionText    string `json:"OptionText"`
	DisplayOrder  int    `json:"DisplayOrder"`
	DisplayOrder1 int    `json:"DisplayOrder1"`
}

type Option struct {
	OptionID     int    `json:"OptionId"`
	OptionText   string `json:"OptionText"`
	DisplayOrder int    `json:"DisplayOrder1"`
}

// QuestionKind is the tagged variant the form dispatches on. The raw
// QuestionType string from the backend is parsed into it exactly once,
// during grouping.
type QuestionKind int

const (
	SingleChoice QuestionKind = iota
	MultipleChoice
	ImageCapture
)

type Question struct {
	QuestionID   int          `json:"QuestionId"`
	QuestionText string       `json:"QuestionText"`
	Kind         QuestionKind `json:"QuestionKind"`
	DisplayOrder int          `json:"DisplayOrder"`
	Options      []Option     `json:"Options"`
}

var specifyPattern = regexp.MustCompile(constvars.RegexSpecifyOption)

// RequiresSpecify reports whether selecting this option reveals a
// mandatory free-text field.
func (o Option) RequiresSpecify() bool {
	return specifyPattern.MatchString(o.OptionText)
}

// IsConsent reports whether the question is a consent statement. Consent
// questions are exempt from the answered rule but must each be accepted
// before submission.
func (q Question) IsConsent() bool {
	text := strings.ToLower(q.QuestionText)
	for _, keyword := range constvars.ConsentKeywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

// Option returns the option with the given ID, if present.
func (q Question) Option(optionID int) (Option, bool) {
	for _, opt := range q.Options {
		if opt.OptionID == optionID {
			return opt, true
		}
	}
	return Option{}, false
}

// ImageSlots are the three fixed labelled capture slots of the image
// question, in submission order.
func ImageSlots() []string {
	return []string{
		constvars.ImageSlotFront,
		constvars.ImageSlotLeft,
		constvars.ImageSlotRight,
	}
}
