package requests

// AnswerEvent is one interaction with the survey form, applied to the
// caller's stored draft. Exactly one of the event kinds is used,
// depending on Kind.
type AnswerEvent struct {
	Kind       string `json:"kind" validate:"required,oneof=select toggle specify consent"`
	QuestionID int    `json:"QuestionId" validate:"required"`
	OptionID   int    `json:"OptionId,omitempty"`
	Checked    bool   `json:"checked,omitempty"`
	Accepted   bool   `json:"accepted,omitempty"`
	SpecifyKey string `json:"specifyKey,omitempty"`
	Text       string `json:"text,omitempty"`
}

const (
	AnswerEventSelect  = "select"
	AnswerEventToggle  = "toggle"
	AnswerEventSpecify = "specify"
	AnswerEventConsent = "consent"
)

// SurveyResponse is one aggregated per-question answer inside the final
// submission payload. OptionID carries comma-joined option IDs.
type SurveyResponse struct {
	QuestionID   int    `json:"QuestionId"`
	OptionID     string `json:"OptionId"`
	TextResponse string `json:"TextResponse,omitempty"`
	FrontSide    string `json:"FrontSide,omitempty"`
	LeftSide     string `json:"LeftSide,omitempty"`
	RightSide    string `json:"RightSide,omitempty"`
}

type SurveySubmission struct {
	UserID    int              `json:"UserId"`
	Responses []SurveyResponse `json:"Responses"`
}

// UploadSlotImage is the JSON alternative to a multipart upload: the
// image arrives as a bare base64 string or a data URL.
type UploadSlotImage struct {
	Image string `json:"image" validate:"required"`
}

// UploadAssignment mirrors the generic file-upload collaborator contract.
type UploadAssignment struct {
	Image    string `json:"Image"` // "filename|base64"
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
}

type UploadRequest struct {
	SubjectName     string `json:"SubjectName"`
	AssignmentTitle string `json:"AssignmentTitle"`
	Path            string `json:"Path"`
	Assignments     string `json:"Assignments"` // JSON-encoded []UploadAssignment
}
