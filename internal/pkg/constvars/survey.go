package constvars

// Question types as delivered by the records backend
const (
	QuestionTypeSingleChoice   = "single_choice"
	QuestionTypeMultipleChoice = "multiple_choice"
)

// The image question is not a choice question; it carries three fixed
// labelled capture slots packed into the submission as dedicated fields.
const (
	ImageSlotFront = "Front View"
	ImageSlotLeft  = "Side View (Left)"
	ImageSlotRight = "Side View (Right)"
)

const (
	RegexSpecifyOption = `(?i)\(please (specify|list)\)`
	RegexEmail         = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`
)

// Consent questions are exempt from the answered rule but must each be
// accepted before submission.
var ConsentKeywords = []string{"consent", "agree"}

var ImageAllowedFormats = []string{".jpg", ".jpeg", ".png"}

const RegisterDOBLayout = "01/02/2006" // MM/DD/YYYY, as the backend expects
