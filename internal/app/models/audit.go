package models

import "time"

// WorkflowAuditEntry is the portal's own record of a workflow action
// attempt, kept regardless of whether the backend accepted it.
type WorkflowAuditEntry struct {
	ApplicationID int               `bson:"application_id"`
	ActorUserID   int               `bson:"actor_user_id"`
	ActorRole     string            `bson:"actor_role"`
	FromStatus    ApplicationStatus `bson:"from_status"`
	ToStatus      ApplicationStatus `bson:"to_status"`
	Feedback      string            `bson:"feedback,omitempty"`
	Accepted      bool              `bson:"accepted"`
	OccurredAt    time.Time         `bson:"occurred_at"`
}

type SubmissionReceipt struct {
	UserID        int       `bson:"user_id"`
	QuestionCount int       `bson:"question_count"`
	ImageCount    int       `bson:"image_count"`
	SubmittedAt   time.Time `bson:"submitted_at"`
}
