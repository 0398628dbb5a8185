package contracts

import (
	"context"
	"intake-service/internal/app/models"
)

type AuditRepository interface {
	RecordWorkflowAction(ctx context.Context, entry *models.WorkflowAuditEntry) error
	RecordSubmission(ctx context.Context, receipt *models.SubmissionReceipt) error
	ListWorkflowActions(ctx context.Context, applicationID int) ([]models.WorkflowAuditEntry, error)
}
