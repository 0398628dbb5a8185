package applications

import (
	"context"
	"intake-service/internal/app/models"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/dto/responses"
)

type ApplicationUsecase interface {
	List(ctx context.Context, session *models.Session, search string, page, pageSize int) ([]responses.ApplicationRow, int, error)
	Get(ctx context.Context, session *models.Session, applicationID int) (*responses.ApplicationRow, error)
	Act(ctx context.Context, session *models.Session, request *requests.UpdateApplication) (*responses.ActionResult, error)
	AuditTrail(ctx context.Context, applicationID int) ([]models.WorkflowAuditEntry, error)
}
