package applications

import (
	"context"
	"errors"
	"intake-service/internal/app/config"
	"intake-service/internal/app/contracts"
	"intake-service/internal/app/models"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/dto/responses"
	"intake-service/internal/pkg/exceptions"
	"intake-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type applicationUsecase struct {
	ApplicationClient contracts.ApplicationClient
	Audit             contracts.AuditRepository
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

func NewApplicationUsecase(
	applicationClient contracts.ApplicationClient,
	auditRepository contracts.AuditRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) ApplicationUsecase {
	return &applicationUsecase{
		ApplicationClient: applicationClient,
		Audit:             auditRepository,
		InternalConfig:    internalConfig,
		Log:               logger,
	}
}

// List fetches the role-scoped application list from the backend, then
// filters, paginates and decorates it for the viewer. Filtering and
// pagination happen here because the backend list endpoint has neither.
func (uc *applicationUsecase) List(ctx context.Context, session *models.Session, search string, page, pageSize int) ([]responses.ApplicationRow, int, error) {
	rows, err := uc.fetchRows(ctx, session)
	if err != nil {
		return nil, 0, err
	}

	viewerRole := session.User.RoleID
	filtered := utils.FilterBySubstring(rows, search, func(row responses.ApplicationRow) []string {
		return row.SearchFields(viewerRole)
	})
	total := len(filtered)

	return utils.Paginate(filtered, page, pageSize), total, nil
}

func (uc *applicationUsecase) Get(ctx context.Context, session *models.Session, applicationID int) (*responses.ApplicationRow, error) {
	application, err := uc.ApplicationClient.Get(ctx, session.Token, applicationID)
	if err != nil {
		return nil, err
	}
	row := uc.decorate(*application, session.User.RoleID)
	return &row, nil
}

// Act requests a status change on behalf of the viewer. The attempt is
// audited whether or not the backend accepts it, and the fresh list is
// always re-fetched afterwards so the caller never renders a guess.
func (uc *applicationUsecase) Act(ctx context.Context, session *models.Session, request *requests.UpdateApplication) (*responses.ActionResult, error) {
	role := session.User.RoleID
	target := models.ApplicationStatus(request.StatusID)

	current, err := uc.ApplicationClient.Get(ctx, session.Token, request.ID)
	if err != nil {
		return nil, err
	}

	if !models.CanAct(role, current.StatusID) || !models.CanRequest(role, target) {
		return nil, exceptions.ErrActionNotAllowed()
	}
	if target.IsRejection() && request.Description == "" {
		return nil, exceptions.ErrAnswerValidation(constvars.ErrClientFeedbackRequired)
	}
	if !target.IsRejection() && request.ImagePath == "" {
		return nil, exceptions.ErrAnswerValidation(constvars.ErrClientAttachmentRequired)
	}

	request.RoleID = int(role)
	updateErr := uc.ApplicationClient.Update(ctx, session.Token, request)

	entry := &models.WorkflowAuditEntry{
		ApplicationID: request.ID,
		ActorUserID:   session.User.UserID,
		ActorRole:     role.Name(),
		FromStatus:    current.StatusID,
		ToStatus:      target,
		Feedback:      request.Description,
		Accepted:      updateErr == nil,
		OccurredAt:    time.Now(),
	}
	if err := uc.Audit.RecordWorkflowAction(ctx, entry); err != nil {
		uc.Log.Warn("failed to record workflow action", zap.Error(err))
	}

	// Re-fetch even when the backend turned the action down, so the
	// table the viewer sees next reflects whatever actually happened.
	rows, err := uc.fetchRows(ctx, session)
	if err != nil {
		return nil, err
	}

	result := &responses.ActionResult{
		Accepted:     updateErr == nil,
		Applications: rows,
	}
	if updateErr != nil {
		result.Message = clientMessage(updateErr)
		uc.Log.Warn("workflow action rejected by backend",
			zap.Int("application_id", request.ID),
			zap.Int("status_id", request.StatusID),
			zap.Error(updateErr),
		)
	}
	return result, nil
}

func clientMessage(err error) string {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return customErr.ClientMessage
	}
	return constvars.ErrClientCannotProcessRequest
}

func (uc *applicationUsecase) AuditTrail(ctx context.Context, applicationID int) ([]models.WorkflowAuditEntry, error) {
	return uc.Audit.ListWorkflowActions(ctx, applicationID)
}

func (uc *applicationUsecase) fetchRows(ctx context.Context, session *models.Session) ([]responses.ApplicationRow, error) {
	query := &requests.ListApplications{
		RoleID: int(session.User.RoleID),
		UserID: session.User.UserID,
	}
	applications, err := uc.ApplicationClient.List(ctx, session.Token, query)
	if err != nil {
		return nil, err
	}

	rows := make([]responses.ApplicationRow, 0, len(applications))
	for _, application := range applications {
		rows = append(rows, uc.decorate(application, session.User.RoleID))
	}
	return rows, nil
}

func (uc *applicationUsecase) decorate(application models.PatientApplication, viewerRole models.Role) responses.ApplicationRow {
	return responses.ApplicationRow{
		PatientApplication: application,
		StatusLabel:        application.StatusID.LabelFor(viewerRole),
		StatusSeverity:     application.StatusID.Severity(),
		ActionsEnabled:     models.CanAct(viewerRole, application.StatusID),
	}
}
