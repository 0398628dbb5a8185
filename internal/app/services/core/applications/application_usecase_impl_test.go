package applications

import (
	"context"
	"intake-service/internal/app/config"
	"intake-service/internal/app/models"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeApplicationClient struct {
	applications []models.PatientApplication
	updateErr    error
	listCalls    int
	updateCalls  int
	lastUpdate   *requests.UpdateApplication
}

func (f *fakeApplicationClient) List(ctx context.Context, token string, query *requests.ListApplications) ([]models.PatientApplication, error) {
	f.listCalls++
	return f.applications, nil
}

func (f *fakeApplicationClient) Get(ctx context.Context, token string, applicationID int) (*models.PatientApplication, error) {
	for _, application := range f.applications {
		if application.ApplicationID == applicationID {
			found := application
			return &found, nil
		}
	}
	return nil, exceptions.ErrBackendRejected(nil, constvars.StatusNotFound, "application not found")
}

func (f *fakeApplicationClient) Update(ctx context.Context, token string, request *requests.UpdateApplication) error {
	f.updateCalls++
	f.lastUpdate = request
	return f.updateErr
}

type fakeAuditRepository struct {
	entries  []*models.WorkflowAuditEntry
	receipts []*models.SubmissionReceipt
}

func (f *fakeAuditRepository) RecordWorkflowAction(ctx context.Context, entry *models.WorkflowAuditEntry) error {
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeAuditRepository) RecordSubmission(ctx context.Context, receipt *models.SubmissionReceipt) error {
	f.receipts = append(f.receipts, receipt)
	return nil
}

func (f *fakeAuditRepository) ListWorkflowActions(ctx context.Context, applicationID int) ([]models.WorkflowAuditEntry, error) {
	var matched []models.WorkflowAuditEntry
	for _, entry := range f.entries {
		if entry.ApplicationID == applicationID {
			matched = append(matched, *entry)
		}
	}
	return matched, nil
}

func doctorSession() *models.Session {
	return &models.Session{
		Token: "backend-token",
		User: models.User{
			UserID:   3,
			FullName: "Dr. Gregory",
			RoleID:   models.RoleDoctor,
			RoleName: "Doctor",
		},
	}
}

func fixtureApplications() []models.PatientApplication {
	return []models.PatientApplication{
		{ApplicationID: 1, ApplicationTitle: "Intake - Jane Doe", SubmittedDate: "2026-08-01", StatusID: models.StatusPending},
		{ApplicationID: 2, ApplicationTitle: "Intake - John Roe", SubmittedDate: "2026-08-02", StatusID: models.StatusCompleted},
		{ApplicationID: 3, ApplicationTitle: "Intake - Mary Major", SubmittedDate: "2026-08-03", StatusID: models.StatusRejectedByPharmacist},
	}
}

func newTestUsecase(client *fakeApplicationClient, audit *fakeAuditRepository) ApplicationUsecase {
	internalConfig := &config.InternalConfig{App: config.App{DefaultPageSize: 10}}
	return NewApplicationUsecase(client, audit, internalConfig, zap.NewNop())
}

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("rows are decorated for the viewer's role", func(t *testing.T) {
		client := &fakeApplicationClient{applications: fixtureApplications()}
		uc := newTestUsecase(client, &fakeAuditRepository{})

		rows, total, err := uc.List(ctx, doctorSession(), "", 1, 10)
		require.NoError(t, err)
		assert.Equal(t, 3, total)

		assert.True(t, rows[0].ActionsEnabled, "doctor acts on pending")
		assert.False(t, rows[1].ActionsEnabled, "nobody acts on completed")
		assert.True(t, rows[2].ActionsEnabled, "doctor acts on pharmacist rejection")
		assert.Equal(t, "Pending", rows[0].StatusLabel)
		assert.Equal(t, "warning", rows[0].StatusSeverity)
	})

	t.Run("substring filter runs over title date and label", func(t *testing.T) {
		client := &fakeApplicationClient{applications: fixtureApplications()}
		uc := newTestUsecase(client, &fakeAuditRepository{})

		rows, total, err := uc.List(ctx, doctorSession(), "rejected", 1, 10)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, rows, 1)
		assert.Equal(t, 3, rows[0].ApplicationID)
	})

	t.Run("pagination slices after filtering", func(t *testing.T) {
		client := &fakeApplicationClient{applications: fixtureApplications()}
		uc := newTestUsecase(client, &fakeAuditRepository{})

		rows, total, err := uc.List(ctx, doctorSession(), "", 2, 2)
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, rows, 1)
	})
}

func TestAct(t *testing.T) {
	ctx := context.Background()

	t.Run("accepted action refreshes the list and audits", func(t *testing.T) {
		client := &fakeApplicationClient{applications: fixtureApplications()}
		audit := &fakeAuditRepository{}
		uc := newTestUsecase(client, audit)

		result, err := uc.Act(ctx, doctorSession(), &requests.UpdateApplication{
			ID:        1,
			StatusID:  int(models.StatusApprovedByDoctor),
			ImagePath: "/uploads/report.jpg",
		})
		require.NoError(t, err)

		assert.True(t, result.Accepted)
		assert.Len(t, result.Applications, 3)
		assert.Equal(t, 1, client.updateCalls)
		assert.Equal(t, 1, client.listCalls)

		require.Len(t, audit.entries, 1)
		assert.True(t, audit.entries[0].Accepted)
		assert.Equal(t, models.StatusPending, audit.entries[0].FromStatus)
		assert.Equal(t, models.StatusApprovedByDoctor, audit.entries[0].ToStatus)
		assert.Equal(t, "Doctor", audit.entries[0].ActorRole)
	})

	t.Run("backend rejection still refreshes the list and audits", func(t *testing.T) {
		client := &fakeApplicationClient{
			applications: fixtureApplications(),
			updateErr:    exceptions.ErrBackendRejected(nil, constvars.StatusConflict, "status already changed"),
		}
		audit := &fakeAuditRepository{}
		uc := newTestUsecase(client, audit)

		result, err := uc.Act(ctx, doctorSession(), &requests.UpdateApplication{
			ID:        1,
			StatusID:  int(models.StatusApprovedByDoctor),
			ImagePath: "/uploads/report.jpg",
		})
		require.NoError(t, err)

		assert.False(t, result.Accepted)
		assert.Equal(t, "status already changed", result.Message)
		assert.Len(t, result.Applications, 3)
		assert.Equal(t, 1, client.listCalls)

		require.Len(t, audit.entries, 1)
		assert.False(t, audit.entries[0].Accepted)
	})

	t.Run("action on a non-actionable status is forbidden", func(t *testing.T) {
		client := &fakeApplicationClient{applications: fixtureApplications()}
		uc := newTestUsecase(client, &fakeAuditRepository{})

		_, err := uc.Act(ctx, doctorSession(), &requests.UpdateApplication{
			ID:        2,
			StatusID:  int(models.StatusReviewedByDoctor),
			ImagePath: "/uploads/report.jpg",
		})
		require.Error(t, err)
		assert.Equal(t, 0, client.updateCalls)
	})

	t.Run("role cannot request a status outside its set", func(t *testing.T) {
		client := &fakeApplicationClient{applications: fixtureApplications()}
		uc := newTestUsecase(client, &fakeAuditRepository{})

		_, err := uc.Act(ctx, doctorSession(), &requests.UpdateApplication{
			ID:        1,
			StatusID:  int(models.StatusCompleted),
			ImagePath: "/uploads/report.jpg",
		})
		require.Error(t, err)
		assert.Equal(t, 0, client.updateCalls)
	})

	t.Run("rejection without feedback is refused", func(t *testing.T) {
		client := &fakeApplicationClient{applications: fixtureApplications()}
		uc := newTestUsecase(client, &fakeAuditRepository{})

		pharmacist := doctorSession()
		pharmacist.User.RoleID = models.RolePharmacist
		pharmacist.User.RoleName = "Pharmacist"
		client.applications[0].StatusID = models.StatusReviewedByDoctor

		_, err := uc.Act(ctx, pharmacist, &requests.UpdateApplication{
			ID:       1,
			StatusID: int(models.StatusRejectedByPharmacist),
		})
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.ErrClientFeedbackRequired, customErr.ClientMessage)
	})

	t.Run("approval without attachment is refused", func(t *testing.T) {
		client := &fakeApplicationClient{applications: fixtureApplications()}
		uc := newTestUsecase(client, &fakeAuditRepository{})

		_, err := uc.Act(ctx, doctorSession(), &requests.UpdateApplication{
			ID:       1,
			StatusID: int(models.StatusApprovedByDoctor),
		})
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.ErrClientAttachmentRequired, customErr.ClientMessage)
	})

	t.Run("actor's role is stamped on the upstream request", func(t *testing.T) {
		client := &fakeApplicationClient{applications: fixtureApplications()}
		uc := newTestUsecase(client, &fakeAuditRepository{})

		_, err := uc.Act(ctx, doctorSession(), &requests.UpdateApplication{
			ID:        1,
			StatusID:  int(models.StatusApprovedByDoctor),
			RoleID:    int(models.RoleAdmin),
			ImagePath: "/uploads/report.jpg",
		})
		require.NoError(t, err)
		assert.Equal(t, int(models.RoleDoctor), client.lastUpdate.RoleID)
	})
}
