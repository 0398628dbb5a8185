package surveys

import (
	"context"
	"encoding/base64"
	"fmt"
	"intake-service/internal/app/config"
	"intake-service/internal/app/contracts"
	"intake-service/internal/app/models"
	"intake-service/internal/app/services/shared/capture"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/dto/responses"
	"intake-service/internal/pkg/exceptions"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type surveyUsecase struct {
	SurveyClient    contracts.SurveyClient
	UserClient      contracts.UserClient
	RedisRepository contracts.RedisRepository
	Storage         contracts.Storage
	Mailer          contracts.MailerService
	Audit           contracts.AuditRepository
	CaptureDevice   capture.Device
	InternalConfig  *config.InternalConfig
	DriverConfig    *config.DriverConfig
	Log             *zap.Logger
}

func NewSurveyUsecase(
	surveyClient contracts.SurveyClient,
	userClient contracts.UserClient,
	redisRepository contracts.RedisRepository,
	storage contracts.Storage,
	mailerService contracts.MailerService,
	auditRepository contracts.AuditRepository,
	captureDevice capture.Device,
	internalConfig *config.InternalConfig,
	driverConfig *config.DriverConfig,
	logger *zap.Logger,
) SurveyUsecase {
	return &surveyUsecase{
		SurveyClient:    surveyClient,
		UserClient:      userClient,
		RedisRepository: redisRepository,
		Storage:         storage,
		Mailer:          mailerService,
		Audit:           auditRepository,
		CaptureDevice:   captureDevice,
		InternalConfig:  internalConfig,
		DriverConfig:    driverConfig,
		Log:             logger,
	}
}

func (uc *surveyUsecase) GetQuestions(ctx context.Context, session *models.Session) (*responses.SurveyQuestions, error) {
	questions, steps, err := uc.fetchQuestions(ctx, session)
	if err != nil {
		return nil, err
	}
	return &responses.SurveyQuestions{Questions: questions, Steps: steps}, nil
}

func (uc *surveyUsecase) GetDraft(ctx context.Context, session *models.Session) (*responses.SurveyDraft, error) {
	return uc.loadDraft(ctx, session.User.UserID)
}

func (uc *surveyUsecase) ApplyAnswer(ctx context.Context, session *models.Session, event *requests.AnswerEvent) (*responses.SurveyDraft, error) {
	questions, _, err := uc.fetchQuestions(ctx, session)
	if err != nil {
		return nil, err
	}
	byID := questionIndex(questions)
	question, ok := byID[event.QuestionID]
	if !ok {
		return nil, exceptions.BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevUnknownQuestion, event.QuestionID))
	}

	draft, err := uc.loadDraft(ctx, session.User.UserID)
	if err != nil {
		return nil, err
	}

	switch event.Kind {
	case requests.AnswerEventSelect:
		draft.Answers.SelectSingle(question, event.OptionID)
	case requests.AnswerEventToggle:
		draft.Answers.ToggleMulti(question, event.OptionID, event.Checked)
	case requests.AnswerEventSpecify:
		draft.Answers.SetSpecify(event.SpecifyKey, strings.TrimSpace(event.Text))
	case requests.AnswerEventConsent:
		draft.Answers.SetConsent(event.QuestionID, event.Accepted)
	}

	if err := uc.saveDraft(ctx, session.User.UserID, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// AdvanceStep validates only the current step before moving forward.
func (uc *surveyUsecase) AdvanceStep(ctx context.Context, session *models.Session) (*responses.SurveyDraft, error) {
	questions, steps, err := uc.fetchQuestions(ctx, session)
	if err != nil {
		return nil, err
	}
	draft, err := uc.loadDraft(ctx, session.User.UserID)
	if err != nil {
		return nil, err
	}

	if err := ValidateStep(questions, steps, draft.Step, draft.Answers); err != nil {
		return nil, err
	}
	if draft.Step < len(steps)-1 {
		draft.Step++
	}

	if err := uc.saveDraft(ctx, session.User.UserID, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (uc *surveyUsecase) UploadImage(ctx context.Context, session *models.Session, slot string, imageData []byte, fileExtension string) (string, error) {
	if err := validSlot(slot); err != nil {
		return "", err
	}

	serverPath, err := uc.pushImage(ctx, session, slot, imageData, fileExtension)
	if err != nil {
		return "", err
	}

	draft, err := uc.loadDraft(ctx, session.User.UserID)
	if err != nil {
		return "", err
	}
	draft.Answers.SetImage(slot, serverPath)
	if err := uc.saveDraft(ctx, session.User.UserID, draft); err != nil {
		return "", err
	}
	return serverPath, nil
}

// CaptureImage acquires the kiosk camera, snapshots one frame and runs
// it through the same upload pipeline as a picked file. The deferred
// Close guarantees the stream is released on every path out of here.
func (uc *surveyUsecase) CaptureImage(ctx context.Context, session *models.Session, slot string) (string, error) {
	if err := validSlot(slot); err != nil {
		return "", err
	}

	captureSession, err := capture.Open(ctx, uc.CaptureDevice)
	if err != nil {
		return "", err
	}
	defer captureSession.Close()

	frame, err := captureSession.Snapshot(ctx)
	if err != nil {
		return "", err
	}

	serverPath, err := uc.pushImage(ctx, session, slot, frame, ".jpg")
	if err != nil {
		return "", err
	}

	draft, err := uc.loadDraft(ctx, session.User.UserID)
	if err != nil {
		return "", err
	}
	draft.Answers.SetImage(slot, serverPath)
	if err := uc.saveDraft(ctx, session.User.UserID, draft); err != nil {
		return "", err
	}
	return serverPath, nil
}

// Submit re-validates every step regardless of where the form currently
// sits, then hands the aggregated payload to the backend.
func (uc *surveyUsecase) Submit(ctx context.Context, session *models.Session) error {
	questions, steps, err := uc.fetchQuestions(ctx, session)
	if err != nil {
		return err
	}
	draft, err := uc.loadDraft(ctx, session.User.UserID)
	if err != nil {
		return err
	}

	if err := ValidateAll(questions, steps, draft.Answers); err != nil {
		return err
	}

	submission := BuildSubmission(session.User.UserID, questions, draft.Answers)
	if err := uc.SurveyClient.SubmitSurvey(ctx, session.Token, submission); err != nil {
		return err
	}

	receipt := &models.SubmissionReceipt{
		UserID:        session.User.UserID,
		QuestionCount: len(submission.Responses),
		ImageCount:    len(draft.Answers.Images),
		SubmittedAt:   time.Now(),
	}
	if err := uc.Audit.RecordSubmission(ctx, receipt); err != nil {
		uc.Log.Warn("failed to record submission receipt", zap.Error(err))
	}

	uc.notifyReviewers(ctx, session)

	return uc.RedisRepository.Delete(ctx, draftKey(session.User.UserID))
}

// notifyReviewers resolves the configured role names against the user
// list and enqueues one notification. The submission already succeeded,
// so failures here only get logged.
func (uc *surveyUsecase) notifyReviewers(ctx context.Context, session *models.Session) {
	users, err := uc.UserClient.List(ctx, session.Token)
	if err != nil {
		uc.Log.Warn("failed to resolve notification recipients", zap.Error(err))
		return
	}

	recipients := make([]string, 0)
	for _, user := range users {
		for _, roleName := range uc.InternalConfig.Mailer.NotifyRoleNames {
			if strings.EqualFold(user.RoleName, strings.TrimSpace(roleName)) && uc.Mailer.ValidateEmail(user.Email) {
				recipients = append(recipients, user.Email)
			}
		}
	}
	if len(recipients) == 0 {
		return
	}

	payload := &requests.EmailPayload{
		To:      recipients,
		Subject: uc.InternalConfig.Mailer.SubjectSubmitted,
		Body:    fmt.Sprintf("%s has submitted a new intake application.", session.User.FullName),
	}
	if err := uc.Mailer.SendEmail(ctx, payload); err != nil {
		uc.Log.Warn("failed to enqueue submission notification", zap.Error(err))
	}
}

func (uc *surveyUsecase) fetchQuestions(ctx context.Context, session *models.Session) ([]models.Question, [][]int, error) {
	rows, err := uc.SurveyClient.FetchQuestionRows(ctx, session.Token)
	if err != nil {
		return nil, nil, err
	}
	questions := GroupQuestions(rows, uc.InternalConfig.Survey.ImageQuestionID)
	steps := BuildSteps(questions, uc.InternalConfig.Survey.QuestionsPerStep)
	return questions, steps, nil
}

// pushImage stages the image in the portal's own bucket, then hands it
// to the backend's upload collaborator and returns the server path.
func (uc *surveyUsecase) pushImage(ctx context.Context, session *models.Session, slot string, imageData []byte, fileExtension string) (string, error) {
	fileName := uuid.New().String() + fileExtension
	_, err := uc.Storage.UploadBase64Image(ctx, imageData, uc.DriverConfig.Minio.BucketName, fileName, fileExtension)
	if err != nil {
		return "", err
	}

	assignments, err := json.Marshal([]requests.UploadAssignment{{
		Image:    fileName + "|" + base64.StdEncoding.EncodeToString(imageData),
		FileName: fileName,
		FileType: strings.TrimPrefix(fileExtension, "."),
	}})
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	uploadRequest := &requests.UploadRequest{
		SubjectName:     session.User.FullName,
		AssignmentTitle: slot,
		Path:            uc.InternalConfig.Records.UploadPath,
		Assignments:     string(assignments),
	}

	paths, err := uc.SurveyClient.UploadImages(ctx, session.Token, uploadRequest)
	if err != nil {
		return "", err
	}
	if len(paths) == 0 {
		return "", exceptions.BuildNewCustomError(nil, constvars.StatusBadGateway, constvars.ErrClientUploadFailed, constvars.ErrDevBackendRejected)
	}
	return paths[0], nil
}

func (uc *surveyUsecase) loadDraft(ctx context.Context, userID int) (*responses.SurveyDraft, error) {
	data, err := uc.RedisRepository.Get(ctx, draftKey(userID))
	if err != nil {
		return nil, err
	}
	if data == "" {
		return &responses.SurveyDraft{Answers: models.NewAnswerSet()}, nil
	}

	draft := new(responses.SurveyDraft)
	if err := json.Unmarshal([]byte(data), draft); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	if draft.Answers == nil {
		draft.Answers = models.NewAnswerSet()
	}
	return draft, nil
}

func (uc *surveyUsecase) saveDraft(ctx context.Context, userID int, draft *responses.SurveyDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	ttl := time.Duration(uc.InternalConfig.Survey.DraftTTLInHours) * time.Hour
	return uc.RedisRepository.Set(ctx, draftKey(userID), data, ttl)
}

func draftKey(userID int) string {
	return fmt.Sprintf(constvars.RedisSurveyDraftKeyFormat, fmt.Sprint(userID))
}

func validSlot(slot string) error {
	for _, s := range models.ImageSlots() {
		if s == slot {
			return nil
		}
	}
	return exceptions.ErrAnswerValidation(constvars.ErrClientCannotProcessRequest)
}
