package surveys

import (
	"context"
	"intake-service/internal/app/models"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/dto/responses"
)

type SurveyUsecase interface {
	GetQuestions(ctx context.Context, session *models.Session) (*responses.SurveyQuestions, error)
	GetDraft(ctx context.Context, session *models.Session) (*responses.SurveyDraft, error)
	ApplyAnswer(ctx context.Context, session *models.Session, event *requests.AnswerEvent) (*responses.SurveyDraft, error)
	AdvanceStep(ctx context.Context, session *models.Session) (*responses.SurveyDraft, error)
	UploadImage(ctx context.Context, session *models.Session, slot string, imageData []byte, fileExtension string) (string, error)
	CaptureImage(ctx context.Context, session *models.Session, slot string) (string, error)
	Submit(ctx context.Context, session *models.Session) error
}
