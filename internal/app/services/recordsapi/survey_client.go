package recordsapi

import (
	"context"
	"intake-service/internal/app/contracts"
	"intake-service/internal/app/models"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type surveyClient struct {
	*restClient
}

func NewSurveyClient(baseURL string, logger *zap.Logger) contracts.SurveyClient {
	return &surveyClient{newRestClient(baseURL, logger)}
}

func (c *surveyClient) FetchQuestionRows(ctx context.Context, token string) ([]models.OptionRow, error) {
	envelope, err := c.doJSON(ctx, constvars.MethodGet, "/survey/questions", token, nil)
	if err != nil {
		return nil, err
	}

	var rows []models.OptionRow
	if err := envelope.DecodeData(&rows); err != nil {
		return nil, exceptions.ErrDecodeEnvelope(err)
	}
	return rows, nil
}

func (c *surveyClient) SubmitSurvey(ctx context.Context, token string, submission *requests.SurveySubmission) error {
	_, err := c.doJSON(ctx, constvars.MethodPost, "/survey/submit", token, submission)
	return err
}

// UploadImages pushes captured images through the backend's generic
// upload collaborator and returns the server-side storage paths.
func (c *surveyClient) UploadImages(ctx context.Context, token string, request *requests.UploadRequest) ([]string, error) {
	envelope, err := c.doJSON(ctx, constvars.MethodPost, "/upload", token, request)
	if err != nil {
		return nil, err
	}

	var paths []string
	if err := envelope.DecodeData(&paths); err != nil {
		return nil, exceptions.ErrDecodeEnvelope(err)
	}
	return paths, nil
}
