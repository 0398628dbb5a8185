package recordsapi

import (
	"context"
	"fmt"
	"intake-service/internal/app/contracts"
	"intake-service/internal/app/models"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type applicationClient struct {
	*restClient
}

func NewApplicationClient(baseURL string, logger *zap.Logger) contracts.ApplicationClient {
	return &applicationClient{newRestClient(baseURL, logger)}
}

func (c *applicationClient) List(ctx context.Context, token string, query *requests.ListApplications) ([]models.PatientApplication, error) {
	envelope, err := c.doJSON(ctx, constvars.MethodPost, "/applications/list", token, query)
	if err != nil {
		return nil, err
	}

	var applications []models.PatientApplication
	if err := envelope.DecodeData(&applications); err != nil {
		return nil, exceptions.ErrDecodeEnvelope(err)
	}
	return applications, nil
}

func (c *applicationClient) Get(ctx context.Context, token string, applicationID int) (*models.PatientApplication, error) {
	envelope, err := c.doJSON(ctx, constvars.MethodGet, fmt.Sprintf("/applications/%d", applicationID), token, nil)
	if err != nil {
		return nil, err
	}

	application := new(models.PatientApplication)
	if err := envelope.DecodeData(application); err != nil {
		return nil, exceptions.ErrDecodeEnvelope(err)
	}
	return application, nil
}

func (c *applicationClient) Update(ctx context.Context, token string, request *requests.UpdateApplication) error {
	_, err := c.doJSON(ctx, constvars.MethodPost, "/applications/update", token, request)
	return err
}
