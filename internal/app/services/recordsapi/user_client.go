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

type userClient struct {
	*restClient
}

func NewUserClient(baseURL string, logger *zap.Logger) contracts.UserClient {
	return &userClient{newRestClient(baseURL, logger)}
}

func (c *userClient) List(ctx context.Context, token string) ([]models.User, error) {
	envelope, err := c.doJSON(ctx, constvars.MethodGet, "/users", token, nil)
	if err != nil {
		return nil, err
	}

	var users []models.User
	if err := envelope.DecodeData(&users); err != nil {
		return nil, exceptions.ErrDecodeEnvelope(err)
	}
	return users, nil
}

func (c *userClient) Update(ctx context.Context, token string, userID int, request *requests.UpdateUser) error {
	_, err := c.doJSON(ctx, constvars.MethodPut, fmt.Sprintf("/users/%d", userID), token, request)
	return err
}

func (c *userClient) UpdateAccountStatus(ctx context.Context, token string, userID int, status models.AccountStatus) error {
	payload := map[string]int{"AccountStatus": int(status)}
	_, err := c.doJSON(ctx, constvars.MethodPatch, fmt.Sprintf("/users/%d/status", userID), token, payload)
	return err
}
