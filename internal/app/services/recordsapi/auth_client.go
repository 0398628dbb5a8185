package recordsapi

import (
	"context"
	"intake-service/internal/app/contracts"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/dto/responses"
	"intake-service/internal/pkg/exceptions"
	"net/url"

	"go.uber.org/zap"
)

type authClient struct {
	*restClient
}

func NewAuthClient(baseURL string, logger *zap.Logger) contracts.AuthClient {
	return &authClient{newRestClient(baseURL, logger)}
}

// Login exchanges credentials for the backend token. The token rides
// inside the first record of the data array.
func (c *authClient) Login(ctx context.Context, request *requests.Login) (*responses.LoginRecord, error) {
	envelope, err := c.doJSON(ctx, constvars.MethodPost, "/auth/login", "", request)
	if err != nil {
		return nil, err
	}

	var records []responses.LoginRecord
	if err := envelope.DecodeData(&records); err != nil {
		return nil, exceptions.ErrDecodeEnvelope(err)
	}
	if len(records) == 0 || records[0].Token == "" {
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}
	return &records[0], nil
}

func (c *authClient) Register(ctx context.Context, request *requests.Register) (*responses.Register, error) {
	form := url.Values{}
	form.Set("Username", request.Username)
	form.Set("Email", request.Email)
	form.Set("Password", request.Password)
	form.Set("FullName", request.FullName)
	form.Set("DOB", request.DOB)
	form.Set("Gender", request.Gender)
	form.Set("Mobile", request.Mobile)
	form.Set("PostalAddress", request.PostalAddress)

	envelope, err := c.doForm(ctx, constvars.MethodPost, "/auth/register", "", form)
	if err != nil {
		return nil, err
	}

	response := new(responses.Register)
	if err := envelope.DecodeData(response); err != nil {
		return nil, exceptions.ErrDecodeEnvelope(err)
	}
	return response, nil
}
