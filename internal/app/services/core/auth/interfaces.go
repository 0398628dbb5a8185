package auth

import (
	"context"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Register(ctx context.Context, request *requests.Register) (*responses.Register, error)
	Logout(ctx context.Context, sessionID string) error
}
