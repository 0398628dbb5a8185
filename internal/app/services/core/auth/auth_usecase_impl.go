package auth

import (
	"context"
	"intake-service/internal/app/config"
	"intake-service/internal/app/contracts"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/dto/responses"
	"intake-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type authUsecase struct {
	AuthClient     contracts.AuthClient
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewAuthUsecase(
	authClient contracts.AuthClient,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) AuthUsecase {
	return &authUsecase{
		AuthClient:     authClient,
		SessionService: sessionService,
		InternalConfig: internalConfig,
		Log:            logger,
	}
}

// Login authenticates against the records backend, stores the backend
// token together with the user in a session, and hands the caller a JWT
// that only carries the session ID. The backend token never leaves the
// portal.
func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	record, err := uc.AuthClient.Login(ctx, request)
	if err != nil {
		return nil, err
	}

	sessionID, err := uc.SessionService.Create(ctx, record.Token, record.User)
	if err != nil {
		return nil, err
	}

	expiry := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	token, err := utils.GenerateJWT(sessionID, uc.InternalConfig.JWT.Secret, expiry)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("user logged in",
		zap.Int("user_id", record.User.UserID),
		zap.String("role", record.User.RoleName),
	)

	return &responses.Login{Token: token, User: record.User}, nil
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.Register) (*responses.Register, error) {
	return uc.AuthClient.Register(ctx, request)
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	return uc.SessionService.Clear(ctx, sessionID)
}
