package session

import (
	"context"
	"fmt"
	"intake-service/internal/app/config"
	"intake-service/internal/app/contracts"
	"intake-service/internal/app/models"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
}

func NewSessionService(redisRepository contracts.RedisRepository, internalConfig *config.InternalConfig) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
	}
}

// Create persists token and user as a single value under a fresh session
// ID. One write means the pair can never be observed half-stored.
func (svc *sessionService) Create(ctx context.Context, token string, user models.User) (string, error) {
	session := models.Session{
		Token:     token,
		User:      user,
		CreatedAt: time.Now(),
	}

	data, err := json.Marshal(session)
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	sessionID := uuid.New().String()
	ttl := time.Duration(svc.InternalConfig.Session.TTLInHours) * time.Hour
	err = svc.RedisRepository.Set(ctx, sessionKey(sessionID), data, ttl)
	if err != nil {
		return "", err
	}

	return sessionID, nil
}

func (svc *sessionService) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	data, err := svc.RedisRepository.Get(ctx, sessionKey(sessionID))
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, exceptions.ErrSessionInvalid(nil)
	}

	session := new(models.Session)
	err = json.Unmarshal([]byte(data), session)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (svc *sessionService) Clear(ctx context.Context, sessionID string) error {
	return svc.RedisRepository.Delete(ctx, sessionKey(sessionID))
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf(constvars.RedisSessionKeyFormat, sessionID)
}
