package users

import (
	"context"
	"intake-service/internal/app/models"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/dto/responses"
)

type UserUsecase interface {
	List(ctx context.Context, session *models.Session, search string, page, pageSize int) ([]responses.UserRow, int, error)
	Update(ctx context.Context, session *models.Session, userID int, request *requests.UpdateUser) error
	UpdateAccountStatus(ctx context.Context, session *models.Session, userID int, status models.AccountStatus) error
}
