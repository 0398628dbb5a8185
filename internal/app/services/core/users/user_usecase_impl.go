package users

import (
	"context"
	"intake-service/internal/app/contracts"
	"intake-service/internal/app/models"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/dto/responses"
	"intake-service/internal/pkg/exceptions"
	"intake-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserClient contracts.UserClient
	Log        *zap.Logger
}

func NewUserUsecase(userClient contracts.UserClient, logger *zap.Logger) UserUsecase {
	return &userUsecase{
		UserClient: userClient,
		Log:        logger,
	}
}

// List is admin-only. The viewer's own account is excluded so an admin
// cannot lock themselves out from this screen.
func (uc *userUsecase) List(ctx context.Context, session *models.Session, search string, page, pageSize int) ([]responses.UserRow, int, error) {
	if session.User.RoleID != models.RoleAdmin {
		return nil, 0, exceptions.ErrNotAuthorized(nil)
	}

	allUsers, err := uc.UserClient.List(ctx, session.Token)
	if err != nil {
		return nil, 0, err
	}

	rows := make([]responses.UserRow, 0, len(allUsers))
	for _, user := range allUsers {
		rows = append(rows, responses.UserRow{
			User:           user,
			ActionsEnabled: user.UserID != session.User.UserID,
		})
	}

	filtered := utils.FilterBySubstring(rows, search, func(row responses.UserRow) []string {
		return row.SearchFields()
	})
	total := len(filtered)

	return utils.Paginate(filtered, page, pageSize), total, nil
}

func (uc *userUsecase) Update(ctx context.Context, session *models.Session, userID int, request *requests.UpdateUser) error {
	if session.User.RoleID != models.RoleAdmin {
		return exceptions.ErrNotAuthorized(nil)
	}
	return uc.UserClient.Update(ctx, session.Token, userID, request)
}

func (uc *userUsecase) UpdateAccountStatus(ctx context.Context, session *models.Session, userID int, status models.AccountStatus) error {
	if session.User.RoleID != models.RoleAdmin {
		return exceptions.ErrNotAuthorized(nil)
	}
	if userID == session.User.UserID {
		return exceptions.ErrActionNotAllowed()
	}

	uc.Log.Info("account status change requested",
		zap.Int("admin_user_id", session.User.UserID),
		zap.Int("target_user_id", userID),
		zap.Int("account_status", int(status)),
	)
	return uc.UserClient.UpdateAccountStatus(ctx, session.Token, userID, status)
}
