package books

import (
	"context"
	"intake-service/internal/app/contracts"
	"intake-service/internal/app/models"

	"go.uber.org/zap"
)

// The library catalogue is a second upstream with its own base URL; the
// portal only normalizes its envelope and scopes favorites to the
// session user.
type bookUsecase struct {
	BookClient contracts.BookClient
	Log        *zap.Logger
}

func NewBookUsecase(bookClient contracts.BookClient, logger *zap.Logger) BookUsecase {
	return &bookUsecase{
		BookClient: bookClient,
		Log:        logger,
	}
}

func (uc *bookUsecase) Search(ctx context.Context, session *models.Session, query string) ([]models.Book, error) {
	return uc.BookClient.Search(ctx, session.Token, query)
}

func (uc *bookUsecase) Get(ctx context.Context, session *models.Session, bookID int) (*models.Book, error) {
	return uc.BookClient.Get(ctx, session.Token, bookID)
}

func (uc *bookUsecase) Favorites(ctx context.Context, session *models.Session) ([]models.Book, error) {
	return uc.BookClient.Favorites(ctx, session.Token, session.User.UserID)
}

func (uc *bookUsecase) AddFavorite(ctx context.Context, session *models.Session, bookID int) error {
	return uc.BookClient.AddFavorite(ctx, session.Token, session.User.UserID, bookID)
}

func (uc *bookUsecase) RemoveFavorite(ctx context.Context, session *models.Session, bookID int) error {
	return uc.BookClient.RemoveFavorite(ctx, session.Token, session.User.UserID, bookID)
}
