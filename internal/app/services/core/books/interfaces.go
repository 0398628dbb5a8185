package books

import (
	"context"
	"intake-service/internal/app/models"
)

type BookUsecase interface {
	Search(ctx context.Context, session *models.Session, query string) ([]models.Book, error)
	Get(ctx context.Context, session *models.Session, bookID int) (*models.Book, error)
	Favorites(ctx context.Context, session *models.Session) ([]models.Book, error)
	AddFavorite(ctx context.Context, session *models.Session, bookID int) error
	RemoveFavorite(ctx context.Context, session *models.Session, bookID int) error
}
