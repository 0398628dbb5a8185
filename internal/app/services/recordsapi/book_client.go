package recordsapi

import (
	"context"
	"fmt"
	"intake-service/internal/app/contracts"
	"intake-service/internal/app/models"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/exceptions"
	"net/url"

	"go.uber.org/zap"
)

// bookClient talks to the library catalogue, the second upstream
// surface. It shares nothing with the intake workflow except the
// envelope convention.
type bookClient struct {
	*restClient
}

func NewBookClient(baseURL string, logger *zap.Logger) contracts.BookClient {
	return &bookClient{newRestClient(baseURL, logger)}
}

func (c *bookClient) Search(ctx context.Context, token, query string) ([]models.Book, error) {
	envelope, err := c.doJSON(ctx, constvars.MethodGet, "/books?search="+url.QueryEscape(query), token, nil)
	if err != nil {
		return nil, err
	}

	var books []models.Book
	if err := envelope.DecodeData(&books); err != nil {
		return nil, exceptions.ErrDecodeEnvelope(err)
	}
	return books, nil
}

func (c *bookClient) Get(ctx context.Context, token string, bookID int) (*models.Book, error) {
	envelope, err := c.doJSON(ctx, constvars.MethodGet, fmt.Sprintf("/books/%d", bookID), token, nil)
	if err != nil {
		return nil, err
	}

	book := new(models.Book)
	if err := envelope.DecodeData(book); err != nil {
		return nil, exceptions.ErrDecodeEnvelope(err)
	}
	return book, nil
}

func (c *bookClient) Favorites(ctx context.Context, token string, userID int) ([]models.Book, error) {
	envelope, err := c.doJSON(ctx, constvars.MethodGet, fmt.Sprintf("/favorites?userId=%d", userID), token, nil)
	if err != nil {
		return nil, err
	}

	var books []models.Book
	if err := envelope.DecodeData(&books); err != nil {
		return nil, exceptions.ErrDecodeEnvelope(err)
	}
	return books, nil
}

func (c *bookClient) AddFavorite(ctx context.Context, token string, userID, bookID int) error {
	payload := map[string]int{"UserId": userID, "BookId": bookID}
	_, err := c.doJSON(ctx, constvars.MethodPost, "/favorites", token, payload)
	return err
}

func (c *bookClient) RemoveFavorite(ctx context.Context, token string, userID, bookID int) error {
	_, err := c.doJSON(ctx, constvars.MethodDelete, fmt.Sprintf("/favorites/%d?userId=%d", bookID, userID), token, nil)
	return err
}
