package invoices

import (
	"context"
	"intake-service/internal/app/models"
	"intake-service/internal/pkg/dto/responses"
)

type InvoiceUsecase interface {
	List(ctx context.Context, session *models.Session, search string, page, pageSize int) ([]responses.InvoiceRow, int, error)
	Pay(ctx context.Context, session *models.Session, invoiceID int) error
}
