package invoices

import (
	"context"
	"intake-service/internal/app/contracts"
	"intake-service/internal/app/models"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/dto/responses"
	"intake-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type invoiceUsecase struct {
	InvoiceClient contracts.InvoiceClient
	Log           *zap.Logger
}

func NewInvoiceUsecase(invoiceClient contracts.InvoiceClient, logger *zap.Logger) InvoiceUsecase {
	return &invoiceUsecase{
		InvoiceClient: invoiceClient,
		Log:           logger,
	}
}

func (uc *invoiceUsecase) List(ctx context.Context, session *models.Session, search string, page, pageSize int) ([]responses.InvoiceRow, int, error) {
	query := &requests.ListApplications{
		RoleID: int(session.User.RoleID),
		UserID: session.User.UserID,
	}
	allInvoices, err := uc.InvoiceClient.List(ctx, session.Token, query)
	if err != nil {
		return nil, 0, err
	}

	rows := make([]responses.InvoiceRow, 0, len(allInvoices))
	for _, invoice := range allInvoices {
		rows = append(rows, decorate(invoice))
	}

	filtered := utils.FilterBySubstring(rows, search, func(row responses.InvoiceRow) []string {
		return row.SearchFields()
	})
	total := len(filtered)

	return utils.Paginate(filtered, page, pageSize), total, nil
}

// Pay marks the invoice settled upstream; the backend moves the linked
// application to its terminal status as part of the same call.
func (uc *invoiceUsecase) Pay(ctx context.Context, session *models.Session, invoiceID int) error {
	if err := uc.InvoiceClient.Pay(ctx, session.Token, invoiceID); err != nil {
		return err
	}
	uc.Log.Info("invoice paid",
		zap.Int("invoice_id", invoiceID),
		zap.Int("user_id", session.User.UserID),
	)
	return nil
}

func decorate(invoice models.Invoice) responses.InvoiceRow {
	label, severity := "Unpaid", "warning"
	if invoice.Paid {
		label, severity = "Paid", "success"
	}
	return responses.InvoiceRow{
		Invoice:        invoice,
		StatusLabel:    label,
		StatusSeverity: severity,
	}
}
