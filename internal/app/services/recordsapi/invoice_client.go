package recordsapi

import (
	"context"
	"fmt"
	"intake-service/internal/app/contracts"
	"intake-service/internal/app/models"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type invoiceClient struct {
	*restClient
}

func NewInvoiceClient(baseURL string, logger *zap.Logger) contracts.InvoiceClient {
	return &invoiceClient{newRestClient(baseURL, logger)}
}

func (c *invoiceClient) List(ctx context.Context, token string, query *requests.ListApplications) ([]models.Invoice, error) {
	envelope, err := c.doJSON(ctx, constvars.MethodPost, "/invoices/list", token, query)
	if err != nil {
		return nil, err
	}

	var invoices []models.Invoice
	if err := envelope.DecodeData(&invoices); err != nil {
		return nil, exceptions.ErrDecodeEnvelope(err)
	}
	return invoices, nil
}

func (c *invoiceClient) Pay(ctx context.Context, token string, invoiceID int) error {
	_, err := c.doJSON(ctx, constvars.MethodPost, fmt.Sprintf("/invoices/%d/pay", invoiceID), token, nil)
	return err
}
