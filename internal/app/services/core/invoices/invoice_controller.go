package invoices

import (
	"context"
	"intake-service/internal/app/config"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type InvoiceController struct {
	Log            *zap.Logger
	InvoiceUsecase InvoiceUsecase
	InternalConfig *config.InternalConfig
}

func NewInvoiceController(logger *zap.Logger, invoiceUsecase InvoiceUsecase, internalConfig *config.InternalConfig) *InvoiceController {
	return &InvoiceController{
		Log:            logger,
		InvoiceUsecase: invoiceUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *InvoiceController) List(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	search := r.URL.Query().Get("search")
	page, pageSize := utils.PageParams(
		r.URL.Query().Get("page"),
		r.URL.Query().Get("pageSize"),
		ctrl.InternalConfig.App.DefaultPageSize,
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	rows, total, err := ctrl.InvoiceUsecase.List(ctx, session, search, page, pageSize)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, page, pageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetInvoicesSuccessMessage, pagination, rows)
}

func (ctrl *InvoiceController) Pay(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	invoiceID, err := utils.ParseIntParam(chi.URLParam(r, "invoiceID"), "invoiceID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	if err := ctrl.InvoiceUsecase.Pay(ctx, session, invoiceID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PayInvoiceSuccessMessage, nil)
}
