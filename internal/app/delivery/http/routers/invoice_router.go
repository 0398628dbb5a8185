package routers

import (
	"intake-service/internal/app/delivery/http/middlewares"
	"intake-service/internal/app/services/core/invoices"

	"github.com/go-chi/chi/v5"
)

func attachInvoiceRoutes(router chi.Router, middlewares *middlewares.Middlewares, invoiceController *invoices.InvoiceController) {
	router.Use(middlewares.Authenticate)

	router.Get("/", invoiceController.List)
	router.Post("/{invoiceID}/pay", invoiceController.Pay)
}
