package routers

import (
	"fmt"
	"intake-service/internal/app/config"
	"intake-service/internal/app/delivery/http/middlewares"
	"intake-service/internal/app/services/core/applications"
	"intake-service/internal/app/services/core/auth"
	"intake-service/internal/app/services/core/books"
	"intake-service/internal/app/services/core/invoices"
	"intake-service/internal/app/services/core/surveys"
	"intake-service/internal/app/services/core/users"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	surveyController *surveys.SurveyController,
	applicationController *applications.ApplicationController,
	userController *users.UserController,
	invoiceController *invoices.InvoiceController,
	bookController *books.BookController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id", "x-api-key"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Duration(internalConfig.App.MaxTimeRequestsPerSeconds)*time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/survey", func(r chi.Router) {
				attachSurveyRoutes(r, middlewares, surveyController)
			})

			r.Route("/applications", func(r chi.Router) {
				attachApplicationRoutes(r, middlewares, applicationController)
			})

			r.Route("/users", func(r chi.Router) {
				attachUserRoutes(r, middlewares, userController)
			})

			r.Route("/invoices", func(r chi.Router) {
				attachInvoiceRoutes(r, middlewares, invoiceController)
			})

			r.Route("/books", func(r chi.Router) {
				attachBookRoutes(r, middlewares, bookController)
			})

			r.Route("/ops", func(r chi.Router) {
				attachOpsRoutes(r, middlewares, applicationController)
			})
		})
	})
}
