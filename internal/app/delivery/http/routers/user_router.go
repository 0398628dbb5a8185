package routers

import (
	"intake-service/internal/app/delivery/http/middlewares"
	"intake-service/internal/app/services/core/users"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *users.UserController) {
	router.Use(middlewares.Authenticate)

	router.Get("/", userController.List)
	router.Put("/{userID}", userController.Update)
	router.Put("/{userID}/account-status", userController.UpdateAccountStatus)
}
