package routers

import (
	"intake-service/internal/app/delivery/http/middlewares"
	"intake-service/internal/app/services/core/books"

	"github.com/go-chi/chi/v5"
)

func attachBookRoutes(router chi.Router, middlewares *middlewares.Middlewares, bookController *books.BookController) {
	router.Use(middlewares.Authenticate)

	router.Get("/", bookController.Search)
	router.Get("/{bookID}", bookController.Get)
	router.Get("/favorites", bookController.Favorites)
	router.Post("/favorites/{bookID}", bookController.AddFavorite)
	router.Delete("/favorites/{bookID}", bookController.RemoveFavorite)
}
