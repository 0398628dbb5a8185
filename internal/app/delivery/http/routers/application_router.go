package routers

import (
	"intake-service/internal/app/delivery/http/middlewares"
	"intake-service/internal/app/services/core/applications"

	"github.com/go-chi/chi/v5"
)

func attachApplicationRoutes(router chi.Router, middlewares *middlewares.Middlewares, applicationController *applications.ApplicationController) {
	router.Use(middlewares.Authenticate)

	router.Get("/", applicationController.List)
	router.Get("/{applicationID}", applicationController.Get)
	router.Post("/act", applicationController.Act)
}

// attachOpsRoutes exposes the portal's own audit trail to operators; it
// is keyed, not session-bound.
func attachOpsRoutes(router chi.Router, middlewares *middlewares.Middlewares, applicationController *applications.ApplicationController) {
	router.Use(middlewares.RequireAPIKey)

	router.Get("/applications/{applicationID}/audit", applicationController.AuditTrail)
}
