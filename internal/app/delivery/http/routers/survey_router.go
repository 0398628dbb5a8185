package routers

import (
	"intake-service/internal/app/delivery/http/middlewares"
	"intake-service/internal/app/services/core/surveys"

	"github.com/go-chi/chi/v5"
)

func attachSurveyRoutes(router chi.Router, middlewares *middlewares.Middlewares, surveyController *surveys.SurveyController) {
	router.Use(middlewares.Authenticate)

	router.Get("/questions", surveyController.GetQuestions)
	router.Get("/draft", surveyController.GetDraft)
	router.Post("/draft/answer", surveyController.ApplyAnswer)
	router.Post("/steps/advance", surveyController.AdvanceStep)
	router.Post("/images/{slot}", surveyController.UploadImage)
	router.Post("/images/{slot}/capture", surveyController.CaptureImage)
	router.Post("/submit", surveyController.Submit)
}
