package routers

import (
	"nutricare-service/internal/app/delivery/http/middlewares"
	"nutricare-service/internal/app/services/core/situations"

	"github.com/go-chi/chi/v5"
)

func attachSituationRoutes(router chi.Router, middlewares *middlewares.Middlewares, situationController *situations.SituationController) {
	router.With(middlewares.Authenticate).Get("/", situationController.FindSituations)
}

func attachAdminSituationRoutes(router chi.Router, situationController *situations.SituationController) {
	router.Post("/", situationController.CreateSituation)
	router.Get("/", situationController.FindSituations)
	router.Put("/{situationID}", situationController.UpdateSituation)
	router.Delete("/{situationID}", situationController.DeleteSituation)
}
