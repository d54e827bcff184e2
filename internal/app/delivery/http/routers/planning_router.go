package routers

import (
	"nutricare-service/internal/app/delivery/http/middlewares"
	"nutricare-service/internal/app/services/core/planning"

	"github.com/go-chi/chi/v5"
)

func attachPlanningRoutes(router chi.Router, middlewares *middlewares.Middlewares, weeklyPlanController *planning.WeeklyPlanController) {
	router.With(middlewares.Authenticate).Get("/", weeklyPlanController.FindPlanning)
}

func attachAdminPlanningRoutes(router chi.Router, weeklyPlanController *planning.WeeklyPlanController) {
	router.Put("/", weeklyPlanController.UpsertPlanning)
}
