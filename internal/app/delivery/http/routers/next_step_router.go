package routers

import (
	"nutricare-service/internal/app/delivery/http/middlewares"
	nextSteps "nutricare-service/internal/app/services/core/nextsteps"

	"github.com/go-chi/chi/v5"
)

func attachNextStepRoutes(router chi.Router, middlewares *middlewares.Middlewares, nextStepController *nextSteps.NextStepController) {
	router.With(middlewares.Authenticate).Get("/", nextStepController.FindOwnNextStep)
}

func attachEvaluationRoutes(router chi.Router, middlewares *middlewares.Middlewares, nextStepController *nextSteps.NextStepController) {
	router.With(middlewares.Authenticate).Get("/", nextStepController.Evaluations)
}
