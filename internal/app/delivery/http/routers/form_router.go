package routers

import (
	"nutricare-service/internal/app/delivery/http/middlewares"
	"nutricare-service/internal/app/services/core/responses"

	"github.com/go-chi/chi/v5"
)

func attachFormRoutes(router chi.Router, middlewares *middlewares.Middlewares, formResponseController *responses.FormResponseController) {
	router.With(middlewares.Authenticate).Get("/{slug}", formResponseController.RenderForm)
	router.With(middlewares.Authenticate).Post("/{slug}/responses", formResponseController.SubmitResponse)
}
