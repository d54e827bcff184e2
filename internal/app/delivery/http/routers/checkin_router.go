package routers

import (
	"nutricare-service/internal/app/delivery/http/middlewares"
	"nutricare-service/internal/app/services/core/checkins"

	"github.com/go-chi/chi/v5"
)

func attachCheckinRoutes(router chi.Router, middlewares *middlewares.Middlewares, checkinController *checkins.CheckinController) {
	router.With(middlewares.Authenticate).Post("/", checkinController.SubmitCheckin)
	router.With(middlewares.Authenticate).Get("/", checkinController.FindOwnCheckins)
}
