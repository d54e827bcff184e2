package routers

import (
	"nutricare-service/internal/app/delivery/http/middlewares"
	"nutricare-service/internal/app/services/core/messages"

	"github.com/go-chi/chi/v5"
)

func attachMessageRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorMessageController *messages.DoctorMessageController) {
	router.With(middlewares.Authenticate).Get("/active", doctorMessageController.FindLatestActiveMessage)
}

func attachAdminMessageRoutes(router chi.Router, doctorMessageController *messages.DoctorMessageController) {
	router.Post("/", doctorMessageController.CreateMessage)
	router.Get("/", doctorMessageController.FindMessages)
	router.Put("/{messageID}", doctorMessageController.UpdateMessage)
	router.Delete("/{messageID}", doctorMessageController.DeleteMessage)
}
