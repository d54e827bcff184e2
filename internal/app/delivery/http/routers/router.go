package routers

import (
	"fmt"
	"nutricare-service/internal/app/config"
	"nutricare-service/internal/app/delivery/http/middlewares"
	"nutricare-service/internal/app/services/core/auth"
	"nutricare-service/internal/app/services/core/checkins"
	"nutricare-service/internal/app/services/core/contents"
	"nutricare-service/internal/app/services/core/messages"
	nextSteps "nutricare-service/internal/app/services/core/nextsteps"
	"nutricare-service/internal/app/services/core/patients"
	"nutricare-service/internal/app/services/core/planning"
	"nutricare-service/internal/app/services/core/responses"
	"nutricare-service/internal/app/services/core/situations"
	"nutricare-service/internal/app/services/core/templates"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	formTemplateController *templates.FormTemplateController,
	formResponseController *responses.FormResponseController,
	patientController *patients.PatientController,
	doctorMessageController *messages.DoctorMessageController,
	weeklyPlanController *planning.WeeklyPlanController,
	nextStepController *nextSteps.NextStepController,
	situationController *situations.SituationController,
	contentController *contents.ContentController,
	checkinController *checkins.CheckinController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestID)
	router.Use(middlewares.RequestLogger)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/forms", func(r chi.Router) {
				attachFormRoutes(r, middlewares, formResponseController)
			})

			r.Route("/evaluations", func(r chi.Router) {
				attachEvaluationRoutes(r, middlewares, nextStepController)
			})

			r.Route("/next-step", func(r chi.Router) {
				attachNextStepRoutes(r, middlewares, nextStepController)
			})

			r.Route("/messages", func(r chi.Router) {
				attachMessageRoutes(r, middlewares, doctorMessageController)
			})

			r.Route("/planning", func(r chi.Router) {
				attachPlanningRoutes(r, middlewares, weeklyPlanController)
			})

			r.Route("/situations", func(r chi.Router) {
				attachSituationRoutes(r, middlewares, situationController)
			})

			r.Route("/screen-texts", func(r chi.Router) {
				attachScreenTextRoutes(r, middlewares, contentController)
			})

			r.Route("/contents", func(r chi.Router) {
				attachContentRoutes(r, middlewares, contentController)
			})

			r.Route("/checkins", func(r chi.Router) {
				attachCheckinRoutes(r, middlewares, checkinController)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(middlewares.Authenticate)
				r.Use(middlewares.RequireAdmin)

				r.Route("/templates", func(r chi.Router) {
					attachAdminTemplateRoutes(r, formTemplateController, formResponseController)
				})

				r.Route("/patients", func(r chi.Router) {
					attachAdminPatientRoutes(r, patientController, nextStepController, checkinController)
				})

				r.Route("/messages", func(r chi.Router) {
					attachAdminMessageRoutes(r, doctorMessageController)
				})

				r.Route("/planning", func(r chi.Router) {
					attachAdminPlanningRoutes(r, weeklyPlanController)
				})

				r.Route("/situations", func(r chi.Router) {
					attachAdminSituationRoutes(r, situationController)
				})

				r.Route("/screen-texts", func(r chi.Router) {
					attachAdminScreenTextRoutes(r, contentController)
				})

				r.Route("/contents", func(r chi.Router) {
					attachAdminContentRoutes(r, contentController)
				})
			})
		})
	})
}
