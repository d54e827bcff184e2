package routers

import (
	"nutricare-service/internal/app/services/core/checkins"
	nextSteps "nutricare-service/internal/app/services/core/nextsteps"
	"nutricare-service/internal/app/services/core/patients"

	"github.com/go-chi/chi/v5"
)

func attachAdminPatientRoutes(router chi.Router, patientController *patients.PatientController, nextStepController *nextSteps.NextStepController, checkinController *checkins.CheckinController) {
	router.Get("/", patientController.FindPatients)
	router.Get("/{patientID}", patientController.FindPatientByID)
	router.Put("/{patientID}/next-step", nextStepController.UpsertNextStep)
	router.Delete("/{patientID}/next-step", nextStepController.DeleteNextStep)
	router.Get("/{patientID}/checkins", checkinController.FindPatientCheckins)
}
