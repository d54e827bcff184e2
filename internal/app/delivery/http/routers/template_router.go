package routers

import (
	"nutricare-service/internal/app/services/core/responses"
	"nutricare-service/internal/app/services/core/templates"

	"github.com/go-chi/chi/v5"
)

func attachAdminTemplateRoutes(router chi.Router, formTemplateController *templates.FormTemplateController, formResponseController *responses.FormResponseController) {
	router.Get("/", formTemplateController.FindTemplates)
	router.Post("/forms", formTemplateController.CreateForm)
	router.Post("/tests", formTemplateController.CreateTest)
	router.Get("/export", formTemplateController.ExportTemplates)
	router.Post("/import", formTemplateController.ImportTemplates)
	router.Get("/{templateID}", formTemplateController.FindTemplateByID)
	router.Put("/{templateID}", formTemplateController.UpdateTemplate)
	router.Delete("/{templateID}", formTemplateController.DeleteTemplate)
	router.Post("/{templateID}/publish", formTemplateController.PublishTemplate)
	router.Get("/{templateID}/responses", formResponseController.TemplateCompletion)
	router.Get("/{templateID}/responses/{patientID}", formResponseController.FindResponse)
}
