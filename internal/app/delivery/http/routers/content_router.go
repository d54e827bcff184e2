package routers

import (
	"nutricare-service/internal/app/delivery/http/middlewares"
	"nutricare-service/internal/app/services/core/contents"

	"github.com/go-chi/chi/v5"
)

func attachScreenTextRoutes(router chi.Router, middlewares *middlewares.Middlewares, contentController *contents.ContentController) {
	router.With(middlewares.Authenticate).Get("/", contentController.FindScreenTexts)
}

func attachContentRoutes(router chi.Router, middlewares *middlewares.Middlewares, contentController *contents.ContentController) {
	router.With(middlewares.Authenticate).Get("/", contentController.FindFiles)
	router.With(middlewares.Authenticate).Get("/{fileID}/download", contentController.FileDownloadURL)
}

func attachAdminScreenTextRoutes(router chi.Router, contentController *contents.ContentController) {
	router.Put("/{screenKey}", contentController.UpsertScreenText)
}

func attachAdminContentRoutes(router chi.Router, contentController *contents.ContentController) {
	router.Post("/", contentController.UploadFile)
	router.Delete("/{fileID}", contentController.DeleteFile)
}
