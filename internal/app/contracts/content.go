package contracts

import (
	"context"

	"nutricare-service/internal/app/models"
	"nutricare-service/internal/pkg/dto/requests"
	"nutricare-service/internal/pkg/dto/responses"
)

type ScreenTextRepository interface {
	UpsertScreenText(ctx context.Context, text *models.ScreenText) error
	FindScreenTextByKey(ctx context.Context, screenKey string) (*models.ScreenText, error)
	FindScreenTexts(ctx context.Context) ([]models.ScreenText, error)
}

type ContentFileRepository interface {
	CreateFile(ctx context.Context, file *models.ContentFile) (string, error)
	FindFileByID(ctx context.Context, fileID string) (*models.ContentFile, error)
	FindFiles(ctx context.Context) ([]models.ContentFile, error)
	DeleteFileByID(ctx context.Context, fileID string) error
}

type ContentUsecase interface {
	UpsertScreenText(ctx context.Context, request *requests.UpsertScreenText) (*models.ScreenText, error)
	FindScreenTextByKey(ctx context.Context, screenKey string) (*models.ScreenText, error)
	FindScreenTexts(ctx context.Context) ([]models.ScreenText, error)
	UploadFile(ctx context.Context, request *requests.UploadContentFile) (*models.ContentFile, error)
	FindFiles(ctx context.Context) ([]models.ContentFile, error)
	FileDownloadURL(ctx context.Context, fileID string) (*responses.ContentFileDownload, error)
	DeleteFile(ctx context.Context, fileID string) error
}
