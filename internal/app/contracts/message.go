package contracts

import (
	"context"

	"nutricare-service/internal/app/models"
	"nutricare-service/internal/pkg/dto/requests"
)

type DoctorMessageRepository interface {
	CreateMessage(ctx context.Context, message *models.DoctorMessage) (string, error)
	FindMessageByID(ctx context.Context, messageID string) (*models.DoctorMessage, error)
	FindMessages(ctx context.Context) ([]models.DoctorMessage, error)
	FindLatestActiveMessage(ctx context.Context) (*models.DoctorMessage, error)
	UpdateMessage(ctx context.Context, message *models.DoctorMessage) error
	DeleteMessageByID(ctx context.Context, messageID string) error
}

type DoctorMessageUsecase interface {
	CreateMessage(ctx context.Context, request *requests.CreateDoctorMessage) (*models.DoctorMessage, error)
	FindMessages(ctx context.Context) ([]models.DoctorMessage, error)
	FindLatestActiveMessage(ctx context.Context) (*models.DoctorMessage, error)
	UpdateMessage(ctx context.Context, request *requests.UpdateDoctorMessage) (*models.DoctorMessage, error)
	DeleteMessage(ctx context.Context, messageID string) error
}
