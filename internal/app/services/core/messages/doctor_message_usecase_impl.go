package messages

import (
	"context"
	"sync"
	"time"

	"nutricare-service/internal/app/contracts"
	"nutricare-service/internal/app/models"
	"nutricare-service/internal/pkg/dto/requests"
	"nutricare-service/internal/pkg/exceptions"
)

type doctorMessageUsecase struct {
	MessageRepository contracts.DoctorMessageRepository
}

var (
	doctorMessageUsecaseInstance contracts.DoctorMessageUsecase
	onceDoctorMessageUsecase     sync.Once
)

func NewDoctorMessageUsecase(messageRepository contracts.DoctorMessageRepository) contracts.DoctorMessageUsecase {
	onceDoctorMessageUsecase.Do(func() {
		doctorMessageUsecaseInstance = &doctorMessageUsecase{MessageRepository: messageRepository}
	})
	return doctorMessageUsecaseInstance
}

func (uc *doctorMessageUsecase) CreateMessage(ctx context.Context, request *requests.CreateDoctorMessage) (*models.DoctorMessage, error) {
	now := time.Now()
	message := &models.DoctorMessage{
		Content:  request.Content,
		AudioURL: request.AudioURL,
		IsActive: request.IsActive,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	messageID, err := uc.MessageRepository.CreateMessage(ctx, message)
	if err != nil {
		return nil, err
	}
	message.ID = messageID
	return message, nil
}

func (uc *doctorMessageUsecase) FindMessages(ctx context.Context) ([]models.DoctorMessage, error) {
	return uc.MessageRepository.FindMessages(ctx)
}

// FindLatestActiveMessage is the patient-facing read: the newest message the
// clinician left switched on, or a not-found when there is none.
func (uc *doctorMessageUsecase) FindLatestActiveMessage(ctx context.Context) (*models.DoctorMessage, error) {
	message, err := uc.MessageRepository.FindLatestActiveMessage(ctx)
	if err != nil {
		return nil, err
	}
	if message == nil {
		return nil, exceptions.ErrMessageNotFound(nil)
	}
	return message, nil
}

func (uc *doctorMessageUsecase) UpdateMessage(ctx context.Context, request *requests.UpdateDoctorMessage) (*models.DoctorMessage, error) {
	message, err := uc.MessageRepository.FindMessageByID(ctx, request.MessageID)
	if err != nil {
		return nil, err
	}
	if message == nil {
		return nil, exceptions.ErrMessageNotFound(nil)
	}

	message.Content = request.Content
	message.AudioURL = request.AudioURL
	message.IsActive = request.IsActive
	message.UpdatedAt = time.Now()

	if err := uc.MessageRepository.UpdateMessage(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

func (uc *doctorMessageUsecase) DeleteMessage(ctx context.Context, messageID string) error {
	message, err := uc.MessageRepository.FindMessageByID(ctx, messageID)
	if err != nil {
		return err
	}
	if message == nil {
		return exceptions.ErrMessageNotFound(nil)
	}
	return uc.MessageRepository.DeleteMessageByID(ctx, messageID)
}
