package contents

import (
	"context"
	"sync"
	"time"

	"nutricare-service/internal/app/config"
	"nutricare-service/internal/app/contracts"
	"nutricare-service/internal/app/models"
	"nutricare-service/internal/pkg/dto/requests"
	"nutricare-service/internal/pkg/dto/responses"
	"nutricare-service/internal/pkg/exceptions"
	"nutricare-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const downloadURLExpiry = 15 * time.Minute

type contentUsecase struct {
	ScreenTextRepository  contracts.ScreenTextRepository
	ContentFileRepository contracts.ContentFileRepository
	ObjectStorage         contracts.ObjectStorage
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

var (
	contentUsecaseInstance contracts.ContentUsecase
	onceContentUsecase     sync.Once
)

func NewContentUsecase(
	screenTextRepository contracts.ScreenTextRepository,
	contentFileRepository contracts.ContentFileRepository,
	objectStorage contracts.ObjectStorage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ContentUsecase {
	onceContentUsecase.Do(func() {
		contentUsecaseInstance = &contentUsecase{
			ScreenTextRepository:  screenTextRepository,
			ContentFileRepository: contentFileRepository,
			ObjectStorage:         objectStorage,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
	})
	return contentUsecaseInstance
}

func (uc *contentUsecase) UpsertScreenText(ctx context.Context, request *requests.UpsertScreenText) (*models.ScreenText, error) {
	now := time.Now()
	text := &models.ScreenText{
		ScreenKey: request.ScreenKey,
		Title:     request.Title,
		Content:   request.Content,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if err := uc.ScreenTextRepository.UpsertScreenText(ctx, text); err != nil {
		return nil, err
	}
	return text, nil
}

func (uc *contentUsecase) FindScreenTextByKey(ctx context.Context, screenKey string) (*models.ScreenText, error) {
	return uc.ScreenTextRepository.FindScreenTextByKey(ctx, screenKey)
}

func (uc *contentUsecase) FindScreenTexts(ctx context.Context) ([]models.ScreenText, error) {
	return uc.ScreenTextRepository.FindScreenTexts(ctx)
}

// UploadFile streams the body to object storage first, then records the
// metadata. A failed metadata write leaves an unreferenced object behind
// rather than metadata pointing at nothing.
func (uc *contentUsecase) UploadFile(ctx context.Context, request *requests.UploadContentFile) (*models.ContentFile, error) {
	maxBytes := uc.InternalConfig.App.ContentMaxUploadSizeInMB * 1024 * 1024
	if request.SizeInBytes > maxBytes {
		return nil, exceptions.ErrFileTooLarge(nil)
	}

	objectKey := utils.GenerateObjectKey(request.Name)
	if err := uc.ObjectStorage.Upload(ctx, objectKey, request.Reader, request.SizeInBytes, request.FileType); err != nil {
		return nil, err
	}

	now := time.Now()
	file := &models.ContentFile{
		Name:        request.Name,
		Description: request.Description,
		FileType:    request.FileType,
		ObjectKey:   objectKey,
		SizeInBytes: request.SizeInBytes,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	fileID, err := uc.ContentFileRepository.CreateFile(ctx, file)
	if err != nil {
		return nil, err
	}
	file.ID = fileID
	return file, nil
}

func (uc *contentUsecase) FindFiles(ctx context.Context) ([]models.ContentFile, error) {
	return uc.ContentFileRepository.FindFiles(ctx)
}

func (uc *contentUsecase) FileDownloadURL(ctx context.Context, fileID string) (*responses.ContentFileDownload, error) {
	file, err := uc.ContentFileRepository.FindFileByID(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, exceptions.ErrFileNotFound(nil)
	}

	url, err := uc.ObjectStorage.PresignedGetURL(ctx, file.ObjectKey, downloadURLExpiry)
	if err != nil {
		return nil, err
	}
	return &responses.ContentFileDownload{
		URL:       url,
		ExpiresIn: int64(downloadURLExpiry.Seconds()),
	}, nil
}

func (uc *contentUsecase) DeleteFile(ctx context.Context, fileID string) error {
	file, err := uc.ContentFileRepository.FindFileByID(ctx, fileID)
	if err != nil {
		return err
	}
	if file == nil {
		return exceptions.ErrFileNotFound(nil)
	}

	if err := uc.ObjectStorage.Remove(ctx, file.ObjectKey); err != nil {
		uc.Log.Warn("failed to remove stored object, metadata will still be deleted",
			zap.String("object_key", file.ObjectKey),
			zap.Error(err),
		)
	}
	return uc.ContentFileRepository.DeleteFileByID(ctx, fileID)
}
