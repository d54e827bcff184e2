package checkins

import (
	"context"
	"sync"
	"time"

	"nutricare-service/internal/app/contracts"
	"nutricare-service/internal/app/models"
	"nutricare-service/internal/pkg/constvars"
	"nutricare-service/internal/pkg/dto/requests"

	"go.uber.org/zap"
)

type checkinUsecase struct {
	CheckinRepository contracts.CheckinRepository
	ActivityNotifier  contracts.ActivityNotifier
	Log               *zap.Logger
}

var (
	checkinUsecaseInstance contracts.CheckinUsecase
	onceCheckinUsecase     sync.Once
)

func NewCheckinUsecase(
	checkinRepository contracts.CheckinRepository,
	activityNotifier contracts.ActivityNotifier,
	logger *zap.Logger,
) contracts.CheckinUsecase {
	onceCheckinUsecase.Do(func() {
		checkinUsecaseInstance = &checkinUsecase{
			CheckinRepository: checkinRepository,
			ActivityNotifier:  activityNotifier,
			Log:               logger,
		}
	})
	return checkinUsecaseInstance
}

// SubmitCheckin appends a new weekly self-report, it never overwrites an
// earlier one. The clinician queue hears about every submission.
func (uc *checkinUsecase) SubmitCheckin(ctx context.Context, request *requests.CreateCheckin) (*models.Checkin, error) {
	checkin := &models.Checkin{
		PatientID:         request.PatientID,
		WeekRating:        request.WeekRating,
		DifficultMoment:   request.DifficultMoment,
		AnxietyLevel:      request.AnxietyLevel,
		PlanDeviations:    request.PlanDeviations,
		AdjustmentsNeeded: request.AdjustmentsNeeded,
		CreatedAt:         time.Now(),
	}

	checkinID, err := uc.CheckinRepository.CreateCheckin(ctx, checkin)
	if err != nil {
		return nil, err
	}
	checkin.ID = checkinID

	event := &models.ActivityEvent{
		EventType:  constvars.ActivityEventCheckinSubmitted,
		PatientID:  request.PatientID,
		Reference:  checkinID,
		OccurredAt: checkin.CreatedAt,
	}
	if err := uc.ActivityNotifier.Publish(ctx, event); err != nil {
		uc.Log.Warn("failed to publish check-in activity",
			zap.String(constvars.LoggingPatientIDKey, request.PatientID),
			zap.Error(err),
		)
	}

	return checkin, nil
}

func (uc *checkinUsecase) FindCheckinsByPatientID(ctx context.Context, patientID string) ([]models.Checkin, error) {
	return uc.CheckinRepository.FindCheckinsByPatientID(ctx, patientID)
}

func (uc *checkinUsecase) FindCheckins(ctx context.Context) ([]models.Checkin, error) {
	return uc.CheckinRepository.FindCheckins(ctx)
}
