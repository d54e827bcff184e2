package patients

import (
	"context"
	"sync"

	"nutricare-service/internal/app/contracts"
	"nutricare-service/internal/app/models"
	"nutricare-service/internal/pkg/constvars"
	"nutricare-service/internal/pkg/exceptions"
)

type patientUsecase struct {
	UserRepository contracts.UserRepository
}

var (
	patientUsecaseInstance contracts.PatientUsecase
	oncePatientUsecase     sync.Once
)

func NewPatientUsecase(userRepository contracts.UserRepository) contracts.PatientUsecase {
	oncePatientUsecase.Do(func() {
		patientUsecaseInstance = &patientUsecase{UserRepository: userRepository}
	})
	return patientUsecaseInstance
}

func (uc *patientUsecase) FindPatients(ctx context.Context) ([]models.User, error) {
	return uc.UserRepository.FindUsersByRole(ctx, constvars.RolePatient)
}

func (uc *patientUsecase) FindPatientByID(ctx context.Context, patientID string) (*models.User, error) {
	patient, err := uc.UserRepository.FindUserByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil || patient.Role != constvars.RolePatient {
		return nil, exceptions.ErrPatientNotFound(nil)
	}
	return patient, nil
}
