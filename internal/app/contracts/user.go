package contracts

import (
	"context"

	"nutricare-service/internal/app/models"
	"nutricare-service/internal/pkg/dto/requests"
	"nutricare-service/internal/pkg/dto/responses"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (string, error)
	FindUserByID(ctx context.Context, userID string) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUsersByRole(ctx context.Context, role string) ([]models.User, error)
}

type AuthUsecase interface {
	Register(ctx context.Context, request *requests.RegisterPatient) (*responses.RegisterPatient, error)
	Login(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error)
	Logout(ctx context.Context, sessionID string) error
	WhoAmI(ctx context.Context, session *models.Session) (*responses.WhoAmI, error)
}
