package auth

import (
	"context"
	"sync"
	"time"

	"nutricare-service/internal/app/config"
	"nutricare-service/internal/app/contracts"
	"nutricare-service/internal/app/models"
	"nutricare-service/internal/pkg/constvars"
	"nutricare-service/internal/pkg/dto/requests"
	"nutricare-service/internal/pkg/dto/responses"
	"nutricare-service/internal/pkg/exceptions"
	"nutricare-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository  contracts.UserRepository
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			UserRepository:  userRepository,
			RedisRepository: redisRepository,
			InternalConfig:  internalConfig,
			Log:             logger,
		}
	})
	return authUsecaseInstance
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.RegisterPatient) (*responses.RegisterPatient, error) {
	existing, err := uc.UserRepository.FindUserByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := time.Now()
	user := &models.User{
		Email:    request.Email,
		Password: hashedPassword,
		FullName: request.FullName,
		Role:     constvars.RolePatient,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	return &responses.RegisterPatient{UserID: userID}, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	user, err := uc.UserRepository.FindUserByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	sessionExpiry := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	session := &models.Session{
		SessionID: utils.GenerateSessionID(),
		UserID:    user.ID,
		Role:      user.Role,
		ExpiresAt: time.Now().Add(sessionExpiry),
	}
	if err := uc.RedisRepository.CreateSession(ctx, session, sessionExpiry); err != nil {
		return nil, err
	}

	token, err := utils.GenerateJWT(session.SessionID, uc.InternalConfig.JWT.Secret, sessionExpiry)
	if err != nil {
		return nil, err
	}

	return &responses.LoginUser{Token: token}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	return uc.RedisRepository.DeleteSession(ctx, sessionID)
}

func (uc *authUsecase) WhoAmI(ctx context.Context, session *models.Session) (*responses.WhoAmI, error) {
	user, err := uc.UserRepository.FindUserByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrSessionInvalid(nil)
	}

	return &responses.WhoAmI{
		UserID:   user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     user.Role,
	}, nil
}
