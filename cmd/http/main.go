package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nutricare-service/internal/app/config"
	"nutricare-service/internal/app/delivery/http/middlewares"
	"nutricare-service/internal/app/delivery/http/routers"
	"nutricare-service/internal/app/drivers/database"
	"nutricare-service/internal/app/drivers/logger"
	"nutricare-service/internal/app/drivers/messaging"
	"nutricare-service/internal/app/drivers/storage"
	"nutricare-service/internal/app/services/core/auth"
	"nutricare-service/internal/app/services/core/checkins"
	"nutricare-service/internal/app/services/core/contents"
	"nutricare-service/internal/app/services/core/messages"
	nextSteps "nutricare-service/internal/app/services/core/nextsteps"
	"nutricare-service/internal/app/services/core/patients"
	"nutricare-service/internal/app/services/core/planning"
	"nutricare-service/internal/app/services/core/responses"
	"nutricare-service/internal/app/services/core/situations"
	"nutricare-service/internal/app/services/core/templates"
	"nutricare-service/internal/app/services/shared/notifier"
	"nutricare-service/internal/app/services/shared/redis"
	sharedStorage "nutricare-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("error loading location", zap.Error(err))
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed to start", zap.Error(err))
		}
	}()
	log.Info("server started", zap.String("port", internalConfig.App.Port))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("waiting for pending requests to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Error("error closing drivers", zap.Error(err))
	}

	log.Info("server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	objectStorage := sharedStorage.NewMinioStorage(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName)
	activityNotifier, err := notifier.NewActivityNotifier(bootstrap.RabbitMQ, bootstrap.InternalConfig.App.ActivityQueue, bootstrap.Logger)
	if err != nil {
		bootstrap.Logger.Fatal("failed to initialize activity notifier", zap.Error(err))
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, redisRepository, bootstrap.InternalConfig)

	// Auth
	userMongoRepository := auth.NewUserMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	authUsecase := auth.NewAuthUsecase(userMongoRepository, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase)

	// Form templates
	formTemplateMongoRepository := templates.NewFormTemplateMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	formResponseMongoRepository := responses.NewFormResponseMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	formTemplateUsecase := templates.NewFormTemplateUsecase(formTemplateMongoRepository, formResponseMongoRepository, bootstrap.Logger)
	formTemplateController := templates.NewFormTemplateController(bootstrap.Logger, formTemplateUsecase)

	// Form responses
	formResponseUsecase := responses.NewFormResponseUsecase(
		formTemplateMongoRepository,
		formResponseMongoRepository,
		userMongoRepository,
		activityNotifier,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	formResponseController := responses.NewFormResponseController(bootstrap.Logger, formResponseUsecase)

	// Patients
	patientUsecase := patients.NewPatientUsecase(userMongoRepository)
	patientController := patients.NewPatientController(bootstrap.Logger, patientUsecase)

	// Doctor messages
	doctorMessageMongoRepository := messages.NewDoctorMessageMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	doctorMessageUsecase := messages.NewDoctorMessageUsecase(doctorMessageMongoRepository)
	doctorMessageController := messages.NewDoctorMessageController(bootstrap.Logger, doctorMessageUsecase)

	// Weekly planning
	weeklyPlanMongoRepository := planning.NewWeeklyPlanMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	weeklyPlanUsecase := planning.NewWeeklyPlanUsecase(weeklyPlanMongoRepository)
	weeklyPlanController := planning.NewWeeklyPlanController(bootstrap.Logger, weeklyPlanUsecase)

	// Next steps
	nextStepMongoRepository := nextSteps.NewNextStepMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	nextStepUsecase := nextSteps.NewNextStepUsecase(nextStepMongoRepository, formTemplateMongoRepository, formResponseMongoRepository)
	nextStepController := nextSteps.NewNextStepController(bootstrap.Logger, nextStepUsecase)

	// Situations
	situationMongoRepository := situations.NewSituationMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	situationUsecase := situations.NewSituationUsecase(situationMongoRepository)
	situationController := situations.NewSituationController(bootstrap.Logger, situationUsecase)

	// Contents
	screenTextMongoRepository := contents.NewScreenTextMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	contentFileMongoRepository := contents.NewContentFileMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	contentUsecase := contents.NewContentUsecase(
		screenTextMongoRepository,
		contentFileMongoRepository,
		objectStorage,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	contentController := contents.NewContentController(bootstrap.Logger, contentUsecase, bootstrap.InternalConfig)

	// Check-ins
	checkinMongoRepository := checkins.NewCheckinMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	checkinUsecase := checkins.NewCheckinUsecase(checkinMongoRepository, activityNotifier, bootstrap.Logger)
	checkinController := checkins.NewCheckinController(bootstrap.Logger, checkinUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		formTemplateController,
		formResponseController,
		patientController,
		doctorMessageController,
		weeklyPlanController,
		nextStepController,
		situationController,
		contentController,
		checkinController,
	)
}
