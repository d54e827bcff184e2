package config

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	MongoDB        *mongo.Client
	Redis          *redis.Client
	RabbitMQ       *amqp091.Connection
	Minio          *minio.Client
	Logger         *zap.Logger
	DriverConfig   *DriverConfig
	InternalConfig *InternalConfig
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if err := b.MongoDB.Disconnect(ctx); err != nil {
		return err
	}
	log.Println("Successfully closing MongoDB")

	if err := b.Redis.Close(); err != nil {
		return err
	}
	log.Println("Successfully closing Redis")

	if err := b.RabbitMQ.Close(); err != nil {
		return err
	}
	log.Println("Successfully closing RabbitMQ")

	if err := b.Logger.Sync(); err != nil {
		return err
	}
	log.Println("Successfully closing Logger")

	return nil
}
