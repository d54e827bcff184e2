package contracts

import (
	"context"

	"nutricare-service/internal/app/models"
)

type ActivityNotifier interface {
	Publish(ctx context.Context, event *models.ActivityEvent) error
}
