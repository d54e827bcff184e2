package notifier

import (
	"context"

	"nutricare-service/internal/app/contracts"
	"nutricare-service/internal/app/models"
	"nutricare-service/internal/pkg/constvars"
	"nutricare-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// activityNotifier publishes patient activity events to a durable queue.
// Publishing is throttled so a burst of submissions cannot flood the broker;
// over-limit events are dropped with a warning, never blocked on.
type activityNotifier struct {
	channel   *amqp.Channel
	queueName string
	limiter   *rate.Limiter
	log       *zap.Logger
}

func NewActivityNotifier(conn *amqp.Connection, queueName string, log *zap.Logger) (contracts.ActivityNotifier, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, exceptions.ErrQueuePublish(err)
	}
	_, err = channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		return nil, exceptions.ErrQueuePublish(err)
	}
	return &activityNotifier{
		channel:   channel,
		queueName: queueName,
		limiter:   rate.NewLimiter(rate.Limit(20), 50),
		log:       log,
	}, nil
}

func (n *activityNotifier) Publish(ctx context.Context, event *models.ActivityEvent) error {
	if !n.limiter.Allow() {
		n.log.Warn("activity event dropped by publish throttle",
			zap.String("event_type", event.EventType),
			zap.String(constvars.LoggingPatientIDKey, event.PatientID),
		)
		return nil
	}

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = n.channel.PublishWithContext(ctx, "", n.queueName, false, false, amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		return exceptions.ErrQueuePublish(err)
	}
	return nil
}
