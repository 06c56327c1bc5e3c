package notify

import (
	"context"
	"time"

	"vitacare-service/internal/app/contracts"
	"vitacare-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type notificationMessage struct {
	OwnerID  string    `json:"owner_id"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	QueuedAt time.Time `json:"queued_at"`
}

type rabbitMQTransport struct {
	channel   *amqp.Channel
	queueName string
	log       *zap.Logger
}

// NewRabbitMQTransport publishes notification payloads to the delivery queue.
// Actual push/email delivery is a downstream consumer's concern.
func NewRabbitMQTransport(channel *amqp.Channel, queueName string, logger *zap.Logger) contracts.NotificationTransport {
	return &rabbitMQTransport{
		channel:   channel,
		queueName: queueName,
		log:       logger,
	}
}

func (t *rabbitMQTransport) Dispatch(ctx context.Context, ownerID primitive.ObjectID, title, content string) error {
	message := notificationMessage{
		OwnerID:  ownerID.Hex(),
		Title:    title,
		Content:  content,
		QueuedAt: time.Now(),
	}

	body, err := json.Marshal(message)
	if err != nil {
		return exceptions.ErrNotifyPublish(err)
	}

	err = t.channel.PublishWithContext(ctx,
		"", // default exchange
		t.queueName,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		t.log.Error("rabbitMQTransport.Dispatch failed to publish",
			zap.String("owner_id", ownerID.Hex()),
			zap.Error(err),
		)
		return exceptions.ErrNotifyPublish(err)
	}

	return nil
}
