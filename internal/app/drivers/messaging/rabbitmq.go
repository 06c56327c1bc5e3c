package messaging

import (
	"fmt"
	"log"

	"vitacare-service/internal/app/config"

	amqp "github.com/rabbitmq/amqp091-go"
)

func NewRabbitMQChannel(driverConfig *config.DriverConfig) (*amqp.Connection, *amqp.Channel) {
	url := fmt.Sprintf("amqp://%s:%s@%s:%s/",
		driverConfig.RabbitMQ.Username,
		driverConfig.RabbitMQ.Password,
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)

	conn, err := amqp.Dial(url)
	if err != nil {
		log.Fatalf("Could not connect to RabbitMQ: %v", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		log.Fatalf("Could not open RabbitMQ channel: %v", err)
	}

	_, err = channel.QueueDeclare(
		driverConfig.RabbitMQ.NotificationQueue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		log.Fatalf("Could not declare notification queue: %v", err)
	}

	return conn, channel
}
