package client

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/relicvault/staking-ledger-service/internal/config"
)

type RabbitMqClient struct {
	connection *amqp.Connection
	channel    *amqp.Channel
	queueName  string
}

func NewRabbitMqClient(cfg *config.QueueConfig, queueName string) (*RabbitMqClient, error) {
	amqpURI := fmt.Sprintf("amqp://%s:%s@%s", cfg.QueueUser, cfg.QueuePassword, cfg.Url)
	conn, err := amqp.Dial(amqpURI)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	// Declaring a queue is idempotent, it is only created if it does not
	// exist yet.
	_, err = ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	)
	if err != nil {
		return nil, err
	}

	return &RabbitMqClient{
		connection: conn,
		channel:    ch,
		queueName:  queueName,
	}, nil
}

func (c *RabbitMqClient) SendMessage(ctx context.Context, messageBody string) error {
	return c.channel.PublishWithContext(
		ctx,
		"",          // exchange
		c.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         []byte(messageBody),
		},
	)
}

func (c *RabbitMqClient) GetQueueName() string {
	return c.queueName
}

func (c *RabbitMqClient) Ping(ctx context.Context) error {
	if c.connection.IsClosed() {
		return fmt.Errorf("rabbitmq connection for queue %s is closed", c.queueName)
	}
	if c.channel.IsClosed() {
		return fmt.Errorf("rabbitmq channel for queue %s is closed", c.queueName)
	}
	return nil
}

func (c *RabbitMqClient) Stop() error {
	if err := c.channel.Close(); err != nil {
		return err
	}
	return c.connection.Close()
}
