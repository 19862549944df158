package client

import (
	"context"
	"fmt"

	"github.com/relicvault/staking-ledger-service/internal/config"
)

// A common interface for queue clients regardless if it's a SQS, RabbitMQ, etc.
type QueueClient interface {
	SendMessage(ctx context.Context, messageBody string) error
	GetQueueName() string
	Ping(ctx context.Context) error
	Stop() error
}

func NewQueueClient(cfg *config.QueueConfig, queueName string) (QueueClient, error) {
	switch cfg.Type {
	case config.QueueTypeRabbitMQ:
		return NewRabbitMqClient(cfg, queueName)
	case config.QueueTypeSQS:
		return NewSQSClient(cfg, queueName), nil
	default:
		return nil, fmt.Errorf("unsupported queue type: %s", cfg.Type)
	}
}
