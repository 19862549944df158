package config

import (
	"fmt"
	"time"
)

const (
	QueueTypeRabbitMQ = "rabbitmq"
	QueueTypeSQS      = "sqs"
)

type QueueConfig struct {
	Type           string        `mapstructure:"type"`
	Url            string        `mapstructure:"url"`
	QueueUser      string        `mapstructure:"queue-user"`
	QueuePassword  string        `mapstructure:"queue-password"`
	Region         string        `mapstructure:"region"`
	PublishTimeout time.Duration `mapstructure:"publish-timeout"`
	MaxRetries     uint          `mapstructure:"max-retries"`
}

func (cfg *QueueConfig) Validate() error {
	switch cfg.Type {
	case QueueTypeRabbitMQ:
		if cfg.Url == "" {
			return fmt.Errorf("missing queue url")
		}
		if cfg.QueueUser == "" {
			return fmt.Errorf("missing queue user")
		}
		if cfg.QueuePassword == "" {
			return fmt.Errorf("missing queue password")
		}
	case QueueTypeSQS:
		if cfg.Region == "" {
			return fmt.Errorf("missing queue region")
		}
		if cfg.Url == "" {
			return fmt.Errorf("missing queue url")
		}
	default:
		return fmt.Errorf("unsupported queue type: %s", cfg.Type)
	}

	if cfg.PublishTimeout <= 0 {
		return fmt.Errorf("publish timeout must be positive")
	}

	if cfg.MaxRetries == 0 {
		return fmt.Errorf("queue max retries must be positive")
	}

	return nil
}
