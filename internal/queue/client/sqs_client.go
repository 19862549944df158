package client

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sqs"

	"github.com/relicvault/staking-ledger-service/internal/config"
)

type SQSClient struct {
	client    *sqs.SQS
	queueURL  string
	queueName string
}

func NewSQSClient(cfg *config.QueueConfig, queueName string) *SQSClient {
	sess := session.Must(session.NewSession(&aws.Config{
		Region: aws.String(cfg.Region),
	}))
	client := sqs.New(sess)

	return &SQSClient{
		client:    client,
		queueURL:  fmt.Sprintf("%s/%s", cfg.Url, queueName),
		queueName: queueName,
	}
}

func (c *SQSClient) SendMessage(ctx context.Context, messageBody string) error {
	_, err := c.client.SendMessageWithContext(ctx, &sqs.SendMessageInput{
		QueueUrl:    &c.queueURL,
		MessageBody: aws.String(messageBody),
	})
	return err
}

func (c *SQSClient) GetQueueName() string {
	return c.queueName
}

func (c *SQSClient) Ping(ctx context.Context) error {
	_, err := c.client.GetQueueAttributesWithContext(ctx, &sqs.GetQueueAttributesInput{
		QueueUrl: &c.queueURL,
	})
	return err
}

func (c *SQSClient) Stop() error {
	return nil
}
