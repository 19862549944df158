package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"

	"github.com/relicvault/staking-ledger-service/internal/config"
	"github.com/relicvault/staking-ledger-service/internal/observability/metrics"
	"github.com/relicvault/staking-ledger-service/internal/queue/client"
)

// UnpublishedEventSink parks events whose publish exhausted its retries so
// they can be replayed out of band.
type UnpublishedEventSink interface {
	SaveUnpublishedEvent(ctx context.Context, eventID, queueName, messageBody string) error
}

type Queues struct {
	AssetStakedQueueClient       client.QueueClient
	AssetUnstakedQueueClient     client.QueueClient
	AssetWithdrawnQueueClient    client.QueueClient
	RewardsClaimedQueueClient    client.QueueClient
	RewardRateUpdatedQueueClient client.QueueClient

	sink           UnpublishedEventSink
	publishTimeout time.Duration
	maxRetries     uint
}

func New(cfg *config.QueueConfig, sink UnpublishedEventSink) *Queues {
	queues := &Queues{
		sink:           sink,
		publishTimeout: cfg.PublishTimeout,
		maxRetries:     cfg.MaxRetries,
	}
	queues.AssetStakedQueueClient = mustNewQueueClient(cfg, client.AssetStakedQueueName)
	queues.AssetUnstakedQueueClient = mustNewQueueClient(cfg, client.AssetUnstakedQueueName)
	queues.AssetWithdrawnQueueClient = mustNewQueueClient(cfg, client.AssetWithdrawnQueueName)
	queues.RewardsClaimedQueueClient = mustNewQueueClient(cfg, client.RewardsClaimedQueueName)
	queues.RewardRateUpdatedQueueClient = mustNewQueueClient(cfg, client.RewardRateUpdatedQueueName)
	return queues
}

func mustNewQueueClient(cfg *config.QueueConfig, queueName string) client.QueueClient {
	queueClient, err := client.NewQueueClient(cfg, queueName)
	if err != nil {
		log.Fatal().Err(err).Msgf("error while creating queue client for %s", queueName)
	}
	return queueClient
}

func (q *Queues) PublishAssetStakedEvent(ctx context.Context, event client.AssetStakedEvent) error {
	return q.publishEvent(ctx, q.AssetStakedQueueClient, event.EventID, event)
}

func (q *Queues) PublishAssetUnstakedEvent(ctx context.Context, event client.AssetUnstakedEvent) error {
	return q.publishEvent(ctx, q.AssetUnstakedQueueClient, event.EventID, event)
}

func (q *Queues) PublishAssetWithdrawnEvent(ctx context.Context, event client.AssetWithdrawnEvent) error {
	return q.publishEvent(ctx, q.AssetWithdrawnQueueClient, event.EventID, event)
}

func (q *Queues) PublishRewardsClaimedEvent(ctx context.Context, event client.RewardsClaimedEvent) error {
	return q.publishEvent(ctx, q.RewardsClaimedQueueClient, event.EventID, event)
}

func (q *Queues) PublishRewardRateUpdatedEvent(ctx context.Context, event client.RewardRateUpdatedEvent) error {
	return q.publishEvent(ctx, q.RewardRateUpdatedQueueClient, event.EventID, event)
}

// publishEvent sends the event with retries. When every attempt failed the
// event is parked in the unpublished event sink for the replay script, the
// original publish error is still returned so callers can log it.
func (q *Queues) publishEvent(
	ctx context.Context, queueClient client.QueueClient, eventID string, event interface{},
) error {
	messageBody, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event for queue %s: %w", queueClient.GetQueueName(), err)
	}

	publishCtx, cancel := context.WithTimeout(ctx, q.publishTimeout)
	defer cancel()

	publishErr := retry.Do(
		func() error {
			return queueClient.SendMessage(publishCtx, string(messageBody))
		},
		retry.Attempts(q.maxRetries),
		retry.Context(publishCtx),
		retry.LastErrorOnly(true),
	)
	if publishErr == nil {
		return nil
	}

	metrics.RecordQueuePublishFailure(queueClient.GetQueueName())
	if sinkErr := q.sink.SaveUnpublishedEvent(
		ctx, eventID, queueClient.GetQueueName(), string(messageBody),
	); sinkErr != nil {
		log.Ctx(ctx).Error().Err(sinkErr).
			Str("queueName", queueClient.GetQueueName()).
			Str("eventId", eventID).
			Msg("failed to park unpublished event, the event is lost")
	}
	return publishErr
}

// PublishRawMessage pushes an already serialized message to the named queue.
// Used by the replay script for parked events.
func (q *Queues) PublishRawMessage(ctx context.Context, queueName, messageBody string) error {
	queueClient, err := q.clientForQueue(queueName)
	if err != nil {
		return err
	}

	publishCtx, cancel := context.WithTimeout(ctx, q.publishTimeout)
	defer cancel()
	return queueClient.SendMessage(publishCtx, messageBody)
}

func (q *Queues) clientForQueue(queueName string) (client.QueueClient, error) {
	for _, queueClient := range q.allClients() {
		if queueClient.GetQueueName() == queueName {
			return queueClient, nil
		}
	}
	return nil, fmt.Errorf("unknown queue name: %s", queueName)
}

func (q *Queues) allClients() []client.QueueClient {
	return []client.QueueClient{
		q.AssetStakedQueueClient,
		q.AssetUnstakedQueueClient,
		q.AssetWithdrawnQueueClient,
		q.RewardsClaimedQueueClient,
		q.RewardRateUpdatedQueueClient,
	}
}

func (q *Queues) IsConnectionHealthy() error {
	ctx, cancel := context.WithTimeout(context.Background(), q.publishTimeout)
	defer cancel()

	for _, queueClient := range q.allClients() {
		if err := queueClient.Ping(ctx); err != nil {
			return fmt.Errorf("queue %s is not healthy: %w", queueClient.GetQueueName(), err)
		}
	}
	return nil
}

// Stop closes all queue connections.
func (q *Queues) Stop() {
	for _, queueClient := range q.allClients() {
		if err := queueClient.Stop(); err != nil {
			log.Error().Err(err).Str("queueName", queueClient.GetQueueName()).Msg("error while stopping queue client")
		}
	}
}
