package services

import (
	"context"

	"github.com/rs/zerolog/log"
)

// ReplayUnpublishedEvents drains the parked events back onto their queues,
// oldest first. An event is deleted only after its publish succeeds, a
// failed publish leaves it parked for the next run.
func (s *Services) ReplayUnpublishedEvents(ctx context.Context) error {
	events, err := s.DbClient.FindUnpublishedEvents(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to fetch unpublished events")
		return err
	}
	if len(events) == 0 {
		log.Ctx(ctx).Info().Msg("no unpublished events to replay")
		return nil
	}

	replayed := 0
	for _, event := range events {
		if err := s.Queues.PublishRawMessage(ctx, event.QueueName, event.MessageBody); err != nil {
			log.Ctx(ctx).Error().Err(err).
				Str("eventId", event.EventID).
				Str("queueName", event.QueueName).
				Msg("failed to replay unpublished event")
			continue
		}
		if err := s.DbClient.DeleteUnpublishedEvent(ctx, event.EventID); err != nil {
			log.Ctx(ctx).Error().Err(err).
				Str("eventId", event.EventID).
				Msg("replayed event could not be deleted, it may be published twice")
			continue
		}
		replayed++
	}

	log.Ctx(ctx).Info().
		Int("found", len(events)).
		Int("replayed", replayed).
		Msg("unpublished event replay finished")
	return nil
}
