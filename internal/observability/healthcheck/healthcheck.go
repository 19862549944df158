package healthcheck

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/relicvault/staking-ledger-service/internal/queue"
)

const defaultIntervalSeconds = 60

var logger zerolog.Logger = log.Logger

func SetLogger(customLogger zerolog.Logger) {
	logger = customLogger
}

// StartHealthCheckCron pings the queue connections on an interval and kills
// the process when they are gone. Publishing is on the hot path of every
// write operation, so a service that cannot publish should not keep
// accepting requests.
func StartHealthCheckCron(ctx context.Context, queues *queue.Queues, intervalSeconds int) error {
	if intervalSeconds <= 0 {
		intervalSeconds = defaultIntervalSeconds
	}

	c := cron.New()
	_, err := c.AddFunc(fmt.Sprintf("@every %ds", intervalSeconds), func() {
		if err := queues.IsConnectionHealthy(); err != nil {
			logger.Fatal().Err(err).Msg("queue connection health check failed, terminating")
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	logger.Info().Int("intervalSeconds", intervalSeconds).Msg("health check cron started")

	go func() {
		<-ctx.Done()
		logger.Info().Msg("stopping health check cron")
		c.Stop()
	}()

	return nil
}
