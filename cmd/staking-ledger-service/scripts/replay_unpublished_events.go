package scripts

import (
	"context"

	"github.com/relicvault/staking-ledger-service/internal/services"
)

// ReplayUnpublishedEvents drains events that were parked after publish
// failures back onto their queues.
func ReplayUnpublishedEvents(ctx context.Context, services *services.Services) error {
	return services.ReplayUnpublishedEvents(ctx)
}
