package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/relicvault/staking-ledger-service/internal/clients"
	"github.com/relicvault/staking-ledger-service/internal/clock"
	"github.com/relicvault/staking-ledger-service/internal/config"
	"github.com/relicvault/staking-ledger-service/internal/db"
	"github.com/relicvault/staking-ledger-service/internal/ledger"
	"github.com/relicvault/staking-ledger-service/internal/queue"
	"github.com/relicvault/staking-ledger-service/internal/types"
)

// Service layer contains the business logic and is used to interact with
// the database and other external clients (if any).
type Services struct {
	DbClient db.DBClient
	Clients  *clients.Clients
	Queues   *queue.Queues
	Ledger   *ledger.Ledger
	cfg      *config.Config
}

func New(ctx context.Context, cfg *config.Config) (*Services, error) {
	dbClient, err := db.New(ctx, cfg.Db)
	if err != nil {
		log.Ctx(ctx).Fatal().Err(err).Msg("error while creating db client")
		return nil, err
	}

	params, err := bootstrapLedgerParams(ctx, dbClient, &cfg.Ledger)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("error while bootstrapping ledger params")
		return nil, err
	}

	ticks := clock.NewIntervalTickSource(cfg.Ledger.GenesisTime, cfg.Ledger.TickInterval)
	clientsPack := clients.New(cfg)
	queues := queue.New(&cfg.Queue, dbClient)
	stakingLedger := ledger.New(
		&cfg.Ledger, dbClient, clientsPack.AssetRegistry, clientsPack.RewardLedger, ticks, params,
	)

	return &Services{
		DbClient: dbClient,
		Clients:  clientsPack,
		Queues:   queues,
		Ledger:   stakingLedger,
		cfg:      cfg,
	}, nil
}

// DoHealthCheck checks the health of the services by ping the database.
func (s *Services) DoHealthCheck(ctx context.Context) error {
	return s.DbClient.Ping(ctx)
}

// mapLedgerError classifies a ledger error into an API error. Rejections
// the caller can act on are logged at warn, everything unexpected at error.
func mapLedgerError(ctx context.Context, operation string, err error) *types.Error {
	switch {
	case errors.Is(err, ledger.ErrEmptyBatch),
		errors.Is(err, ledger.ErrBatchTooLarge),
		errors.Is(err, ledger.ErrDuplicateAssetIDs),
		errors.Is(err, ledger.ErrInvalidRewardRate):
		log.Ctx(ctx).Warn().Err(err).Str("operation", operation).Msg("rejected invalid request")
		return types.NewError(http.StatusBadRequest, types.ValidationError, err)

	case errors.Is(err, ledger.ErrNotOwner),
		errors.Is(err, ledger.ErrNotAdmin):
		log.Ctx(ctx).Warn().Err(err).Str("operation", operation).Msg("rejected unauthorized request")
		return types.NewError(http.StatusForbidden, types.Unauthorized, err)

	case errors.Is(err, ledger.ErrAssetNotFound):
		log.Ctx(ctx).Warn().Err(err).Str("operation", operation).Msg("asset not found in the ledger")
		return types.NewError(http.StatusNotFound, types.NotFound, err)

	case errors.Is(err, ledger.ErrStakingPaused),
		errors.Is(err, ledger.ErrAlreadyStaked),
		errors.Is(err, ledger.ErrAlreadyUnstaked),
		errors.Is(err, ledger.ErrNoPendingAssets),
		errors.Is(err, ledger.ErrUnbondingNotElapsed),
		errors.Is(err, ledger.ErrNoUnstakedAssets),
		errors.Is(err, ledger.ErrNotWithdrawn),
		errors.Is(err, ledger.ErrSettlementNotElapsed),
		errors.Is(err, ledger.ErrNothingToClaim):
		log.Ctx(ctx).Warn().Err(err).Str("operation", operation).Msg("operation precondition not met")
		return types.NewError(http.StatusConflict, types.PreconditionNotMet, err)

	case errors.Is(err, ledger.ErrCustodyTransferDenied),
		errors.Is(err, ledger.ErrRewardTransferFailed):
		log.Ctx(ctx).Error().Err(err).Str("operation", operation).Msg("external collaborator rejected the operation")
		return types.NewError(http.StatusBadGateway, types.ExternalCallFailure, err)

	default:
		log.Ctx(ctx).Error().Err(err).Str("operation", operation).Msg("ledger operation failed")
		return types.NewInternalServiceError(err)
	}
}
