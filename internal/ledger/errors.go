package ledger

import "errors"

// Sentinel errors returned by ledger operations. Callers classify them with
// errors.Is, per-asset context is wrapped around them where it exists.
var (
	// Validation failures, the request itself is malformed.
	ErrEmptyBatch        = errors.New("batch contains no asset ids")
	ErrBatchTooLarge     = errors.New("batch exceeds the maximum size")
	ErrDuplicateAssetIDs = errors.New("batch contains duplicate asset ids")
	ErrInvalidRewardRate = errors.New("reward rate must be a positive integer")

	// Authorization failures.
	ErrNotOwner = errors.New("caller is not the owner of the asset")
	ErrNotAdmin = errors.New("caller is not the ledger admin")

	// Precondition failures, the caller retries once state has moved on.
	ErrStakingPaused        = errors.New("staking intake is paused")
	ErrAlreadyStaked        = errors.New("asset is already staked")
	ErrAlreadyUnstaked      = errors.New("asset is already unstaked")
	ErrNoPendingAssets      = errors.New("no assets are pending withdrawal")
	ErrUnbondingNotElapsed  = errors.New("unbonding window has not elapsed")
	ErrNoUnstakedAssets     = errors.New("no unstaked assets to settle")
	ErrNotWithdrawn         = errors.New("asset has not been withdrawn")
	ErrSettlementNotElapsed = errors.New("settlement window has not elapsed")
	ErrNothingToClaim       = errors.New("computed reward is zero")

	// Lookup failure.
	ErrAssetNotFound = errors.New("asset is not under custody")

	// External collaborator failures, the whole operation is rolled back.
	ErrCustodyTransferDenied = errors.New("custody transfer denied by the asset registry")
	ErrRewardTransferFailed  = errors.New("reward transfer rejected by the reward ledger")
)
