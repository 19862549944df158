package rewardledger

import (
	"context"
	"net/http"

	"github.com/relicvault/staking-ledger-service/internal/types"
)

type RewardLedgerClientInterface interface {
	GetBaseURL() string
	GetDefaultRequestTimeout() int
	GetHttpClient() *http.Client
	// Transfer disburses the given reward amount to the address. A rejected
	// transfer is an error, the ledger never treats disbursement as
	// fire-and-forget.
	Transfer(ctx context.Context, toAddress string, amount uint64) *types.Error
}
