package assetregistry

import (
	"context"
	"net/http"

	"github.com/relicvault/staking-ledger-service/internal/types"
)

type AssetRegistryClientInterface interface {
	GetBaseURL() string
	GetDefaultRequestTimeout() int
	GetHttpClient() *http.Client
	// OwnerOf returns the checksummed address currently holding the asset.
	OwnerOf(ctx context.Context, assetID uint64) (string, *types.Error)
	// TransferCustody moves the asset between the staker and the escrow
	// vault. The registry rejects transfers not initiated by the holder.
	TransferCustody(ctx context.Context, fromAddress, toAddress string, assetID uint64) *types.Error
}
