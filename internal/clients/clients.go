package clients

import (
	"github.com/relicvault/staking-ledger-service/internal/clients/assetregistry"
	"github.com/relicvault/staking-ledger-service/internal/clients/rewardledger"
	"github.com/relicvault/staking-ledger-service/internal/config"
)

type Clients struct {
	AssetRegistry assetregistry.AssetRegistryClientInterface
	RewardLedger  rewardledger.RewardLedgerClientInterface
}

func New(cfg *config.Config) *Clients {
	assetRegistryClient := assetregistry.NewAssetRegistryClient(&cfg.AssetRegistry)
	rewardLedgerClient := rewardledger.NewRewardLedgerClient(&cfg.RewardLedger)

	return &Clients{
		AssetRegistry: assetRegistryClient,
		RewardLedger:  rewardLedgerClient,
	}
}
