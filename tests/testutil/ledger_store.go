package testutil

import (
	"context"
	"fmt"
	"sort"

	"github.com/relicvault/staking-ledger-service/internal/db"
	"github.com/relicvault/staking-ledger-service/internal/db/model"
)

// LedgerStore is an in-memory stand-in for the mongo backed db.DBClient.
// It mirrors the guarded-update and all-or-nothing semantics of the real
// implementation: validation happens before any mutation, callbacks run
// before the "commit", and a callback error leaves the store untouched.
// The Fail*Commit fields inject a commit failure after the callback has
// already run, which is how the compensation paths are exercised.
type LedgerStore struct {
	Assets      map[uint64]model.StakedAssetDocument
	Pending     map[string][]uint64
	Params      *model.LedgerParamsDocument
	Unpublished map[string]model.UnpublishedEventDocument

	FailStakeCommit    error
	FailWithdrawCommit error
	FailSettleCommit   error
}

var _ db.DBClient = (*LedgerStore)(nil)

func NewLedgerStore() *LedgerStore {
	return &LedgerStore{
		Assets:      make(map[uint64]model.StakedAssetDocument),
		Pending:     make(map[string][]uint64),
		Unpublished: make(map[string]model.UnpublishedEventDocument),
	}
}

func (s *LedgerStore) Ping(ctx context.Context) error {
	return nil
}

func (s *LedgerStore) InitLedgerParams(ctx context.Context, params *model.LedgerParamsDocument) error {
	if s.Params != nil {
		return &db.DuplicateKeyError{Key: params.Id, Message: "ledger params already initialized"}
	}
	copied := *params
	s.Params = &copied
	return nil
}

func (s *LedgerStore) GetLedgerParams(ctx context.Context) (*model.LedgerParamsDocument, error) {
	if s.Params == nil {
		return nil, &db.NotFoundError{Key: model.LedgerParamsDocumentID, Message: "ledger params not initialized"}
	}
	copied := *s.Params
	return &copied, nil
}

func (s *LedgerStore) UpdateRewardRate(ctx context.Context, currentRate, newRate uint64) error {
	if s.Params == nil || s.Params.RewardRatePerTick != currentRate {
		return &db.NotFoundError{
			Key:     model.LedgerParamsDocumentID,
			Message: "ledger params missing or reward rate changed concurrently",
		}
	}
	s.Params.RewardRatePerTick = newRate
	return nil
}

func (s *LedgerStore) SetPaused(ctx context.Context, paused bool) error {
	if s.Params == nil {
		return &db.NotFoundError{Key: model.LedgerParamsDocumentID, Message: "ledger params not initialized"}
	}
	s.Params.Paused = paused
	return nil
}

func (s *LedgerStore) SaveStakedAssets(
	ctx context.Context, stakerAddress string, assetIDs []uint64, stakedAtTick uint64,
	escrow func(ctx context.Context) error,
) error {
	for _, assetID := range assetIDs {
		if _, exists := s.Assets[assetID]; exists {
			return &db.DuplicateKeyError{
				Key:     fmt.Sprint(assetID),
				Message: "asset is already staked",
			}
		}
	}
	if err := escrow(ctx); err != nil {
		return err
	}
	if s.FailStakeCommit != nil {
		return s.FailStakeCommit
	}
	for _, assetID := range assetIDs {
		s.Assets[assetID] = *model.NewStakedAssetDocument(assetID, stakerAddress, stakedAtTick)
	}
	return nil
}

func (s *LedgerStore) FindStakedAssetsByIDs(ctx context.Context, assetIDs []uint64) ([]model.StakedAssetDocument, error) {
	var records []model.StakedAssetDocument
	for _, assetID := range assetIDs {
		if record, found := s.Assets[assetID]; found {
			records = append(records, record)
		}
	}
	return records, nil
}

func (s *LedgerStore) FindStakedAssetsByStaker(
	ctx context.Context, stakerAddress string, paginationToken string,
) (*db.DbResultMap[model.StakedAssetDocument], error) {
	var records []model.StakedAssetDocument
	for _, record := range s.Assets {
		if record.StakerAddress == stakerAddress {
			records = append(records, record)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].StakedAtTick != records[j].StakedAtTick {
			return records[i].StakedAtTick > records[j].StakedAtTick
		}
		return records[i].AssetID < records[j].AssetID
	})
	return &db.DbResultMap[model.StakedAssetDocument]{Data: records}, nil
}

func (s *LedgerStore) TransitionToUnbonding(
	ctx context.Context, stakerAddress string, assetIDs []uint64,
	unstakedAtTick, unbondingEndsAtTick uint64,
) error {
	for _, assetID := range assetIDs {
		record, found := s.Assets[assetID]
		if !found || record.StakerAddress != stakerAddress || record.IsUnstaked {
			return &db.NotFoundError{
				Key:     fmt.Sprint(assetID),
				Message: "asset is not staked by this staker or was already unstaked",
			}
		}
	}
	for _, assetID := range assetIDs {
		record := s.Assets[assetID]
		record.IsUnstaked = true
		record.UnstakedAtTick = unstakedAtTick
		record.UnbondingEndsAtTick = unbondingEndsAtTick
		s.Assets[assetID] = record
	}
	s.Pending[stakerAddress] = append(s.Pending[stakerAddress], assetIDs...)
	return nil
}

func (s *LedgerStore) TransitionToWithdrawn(
	ctx context.Context, stakerAddress string, assetIDs []uint64, settlementEndsAtTick uint64,
	release func(ctx context.Context) error,
) error {
	for _, assetID := range assetIDs {
		record, found := s.Assets[assetID]
		if !found || record.StakerAddress != stakerAddress || !record.IsUnstaked || record.IsWithdrawn {
			return &db.NotFoundError{
				Key:     fmt.Sprint(assetID),
				Message: "asset is not eligible for withdrawal",
			}
		}
	}
	if err := release(ctx); err != nil {
		return err
	}
	if s.FailWithdrawCommit != nil {
		return s.FailWithdrawCommit
	}
	for _, assetID := range assetIDs {
		record := s.Assets[assetID]
		record.IsWithdrawn = true
		record.SettlementEndsAtTick = settlementEndsAtTick
		s.Assets[assetID] = record
	}
	return nil
}

func (s *LedgerStore) SettleStakedAssets(
	ctx context.Context, stakerAddress string, assetIDs []uint64, rewardAmount uint64,
	disburse func(ctx context.Context) error,
) error {
	for _, assetID := range assetIDs {
		record, found := s.Assets[assetID]
		if !found || record.StakerAddress != stakerAddress {
			return &db.NotFoundError{
				Key:     stakerAddress,
				Message: "settlement set changed while settling",
			}
		}
	}
	if err := disburse(ctx); err != nil {
		return err
	}
	if s.FailSettleCommit != nil {
		return s.FailSettleCommit
	}
	settled := make(map[uint64]struct{}, len(assetIDs))
	for _, assetID := range assetIDs {
		delete(s.Assets, assetID)
		settled[assetID] = struct{}{}
	}
	var remaining []uint64
	for _, assetID := range s.Pending[stakerAddress] {
		if _, done := settled[assetID]; !done {
			remaining = append(remaining, assetID)
		}
	}
	if len(remaining) == 0 {
		delete(s.Pending, stakerAddress)
	} else {
		s.Pending[stakerAddress] = remaining
	}
	return nil
}

func (s *LedgerStore) FindPendingSet(ctx context.Context, stakerAddress string) (*model.PendingSetDocument, error) {
	pending, found := s.Pending[stakerAddress]
	if !found || len(pending) == 0 {
		return nil, &db.NotFoundError{Key: stakerAddress, Message: "no pending set found for staker"}
	}
	ids := make([]uint64, len(pending))
	copy(ids, pending)
	return &model.PendingSetDocument{StakerAddress: stakerAddress, AssetIDs: ids}, nil
}

func (s *LedgerStore) GetOverallStats(ctx context.Context) (*model.OverallStatsDocument, error) {
	return &model.OverallStatsDocument{}, nil
}

func (s *LedgerStore) FindStakerStats(ctx context.Context, stakerAddress string) (*model.StakerStatsDocument, error) {
	return nil, &db.NotFoundError{Key: stakerAddress, Message: "staker stats not found"}
}

func (s *LedgerStore) FindTopStakersByActiveAssets(
	ctx context.Context, paginationToken string,
) (*db.DbResultMap[model.StakerStatsDocument], error) {
	return &db.DbResultMap[model.StakerStatsDocument]{}, nil
}

func (s *LedgerStore) SaveUnpublishedEvent(ctx context.Context, eventID, queueName, messageBody string) error {
	if _, exists := s.Unpublished[eventID]; exists {
		return nil
	}
	s.Unpublished[eventID] = model.UnpublishedEventDocument{
		EventID:     eventID,
		QueueName:   queueName,
		MessageBody: messageBody,
	}
	return nil
}

func (s *LedgerStore) FindUnpublishedEvents(ctx context.Context) ([]model.UnpublishedEventDocument, error) {
	events := make([]model.UnpublishedEventDocument, 0, len(s.Unpublished))
	for _, event := range s.Unpublished {
		events = append(events, event)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].EventID < events[j].EventID })
	return events, nil
}

func (s *LedgerStore) DeleteUnpublishedEvent(ctx context.Context, eventID string) error {
	delete(s.Unpublished, eventID)
	return nil
}
