package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/relicvault/staking-ledger-service/internal/db/model"
)

func TestPaginationTokenRoundTrip(t *testing.T) {
	doc := model.StakedAssetDocument{AssetID: 42, StakedAtTick: 7}

	token, err := model.BuildStakedAssetByStakerPaginationToken(doc)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	page, err := model.DecodePaginationToken[model.StakedAssetByStakerPagination](token)
	require.NoError(t, err)
	require.Equal(t, uint64(42), page.AssetID)
	require.Equal(t, uint64(7), page.StakedAtTick)
}

func TestDecodePaginationTokenRejectsGarbage(t *testing.T) {
	_, err := model.DecodePaginationToken[model.StakedAssetByStakerPagination]("not-a-token!!")
	require.Error(t, err)
}
