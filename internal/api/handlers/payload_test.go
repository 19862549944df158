package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/relicvault/staking-ledger-service/internal/types"
)

const (
	lowercaseAddress   = "0x71c7656ec7ab88b098defb751b7401b5f6d8976f"
	checksummedAddress = "0x71C7656EC7ab88b098defB751B7401B5f6d8976F"
)

func postRequest(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/v1/stake", strings.NewReader(body))
}

func requireBadRequest(t *testing.T, err *types.Error) {
	t.Helper()
	require.NotNil(t, err)
	require.Equal(t, http.StatusBadRequest, err.StatusCode)
	require.Equal(t, types.BadRequest, err.ErrorCode)
}

func TestParseStakeAssetsRequestPayload(t *testing.T) {
	payload, err := parseStakeAssetsRequestPayload(postRequest(
		`{"staker_address":"` + lowercaseAddress + `","asset_ids":[1,2,3]}`,
	))

	require.Nil(t, err)
	// Addresses are normalized to checksummed form on the way in.
	require.Equal(t, checksummedAddress, payload.StakerAddress)
	require.Equal(t, []uint64{1, 2, 3}, payload.AssetIDs)
}

func TestParseStakeAssetsRequestPayloadMalformedJSON(t *testing.T) {
	_, err := parseStakeAssetsRequestPayload(postRequest(`{"staker_address":`))
	requireBadRequest(t, err)
}

func TestParseStakeAssetsRequestPayloadInvalidAddress(t *testing.T) {
	_, err := parseStakeAssetsRequestPayload(postRequest(
		`{"staker_address":"not-an-address","asset_ids":[1]}`,
	))
	requireBadRequest(t, err)
}

func TestParseUnstakeAssetsRequestPayload(t *testing.T) {
	payload, err := parseUnstakeAssetsRequestPayload(postRequest(
		`{"staker_address":"` + checksummedAddress + `","asset_ids":[7]}`,
	))

	require.Nil(t, err)
	require.Equal(t, checksummedAddress, payload.StakerAddress)
	require.Equal(t, []uint64{7}, payload.AssetIDs)
}

func TestParseWithdrawAssetsRequestPayload(t *testing.T) {
	payload, err := parseWithdrawAssetsRequestPayload(postRequest(
		`{"staker_address":"` + lowercaseAddress + `"}`,
	))

	require.Nil(t, err)
	require.Equal(t, checksummedAddress, payload.StakerAddress)

	_, parseErr := parseWithdrawAssetsRequestPayload(postRequest(`{}`))
	requireBadRequest(t, parseErr)
}

func TestParseUpdateRewardRateRequestPayload(t *testing.T) {
	payload, err := parseUpdateRewardRateRequestPayload(postRequest(
		`{"caller_address":"` + lowercaseAddress + `","new_rate":9}`,
	))

	require.Nil(t, err)
	require.Equal(t, checksummedAddress, payload.CallerAddress)
	require.Equal(t, uint64(9), payload.NewRate)

	_, parseErr := parseUpdateRewardRateRequestPayload(postRequest(
		`{"caller_address":"0x123","new_rate":9}`,
	))
	requireBadRequest(t, parseErr)
}

func TestParseSetPausedRequestPayload(t *testing.T) {
	payload, err := parseSetPausedRequestPayload(postRequest(
		`{"caller_address":"` + checksummedAddress + `","paused":false}`,
	))

	require.Nil(t, err)
	require.NotNil(t, payload.Paused)
	require.False(t, *payload.Paused)
}

// The flag is a pointer so an omitted field is distinguishable from false.
func TestParseSetPausedRequestPayloadMissingFlag(t *testing.T) {
	_, err := parseSetPausedRequestPayload(postRequest(
		`{"caller_address":"` + checksummedAddress + `"}`,
	))
	requireBadRequest(t, err)
}

func TestParseAddressQuery(t *testing.T) {
	request := httptest.NewRequest(
		http.MethodGet, "/v1/staker/assets?staker_address="+lowercaseAddress, nil,
	)
	address, err := parseAddressQuery(request, "staker_address")
	require.Nil(t, err)
	require.Equal(t, checksummedAddress, address)

	request = httptest.NewRequest(http.MethodGet, "/v1/staker/assets", nil)
	_, err = parseAddressQuery(request, "staker_address")
	requireBadRequest(t, err)

	request = httptest.NewRequest(http.MethodGet, "/v1/staker/assets?staker_address=bogus", nil)
	_, err = parseAddressQuery(request, "staker_address")
	requireBadRequest(t, err)
}
