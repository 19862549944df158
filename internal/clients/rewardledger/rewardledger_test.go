package rewardledger_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/relicvault/staking-ledger-service/internal/clients/rewardledger"
	"github.com/relicvault/staking-ledger-service/internal/config"
	"github.com/relicvault/staking-ledger-service/internal/types"
)

func newRewardClient(serverURL string) *rewardledger.RewardLedgerClient {
	return rewardledger.NewRewardLedgerClient(&config.RewardLedgerConfig{
		Host:    serverURL,
		Timeout: 1000,
	})
}

func TestTransfer(t *testing.T) {
	var received struct {
		To     string `json:"to"`
		Amount uint64 `json:"amount"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/transfers", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(map[string]bool{"ok": true})
	}))
	defer server.Close()

	err := newRewardClient(server.URL).Transfer(context.Background(), "0xstaker", 150)

	require.Nil(t, err)
	require.Equal(t, "0xstaker", received.To)
	require.Equal(t, uint64(150), received.Amount)
}

// A 200 with ok=false is still a failed disbursement.
func TestTransferRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"ok":     false,
			"reason": "mint cap reached",
		})
	}))
	defer server.Close()

	err := newRewardClient(server.URL).Transfer(context.Background(), "0xstaker", 150)

	require.NotNil(t, err)
	require.Equal(t, http.StatusBadGateway, err.StatusCode)
	require.Equal(t, types.ExternalCallFailure, err.ErrorCode)
	require.Contains(t, err.Err.Error(), "mint cap reached")
}

func TestTransferClientError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	err := newRewardClient(server.URL).Transfer(context.Background(), "0xstaker", 150)

	require.NotNil(t, err)
	require.Equal(t, http.StatusUnprocessableEntity, err.StatusCode)
	require.Equal(t, types.BadRequest, err.ErrorCode)
}
