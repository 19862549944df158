package assetregistry_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/relicvault/staking-ledger-service/internal/clients/assetregistry"
	"github.com/relicvault/staking-ledger-service/internal/config"
	"github.com/relicvault/staking-ledger-service/internal/types"
)

const checksummedOwner = "0x71C7656EC7ab88b098defB751B7401B5f6d8976F"

func newRegistryClient(serverURL string) *assetregistry.AssetRegistryClient {
	return assetregistry.NewAssetRegistryClient(&config.AssetRegistryConfig{
		Host:    serverURL,
		Timeout: 1000,
	})
}

func TestOwnerOf(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/v1/assets/42/owner", r.URL.Path)
		// Lowercase on the wire, the client normalizes it.
		json.NewEncoder(w).Encode(map[string]string{"owner": "0x71c7656ec7ab88b098defb751b7401b5f6d8976f"})
	}))
	defer server.Close()

	owner, err := newRegistryClient(server.URL).OwnerOf(context.Background(), 42)

	require.Nil(t, err)
	require.Equal(t, checksummedOwner, owner)
}

func TestOwnerOfMalformedOwner(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"owner": "not-an-address"})
	}))
	defer server.Close()

	_, err := newRegistryClient(server.URL).OwnerOf(context.Background(), 42)

	require.NotNil(t, err)
	require.Equal(t, http.StatusBadGateway, err.StatusCode)
	require.Equal(t, types.ExternalCallFailure, err.ErrorCode)
}

func TestTransferCustody(t *testing.T) {
	var received struct {
		From    string `json:"from"`
		To      string `json:"to"`
		AssetID uint64 `json:"asset_id"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/custody/transfer", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(map[string]bool{"accepted": true})
	}))
	defer server.Close()

	err := newRegistryClient(server.URL).TransferCustody(
		context.Background(), "0xfrom", "0xto", 7,
	)

	require.Nil(t, err)
	require.Equal(t, "0xfrom", received.From)
	require.Equal(t, "0xto", received.To)
	require.Equal(t, uint64(7), received.AssetID)
}

// A 200 with accepted=false is still a denied transfer.
func TestTransferCustodyRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"accepted": false,
			"reason":   "transfer not approved",
		})
	}))
	defer server.Close()

	err := newRegistryClient(server.URL).TransferCustody(
		context.Background(), "0xfrom", "0xto", 7,
	)

	require.NotNil(t, err)
	require.Equal(t, http.StatusBadGateway, err.StatusCode)
	require.Equal(t, types.ExternalCallFailure, err.ErrorCode)
	require.Contains(t, err.Err.Error(), "transfer not approved")
}

func TestTransferCustodyServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	err := newRegistryClient(server.URL).TransferCustody(
		context.Background(), "0xfrom", "0xto", 7,
	)

	require.NotNil(t, err)
	require.Equal(t, http.StatusInternalServerError, err.StatusCode)
}
