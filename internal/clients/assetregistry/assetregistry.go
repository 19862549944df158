package assetregistry

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ethereum/go-ethereum/common"

	baseclient "github.com/relicvault/staking-ledger-service/internal/clients/base"
	"github.com/relicvault/staking-ledger-service/internal/config"
	"github.com/relicvault/staking-ledger-service/internal/types"
)

type AssetRegistryClient struct {
	config        *config.AssetRegistryConfig
	httpClient    *http.Client
	defaultHeader map[string]string
}

func NewAssetRegistryClient(config *config.AssetRegistryConfig) *AssetRegistryClient {
	httpClient := &http.Client{}
	defaultHeader := map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
	}
	return &AssetRegistryClient{
		config,
		httpClient,
		defaultHeader,
	}
}

// Necessary for the BaseClient interface
func (c *AssetRegistryClient) GetBaseURL() string {
	return c.config.Host
}

func (c *AssetRegistryClient) GetDefaultRequestTimeout() int {
	return c.config.Timeout
}

func (c *AssetRegistryClient) GetHttpClient() *http.Client {
	return c.httpClient
}

type ownerOfResponse struct {
	Owner string `json:"owner"`
}

type custodyTransferRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	AssetID uint64 `json:"asset_id"`
}

type custodyTransferResponse struct {
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason,omitempty"`
}

func (c *AssetRegistryClient) OwnerOf(ctx context.Context, assetID uint64) (string, *types.Error) {
	path := fmt.Sprintf("/v1/assets/%d/owner", assetID)
	opts := &baseclient.BaseClientOptions{
		Path:    path,
		Headers: c.defaultHeader,
	}

	resp, err := baseclient.SendRequest[any, ownerOfResponse](
		ctx, c, http.MethodGet, opts, nil,
	)
	if err != nil {
		return "", err
	}

	if !common.IsHexAddress(resp.Owner) {
		return "", types.NewErrorWithMsg(
			http.StatusBadGateway,
			types.ExternalCallFailure,
			fmt.Sprintf("asset registry returned malformed owner for asset %d", assetID),
		)
	}
	return common.HexToAddress(resp.Owner).Hex(), nil
}

func (c *AssetRegistryClient) TransferCustody(
	ctx context.Context, fromAddress, toAddress string, assetID uint64,
) *types.Error {
	opts := &baseclient.BaseClientOptions{
		Path:    "/v1/custody/transfer",
		Headers: c.defaultHeader,
	}
	input := &custodyTransferRequest{
		From:    fromAddress,
		To:      toAddress,
		AssetID: assetID,
	}

	resp, err := baseclient.SendRequest[custodyTransferRequest, custodyTransferResponse](
		ctx, c, http.MethodPost, opts, input,
	)
	if err != nil {
		return err
	}

	if !resp.Accepted {
		return types.NewErrorWithMsg(
			http.StatusBadGateway,
			types.ExternalCallFailure,
			fmt.Sprintf("custody transfer of asset %d rejected: %s", assetID, resp.Reason),
		)
	}
	return nil
}
