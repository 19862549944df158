package rewardledger

import (
	"context"
	"fmt"
	"net/http"

	baseclient "github.com/relicvault/staking-ledger-service/internal/clients/base"
	"github.com/relicvault/staking-ledger-service/internal/config"
	"github.com/relicvault/staking-ledger-service/internal/types"
)

type RewardLedgerClient struct {
	config        *config.RewardLedgerConfig
	httpClient    *http.Client
	defaultHeader map[string]string
}

func NewRewardLedgerClient(config *config.RewardLedgerConfig) *RewardLedgerClient {
	httpClient := &http.Client{}
	defaultHeader := map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
	}
	return &RewardLedgerClient{
		config,
		httpClient,
		defaultHeader,
	}
}

// Necessary for the BaseClient interface
func (c *RewardLedgerClient) GetBaseURL() string {
	return c.config.Host
}

func (c *RewardLedgerClient) GetDefaultRequestTimeout() int {
	return c.config.Timeout
}

func (c *RewardLedgerClient) GetHttpClient() *http.Client {
	return c.httpClient
}

type transferRequest struct {
	To     string `json:"to"`
	Amount uint64 `json:"amount"`
}

type transferResponse struct {
	Ok     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
}

func (c *RewardLedgerClient) Transfer(ctx context.Context, toAddress string, amount uint64) *types.Error {
	opts := &baseclient.BaseClientOptions{
		Path:    "/v1/transfers",
		Headers: c.defaultHeader,
	}
	input := &transferRequest{
		To:     toAddress,
		Amount: amount,
	}

	resp, err := baseclient.SendRequest[transferRequest, transferResponse](
		ctx, c, http.MethodPost, opts, input,
	)
	if err != nil {
		return err
	}

	// The transfer outcome is carried in the body, a 200 with ok=false is
	// still a failed disbursement.
	if !resp.Ok {
		return types.NewErrorWithMsg(
			http.StatusBadGateway,
			types.ExternalCallFailure,
			fmt.Sprintf("reward transfer of %d to %s rejected: %s", amount, toAddress, resp.Reason),
		)
	}
	return nil
}
