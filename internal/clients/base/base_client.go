package baseclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/relicvault/staking-ledger-service/internal/types"
	"github.com/relicvault/staking-ledger-service/internal/utils"
)

var allowedMethods = []string{
	http.MethodGet, http.MethodPost, http.MethodPut,
	http.MethodDelete, http.MethodPatch, http.MethodOptions,
}

type BaseClient interface {
	GetBaseURL() string
	GetDefaultRequestTimeout() int
	GetHttpClient() *http.Client
}

type BaseClientOptions struct {
	// Timeout in milliseconds, overrides the client default when non-zero.
	Timeout int
	Path    string
	Headers map[string]string
}

// SendRequest performs a JSON round trip against a collaborator service and
// maps transport and status failures onto the service error taxonomy. I is
// the request body type, R the expected response body.
func SendRequest[I any, R any](
	ctx context.Context, client BaseClient, method string, opts *BaseClientOptions, input *I,
) (*R, *types.Error) {
	if !utils.Contains(allowedMethods, method) {
		return nil, types.NewInternalServiceError(fmt.Errorf("method %s is not allowed", method))
	}

	url := client.GetBaseURL() + opts.Path
	timeout := client.GetDefaultRequestTimeout()
	if opts.Timeout != 0 {
		timeout = opts.Timeout
	}
	reqCtx, cancel := context.WithTimeout(ctx, time.Duration(timeout)*time.Millisecond)
	defer cancel()

	req, err := buildRequest(reqCtx, method, url, input)
	if err != nil {
		return nil, types.NewErrorWithMsg(
			http.StatusInternalServerError, types.InternalServiceError, err.Error(),
		)
	}
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	resp, err := client.GetHttpClient().Do(req)
	if err != nil {
		if reqCtx.Err() == context.DeadlineExceeded {
			return nil, types.NewErrorWithMsg(
				http.StatusRequestTimeout,
				types.RequestTimeout,
				fmt.Sprintf("request timeout after %d ms at %s", timeout, url),
			)
		}
		log.Ctx(ctx).Error().Err(err).Msgf("failed to send request to %s", url)
		return nil, types.NewErrorWithMsg(
			http.StatusInternalServerError,
			types.InternalServiceError,
			fmt.Sprintf("failed to send request to %s", url),
		)
	}
	defer resp.Body.Close()

	if apiErr := classifyStatus(resp.StatusCode, url); apiErr != nil {
		return nil, apiErr
	}

	var output R
	if err := json.NewDecoder(resp.Body).Decode(&output); err != nil {
		return nil, types.NewErrorWithMsg(
			http.StatusInternalServerError,
			types.InternalServiceError,
			fmt.Sprintf("failed to decode response from %s", url),
		)
	}
	return &output, nil
}

func buildRequest[I any](ctx context.Context, method, url string, input *I) (*http.Request, error) {
	if input == nil || (method != http.MethodPost && method != http.MethodPut) {
		return http.NewRequestWithContext(ctx, method, url, nil)
	}

	body, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}
	return http.NewRequestWithContext(ctx, method, url, bytes.NewBuffer(body))
}

// Non-2xx responses keep the upstream status code. 5xx maps onto the internal
// error code, everything else counts as a client error.
func classifyStatus(statusCode int, url string) *types.Error {
	switch {
	case statusCode >= http.StatusInternalServerError:
		return types.NewErrorWithMsg(
			statusCode,
			types.InternalServiceError,
			fmt.Sprintf("internal server error when calling %s", url),
		)
	case statusCode >= http.StatusBadRequest:
		return types.NewErrorWithMsg(
			statusCode,
			types.BadRequest,
			fmt.Sprintf("client error when calling %s", url),
		)
	default:
		return nil
	}
}
