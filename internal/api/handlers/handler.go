package handlers

import (
	"context"
	"net/http"

	"github.com/ethereum/go-ethereum/common"

	"github.com/relicvault/staking-ledger-service/internal/config"
	"github.com/relicvault/staking-ledger-service/internal/services"
	"github.com/relicvault/staking-ledger-service/internal/types"
)

type Handler struct {
	config   *config.Config
	services *services.Services
}

type paginationResponse struct {
	NextKey string `json:"next_key"`
}

type PublicResponse[T any] struct {
	Data       T                   `json:"data"`
	Pagination *paginationResponse `json:"pagination,omitempty"`
}

type Result struct {
	Data   interface{}
	Status int
}

// NewResult returns a successful result, with default status code 200
func NewResultWithPagination[T any](data T, pageToken string) *Result {
	res := &PublicResponse[T]{Data: data, Pagination: &paginationResponse{NextKey: pageToken}}
	return &Result{Data: res, Status: http.StatusOK}
}

func NewResult[T any](data T) *Result {
	res := &PublicResponse[T]{Data: data}
	return &Result{Data: res, Status: http.StatusOK}
}

func New(
	ctx context.Context, cfg *config.Config, services *services.Services,
) (*Handler, error) {
	return &Handler{
		config:   cfg,
		services: services,
	}, nil
}

// parseAddressQuery validates an EVM style address query parameter and
// returns it in checksummed form so lookups match the stored records.
func parseAddressQuery(request *http.Request, queryName string) (string, *types.Error) {
	address := request.URL.Query().Get(queryName)
	if address == "" {
		return "", types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, queryName+" is required",
		)
	}
	if !common.IsHexAddress(address) {
		return "", types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "invalid "+queryName,
		)
	}
	return common.HexToAddress(address).Hex(), nil
}

func parsePaginationQuery(request *http.Request) string {
	// Tokens are validated on decode, a malformed one fails there as a 400.
	return request.URL.Query().Get("pagination_key")
}
