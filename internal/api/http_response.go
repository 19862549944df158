package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/relicvault/staking-ledger-service/internal/api/handlers"
	"github.com/relicvault/staking-ledger-service/internal/observability/metrics"
	"github.com/relicvault/staking-ledger-service/internal/types"
)

type ErrorResponse struct {
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
}

func (e *ErrorResponse) Error() string {
	return e.Message
}

// registerHandler adapts the (*Result, *types.Error) handler shape to
// http.HandlerFunc: it times the request, maps handler errors to the error
// response body and never leaks 5xx details to the client.
func registerHandler(handlerFunc func(*http.Request) (*handlers.Result, *types.Error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		timer := metrics.StartHttpRequestDurationTimer(r.URL.Path)

		result, err := handlerFunc(r)
		if err != nil {
			writeErrorResponse(w, r, err, timer)
			return
		}

		if result == nil || http.StatusText(result.Status) == "" {
			log.Ctx(r.Context()).Error().Msg("handler returned no error but an unusable result")
			timer(http.StatusInternalServerError)
			writeResponse(w, r, http.StatusInternalServerError, &ErrorResponse{
				ErrorCode: types.InternalServiceError.String(),
				Message:   "Internal service error",
			})
			return
		}

		timer(result.Status)
		writeResponse(w, r, result.Status, result.Data)
	}
}

func writeErrorResponse(
	w http.ResponseWriter, r *http.Request, err *types.Error, timer func(int),
) {
	statusCode := err.StatusCode
	if http.StatusText(statusCode) == "" {
		log.Ctx(r.Context()).Error().Err(err).
			Int("statusCode", statusCode).Msg("handler returned an unknown status code")
		statusCode = http.StatusInternalServerError
	}

	errorResponse := &ErrorResponse{
		ErrorCode: string(err.ErrorCode),
		Message:   err.Err.Error(),
	}
	if statusCode >= http.StatusInternalServerError {
		log.Ctx(r.Context()).Error().Err(errorResponse).Msg("request failed with 5xx error")
		// Internal failure details stay in the logs.
		errorResponse.Message = "Internal service error"
	}

	timer(statusCode)
	writeResponse(w, r, statusCode, errorResponse)
}

func writeResponse(w http.ResponseWriter, r *http.Request, statusCode int, body interface{}) {
	respBytes, err := json.Marshal(body)
	if err != nil {
		log.Ctx(r.Context()).Err(err).Msg("failed to marshal response body")
		http.Error(w, "Failed to process the request. Please try again later.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(respBytes) // nolint:errcheck
}
