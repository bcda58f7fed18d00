package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ijalalfrz/travel-search-mcp-service/internal/app/dto"
	"github.com/ijalalfrz/travel-search-mcp-service/internal/pkg/exception"
	"github.com/mark3labs/mcp-go/mcp"
)

// ResponseWithBody is the common method to encode all response types to the client.
func ResponseWithBody(_ context.Context, w http.ResponseWriter, response interface{}) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	if err := json.NewEncoder(w).Encode(response); err != nil {
		return fmt.Errorf("encode response body: %w", err)
	}

	return nil
}

// ErrorResponse encodes errors raised before a request reaches the dispatcher
// as a JSON-RPC error envelope with a null id. Application errors (parse,
// invalid request) are client faults, anything else is an internal error.
func ErrorResponse(ctx context.Context, err error, respWriter http.ResponseWriter) {
	var appErr exception.ApplicationError

	if errors.As(err, &appErr) {
		slog.WarnContext(ctx, "rejected request", slog.Int("code", appErr.Code), slog.String("error", err.Error()))

		writeRPCError(respWriter, http.StatusBadRequest, appErr.Code, appErr.Message)

		return
	}

	slog.ErrorContext(ctx, err.Error(), slog.Any("error", err))

	writeRPCError(respWriter, http.StatusInternalServerError, mcp.INTERNAL_ERROR, "Internal error")
}

func writeRPCError(respWriter http.ResponseWriter, status, code int, message string) {
	respWriter.Header().Set("Content-Type", "application/json; charset=utf-8")
	respWriter.WriteHeader(status)

	//nolint:errcheck,errchkjson
	json.NewEncoder(respWriter).Encode(dto.NewRPCError(nil, code, message))
}
