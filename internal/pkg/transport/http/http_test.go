//go:build unit

package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/render"
	"github.com/ijalalfrz/travel-search-mcp-service/internal/app/dto"
	"github.com/ijalalfrz/travel-search-mcp-service/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	return req
}

func TestDecodeRequest(t *testing.T) {
	decodeRequest := func(body string, wantMethod string, wantErr error) func(t *testing.T) {
		return func(t *testing.T) {
			got, err := DecodeRequest[dto.RPCRequest](context.Background(), jsonRequest(body))
			if wantErr != nil {
				assert.ErrorIs(t, err, wantErr)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)

			req, ok := got.(*dto.RPCRequest)
			require.True(t, ok)
			assert.Equal(t, wantMethod, req.Method)
		}
	}

	t.Run("valid", decodeRequest(`{"jsonrpc":"2.0","method":"tools/list","id":1}`, "tools/list", nil))
	t.Run("malformed_json", decodeRequest(`{"jsonrpc":`, "", dto.ErrParse))
	t.Run("empty_body", decodeRequest(``, "", dto.ErrParse))
	t.Run("not_an_object", decodeRequest(`"tools/list"`, "", dto.ErrInvalidRequest))
}

func TestErrorResponse(t *testing.T) {
	errorResponse := func(err error, wantStatus int, wantBody string) func(t *testing.T) {
		return func(t *testing.T) {
			rec := httptest.NewRecorder()

			ErrorResponse(context.Background(), err, rec)

			assert.Equal(t, wantStatus, rec.Code)
			assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, wantBody, rec.Body.String())
		}
	}

	t.Run("parse_error", errorResponse(dto.ErrParse.WithCause(errors.New("unexpected EOF")),
		http.StatusBadRequest, `{"jsonrpc":"2.0","id":null,"error":{"code":-32700,"message":"Parse error"}}`))

	t.Run("invalid_request", errorResponse(dto.ErrInvalidRequest,
		http.StatusBadRequest, `{"jsonrpc":"2.0","id":null,"error":{"code":-32600,"message":"Invalid request"}}`))

	t.Run("unknown_error", errorResponse(errors.New("invalid type"),
		http.StatusInternalServerError, `{"jsonrpc":"2.0","id":null,"error":{"code":-32603,"message":"Internal error"}}`))
}

func TestMakeHandlerFunc(t *testing.T) {
	handler := MakeHandlerFunc(
		func(_ context.Context, req interface{}) (interface{}, error) {
			rpcReq := req.(*dto.RPCRequest)
			return dto.NewRPCResult(rpcReq.ID, map[string]string{"method": rpcReq.Method}), nil
		},
		DecodeRequest[dto.RPCRequest],
		ResponseWithBody,
	)

	wrapped := render.SetContentType(render.ContentTypeJSON)(handler)

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, jsonRequest(`{"method":"initialize","id":"a"}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"jsonrpc":"2.0","id":"a","result":{"method":"initialize"}}`, rec.Body.String())

	rec = httptest.NewRecorder()
	wrapped.ServeHTTP(rec, jsonRequest(`not json`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":-32700`)
}

func TestRequestID(t *testing.T) {
	var seen string

	handler := RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = logger.RequestIDFrom(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get("X-Request-Id"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "req-42")

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", seen)
	assert.Equal(t, "req-42", rec.Header().Get("X-Request-Id"))
}

func TestRecoverer(t *testing.T) {
	handler := Recoverer(slog.Default())(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, jsonRequest(`{}`))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":-32603`)
}

func TestCORSMiddleware(t *testing.T) {
	handler := CORSMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodOptions, "/mcp", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}
