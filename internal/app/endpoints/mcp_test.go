//go:build unit

package endpoints

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/ijalalfrz/travel-search-mcp-service/internal/app/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	handled []dto.RPCRequest
}

func (s *stubService) Handle(_ context.Context, req dto.RPCRequest) dto.RPCResponse {
	s.handled = append(s.handled, req)

	return dto.NewRPCResult(req.ID, "ok")
}

func (s *stubService) Health(_ context.Context) dto.HealthResponse {
	return dto.HealthResponse{Status: "healthy"}
}

func (s *stubService) Describe(_ context.Context) dto.ServiceDescriptor {
	return dto.ServiceDescriptor{Service: "stub"}
}

func TestMakeMCPEndpoint(t *testing.T) {
	svc := &stubService{}
	endpts := MakeMCPEndpoint(svc)

	t.Run("handle", func(t *testing.T) {
		got, err := endpts.Handle(context.Background(), &dto.RPCRequest{Method: "initialize", ID: json.RawMessage(`1`)})

		require.NoError(t, err)
		assert.Equal(t, dto.NewRPCResult(json.RawMessage(`1`), "ok"), got)
		assert.Len(t, svc.handled, 1)
	})

	t.Run("handle_invalid_type", func(t *testing.T) {
		_, err := endpts.Handle(context.Background(), dto.RPCRequest{})
		assert.EqualError(t, err, "invalid type")

		var nilReq *dto.RPCRequest
		_, err = endpts.Handle(context.Background(), nilReq)
		assert.EqualError(t, err, "invalid type")
	})

	t.Run("health", func(t *testing.T) {
		got, err := endpts.Health(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, dto.HealthResponse{Status: "healthy"}, got)
	})

	t.Run("describe", func(t *testing.T) {
		got, err := endpts.Describe(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, dto.ServiceDescriptor{Service: "stub"}, got)
	})
}
