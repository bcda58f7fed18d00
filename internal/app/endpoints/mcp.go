package endpoints

import (
	"context"
	"errors"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/travel-search-mcp-service/internal/app/dto"
)

type MCPService interface {
	Handle(ctx context.Context, req dto.RPCRequest) dto.RPCResponse
	Health(ctx context.Context) dto.HealthResponse
	Describe(ctx context.Context) dto.ServiceDescriptor
}

type MCPEndpoint struct {
	Handle   endpoint.Endpoint
	Health   endpoint.Endpoint
	Describe endpoint.Endpoint
}

func MakeMCPEndpoint(service MCPService) MCPEndpoint {
	return MCPEndpoint{
		Handle:   makeHandleEndpoint(service),
		Health:   makeHealthEndpoint(service),
		Describe: makeDescribeEndpoint(service),
	}
}

func makeHandleEndpoint(service MCPService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.RPCRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		return service.Handle(ctx, *request), nil
	}
}

func makeHealthEndpoint(service MCPService) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		return service.Health(ctx), nil
	}
}

func makeDescribeEndpoint(service MCPService) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		return service.Describe(ctx), nil
	}
}
