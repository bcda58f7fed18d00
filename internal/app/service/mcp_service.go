package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ijalalfrz/travel-search-mcp-service/internal/app/dto"
	"github.com/ijalalfrz/travel-search-mcp-service/internal/pkg/exception"
	"github.com/mark3labs/mcp-go/mcp"
)

// ServerInfo identifies one tool server.
type ServerInfo struct {
	// Name is the machine name reported by initialize and /health.
	Name string
	// Title is the display name reported by the service descriptor.
	Title   string
	Version string
}

// MCPService answers JSON-RPC requests for a fixed set of tools. It holds no
// per-request state, so one instance serves every request concurrently.
type MCPService struct {
	Info    ServerInfo
	Toolbox *Toolbox
}

func NewMCPService(info ServerInfo, toolbox *Toolbox) *MCPService {
	return &MCPService{
		Info:    info,
		Toolbox: toolbox,
	}
}

// Handle dispatches req by method and always returns a well-formed envelope
// echoing the request id.
func (s *MCPService) Handle(ctx context.Context, req dto.RPCRequest) dto.RPCResponse {
	result, err := s.dispatch(ctx, req)
	if err != nil {
		return s.errorResponse(ctx, req, err)
	}

	return dto.NewRPCResult(req.ID, result)
}

func (s *MCPService) dispatch(ctx context.Context, req dto.RPCRequest) (any, error) {
	switch mcp.MCPMethod(req.Method) {
	case mcp.MethodInitialize:
		return dto.InitializeResult{
			ProtocolVersion: dto.ProtocolVersion,
			ServerInfo: mcp.Implementation{
				Name:    s.Info.Name,
				Version: s.Info.Version,
			},
		}, nil
	case mcp.MethodToolsList:
		return dto.ListToolsResult{Tools: s.descriptors()}, nil
	case mcp.MethodToolsCall:
		return s.callTool(ctx, req.Params)
	default:
		return nil, ErrMethodNotFound
	}
}

func (s *MCPService) callTool(ctx context.Context, params dto.ToolCallParams) (any, error) {
	tool, ok := s.Toolbox.GetTool(params.Name)
	if !ok {
		return nil, ErrMethodNotFound
	}

	text, err := tool.Call(ctx, params.Arguments)
	if err != nil {
		return nil, err
	}

	return dto.NewTextResult(text), nil
}

func (s *MCPService) descriptors() []dto.Tool {
	tools := s.Toolbox.GetAllTools()

	descriptors := make([]dto.Tool, 0, len(tools))
	for _, tool := range tools {
		descriptors = append(descriptors, tool.Descriptor())
	}

	return descriptors
}

func (s *MCPService) errorResponse(ctx context.Context, req dto.RPCRequest, err error) dto.RPCResponse {
	var appErr exception.ApplicationError

	if !errors.As(err, &appErr) {
		slog.ErrorContext(ctx, "unexpected error handling request",
			slog.String("method", req.Method),
			slog.String("error", err.Error()),
		)

		appErr = ErrInternal
	} else {
		slog.WarnContext(ctx, "request failed",
			slog.String("method", req.Method),
			slog.String("tool", req.Params.Name),
			slog.Int("code", appErr.Code),
			slog.String("error", appErr.Error()),
		)
	}

	return dto.NewRPCError(req.ID, appErr.Code, appErr.Error())
}

// Health reports liveness. It never consults the provider.
func (s *MCPService) Health(_ context.Context) dto.HealthResponse {
	return dto.HealthResponse{
		Status:  "healthy",
		Service: s.Info.Name,
		Version: s.Info.Version,
	}
}

// Describe lists the HTTP surface and the exposed tool names.
func (s *MCPService) Describe(_ context.Context) dto.ServiceDescriptor {
	return dto.ServiceDescriptor{
		Service: s.Info.Title,
		Version: s.Info.Version,
		Endpoints: map[string]string{
			"health": "GET /health",
			"mcp":    "POST /mcp",
		},
		Tools: s.Toolbox.Names(),
	}
}
