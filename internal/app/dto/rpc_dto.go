package dto

import (
	"encoding/json"
	"net/http"

	"github.com/ijalalfrz/travel-search-mcp-service/internal/pkg/exception"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/tidwall/gjson"
)

const ProtocolVersion = "2024-11-05"

var ErrParse = exception.ApplicationError{
	Message: "Parse error",
	Code:    mcp.PARSE_ERROR,
}

var ErrInvalidRequest = exception.ApplicationError{
	Message: "Invalid request",
	Code:    mcp.INVALID_REQUEST,
}

// RPCRequest is the inbound JSON-RPC envelope. Fields are looked up leniently:
// a missing or non-string method leaves Method empty, a missing id stays nil.
type RPCRequest struct {
	JSONRPC string
	Method  string
	ID      json.RawMessage
	Params  ToolCallParams
}

type ToolCallParams struct {
	Name      string
	Arguments json.RawMessage
}

func (r *RPCRequest) UnmarshalJSON(data []byte) error {
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return ErrInvalidRequest
	}

	r.JSONRPC = root.Get("jsonrpc").String()

	if method := root.Get("method"); method.Type == gjson.String {
		r.Method = method.Str
	}

	if id := root.Get("id"); id.Exists() {
		r.ID = json.RawMessage(id.Raw)
	}

	if name := root.Get("params.name"); name.Type == gjson.String {
		r.Params.Name = name.Str
	}

	if args := root.Get("params.arguments"); args.Exists() {
		r.Params.Arguments = json.RawMessage(args.Raw)
	}

	return nil
}

// Bind implements render.Binder.
func (r *RPCRequest) Bind(_ *http.Request) error {
	return nil
}

// RPCResponse is the outbound envelope; exactly one of Result and Error is set.
type RPCResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  any             `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
	ID      json.RawMessage `json:"id"`
}

type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewRPCResult(id json.RawMessage, result any) RPCResponse {
	return RPCResponse{
		JSONRPC: mcp.JSONRPC_VERSION,
		Result:  result,
		ID:      id,
	}
}

func NewRPCError(id json.RawMessage, code int, message string) RPCResponse {
	return RPCResponse{
		JSONRPC: mcp.JSONRPC_VERSION,
		Error: &RPCError{
			Code:    code,
			Message: message,
		},
		ID: id,
	}
}

type InitializeResult struct {
	ProtocolVersion string             `json:"protocolVersion"`
	Capabilities    ServerCapabilities `json:"capabilities"`
	ServerInfo      mcp.Implementation `json:"serverInfo"`
}

type ServerCapabilities struct {
	Tools struct{} `json:"tools"`
}

type ListToolsResult struct {
	Tools []Tool `json:"tools"`
}

// Tool is the descriptor returned verbatim by tools/list.
type Tool struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	InputSchema mcp.ToolInputSchema `json:"inputSchema"`
}

// Property describes one argument in a tool input schema.
func Property(kind, description string) map[string]any {
	return map[string]any{
		"type":        kind,
		"description": description,
	}
}

// NewTextResult wraps a report as tool output content.
func NewTextResult(text string) mcp.CallToolResult {
	return mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(text)},
	}
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

type ServiceDescriptor struct {
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
	Tools     []string          `json:"tools"`
}
