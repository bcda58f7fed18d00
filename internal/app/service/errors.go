package service

import (
	"github.com/ijalalfrz/travel-search-mcp-service/internal/pkg/exception"
	"github.com/mark3labs/mcp-go/mcp"
)

// ProviderErrorCode is the JSON-RPC server error code used when the upstream
// search provider fails.
const ProviderErrorCode = -32000

var ErrMethodNotFound = exception.ApplicationError{
	Message: "Method not found",
	Code:    mcp.METHOD_NOT_FOUND,
}

var ErrInvalidParams = exception.ApplicationError{
	Message: "Invalid parameters",
	Code:    mcp.INVALID_PARAMS,
}

var ErrFlightSearchFailed = exception.ApplicationError{
	Message: "Flight search failed",
	Code:    ProviderErrorCode,
}

var ErrStaySearchFailed = exception.ApplicationError{
	Message: "Stay search failed",
	Code:    ProviderErrorCode,
}

var ErrInternal = exception.ApplicationError{
	Message: "Internal error",
	Code:    mcp.INTERNAL_ERROR,
}
