package transport

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/ijalalfrz/travel-search-mcp-service/internal/app/dto"
	"github.com/ijalalfrz/travel-search-mcp-service/internal/app/endpoints"
	httptransport "github.com/ijalalfrz/travel-search-mcp-service/internal/pkg/transport/http"
)

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
func MakeHTTPRouter(endpts endpoints.Endpoints) *chi.Mux {
	// Initialize Router
	router := chi.NewRouter()

	router.Use(
		httptransport.RequestID(),
		httptransport.RequestLogger(slog.Default()),
		httptransport.CORSMiddleware(),
		httptransport.Recoverer(slog.Default()),
		render.SetContentType(render.ContentTypeJSON),
	)

	router.Get("/health", httptransport.MakeHandlerFunc(
		endpts.MCPEndpoint.Health,
		httptransport.NoRequest,
		httptransport.ResponseWithBody,
	))

	router.Get("/", httptransport.MakeHandlerFunc(
		endpts.MCPEndpoint.Describe,
		httptransport.NoRequest,
		httptransport.ResponseWithBody,
	))

	router.Post("/mcp", httptransport.MakeHandlerFunc(
		endpts.MCPEndpoint.Handle,
		httptransport.DecodeRequest[dto.RPCRequest],
		httptransport.ResponseWithBody,
	))

	return router
}
