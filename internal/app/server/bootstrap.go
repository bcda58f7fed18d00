package server

import (
	"log/slog"
	"os"

	"github.com/ijalalfrz/travel-search-mcp-service/internal/app/config"
	"github.com/ijalalfrz/travel-search-mcp-service/internal/app/dto"
	"github.com/ijalalfrz/travel-search-mcp-service/internal/app/endpoints"
	"github.com/ijalalfrz/travel-search-mcp-service/internal/app/service"
	"github.com/ijalalfrz/travel-search-mcp-service/internal/app/transport"
	"github.com/ijalalfrz/travel-search-mcp-service/internal/pkg/duffel"
	"github.com/ijalalfrz/travel-search-mcp-service/internal/pkg/logger"
)

// Version is reported by initialize, /health and the service descriptor.
const Version = "0.1.0"

// MustLoad reads configuration for the named service and installs the
// structured logger. It exits the process when configuration is invalid.
func MustLoad(serviceName string, defaultPort int) config.Config {
	cfg := config.MustInitConfig(".env", config.Defaults{Port: defaultPort})
	logger.InitStructuredLogger(cfg.LogLevel, serviceName)

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := dto.InitValidator(); err != nil {
		slog.Error("failed to init validator", slog.String("error", err.Error()))
		panic(err)
	}

	slog.Debug("config loaded successfully", slog.Any("config", cfg))

	return cfg
}

// NewDuffelClient builds the provider client shared by every request.
func NewDuffelClient(cfg config.Config) *duffel.Client {
	return duffel.NewClient(duffel.Config{
		BaseURL:    cfg.Duffel.BaseURL,
		APIToken:   cfg.Duffel.APIToken,
		APIVersion: cfg.Duffel.APIVersion,
		Timeout:    cfg.Duffel.Timeout,
	})
}

// Serve exposes tools under info and runs until shutdown.
func Serve(cfg config.Config, info service.ServerInfo, tools ...service.Tool) {
	svc := service.NewMCPService(info, service.NewToolbox(tools...))

	router := transport.MakeHTTPRouter(endpoints.Endpoints{
		MCPEndpoint: endpoints.MakeMCPEndpoint(svc),
	})

	slog.Info("tools registered", slog.Any("tools", svc.Toolbox.Names()))

	Run(cfg, router)
}
