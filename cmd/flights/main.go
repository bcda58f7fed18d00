package main

import (
	"github.com/ijalalfrz/travel-search-mcp-service/internal/app/server"
	"github.com/ijalalfrz/travel-search-mcp-service/internal/app/service"
)

const (
	serviceName = "duffel-flights-mcp"
	defaultPort = 3001
)

func main() {
	cfg := server.MustLoad(serviceName, defaultPort)

	flights := service.NewFlightService(server.NewDuffelClient(cfg))

	server.Serve(cfg, service.ServerInfo{
		Name:    serviceName,
		Title:   "Duffel Flights MCP Server",
		Version: server.Version,
	}, flights)
}
