package main

import (
	"github.com/ijalalfrz/travel-search-mcp-service/internal/app/server"
	"github.com/ijalalfrz/travel-search-mcp-service/internal/app/service"
)

const (
	serviceName = "duffel-stays-mcp"
	defaultPort = 3002
)

func main() {
	cfg := server.MustLoad(serviceName, defaultPort)

	stays := service.NewStayService(server.NewDuffelClient(cfg))

	server.Serve(cfg, service.ServerInfo{
		Name:    serviceName,
		Title:   "Duffel Stays MCP Server",
		Version: server.Version,
	}, stays)
}
