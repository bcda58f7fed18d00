package endpoints

// Endpoints holds every endpoint a tool server exposes.
type Endpoints struct {
	MCPEndpoint MCPEndpoint
}
