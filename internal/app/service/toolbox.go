package service

import (
	"context"
	"encoding/json"

	"github.com/ijalalfrz/travel-search-mcp-service/internal/app/dto"
)

// Tool is a callable search tool exposed through tools/list and tools/call.
type Tool interface {
	Descriptor() dto.Tool
	Call(ctx context.Context, arguments json.RawMessage) (string, error)
}

// Toolbox keeps the tools a server exposes, in registration order. It is
// populated once at startup and read-only afterwards.
type Toolbox struct {
	tools map[string]Tool
	names []string
}

func NewToolbox(tools ...Tool) *Toolbox {
	box := &Toolbox{
		tools: make(map[string]Tool),
	}

	for _, tool := range tools {
		box.AddTool(tool)
	}

	return box
}

func (b *Toolbox) AddTool(tool Tool) {
	name := tool.Descriptor().Name
	if _, ok := b.tools[name]; !ok {
		b.names = append(b.names, name)
	}

	b.tools[name] = tool
}

func (b *Toolbox) GetTool(name string) (Tool, bool) {
	tool, ok := b.tools[name]

	return tool, ok
}

func (b *Toolbox) GetAllTools() []Tool {
	tools := make([]Tool, 0, len(b.names))
	for _, name := range b.names {
		tools = append(tools, b.tools[name])
	}

	return tools
}

// Names lists the registered tool names.
func (b *Toolbox) Names() []string {
	return append([]string(nil), b.names...)
}
