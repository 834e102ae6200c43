// Package tools wires the server's MCP tool handlers. The server currently
// exposes a single search tool; the option form keeps registration uniform
// as tools are added.
package tools

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Option installs one tool handler during registration.
type Option func(*registrar)

// registrar carries the target server through the option pass.
type registrar struct {
	server *sdkmcp.Server
}

// Register installs the selected tools on the server. Nil options are
// skipped, so callers can build the option list conditionally.
func Register(server *sdkmcp.Server, opts ...Option) {
	reg := &registrar{server: server}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(reg)
	}
}
