package tools

import (
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/applicantmesh/iam-mcp-server/internal/domain"
)

// ErrorEnvelope is the structured failure payload returned to the host.
// Code is stable; Message is human-readable. Nothing else crosses the
// protocol boundary.
type ErrorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// textResult returns a text-only ToolResult
func textResult(msg string) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{
			&sdkmcp.TextContent{Text: msg},
		},
	}
}

// errorResult converts any pipeline failure into the protocol error
// envelope, keeping the raw cause out of the response.
func errorResult(err error) (*sdkmcp.CallToolResult, ErrorEnvelope) {
	envelope := ErrorEnvelope{
		Code:    string(domain.CodeOf(err)),
		Message: domain.MessageOf(err),
	}

	res := &sdkmcp.CallToolResult{
		IsError: true,
		Content: []sdkmcp.Content{
			&sdkmcp.TextContent{Text: fmt.Sprintf("%s: %s", envelope.Code, envelope.Message)},
		},
	}

	return res, envelope
}
