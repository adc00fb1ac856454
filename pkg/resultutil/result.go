package resultutil

import (
	"encoding/json"
	"fmt"

	"github.com/containers/kubernetes-mcp-server/pkg/api"
	"github.com/mark3labs/mcp-go/mcp"
)

// Result is the outcome of a tool invocation. It is converted to the MCP or
// toolset envelope at the edge; both carry a single text content block.
type Result struct {
	// Data holds the value that was rendered (only set for successful results)
	Data any
	// Text is the pretty-printed JSON rendering of Data
	Text string
	// Error holds any error that occurred (nil for successful results)
	Error error
}

// NewSuccessResult renders data as indented JSON.
// If marshaling fails, an error result is returned instead.
func NewSuccessResult(data any) *Result {
	jsonBytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return &Result{
			Error: fmt.Errorf("failed to marshal result: %w", err),
		}
	}

	return &Result{
		Data: data,
		Text: string(jsonBytes),
	}
}

// NewErrorResult creates an error result with the given error.
func NewErrorResult(err error) *Result {
	return &Result{
		Error: err,
	}
}

// NewErrorResultf is NewErrorResult with fmt.Errorf semantics.
func NewErrorResultf(format string, args ...any) *Result {
	return NewErrorResult(fmt.Errorf(format, args...))
}

// ToMCPResult converts the Result to an MCP CallToolResult.
// Returns (result, nil) following the MCP pattern where errors
// are encoded in the result, not the error return value.
func (r *Result) ToMCPResult() (*mcp.CallToolResult, error) {
	if r.Error != nil {
		//nolint:nilerr // MCP pattern encodes errors in result, not error return
		return mcp.NewToolResultError(r.Error.Error()), nil
	}
	return mcp.NewToolResultText(r.Text), nil
}

// ToToolsetResult converts the Result to a Toolset ToolCallResult.
// Returns (result, nil) following the pattern where errors are encoded
// in the ToolCallResult, not the error return value.
func (r *Result) ToToolsetResult() (*api.ToolCallResult, error) {
	if r.Error != nil {
		//nolint:nilerr // Toolset pattern encodes errors in result, not error return
		return api.NewToolCallResult("", r.Error), nil
	}
	return api.NewToolCallResult(r.Text, nil), nil
}

// IsError returns true if the result represents an error.
func (r *Result) IsError() bool {
	return r.Error != nil
}

// String returns the text carried in the envelope for either outcome.
func (r *Result) String() string {
	if r.Error != nil {
		return r.Error.Error()
	}
	return r.Text
}
