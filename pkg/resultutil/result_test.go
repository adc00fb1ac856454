package resultutil

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

type article struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Tags  []string `json:"tags"`
}

func textOf(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) != 1 {
		t.Fatalf("expected exactly one content block, got %d", len(res.Content))
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	if text.Type != "text" {
		t.Errorf("expected content type text, got %q", text.Type)
	}
	return text.Text
}

func TestNewSuccessResult(t *testing.T) {
	output := article{ID: "abc", Title: "Hello", Tags: []string{"go", "mcp"}}

	result := NewSuccessResult(output)

	if result.IsError() {
		t.Errorf("expected success result, got error: %v", result.Error)
	}
	if result.Data == nil {
		t.Error("expected Data to be set")
	}

	// Indented with two spaces
	if !strings.Contains(result.Text, "\n  \"id\": \"abc\"") {
		t.Errorf("expected pretty-printed JSON, got:\n%s", result.Text)
	}

	var decoded article
	if err := json.Unmarshal([]byte(result.Text), &decoded); err != nil {
		t.Errorf("failed to unmarshal Text: %v", err)
	}
	if decoded.Title != output.Title {
		t.Errorf("expected title %q, got %q", output.Title, decoded.Title)
	}
}

func TestNewErrorResult(t *testing.T) {
	errorMsg := "test error message"
	result := NewErrorResult(errors.New(errorMsg))

	if !result.IsError() {
		t.Error("expected error result")
	}
	if result.Error.Error() != errorMsg {
		t.Errorf("expected error message %q, got %q", errorMsg, result.Error.Error())
	}
	if result.Data != nil {
		t.Error("expected Data to be nil for error result")
	}
	if result.String() != errorMsg {
		t.Errorf("expected String() %q, got %q", errorMsg, result.String())
	}
}

func TestNewErrorResultf(t *testing.T) {
	base := errors.New("boom")
	result := NewErrorResultf("failed to get article: %w", base)

	if !errors.Is(result.Error, base) {
		t.Error("expected wrapped error to be preserved")
	}
	if result.Error.Error() != "failed to get article: boom" {
		t.Errorf("unexpected message %q", result.Error.Error())
	}
}

func TestToMCPResult_Success(t *testing.T) {
	result := NewSuccessResult(article{ID: "abc"})
	mcpResult, err := result.ToMCPResult()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mcpResult.IsError {
		t.Error("expected IsError=false for success")
	}
	if got := textOf(t, mcpResult); got != result.Text {
		t.Errorf("expected text %q, got %q", result.Text, got)
	}
}

func TestToMCPResult_Error(t *testing.T) {
	result := NewErrorResult(errors.New("request failed with status 404"))
	mcpResult, err := result.ToMCPResult()
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	// MCP error results should have isError set to true
	if !mcpResult.IsError {
		t.Error("expected MCP result to have IsError=true")
	}
	if got := textOf(t, mcpResult); !strings.Contains(got, "404") {
		t.Errorf("expected error text to mention status, got %q", got)
	}
}

func TestToToolsetResult_Success(t *testing.T) {
	result := NewSuccessResult(article{ID: "abc", Title: "test"})
	toolsetResult, err := result.ToToolsetResult()
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if toolsetResult.Error != nil {
		t.Errorf("expected no error in result, got: %v", toolsetResult.Error)
	}

	var decoded article
	if err := json.Unmarshal([]byte(toolsetResult.Content), &decoded); err != nil {
		t.Errorf("failed to unmarshal content: %v", err)
	}
}

func TestToToolsetResult_Error(t *testing.T) {
	errorMsg := "test error"
	result := NewErrorResult(errors.New(errorMsg))
	toolsetResult, err := result.ToToolsetResult()
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if toolsetResult.Error == nil {
		t.Fatal("expected error in result")
	}
	if toolsetResult.Error.Error() != errorMsg {
		t.Errorf("expected error message %q, got %q", errorMsg, toolsetResult.Error.Error())
	}
}

func TestMarshalError(t *testing.T) {
	type unmarshalable struct {
		Channel chan int
	}

	result := NewSuccessResult(unmarshalable{Channel: make(chan int)})

	if !result.IsError() {
		t.Error("expected error result when marshaling fails")
	}
}
