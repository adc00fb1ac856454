package tools

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/containers/kubernetes-mcp-server/pkg/api"
)

func TestInputSchema(t *testing.T) {
	schema := GetTags.InputSchema()

	if schema.Type != "object" {
		t.Errorf("expected object schema, got %q", schema.Type)
	}
	if len(schema.Required) != 0 {
		t.Errorf("expected no required params, got %v", schema.Required)
	}

	sort, ok := schema.Properties["sort"]
	if !ok {
		t.Fatal("expected sort property")
	}
	if len(sort.Enum) != 2 || sort.Enum[0] != "count" || sort.Enum[1] != "name" {
		t.Errorf("expected enum [count name], got %v", sort.Enum)
	}
	if string(sort.Default) != `"count"` {
		t.Errorf("expected default \"count\", got %s", sort.Default)
	}

	page := schema.Properties["page"]
	if page.Type != "integer" || string(page.Default) != "1" {
		t.Errorf("expected integer page defaulting to 1, got type=%q default=%s", page.Type, page.Default)
	}
}

func TestInputSchema_Required(t *testing.T) {
	schema := CreateArticle.InputSchema()

	want := []string{"title", "body", "tags"}
	if !slices.Equal(schema.Required, want) {
		t.Errorf("expected required %v, got %v", want, schema.Required)
	}

	tags := schema.Properties["tags"]
	if tags.Type != "array" || tags.Items == nil || tags.Items.Type != "object" {
		t.Errorf("expected array of objects for tags, got %+v", tags)
	}
	if tags.Default != nil {
		t.Errorf("required params must not carry defaults, got %s", tags.Default)
	}
}

func TestInputSchema_ItemIDMinLength(t *testing.T) {
	itemID := GetArticle.InputSchema().Properties["item_id"]
	if itemID.MinLength == nil || *itemID.MinLength != 1 {
		t.Errorf("expected item_id minLength 1, got %v", itemID.MinLength)
	}
}

func TestToMCPTool(t *testing.T) {
	tool := SearchArticles.ToMCPTool()

	if tool.Name != "search_qiita_articles" {
		t.Errorf("expected name search_qiita_articles, got %q", tool.Name)
	}
	if tool.Description != SearchArticlesPrompt {
		t.Error("expected description to be the search prompt")
	}
	if tool.Annotations.ReadOnlyHint == nil || !*tool.Annotations.ReadOnlyHint {
		t.Error("expected read-only hint")
	}

	var raw map[string]any
	if err := json.Unmarshal(tool.RawInputSchema, &raw); err != nil {
		t.Fatalf("raw input schema is not JSON: %v", err)
	}
	props, ok := raw["properties"].(map[string]any)
	if !ok {
		t.Fatalf("expected properties in %s", tool.RawInputSchema)
	}
	for _, name := range []string{"query", "page", "per_page"} {
		if _, ok := props[name]; !ok {
			t.Errorf("expected property %q", name)
		}
	}
}

func TestToMCPTool_NoParams(t *testing.T) {
	tool := GetUser.ToMCPTool()

	if string(tool.RawInputSchema) != `{"type":"object","properties":{}}` {
		t.Errorf("unexpected schema for tool without params: %s", tool.RawInputSchema)
	}
}

func TestToMCPTool_CreateIsNotReadOnly(t *testing.T) {
	tool := CreateArticle.ToMCPTool()

	if tool.Annotations.ReadOnlyHint == nil || *tool.Annotations.ReadOnlyHint {
		t.Error("expected create tool to not be read-only")
	}
	if tool.Annotations.IdempotentHint == nil || *tool.Annotations.IdempotentHint {
		t.Error("expected create tool to not be idempotent")
	}
}

func TestToServerTool(t *testing.T) {
	handler := func(api.ToolHandlerParams) (*api.ToolCallResult, error) { return nil, nil }
	st := GetArticle.ToServerTool(handler)

	if st.Tool.Name != "get_qiita_article" {
		t.Errorf("expected name get_qiita_article, got %q", st.Tool.Name)
	}
	if st.Tool.Annotations.Title != "Get Article" {
		t.Errorf("expected title Get Article, got %q", st.Tool.Annotations.Title)
	}
	if !slices.Equal(st.Tool.InputSchema.Required, []string{"item_id"}) {
		t.Errorf("expected item_id to be required, got %v", st.Tool.InputSchema.Required)
	}
	if st.Handler == nil {
		t.Error("expected handler to be set")
	}
}

func TestAllTools_UniqueNames(t *testing.T) {
	seen := map[string]bool{}
	for _, def := range AllTools() {
		if seen[def.Name] {
			t.Errorf("duplicate tool name %q", def.Name)
		}
		seen[def.Name] = true
	}
	if len(seen) != 6 {
		t.Errorf("expected 6 tools, got %d", len(seen))
	}
}
