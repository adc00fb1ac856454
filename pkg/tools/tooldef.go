package tools

import (
	"encoding/json"
	"log/slog"

	"github.com/containers/kubernetes-mcp-server/pkg/api"
	"github.com/google/jsonschema-go/jsonschema"
	"k8s.io/utils/ptr"

	"github.com/mark3labs/mcp-go/mcp"
)

// ParamDef defines a tool parameter
type ParamDef struct {
	Name        string
	Type        ParamType
	Description string
	Required    bool
	// Default is applied when the parameter is absent. Ignored for required params.
	Default any
	// Enum restricts a string parameter to the listed values.
	Enum []string
	// MinLength bounds string parameters.
	MinLength *int
	// Minimum and Maximum bound integer and number parameters.
	Minimum *float64
	Maximum *float64
	// Items describes array elements.
	Items *jsonschema.Schema
}

// ParamType represents the type of a parameter
type ParamType string

const (
	ParamTypeString  ParamType = "string"
	ParamTypeInteger ParamType = "integer"
	ParamTypeNumber  ParamType = "number"
	ParamTypeBoolean ParamType = "boolean"
	ParamTypeArray   ParamType = "array"
)

// ToolDef defines a tool that can be converted to different formats (MCP, Toolset, etc.)
type ToolDef struct {
	Name        string
	Description string
	Title       string
	Params      []ParamDef
	ReadOnly    bool
	Destructive bool
	Idempotent  bool
	OpenWorld   bool
}

// Schema returns the JSON schema of a single parameter.
func (p ParamDef) Schema() *jsonschema.Schema {
	schema := &jsonschema.Schema{
		Type:        string(p.Type),
		Description: p.Description,
		MinLength:   p.MinLength,
		Minimum:     p.Minimum,
		Maximum:     p.Maximum,
	}

	if p.Default != nil && !p.Required {
		raw, err := json.Marshal(p.Default)
		if err != nil {
			slog.Warn("Ignoring unencodable parameter default", "param", p.Name, "error", err)
		} else {
			schema.Default = raw
		}
	}

	for _, v := range p.Enum {
		schema.Enum = append(schema.Enum, v)
	}

	if p.Type == ParamTypeArray {
		schema.Items = p.Items
	}

	return schema
}

// InputSchema returns the object schema describing all parameters of the tool.
func (d ToolDef) InputSchema() *jsonschema.Schema {
	properties := make(map[string]*jsonschema.Schema, len(d.Params))
	var required []string

	for _, param := range d.Params {
		properties[param.Name] = param.Schema()
		if param.Required {
			required = append(required, param.Name)
		}
	}

	inputSchema := &jsonschema.Schema{
		Type:       "object",
		Properties: properties,
	}

	if len(required) > 0 {
		inputSchema.Required = required
	}

	return inputSchema
}

// rawInputSchema returns the input schema as JSON for MCP clients.
func (d ToolDef) rawInputSchema() json.RawMessage {
	// Workaround for tools with no parameters
	// See https://github.com/containers/kubernetes-mcp-server/pull/341/files
	if len(d.Params) == 0 {
		return json.RawMessage(`{"type":"object","properties":{}}`)
	}

	raw, err := json.Marshal(d.InputSchema())
	if err != nil {
		// Schemas are built from static definitions, so this is a programming error.
		panic("tools: cannot marshal input schema for " + d.Name + ": " + err.Error())
	}
	return raw
}

// ToMCPTool converts a ToolDef to an mcp.Tool
func (d ToolDef) ToMCPTool() mcp.Tool {
	tool := mcp.NewToolWithRawSchema(d.Name, d.Description, d.rawInputSchema())
	tool.Annotations = mcp.ToolAnnotation{
		Title:           d.Title,
		ReadOnlyHint:    ptr.To(d.ReadOnly),
		DestructiveHint: ptr.To(d.Destructive),
		IdempotentHint:  ptr.To(d.Idempotent),
		OpenWorldHint:   ptr.To(d.OpenWorld),
	}
	return tool
}

// ToServerTool converts a ToolDef to an api.ServerTool
func (d ToolDef) ToServerTool(handler func(api.ToolHandlerParams) (*api.ToolCallResult, error)) api.ServerTool {
	return api.ServerTool{
		Tool: api.Tool{
			Name:        d.Name,
			Description: d.Description,
			InputSchema: d.InputSchema(),
			Annotations: api.ToolAnnotations{
				Title:           d.Title,
				ReadOnlyHint:    ptr.To(d.ReadOnly),
				DestructiveHint: ptr.To(d.Destructive),
				IdempotentHint:  ptr.To(d.Idempotent),
				OpenWorldHint:   ptr.To(d.OpenWorld),
			},
		},
		Handler: handler,
	}
}
