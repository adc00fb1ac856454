package toolset

import (
	"github.com/containers/kubernetes-mcp-server/pkg/api"
	"github.com/containers/kubernetes-mcp-server/pkg/toolsets"

	// Registers the [qiita] toolset configuration section.
	_ "github.com/rhobs/qiita-mcp/pkg/toolset/config"
	"github.com/rhobs/qiita-mcp/pkg/toolset/tools"
	qiitatools "github.com/rhobs/qiita-mcp/pkg/tools"
)

// Toolset exposes the Qiita tools to kubernetes-mcp-server.
type Toolset struct{}

var _ api.Toolset = (*Toolset)(nil)

// GetName returns the name of the toolset.
func (t *Toolset) GetName() string {
	return "qiita"
}

// GetDescription returns a human-readable description of the toolset.
func (t *Toolset) GetDescription() string {
	return qiitatools.ServerPrompt
}

// GetTools returns all tools provided by this toolset.
func (t *Toolset) GetTools(_ api.Openshift) []api.ServerTool {
	return tools.InitTools()
}

// GetPrompts returns prompts provided by this toolset.
func (t *Toolset) GetPrompts() []api.ServerPrompt {
	// The usage guidance lives in the tool descriptions
	return nil
}

// GetResourceTemplates returns resource templates provided by this toolset.
func (t *Toolset) GetResourceTemplates() []api.ServerResourceTemplate {
	return nil
}

func init() {
	toolsets.Register(&Toolset{})
}
