package tools

import (
	"github.com/containers/kubernetes-mcp-server/pkg/api"

	"github.com/rhobs/qiita-mcp/pkg/tools"
)

// InitTools creates a server tool for every Qiita tool definition.
func InitTools() []api.ServerTool {
	defs := tools.AllTools()
	serverTools := make([]api.ServerTool, 0, len(defs))
	for _, def := range defs {
		serverTools = append(serverTools, def.ToServerTool(handlerFor(def.Name)))
	}
	return serverTools
}
