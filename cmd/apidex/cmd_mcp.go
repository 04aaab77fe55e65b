package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/HerbHall/apidex/internal/catalog"
	"github.com/HerbHall/apidex/internal/version"
)

func newMCPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the catalog as MCP tools over stdio",
		Long: `Run an MCP server on stdin/stdout exposing the tools
search_apis, get_api, list_categories and category_apis.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return catalog.ServeMCP(cmd.Context(), a.engine, a.logger, version.Short(), &mcp.StdioTransport{})
		},
	}
}
