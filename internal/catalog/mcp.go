package catalog

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	pkgcatalog "github.com/HerbHall/apidex/pkg/catalog"
)

// SearchInput is the argument of the search_apis tool.
type SearchInput struct {
	Search   string `json:"search,omitempty" jsonschema:"case-insensitive substring matched against name and description"`
	Category string `json:"category,omitempty" jsonschema:"exact category label, or all"`
	AuthType string `json:"authType,omitempty" jsonschema:"exact auth type, or all"`
	Sort     string `json:"sort,omitempty" jsonschema:"name or category"`
}

// SearchOutput is the result of the search_apis tool.
type SearchOutput struct {
	Count int                    `json:"count"`
	APIs  []pkgcatalog.APIRecord `json:"apis"`
}

// IDInput names one API.
type IDInput struct {
	ID string `json:"id" jsonschema:"API id, for example stripe"`
}

// SlugInput names one category by slug.
type SlugInput struct {
	Slug string `json:"slug" jsonschema:"category slug, for example ai-machine-learning"`
}

// CategoriesOutput is the result of the list_categories tool.
type CategoriesOutput struct {
	Categories []CategorySummary `json:"categories"`
}

// MCPTools exposes the engine as MCP tools.
type MCPTools struct {
	engine *Engine
	logger *zap.Logger
}

// NewMCPServer builds an MCP server with the catalog tools registered.
func NewMCPServer(engine *Engine, logger *zap.Logger, version string) *mcp.Server {
	t := &MCPTools{engine: engine, logger: logger}
	s := mcp.NewServer(&mcp.Implementation{Name: "apidex", Version: version}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "search_apis",
		Description: "Search the public API directory by text, category and auth type",
	}, t.search)
	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_api",
		Description: "Get one API by id together with up to three related APIs",
	}, t.get)
	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_categories",
		Description: "List categories with their slugs, sizes and a short preview",
	}, t.categories)
	mcp.AddTool(s, &mcp.Tool{
		Name:        "category_apis",
		Description: "List the APIs of one category given its slug",
	}, t.category)

	return s
}

// ServeMCP runs the catalog tools over transport until ctx is done or the
// client disconnects.
func ServeMCP(ctx context.Context, engine *Engine, logger *zap.Logger, version string, transport mcp.Transport) error {
	logger.Info("serving catalog over MCP")
	return NewMCPServer(engine, logger, version).Run(ctx, transport)
}

func (t *MCPTools) search(_ context.Context, _ *mcp.CallToolRequest, in SearchInput) (*mcp.CallToolResult, SearchOutput, error) {
	sortKey, err := ParseSortKey(in.Sort)
	if err != nil {
		return nil, SearchOutput{}, err
	}
	records := t.engine.Query(Query{
		Search:   in.Search,
		Category: in.Category,
		AuthType: in.AuthType,
		Sort:     sortKey,
	})
	return nil, SearchOutput{Count: len(records), APIs: records}, nil
}

func (t *MCPTools) get(_ context.Context, _ *mcp.CallToolRequest, in IDInput) (*mcp.CallToolResult, Detail, error) {
	detail, err := t.engine.Detail(in.ID)
	if err != nil {
		t.logger.Debug("mcp get_api miss", zap.String("id", in.ID))
		return nil, Detail{}, err
	}
	return nil, detail, nil
}

func (t *MCPTools) categories(_ context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, CategoriesOutput, error) {
	return nil, CategoriesOutput{Categories: t.engine.Summaries()}, nil
}

func (t *MCPTools) category(_ context.Context, _ *mcp.CallToolRequest, in SlugInput) (*mcp.CallToolResult, CategoryView, error) {
	view, err := t.engine.ByCategorySlug(in.Slug)
	if err != nil {
		t.logger.Debug("mcp category_apis miss", zap.String("slug", in.Slug))
		return nil, CategoryView{}, err
	}
	return nil, view, nil
}
