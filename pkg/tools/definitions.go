package tools

import (
	"github.com/google/jsonschema-go/jsonschema"
	"k8s.io/utils/ptr"
)

const (
	defaultPage    = 1
	defaultPerPage = 20
	maxPage        = 100
	maxPerPage     = 100
)

var (
	pageParam = ParamDef{
		Name:        "page",
		Type:        ParamTypeInteger,
		Description: "Page number (1-100)",
		Default:     defaultPage,
		Minimum:     ptr.To(1.0),
		Maximum:     ptr.To(float64(maxPage)),
	}

	perPageParam = ParamDef{
		Name:        "per_page",
		Type:        ParamTypeInteger,
		Description: "Number of results per page (1-100)",
		Default:     defaultPerPage,
		Minimum:     ptr.To(1.0),
		Maximum:     ptr.To(float64(maxPerPage)),
	}

	taggingSchema = &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"name": {
				Type:        "string",
				Description: "Tag name, e.g. 'Go'",
			},
			"versions": {
				Type:        "array",
				Description: "Optional versions for the tag, e.g. ['1.25']",
				Items:       &jsonschema.Schema{Type: "string"},
			},
		},
		Required: []string{"name"},
	}
)

// All tool definitions as a single source of truth
var (
	GetUser = ToolDef{
		Name:        "get_qiita_user",
		Description: GetUserPrompt,
		Title:       "Get Authenticated User",
		ReadOnly:    true,
		Destructive: false,
		Idempotent:  true,
		OpenWorld:   true,
	}

	SearchArticles = ToolDef{
		Name:        "search_qiita_articles",
		Description: SearchArticlesPrompt,
		Title:       "Search Articles",
		ReadOnly:    true,
		Destructive: false,
		Idempotent:  true,
		OpenWorld:   true,
		Params: []ParamDef{
			{
				Name:        "query",
				Type:        ParamTypeString,
				Description: "Search query in Qiita search syntax (e.g. 'tag:Go', 'user:qiita', 'title:MCP')",
				Required:    true,
			},
			pageParam,
			perPageParam,
		},
	}

	GetArticle = ToolDef{
		Name:        "get_qiita_article",
		Description: GetArticlePrompt,
		Title:       "Get Article",
		ReadOnly:    true,
		Destructive: false,
		Idempotent:  true,
		OpenWorld:   true,
		Params: []ParamDef{
			{
				Name:        "item_id",
				Type:        ParamTypeString,
				Description: "Article item id",
				Required:    true,
				MinLength:   ptr.To(1),
			},
		},
	}

	GetMyArticles = ToolDef{
		Name:        "get_my_qiita_articles",
		Description: GetMyArticlesPrompt,
		Title:       "List My Articles",
		ReadOnly:    true,
		Destructive: false,
		Idempotent:  true,
		OpenWorld:   true,
		Params: []ParamDef{
			pageParam,
			perPageParam,
		},
	}

	GetTags = ToolDef{
		Name:        "get_qiita_tags",
		Description: GetTagsPrompt,
		Title:       "List Tags",
		ReadOnly:    true,
		Destructive: false,
		Idempotent:  true,
		OpenWorld:   true,
		Params: []ParamDef{
			pageParam,
			perPageParam,
			{
				Name:        "sort",
				Type:        ParamTypeString,
				Description: "Sort order: 'count' (number of articles) or 'name'",
				Default:     "count",
				Enum:        []string{"count", "name"},
			},
		},
	}

	CreateArticle = ToolDef{
		Name:        "create_qiita_article",
		Description: CreateArticlePrompt,
		Title:       "Create Article",
		ReadOnly:    false,
		Destructive: false,
		Idempotent:  false,
		OpenWorld:   true,
		Params: []ParamDef{
			{
				Name:        "title",
				Type:        ParamTypeString,
				Description: "Article title",
				Required:    true,
			},
			{
				Name:        "body",
				Type:        ParamTypeString,
				Description: "Article body in Markdown",
				Required:    true,
			},
			{
				Name:        "tags",
				Type:        ParamTypeArray,
				Description: "Tags to attach, each {name, versions?}",
				Required:    true,
				Items:       taggingSchema,
			},
			{
				Name:        "private",
				Type:        ParamTypeBoolean,
				Description: "Publish as a limited-sharing (private) article",
				Default:     false,
			},
			{
				Name:        "tweet",
				Type:        ParamTypeBoolean,
				Description: "Announce the article on the linked X (Twitter) account",
				Default:     false,
			},
		},
	}
)

// AllTools returns every tool definition in registration order.
func AllTools() []ToolDef {
	return []ToolDef{
		GetUser,
		SearchArticles,
		GetArticle,
		GetMyArticles,
		GetTags,
		CreateArticle,
	}
}
