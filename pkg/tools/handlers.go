package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rhobs/qiita-mcp/pkg/qiita"
	"github.com/rhobs/qiita-mcp/pkg/resultutil"
)

// ArticleCreatedMessage is the confirmation returned by create_qiita_article.
const ArticleCreatedMessage = "Article created successfully"

// Input structs for handler parameters

// GetUserInput defines the input parameters for GetUserHandler.
type GetUserInput struct{}

// SearchArticlesInput defines the input parameters for SearchArticlesHandler.
type SearchArticlesInput struct {
	Query   string `json:"query"`
	Page    int    `json:"page"`
	PerPage int    `json:"per_page"`
}

// GetArticleInput defines the input parameters for GetArticleHandler.
type GetArticleInput struct {
	ItemID string `json:"item_id"`
}

// GetMyArticlesInput defines the input parameters for GetMyArticlesHandler.
type GetMyArticlesInput struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

// GetTagsInput defines the input parameters for GetTagsHandler.
type GetTagsInput struct {
	Page    int    `json:"page"`
	PerPage int    `json:"per_page"`
	Sort    string `json:"sort"`
}

// CreateArticleInput defines the input parameters for CreateArticleHandler.
type CreateArticleInput struct {
	Title   string          `json:"title"`
	Body    string          `json:"body"`
	Tags    []qiita.Tagging `json:"tags"`
	Private bool            `json:"private"`
	Tweet   bool            `json:"tweet"`
}

// CreateArticleOutput wraps the created article with a confirmation message.
type CreateArticleOutput struct {
	Message string `json:"message"`
	Article any    `json:"article"`
}

// GetUserHandler returns the authenticated user.
func GetUserHandler(ctx context.Context, client qiita.API, _ GetUserInput) *resultutil.Result {
	user, err := client.AuthenticatedUser(ctx)
	if err != nil {
		return resultutil.NewErrorResult(fmt.Errorf("failed to get authenticated user: %w", err))
	}
	return resultutil.NewSuccessResult(user)
}

// SearchArticlesHandler searches public articles.
func SearchArticlesHandler(ctx context.Context, client qiita.API, input SearchArticlesInput) *resultutil.Result {
	items, err := client.SearchItems(ctx, input.Query, qiita.ListOptions{Page: input.Page, PerPage: input.PerPage})
	if err != nil {
		return resultutil.NewErrorResult(fmt.Errorf("failed to search articles: %w", err))
	}
	slog.Debug("SearchArticlesHandler results", "count", count(items))
	return resultutil.NewSuccessResult(items)
}

// GetArticleHandler fetches a single article.
func GetArticleHandler(ctx context.Context, client qiita.API, input GetArticleInput) *resultutil.Result {
	item, err := client.GetItem(ctx, input.ItemID)
	if err != nil {
		return resultutil.NewErrorResult(fmt.Errorf("failed to get article %q: %w", input.ItemID, err))
	}
	return resultutil.NewSuccessResult(item)
}

// GetMyArticlesHandler lists articles of the authenticated user.
func GetMyArticlesHandler(ctx context.Context, client qiita.API, input GetMyArticlesInput) *resultutil.Result {
	items, err := client.AuthenticatedUserItems(ctx, qiita.ListOptions{Page: input.Page, PerPage: input.PerPage})
	if err != nil {
		return resultutil.NewErrorResult(fmt.Errorf("failed to list my articles: %w", err))
	}
	slog.Debug("GetMyArticlesHandler results", "count", count(items))
	return resultutil.NewSuccessResult(items)
}

// GetTagsHandler lists tags.
func GetTagsHandler(ctx context.Context, client qiita.API, input GetTagsInput) *resultutil.Result {
	tags, err := client.ListTags(ctx, input.Sort, qiita.ListOptions{Page: input.Page, PerPage: input.PerPage})
	if err != nil {
		return resultutil.NewErrorResult(fmt.Errorf("failed to list tags: %w", err))
	}
	slog.Debug("GetTagsHandler results", "count", count(tags))
	return resultutil.NewSuccessResult(tags)
}

// CreateArticleHandler publishes a new article.
func CreateArticleHandler(ctx context.Context, client qiita.API, input CreateArticleInput) *resultutil.Result {
	article, err := client.CreateItem(ctx, qiita.NewItem{
		Title:   input.Title,
		Body:    input.Body,
		Tags:    input.Tags,
		Private: input.Private,
		Tweet:   input.Tweet,
	})
	if err != nil {
		return resultutil.NewErrorResult(fmt.Errorf("failed to create article: %w", err))
	}

	slog.Info("Article created", "title", input.Title, "private", input.Private)
	return resultutil.NewSuccessResult(CreateArticleOutput{
		Message: ArticleCreatedMessage,
		Article: article,
	})
}

func count(v any) int {
	if list, ok := v.([]any); ok {
		return len(list)
	}
	return 0
}

func withClient[T any](client qiita.API, fn func(context.Context, qiita.API, T) *resultutil.Result) Handler {
	return Bind(func(ctx context.Context, input T) *resultutil.Result {
		return fn(ctx, client, input)
	})
}

// NewQiitaRegistry returns a registry holding every Qiita tool bound to client.
func NewQiitaRegistry(client qiita.API, opts ...Option) (*Registry, error) {
	r := NewRegistry(opts...)

	handlers := map[string]Handler{
		GetUser.Name:        withClient(client, GetUserHandler),
		SearchArticles.Name: withClient(client, SearchArticlesHandler),
		GetArticle.Name:     withClient(client, GetArticleHandler),
		GetMyArticles.Name:  withClient(client, GetMyArticlesHandler),
		GetTags.Name:        withClient(client, GetTagsHandler),
		CreateArticle.Name:  withClient(client, CreateArticleHandler),
	}

	for _, def := range AllTools() {
		if err := r.Register(def, handlers[def.Name]); err != nil {
			return nil, err
		}
	}
	return r, nil
}
