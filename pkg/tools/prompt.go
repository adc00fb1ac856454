package tools

const (
	ServerPrompt = `You have access to Qiita, a Japanese knowledge-sharing platform for engineers, through this MCP server. All calls run as the user who owns the configured access token.

## WHAT YOU CAN DO

- **get_qiita_user**: who the authenticated user is (id, name, follower counts, item count)
- **search_qiita_articles**: full-text search over public articles
- **get_qiita_article**: fetch one article, including its Markdown body
- **get_my_qiita_articles**: list articles written by the authenticated user, including private ones
- **get_qiita_tags**: browse tags by popularity or name
- **create_qiita_article**: publish a new article as the authenticated user

## RULES

1. **Prefer search before fetch** - use search_qiita_articles to find item ids, then get_qiita_article for details.
2. **Paginate explicitly** - results are paged with page (1-100) and per_page (1-100). Do not fetch more pages than the user needs.
3. **NEVER call create_qiita_article without explicit confirmation** - it publishes content under the user's account. Show the title, tags and visibility first.
4. **Report errors as-is** - a failed call returns the HTTP status from Qiita (401 means the token is invalid, 403 missing scope, 404 unknown item, 429 rate limited).`

	GetUserPrompt = `Get the authenticated Qiita user.

Returns the profile of the user that owns the access token: id, name, description, followees/followers counts, items count and, for the authenticated user, image monthly upload limits.`

	SearchArticlesPrompt = `Search Qiita articles.

The query uses Qiita search syntax, for example:
- 'golang' plain keyword
- 'tag:Go' articles tagged Go
- 'user:qiita' articles by a user
- 'title:MCP stocks:>10' combined filters

Returns an array of articles ordered by creation date, newest first.`

	GetArticlePrompt = `Get a single Qiita article by its item id (the 20 character hex string at the end of the article URL).

Returns the full article including the Markdown body, tags, likes count and author.`

	GetMyArticlesPrompt = `List articles written by the authenticated user, newest first.

Private (limited sharing) articles are included.`

	GetTagsPrompt = `List Qiita tags.

Sort by 'count' (number of articles, default) to find popular tags or by 'name' to browse alphabetically. Use the tag ids in search queries as 'tag:<id>'.`

	CreateArticlePrompt = `Create and publish a new Qiita article as the authenticated user.

The body is Markdown. Between one and five tags are expected by Qiita; each tag may list versions (e.g. {"name": "Go", "versions": ["1.25"]}).
Set private=true for a limited-sharing article and tweet=true to announce it on the linked X account.

IMPORTANT: this publishes content. Confirm title, body, tags and visibility with the user before calling.`
)
