// ABOUTME: Article handlers for the Huma API
// ABOUTME: Provides HTTP endpoints for articles and their tags

package handlers

import (
	"context"
	"net/http"

	"inkwell-api/api/dto/mappers"
	"inkwell-api/api/dto/requests"
	"inkwell-api/api/dto/responses"
	"inkwell-api/core/domain"

	"github.com/danielgtaylor/huma/v2"
)

// ArticleService interface defines the methods needed from the article service
type ArticleService interface {
	Create(ctx context.Context, authorID int64, title, body, status string) (*domain.Article, error)
	GetByID(ctx context.Context, id int64) (*domain.Article, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Article, error)
	List(ctx context.Context, filters map[string]interface{}) ([]domain.Article, error)
	Update(ctx context.Context, id, actorID int64, changes map[string]interface{}) (*domain.Article, error)
	Delete(ctx context.Context, id, actorID int64) (bool, error)
	AttachTag(ctx context.Context, articleID, actorID int64, tagName string) (bool, error)
	DetachTag(ctx context.Context, articleID, actorID int64, tagName string) (bool, error)
	TagsFor(ctx context.Context, articleID int64) ([]domain.Tag, error)
}

// ArticleHandler handles article-related HTTP requests
type ArticleHandler struct {
	articleService ArticleService
}

// NewArticleHandler creates a new article handler
func NewArticleHandler(articleService ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

// RegisterRoutes registers all article-related routes
func (h *ArticleHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "createArticle",
		Method:      http.MethodPost,
		Path:        "/articles",
		Summary:     "Create an article",
		Tags:        []string{"Articles"},
	}, h.CreateArticle)

	huma.Register(api, huma.Operation{
		OperationID: "listArticles",
		Method:      http.MethodGet,
		Path:        "/articles",
		Summary:     "List articles",
		Description: "Lists articles, optionally filtered by status or author",
		Tags:        []string{"Articles"},
	}, h.ListArticles)

	huma.Register(api, huma.Operation{
		OperationID: "getArticle",
		Method:      http.MethodGet,
		Path:        "/articles/{id}",
		Summary:     "Get an article by ID",
		Tags:        []string{"Articles"},
	}, h.GetArticle)

	huma.Register(api, huma.Operation{
		OperationID: "getArticleBySlug",
		Method:      http.MethodGet,
		Path:        "/articles/slug/{slug}",
		Summary:     "Get an article by slug",
		Tags:        []string{"Articles"},
	}, h.GetArticleBySlug)

	huma.Register(api, huma.Operation{
		OperationID: "updateArticle",
		Method:      http.MethodPut,
		Path:        "/articles/{id}",
		Summary:     "Update an article",
		Tags:        []string{"Articles"},
	}, h.UpdateArticle)

	huma.Register(api, huma.Operation{
		OperationID: "deleteArticle",
		Method:      http.MethodDelete,
		Path:        "/articles/{id}",
		Summary:     "Delete an article",
		Tags:        []string{"Articles"},
	}, h.DeleteArticle)

	huma.Register(api, huma.Operation{
		OperationID: "attachTag",
		Method:      http.MethodPost,
		Path:        "/articles/{id}/tags/{name}",
		Summary:     "Attach a tag to an article",
		Tags:        []string{"Articles"},
	}, h.AttachTag)

	huma.Register(api, huma.Operation{
		OperationID: "detachTag",
		Method:      http.MethodDelete,
		Path:        "/articles/{id}/tags/{name}",
		Summary:     "Detach a tag from an article",
		Tags:        []string{"Articles"},
	}, h.DetachTag)

	huma.Register(api, huma.Operation{
		OperationID: "listArticleTags",
		Method:      http.MethodGet,
		Path:        "/articles/{id}/tags",
		Summary:     "List an article's tags",
		Tags:        []string{"Articles"},
	}, h.ListTags)
}

// CreateArticleInput defines the input for the CreateArticle operation
type CreateArticleInput struct {
	Body requests.CreateArticleRequest
}

// CreateArticleOutput defines the output for the CreateArticle operation
type CreateArticleOutput struct {
	Body responses.ArticleResponse
}

// CreateArticle handles the POST /articles endpoint
func (h *ArticleHandler) CreateArticle(ctx context.Context, input *CreateArticleInput) (*CreateArticleOutput, error) {
	identity, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	input.Body.ApplyDefaults()

	article, err := h.articleService.Create(ctx, identity.UserID, input.Body.Title, input.Body.Body, input.Body.Status)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &CreateArticleOutput{Body: mappers.ToArticleResponse(article)}, nil
}

// ListArticlesInput defines the input for the ListArticles operation
type ListArticlesInput struct {
	Status   string `query:"status,omitempty" enum:"draft,published" doc:"Filter by publication status"`
	AuthorID int64  `query:"author_id,omitempty" minimum:"1" doc:"Filter by author"`
}

// ListArticlesOutput defines the output for the ListArticles operation
type ListArticlesOutput struct {
	Body responses.ArticleListResponse
}

// ListArticles handles the GET /articles endpoint
func (h *ArticleHandler) ListArticles(ctx context.Context, input *ListArticlesInput) (*ListArticlesOutput, error) {
	filters := make(map[string]interface{})
	if input.Status != "" {
		filters["status"] = input.Status
	}
	if input.AuthorID > 0 {
		filters["author_id"] = input.AuthorID
	}

	items, err := h.articleService.List(ctx, filters)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ListArticlesOutput{Body: mappers.ToArticleListResponse(items)}, nil
}

// GetArticleInput defines the input for the GetArticle operation
type GetArticleInput struct {
	ID int64 `path:"id" minimum:"1" doc:"Article ID"`
}

// GetArticleOutput defines the output for article reads
type GetArticleOutput struct {
	Body responses.ArticleResponse
}

// GetArticle handles the GET /articles/{id} endpoint
func (h *ArticleHandler) GetArticle(ctx context.Context, input *GetArticleInput) (*GetArticleOutput, error) {
	article, err := h.articleService.GetByID(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &GetArticleOutput{Body: mappers.ToArticleResponse(article)}, nil
}

// GetArticleBySlugInput defines the input for the GetArticleBySlug operation
type GetArticleBySlugInput struct {
	Slug string `path:"slug" minLength:"1" doc:"Article slug"`
}

// GetArticleBySlug handles the GET /articles/slug/{slug} endpoint
func (h *ArticleHandler) GetArticleBySlug(ctx context.Context, input *GetArticleBySlugInput) (*GetArticleOutput, error) {
	article, err := h.articleService.GetBySlug(ctx, input.Slug)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &GetArticleOutput{Body: mappers.ToArticleResponse(article)}, nil
}

// UpdateArticleInput defines the input for the UpdateArticle operation
type UpdateArticleInput struct {
	ID   int64 `path:"id" minimum:"1" doc:"Article ID"`
	Body requests.UpdateArticleRequest
}

// UpdateArticleOutput defines the output for the UpdateArticle operation
type UpdateArticleOutput struct {
	Body responses.ArticleResponse
}

// UpdateArticle handles the PUT /articles/{id} endpoint
func (h *ArticleHandler) UpdateArticle(ctx context.Context, input *UpdateArticleInput) (*UpdateArticleOutput, error) {
	identity, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	fields := input.Body.Fields()
	if len(fields) == 0 {
		return nil, huma.Error400BadRequest("No fields to update")
	}

	article, err := h.articleService.Update(ctx, input.ID, identity.UserID, fields)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &UpdateArticleOutput{Body: mappers.ToArticleResponse(article)}, nil
}

// DeleteArticleInput defines the input for the DeleteArticle operation
type DeleteArticleInput struct {
	ID int64 `path:"id" minimum:"1" doc:"Article ID"`
}

// DeleteArticleOutput defines the output for the DeleteArticle operation
type DeleteArticleOutput struct {
	Status int
}

// DeleteArticle handles the DELETE /articles/{id} endpoint
func (h *ArticleHandler) DeleteArticle(ctx context.Context, input *DeleteArticleInput) (*DeleteArticleOutput, error) {
	identity, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	deleted, err := h.articleService.Delete(ctx, input.ID, identity.UserID)
	if err != nil {
		return nil, toHumaError(err)
	}
	if !deleted {
		return nil, huma.Error404NotFound("Article not found")
	}

	return &DeleteArticleOutput{Status: http.StatusNoContent}, nil
}

// TagNameInput defines the input for the AttachTag and DetachTag operations
type TagNameInput struct {
	ID   int64  `path:"id" minimum:"1" doc:"Article ID"`
	Name string `path:"name" minLength:"1" maxLength:"100" doc:"Tag name"`
}

// TagChangeOutput reports whether a tag attachment changed
type TagChangeOutput struct {
	Body responses.TagChangeResponse
}

// AttachTag handles the POST /articles/{id}/tags/{name} endpoint
func (h *ArticleHandler) AttachTag(ctx context.Context, input *TagNameInput) (*TagChangeOutput, error) {
	identity, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	changed, err := h.articleService.AttachTag(ctx, input.ID, identity.UserID, input.Name)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &TagChangeOutput{Body: responses.TagChangeResponse{Changed: changed}}, nil
}

// DetachTag handles the DELETE /articles/{id}/tags/{name} endpoint
func (h *ArticleHandler) DetachTag(ctx context.Context, input *TagNameInput) (*TagChangeOutput, error) {
	identity, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	changed, err := h.articleService.DetachTag(ctx, input.ID, identity.UserID, input.Name)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &TagChangeOutput{Body: responses.TagChangeResponse{Changed: changed}}, nil
}

// ListArticleTagsInput defines the input for the ListTags operation
type ListArticleTagsInput struct {
	ID int64 `path:"id" minimum:"1" doc:"Article ID"`
}

// ListArticleTagsOutput defines the output for the ListTags operation
type ListArticleTagsOutput struct {
	Body responses.TagListResponse
}

// ListTags handles the GET /articles/{id}/tags endpoint
func (h *ArticleHandler) ListTags(ctx context.Context, input *ListArticleTagsInput) (*ListArticleTagsOutput, error) {
	tags, err := h.articleService.TagsFor(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ListArticleTagsOutput{Body: mappers.ToTagListResponse(tags)}, nil
}
