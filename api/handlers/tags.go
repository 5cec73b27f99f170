// ABOUTME: Tag handlers for the Huma API
// ABOUTME: Provides HTTP endpoints for creating and listing tags

package handlers

import (
	"context"
	"net/http"

	"inkwell-api/api/dto/mappers"
	"inkwell-api/api/dto/responses"
	"inkwell-api/core/domain"

	"github.com/danielgtaylor/huma/v2"
)

// TagService interface defines the methods needed from the tag service
type TagService interface {
	Create(ctx context.Context, name string) (*domain.Tag, error)
	List(ctx context.Context) ([]domain.Tag, error)
}

// TagHandler handles tag-related HTTP requests
type TagHandler struct {
	tagService TagService
}

// NewTagHandler creates a new tag handler
func NewTagHandler(tagService TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

// RegisterRoutes registers all tag-related routes
func (h *TagHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "createTag",
		Method:      http.MethodPost,
		Path:        "/tags",
		Summary:     "Create a tag",
		Tags:        []string{"Tags"},
	}, h.CreateTag)

	huma.Register(api, huma.Operation{
		OperationID: "listTags",
		Method:      http.MethodGet,
		Path:        "/tags",
		Summary:     "List all tags",
		Tags:        []string{"Tags"},
	}, h.ListTags)
}

// CreateTagInput defines the input for the CreateTag operation
type CreateTagInput struct {
	Body struct {
		Name string `json:"name" minLength:"1" maxLength:"100" doc:"Tag name"`
	}
}

// CreateTagOutput defines the output for the CreateTag operation
type CreateTagOutput struct {
	Body responses.TagResponse
}

// CreateTag handles the POST /tags endpoint
func (h *TagHandler) CreateTag(ctx context.Context, input *CreateTagInput) (*CreateTagOutput, error) {
	if _, err := requireIdentity(ctx); err != nil {
		return nil, err
	}

	tag, err := h.tagService.Create(ctx, input.Body.Name)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &CreateTagOutput{Body: mappers.ToTagResponse(tag)}, nil
}

// ListTagsInput defines the input for the ListTags operation
type ListTagsInput struct{}

// ListTagsOutput defines the output for the ListTags operation
type ListTagsOutput struct {
	Body responses.TagListResponse
}

// ListTags handles the GET /tags endpoint
func (h *TagHandler) ListTags(ctx context.Context, _ *ListTagsInput) (*ListTagsOutput, error) {
	tags, err := h.tagService.List(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ListTagsOutput{Body: mappers.ToTagListResponse(tags)}, nil
}
