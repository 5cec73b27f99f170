// ABOUTME: Comment handlers for the Huma API
// ABOUTME: Provides HTTP endpoints for comments on articles and threaded replies

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

// CommentService interface defines the methods needed from the comment service
type CommentService interface {
	Add(ctx context.Context, userID int64, contentType string, objectID int64, parentID *int64, title, body string) (*domain.Comment, error)
	ListFor(ctx context.Context, contentType string, objectID int64) ([]domain.Comment, error)
	Update(ctx context.Context, id, actorID int64, changes map[string]interface{}) (*domain.Comment, error)
	Delete(ctx context.Context, id, actorID int64) (bool, error)
}

// CommentHandler handles comment-related HTTP requests
type CommentHandler struct {
	commentService CommentService
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(commentService CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// RegisterRoutes registers all comment-related routes
func (h *CommentHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "createComment",
		Method:      http.MethodPost,
		Path:        "/comments",
		Summary:     "Add a comment",
		Tags:        []string{"Comments"},
	}, h.CreateComment)

	huma.Register(api, huma.Operation{
		OperationID: "listComments",
		Method:      http.MethodGet,
		Path:        "/comments",
		Summary:     "List comments for an object",
		Tags:        []string{"Comments"},
	}, h.ListComments)

	huma.Register(api, huma.Operation{
		OperationID: "updateComment",
		Method:      http.MethodPut,
		Path:        "/comments/{id}",
		Summary:     "Update a comment",
		Tags:        []string{"Comments"},
	}, h.UpdateComment)

	huma.Register(api, huma.Operation{
		OperationID: "deleteComment",
		Method:      http.MethodDelete,
		Path:        "/comments/{id}",
		Summary:     "Delete a comment",
		Tags:        []string{"Comments"},
	}, h.DeleteComment)
}

// CreateCommentInput defines the input for the CreateComment operation
type CreateCommentInput struct {
	Body requests.CreateCommentRequest
}

// CreateCommentOutput defines the output for the CreateComment operation
type CreateCommentOutput struct {
	Body responses.CommentResponse
}

// CreateComment handles the POST /comments endpoint
func (h *CommentHandler) CreateComment(ctx context.Context, input *CreateCommentInput) (*CreateCommentOutput, error) {
	identity, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	comment, err := h.commentService.Add(ctx, identity.UserID, input.Body.ContentType, input.Body.ObjectID, input.Body.ParentID, input.Body.Title, input.Body.Body)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &CreateCommentOutput{Body: mappers.ToCommentResponse(comment)}, nil
}

// ListCommentsInput defines the input for the ListComments operation
type ListCommentsInput struct {
	ContentType string `query:"content_type" required:"true" enum:"article,comment" doc:"Type of the target object"`
	ObjectID    int64  `query:"object_id" required:"true" minimum:"1" doc:"ID of the target object"`
}

// ListCommentsOutput defines the output for the ListComments operation
type ListCommentsOutput struct {
	Body responses.CommentListResponse
}

// ListComments handles the GET /comments endpoint
func (h *CommentHandler) ListComments(ctx context.Context, input *ListCommentsInput) (*ListCommentsOutput, error) {
	items, err := h.commentService.ListFor(ctx, input.ContentType, input.ObjectID)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ListCommentsOutput{Body: mappers.ToCommentListResponse(items)}, nil
}

// UpdateCommentInput defines the input for the UpdateComment operation
type UpdateCommentInput struct {
	ID   int64 `path:"id" minimum:"1" doc:"Comment ID"`
	Body requests.UpdateCommentRequest
}

// UpdateCommentOutput defines the output for the UpdateComment operation
type UpdateCommentOutput struct {
	Body responses.CommentResponse
}

// UpdateComment handles the PUT /comments/{id} endpoint
func (h *CommentHandler) UpdateComment(ctx context.Context, input *UpdateCommentInput) (*UpdateCommentOutput, error) {
	identity, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	fields := input.Body.Fields()
	if len(fields) == 0 {
		return nil, huma.Error400BadRequest("No fields to update")
	}

	comment, err := h.commentService.Update(ctx, input.ID, identity.UserID, fields)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &UpdateCommentOutput{Body: mappers.ToCommentResponse(comment)}, nil
}

// DeleteCommentInput defines the input for the DeleteComment operation
type DeleteCommentInput struct {
	ID int64 `path:"id" minimum:"1" doc:"Comment ID"`
}

// DeleteCommentOutput defines the output for the DeleteComment operation
type DeleteCommentOutput struct {
	Status int
}

// DeleteComment handles the DELETE /comments/{id} endpoint
func (h *CommentHandler) DeleteComment(ctx context.Context, input *DeleteCommentInput) (*DeleteCommentOutput, error) {
	identity, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	deleted, err := h.commentService.Delete(ctx, input.ID, identity.UserID)
	if err != nil {
		return nil, toHumaError(err)
	}
	if !deleted {
		return nil, huma.Error404NotFound("Comment not found")
	}

	return &DeleteCommentOutput{Status: http.StatusNoContent}, nil
}
