// ABOUTME: Reaction handlers for the Huma API
// ABOUTME: Provides HTTP endpoints for liking and unliking articles and comments

package handlers

import (
	"context"
	"net/http"

	"inkwell-api/api/dto/responses"

	"github.com/danielgtaylor/huma/v2"
)

// ReactionService interface defines the methods needed from the reaction service
type ReactionService interface {
	Like(ctx context.Context, userID int64, contentType string, objectID int64) (bool, error)
	Unlike(ctx context.Context, userID int64, contentType string, objectID int64) (bool, error)
	Count(ctx context.Context, contentType string, objectID int64) (int, error)
}

// ReactionHandler handles reaction-related HTTP requests
type ReactionHandler struct {
	reactionService ReactionService
}

// NewReactionHandler creates a new reaction handler
func NewReactionHandler(reactionService ReactionService) *ReactionHandler {
	return &ReactionHandler{reactionService: reactionService}
}

// RegisterRoutes registers all reaction-related routes
func (h *ReactionHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "like",
		Method:      http.MethodPost,
		Path:        "/likes",
		Summary:     "Like an article or comment",
		Tags:        []string{"Reactions"},
	}, h.Like)

	huma.Register(api, huma.Operation{
		OperationID: "unlike",
		Method:      http.MethodDelete,
		Path:        "/likes",
		Summary:     "Remove a like",
		Tags:        []string{"Reactions"},
	}, h.Unlike)

	huma.Register(api, huma.Operation{
		OperationID: "countLikes",
		Method:      http.MethodGet,
		Path:        "/likes/count",
		Summary:     "Count likes for an object",
		Tags:        []string{"Reactions"},
	}, h.Count)
}

// ReactionInput identifies the target of a like or unlike
type ReactionInput struct {
	ContentType string `query:"content_type" required:"true" enum:"article,comment" doc:"Type of the target object"`
	ObjectID    int64  `query:"object_id" required:"true" minimum:"1" doc:"ID of the target object"`
}

// ReactionOutput defines the output for the Like and Unlike operations
type ReactionOutput struct {
	Body responses.ReactionResponse
}

// Like handles the POST /likes endpoint
func (h *ReactionHandler) Like(ctx context.Context, input *ReactionInput) (*ReactionOutput, error) {
	identity, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	changed, err := h.reactionService.Like(ctx, identity.UserID, input.ContentType, input.ObjectID)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ReactionOutput{Body: responses.ReactionResponse{Changed: changed}}, nil
}

// Unlike handles the DELETE /likes endpoint
func (h *ReactionHandler) Unlike(ctx context.Context, input *ReactionInput) (*ReactionOutput, error) {
	identity, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	changed, err := h.reactionService.Unlike(ctx, identity.UserID, input.ContentType, input.ObjectID)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ReactionOutput{Body: responses.ReactionResponse{Changed: changed}}, nil
}

// ReactionCountOutput defines the output for the Count operation
type ReactionCountOutput struct {
	Body responses.ReactionCountResponse
}

// Count handles the GET /likes/count endpoint
func (h *ReactionHandler) Count(ctx context.Context, input *ReactionInput) (*ReactionCountOutput, error) {
	count, err := h.reactionService.Count(ctx, input.ContentType, input.ObjectID)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ReactionCountOutput{Body: responses.ReactionCountResponse{Count: count}}, nil
}
