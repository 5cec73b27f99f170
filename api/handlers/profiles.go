// ABOUTME: Profile handlers for the Huma API
// ABOUTME: Provides HTTP endpoints for profiles and follower relationships

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

// ProfileService interface defines the methods needed from the profile service
type ProfileService interface {
	GetProfile(ctx context.Context, userID int64) (*domain.UserWithProfile, error)
	UpdateProfile(ctx context.Context, userID, actorID int64, changes map[string]interface{}) (*domain.Profile, error)
	Follow(ctx context.Context, followerID, followedID int64) (bool, error)
	Unfollow(ctx context.Context, followerID, followedID int64) (bool, error)
	Followers(ctx context.Context, userID int64) ([]domain.User, error)
}

// ProfileHandler handles profile-related HTTP requests
type ProfileHandler struct {
	profileService ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// RegisterRoutes registers all profile-related routes
func (h *ProfileHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getProfile",
		Method:      http.MethodGet,
		Path:        "/users/{id}/profile",
		Summary:     "Get a user with their profile",
		Tags:        []string{"Profiles"},
	}, h.GetProfile)

	huma.Register(api, huma.Operation{
		OperationID: "updateProfile",
		Method:      http.MethodPut,
		Path:        "/users/{id}/profile",
		Summary:     "Update a user's profile",
		Tags:        []string{"Profiles"},
	}, h.UpdateProfile)

	huma.Register(api, huma.Operation{
		OperationID: "followUser",
		Method:      http.MethodPost,
		Path:        "/users/{id}/follow",
		Summary:     "Follow a user",
		Tags:        []string{"Profiles"},
	}, h.Follow)

	huma.Register(api, huma.Operation{
		OperationID: "unfollowUser",
		Method:      http.MethodDelete,
		Path:        "/users/{id}/follow",
		Summary:     "Unfollow a user",
		Tags:        []string{"Profiles"},
	}, h.Unfollow)

	huma.Register(api, huma.Operation{
		OperationID: "listFollowers",
		Method:      http.MethodGet,
		Path:        "/users/{id}/followers",
		Summary:     "List a user's followers",
		Tags:        []string{"Profiles"},
	}, h.Followers)
}

// GetProfileInput defines the input for the GetProfile operation
type GetProfileInput struct {
	ID int64 `path:"id" minimum:"1" doc:"User ID"`
}

// GetProfileOutput defines the output for the GetProfile operation
type GetProfileOutput struct {
	Body responses.UserWithProfileResponse
}

// GetProfile handles the GET /users/{id}/profile endpoint
func (h *ProfileHandler) GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error) {
	uwp, err := h.profileService.GetProfile(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &GetProfileOutput{Body: mappers.ToUserWithProfileResponse(uwp)}, nil
}

// UpdateProfileInput defines the input for the UpdateProfile operation
type UpdateProfileInput struct {
	ID   int64 `path:"id" minimum:"1" doc:"User ID"`
	Body requests.UpdateProfileRequest
}

// UpdateProfileOutput defines the output for the UpdateProfile operation
type UpdateProfileOutput struct {
	Body responses.ProfileResponse
}

// UpdateProfile handles the PUT /users/{id}/profile endpoint
func (h *ProfileHandler) UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*UpdateProfileOutput, error) {
	identity, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	fields := input.Body.Fields()
	if len(fields) == 0 {
		return nil, huma.Error400BadRequest("No fields to update")
	}

	profile, err := h.profileService.UpdateProfile(ctx, input.ID, identity.UserID, fields)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &UpdateProfileOutput{Body: *mappers.ToProfileResponse(profile)}, nil
}

// FollowInput defines the input for the Follow and Unfollow operations
type FollowInput struct {
	ID int64 `path:"id" minimum:"1" doc:"User ID to follow or unfollow"`
}

// FollowOutput defines the output for the Follow and Unfollow operations
type FollowOutput struct {
	Body responses.FollowResponse
}

// Follow handles the POST /users/{id}/follow endpoint
func (h *ProfileHandler) Follow(ctx context.Context, input *FollowInput) (*FollowOutput, error) {
	identity, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	changed, err := h.profileService.Follow(ctx, identity.UserID, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &FollowOutput{Body: responses.FollowResponse{Changed: changed}}, nil
}

// Unfollow handles the DELETE /users/{id}/follow endpoint
func (h *ProfileHandler) Unfollow(ctx context.Context, input *FollowInput) (*FollowOutput, error) {
	identity, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	changed, err := h.profileService.Unfollow(ctx, identity.UserID, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &FollowOutput{Body: responses.FollowResponse{Changed: changed}}, nil
}

// FollowersInput defines the input for the Followers operation
type FollowersInput struct {
	ID int64 `path:"id" minimum:"1" doc:"User ID"`
}

// FollowersOutput defines the output for the Followers operation
type FollowersOutput struct {
	Body responses.UserListResponse
}

// Followers handles the GET /users/{id}/followers endpoint
func (h *ProfileHandler) Followers(ctx context.Context, input *FollowersInput) (*FollowersOutput, error) {
	followers, err := h.profileService.Followers(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &FollowersOutput{Body: mappers.ToUserListResponse(followers)}, nil
}
