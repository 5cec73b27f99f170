// ABOUTME: User handlers for the Huma API
// ABOUTME: Provides HTTP endpoints for reading, updating, and deleting accounts

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

// UserService interface defines the methods needed from the user service
type UserService interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetWithProfile(ctx context.Context, id int64) (*domain.UserWithProfile, error)
	GetAll(ctx context.Context) ([]domain.User, error)
	ListByFilter(ctx context.Context, filters map[string]interface{}) ([]domain.User, error)
	Update(ctx context.Context, id int64, changes map[string]interface{}) (*domain.User, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userService UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterRoutes registers all user-related routes
func (h *UserHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listUsers",
		Method:      http.MethodGet,
		Path:        "/users",
		Summary:     "List users",
		Description: "Lists users, optionally filtered by username, staff, or active status",
		Tags:        []string{"Users"},
	}, h.ListUsers)

	huma.Register(api, huma.Operation{
		OperationID: "getCurrentUser",
		Method:      http.MethodGet,
		Path:        "/users/me",
		Summary:     "Get the authenticated user with their profile",
		Tags:        []string{"Users"},
	}, h.GetCurrentUser)

	huma.Register(api, huma.Operation{
		OperationID: "getUser",
		Method:      http.MethodGet,
		Path:        "/users/{id}",
		Summary:     "Get a user by ID",
		Tags:        []string{"Users"},
	}, h.GetUser)

	huma.Register(api, huma.Operation{
		OperationID: "updateUser",
		Method:      http.MethodPut,
		Path:        "/users/{id}",
		Summary:     "Update a user account",
		Tags:        []string{"Users"},
	}, h.UpdateUser)

	huma.Register(api, huma.Operation{
		OperationID: "deleteUser",
		Method:      http.MethodDelete,
		Path:        "/users/{id}",
		Summary:     "Delete a user account",
		Tags:        []string{"Users"},
	}, h.DeleteUser)
}

// ListUsersInput defines the input for the ListUsers operation
type ListUsersInput struct {
	Username string `query:"username,omitempty" doc:"Filter by exact username"`
	IsStaff  *bool  `query:"is_staff,omitempty" doc:"Filter by staff status"`
	IsActive *bool  `query:"is_active,omitempty" doc:"Filter by active status"`
}

// ListUsersOutput defines the output for the ListUsers operation
type ListUsersOutput struct {
	Body responses.UserListResponse
}

// ListUsers handles the GET /users endpoint
func (h *UserHandler) ListUsers(ctx context.Context, input *ListUsersInput) (*ListUsersOutput, error) {
	filters := make(map[string]interface{})
	if input.Username != "" {
		filters["username"] = input.Username
	}
	if input.IsStaff != nil {
		filters["is_staff"] = *input.IsStaff
	}
	if input.IsActive != nil {
		filters["is_active"] = *input.IsActive
	}

	var (
		users []domain.User
		err   error
	)
	if len(filters) == 0 {
		users, err = h.userService.GetAll(ctx)
	} else {
		users, err = h.userService.ListByFilter(ctx, filters)
	}
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ListUsersOutput{Body: mappers.ToUserListResponse(users)}, nil
}

// GetCurrentUserOutput defines the output for the GetCurrentUser operation
type GetCurrentUserOutput struct {
	Body responses.UserWithProfileResponse
}

// GetCurrentUser handles the GET /users/me endpoint
func (h *UserHandler) GetCurrentUser(ctx context.Context, _ *struct{}) (*GetCurrentUserOutput, error) {
	identity, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	bundle, err := h.userService.GetWithProfile(ctx, identity.UserID)
	if err != nil {
		return nil, toHumaError(err)
	}
	if bundle == nil {
		return nil, huma.Error404NotFound("User not found")
	}

	return &GetCurrentUserOutput{Body: mappers.ToUserWithProfileResponse(bundle)}, nil
}

// GetUserInput defines the input for the GetUser operation
type GetUserInput struct {
	ID int64 `path:"id" minimum:"1" doc:"User ID"`
}

// GetUserOutput defines the output for the GetUser operation
type GetUserOutput struct {
	Body responses.UserResponse
}

// GetUser handles the GET /users/{id} endpoint
func (h *UserHandler) GetUser(ctx context.Context, input *GetUserInput) (*GetUserOutput, error) {
	user, err := h.userService.GetByID(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	if user == nil {
		return nil, huma.Error404NotFound("User not found")
	}

	return &GetUserOutput{Body: mappers.ToUserResponse(user)}, nil
}

// UpdateUserInput defines the input for the UpdateUser operation
type UpdateUserInput struct {
	ID   int64 `path:"id" minimum:"1" doc:"User ID"`
	Body requests.UpdateUserRequest
}

// UpdateUserOutput defines the output for the UpdateUser operation
type UpdateUserOutput struct {
	Body responses.UserResponse
}

// UpdateUser handles the PUT /users/{id} endpoint. Callers may update their
// own account; staff may update any account.
func (h *UserHandler) UpdateUser(ctx context.Context, input *UpdateUserInput) (*UpdateUserOutput, error) {
	if err := h.authorize(ctx, input.ID); err != nil {
		return nil, err
	}

	fields := input.Body.Fields()
	if len(fields) == 0 {
		return nil, huma.Error400BadRequest("No fields to update")
	}

	user, err := h.userService.Update(ctx, input.ID, fields)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &UpdateUserOutput{Body: mappers.ToUserResponse(user)}, nil
}

// DeleteUserInput defines the input for the DeleteUser operation
type DeleteUserInput struct {
	ID int64 `path:"id" minimum:"1" doc:"User ID"`
}

// DeleteUserOutput defines the output for the DeleteUser operation
type DeleteUserOutput struct {
	Status int
}

// DeleteUser handles the DELETE /users/{id} endpoint
func (h *UserHandler) DeleteUser(ctx context.Context, input *DeleteUserInput) (*DeleteUserOutput, error) {
	if err := h.authorize(ctx, input.ID); err != nil {
		return nil, err
	}

	deleted, err := h.userService.Delete(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	if !deleted {
		return nil, huma.Error404NotFound("User not found")
	}

	return &DeleteUserOutput{Status: http.StatusNoContent}, nil
}

// authorize allows the account owner or a staff member to act on a user
func (h *UserHandler) authorize(ctx context.Context, targetID int64) error {
	identity, err := requireIdentity(ctx)
	if err != nil {
		return err
	}
	if identity.UserID == targetID {
		return nil
	}

	actor, err := h.userService.GetByID(ctx, identity.UserID)
	if err != nil {
		return toHumaError(err)
	}
	if actor == nil || !actor.IsStaff {
		return huma.Error403Forbidden("Not allowed")
	}
	return nil
}
