// ABOUTME: Auth handlers for the Huma API
// ABOUTME: Provides HTTP endpoints for registration, login, and password reset

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

// AuthService interface defines the methods needed from the auth service
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, login, password string) (string, *domain.User, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, rawToken, newPassword string) error
}

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRoutes registers all auth-related routes
func (h *AuthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "register",
		Method:      http.MethodPost,
		Path:        "/auth/register",
		Summary:     "Register a new account",
		Tags:        []string{"Auth"},
	}, h.Register)

	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/auth/login",
		Summary:     "Log in with email or username",
		Tags:        []string{"Auth"},
	}, h.Login)

	huma.Register(api, huma.Operation{
		OperationID: "requestPasswordReset",
		Method:      http.MethodPost,
		Path:        "/auth/password-reset",
		Summary:     "Request a password reset email",
		Tags:        []string{"Auth"},
	}, h.RequestPasswordReset)

	huma.Register(api, huma.Operation{
		OperationID: "confirmPasswordReset",
		Method:      http.MethodPost,
		Path:        "/auth/password-reset/confirm",
		Summary:     "Set a new password using a reset token",
		Tags:        []string{"Auth"},
	}, h.ConfirmPasswordReset)
}

// RegisterInput defines the input for the Register operation
type RegisterInput struct {
	Body requests.RegisterRequest
}

// RegisterOutput defines the output for the Register operation
type RegisterOutput struct {
	Body responses.AuthResponse
}

// Register handles the POST /auth/register endpoint
func (h *AuthHandler) Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	user, err := h.authService.Register(ctx, input.Body.Username, input.Body.Email, input.Body.Password)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &RegisterOutput{
		Body: responses.AuthResponse{User: mappers.ToUserResponse(user)},
	}, nil
}

// LoginInput defines the input for the Login operation
type LoginInput struct {
	Body requests.LoginRequest
}

// LoginOutput defines the output for the Login operation
type LoginOutput struct {
	Body responses.AuthResponse
}

// Login handles the POST /auth/login endpoint
func (h *AuthHandler) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	token, user, err := h.authService.Login(ctx, input.Body.Login, input.Body.Password)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &LoginOutput{
		Body: responses.AuthResponse{
			Token: token,
			User:  mappers.ToUserResponse(user),
		},
	}, nil
}

// PasswordResetInput defines the input for the RequestPasswordReset operation
type PasswordResetInput struct {
	Body requests.PasswordResetRequest
}

// PasswordResetOutput defines the output for the RequestPasswordReset operation
type PasswordResetOutput struct {
	Status int
}

// RequestPasswordReset handles the POST /auth/password-reset endpoint. The
// response does not reveal whether the email is registered.
func (h *AuthHandler) RequestPasswordReset(ctx context.Context, input *PasswordResetInput) (*PasswordResetOutput, error) {
	if err := h.authService.RequestPasswordReset(ctx, input.Body.Email); err != nil {
		return nil, toHumaError(err)
	}
	return &PasswordResetOutput{Status: http.StatusAccepted}, nil
}

// PasswordResetConfirmInput defines the input for the ConfirmPasswordReset operation
type PasswordResetConfirmInput struct {
	Body requests.PasswordResetConfirmRequest
}

// PasswordResetConfirmOutput defines the output for the ConfirmPasswordReset operation
type PasswordResetConfirmOutput struct {
	Status int
}

// ConfirmPasswordReset handles the POST /auth/password-reset/confirm endpoint
func (h *AuthHandler) ConfirmPasswordReset(ctx context.Context, input *PasswordResetConfirmInput) (*PasswordResetConfirmOutput, error) {
	if err := h.authService.ConfirmPasswordReset(ctx, input.Body.Token, input.Body.Password); err != nil {
		return nil, toHumaError(err)
	}
	return &PasswordResetConfirmOutput{Status: http.StatusNoContent}, nil
}
