// ABOUTME: Request DTOs for authentication endpoints
// ABOUTME: Provides validation constraints for registration, login, and password reset

package requests

// RegisterRequest represents the request body for account registration
type RegisterRequest struct {
	// Username is the unique account handle
	Username string `json:"username" minLength:"3" maxLength:"150" doc:"Unique account handle"`

	// Email is the account email address
	Email string `json:"email" format:"email" doc:"Account email address"`

	// Password is the plaintext password, hashed before storage
	Password string `json:"password" minLength:"8" maxLength:"128" doc:"Account password"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	// Login is an email address or username
	Login string `json:"login" minLength:"1" doc:"Email address or username"`

	// Password is the account password
	Password string `json:"password" minLength:"1" doc:"Account password"`
}

// PasswordResetRequest asks for a password reset email
type PasswordResetRequest struct {
	// Email is the address to send the reset link to
	Email string `json:"email" format:"email" doc:"Email address of the account"`
}

// PasswordResetConfirmRequest exchanges a reset token for a new password
type PasswordResetConfirmRequest struct {
	// Token is the raw reset token from the email link
	Token string `json:"token" minLength:"1" doc:"Reset token from the email link"`

	// Password is the new password
	Password string `json:"password" minLength:"8" maxLength:"128" doc:"New account password"`
}
