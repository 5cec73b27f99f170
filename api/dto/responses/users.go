// ABOUTME: Response DTOs for user, profile, and auth endpoints
// ABOUTME: Credential hashes never appear in any response type

package responses

import "time"

// UserResponse represents a user in API responses
type UserResponse struct {
	ID        int64      `json:"id" doc:"User ID"`
	Username  string     `json:"username" doc:"Account handle"`
	Email     string     `json:"email" doc:"Email address"`
	IsStaff   bool       `json:"is_staff" doc:"Whether the account is administrative"`
	IsActive  bool       `json:"is_active" doc:"Whether the account may authenticate"`
	LastLogin *time.Time `json:"last_login,omitempty" doc:"Time of most recent login"`
	CreatedAt time.Time  `json:"created_at" doc:"Account creation time"`
}

// ProfileResponse represents a profile in API responses
type ProfileResponse struct {
	UserID        int64  `json:"user_id" doc:"Owning user ID"`
	Avatar        string `json:"avatar,omitempty" doc:"Avatar image URL"`
	PhoneNumber   string `json:"phone_number,omitempty" doc:"Contact phone number"`
	Gender        string `json:"gender,omitempty" doc:"Profile gender"`
	FollowerCount int    `json:"follower_count" doc:"Number of followers"`
}

// UserWithProfileResponse bundles a user with their profile
type UserWithProfileResponse struct {
	User    UserResponse     `json:"user"`
	Profile *ProfileResponse `json:"profile,omitempty"`
}

// UserListResponse represents a list of users
type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Count int            `json:"count" doc:"Number of users returned"`
}

// AuthResponse is returned on successful registration or login
type AuthResponse struct {
	Token string       `json:"token,omitempty" doc:"Signed access token"`
	User  UserResponse `json:"user"`
}

// FollowResponse reports the outcome of a follow or unfollow request
type FollowResponse struct {
	Changed bool `json:"changed" doc:"Whether the relationship changed"`
}
