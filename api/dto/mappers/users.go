// ABOUTME: Mappers convert user and profile domain models to response DTOs
// ABOUTME: Pure functions with no side effects

package mappers

import (
	"inkwell-api/api/dto/responses"
	"inkwell-api/core/domain"
)

// ToUserResponse converts a domain user to a response DTO
func ToUserResponse(user *domain.User) responses.UserResponse {
	return responses.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		IsStaff:   user.IsStaff,
		IsActive:  user.IsActive,
		LastLogin: user.LastLogin,
		CreatedAt: user.CreatedAt,
	}
}

// ToUserListResponse converts a slice of domain users to a list response
func ToUserListResponse(users []domain.User) responses.UserListResponse {
	out := make([]responses.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, ToUserResponse(&users[i]))
	}
	return responses.UserListResponse{Users: out, Count: len(out)}
}

// ToProfileResponse converts a domain profile to a response DTO
func ToProfileResponse(profile *domain.Profile) *responses.ProfileResponse {
	if profile == nil {
		return nil
	}
	return &responses.ProfileResponse{
		UserID:        profile.UserID,
		Avatar:        profile.Avatar,
		PhoneNumber:   profile.PhoneNumber,
		Gender:        profile.Gender,
		FollowerCount: profile.FollowerCount,
	}
}

// ToUserWithProfileResponse converts a combined user and profile read
func ToUserWithProfileResponse(uwp *domain.UserWithProfile) responses.UserWithProfileResponse {
	return responses.UserWithProfileResponse{
		User:    ToUserResponse(&uwp.User),
		Profile: ToProfileResponse(uwp.Profile),
	}
}
