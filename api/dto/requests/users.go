// ABOUTME: Request DTOs for user and profile endpoints
// ABOUTME: Optional fields use pointers so absent and zero values are distinguishable

package requests

// UpdateUserRequest represents a partial update to a user account
type UpdateUserRequest struct {
	// Username replaces the account handle when set
	Username *string `json:"username,omitempty" minLength:"3" maxLength:"150" doc:"New account handle"`

	// Email replaces the email address when set
	Email *string `json:"email,omitempty" format:"email" doc:"New email address"`

	// Password replaces the password when set
	Password *string `json:"password,omitempty" minLength:"8" maxLength:"128" doc:"New password"`
}

// Fields converts the set fields into an update map
func (r *UpdateUserRequest) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if r.Username != nil {
		fields["username"] = *r.Username
	}
	if r.Email != nil {
		fields["email"] = *r.Email
	}
	if r.Password != nil {
		fields["password"] = *r.Password
	}
	return fields
}

// UpdateProfileRequest represents a partial update to a profile
type UpdateProfileRequest struct {
	// Avatar replaces the avatar URL when set
	Avatar *string `json:"avatar,omitempty" doc:"Avatar image URL"`

	// PhoneNumber replaces the phone number when set
	PhoneNumber *string `json:"phone_number,omitempty" maxLength:"32" doc:"Contact phone number"`

	// Gender replaces the gender when set
	Gender *string `json:"gender,omitempty" enum:"male,female" doc:"Profile gender"`
}

// Fields converts the set fields into an update map
func (r *UpdateProfileRequest) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if r.Avatar != nil {
		fields["avatar"] = *r.Avatar
	}
	if r.PhoneNumber != nil {
		fields["phone_number"] = *r.PhoneNumber
	}
	if r.Gender != nil {
		fields["gender"] = *r.Gender
	}
	return fields
}
