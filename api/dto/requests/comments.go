// ABOUTME: Request DTOs for comment endpoints
// ABOUTME: Comments address their target polymorphically by content type and object id

package requests

// CreateCommentRequest represents the request body for adding a comment
type CreateCommentRequest struct {
	// ContentType identifies the kind of object being commented on
	ContentType string `json:"content_type" enum:"article,comment" doc:"Type of the target object"`

	// ObjectID identifies the target object
	ObjectID int64 `json:"object_id" minimum:"1" doc:"ID of the target object"`

	// ParentID is the parent comment when replying to a comment
	ParentID *int64 `json:"parent_id,omitempty" minimum:"1" doc:"Parent comment ID for replies"`

	// Title is an optional comment heading
	Title string `json:"title,omitempty" maxLength:"300" doc:"Optional comment heading"`

	// Body is the comment text
	Body string `json:"body" minLength:"1" doc:"Comment text"`
}

// UpdateCommentRequest represents a partial update to a comment
type UpdateCommentRequest struct {
	// Title replaces the heading when set
	Title *string `json:"title,omitempty" maxLength:"300" doc:"New comment heading"`

	// Body replaces the text when set
	Body *string `json:"body,omitempty" minLength:"1" doc:"New comment text"`
}

// Fields converts the set fields into an update map
func (r *UpdateCommentRequest) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if r.Title != nil {
		fields["title"] = *r.Title
	}
	if r.Body != nil {
		fields["body"] = *r.Body
	}
	return fields
}
