// ABOUTME: Request DTOs for article endpoints
// ABOUTME: Provides validation and default values for incoming requests

package requests

// CreateArticleRequest represents the request body for creating an article
type CreateArticleRequest struct {
	// Title is the article title
	Title string `json:"title" minLength:"1" maxLength:"300" doc:"Article title"`

	// Body is the article content
	Body string `json:"body" doc:"Article content"`

	// Status is the publication status
	Status string `json:"status,omitempty" enum:"draft,published" default:"draft" doc:"Publication status"`
}

// ApplyDefaults sets default values for optional fields
func (r *CreateArticleRequest) ApplyDefaults() {
	if r.Status == "" {
		r.Status = "draft"
	}
}

// UpdateArticleRequest represents a partial update to an article
type UpdateArticleRequest struct {
	// Title replaces the title when set
	Title *string `json:"title,omitempty" minLength:"1" maxLength:"300" doc:"New article title"`

	// Body replaces the content when set
	Body *string `json:"body,omitempty" doc:"New article content"`

	// Status replaces the publication status when set
	Status *string `json:"status,omitempty" enum:"draft,published" doc:"New publication status"`
}

// Fields converts the set fields into an update map
func (r *UpdateArticleRequest) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if r.Title != nil {
		fields["title"] = *r.Title
	}
	if r.Body != nil {
		fields["body"] = *r.Body
	}
	if r.Status != nil {
		fields["status"] = *r.Status
	}
	return fields
}
