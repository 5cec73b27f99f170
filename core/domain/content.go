// ABOUTME: Content type identifiers for polymorphic comments and likes
// ABOUTME: A target is addressed by content type plus object id

package domain

// Content types that comments and likes may target.
const (
	ContentTypeArticle = "article"
	ContentTypeComment = "comment"
)

// ValidContentType reports whether ct names a likeable/commentable entity.
func ValidContentType(ct string) bool {
	return ct == ContentTypeArticle || ct == ContentTypeComment
}
