// ABOUTME: Mappers convert article, tag, and comment domain models to response DTOs
// ABOUTME: Article excerpts are derived from the body at mapping time

package mappers

import (
	"inkwell-api/api/dto/responses"
	"inkwell-api/core/articles"
	"inkwell-api/core/domain"
)

// ToArticleResponse converts a domain article to a response DTO
func ToArticleResponse(article *domain.Article) responses.ArticleResponse {
	return responses.ArticleResponse{
		ID:        article.ID,
		AuthorID:  article.AuthorID,
		Title:     article.Title,
		Body:      article.Body,
		Excerpt:   articles.Excerpt(article.Body),
		Slug:      article.Slug,
		Status:    article.Status,
		ViewCount: article.ViewCount,
		LikeCount: article.LikeCount,
		CreatedAt: article.CreatedAt,
		UpdatedAt: article.UpdatedAt,
	}
}

// ToArticleListResponse converts a slice of domain articles to a list response
func ToArticleListResponse(items []domain.Article) responses.ArticleListResponse {
	out := make([]responses.ArticleResponse, 0, len(items))
	for i := range items {
		out = append(out, ToArticleResponse(&items[i]))
	}
	return responses.ArticleListResponse{Articles: out, Count: len(out)}
}

// ToTagResponse converts a domain tag to a response DTO
func ToTagResponse(tag *domain.Tag) responses.TagResponse {
	return responses.TagResponse{
		ID:   tag.ID,
		Name: tag.Name,
	}
}

// ToTagListResponse converts a slice of domain tags to a list response
func ToTagListResponse(tags []domain.Tag) responses.TagListResponse {
	out := make([]responses.TagResponse, 0, len(tags))
	for i := range tags {
		out = append(out, ToTagResponse(&tags[i]))
	}
	return responses.TagListResponse{Tags: out}
}

// ToCommentResponse converts a domain comment to a response DTO
func ToCommentResponse(comment *domain.Comment) responses.CommentResponse {
	return responses.CommentResponse{
		ID:          comment.ID,
		UserID:      comment.UserID,
		ContentType: comment.ContentType,
		ObjectID:    comment.ObjectID,
		ParentID:    comment.ParentID,
		Title:       comment.Title,
		Body:        comment.Body,
		LikeCount:   comment.LikeCount,
		CreatedAt:   comment.CreatedAt,
		UpdatedAt:   comment.UpdatedAt,
	}
}

// ToCommentListResponse converts a slice of domain comments to a list response
func ToCommentListResponse(items []domain.Comment) responses.CommentListResponse {
	out := make([]responses.CommentResponse, 0, len(items))
	for i := range items {
		out = append(out, ToCommentResponse(&items[i]))
	}
	return responses.CommentListResponse{Comments: out, Count: len(out)}
}
