// Package article provides the HTTP endpoints for creating, updating, and
// deleting articles.
package article

import "microboard/internal/domain/entity"

// DTO is the public projection of an article. Email identifies the author;
// create and update only ever act on the caller's own articles, so the
// caller's email is authoritative here.
type DTO struct {
	ArticleID int64  `json:"articleId"`
	Email     string `json:"email"`
	Title     string `json:"title"`
	Content   string `json:"content"`
}

func toDTO(a *entity.Article, authorEmail string) DTO {
	return DTO{
		ArticleID: a.ID,
		Email:     authorEmail,
		Title:     a.Title,
		Content:   a.Content,
	}
}
