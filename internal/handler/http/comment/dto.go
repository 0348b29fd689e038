// Package comment provides the HTTP endpoints for creating, updating, and
// deleting comments.
package comment

import "microboard/internal/domain/entity"

// DTO is the public projection of a comment.
type DTO struct {
	CommentID int64  `json:"commentId"`
	Email     string `json:"email"`
	Content   string `json:"content"`
}

func toDTO(c *entity.Comment, authorEmail string) DTO {
	return DTO{
		CommentID: c.ID,
		Email:     authorEmail,
		Content:   c.Content,
	}
}
