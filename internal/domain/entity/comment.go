package entity

import "time"

// Comment represents a remark attached to exactly one article.
type Comment struct {
	ID        int64
	ArticleID int64
	AuthorID  int64
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
