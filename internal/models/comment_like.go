// Package models contains data structures for the application's domain models.
package models

import "time"

// CommentLike represents a user's like on a comment.
// The combination of CommentID and UserID must be unique; the database
// constraint is the authoritative resolution for concurrent like attempts.
// Rows are hard-deleted on unlike so the unique index can be re-satisfied.
type CommentLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CommentID uint      `gorm:"not null;uniqueIndex:idx_comment_user" json:"comment_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_comment_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Comment Comment `gorm:"foreignKey:CommentID" json:"comment,omitempty"`
	User    User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
