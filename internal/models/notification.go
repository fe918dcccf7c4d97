// Package models contains data structures for the application's domain models.
package models

import "time"

// Notification types.
const (
	NotificationTypeCommentLike = "COMMENT_LIKE"
)

// Notification represents an in-app notification for a user. Notifications
// are append-only: they are created as a side effect of engagement events
// (never on revocation) and only their IsRead flag changes afterwards.
type Notification struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Type        string    `gorm:"size:32;not null;index" json:"type"`
	RecipientID uint      `gorm:"not null;index" json:"recipient_id"`
	ActorID     uint      `gorm:"not null" json:"actor_id"`
	Message     string    `gorm:"not null" json:"message"`
	CommentID   *uint     `gorm:"index" json:"comment_id,omitempty"`
	IsRead      bool      `gorm:"not null;default:false;index" json:"is_read"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`

	// Relationships
	Recipient User     `gorm:"foreignKey:RecipientID" json:"-"`
	Actor     User     `gorm:"foreignKey:ActorID" json:"actor"`
	Comment   *Comment `gorm:"foreignKey:CommentID" json:"comment,omitempty"`
}
