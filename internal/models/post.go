// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Post represents a post in the Ripple application. EngagementScore is a
// persisted aggregate: the weighted sum of engagement events recorded against
// the post. It is mutated only inside the same transaction that records the
// event itself, so it stays consistent with the underlying rows.
type Post struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	Title           string `gorm:"not null" json:"title"`
	Content         string `gorm:"type:text;not null" json:"content"`
	UserID          uint   `gorm:"not null;index" json:"user_id"`
	User            User   `gorm:"foreignKey:UserID" json:"user"`
	EngagementScore int    `gorm:"not null;default:0" json:"engagement_score"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int            `gorm:"->" json:"comments_count"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// Engagement weights. Each event type contributes its weight to the parent
// post's EngagementScore when recorded and subtracts it when revoked.
const (
	EngagementWeightCommentLike = 1
)
