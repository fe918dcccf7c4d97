package repository

import (
	"context"
	"errors"

	"ripple/internal/cache"
	"ripple/internal/models"

	"gorm.io/gorm"
)

// ErrLikeGone reports that the like row found at the start of an unlike was
// already removed by a concurrent request before the delete ran. The toggle
// aborts so the score is never decremented twice; callers surface it as a
// conflict, not as a missing comment.
var ErrLikeGone = errors.New("comment like already removed by a concurrent request")

// ToggleResult describes the committed outcome of a comment-like toggle.
type ToggleResult struct {
	Liked           bool
	LikeCount       int64
	PostID          uint
	CommentAuthorID uint
	EngagementScore int
}

// EngagementRepository runs the transactional engagement mutations.
type EngagementRepository interface {
	// ToggleCommentLike atomically flips the like relationship between a
	// user and a comment. The like row, the parent post's engagement score
	// delta and the notification (on a new like by a non-author) commit
	// together or not at all. The returned LikeCount is read inside the
	// same transaction, never from a stale snapshot.
	ToggleCommentLike(ctx context.Context, commentID, userID uint) (*ToggleResult, error)
}

type engagementRepository struct {
	db *gorm.DB
}

// NewEngagementRepository creates a new EngagementRepository
func NewEngagementRepository(db *gorm.DB) EngagementRepository {
	return &engagementRepository{db: db}
}

func (r *engagementRepository) ToggleCommentLike(ctx context.Context, commentID, userID uint) (*ToggleResult, error) {
	res := &ToggleResult{}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Load the comment inside the transaction for a consistent view.
		var comment models.Comment
		if err := tx.First(&comment, commentID).Error; err != nil {
			return err
		}
		res.PostID = comment.PostID
		res.CommentAuthorID = comment.UserID

		var existing models.CommentLike
		err := tx.Where("comment_id = ? AND user_id = ?", commentID, userID).First(&existing).Error
		switch {
		case err == nil:
			if err := r.unlike(tx, &comment, existing.ID); err != nil {
				return err
			}
			res.Liked = false
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := r.like(tx, &comment, userID); err != nil {
				return err
			}
			res.Liked = true
		default:
			return err
		}

		if err := tx.Model(&models.CommentLike{}).
			Where("comment_id = ?", commentID).
			Count(&res.LikeCount).Error; err != nil {
			return err
		}

		var post models.Post
		if err := tx.Select("id", "engagement_score").First(&post, comment.PostID).Error; err != nil {
			return err
		}
		res.EngagementScore = post.EngagementScore
		return nil
	})
	if err != nil {
		return nil, err
	}

	cache.InvalidateCommentLikes(ctx, commentID)
	return res, nil
}

// like records a new CommentLike, bumps the parent post's engagement score
// and, when the actor is not the comment's author, creates the notification.
// A concurrent like for the same (comment, user) pair loses the race on the
// unique index and surfaces as gorm.ErrDuplicatedKey, aborting the whole
// transaction so nothing is double-counted.
func (r *engagementRepository) like(tx *gorm.DB, comment *models.Comment, userID uint) error {
	if err := tx.Create(&models.CommentLike{CommentID: comment.ID, UserID: userID}).Error; err != nil {
		return err
	}

	if err := tx.Model(&models.Post{}).
		Where("id = ?", comment.PostID).
		UpdateColumn("engagement_score",
			gorm.Expr("engagement_score + ?", models.EngagementWeightCommentLike)).Error; err != nil {
		return err
	}

	// No self-notification.
	if comment.UserID == userID {
		return nil
	}

	commentID := comment.ID
	notification := models.Notification{
		Type:        models.NotificationTypeCommentLike,
		RecipientID: comment.UserID,
		ActorID:     userID,
		Message:     "liked your comment",
		CommentID:   &commentID,
	}
	return tx.Create(&notification).Error
}

// unlike removes the existing CommentLike and reverses the score delta.
// If a concurrent request already deleted the row, the delete affects zero
// rows and the toggle aborts with ErrLikeGone instead of decrementing twice.
func (r *engagementRepository) unlike(tx *gorm.DB, comment *models.Comment, likeID uint) error {
	del := tx.Delete(&models.CommentLike{}, likeID)
	if del.Error != nil {
		return del.Error
	}
	if del.RowsAffected == 0 {
		return ErrLikeGone
	}

	return tx.Model(&models.Post{}).
		Where("id = ?", comment.PostID).
		UpdateColumn("engagement_score",
			gorm.Expr("engagement_score - ?", models.EngagementWeightCommentLike)).Error
}
