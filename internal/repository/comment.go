package repository

import (
	"context"

	"ripple/internal/cache"
	"ripple/internal/models"

	"gorm.io/gorm"
)

// CommentRepository defines interface for comment operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error)
	Delete(ctx context.Context, id uint) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// GetByID returns a comment with its like count, read through the Redis
// cache: a warm key skips the count query, a miss counts from the store and
// warms the key. The toggle path invalidates the key after every commit, so
// a warm value is never older than the last committed toggle.
func (r *commentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		First(&comment, id).Error
	if err != nil {
		return nil, err
	}

	count, err := r.countLikes(ctx, id)
	if err != nil {
		return nil, err
	}
	comment.LikesCount = count
	return &comment, nil
}

// ListByPost returns a post's comments with like counts computed in one
// subquery, then warms the cache with the counts it just read.
func (r *commentRepository) ListByPost(
	ctx context.Context,
	postID uint,
) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		Select(`comments.*, (SELECT COUNT(*) FROM comment_likes WHERE comment_likes.comment_id = comments.id) AS likes_count`).
		Where("post_id = ?", postID).
		Order("created_at desc").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	for _, comment := range comments {
		cache.SetCommentLikeCount(ctx, comment.ID, comment.LikesCount)
	}
	return comments, nil
}

func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Comment{}, id).Error
}

func (r *commentRepository) countLikes(ctx context.Context, commentID uint) (int64, error) {
	if count, ok := cache.GetCommentLikeCount(ctx, commentID); ok {
		return count, nil
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&models.CommentLike{}).
		Where("comment_id = ?", commentID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	cache.SetCommentLikeCount(ctx, commentID, count)
	return count, nil
}
