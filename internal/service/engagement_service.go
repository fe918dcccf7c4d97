// Package service implements the application's business logic on top of the
// repository layer.
package service

import (
	"context"
	"errors"
	"log/slog"

	"ripple/internal/middleware"
	"ripple/internal/models"
	"ripple/internal/observability"
	"ripple/internal/repository"

	"gorm.io/gorm"
)

// EngagementService orchestrates the comment-like toggle.
type EngagementService struct {
	engagementRepo repository.EngagementRepository
}

// ToggleLikeInput carries the validated identifiers for a toggle request.
type ToggleLikeInput struct {
	UserID    uint
	CommentID uint
}

// ToggleLikeOutput is the caller-facing result of a committed toggle.
type ToggleLikeOutput struct {
	Liked           bool
	LikeCount       int64
	PostID          uint
	CommentAuthorID uint
	EngagementScore int
}

// NewEngagementService creates a new EngagementService
func NewEngagementService(engagementRepo repository.EngagementRepository) *EngagementService {
	return &EngagementService{engagementRepo: engagementRepo}
}

// ToggleCommentLike flips the like relationship between the user and the
// comment. It performs no retries: a failed transaction rolls back in full
// and is reported to the caller as a classified error.
func (s *EngagementService) ToggleCommentLike(ctx context.Context, in ToggleLikeInput) (*ToggleLikeOutput, error) {
	if in.CommentID == 0 {
		return nil, models.NewValidationError("commentId is required")
	}
	if in.UserID == 0 {
		return nil, models.NewUnauthenticatedError("Authentication required")
	}

	res, err := s.engagementRepo.ToggleCommentLike(ctx, in.CommentID, in.UserID)
	if err != nil {
		return nil, s.classify(ctx, err, in)
	}

	action := "unlike"
	if res.Liked {
		action = "like"
		if res.CommentAuthorID != in.UserID {
			observability.NotificationsCreated.WithLabelValues(models.NotificationTypeCommentLike).Inc()
		}
	}
	observability.EngagementToggles.WithLabelValues(action).Inc()

	return &ToggleLikeOutput{
		Liked:           res.Liked,
		LikeCount:       res.LikeCount,
		PostID:          res.PostID,
		CommentAuthorID: res.CommentAuthorID,
		EngagementScore: res.EngagementScore,
	}, nil
}

// classify translates store errors into the application taxonomy using gorm's
// translated sentinel errors, never by matching driver message strings.
// Unrecognized errors are logged with full detail and surfaced generically.
func (s *EngagementService) classify(ctx context.Context, err error, in ToggleLikeInput) error {
	switch {
	case errors.Is(err, repository.ErrLikeGone):
		return models.NewConflictError("Like already removed by a concurrent request", err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return models.NewNotFoundError("comment", in.CommentID)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return models.NewConflictError("Like already recorded by a concurrent request", err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return models.NewInvalidReferenceError("Referenced row no longer exists", err)
	default:
		middleware.Logger.ErrorContext(ctx, "comment like toggle failed",
			slog.Uint64("comment_id", uint64(in.CommentID)),
			slog.Uint64("user_id", uint64(in.UserID)),
			slog.String("error", err.Error()),
		)
		return models.NewInternalError(err)
	}
}
