package server

import (
	"log/slog"

	"ripple/internal/middleware"
	"ripple/internal/models"
	"ripple/internal/notifications"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

type toggleLikeResponse struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"likeCount"`
}

// ToggleCommentLike handles POST /api/comments/:id/like (protected).
// It flips the like relationship between the current user and the comment:
// liking when no like exists, unliking when one does.
func (s *Server) ToggleCommentLike(c *fiber.Ctx) error {
	commentID, err := s.parseID(c, "id", "comment ID")
	if err != nil {
		return nil
	}
	return s.toggleCommentLike(c, commentID)
}

// ToggleCommentLikeBody handles POST /like-comment (protected), taking the
// comment ID from the JSON body.
func (s *Server) ToggleCommentLikeBody(c *fiber.Ctx) error {
	var req struct {
		CommentID uint `json:"commentId"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.CommentID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("commentId is required"))
	}
	return s.toggleCommentLike(c, req.CommentID)
}

func (s *Server) toggleCommentLike(c *fiber.Ctx, commentID uint) error {
	ctx := c.UserContext()
	userID := currentUserID(c)

	out, err := s.engagementService.ToggleCommentLike(ctx, service.ToggleLikeInput{
		UserID:    userID,
		CommentID: commentID,
	})
	if err != nil {
		return respondAppError(c, err)
	}

	// Best-effort event for downstream consumers; never fails the request.
	if pubErr := s.notifier.PublishEngagement(ctx, notifications.EngagementEvent{
		Event:           notifications.EventCommentLikeToggled,
		CommentID:       commentID,
		PostID:          out.PostID,
		ActorID:         userID,
		Liked:           out.Liked,
		LikeCount:       out.LikeCount,
		EngagementScore: out.EngagementScore,
	}); pubErr != nil {
		middleware.Logger.WarnContext(ctx, "failed to publish engagement event",
			slog.Uint64("comment_id", uint64(commentID)),
			slog.String("error", pubErr.Error()),
		)
	}

	return c.JSON(toggleLikeResponse{
		Liked:     out.Liked,
		LikeCount: out.LikeCount,
	})
}
