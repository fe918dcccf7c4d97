package server

import (
	"errors"

	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetNotifications returns the current user's notifications, newest first (protected)
func (s *Server) GetNotifications(c *fiber.Ctx) error {
	userID := currentUserID(c)

	limit := c.QueryInt("limit", 20)
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	notifications, err := s.notificationRepo.ListByRecipient(c.UserContext(), userID, limit, offset)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	return c.JSON(notifications)
}

// MarkNotificationRead flips the read flag on one of the current user's
// notifications (protected).
func (s *Server) MarkNotificationRead(c *fiber.Ctx) error {
	userID := currentUserID(c)

	notificationID, err := s.parseID(c, "id", "notification ID")
	if err != nil {
		return nil
	}

	if err := s.notificationRepo.MarkRead(c.UserContext(), notificationID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondAppError(c, models.NewNotFoundError("notification", notificationID))
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.SendStatus(fiber.StatusNoContent)
}
