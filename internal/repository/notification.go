package repository

import (
	"context"

	"ripple/internal/models"

	"gorm.io/gorm"
)

// NotificationRepository defines interface for notification reads and the
// read-flag update. Creation happens inside the engagement toggle transaction,
// never through this interface.
type NotificationRepository interface {
	ListByRecipient(ctx context.Context, recipientID uint, limit, offset int) ([]*models.Notification, error)
	MarkRead(ctx context.Context, id, recipientID uint) error
}

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) ListByRecipient(
	ctx context.Context,
	recipientID uint,
	limit, offset int,
) ([]*models.Notification, error) {
	var notifications []*models.Notification
	err := r.db.WithContext(ctx).
		Preload("Actor").
		Where("recipient_id = ?", recipientID).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&notifications).Error
	return notifications, err
}

// MarkRead flips the read flag. Scoped to the recipient so users cannot touch
// other users' notifications; a non-matching id affects zero rows and reports
// not found.
func (r *notificationRepository) MarkRead(ctx context.Context, id, recipientID uint) error {
	res := r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
