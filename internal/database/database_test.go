package database

import (
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMigrate(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, Migrate(db))

	migrator := db.Migrator()
	for _, model := range []any{
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.CommentLike{},
		&models.Notification{},
	} {
		assert.True(t, migrator.HasTable(model), "expected table for %T", model)
	}

	// The composite unique index is the authoritative guard against
	// concurrent duplicate likes.
	assert.True(t, migrator.HasIndex(&models.CommentLike{}, "idx_comment_user"))

	// Running the migration twice must be a no-op, not an error.
	require.NoError(t, Migrate(db))
}
