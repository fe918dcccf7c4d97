package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"ripple/internal/database"
	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupEngagementTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "open sqlite")

	// Every pooled connection to :memory: is a separate database; pin the
	// pool to one so concurrent transactions queue instead of landing on an
	// unmigrated copy.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db), "migrate sqlite")
	return db
}

type engagementFixture struct {
	author  models.User
	liker   models.User
	post    models.Post
	comment models.Comment
}

func seedEngagementFixture(t *testing.T, db *gorm.DB) engagementFixture {
	t.Helper()

	f := engagementFixture{
		author: models.User{Username: "author", Email: "author@example.com", Password: "pw"},
		liker:  models.User{Username: "liker", Email: "liker@example.com", Password: "pw"},
	}
	require.NoError(t, db.Create(&f.author).Error)
	require.NoError(t, db.Create(&f.liker).Error)

	f.post = models.Post{Title: "First post", Content: "hello world", UserID: f.author.ID}
	require.NoError(t, db.Create(&f.post).Error)

	f.comment = models.Comment{Content: "nice one", UserID: f.author.ID, PostID: f.post.ID}
	require.NoError(t, db.Create(&f.comment).Error)

	return f
}

func postScore(t *testing.T, db *gorm.DB, postID uint) int {
	t.Helper()
	var post models.Post
	require.NoError(t, db.First(&post, postID).Error)
	return post.EngagementScore
}

func TestToggleCommentLike_LikeThenUnlike(t *testing.T) {
	db := setupEngagementTestDB(t)
	f := seedEngagementFixture(t, db)
	repo := NewEngagementRepository(db)
	ctx := context.Background()

	// First toggle records the like.
	res, err := repo.ToggleCommentLike(ctx, f.comment.ID, f.liker.ID)
	require.NoError(t, err)
	assert.True(t, res.Liked)
	assert.EqualValues(t, 1, res.LikeCount)
	assert.Equal(t, f.post.ID, res.PostID)
	assert.Equal(t, f.author.ID, res.CommentAuthorID)
	assert.Equal(t, models.EngagementWeightCommentLike, res.EngagementScore)
	assert.Equal(t, models.EngagementWeightCommentLike, postScore(t, db, f.post.ID))

	var notification models.Notification
	require.NoError(t, db.First(&notification).Error)
	assert.Equal(t, models.NotificationTypeCommentLike, notification.Type)
	assert.Equal(t, f.author.ID, notification.RecipientID)
	assert.Equal(t, f.liker.ID, notification.ActorID)
	require.NotNil(t, notification.CommentID)
	assert.Equal(t, f.comment.ID, *notification.CommentID)
	assert.False(t, notification.IsRead)

	// Second toggle removes it and restores prior state.
	res, err = repo.ToggleCommentLike(ctx, f.comment.ID, f.liker.ID)
	require.NoError(t, err)
	assert.False(t, res.Liked)
	assert.EqualValues(t, 0, res.LikeCount)
	assert.Equal(t, 0, res.EngagementScore)
	assert.Equal(t, 0, postScore(t, db, f.post.ID))

	var likeRows int64
	require.NoError(t, db.Model(&models.CommentLike{}).Count(&likeRows).Error)
	assert.EqualValues(t, 0, likeRows)

	// Notifications are append-only: the unlike does not retract it.
	var notificationRows int64
	require.NoError(t, db.Model(&models.Notification{}).Count(&notificationRows).Error)
	assert.EqualValues(t, 1, notificationRows)
}

func TestToggleCommentLike_SelfLikeSkipsNotification(t *testing.T) {
	db := setupEngagementTestDB(t)
	f := seedEngagementFixture(t, db)
	repo := NewEngagementRepository(db)

	res, err := repo.ToggleCommentLike(context.Background(), f.comment.ID, f.author.ID)
	require.NoError(t, err)
	assert.True(t, res.Liked)
	assert.EqualValues(t, 1, res.LikeCount)
	assert.Equal(t, models.EngagementWeightCommentLike, postScore(t, db, f.post.ID))

	var notificationRows int64
	require.NoError(t, db.Model(&models.Notification{}).Count(&notificationRows).Error)
	assert.EqualValues(t, 0, notificationRows)
}

func TestToggleCommentLike_CommentNotFound(t *testing.T) {
	db := setupEngagementTestDB(t)
	f := seedEngagementFixture(t, db)
	repo := NewEngagementRepository(db)

	res, err := repo.ToggleCommentLike(context.Background(), f.comment.ID+1000, f.liker.ID)
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	// The rolled-back transaction leaves nothing behind.
	var likeRows int64
	require.NoError(t, db.Model(&models.CommentLike{}).Count(&likeRows).Error)
	assert.EqualValues(t, 0, likeRows)
	assert.Equal(t, 0, postScore(t, db, f.post.ID))
}

func TestToggleCommentLike_CountsPerUser(t *testing.T) {
	db := setupEngagementTestDB(t)
	f := seedEngagementFixture(t, db)
	repo := NewEngagementRepository(db)
	ctx := context.Background()

	second := models.User{Username: "second", Email: "second@example.com", Password: "pw"}
	require.NoError(t, db.Create(&second).Error)

	res, err := repo.ToggleCommentLike(ctx, f.comment.ID, f.liker.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.LikeCount)

	res, err = repo.ToggleCommentLike(ctx, f.comment.ID, second.ID)
	require.NoError(t, err)
	assert.True(t, res.Liked)
	assert.EqualValues(t, 2, res.LikeCount)
	assert.Equal(t, 2*models.EngagementWeightCommentLike, postScore(t, db, f.post.ID))

	// One user unliking leaves the other's like untouched.
	res, err = repo.ToggleCommentLike(ctx, f.comment.ID, f.liker.ID)
	require.NoError(t, err)
	assert.False(t, res.Liked)
	assert.EqualValues(t, 1, res.LikeCount)
	assert.Equal(t, models.EngagementWeightCommentLike, postScore(t, db, f.post.ID))
}

func TestCommentLike_DuplicateInsertTranslated(t *testing.T) {
	db := setupEngagementTestDB(t)
	f := seedEngagementFixture(t, db)

	require.NoError(t, db.Create(&models.CommentLike{CommentID: f.comment.ID, UserID: f.liker.ID}).Error)

	err := db.Create(&models.CommentLike{CommentID: f.comment.ID, UserID: f.liker.ID}).Error
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey),
		"duplicate (comment, user) insert must surface as gorm.ErrDuplicatedKey, got %v", err)
}

func TestToggleCommentLike_ConcurrentDistinctUsers(t *testing.T) {
	db := setupEngagementTestDB(t)
	f := seedEngagementFixture(t, db)
	repo := NewEngagementRepository(db)

	second := models.User{Username: "second", Email: "second@example.com", Password: "pw"}
	require.NoError(t, db.Create(&second).Error)
	users := []uint{f.liker.ID, second.ID}

	results := make([]*ToggleResult, len(users))
	errs := make([]error, len(users))

	var wg sync.WaitGroup
	for i, userID := range users {
		wg.Add(1)
		go func(i int, userID uint) {
			defer wg.Done()
			results[i], errs[i] = repo.ToggleCommentLike(context.Background(), f.comment.ID, userID)
		}(i, userID)
	}
	wg.Wait()

	// Both toggles succeed and both likes land.
	for i := range users {
		require.NoError(t, errs[i])
		assert.True(t, results[i].Liked)
		assert.GreaterOrEqual(t, results[i].LikeCount, int64(1))
		assert.LessOrEqual(t, results[i].LikeCount, int64(2))
	}

	var likeRows int64
	require.NoError(t, db.Model(&models.CommentLike{}).
		Where("comment_id = ?", f.comment.ID).
		Count(&likeRows).Error)
	assert.EqualValues(t, 2, likeRows)
	assert.Equal(t, 2*models.EngagementWeightCommentLike, postScore(t, db, f.post.ID))
}

func TestUnlike_RowAlreadyGone(t *testing.T) {
	db := setupEngagementTestDB(t)
	f := seedEngagementFixture(t, db)
	repo := &engagementRepository{db: db}

	// Deleting a like row that no longer exists must abort as ErrLikeGone
	// and leave the score untouched.
	err := db.Transaction(func(tx *gorm.DB) error {
		return repo.unlike(tx, &f.comment, 9999)
	})
	assert.True(t, errors.Is(err, ErrLikeGone))
	assert.Equal(t, 0, postScore(t, db, f.post.ID))
}
