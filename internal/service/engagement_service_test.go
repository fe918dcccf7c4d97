package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"ripple/internal/models"
	"ripple/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type engagementRepoStub struct {
	toggleFn func(ctx context.Context, commentID, userID uint) (*repository.ToggleResult, error)
	calls    int
}

func (s *engagementRepoStub) ToggleCommentLike(ctx context.Context, commentID, userID uint) (*repository.ToggleResult, error) {
	s.calls++
	return s.toggleFn(ctx, commentID, userID)
}

func appErrCode(t *testing.T, err error) string {
	t.Helper()
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected *models.AppError, got %v", err)
	return appErr.Code
}

func TestToggleCommentLike_InputValidation(t *testing.T) {
	stub := &engagementRepoStub{
		toggleFn: func(context.Context, uint, uint) (*repository.ToggleResult, error) {
			t.Fatal("repository must not be reached on invalid input")
			return nil, nil
		},
	}
	svc := NewEngagementService(stub)
	ctx := context.Background()

	out, err := svc.ToggleCommentLike(ctx, ToggleLikeInput{UserID: 1, CommentID: 0})
	assert.Nil(t, out)
	assert.Equal(t, models.CodeValidation, appErrCode(t, err))

	out, err = svc.ToggleCommentLike(ctx, ToggleLikeInput{UserID: 0, CommentID: 7})
	assert.Nil(t, out)
	assert.Equal(t, models.CodeUnauthenticated, appErrCode(t, err))

	assert.Zero(t, stub.calls)
}

func TestToggleCommentLike_Success(t *testing.T) {
	stub := &engagementRepoStub{
		toggleFn: func(_ context.Context, commentID, userID uint) (*repository.ToggleResult, error) {
			assert.EqualValues(t, 7, commentID)
			assert.EqualValues(t, 3, userID)
			return &repository.ToggleResult{
				Liked:           true,
				LikeCount:       4,
				PostID:          11,
				CommentAuthorID: 2,
				EngagementScore: 9,
			}, nil
		},
	}
	svc := NewEngagementService(stub)

	out, err := svc.ToggleCommentLike(context.Background(), ToggleLikeInput{UserID: 3, CommentID: 7})
	require.NoError(t, err)
	assert.True(t, out.Liked)
	assert.EqualValues(t, 4, out.LikeCount)
	assert.EqualValues(t, 11, out.PostID)
	assert.EqualValues(t, 2, out.CommentAuthorID)
	assert.Equal(t, 9, out.EngagementScore)
	assert.Equal(t, 1, stub.calls)
}

func TestToggleCommentLike_ErrorClassification(t *testing.T) {
	tests := []struct {
		name         string
		repoErr      error
		expectedCode string
	}{
		{"Record not found", gorm.ErrRecordNotFound, models.CodeNotFound},
		{"Wrapped not found", errors.Join(errors.New("context"), gorm.ErrRecordNotFound), models.CodeNotFound},
		{"Like gone", repository.ErrLikeGone, models.CodeConflict},
		{"Wrapped like gone", fmt.Errorf("comment like already removed: %w", repository.ErrLikeGone), models.CodeConflict},
		{"Duplicated key", gorm.ErrDuplicatedKey, models.CodeConflict},
		{"Foreign key violated", gorm.ErrForeignKeyViolated, models.CodeInvalidReference},
		{"Unknown store error", errors.New("disk on fire"), models.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &engagementRepoStub{
				toggleFn: func(context.Context, uint, uint) (*repository.ToggleResult, error) {
					return nil, tt.repoErr
				},
			}
			svc := NewEngagementService(stub)

			out, err := svc.ToggleCommentLike(context.Background(), ToggleLikeInput{UserID: 3, CommentID: 7})
			assert.Nil(t, out)
			assert.Equal(t, tt.expectedCode, appErrCode(t, err))
		})
	}
}
