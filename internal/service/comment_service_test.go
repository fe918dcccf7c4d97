package service

import (
	"context"
	"strings"
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type commentRepoStub struct {
	created *models.Comment
}

func (s *commentRepoStub) Create(_ context.Context, comment *models.Comment) error {
	comment.ID = 42
	s.created = comment
	return nil
}

func (s *commentRepoStub) GetByID(_ context.Context, id uint) (*models.Comment, error) {
	if s.created == nil || s.created.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return s.created, nil
}

func (s *commentRepoStub) ListByPost(_ context.Context, _ uint) ([]*models.Comment, error) {
	if s.created == nil {
		return nil, nil
	}
	return []*models.Comment{s.created}, nil
}

func (s *commentRepoStub) Delete(_ context.Context, _ uint) error { return nil }

type postRepoStub struct {
	existingID uint
}

func (s *postRepoStub) Create(_ context.Context, _ *models.Post) error { return nil }

func (s *postRepoStub) GetByID(_ context.Context, id uint) (*models.Post, error) {
	if id != s.existingID {
		return nil, gorm.ErrRecordNotFound
	}
	return &models.Post{ID: id}, nil
}

func (s *postRepoStub) List(_ context.Context, _, _ int) ([]*models.Post, error) {
	return nil, nil
}

func TestCreateComment(t *testing.T) {
	comments := &commentRepoStub{}
	svc := NewCommentService(comments, &postRepoStub{existingID: 5})
	ctx := context.Background()

	created, err := svc.CreateComment(ctx, CreateCommentInput{UserID: 1, PostID: 5, Content: "hello"})
	require.NoError(t, err)
	assert.EqualValues(t, 42, created.ID)
	assert.Equal(t, "hello", created.Content)
	assert.EqualValues(t, 5, created.PostID)
}

func TestCreateComment_Validation(t *testing.T) {
	svc := NewCommentService(&commentRepoStub{}, &postRepoStub{existingID: 5})
	ctx := context.Background()

	_, err := svc.CreateComment(ctx, CreateCommentInput{UserID: 1, PostID: 5, Content: ""})
	assert.Equal(t, models.CodeValidation, appErrCode(t, err))

	_, err = svc.CreateComment(ctx, CreateCommentInput{
		UserID:  1,
		PostID:  5,
		Content: strings.Repeat("x", maxCommentLen+1),
	})
	assert.Equal(t, models.CodeValidation, appErrCode(t, err))
}

func TestCreateComment_PostNotFound(t *testing.T) {
	svc := NewCommentService(&commentRepoStub{}, &postRepoStub{existingID: 5})

	_, err := svc.CreateComment(context.Background(), CreateCommentInput{UserID: 1, PostID: 6, Content: "hello"})
	assert.Equal(t, models.CodeNotFound, appErrCode(t, err))
}

func TestListComments_PostNotFound(t *testing.T) {
	svc := NewCommentService(&commentRepoStub{}, &postRepoStub{existingID: 5})

	_, err := svc.ListComments(context.Background(), 6)
	assert.Equal(t, models.CodeNotFound, appErrCode(t, err))
}
