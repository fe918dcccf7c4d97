// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"ripple/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// Run seeds the database with fake users, posts, comments and likes.
// Engagement scores are recomputed from the seeded like rows so the aggregate
// stays consistent with the data.
func Run(db *gorm.DB, opts Options) error {
	gofakeit.Seed(time.Now().UnixNano())

	if opts.ShouldClean {
		if err := clean(db); err != nil {
			return err
		}
	}

	if opts.NumUsers <= 0 {
		opts.NumUsers = 10
	}
	if opts.NumPosts <= 0 {
		opts.NumPosts = 25
	}

	users, err := seedUsers(db, opts.NumUsers)
	if err != nil {
		return err
	}

	posts, err := seedPosts(db, users, opts.NumPosts)
	if err != nil {
		return err
	}

	comments, err := seedComments(db, users, posts)
	if err != nil {
		return err
	}

	if err := seedLikes(db, users, comments); err != nil {
		return err
	}

	return recomputeEngagementScores(db)
}

func clean(db *gorm.DB) error {
	return db.Exec("TRUNCATE TABLE notifications, comment_likes, comments, posts, users CASCADE").Error
}

func seedUsers(db *gorm.DB, n int) ([]*models.User, error) {
	// Shared password keeps local login easy
	hash, err := bcrypt.GenerateFromPassword([]byte("Ripple-dev-password-1!"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		user := &models.User{
			Username: fmt.Sprintf("%s%d", gofakeit.Username(), i),
			Email:    fmt.Sprintf("user%d@%s", i, gofakeit.DomainName()),
			Password: string(hash),
			Bio:      gofakeit.Sentence(8),
		}
		if err := db.Create(user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func seedPosts(db *gorm.DB, users []*models.User, n int) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		post := &models.Post{
			Title:   gofakeit.Sentence(5),
			Content: gofakeit.Paragraph(1, 3, 5, "\n"),
			UserID:  users[rand.Intn(len(users))].ID,
		}
		if err := db.Create(post).Error; err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func seedComments(db *gorm.DB, users []*models.User, posts []*models.Post) ([]*models.Comment, error) {
	var comments []*models.Comment
	for _, post := range posts {
		for i := 0; i < rand.Intn(5); i++ {
			comment := &models.Comment{
				Content: gofakeit.Sentence(12),
				UserID:  users[rand.Intn(len(users))].ID,
				PostID:  post.ID,
			}
			if err := db.Create(comment).Error; err != nil {
				return nil, err
			}
			comments = append(comments, comment)
		}
	}
	return comments, nil
}

func seedLikes(db *gorm.DB, users []*models.User, comments []*models.Comment) error {
	for _, comment := range comments {
		for _, user := range users {
			if rand.Intn(4) != 0 {
				continue
			}
			like := &models.CommentLike{CommentID: comment.ID, UserID: user.ID}
			if err := db.Create(like).Error; err != nil {
				return err
			}
			if comment.UserID != user.ID {
				commentID := comment.ID
				notification := &models.Notification{
					Type:        models.NotificationTypeCommentLike,
					RecipientID: comment.UserID,
					ActorID:     user.ID,
					Message:     "liked your comment",
					CommentID:   &commentID,
				}
				if err := db.Create(notification).Error; err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// recomputeEngagementScores sets every post's score to the weighted sum of
// its engagement events, matching what the toggle path maintains online.
func recomputeEngagementScores(db *gorm.DB) error {
	return db.Exec(`
		UPDATE posts SET engagement_score = sub.score * ?
		FROM (
			SELECT comments.post_id AS post_id, COUNT(comment_likes.id) AS score
			FROM comments
			LEFT JOIN comment_likes ON comment_likes.comment_id = comments.id
			GROUP BY comments.post_id
		) AS sub
		WHERE posts.id = sub.post_id
	`, models.EngagementWeightCommentLike).Error
}
