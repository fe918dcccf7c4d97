package cache

import (
	"context"
	"fmt"
	"time"
)

const likeCountTTL = 5 * time.Minute

// CommentLikesKey returns the cache key for a comment's like count.
func CommentLikesKey(commentID uint) string {
	return fmt.Sprintf("comment:%d:likes", commentID)
}

// GetCommentLikeCount returns the cached like count for a comment.
// The second return value reports whether a cached value was found.
func GetCommentLikeCount(ctx context.Context, commentID uint) (int64, bool) {
	if client == nil {
		return 0, false
	}
	n, err := client.Get(ctx, CommentLikesKey(commentID)).Int64()
	if err != nil {
		return 0, false
	}
	return n, true
}

// SetCommentLikeCount stores the like count for a comment with a short TTL.
// The TTL bounds staleness if an invalidation is ever missed.
func SetCommentLikeCount(ctx context.Context, commentID uint, count int64) {
	if client == nil {
		return
	}
	client.Set(ctx, CommentLikesKey(commentID), count, likeCountTTL)
}

// InvalidateCommentLikes drops the cached like count for a comment.
func InvalidateCommentLikes(ctx context.Context, commentID uint) {
	if client == nil {
		return
	}
	client.Del(ctx, CommentLikesKey(commentID))
}
