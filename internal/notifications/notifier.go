// Package notifications publishes engagement events to Redis channels so
// downstream consumers (feed rankers, activity streams) can react without
// polling the database.
package notifications

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Event names published on the broadcast channel.
const (
	EventCommentLikeToggled = "comment_like_toggled"
)

// EngagementEvent is the payload published after a committed toggle.
type EngagementEvent struct {
	Event           string `json:"event"`
	CommentID       uint   `json:"comment_id"`
	PostID          uint   `json:"post_id"`
	ActorID         uint   `json:"actor_id"`
	Liked           bool   `json:"liked"`
	LikeCount       int64  `json:"like_count"`
	EngagementScore int    `json:"engagement_score"`
}

// Notifier provides helpers to publish engagement events into Redis channels.
// All publishing is best-effort: a nil or unreachable Redis never fails the
// request that produced the event.
type Notifier struct {
	rdb *redis.Client
}

// NewNotifier creates a new Notifier instance using the provided Redis client.
func NewNotifier(rdb *redis.Client) *Notifier {
	return &Notifier{rdb: rdb}
}

// PublishEngagement sends an engagement event to the broadcast channel and to
// the acting user's channel.
func (n *Notifier) PublishEngagement(ctx context.Context, ev EngagementEvent) error {
	if n.rdb == nil {
		return nil
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	if err := n.rdb.Publish(ctx, "engagement:broadcast", payload).Err(); err != nil {
		return err
	}
	userChannel := fmt.Sprintf("engagement:user:%d", ev.ActorID)
	return n.rdb.Publish(ctx, userChannel, payload).Err()
}
