// Package observability provides application metrics and tracing.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EngagementToggles counts comment-like toggles by resulting action ("like" or "unlike").
	EngagementToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_engagement_toggles_total",
		Help: "Total number of comment-like toggle operations by resulting action",
	}, []string{"action"})

	// NotificationsCreated counts notifications created by type.
	NotificationsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_notifications_created_total",
		Help: "Total number of notifications created by type",
	}, []string{"type"})

	// EmailsSent counts email delivery attempts by provider and outcome.
	EmailsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_emails_sent_total",
		Help: "Total number of email delivery attempts by provider and status",
	}, []string{"provider", "status"})

	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})
)
