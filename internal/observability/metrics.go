package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RelationEvents counts follow graph mutations by action (follow, unfollow, remove_follower).
	RelationEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "travelshare_relation_events_total",
		Help: "Total number of relationship graph mutations",
	}, []string{"action"})

	// SharingEvents counts publish and unpublish operations.
	SharingEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "travelshare_sharing_events_total",
		Help: "Total number of shared trip publish/unpublish operations",
	}, []string{"action"})

	// EngagementEvents counts like and unlike calls, split by whether they changed state.
	EngagementEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "travelshare_engagement_events_total",
		Help: "Total number of like/unlike calls",
	}, []string{"action", "changed"})

	// FeedLatency records feed composition latency by feed kind.
	FeedLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "travelshare_feed_latency_seconds",
		Help:    "Feed composition latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"feed"})

	// CacheLookups counts relation-count cache lookups by result (hit, miss).
	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "travelshare_cache_lookups_total",
		Help: "Total number of cache lookups by result",
	}, []string{"cache", "result"})
)

// TrackFeed returns a func that observes the elapsed time for the given feed when called.
func TrackFeed(feed string) func() {
	start := time.Now()
	return func() {
		FeedLatency.WithLabelValues(feed).Observe(time.Since(start).Seconds())
	}
}
