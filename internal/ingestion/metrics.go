package ingestion

import (
	"sync"
	"time"
)

// FeedMetrics tracks status-feed ingestion performance
type FeedMetrics struct {
	MessagesReceived  int64
	MessagesProcessed int64
	MessagesFailed    int64
	StatusChanges     int64
	OccupancyChanges  int64
	LastProcessedAt   time.Time
	BufferSize        int
}

// MetricsTracker provides a goroutine-safe wrapper around FeedMetrics.
type MetricsTracker struct {
	mu      sync.RWMutex
	metrics FeedMetrics
}

// NewMetricsTracker builds a new tracker with zeroed metrics.
func NewMetricsTracker() *MetricsTracker {
	return &MetricsTracker{}
}

// Update applies a mutation in a thread-safe way.
func (t *MetricsTracker) Update(fn func(*FeedMetrics)) {
	if fn == nil {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	fn(&t.metrics)
}

// Snapshot returns a copy of the current metrics.
func (t *MetricsTracker) Snapshot() FeedMetrics {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.metrics
}

// Reset clears accumulated metrics.
func (t *MetricsTracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.metrics = FeedMetrics{}
}
