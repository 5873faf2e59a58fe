package domain

import "time"

// ItemStatus is the lifecycle state of a scheduled or queued content item.
type ItemStatus string

const (
	ItemPending   ItemStatus = "pending"
	ItemSent      ItemStatus = "sent"
	ItemFailed    ItemStatus = "failed"
	ItemCancelled ItemStatus = "cancelled"
)

// ScheduledContentItem is one timed piece of match content. A match produces
// many items: one per (opportunity flag, language) pair.
type ScheduledContentItem struct {
	ID           int64
	MatchID      int64
	ContentType  ContentType
	Subtype      string
	Language     string
	ChannelIDs   []int64
	ScheduledAt  time.Time
	Priority     int
	Status       ItemStatus
	CancelReason string
	CreatedAt    time.Time
}

// PushQueueItem is one randomized or triggered secondary-content delivery.
type PushQueueItem struct {
	ID           int64
	ContentType  ContentType
	ChannelIDs   []int64
	Language     string
	ScheduledAt  time.Time
	DelayMinutes int
	Status       ItemStatus
	// Context is a free-form audit payload (origin tags, trigger source).
	Context   map[string]string
	CreatedAt time.Time
}

// SpamCounter is one daily send counter row: per content type, or the
// aggregate emergency-brake row keyed by content type "*".
type SpamCounter struct {
	Day         time.Time `db:"day"`
	ContentType string    `db:"content_type"`
	Count       int       `db:"count"`
	Max         int       `db:"max"`
}

// AggregateCounterType keys the per-day emergency-brake row.
const AggregateCounterType = "*"
