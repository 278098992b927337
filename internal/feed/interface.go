package feed

import "time"

// FeedClient defines the interface for fetching captured messages.
// This allows for mock implementations to be used in tests.
type FeedClient interface {
	// GetMessages returns messages observed at or after the given time,
	// across all captured conversations.
	GetMessages(since time.Time) ([]Message, error)
}
