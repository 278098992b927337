package feed

import "time"

// Message is one captured message from a league conversation, as delivered
// by the external capture service. How the capture service obtains them
// (browser automation against the messaging client) is its own business.
type Message struct {
	// ThreadKey identifies the source conversation; ingest routes on it.
	ThreadKey string `json:"thread_key"`
	// Sender is the raw sender identifier, typically a formatted phone
	// number such as "(858) 735-9353".
	Sender     string    `json:"sender"`
	Text       string    `json:"text"`
	ObservedAt time.Time `json:"observed_at"`
}
