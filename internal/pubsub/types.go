package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	// EventSiteRefresh tells the static-site renderer to rebuild the
	// published pages after an ingest batch changed data.
	EventSiteRefresh EventType = "site-refresh"
	// EventWeekClosed carries a closed week's winners for downstream
	// consumers.
	EventWeekClosed EventType = "week-closed"
)

// SiteRefreshEvent is the payload published on EventSiteRefresh.
type SiteRefreshEvent struct {
	LeagueIDs      []int64 `msgpack:"league_ids"`
	ScoresRecorded int     `msgpack:"scores_recorded"`
}

// WeekClosedEvent is the payload published on EventWeekClosed.
type WeekClosedEvent struct {
	LeagueID int64    `msgpack:"league_id"`
	WeekID   string   `msgpack:"week_id"`
	Winners  []string `msgpack:"winners"`
}
