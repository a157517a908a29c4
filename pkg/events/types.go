// Package events provides real-time delivery of post lifecycle updates via
// WebSocket, with PostgreSQL NOTIFY/LISTEN fanning events out across pods.
//
// Channels:
//
//	creator:{creator_id} — every event concerning the creator's posts and
//	                       budget. The dashboard subscribes here.
//	post:{post_id}       — one post's lifecycle, for detail views.
//
// Post state events are persisted to the events table before NOTIFY so a
// reconnecting client can catch up by last seen event id. Budget alerts are
// transient: the current standing is always available over REST.
package events

// Event types.
const (
	EventTypePostState   = "post.state"
	EventTypeBudgetAlert = "budget.alert"
)

// CreatorChannel returns the channel carrying all of one creator's events.
func CreatorChannel(creatorID string) string {
	return "creator:" + creatorID
}

// PostChannel returns the channel for a single post's lifecycle.
func PostChannel(postID string) string {
	return "post:" + postID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // e.g. "post:abc-123"
	LastEventID *int   `json:"last_event_id,omitempty"` // For catchup
}
