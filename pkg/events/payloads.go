package events

import "time"

// PostStatePayload announces a post state transition.
type PostStatePayload struct {
	Type         string    `json:"type"` // EventTypePostState
	PostID       string    `json:"post_id"`
	AccountID    string    `json:"account_id"`
	Platform     string    `json:"platform"`
	State        string    `json:"state"`
	AttemptCount int       `json:"attempt_count,omitempty"`
	ErrorKind    string    `json:"error_kind,omitempty"`
	RemoteID     string    `json:"remote_id,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// NewPostStatePayload builds a PostStatePayload stamped with the current time.
func NewPostStatePayload(postID, accountID, platform, state string) PostStatePayload {
	return PostStatePayload{
		Type:      EventTypePostState,
		PostID:    postID,
		AccountID: accountID,
		Platform:  platform,
		State:     state,
		Timestamp: time.Now(),
	}
}

// BudgetAlertPayload warns a creator about budget standing. Threshold is
// "soft" or "hard".
type BudgetAlertPayload struct {
	Type         string    `json:"type"` // EventTypeBudgetAlert
	CreatorID    string    `json:"creator_id"`
	Month        string    `json:"month"`
	Threshold    string    `json:"threshold"`
	CommittedUSD float64   `json:"committed_usd"`
	LimitUSD     float64   `json:"limit_usd"`
	Timestamp    time.Time `json:"timestamp"`
}
