package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// MatchEvent is the broadcast payload for match lifecycle changes. Clients
// keep the request id of their latest request and discard events carrying
// any other id.
type MatchEvent struct {
	Type      string `json:"type"`
	UserID    string `json:"user_id"`
	RequestID string `json:"request_id"`
	Matches   int    `json:"matches,omitempty"`
	Reason    string `json:"reason,omitempty"`
	Timestamp string `json:"timestamp"`
}

const (
	EventMatchStarted   = "match_started"
	EventMatchCompleted = "match_completed"
	EventMatchFailed    = "match_failed"
)

// Notifier publishes match lifecycle events through the hub.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) MatchStarted(userID uuid.UUID, requestID string) {
	n.publish(MatchEvent{
		Type:      EventMatchStarted,
		UserID:    userID.String(),
		RequestID: requestID,
	})
}

func (n *Notifier) MatchCompleted(userID uuid.UUID, requestID string, matches int) {
	n.publish(MatchEvent{
		Type:      EventMatchCompleted,
		UserID:    userID.String(),
		RequestID: requestID,
		Matches:   matches,
	})
}

func (n *Notifier) MatchFailed(userID uuid.UUID, requestID string, reason string) {
	n.publish(MatchEvent{
		Type:      EventMatchFailed,
		UserID:    userID.String(),
		RequestID: requestID,
		Reason:    reason,
	})
}

func (n *Notifier) publish(evt MatchEvent) {
	if n == nil || n.hub == nil {
		return
	}
	evt.Timestamp = time.Now().UTC().Format(time.RFC3339)
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}
