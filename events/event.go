package events

import (
	"time"

	"github.com/google/uuid"
)

// Event is a CloudEvents-style envelope published to the message bus.
// userid, labels and tags are extension attributes carried by every event.
type Event struct {
	SpecVersion string            `json:"specversion"`
	ID          string            `json:"id"`
	Source      string            `json:"source"`
	Type        string            `json:"type"`
	Subject     string            `json:"subject,omitempty"`
	Time        time.Time         `json:"time"`
	UserID      string            `json:"userid,omitempty"`
	Labels      map[string]string `json:"labels,omitempty"`
	Tags        []string          `json:"tags,omitempty"`
	Data        map[string]any    `json:"data"`
}

// Event types published on mutation
const (
	ContactCreated      = "contact.created"
	ContactUpdated      = "contact.updated"
	ContactDeleted      = "contact.deleted"
	ContactSubscribed   = "contact_list.contact_subscribed"
	ContactUnsubscribed = "contact_list.contact_unsubscribed"
)

func newEvent(source, eventType, subject, userID string, data map[string]any) Event {
	return Event{
		SpecVersion: "1.0",
		ID:          uuid.New().String(),
		Source:      source,
		Type:        eventType,
		Subject:     subject,
		Time:        time.Now().UTC(),
		UserID:      userID,
		Data:        data,
	}
}
