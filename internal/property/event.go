package property

import "time"

// Event types, also used as routing keys.
const (
	EventCreated = "property.created"
	EventUpdated = "property.updated"
	EventDeleted = "property.deleted"
)

// Event is published after a property was created, updated or deleted.
type Event struct {
	Type       string    `json:"type"`
	PropertyID string    `json:"property_id"`
	Slug       string    `json:"slug"`
	OwnerID    string    `json:"owner_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewEvent builds an Event of eventType for p.
func NewEvent(eventType string, p Property, at time.Time) Event {
	return Event{
		Type:       eventType,
		PropertyID: p.ID,
		Slug:       p.Slug,
		OwnerID:    p.OwnerID,
		OccurredAt: at.UTC(),
	}
}
