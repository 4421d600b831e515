package events

import "time"

// Event types published on the bus.
const (
	TypeWatchItemNew       = "WATCH_ITEM_NEW"
	TypeExtractionComplete = "EXTRACTION_COMPLETE"
	TypeExtractionFailed   = "EXTRACTION_FAILED"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "WATCH_ITEM_NEW").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is a plain implementation suitable for most publishers.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewWatchItemEvent wraps a freshly discovered feed item for the bus.
func NewWatchItemEvent(data map[string]interface{}) BaseEvent {
	return BaseEvent{
		Type:       TypeWatchItemNew,
		Data:       data,
		OccurredAt: time.Now(),
	}
}
