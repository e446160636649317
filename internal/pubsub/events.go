// Package pubsub provides a generic publish/subscribe broker used to fan
// out provenance and log events inside the process.
package pubsub

import "time"

// EventType names the kind of event being published. Packages declare
// their own constants next to the payload type they publish.
type EventType string

// Event is one published event with a typed payload.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}
