package types

import (
	"github.com/filecoin-project/go-address"
)

// Event is a descriptive record emitted by an actor on success. Events carry
// no behavioral contract; they exist for audit trails and tooling.
type Event struct {
	// The ID address of the actor that emitted this event.
	Emitter address.Address

	Attributes []EventAttribute
}

type EventAttribute struct {
	Key   string
	Value string
}

func (e *Event) Get(key string) (string, bool) {
	for _, a := range e.Attributes {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

func (e *Event) Equals(o *Event) bool {
	if e.Emitter != o.Emitter || len(e.Attributes) != len(o.Attributes) {
		return false
	}
	for i := range e.Attributes {
		if e.Attributes[i] != o.Attributes[i] {
			return false
		}
	}
	return true
}
