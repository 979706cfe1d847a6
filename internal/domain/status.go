package domain

// EventStatus is the lifecycle state of an event. The only move the machine
// allows is building -> valid; there is no way back.
type EventStatus string

const (
	EventStatusBuilding EventStatus = "building"
	EventStatusValid    EventStatus = "valid"
)

var statusTransitions = map[EventStatus]EventStatus{
	EventStatusBuilding: EventStatusValid,
}

// Guard is evaluated before a transition is applied. It returns an empty
// string when the transition may proceed, otherwise the blocking reason.
type Guard func() string

// Transition returns the new status if the move is allowed and the guard
// passes. The guard runs strictly before any state is touched.
func (s EventStatus) Transition(to EventStatus, guard Guard) (EventStatus, error) {
	if statusTransitions[s] != to {
		return s, NewValidationError("transition from " + string(s) + " to " + string(to) + " is not allowed")
	}

	if guard != nil {
		if reason := guard(); reason != "" {
			return s, NewValidationError(reason)
		}
	}

	return to, nil
}
