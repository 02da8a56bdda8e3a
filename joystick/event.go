package joystick

import "fmt"

type EventType int

const (
	Press EventType = iota
	Drag
	Up
)

func (t EventType) String() string {
	switch t {
	case Press:
		return "press"
	case Drag:
		return "drag"
	case Up:
		return "up"
	default:
		return fmt.Sprintf("EventType(%d)", int(t))
	}
}

// Event is emitted by Set.Update for each joystick lifecycle step.
type Event[I comparable] struct {
	ID   I
	Type EventType

	// Value is the raw pointer position, zero for Up.
	Value V2
	// Delta is the normalized displacement at emission time.
	Delta V2
}

// Axis returns the event's delta.
func (e Event[I]) Axis() V2 {
	return e.Delta
}

// Snap returns the delta snapped to the major axis directions. See Snap.
func (e Event[I]) Snap(threshold ...float32) V2 {
	return Snap(e.Delta, threshold...)
}

func (e Event[I]) String() string {
	return fmt.Sprintf("%v %s value=(%.1f, %.1f) delta=(%.3f, %.3f)",
		e.ID, e.Type, e.Value.X, e.Value.Y, e.Delta.X, e.Delta.Y)
}

// emit appends this frame's events to events. Press and Drag both fire on
// the press frame; Up fires alone on the release frame.
func (j *Joystick[I]) emit(events []Event[I]) []Event[I] {
	s := &j.state
	if s.JustReleased {
		return append(events, Event[I]{ID: j.ID, Type: Up, Delta: s.Delta})
	}
	if s.Pointer == nil {
		return events
	}
	if s.Pointer.JustPressed {
		events = append(events, Event[I]{ID: j.ID, Type: Press, Value: s.Pointer.Current, Delta: s.Delta})
	}
	return append(events, Event[I]{ID: j.ID, Type: Drag, Value: s.Pointer.Current, Delta: s.Delta})
}
