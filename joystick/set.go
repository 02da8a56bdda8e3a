package joystick

import (
	"fmt"
	"log"
)

// Set owns a group of joysticks and runs their per-frame update. Each stage
// runs across every instance before the next stage starts, so all
// joysticks observe the same input snapshot for a frame.
type Set[I comparable] struct {
	sticks []*Joystick[I]
	byID   map[I]*Joystick[I]
	events []Event[I]

	// Bus, if set, receives a copy of every event emitted by Update.
	Bus *Bus[I]
}

func NewSet[I comparable](sticks ...*Joystick[I]) *Set[I] {
	s := &Set[I]{byID: map[I]*Joystick[I]{}}
	for _, j := range sticks {
		if err := s.Add(j); err != nil {
			panic(err)
		}
	}
	return s
}

// Add registers a joystick. IDs must be unique within a set.
func (s *Set[I]) Add(j *Joystick[I]) error {
	if _, exists := s.byID[j.ID]; exists {
		return fmt.Errorf("joystick %v already exists", j.ID)
	}
	s.sticks = append(s.sticks, j)
	s.byID[j.ID] = j
	return nil
}

// Remove drops the joystick with the given ID. An active session is
// abandoned without an Up event.
func (s *Set[I]) Remove(id I) bool {
	if _, ok := s.byID[id]; !ok {
		return false
	}
	delete(s.byID, id)
	for i, j := range s.sticks {
		if j.ID == id {
			s.sticks = append(s.sticks[:i], s.sticks[i+1:]...)
			break
		}
	}
	return true
}

func (s *Set[I]) Get(id I) (*Joystick[I], bool) {
	j, ok := s.byID[id]
	return j, ok
}

// All returns the joysticks in insertion order.
func (s *Set[I]) All() []*Joystick[I] {
	return s.sticks
}

// ReleaseAll ends every active session on the next update.
func (s *Set[I]) ReleaseAll() {
	for _, j := range s.sticks {
		j.Release()
	}
}

// Update advances every joystick by one frame. The returned slice is reused
// by the next call; copy it to keep events around.
func (s *Set[I]) Update(in InputProvider) []Event[I] {
	for _, j := range s.sticks {
		j.trackInput(in)
	}
	for _, j := range s.sticks {
		j.applyPlacement()
	}
	for _, j := range s.sticks {
		j.applyConstraints()
	}
	for _, j := range s.sticks {
		j.applyVisibility()
	}

	s.events = s.events[:0]
	for _, j := range s.sticks {
		s.events = j.emit(s.events)
	}

	for _, j := range s.sticks {
		j.dispatch()
	}
	for _, j := range s.sticks {
		j.project()
	}

	if s.Bus != nil && len(s.events) > 0 {
		if dropped := s.Bus.Publish(s.events); dropped > 0 {
			log.Printf("joystick bus: dropped %d events", dropped)
		}
	}
	return s.events
}
