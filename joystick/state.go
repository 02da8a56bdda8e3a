package joystick

import "math"

// MousePointerID is the pointer id recorded for mouse sessions.
const MousePointerID uint64 = math.MaxUint64

// PointerState is one pointer session, from press to release.
type PointerState struct {
	ID      uint64
	IsMouse bool

	Start   V2
	Current V2

	// True only during the frame the session began.
	JustPressed bool
}

// State is the per-instance runtime state of a joystick.
type State struct {
	// Pointer is nil when no session is active. While set, no other pointer
	// may take over the joystick.
	Pointer *PointerState

	// True for exactly one frame, the frame the pointer was released.
	JustReleased bool

	// BaseOffset is the screen-space displacement of the base from its
	// resting position. Only Floating and Dynamic placements move it.
	BaseOffset V2

	// Delta is the normalized displacement, each axis in [-1, 1].
	// Positive x is right and positive y is up.
	Delta V2
}

// Snapshot returns a copy of s that shares nothing with it.
func (s State) Snapshot() State {
	if s.Pointer != nil {
		p := *s.Pointer
		s.Pointer = &p
	}
	return s
}

func (s State) Active() bool {
	return s.Pointer != nil
}

func (s State) JustPressed() bool {
	return s.Pointer != nil && s.Pointer.JustPressed
}

// Snap returns the delta snapped to the major axis directions. See Snap.
func (s State) Snap(threshold ...float32) V2 {
	return Snap(s.Delta, threshold...)
}
