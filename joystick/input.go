package joystick

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// PrimaryButton is the mouse button that drives mouse sessions.
const PrimaryButton = rl.MouseButtonLeft

type TouchPoint struct {
	ID       uint64
	Position V2
}

// InputProvider is the per-frame view of the pointer hardware. Values are
// expected to be sampled once per frame by the host, so every joystick sees
// the same input during a frame.
type InputProvider interface {
	// TouchPoints lists the touches currently down.
	TouchPoints() []TouchPoint
	IsMouseButtonPressed(button rl.MouseButton) bool
	IsMouseButtonDown(button rl.MouseButton) bool
	GetMousePosition() V2
}

// RealInputProvider reads input from raylib.
type RealInputProvider struct{}

func (p RealInputProvider) TouchPoints() []TouchPoint {
	count := rl.GetTouchPointCount()
	points := make([]TouchPoint, 0, count)
	for i := int32(0); i < count; i++ {
		points = append(points, TouchPoint{
			ID:       uint64(rl.GetTouchPointId(i)),
			Position: rl.GetTouchPosition(i),
		})
	}
	return points
}
func (p RealInputProvider) IsMouseButtonPressed(button rl.MouseButton) bool {
	return rl.IsMouseButtonPressed(button)
}
func (p RealInputProvider) IsMouseButtonDown(button rl.MouseButton) bool {
	return rl.IsMouseButtonDown(button)
}
func (p RealInputProvider) GetMousePosition() V2 {
	return rl.GetMousePosition()
}

// Snapshot is a pre-sampled frame of input. It is what headless replays and
// tests feed to Set.Update. Only the primary button is modeled.
type Snapshot struct {
	Touches []TouchPoint

	Mouse        V2
	MouseDown    bool
	MousePressed bool
}

var _ InputProvider = Snapshot{}

func (s Snapshot) TouchPoints() []TouchPoint {
	return s.Touches
}
func (s Snapshot) IsMouseButtonPressed(button rl.MouseButton) bool {
	return button == PrimaryButton && s.MousePressed
}
func (s Snapshot) IsMouseButtonDown(button rl.MouseButton) bool {
	return button == PrimaryButton && (s.MouseDown || s.MousePressed)
}
func (s Snapshot) GetMousePosition() V2 {
	return s.Mouse
}

// findTouch returns the position of touch id, if it is still down.
func findTouch(in InputProvider, id uint64) (V2, bool) {
	for _, t := range in.TouchPoints() {
		if t.ID == id {
			return t.Position, true
		}
	}
	return V2{}, false
}
