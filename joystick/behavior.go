package joystick

import (
	"fmt"

	"github.com/bvisness/joypad/util"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Placement decides how the base moves and how the delta is measured.
type Placement int

const (
	// Fixed keeps the base in place.
	Fixed Placement = iota
	// Floating moves the base under the pointer when a session starts.
	Floating
	// Dynamic starts like Floating and drags the base along whenever the
	// pointer leaves the base's radius.
	Dynamic
)

func (p Placement) String() string {
	switch p {
	case Fixed:
		return "fixed"
	case Floating:
		return "floating"
	case Dynamic:
		return "dynamic"
	default:
		return fmt.Sprintf("Placement(%d)", int(p))
	}
}

type ConstraintKind int

const (
	DeadZoneKind ConstraintKind = iota
	HorizontalOnlyKind
	VerticalOnlyKind
)

func (k ConstraintKind) String() string {
	switch k {
	case DeadZoneKind:
		return "deadzone"
	case HorizontalOnlyKind:
		return "horizontal"
	case VerticalOnlyKind:
		return "vertical"
	default:
		return fmt.Sprintf("ConstraintKind(%d)", int(k))
	}
}

// Constraint restricts the delta after placement has produced it.
type Constraint struct {
	Kind      ConstraintKind
	Threshold float32 // DeadZoneKind only
}

// DeadZone zeroes any delta axis whose magnitude is below threshold.
func DeadZone(threshold float32) Constraint {
	return Constraint{Kind: DeadZoneKind, Threshold: threshold}
}

var (
	// HorizontalOnly forces delta.Y to zero.
	HorizontalOnly = Constraint{Kind: HorizontalOnlyKind}
	// VerticalOnly forces delta.X to zero.
	VerticalOnly = Constraint{Kind: VerticalOnlyKind}
)

func (c Constraint) Apply(delta V2) V2 {
	switch c.Kind {
	case DeadZoneKind:
		if util.Abs(delta.X) < c.Threshold {
			delta.X = 0
		}
		if util.Abs(delta.Y) < c.Threshold {
			delta.Y = 0
		}
	case HorizontalOnlyKind:
		delta.Y = 0
	case VerticalOnlyKind:
		delta.X = 0
	}
	return delta
}

func (c Constraint) String() string {
	if c.Kind == DeadZoneKind {
		return fmt.Sprintf("deadzone(%g)", c.Threshold)
	}
	return c.Kind.String()
}

type Visibility int

const (
	AlwaysVisible Visibility = iota
	// InvisibleUntilTouched hides the joystick while no session is active.
	InvisibleUntilTouched
)

// applyPlacement is the delta stage. It leaves the state untouched when the
// geometry it needs is unavailable.
func (j *Joystick[I]) applyPlacement() {
	s := &j.state
	baseRect, ok := rectOf(j.Nodes.Base)
	if !ok {
		s.dropDelta()
		return
	}
	baseHalf := RectHalfSize(baseRect)

	switch j.Placement {
	case Fixed:
		s.BaseOffset = V2{}
		if s.Pointer == nil {
			s.Delta = V2{}
			return
		}
		offset := rl.Vector2Subtract(s.Pointer.Current, RectCenter(baseRect))
		s.Delta = CircularDelta(offset, baseHalf, baseHalf)

	case Floating:
		j.relocateBase(baseRect)
		if s.Pointer == nil || s.Pointer.JustPressed {
			s.Delta = V2{}
			return
		}
		// The base center sits at the session's start point.
		offset := rl.Vector2Subtract(s.Pointer.Current, s.Pointer.Start)
		s.Delta = CircularDelta(offset, baseHalf, V2{X: baseHalf.X, Y: baseHalf.X})

	case Dynamic:
		rootRect, ok := rectOf(j.Nodes.Root)
		if !ok {
			s.dropDelta()
			return
		}
		j.relocateBase(baseRect)
		if s.Pointer == nil {
			s.Delta = V2{}
			return
		}
		center := rl.Vector2Add(rl.Vector2Add(RectMin(rootRect), s.BaseOffset), baseHalf)
		offset := rl.Vector2Subtract(s.Pointer.Current, center)
		if dist := rl.Vector2Length(offset); baseHalf.X > 0 && dist > baseHalf.X {
			// Pull the base along so the pointer stays on its rim.
			excess := rl.Vector2Subtract(offset, rl.Vector2Scale(offset, baseHalf.X/dist))
			s.BaseOffset = rl.Vector2Add(s.BaseOffset, excess)
			offset = rl.Vector2Subtract(offset, excess)
		}
		s.Delta = CircularDelta(offset, baseHalf, baseHalf)
	}
}

// dropDelta zeroes a stale delta once no session is left to drive it.
func (s *State) dropDelta() {
	if s.Pointer == nil {
		s.Delta = V2{}
	}
}

// relocateBase moves the base under the pointer when a session starts and
// back to rest when it ends.
func (j *Joystick[I]) relocateBase(baseRect rl.Rectangle) {
	s := &j.state
	if s.Pointer != nil && s.Pointer.JustPressed {
		s.BaseOffset = rl.Vector2Subtract(s.Pointer.Start, RectCenter(baseRect))
	} else if s.Pointer == nil && s.JustReleased {
		s.BaseOffset = V2{}
	}
}

// applyConstraints is the constraint stage.
func (j *Joystick[I]) applyConstraints() {
	for _, c := range j.Constraints {
		j.state.Delta = c.Apply(j.state.Delta)
	}
}

func (j *Joystick[I]) applyVisibility() {
	if j.Visibility != InvisibleUntilTouched {
		return
	}
	root := j.Nodes.Root
	s := &j.state
	if s.JustReleased || (s.Pointer == nil && root.Visible()) {
		root.SetVisible(false)
	}
	if s.JustPressed() {
		root.SetVisible(true)
	}
}
