package joystick

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// KnobOffset computes the knob's offset inside the joystick for a given
// state, flipping the delta back to screen space (y down).
func KnobOffset(baseOffset, delta, baseHalf, knobHalf V2) V2 {
	travel := V2{
		X: baseHalf.X * (delta.X - 1),
		Y: baseHalf.Y * (-delta.Y - 1),
	}
	return rl.Vector2Add(rl.Vector2Add(baseOffset, rl.Vector2Add(baseHalf, knobHalf)), travel)
}

// project writes the final base and knob positions back to the host.
func (j *Joystick[I]) project() {
	base, knob := j.Nodes.Base, j.Nodes.Knob
	if base == nil {
		return
	}
	base.SetOffset(j.state.BaseOffset)

	if knob == nil {
		return
	}
	baseRect, ok := base.Rect()
	if !ok {
		return
	}
	knobRect, ok := knob.Rect()
	if !ok {
		return
	}
	knob.SetOffset(KnobOffset(j.state.BaseOffset, j.state.Delta, RectHalfSize(baseRect), RectHalfSize(knobRect)))
}
