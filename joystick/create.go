package joystick

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// CreateParams describes a self-contained joystick built out of Boxes.
type CreateParams[I comparable] struct {
	// Bounds is the on-screen interaction area.
	Bounds rl.Rectangle

	BaseSize V2
	KnobSize V2

	// Zero colors mean white for the base and knob and transparent for
	// the area.
	AreaColor rl.Color
	BaseColor rl.Color
	KnobColor rl.Color

	BaseTexture *rl.Texture2D
	KnobTexture *rl.Texture2D

	Placement   Placement
	Constraints []Constraint
	Visibility  Visibility
	Action      Action[I]
}

// Boxes are the elements created by Create, for drawing. Area is the
// outermost box; Root is the pad inside it that holds Base and Knob.
type Boxes struct {
	Area, Root, Base, Knob *Box
}

// Create builds a joystick with its own box tree. The pad rests centered in
// the bounds, and the whole bounds rectangle accepts new sessions.
func Create[I comparable](id I, p CreateParams[I]) (*Joystick[I], Boxes) {
	var zero rl.Color
	if p.BaseColor == zero {
		p.BaseColor = rl.White
	}
	if p.KnobColor == zero {
		p.KnobColor = rl.White
	}

	area := &Box{
		Pos:     V2{X: p.Bounds.X, Y: p.Bounds.Y},
		Size:    V2{X: p.Bounds.Width, Y: p.Bounds.Height},
		LaidOut: true,
		Color:   p.AreaColor,
	}
	root := &Box{
		Parent: area,
		Pos:    rl.Vector2Scale(rl.Vector2Subtract(area.Size, p.BaseSize), 0.5),
		Size:   p.BaseSize,
		Hidden: p.Visibility == InvisibleUntilTouched,
	}
	base := &Box{Parent: root, Size: p.BaseSize, Color: p.BaseColor, Texture: p.BaseTexture}
	knob := &Box{Parent: root, Size: p.KnobSize, Color: p.KnobColor, Texture: p.KnobTexture}

	j := New(Config[I]{
		ID:          id,
		Placement:   p.Placement,
		Constraints: p.Constraints,
		Visibility:  p.Visibility,
		Action:      p.Action,
	}, Nodes{Root: root, Area: area, Base: base, Knob: knob})
	j.project()
	return j, Boxes{Area: area, Root: root, Base: base, Knob: knob}
}
