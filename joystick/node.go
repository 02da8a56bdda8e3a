package joystick

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Tintable is an element whose color can be read and changed.
type Tintable interface {
	Tint() rl.Color
	SetTint(c rl.Color)
}

// Node is a UI element owned by the host. The joystick only ever asks for
// its on-screen rectangle and writes back offsets, visibility and tint.
type Node interface {
	Tintable

	// Rect returns the current on-screen rectangle. ok is false when the
	// element has no geometry yet, e.g. before layout has run.
	Rect() (r rl.Rectangle, ok bool)

	// SetOffset positions the element absolutely, relative to its parent's
	// top-left corner.
	SetOffset(offset V2)

	Visible() bool
	SetVisible(visible bool)
}

// Nodes are the elements that make up one joystick. Root is required. Area
// is the optional interaction area; without it the root's rectangle is used.
// Base and Knob are the two visuals that projection moves around.
type Nodes struct {
	Root Node
	Area Node
	Base Node
	Knob Node
}

// Box is a minimal retained element for hosts without their own UI tree.
// A root box is positioned absolutely by Pos; a child box is positioned at
// Pos relative to its parent's top-left corner. Offset is added on top of
// Pos by absolute positioning.
type Box struct {
	Parent *Box

	Pos    V2
	Size   V2
	Offset V2

	// LaidOut marks a root box as having valid geometry. Children inherit it.
	LaidOut bool

	Color   rl.Color
	Texture *rl.Texture2D
	Hidden  bool
}

var _ Node = &Box{}

func (b *Box) Rect() (rl.Rectangle, bool) {
	origin := V2{}
	if b.Parent != nil {
		parent, ok := b.Parent.Rect()
		if !ok {
			return rl.Rectangle{}, false
		}
		origin = RectMin(parent)
	} else if !b.LaidOut {
		return rl.Rectangle{}, false
	}
	min := rl.Vector2Add(origin, rl.Vector2Add(b.Pos, b.Offset))
	return rl.Rectangle{X: min.X, Y: min.Y, Width: b.Size.X, Height: b.Size.Y}, true
}

func (b *Box) SetOffset(offset V2) {
	b.Offset = offset
}

// Visible reports whether the box and all of its ancestors are shown.
func (b *Box) Visible() bool {
	if b.Hidden {
		return false
	}
	if b.Parent != nil {
		return b.Parent.Visible()
	}
	return true
}

func (b *Box) SetVisible(visible bool) {
	b.Hidden = !visible
}

func (b *Box) Tint() rl.Color {
	return b.Color
}

func (b *Box) SetTint(c rl.Color) {
	b.Color = c
}
