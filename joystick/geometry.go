package joystick

import (
	"github.com/bvisness/joypad/util"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type V2 = rl.Vector2

func RectMin(r rl.Rectangle) V2 {
	return V2{X: r.X, Y: r.Y}
}

func RectHalfSize(r rl.Rectangle) V2 {
	return V2{X: r.Width / 2, Y: r.Height / 2}
}

func RectCenter(r rl.Rectangle) V2 {
	return rl.Vector2Add(RectMin(r), RectHalfSize(r))
}

func RectContains(r rl.Rectangle, p V2) bool {
	return rl.CheckCollisionPointRec(p, r)
}

// RectFromCenter builds a rectangle from its center and half-extent.
func RectFromCenter(center, halfSize V2) rl.Rectangle {
	return rl.Rectangle{
		X:      center.X - halfSize.X,
		Y:      center.Y - halfSize.Y,
		Width:  halfSize.X * 2,
		Height: halfSize.Y * 2,
	}
}

// CircularDelta converts a screen-space offset from the base center into a
// normalized delta. The offset is clamped to a circle of radius baseHalf.X,
// divided per axis by normalizer, clamped to [-1, 1], and flipped on y so
// that positive y points up.
//
// A zero radius yields a zero delta, as does a zero normalizer axis.
func CircularDelta(offset, baseHalf, normalizer V2) V2 {
	radius := baseHalf.X
	if radius <= 0 {
		return V2{}
	}
	if dist := rl.Vector2Length(offset); dist > radius {
		offset = rl.Vector2Scale(offset, radius/dist)
	}

	var d V2
	if normalizer.X != 0 {
		d.X = util.Clamp(offset.X/normalizer.X, -1, 1)
	}
	if normalizer.Y != 0 {
		d.Y = util.Clamp(offset.Y/normalizer.Y, -1, 1)
	}
	if d.Y != 0 {
		d.Y = -d.Y
	}
	return d
}

// Snap maps v onto the nearest major axis directions. A component becomes
// its sign if its magnitude exceeds threshold, and zero otherwise. The
// threshold defaults to 0.5.
func Snap(v V2, threshold ...float32) V2 {
	t := float32(0.5)
	if len(threshold) > 0 {
		t = threshold[0]
	}
	snap := func(c float32) float32 {
		if util.Abs(c) > t {
			return util.Sign(c)
		}
		return 0
	}
	return V2{X: snap(v.X), Y: snap(v.Y)}
}
