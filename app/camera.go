package app

import (
	"github.com/bvisness/joypad/util"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type CameraState struct {
	rl.Camera2D

	// Stiffness is how quickly the camera closes the gap to its target, per
	// second.
	Stiffness float32
}

func NewCameraState(screen V2) *CameraState {
	return &CameraState{
		Camera2D: rl.Camera2D{
			Offset: rl.Vector2Scale(screen, 0.5),
			Zoom:   1.0,
		},
		Stiffness: 6,
	}
}

// WorldToScreen converts a world position to screen coordinates
func (c *CameraState) WorldToScreen(worldPos V2) V2 {
	return rl.GetWorldToScreen2D(worldPos, c.Camera2D)
}

// ScreenToWorld converts a screen position to world coordinates
func (c *CameraState) ScreenToWorld(screenPos V2) V2 {
	return rl.GetScreenToWorld2D(screenPos, c.Camera2D)
}

// Follow eases the camera target toward pos.
func (c *CameraState) Follow(pos V2, dt float32) {
	t := util.Clamp(c.Stiffness*dt, 0, 1)
	c.Target = rl.Vector2Lerp(c.Target, pos, t)
}

// Resize keeps the view centered when the window changes size.
func (c *CameraState) Resize(screen V2) {
	c.Offset = rl.Vector2Scale(screen, 0.5)
}
