package app

import (
	"fmt"

	"github.com/bvisness/joypad/joystick"
	"github.com/bvisness/joypad/util"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func renderWorld(cam *CameraState, player *Player, screen V2) {
	rl.BeginMode2D(cam.Camera2D)
	defer rl.EndMode2D()

	// Only the grid lines that are on screen.
	topLeft := cam.ScreenToWorld(V2{})
	bottomRight := cam.ScreenToWorld(screen)
	for x := float32(int(topLeft.X/GridSize)-1) * GridSize; x <= bottomRight.X; x += GridSize {
		rl.DrawLineV(V2{X: x, Y: topLeft.Y}, V2{X: x, Y: bottomRight.Y}, DarkGray)
	}
	for y := float32(int(topLeft.Y/GridSize)-1) * GridSize; y <= bottomRight.Y; y += GridSize {
		rl.DrawLineV(V2{X: topLeft.X, Y: y}, V2{X: bottomRight.X, Y: y}, DarkGray)
	}

	rl.DrawCircleV(player.Pos, 20, Accent)
	nose := rl.Vector2Add(player.Pos, rl.Vector2Scale(player.Facing, 32))
	rl.DrawLineEx(player.Pos, nose, 4, White)
}

func renderJoystick(boxes joystick.Boxes) {
	if r, ok := boxes.Area.Rect(); ok && boxes.Area.Visible() && boxes.Area.Color.A > 0 {
		rl.DrawRectangleRec(r, boxes.Area.Color)
	}
	renderDisc(boxes.Base, 0.25)
	renderDisc(boxes.Knob, 0.8)
}

func renderDisc(b *joystick.Box, fill float32) {
	if !b.Visible() {
		return
	}
	r, ok := b.Rect()
	if !ok || r.Width <= 0 {
		return
	}

	if b.Texture != nil {
		tex := *b.Texture
		rl.DrawTexturePro(
			tex,
			rl.Rectangle{X: 0, Y: 0, Width: float32(tex.Width), Height: float32(tex.Height)},
			r,
			V2{},
			0,
			b.Color,
		)
		return
	}

	center := joystick.RectCenter(r)
	radius := util.Min(r.Width, r.Height) / 2
	rl.DrawCircleV(center, radius, rl.Fade(b.Color, fill))
	rl.DrawCircleLinesV(center, radius, b.Color)
}

func renderHUD(sticks []*joystick.Joystick[string], player *Player) {
	y := int32(S3)
	for _, j := range sticks {
		d := j.Delta()
		snap := j.Snap()
		line := fmt.Sprintf("%-6s %-8s delta (%+.2f, %+.2f)  snap (%+.0f, %+.0f)", j.ID, j.Placement, d.X, d.Y, snap.X, snap.Y)
		rl.DrawText(line, S3, y, F2, util.Tern(j.State().Active(), White, Gray))
		y += F2 + S2
	}
	rl.DrawText(fmt.Sprintf("player (%.0f, %.0f)", player.Pos.X, player.Pos.Y), S3, y, F1, Gray)
	rl.DrawFPS(int32(rl.GetScreenWidth())-100, S3)
}
