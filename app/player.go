package app

import (
	"fmt"

	"github.com/bvisness/joypad/joystick"
	"github.com/bvisness/joypad/util"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type V2 = rl.Vector2

// Player is the thing the demo's sticks drive around.
type Player struct {
	Pos    V2
	Facing V2
	Speed  float32

	curve *vm.Program
}

func NewPlayer(settings MovementSettings) (*Player, error) {
	curve, err := CompileCurve(settings.Curve)
	if err != nil {
		return nil, err
	}
	return &Player{
		Facing: V2{X: 1},
		Speed:  settings.Speed,
		curve:  curve,
	}, nil
}

// CompileCurve compiles a response curve expression over x.
func CompileCurve(code string) (*vm.Program, error) {
	program, err := expr.Compile(code, expr.Env(map[string]any{"x": 0.0}), expr.AsFloat64())
	if err != nil {
		return nil, fmt.Errorf("bad movement curve: %v", err)
	}
	return program, nil
}

// Response maps a deflection in [0, 1] through the curve. The result is
// clamped to [0, 1].
func (p *Player) Response(x float32) (float32, error) {
	output, err := expr.Run(p.curve, map[string]any{"x": float64(x)})
	if err != nil {
		return 0, fmt.Errorf("movement curve failed: %w", err)
	}
	return util.Clamp(float32(output.(float64)), 0, 1), nil
}

// Move advances the player by one frame of stick input. delta is y-up.
func (p *Player) Move(delta V2, dt float32) error {
	magnitude := util.Min(rl.Vector2Length(delta), 1)
	if magnitude == 0 {
		return nil
	}
	response, err := p.Response(magnitude)
	if err != nil {
		return err
	}

	dir := rl.Vector2Scale(screenDir(delta), 1/rl.Vector2Length(delta))
	p.Pos = rl.Vector2Add(p.Pos, rl.Vector2Scale(dir, response*p.Speed*dt))
	return nil
}

// Aim turns the player toward the stick direction. Snapped input aims in
// eight directions.
func (p *Player) Aim(delta V2, snap bool) {
	if snap {
		delta = joystick.Snap(delta)
	}
	if delta == (V2{}) {
		return
	}
	p.Facing = rl.Vector2Normalize(screenDir(delta))
}

// screenDir flips a y-up stick vector into y-down world space.
func screenDir(delta V2) V2 {
	return V2{X: delta.X, Y: -delta.Y}
}
