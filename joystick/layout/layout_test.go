package layout

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bvisness/joypad/joystick"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
[window]
width = 1280

[[joystick]]
id = "move"
placement = "Dynamic"
bounds = [0, -360, 480, 360]
base_size = 150
knob_size = 75
area_color = "#ffffff10"

  [[joystick.constraint]]
  kind = "deadzone"
  threshold = 0.25

  [[joystick.constraint]]
  kind = "Horizontal_Only"

[[joystick]]
id = "aim"
bounds = [-240, -240, 240, 240]
base_size = 100
knob_size = 50
invisible = true
action = "tint"
tint = { down = "skyblue", up = "#ffffffff" }
`

var screen = joystick.V2{X: 1280, Y: 720}

func TestParse(t *testing.T) {
	l, err := Parse(sample)
	require.NoError(t, err)
	require.Len(t, l.Joysticks, 2)

	move := l.Joysticks[0]
	assert.Equal(t, "move", move.ID)
	assert.Equal(t, [4]float32{0, -360, 480, 360}, move.Bounds)
	assert.Len(t, move.Constraints, 2)
	assert.Equal(t, rl.Rectangle{X: 0, Y: 360, Width: 480, Height: 360}, move.Rect(screen))

	aim := l.Joysticks[1]
	assert.Equal(t, rl.Rectangle{X: 1040, Y: 480, Width: 240, Height: 240}, aim.Rect(screen))
}

func TestBuild(t *testing.T) {
	l, err := Parse(sample)
	require.NoError(t, err)

	s, built, err := l.NewSet(screen, Skin{})
	require.NoError(t, err)
	require.Len(t, built, 2)

	move, ok := s.Get("move")
	require.True(t, ok)
	assert.Equal(t, joystick.Dynamic, move.Placement)
	assert.Equal(t, []joystick.Constraint{joystick.DeadZone(0.25), joystick.HorizontalOnly}, move.Constraints)
	assert.Equal(t, joystick.AlwaysVisible, move.Visibility)
	assert.Equal(t, rl.Color{R: 255, G: 255, B: 255, A: 16}, built[0].Boxes.Area.Tint())

	base, ok := built[0].Boxes.Base.Rect()
	require.True(t, ok)
	assert.Equal(t, joystick.V2{X: 240, Y: 540}, joystick.RectCenter(base))

	aim, _ := s.Get("aim")
	assert.Equal(t, joystick.Fixed, aim.Placement)
	assert.Equal(t, joystick.InvisibleUntilTouched, aim.Visibility)
	assert.False(t, built[1].Boxes.Root.Visible())

	t.Run("tint action from layout", func(t *testing.T) {
		s.Update(joystick.Snapshot{Mouse: joystick.V2{X: 1160, Y: 600}, MousePressed: true})
		assert.True(t, built[1].Boxes.Root.Visible())
		assert.Equal(t, rl.SkyBlue, built[1].Boxes.Knob.Tint())

		s.Update(joystick.Snapshot{})
		assert.Equal(t, rl.White, built[1].Boxes.Knob.Tint())
	})

	t.Run("constraints from layout", func(t *testing.T) {
		s.Update(joystick.Snapshot{Mouse: joystick.V2{X: 240, Y: 540}, MousePressed: true})
		s.Update(joystick.Snapshot{Mouse: joystick.V2{X: 290, Y: 500}, MouseDown: true})
		d := move.Delta()
		assert.NotZero(t, d.X)
		assert.Equal(t, float32(0), d.Y)
	})
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		layout  string
		unknown bool
		msg     string
	}{
		{
			name:    "typo in placement",
			layout:  `[[joystick]]` + "\n" + `id = "a"` + "\n" + `placement = "dynamci"` + "\n" + `bounds = [0, 0, 10, 10]`,
			unknown: true,
			msg:     `did you mean "dynamic"?`,
		},
		{
			name:    "partial placement",
			layout:  `[[joystick]]` + "\n" + `id = "a"` + "\n" + `placement = "float"` + "\n" + `bounds = [0, 0, 10, 10]`,
			unknown: true,
			msg:     `did you mean "floating"?`,
		},
		{
			name:    "constraint kind",
			layout:  `[[joystick]]` + "\n" + `id = "a"` + "\n" + `bounds = [0, 0, 10, 10]` + "\n" + `constraint = [{ kind = "deadzon", threshold = 0.2 }]`,
			unknown: true,
			msg:     `did you mean "deadzone"?`,
		},
		{
			name:    "action",
			layout:  `[[joystick]]` + "\n" + `id = "a"` + "\n" + `bounds = [0, 0, 10, 10]` + "\n" + `action = "tnit"`,
			unknown: true,
			msg:     `unknown action "tnit"`,
		},
		{
			name:   "threshold out of range",
			layout: `[[joystick]]` + "\n" + `id = "a"` + "\n" + `bounds = [0, 0, 10, 10]` + "\n" + `constraint = [{ kind = "deadzone", threshold = 1.5 }]`,
			msg:    "outside [0, 1]",
		},
		{
			name:   "duplicate id",
			layout: "[[joystick]]\nid = \"a\"\nbounds = [0, 0, 10, 10]\n[[joystick]]\nid = \"a\"\nbounds = [0, 0, 10, 10]",
			msg:    `duplicate id "a"`,
		},
		{
			name:   "missing id",
			layout: "[[joystick]]\nbounds = [0, 0, 10, 10]",
			msg:    "missing id",
		},
		{
			name:   "empty bounds",
			layout: "[[joystick]]\nid = \"a\"",
			msg:    "positive width and height",
		},
		{
			name:   "unknown key",
			layout: "[[joystick]]\nid = \"a\"\nbounds = [0, 0, 10, 10]\nbase_sise = 4",
			msg:    `unknown key "joystick.base_sise"`,
		},
		{
			name:   "bad toml",
			layout: "[[joystick]\n",
			msg:    "bad layout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.layout)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
			assert.Equal(t, tt.unknown, errors.Is(err, ErrUnknownName))
		})
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#ff000080")
	require.NoError(t, err)
	assert.Equal(t, rl.Color{R: 255, A: 128}, c)

	c, err = ParseColor("#00ff00")
	require.NoError(t, err)
	assert.Equal(t, rl.Color{G: 255, A: 255}, c)

	c, err = ParseColor("Sky_Blue")
	require.NoError(t, err)
	assert.Equal(t, rl.SkyBlue, c)

	c, err = ParseColor("")
	require.NoError(t, err)
	assert.Equal(t, rl.Color{}, c)

	_, err = ParseColor("#abc")
	assert.Error(t, err)
	_, err = ParseColor("#gggggg")
	assert.Error(t, err)

	_, err = ParseColor("blu")
	assert.ErrorIs(t, err, ErrUnknownName)
	assert.Contains(t, err.Error(), `did you mean "blue"?`)
}

func TestRegisterAction(t *testing.T) {
	var started []string
	RegisterAction("Count-Starts", func(spec Spec) (joystick.Action[string], error) {
		return joystick.ActionFuncs[string]{
			StartDrag: func(id string, _ joystick.State, _ joystick.Subtree) {
				started = append(started, id)
			},
		}, nil
	})

	_, err := LookupAction("count_starts")
	require.NoError(t, err)

	l, err := Parse("[[joystick]]\nid = \"pad\"\nbounds = [0, 0, 100, 100]\nbase_size = 50\naction = \"count-starts\"")
	require.NoError(t, err)
	s, _, err := l.NewSet(screen, Skin{})
	require.NoError(t, err)

	s.Update(joystick.Snapshot{Mouse: joystick.V2{X: 50, Y: 50}, MousePressed: true})
	assert.Equal(t, []string{"pad"}, started)
}

func TestDefault(t *testing.T) {
	l := Default()
	require.NoError(t, l.Validate())
	built, err := l.Build(screen, Skin{})
	require.NoError(t, err)
	assert.Len(t, built, 2)
}

func TestLoad(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "joypad.toml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))
	l, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, l.Joysticks, 2)

	require.NoError(t, os.WriteFile(path, []byte("[[joystick]]\nid = \"x\""), 0o644))
	_, err = Load(path)
	assert.ErrorContains(t, err, path)
}
