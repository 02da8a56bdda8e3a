// Package layout loads joystick definitions from a TOML file and builds
// them into a joystick.Set.
//
// A layout holds one [[joystick]] table per joystick:
//
//	[[joystick]]
//	id = "move"
//	placement = "floating"
//	bounds = [0, -300, 400, 300]   # x, y, width, height; negative x/y anchor to the right/bottom edge
//	base_size = 150
//	knob_size = 75
//	action = "tint"
//	tint = { down = "#808080", up = "white" }
//
//	  [[joystick.constraint]]
//	  kind = "deadzone"
//	  threshold = 0.1
//
// Other top-level tables are ignored, so a layout can share a file with
// application settings.
package layout

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bvisness/joypad/joystick"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type Layout struct {
	Joysticks []Spec `toml:"joystick"`
}

// Spec is one [[joystick]] table.
type Spec struct {
	ID          string           `toml:"id"`
	Placement   string           `toml:"placement"`
	Constraints []ConstraintSpec `toml:"constraint"`
	Invisible   bool             `toml:"invisible"`
	Action      string           `toml:"action"`

	Bounds   [4]float32 `toml:"bounds"`
	BaseSize float32    `toml:"base_size"`
	KnobSize float32    `toml:"knob_size"`

	AreaColor string   `toml:"area_color"`
	BaseColor string   `toml:"base_color"`
	KnobColor string   `toml:"knob_color"`
	Tint      TintSpec `toml:"tint"`
}

type ConstraintSpec struct {
	Kind      string  `toml:"kind"`
	Threshold float32 `toml:"threshold"`
}

type TintSpec struct {
	Down string `toml:"down"`
	Up   string `toml:"up"`
}

// Skin holds optional textures shared by every built joystick.
type Skin struct {
	Base *rl.Texture2D
	Knob *rl.Texture2D
}

// Built pairs a joystick with the boxes that draw it.
type Built struct {
	Joystick *joystick.Joystick[string]
	Boxes    joystick.Boxes
}

// Parse decodes and validates a layout.
func Parse(data string) (*Layout, error) {
	var l Layout
	md, err := toml.Decode(data, &l)
	if err != nil {
		return nil, fmt.Errorf("bad layout: %w", err)
	}
	for _, key := range md.Undecoded() {
		if len(key) > 0 && key[0] == "joystick" {
			return nil, fmt.Errorf("bad layout: unknown key %q", key.String())
		}
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Load reads a layout file. A missing file is reported with an error that
// matches os.ErrNotExist.
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout: %w", err)
	}
	l, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Default is the layout used when no file is given: a floating movement
// stick on the left and a fixed aiming stick on the right.
func Default() *Layout {
	return &Layout{Joysticks: []Spec{
		{
			ID:          "move",
			Placement:   "floating",
			Constraints: []ConstraintSpec{{Kind: "deadzone", Threshold: 0.1}},
			Action:      "tint",
			Bounds:      [4]float32{0, -360, 480, 360},
			BaseSize:    150,
			KnobSize:    75,
			AreaColor:   "#ffffff10",
		},
		{
			ID:        "aim",
			Placement: "fixed",
			Action:    "tint",
			Bounds:    [4]float32{-240, -240, 240, 240},
			BaseSize:  150,
			KnobSize:  75,
			Tint:      TintSpec{Down: "skyblue", Up: "white"},
		},
	}}
}

// Validate checks every entry without building anything.
func (l *Layout) Validate() error {
	var errs []error
	seen := map[string]bool{}
	for i, spec := range l.Joysticks {
		if err := spec.validate(); err != nil {
			errs = append(errs, fmt.Errorf("joystick %d (%q): %w", i, spec.ID, err))
			continue
		}
		if seen[spec.ID] {
			errs = append(errs, fmt.Errorf("joystick %d: duplicate id %q", i, spec.ID))
		}
		seen[spec.ID] = true
	}
	return errors.Join(errs...)
}

func (spec Spec) validate() error {
	if strings.TrimSpace(spec.ID) == "" {
		return errors.New("missing id")
	}
	if spec.Bounds[2] <= 0 || spec.Bounds[3] <= 0 {
		return fmt.Errorf("bounds %v must have a positive width and height", spec.Bounds)
	}
	if spec.BaseSize < 0 || spec.KnobSize < 0 {
		return errors.New("sizes must not be negative")
	}
	_, err := spec.config(Skin{})
	return err
}

// Rect resolves the bounds against the screen size. Negative x or y are
// measured from the right or bottom edge.
func (spec Spec) Rect(screen joystick.V2) rl.Rectangle {
	x, y, w, h := spec.Bounds[0], spec.Bounds[1], spec.Bounds[2], spec.Bounds[3]
	if x < 0 {
		x = screen.X + x
	}
	if y < 0 {
		y = screen.Y + y
	}
	return rl.Rectangle{X: x, Y: y, Width: w, Height: h}
}

func (spec Spec) config(skin Skin) (joystick.CreateParams[string], error) {
	var p joystick.CreateParams[string]

	placement, err := ParsePlacement(spec.Placement)
	if err != nil {
		return p, err
	}
	for _, c := range spec.Constraints {
		constraint, err := ParseConstraint(c)
		if err != nil {
			return p, err
		}
		p.Constraints = append(p.Constraints, constraint)
	}

	for _, c := range []struct {
		src string
		dst *rl.Color
	}{
		{spec.AreaColor, &p.AreaColor},
		{spec.BaseColor, &p.BaseColor},
		{spec.KnobColor, &p.KnobColor},
	} {
		if *c.dst, err = ParseColor(c.src); err != nil {
			return p, err
		}
	}

	actionName := spec.Action
	if actionName == "" {
		actionName = "none"
	}
	factory, err := LookupAction(actionName)
	if err != nil {
		return p, err
	}
	if p.Action, err = factory(spec); err != nil {
		return p, fmt.Errorf("action %q: %w", actionName, err)
	}

	p.Placement = placement
	p.Visibility = joystick.AlwaysVisible
	if spec.Invisible {
		p.Visibility = joystick.InvisibleUntilTouched
	}
	p.BaseSize = joystick.V2{X: spec.BaseSize, Y: spec.BaseSize}
	p.KnobSize = joystick.V2{X: spec.KnobSize, Y: spec.KnobSize}
	p.BaseTexture = skin.Base
	p.KnobTexture = skin.Knob
	return p, nil
}

// Build creates every joystick in the layout for the given screen size.
func (l *Layout) Build(screen joystick.V2, skin Skin) ([]Built, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	res := make([]Built, 0, len(l.Joysticks))
	for _, spec := range l.Joysticks {
		p, err := spec.config(skin)
		if err != nil {
			return nil, err
		}
		p.Bounds = spec.Rect(screen)
		j, boxes := joystick.Create(spec.ID, p)
		res = append(res, Built{Joystick: j, Boxes: boxes})
	}
	return res, nil
}

// NewSet builds the layout into a fresh set.
func (l *Layout) NewSet(screen joystick.V2, skin Skin) (*joystick.Set[string], []Built, error) {
	built, err := l.Build(screen, skin)
	if err != nil {
		return nil, nil, err
	}
	s := joystick.NewSet[string]()
	for _, b := range built {
		if err := s.Add(b.Joystick); err != nil {
			return nil, nil, err
		}
	}
	return s, built, nil
}
