package app

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/bvisness/joypad/joystick/layout"
)

type Settings struct {
	Window   WindowSettings   `toml:"window"`
	Movement MovementSettings `toml:"movement"`
}

type WindowSettings struct {
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Title     string `toml:"title"`
	FPS       int    `toml:"fps"`
	Resizable bool   `toml:"resizable"`
}

type MovementSettings struct {
	// Speed is in world units per second at full deflection.
	Speed float32 `toml:"speed"`
	// Curve maps stick deflection x in [0, 1] to a speed factor. It is an
	// expr expression, e.g. "x ** 2".
	Curve string `toml:"curve"`
}

func DefaultSettings() *Settings {
	return &Settings{
		Window: WindowSettings{
			Width:     1280,
			Height:    720,
			Title:     "joypad",
			FPS:       60,
			Resizable: true,
		},
		Movement: MovementSettings{
			Speed: 400,
			Curve: "x",
		},
	}
}

// configFile is the on-disk shape of a config: settings and a joystick
// layout in one file.
type configFile struct {
	Window    WindowSettings   `toml:"window"`
	Movement  MovementSettings `toml:"movement"`
	Joysticks []layout.Spec    `toml:"joystick"`
}

// LoadSettings reads the settings tables from path. A missing file yields
// the defaults.
func LoadSettings(path string) (*Settings, error) {
	s := DefaultSettings()
	if _, err := toml.DecodeFile(path, s); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return nil, fmt.Errorf("couldn't read settings: %w", err)
	}

	// Validate basic sanity
	if s.Window.Width < 100 {
		s.Window.Width = 800
	}
	if s.Window.Height < 100 {
		s.Window.Height = 600
	}
	if s.Window.FPS <= 0 {
		s.Window.FPS = 60
	}
	if s.Movement.Curve == "" {
		s.Movement.Curve = "x"
	}
	return s, nil
}

// LoadLayout reads the joystick layout from path, falling back to the
// default layout when the file is missing or has no joysticks.
func LoadLayout(path string) (*layout.Layout, error) {
	l, err := layout.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return layout.Default(), nil
	} else if err != nil {
		return nil, err
	}
	if len(l.Joysticks) == 0 {
		return layout.Default(), nil
	}
	return l, nil
}

// WriteConfig writes settings and a layout to path. It refuses to replace
// an existing file.
func WriteConfig(path string, s *Settings, l *layout.Layout) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	var buffer bytes.Buffer
	conf := configFile{Window: s.Window, Movement: s.Movement, Joysticks: l.Joysticks}
	if err := toml.NewEncoder(&buffer).Encode(&conf); err != nil {
		return fmt.Errorf("couldn't encode config: %w", err)
	}
	return os.WriteFile(path, buffer.Bytes(), 0644)
}
