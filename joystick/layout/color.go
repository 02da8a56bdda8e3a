package layout

import (
	"fmt"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var namedColors = map[string]rl.Color{
	"white":     rl.White,
	"black":     rl.Black,
	"blank":     rl.Blank,
	"gray":      rl.Gray,
	"lightgray": rl.LightGray,
	"darkgray":  rl.DarkGray,
	"red":       rl.Red,
	"green":     rl.Green,
	"blue":      rl.Blue,
	"skyblue":   rl.SkyBlue,
	"yellow":    rl.Yellow,
	"orange":    rl.Orange,
}

// ParseColor accepts "#RRGGBB", "#RRGGBBAA" or a color name. An empty string
// yields the zero color.
func ParseColor(s string) (rl.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return rl.Color{}, nil
	}
	if !strings.HasPrefix(s, "#") {
		if c, ok := namedColors[normalizeName(s)]; ok {
			return c, nil
		}
		return rl.Color{}, unknownName("color", s, keys(namedColors))
	}

	hex := s[1:]
	switch len(hex) {
	case 6:
		hex += "ff"
	case 8:
	default:
		return rl.Color{}, fmt.Errorf("bad color %q: expected #RRGGBB or #RRGGBBAA", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return rl.Color{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	return rl.GetColor(uint(v)), nil
}
