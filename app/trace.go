package app

import (
	"errors"
	"fmt"

	"github.com/bvisness/joypad/joystick"
	"github.com/tidwall/gjson"
)

// Trace is a recorded sequence of input frames for headless replay.
//
//	{
//	  "screen": [1280, 720],
//	  "frames": [
//	    {"mouse": [100, 600], "pressed": true},
//	    {"mouse": [150, 600], "down": true, "repeat": 10},
//	    {"touches": [{"id": 1, "pos": [1100, 600]}]},
//	    {"repeat": 2}
//	  ]
//	}
//
// A frame without input is idle. "repeat" duplicates a frame.
type Trace struct {
	Screen V2
	Frames []joystick.Snapshot
}

var defaultScreen = V2{X: 1280, Y: 720}

func ParseTrace(data []byte) (*Trace, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("bad trace: invalid JSON")
	}
	root := gjson.ParseBytes(data)

	t := &Trace{Screen: defaultScreen}
	if screen := root.Get("screen"); screen.Exists() {
		v, err := parseVec(screen)
		if err != nil {
			return nil, fmt.Errorf("bad trace: screen: %w", err)
		}
		t.Screen = v
	}

	frames := root.Get("frames")
	if !frames.IsArray() {
		return nil, errors.New("bad trace: frames must be an array")
	}

	var err error
	i := 0
	frames.ForEach(func(_, value gjson.Result) bool {
		var frame joystick.Snapshot
		var repeat int
		frame, repeat, err = parseFrame(value)
		if err != nil {
			err = fmt.Errorf("bad trace: frame %d: %w", i, err)
			return false
		}
		for n := 0; n < repeat; n++ {
			t.Frames = append(t.Frames, frame)
		}
		i++
		return true
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func parseFrame(value gjson.Result) (joystick.Snapshot, int, error) {
	var frame joystick.Snapshot
	if !value.IsObject() {
		return frame, 0, errors.New("expected an object")
	}

	if mouse := value.Get("mouse"); mouse.Exists() {
		v, err := parseVec(mouse)
		if err != nil {
			return frame, 0, fmt.Errorf("mouse: %w", err)
		}
		frame.Mouse = v
	}
	frame.MouseDown = value.Get("down").Bool()
	frame.MousePressed = value.Get("pressed").Bool()

	for _, touch := range value.Get("touches").Array() {
		id := touch.Get("id")
		if id.Type != gjson.Number || id.Int() < 0 {
			return frame, 0, errors.New("touch id must be a non-negative number")
		}
		pos, err := parseVec(touch.Get("pos"))
		if err != nil {
			return frame, 0, fmt.Errorf("touch %d: %w", id.Int(), err)
		}
		frame.Touches = append(frame.Touches, joystick.TouchPoint{ID: id.Uint(), Position: pos})
	}

	repeat := 1
	if r := value.Get("repeat"); r.Exists() {
		if r.Type != gjson.Number || r.Int() < 1 {
			return frame, 0, errors.New("repeat must be a positive number")
		}
		repeat = int(r.Int())
	}
	return frame, repeat, nil
}

func parseVec(r gjson.Result) (V2, error) {
	parts := r.Array()
	if !r.IsArray() || len(parts) != 2 || parts[0].Type != gjson.Number || parts[1].Type != gjson.Number {
		return V2{}, fmt.Errorf("expected [x, y], got %s", r.Raw)
	}
	return V2{X: float32(parts[0].Float()), Y: float32(parts[1].Float())}, nil
}
