package app

import (
	"testing"

	"github.com/bvisness/joypad/joystick"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTrace(t *testing.T) {
	trace, err := ParseTrace([]byte(`{
		"screen": [800, 600],
		"frames": [
			{},
			{"mouse": [10, 20], "pressed": true},
			{"mouse": [15, 20], "down": true, "repeat": 2},
			{"touches": [{"id": 3, "pos": [1.5, 2]}, {"id": 4, "pos": [7, 8]}]}
		]
	}`))
	require.NoError(t, err)

	assert.Equal(t, V2{X: 800, Y: 600}, trace.Screen)
	require.Len(t, trace.Frames, 5)
	assert.Equal(t, joystick.Snapshot{}, trace.Frames[0])
	assert.Equal(t, joystick.Snapshot{Mouse: V2{X: 10, Y: 20}, MousePressed: true}, trace.Frames[1])
	assert.Equal(t, trace.Frames[2], trace.Frames[3])
	assert.True(t, trace.Frames[3].MouseDown)
	assert.Equal(t, []joystick.TouchPoint{
		{ID: 3, Position: V2{X: 1.5, Y: 2}},
		{ID: 4, Position: V2{X: 7, Y: 8}},
	}, trace.Frames[4].Touches)

	t.Run("default screen", func(t *testing.T) {
		trace, err := ParseTrace([]byte(`{"frames": []}`))
		require.NoError(t, err)
		assert.Equal(t, defaultScreen, trace.Screen)
		assert.Empty(t, trace.Frames)
	})
}

func TestParseTraceErrors(t *testing.T) {
	tests := []struct {
		input string
		msg   string
	}{
		{`{"frames": [`, "invalid JSON"},
		{`{"screen": [1, 2]}`, "frames must be an array"},
		{`{"screen": [1], "frames": []}`, "screen"},
		{`{"frames": [3]}`, "frame 0: expected an object"},
		{`{"frames": [{}, {"mouse": "here"}]}`, "frame 1: mouse"},
		{`{"frames": [{"repeat": 0}]}`, "repeat must be a positive number"},
		{`{"frames": [{"touches": [{"pos": [1, 2]}]}]}`, "touch id"},
		{`{"frames": [{"touches": [{"id": 1, "pos": 2}]}]}`, "touch 1"},
	}
	for _, tt := range tests {
		_, err := ParseTrace([]byte(tt.input))
		if assert.Error(t, err, tt.input) {
			assert.Contains(t, err.Error(), tt.msg, tt.input)
		}
	}
}
