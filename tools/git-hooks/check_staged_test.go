package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStagedComponents(t *testing.T) {
	assert.Empty(t, stagedComponents([]string{"", "main.go", "DESIGN.md"}))

	assert.Equal(t, []string{"joystick"}, stagedComponents([]string{
		"joystick/set.go",
		"joystick/layout/layout.go",
		"joystick/set_test.go",
	}))

	assert.Equal(t, []string{"app", "joystick", "util"}, stagedComponents([]string{
		"util/util.go",
		" app/app.go ",
		"joystick/bus.go",
		"tools/git-hooks/check_staged.go",
	}))
}
