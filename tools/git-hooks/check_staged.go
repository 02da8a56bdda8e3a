// check_staged refuses commits that touch too many top-level components at
// once. Install it as a pre-commit hook with `go run ./tools/git-hooks`.
package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"
)

// components whose changes should normally land in separate commits.
var trackedComponents = map[string]bool{
	"app":      true,
	"joystick": true,
	"util":     true,
}

// maxComponents is how many tracked components one commit may touch.
const maxComponents = 2

func main() {
	cmd := exec.Command("git", "diff", "--cached", "--name-only")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		fmt.Printf("Warning: could not check staged files: %v\n", err)
		os.Exit(0)
	}

	touched := stagedComponents(strings.Split(out.String(), "\n"))
	if len(touched) > maxComponents {
		fmt.Println("WARNING: You are modifying multiple components in a single commit:")
		for _, c := range touched {
			fmt.Printf(" - %s\n", c)
		}
		fmt.Println("Atomic commits should ideally affect only one component.")
		fmt.Println("If this is a refactor, please ensure the commit message reflects that.")
		os.Exit(1)
	}
}

// stagedComponents returns the tracked components touched by files, sorted.
// The layout package counts as part of joystick.
func stagedComponents(files []string) []string {
	dirs := map[string]bool{}
	for _, f := range files {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		top, _, nested := strings.Cut(f, "/")
		if nested && trackedComponents[top] {
			dirs[top] = true
		}
	}

	res := make([]string, 0, len(dirs))
	for d := range dirs {
		res = append(res, d)
	}
	sort.Strings(res)
	return res
}
