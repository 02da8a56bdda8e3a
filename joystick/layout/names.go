package layout

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/bvisness/joypad/joystick"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/text/cases"
)

// ErrUnknownName is returned for placement, constraint, action and color
// names that are not recognized.
var ErrUnknownName = errors.New("unknown")

var placements = map[string]joystick.Placement{
	"fixed":    joystick.Fixed,
	"floating": joystick.Floating,
	"dynamic":  joystick.Dynamic,
}

var constraintKinds = map[string]joystick.ConstraintKind{
	"deadzone":       joystick.DeadZoneKind,
	"horizontal":     joystick.HorizontalOnlyKind,
	"horizontalonly": joystick.HorizontalOnlyKind,
	"vertical":       joystick.VerticalOnlyKind,
	"verticalonly":   joystick.VerticalOnlyKind,
}

// normalizeName case-folds a name and drops separators, so "Dead_Zone" and
// "deadzone" are the same.
func normalizeName(name string) string {
	folded := cases.Fold().String(strings.TrimSpace(name))
	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(folded)
}

func ParsePlacement(name string) (joystick.Placement, error) {
	if name == "" {
		return joystick.Fixed, nil
	}
	if p, ok := placements[normalizeName(name)]; ok {
		return p, nil
	}
	return 0, unknownName("placement", name, keys(placements))
}

func ParseConstraint(c ConstraintSpec) (joystick.Constraint, error) {
	kind, ok := constraintKinds[normalizeName(c.Kind)]
	if !ok {
		return joystick.Constraint{}, unknownName("constraint", c.Kind, []string{"deadzone", "horizontal", "vertical"})
	}
	switch kind {
	case joystick.DeadZoneKind:
		if c.Threshold < 0 || c.Threshold > 1 {
			return joystick.Constraint{}, fmt.Errorf("deadzone threshold %g is outside [0, 1]", c.Threshold)
		}
		return joystick.DeadZone(c.Threshold), nil
	case joystick.HorizontalOnlyKind:
		return joystick.HorizontalOnly, nil
	default:
		return joystick.VerticalOnly, nil
	}
}

func unknownName(what, name string, candidates []string) error {
	return fmt.Errorf("%w %s %q%s", ErrUnknownName, what, name, suggestion(name, candidates))
}

// suggestion returns a " (did you mean ...?)" hint for a mistyped name, or
// nothing if no candidate is close.
func suggestion(name string, candidates []string) string {
	if name == "" {
		return ""
	}
	if ranks := fuzzy.RankFindFold(name, candidates); len(ranks) > 0 {
		sort.Sort(ranks)
		return fmt.Sprintf(" (did you mean %q?)", ranks[0].Target)
	}

	best, bestDist := "", 3
	folded := normalizeName(name)
	for _, c := range candidates {
		if d := fuzzy.LevenshteinDistance(folded, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	if best == "" {
		return ""
	}
	return fmt.Sprintf(" (did you mean %q?)", best)
}

func keys[V any](m map[string]V) []string {
	res := make([]string, 0, len(m))
	for k := range m {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}
