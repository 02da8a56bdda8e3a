package layout

import (
	"log"
	"sync"

	"github.com/bvisness/joypad/joystick"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ActionFactory builds the action for one joystick from its layout entry.
type ActionFactory func(spec Spec) (joystick.Action[string], error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]ActionFactory)
)

func RegisterAction(name string, factory ActionFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[normalizeName(name)] = factory
}

// LookupAction retrieves the factory registered under name.
func LookupAction(name string) (ActionFactory, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	if factory, ok := registry[normalizeName(name)]; ok {
		return factory, nil
	}
	return nil, unknownName("action", name, keys(registry))
}

func init() {
	RegisterAction("none", func(Spec) (joystick.Action[string], error) {
		return joystick.NoAction[string]{}, nil
	})

	RegisterAction("tint", func(spec Spec) (joystick.Action[string], error) {
		down, err := ParseColor(spec.Tint.Down)
		if err != nil {
			return nil, err
		}
		up, err := ParseColor(spec.Tint.Up)
		if err != nil {
			return nil, err
		}
		var zero rl.Color
		if down == zero {
			down = rl.Gray
		}
		if up == zero {
			up = rl.White
		}
		return joystick.TintAction[string]{Down: down, Up: up}, nil
	})

	RegisterAction("log", func(Spec) (joystick.Action[string], error) {
		return joystick.ActionFuncs[string]{
			StartDrag: func(id string, state joystick.State, _ joystick.Subtree) {
				log.Printf("%s: start at (%.0f, %.0f)", id, state.Pointer.Start.X, state.Pointer.Start.Y)
			},
			EndDrag: func(id string, _ joystick.State, _ joystick.Subtree) {
				log.Printf("%s: end", id)
			},
		}, nil
	})
}
