package joystick

import (
	"github.com/bvisness/joypad/util"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Config is the per-instance policy set of a joystick.
type Config[I comparable] struct {
	ID I

	Placement Placement
	// Constraints run in order after placement and only touch the delta.
	Constraints []Constraint
	Visibility  Visibility

	// Action may be nil.
	Action Action[I]
}

// Joystick is one on-screen joystick instance. Its state is only mutated by
// the stages run from Set.Update.
type Joystick[I comparable] struct {
	Config[I]
	Nodes Nodes

	state State

	// Set by Release; consumed by the next tracker pass.
	releaseRequested bool
}

func New[I comparable](config Config[I], nodes Nodes) *Joystick[I] {
	util.Assert(nodes.Root != nil, "joystick %v has no root node", config.ID)
	return &Joystick[I]{
		Config: config,
		Nodes:  nodes,
	}
}

// State returns a snapshot of the joystick's runtime state.
func (j *Joystick[I]) State() State {
	return j.state.Snapshot()
}

func (j *Joystick[I]) Delta() V2 {
	return j.state.Delta
}

// Snap returns the current delta snapped to the major axis directions.
func (j *Joystick[I]) Snap(threshold ...float32) V2 {
	return j.state.Snap(threshold...)
}

// Release ends the active session on the next update as if the pointer had
// been lifted, e.g. when the host window loses focus and will not see the
// real release. It does nothing when no session is active.
func (j *Joystick[I]) Release() {
	if j.state.Pointer != nil {
		j.releaseRequested = true
	}
}

// interactionRect is the region in which a new session may start.
func (j *Joystick[I]) interactionRect() (rl.Rectangle, bool) {
	if r, ok := rectOf(j.Nodes.Area); ok {
		return r, true
	}
	return rectOf(j.Nodes.Root)
}

func rectOf(n Node) (rl.Rectangle, bool) {
	if n == nil {
		return rl.Rectangle{}, false
	}
	return n.Rect()
}
