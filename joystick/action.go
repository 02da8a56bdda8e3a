package joystick

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-stack/stack"
)

// Action receives drag lifecycle callbacks for cosmetic effects. The state
// passed in is a snapshot; changing it has no effect on the joystick.
type Action[I comparable] interface {
	OnStartDrag(id I, state State, nodes Subtree)
	OnDrag(id I, state State, nodes Subtree)
	OnEndDrag(id I, state State, nodes Subtree)
}

// Subtree is the part of a joystick's visual tree an Action may touch:
// colors only. Any of the fields may be nil.
type Subtree struct {
	Area Tintable
	Base Tintable
	Knob Tintable
}

// Children returns the non-nil elements, area first.
func (t Subtree) Children() []Tintable {
	var res []Tintable
	for _, c := range []Tintable{t.Area, t.Base, t.Knob} {
		if c != nil {
			res = append(res, c)
		}
	}
	return res
}

func subtreeOf(n Nodes) Subtree {
	var t Subtree
	if n.Area != nil {
		t.Area = n.Area
	}
	if n.Base != nil {
		t.Base = n.Base
	}
	if n.Knob != nil {
		t.Knob = n.Knob
	}
	return t
}

// NoAction ignores every callback.
type NoAction[I comparable] struct{}

func (NoAction[I]) OnStartDrag(I, State, Subtree) {}
func (NoAction[I]) OnDrag(I, State, Subtree)      {}
func (NoAction[I]) OnEndDrag(I, State, Subtree)   {}

// ActionFuncs adapts plain functions to Action. Nil functions are skipped.
type ActionFuncs[I comparable] struct {
	StartDrag func(id I, state State, nodes Subtree)
	Drag      func(id I, state State, nodes Subtree)
	EndDrag   func(id I, state State, nodes Subtree)
}

func (a ActionFuncs[I]) OnStartDrag(id I, state State, nodes Subtree) {
	if a.StartDrag != nil {
		a.StartDrag(id, state, nodes)
	}
}
func (a ActionFuncs[I]) OnDrag(id I, state State, nodes Subtree) {
	if a.Drag != nil {
		a.Drag(id, state, nodes)
	}
}
func (a ActionFuncs[I]) OnEndDrag(id I, state State, nodes Subtree) {
	if a.EndDrag != nil {
		a.EndDrag(id, state, nodes)
	}
}

// TintAction recolors the base and knob while the joystick is held.
type TintAction[I comparable] struct {
	Down rl.Color
	Up   rl.Color
}

func (a TintAction[I]) OnStartDrag(_ I, _ State, nodes Subtree) {
	a.paint(nodes, a.Down)
}
func (a TintAction[I]) OnDrag(I, State, Subtree) {}
func (a TintAction[I]) OnEndDrag(_ I, _ State, nodes Subtree) {
	a.paint(nodes, a.Up)
}

func (a TintAction[I]) paint(nodes Subtree, c rl.Color) {
	for _, n := range []Tintable{nodes.Base, nodes.Knob} {
		if n != nil {
			n.SetTint(c)
		}
	}
}

type transition int

const (
	transitionNone transition = iota
	transitionStart
	transitionMove
	transitionEnd
)

func (j *Joystick[I]) transition() transition {
	s := &j.state
	switch {
	case s.JustReleased:
		return transitionEnd
	case s.Pointer == nil:
		return transitionNone
	case s.Pointer.JustPressed:
		return transitionStart
	default:
		return transitionMove
	}
}

// dispatch runs the action hook matching this frame's transition.
func (j *Joystick[I]) dispatch() {
	if j.Action == nil {
		return
	}
	var hook func(I, State, Subtree)
	var name string
	switch j.transition() {
	case transitionStart:
		hook, name = j.Action.OnStartDrag, "start drag"
	case transitionMove:
		hook, name = j.Action.OnDrag, "drag"
	case transitionEnd:
		hook, name = j.Action.OnEndDrag, "end drag"
	default:
		return
	}

	snapshot := j.state.Snapshot()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("joystick %v: %s hook panicked: %v\n%+v", j.ID, name, r, stack.Trace().TrimRuntime())
		}
	}()
	hook(j.ID, snapshot, subtreeOf(j.Nodes))
}
