package weld

import (
	"fmt"

	"github.com/grindlemire/go-weld/internal/debug"
)

// HandleEvent processes one event to completion. done is true once the
// app has closed. Only layout and window failures are returned; routing
// and handler errors are logged, passed to the error handler, and leave
// the state unchanged.
func (a *App[S]) HandleEvent(ev Event) (done bool, err error) {
	if a.Phase() == PhaseClosed {
		return true, nil
	}

	switch e := ev.(type) {
	case InteractionEvent:
		return false, a.handleInteraction(e.Interaction)
	case MessageEvent:
		return false, a.handleMessage(e)
	case RenderCompleteEvent:
		if err := a.window.Present(); err != nil {
			return false, fmt.Errorf("present frame %d: %w", e.Epoch, err)
		}
		return false, nil
	case ResizeEvent:
		return false, a.resize(e.Size)
	case ClosedEvent:
		a.close()
		return true, nil
	default:
		debug.Log("app: ignoring %T", ev)
		return false, nil
	}
}

func (a *App[S]) handleInteraction(in Interaction) error {
	if in == nil {
		return nil
	}
	root := a.tree.Root()
	hit := a.layout.FindNodeAt(in.Position(), root)
	if hit == nil {
		debug.Log("app: %s at %v missed", in.Kind(), in.Position())
		return nil
	}
	debug.Log("app: %s at %v on %s", in.Kind(), in.Position(), hit)
	return a.dispatch(hit, in)
}

func (a *App[S]) handleMessage(m MessageEvent) error {
	root := a.tree.Root()
	target := root
	if m.Target != "" {
		target = root.FindByName(m.Target)
	}
	if target == nil {
		a.report(&RoutingError{Target: m.Target, Reason: ReasonNoTarget})
		return nil
	}
	return a.dispatch(target, m.Payload)
}

// dispatch invokes the target's handler and, on success, installs the
// new state.
func (a *App[S]) dispatch(target *Component, event any) error {
	a.setPhase(PhaseHandling)
	next, err := Invoke(target, a.state, event)
	if err != nil {
		a.setPhase(PhaseIdle)
		a.report(err)
		return nil
	}

	a.setPhase(PhaseRebuilding)
	defer a.setPhase(PhaseIdle)
	return a.rebuild(next)
}

func (a *App[S]) report(err error) {
	debug.Log("app: dropped event: %v", err)
	if a.cfg.onError != nil {
		a.cfg.onError(err)
	}
}
