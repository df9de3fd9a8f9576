package weld

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/grindlemire/go-weld/internal/debug"
)

// Phase is the driver's position in the state → view → event cycle.
type Phase uint32

const (
	PhaseIdle       Phase = iota // waiting for an event
	PhaseHandling                // running a handler
	PhaseRebuilding              // building, laying out and rendering a new tree
	PhaseClosed                  // terminal
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseHandling:
		return "handling"
	case PhaseRebuilding:
		return "rebuilding"
	case PhaseClosed:
		return "closed"
	default:
		return fmt.Sprintf("Phase(%d)", uint32(p))
	}
}

// App drives one window: it owns the current state, the component tree
// built from it, and the layout of that tree.
type App[S State] struct {
	window Window
	cfg    appConfig

	state  S
	tree   Tree
	layout *LayoutContext
	size   Size
	epoch  Epoch
	phase  atomic.Uint32

	// Event loop fields
	queue    chan Event
	stopCh   chan struct{}
	stopOnce sync.Once
	started  bool
}

// NewApp builds the initial tree from initial, lays it out for the
// window's size and submits the first frame.
func NewApp[S State](w Window, initial S, opts ...AppOption) (*App[S], error) {
	if w == nil {
		return nil, fmt.Errorf("weld: nil window")
	}

	cfg := defaultAppConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if cfg.debugLog != "" {
		if err := debug.Init(cfg.debugLog); err != nil {
			return nil, err
		}
	}

	a := &App[S]{
		window: w,
		cfg:    cfg,
		layout: NewLayoutContext(),
		size:   cfg.viewport,
		queue:  make(chan Event, cfg.queueSize),
		stopCh: make(chan struct{}),
	}
	if a.size == (Size{}) {
		a.size = w.Size()
	}
	a.layout.SetDirection(cfg.direction)
	if ts, ok := w.(TitleSetter); ok && cfg.title != "" {
		ts.SetTitle(cfg.title)
	}

	a.setPhase(PhaseRebuilding)
	if err := a.rebuild(initial); err != nil {
		return nil, fmt.Errorf("initial build: %w", err)
	}
	a.setPhase(PhaseIdle)
	debug.Log("app started: %T at %gx%g", initial, a.size.Width, a.size.Height)
	return a, nil
}

// State returns the current application state.
func (a *App[S]) State() S {
	return a.state
}

// Tree returns the holder of the current component tree.
func (a *App[S]) Tree() *Tree {
	return &a.tree
}

// Layout returns the layout of the current tree.
func (a *App[S]) Layout() *LayoutContext {
	return a.layout
}

// Phase returns the driver's current phase. Safe from any goroutine.
func (a *App[S]) Phase() Phase {
	return Phase(a.phase.Load())
}

func (a *App[S]) setPhase(p Phase) {
	a.phase.Store(uint32(p))
}

// Epoch returns the epoch of the last submitted frame.
func (a *App[S]) Epoch() Epoch {
	return a.epoch
}

// Size returns the viewport the current tree was laid out for.
func (a *App[S]) Size() Size {
	return a.size
}

// Title returns the configured window title.
func (a *App[S]) Title() string {
	return a.cfg.title
}

// FrameRate returns the configured target frame rate.
func (a *App[S]) FrameRate() int {
	return a.cfg.frameRate
}
