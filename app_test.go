package weld

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// newCounterApp starts a counter app in a 300x200 mock window.
// The button occupies (25, 25)-(125, 57).
func newCounterApp(t *testing.T, opts ...AppOption) (*App[counterState], *MockWindow) {
	t.Helper()
	win := NewMockWindow(300, 200)
	app, err := NewApp(win, counterState{}, opts...)
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	return app, win
}

func press(x, y float32) Event {
	return InteractionEvent{Interaction: Pressed{Point: WorldPoint{X: x, Y: y}}}
}

func mustHandle(t *testing.T, app interface {
	HandleEvent(Event) (bool, error)
}, ev Event) {
	t.Helper()
	done, err := app.HandleEvent(ev)
	if err != nil {
		t.Fatalf("HandleEvent(%T) error = %v", ev, err)
	}
	if done {
		t.Fatalf("HandleEvent(%T) closed the app", ev)
	}
}

func TestNewApp_SubmitsFirstFrame(t *testing.T) {
	app, win := newCounterApp(t, WithTitle("Counter"), WithBackground(Black))

	frames := win.Frames()
	if len(frames) != 1 {
		t.Fatalf("frames = %d, want 1", len(frames))
	}
	want := Frame{
		Size:       Size{Width: 300, Height: 200},
		Epoch:      1,
		Background: Black,
		List: DisplayList{
			RectPrimitive{Rect: NewRect(25, 25, 100, 32), Color: Blue},
		},
	}
	if diff := cmp.Diff(want, frames[0]); diff != "" {
		t.Errorf("first frame mismatch (-want +got):\n%s", diff)
	}
	if win.Title() != "Counter" {
		t.Errorf("title = %q, want Counter", win.Title())
	}
	if app.Phase() != PhaseIdle {
		t.Errorf("Phase() = %v, want idle", app.Phase())
	}
	if app.Epoch() != 1 || app.Size() != (Size{Width: 300, Height: 200}) {
		t.Errorf("Epoch() = %d, Size() = %+v", app.Epoch(), app.Size())
	}
}

func TestNewApp_Errors(t *testing.T) {
	type tc struct {
		window Window
		state  State
		opts   []AppOption
		target error
	}

	tests := map[string]tc{
		"nil window":    {window: nil, state: counterState{}},
		"nil root":      {window: NewMockWindow(10, 10), state: nilState{}, target: ErrInvalidTree},
		"bad option":    {window: NewMockWindow(10, 10), state: counterState{}, opts: []AppOption{WithQueueSize(0)}},
		"invalid style": {window: NewMockWindow(10, 10), state: badStyleState{Broken: true}, target: ErrInvalidStyle},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewApp(tt.window, tt.state, tt.opts...)
			if err == nil {
				t.Fatal("NewApp() should fail")
			}
			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Errorf("NewApp() error = %v, want %v", err, tt.target)
			}
		})
	}
}

func TestApp_CounterButton(t *testing.T) {
	app, win := newCounterApp(t)

	mustHandle(t, app, press(50, 40))
	if got := app.State(); got != (counterState{Counter: 1}) {
		t.Fatalf("State() = %+v, want {1}", got)
	}
	for i := 0; i < 3; i++ {
		mustHandle(t, app, press(50, 40))
	}
	if got := app.State(); got != (counterState{Counter: 4}) {
		t.Errorf("State() = %+v, want {4}", got)
	}
	if got := len(win.Frames()); got != 5 {
		t.Errorf("frames = %d, want 5", got)
	}
}

func TestApp_InstallsRebuiltTree(t *testing.T) {
	app, _ := newCounterApp(t)
	before := app.Tree().Root()

	mustHandle(t, app, press(50, 40))

	after := app.Tree().Root()
	if after == before {
		t.Fatal("tree was not replaced")
	}
	if diff := cmp.Diff(shapeOf(app.State().Build()), shapeOf(after)); diff != "" {
		t.Errorf("installed tree is not the new state's build (-want +got):\n%s", diff)
	}
	if _, ok := app.Layout().Lookup(after.FindByName("button")); !ok {
		t.Error("new tree is not laid out")
	}
	if _, ok := app.Layout().Lookup(before); ok {
		t.Error("old tree still has layout")
	}
}

func TestApp_MissIsSilent(t *testing.T) {
	var log errorLog
	app, win := newCounterApp(t, log.option())

	type tc struct {
		x, y float32
	}

	tests := map[string]tc{
		"right of root": {x: 310, y: 10},
		"below root":    {x: 10, y: 250},
		"negative":      {x: -1, y: -1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mustHandle(t, app, press(tt.x, tt.y))
		})
	}

	if app.State().Counter != 0 {
		t.Errorf("Counter = %d, want 0", app.State().Counter)
	}
	if len(log.errs) != 0 {
		t.Errorf("misses reported errors: %v", log.errs)
	}
	if len(win.Frames()) != 1 {
		t.Errorf("misses produced frames: %d", len(win.Frames()))
	}
}

func TestApp_RoutingErrorIsReported(t *testing.T) {
	var log errorLog
	app, win := newCounterApp(t, log.option())
	root := app.Tree().Root()

	// Inside the root's padding: the root has no handlers.
	mustHandle(t, app, press(5, 5))
	// Released on the button: only Pressed is registered.
	mustHandle(t, app, InteractionEvent{Interaction: Released{Point: WorldPoint{X: 50, Y: 40}}})

	if len(log.errs) != 2 {
		t.Fatalf("reported %d errors, want 2", len(log.errs))
	}
	for _, err := range log.errs {
		if !errors.Is(err, ErrRouting) {
			t.Errorf("reported %v, want ErrRouting", err)
		}
	}
	if app.State().Counter != 0 || app.Tree().Root() != root || len(win.Frames()) != 1 {
		t.Error("routing errors must leave state, tree and frames untouched")
	}
	if app.Phase() != PhaseIdle {
		t.Errorf("Phase() = %v, want idle", app.Phase())
	}
}

// releaseState counts presses and releases on a single full-size target.
type releaseState struct {
	Presses, Releases int
}

func (s releaseState) Build() *Component {
	return New(nil).On(
		Handle(func(s releaseState, _ Pressed) (releaseState, error) {
			s.Presses++
			return s, nil
		}),
		Handle(func(s releaseState, _ Released) (releaseState, error) {
			s.Releases++
			return s, nil
		}),
	)
}

func TestApp_ReleasedIsRouted(t *testing.T) {
	win := NewMockWindow(10, 10)
	app, err := NewApp(win, releaseState{})
	if err != nil {
		t.Fatal(err)
	}

	mustHandle(t, app, press(1, 1))
	mustHandle(t, app, InteractionEvent{Interaction: NewInteraction(KindReleased, WorldPoint{X: 1, Y: 1})})

	if got := app.State(); got != (releaseState{Presses: 1, Releases: 1}) {
		t.Errorf("State() = %+v, want 1 press and 1 release", got)
	}
}

// failingState's button handler always fails.
type failingState struct{ N int }

func (s failingState) Build() *Component {
	return New(nil).On(Handle(func(s failingState, _ Pressed) (failingState, error) {
		return failingState{N: 100}, errBoom
	}))
}

func TestApp_HandlerErrorKeepsState(t *testing.T) {
	var log errorLog
	win := NewMockWindow(10, 10)
	app, err := NewApp(win, failingState{N: 1}, log.option())
	if err != nil {
		t.Fatal(err)
	}
	root := app.Tree().Root()

	mustHandle(t, app, press(1, 1))

	if app.State().N != 1 {
		t.Errorf("State().N = %d, want 1", app.State().N)
	}
	if app.Tree().Root() != root {
		t.Error("tree replaced after handler error")
	}
	if len(log.errs) != 1 || !errors.Is(log.errs[0], errBoom) || !errors.Is(log.errs[0], ErrHandler) {
		t.Errorf("reported %v, want one handler error wrapping errBoom", log.errs)
	}
}

// badStyleState builds an invalid style once Broken is set.
type badStyleState struct{ Broken bool }

func (s badStyleState) Build() *Component {
	child := New(nil).Named("child")
	if s.Broken {
		child.Style(Height(Pt(-1)))
	}
	return New(nil).Child(child).On(Handle(func(s badStyleState, _ Pressed) (badStyleState, error) {
		return badStyleState{Broken: true}, nil
	}))
}

func TestApp_LayoutFailureIsFatalAndAtomic(t *testing.T) {
	win := NewMockWindow(10, 10)
	app, err := NewApp(win, badStyleState{})
	if err != nil {
		t.Fatal(err)
	}
	root := app.Tree().Root()

	// The child has zero height, so the press lands on the root.
	_, err = app.HandleEvent(press(5, 5))
	if !errors.Is(err, ErrInvalidStyle) {
		t.Fatalf("HandleEvent() error = %v, want ErrInvalidStyle", err)
	}
	if app.State().Broken {
		t.Error("state replaced despite layout failure")
	}
	if app.Tree().Root() != root {
		t.Error("tree replaced despite layout failure")
	}
	if _, ok := app.Layout().Lookup(root); !ok {
		t.Error("previous layout dropped")
	}
	if len(win.Frames()) != 1 {
		t.Errorf("frames = %d, want 1", len(win.Frames()))
	}
}

func TestApp_RenderCompletePresents(t *testing.T) {
	app, win := newCounterApp(t)

	mustHandle(t, app, RenderCompleteEvent{Epoch: 1})
	if win.Presents() != 1 {
		t.Errorf("Presents() = %d, want 1", win.Presents())
	}

	win.FailPresent(errBoom)
	if _, err := app.HandleEvent(RenderCompleteEvent{Epoch: 1}); !errors.Is(err, errBoom) {
		t.Errorf("HandleEvent() error = %v, want errBoom", err)
	}
}

func TestApp_SubmitFailureIsFatal(t *testing.T) {
	app, win := newCounterApp(t)
	win.FailSubmit(errBoom)

	if _, err := app.HandleEvent(press(50, 40)); !errors.Is(err, errBoom) {
		t.Errorf("HandleEvent() error = %v, want errBoom", err)
	}
}

func TestApp_Resize(t *testing.T) {
	app, win := newCounterApp(t)

	mustHandle(t, app, ResizeEvent{Size: Size{Width: 400, Height: 100}})

	if app.Size() != (Size{Width: 400, Height: 100}) {
		t.Errorf("Size() = %+v", app.Size())
	}
	if got := app.Layout().LayoutOf(app.Tree().Root()); got != NewRect(0, 0, 400, 100) {
		t.Errorf("root rect = %+v, want {0 0 400 100}", got)
	}
	frame, _ := win.LastFrame()
	if frame.Size != app.Size() || frame.Epoch != 2 {
		t.Errorf("last frame size %+v epoch %d", frame.Size, frame.Epoch)
	}

	// Same size is a no-op.
	mustHandle(t, app, ResizeEvent{Size: Size{Width: 400, Height: 100}})
	if len(win.Frames()) != 2 {
		t.Errorf("frames = %d, want 2", len(win.Frames()))
	}
}

func TestApp_EpochWraps(t *testing.T) {
	app, win := newCounterApp(t)
	app.epoch = math.MaxUint32

	mustHandle(t, app, press(50, 40))

	frame, _ := win.LastFrame()
	if frame.Epoch != 0 {
		t.Errorf("epoch after MaxUint32 = %d, want 0", frame.Epoch)
	}
}

func TestApp_PlatformEventIgnored(t *testing.T) {
	app, win := newCounterApp(t)
	mustHandle(t, app, PlatformEvent{Payload: "focus"})
	if len(win.Frames()) != 1 || app.State().Counter != 0 {
		t.Error("platform event changed the app")
	}
}

func TestApp_Closed(t *testing.T) {
	app, _ := newCounterApp(t)

	done, err := app.HandleEvent(ClosedEvent{})
	if err != nil || !done {
		t.Fatalf("HandleEvent(Closed) = %v, %v, want true, nil", done, err)
	}
	if app.Phase() != PhaseClosed {
		t.Errorf("Phase() = %v, want closed", app.Phase())
	}
	if app.Tree().Root() != nil || app.Layout().Len() != 0 {
		t.Error("closing should release tree and layout")
	}
	if done, _ := app.HandleEvent(press(50, 40)); !done {
		t.Error("events after close should report done")
	}
	if app.Send("", Pressed{}) {
		t.Error("Send after close should fail")
	}
}

func TestApp_SendRoutesByName(t *testing.T) {
	var log errorLog
	win := NewMockWindow(100, 100)
	app, err := NewApp(win, todoState{}, log.option())
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	for _, text := range []string{"foo", "bar"} {
		if !app.Send("input", TextChanged(text)) {
			t.Fatalf("Send(%q) rejected", text)
		}
		if _, err := app.Step(ctx); err != nil {
			t.Fatal(err)
		}
	}
	if diff := cmp.Diff([]string{"foo", "bar"}, app.State().Todos); diff != "" {
		t.Errorf("Todos mismatch (-want +got):\n%s", diff)
	}
	root := app.Tree().Root()
	if root.FindByName("todo-0") == nil || root.FindByName("todo-1") == nil {
		t.Error("rebuilt tree lacks todo-0 and todo-1")
	}

	app.Send("nowhere", TextChanged("x"))
	if _, err := app.Step(ctx); err != nil {
		t.Fatal(err)
	}
	var re *RoutingError
	if len(log.errs) != 1 || !errors.As(log.errs[0], &re) || re.Reason != ReasonNoTarget {
		t.Errorf("reported %v, want one no-target routing error", log.errs)
	}
}

func TestApp_SendToRoot(t *testing.T) {
	win := NewMockWindow(10, 10)
	app, err := NewApp(win, releaseState{})
	if err != nil {
		t.Fatal(err)
	}
	app.Send("", Released{})
	if _, err := app.Step(context.Background()); err != nil {
		t.Fatal(err)
	}
	if app.State().Releases != 1 {
		t.Errorf("Releases = %d, want 1", app.State().Releases)
	}
}

func TestApp_SendQueueFull(t *testing.T) {
	app, _ := newCounterApp(t, WithQueueSize(1))
	if !app.Send("button", Pressed{}) {
		t.Fatal("first Send rejected")
	}
	if app.Send("button", Pressed{}) {
		t.Error("Send into a full queue should fail")
	}
}

func TestApp_RunUntilWindowCloses(t *testing.T) {
	app, win := newCounterApp(t)
	win.AutoAck(true)

	win.Press(50, 40)
	win.Release(50, 40)
	win.Press(50, 40)
	win.Push(PlatformEvent{})

	errCh := make(chan error, 1)
	go func() { errCh <- app.Run(context.Background()) }()

	// Each accepted press triggers an auto-acked frame; wait for both presents.
	deadline := time.After(time.Second)
	for win.Presents() < 2 {
		select {
		case <-deadline:
			t.Fatalf("timed out, presents = %d", win.Presents())
		case <-time.After(time.Millisecond):
		}
	}
	win.Close()

	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not return after the window closed")
	}
	if app.State().Counter != 2 {
		t.Errorf("Counter = %d, want 2", app.State().Counter)
	}
	if app.Phase() != PhaseClosed {
		t.Errorf("Phase() = %v, want closed", app.Phase())
	}
}

func TestApp_RunStops(t *testing.T) {
	type tc struct {
		stop func(app *App[counterState], cancel context.CancelFunc)
	}

	tests := map[string]tc{
		"Stop":           {stop: func(app *App[counterState], _ context.CancelFunc) { app.Stop() }},
		"context cancel": {stop: func(_ *App[counterState], cancel context.CancelFunc) { cancel() }},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			app, _ := newCounterApp(t)
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			errCh := make(chan error, 1)
			go func() { errCh <- app.Run(ctx) }()
			tt.stop(app, cancel)

			select {
			case err := <-errCh:
				if err != nil {
					t.Errorf("Run() error = %v", err)
				}
			case <-time.After(time.Second):
				t.Fatal("Run did not return")
			}
			if app.Phase() != PhaseClosed {
				t.Errorf("Phase() = %v, want closed", app.Phase())
			}
		})
	}
}

func TestApp_RunReturnsFatalError(t *testing.T) {
	app, win := newCounterApp(t)
	win.FailPresent(errBoom)
	win.Push(RenderCompleteEvent{Epoch: 1})

	if err := app.Run(context.Background()); !errors.Is(err, errBoom) {
		t.Errorf("Run() error = %v, want errBoom", err)
	}
}

func TestApp_Watchers(t *testing.T) {
	input := make(chan TextChanged)
	win := NewMockWindow(100, 100)
	app, err := NewApp(win, todoState{}, WithWatchers(Watch(input, "input")))
	if err != nil {
		t.Fatal(err)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- app.Run(context.Background()) }()

	input <- "from watcher"
	deadline := time.After(time.Second)
	for len(win.Frames()) < 2 {
		select {
		case <-deadline:
			t.Fatal("watcher message never produced a frame")
		case <-time.After(time.Millisecond):
		}
	}
	app.Stop()
	if err := <-errCh; err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff([]string{"from watcher"}, app.State().Todos); diff != "" {
		t.Errorf("Todos mismatch (-want +got):\n%s", diff)
	}
}

func TestApp_Direction(t *testing.T) {
	win := NewMockWindow(300, 200)
	app, err := NewApp(win, counterState{}, WithDirection(RTL))
	if err != nil {
		t.Fatal(err)
	}
	button := app.Tree().Root().FindByName("button")
	if got := app.Layout().LayoutOf(button); got != NewRect(175, 25, 100, 32) {
		t.Errorf("button = %+v, want mirrored {175 25 100 32}", got)
	}
}

func TestApp_Viewport(t *testing.T) {
	win := NewMockWindow(300, 200)
	app, err := NewApp(win, counterState{}, WithViewport(Size{Width: 50, Height: 60}))
	if err != nil {
		t.Fatal(err)
	}
	if got := app.Layout().LayoutOf(app.Tree().Root()); got != NewRect(0, 0, 50, 60) {
		t.Errorf("root = %+v, want {0 0 50 60}", got)
	}
}

func TestPhase_String(t *testing.T) {
	type tc struct {
		phase    Phase
		expected string
	}

	tests := map[string]tc{
		"idle":       {phase: PhaseIdle, expected: "idle"},
		"handling":   {phase: PhaseHandling, expected: "handling"},
		"rebuilding": {phase: PhaseRebuilding, expected: "rebuilding"},
		"closed":     {phase: PhaseClosed, expected: "closed"},
		"unknown":    {phase: Phase(9), expected: "Phase(9)"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.phase.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}
