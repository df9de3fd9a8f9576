package tcellwin

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/grindlemire/go-weld"
	"github.com/grindlemire/go-weld/internal/debug"
)

// Window adapts a tcell.Screen to weld.Window.
type Window struct {
	screen tcell.Screen
	events chan weld.Event
	done   chan struct{}

	mu      sync.Mutex
	pressed bool

	closeOnce sync.Once
}

// Ensure Window implements weld.Window.
var _ weld.Window = (*Window)(nil)

// New opens the terminal screen and starts reading its events.
func New() (*Window, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcellwin: new screen: %w", err)
	}
	return NewWithScreen(screen)
}

// NewWithScreen wraps an uninitialised screen, such as
// tcell.NewSimulationScreen in tests.
func NewWithScreen(screen tcell.Screen) (*Window, error) {
	if screen == nil {
		return nil, errors.New("tcellwin: nil screen")
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("tcellwin: init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	w := &Window{
		screen: screen,
		events: make(chan weld.Event, 256),
		done:   make(chan struct{}),
	}
	go w.poll()
	return w, nil
}

// Events returns the translated event stream. It is closed once the
// screen has been finalised.
func (w *Window) Events() <-chan weld.Event {
	return w.events
}

// Size returns the screen size in cells.
func (w *Window) Size() weld.Size {
	cols, rows := w.screen.Size()
	return weld.Size{Width: float32(cols), Height: float32(rows)}
}

// Submit paints the frame into the back buffer and acknowledges it
// through the event stream.
func (w *Window) Submit(frame weld.Frame) error {
	select {
	case <-w.done:
		return errors.New("tcellwin: window closed")
	default:
	}

	w.screen.Fill(' ', tcell.StyleDefault.Background(cellColor(frame.Background)))
	for _, p := range frame.List {
		switch p := p.(type) {
		case weld.RectPrimitive:
			fillRect(w.screen, p)
		case weld.TextPrimitive:
			drawText(w.screen, p)
		}
	}

	ack := tcell.NewEventInterrupt(frame.Epoch)
	if err := w.screen.PostEvent(ack); err != nil {
		// Queue full; deliver the ack once the poller catches up.
		go w.screen.PostEventWait(ack)
	}
	return nil
}

// Present shows the back buffer.
func (w *Window) Present() error {
	w.screen.Show()
	return nil
}

// Close restores the terminal. The event stream closes shortly after.
func (w *Window) Close() {
	w.closeOnce.Do(func() {
		close(w.done)
		w.screen.Fini()
	})
}

func (w *Window) poll() {
	defer close(w.events)
	for {
		ev := w.screen.PollEvent()
		if ev == nil {
			return
		}
		out, ok := w.translate(ev)
		if !ok {
			continue
		}
		select {
		case w.events <- out:
		case <-w.done:
			return
		}
	}
}

func (w *Window) translate(ev tcell.Event) (weld.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventInterrupt:
		epoch, ok := ev.Data().(weld.Epoch)
		if !ok {
			return nil, false
		}
		return weld.RenderCompleteEvent{Epoch: epoch}, true
	case *tcell.EventResize:
		cols, rows := ev.Size()
		w.screen.Sync()
		return weld.ResizeEvent{Size: weld.Size{Width: float32(cols), Height: float32(rows)}}, true
	case *tcell.EventMouse:
		return w.translateMouse(ev)
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyESC {
			return weld.ClosedEvent{}, true
		}
		return weld.PlatformEvent{Payload: ev}, true
	default:
		debug.Log("tcellwin: ignoring %T", ev)
		return nil, false
	}
}

// translateMouse reports edges of the primary button. Points are cell
// centres so fractional layouts hit the cell the user clicked.
func (w *Window) translateMouse(ev *tcell.EventMouse) (weld.Event, bool) {
	x, y := ev.Position()
	p := weld.WorldPoint{X: float32(x) + 0.5, Y: float32(y) + 0.5}
	down := ev.Buttons()&tcell.Button1 != 0

	w.mu.Lock()
	defer w.mu.Unlock()
	switch {
	case down && !w.pressed:
		w.pressed = true
		return weld.InteractionEvent{Interaction: weld.Pressed{Point: p}}, true
	case !down && w.pressed:
		w.pressed = false
		return weld.InteractionEvent{Interaction: weld.Released{Point: p}}, true
	default:
		return nil, false
	}
}
