package raylibwin

import (
	"context"
	"runtime"
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/grindlemire/go-weld"
	"github.com/grindlemire/go-weld/internal/debug"
	"golang.org/x/sync/errgroup"
)

// Window adapts a raylib window to weld.Window.
type Window struct {
	cfg    Config
	frames frameSlot
	events chan weld.Event
	done   chan struct{}

	mu   sync.Mutex
	size weld.Size

	closeOnce sync.Once
}

// Ensure Window implements weld.Window.
var _ weld.Window = (*Window)(nil)

func newWindow(cfg Config) *Window {
	return &Window{
		cfg:    cfg,
		events: make(chan weld.Event, 256),
		done:   make(chan struct{}),
		size:   weld.Size{Width: float32(cfg.Width), Height: float32(cfg.Height)},
	}
}

// Run opens the window on the calling goroutine, which must be the main
// one, and runs drive on another goroutine. It returns when drive returns
// or the window is closed, with the first error of either.
func Run(ctx context.Context, cfg Config, drive func(ctx context.Context, w *Window) error) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	w := newWindow(cfg)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer w.requestClose()
		return drive(gctx, w)
	})

	w.loop(gctx)
	return g.Wait()
}

// Events returns the window's event stream. It is closed when the native
// window closes.
func (w *Window) Events() <-chan weld.Event {
	return w.events
}

// Size returns the framebuffer size in pixels.
func (w *Window) Size() weld.Size {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.size
}

// Submit queues the frame for the next tick.
func (w *Window) Submit(frame weld.Frame) error {
	w.frames.submit(frame)
	return nil
}

// Present makes the acknowledged frame the one redrawn every tick.
func (w *Window) Present() error {
	w.frames.present()
	return nil
}

// SetTitle updates the native title on the next tick.
func (w *Window) SetTitle(title string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.cfg.Title = title
}

func (w *Window) requestClose() {
	w.closeOnce.Do(func() { close(w.done) })
}

func (w *Window) loop(ctx context.Context) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(w.events)

	w.mu.Lock()
	cfg := w.cfg
	w.mu.Unlock()

	if cfg.Resizable {
		rl.SetConfigFlags(rl.FlagWindowResizable)
	}
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.FPS))
	title := cfg.Title

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		default:
		}

		if rl.WindowShouldClose() {
			w.emit(weld.ClosedEvent{})
			return
		}
		w.pollInput()

		w.mu.Lock()
		if w.cfg.Title != title {
			title = w.cfg.Title
			rl.SetWindowTitle(title)
		}
		w.mu.Unlock()

		frame, epoch, needAck := w.frames.next()
		rl.BeginDrawing()
		if frame != nil {
			draw(*frame, cfg.FontSize)
		}
		rl.EndDrawing()
		if needAck {
			w.emit(weld.RenderCompleteEvent{Epoch: epoch})
		}
	}
}

func (w *Window) pollInput() {
	if rl.IsWindowResized() {
		size := weld.Size{Width: float32(rl.GetScreenWidth()), Height: float32(rl.GetScreenHeight())}
		w.mu.Lock()
		w.size = size
		w.mu.Unlock()
		w.emit(weld.ResizeEvent{Size: size})
	}

	pos := rl.GetMousePosition()
	p := weld.WorldPoint{X: pos.X, Y: pos.Y}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		w.emit(weld.InteractionEvent{Interaction: weld.Pressed{Point: p}})
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		w.emit(weld.InteractionEvent{Interaction: weld.Released{Point: p}})
	}
	if key := rl.GetKeyPressed(); key != 0 {
		w.emit(weld.PlatformEvent{Payload: Key(key)})
	}
}

// emit never blocks the draw loop.
func (w *Window) emit(ev weld.Event) {
	select {
	case w.events <- ev:
	default:
		debug.Log("raylibwin: event queue full, dropping %T", ev)
	}
}

// Key is a raylib key code delivered as a weld.PlatformEvent payload.
type Key int32
