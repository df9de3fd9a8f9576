package weld

import (
	"fmt"
	"strings"
	"sync"
)

// MockWindow is an in-memory Window for testing.
// It records submitted frames and lets tests inject events.
type MockWindow struct {
	mu       sync.Mutex
	size     Size
	title    string
	events   chan Event
	frames   []Frame
	presents int
	closed   bool
	autoAck  bool

	submitErr  error
	presentErr error
}

// Ensure MockWindow implements Window.
var _ Window = (*MockWindow)(nil)

// NewMockWindow creates a mock window with the given viewport.
func NewMockWindow(width, height float32) *MockWindow {
	return &MockWindow{
		size:   Size{Width: width, Height: height},
		events: make(chan Event, 64),
	}
}

// Events returns the injected event stream.
func (m *MockWindow) Events() <-chan Event {
	return m.events
}

// Size returns the current viewport.
func (m *MockWindow) Size() Size {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.size
}

// Submit records the frame. With auto-ack enabled it also queues a
// RenderCompleteEvent for it.
func (m *MockWindow) Submit(frame Frame) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.submitErr != nil {
		return m.submitErr
	}
	m.frames = append(m.frames, frame)
	if m.autoAck && !m.closed {
		select {
		case m.events <- RenderCompleteEvent{Epoch: frame.Epoch}:
		default:
		}
	}
	return nil
}

// Present counts frame swaps.
func (m *MockWindow) Present() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.presentErr != nil {
		return m.presentErr
	}
	m.presents++
	return nil
}

// SetTitle records the title.
func (m *MockWindow) SetTitle(title string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.title = title
}

// --- Test helper methods ---

// Title returns the last title set.
func (m *MockWindow) Title() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.title
}

// AutoAck makes Submit answer every frame with a RenderCompleteEvent.
func (m *MockWindow) AutoAck(on bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.autoAck = on
}

// FailSubmit makes Submit return err. Pass nil to clear.
func (m *MockWindow) FailSubmit(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submitErr = err
}

// FailPresent makes Present return err. Pass nil to clear.
func (m *MockWindow) FailPresent(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.presentErr = err
}

// Push injects an event. It panics if the window was closed.
func (m *MockWindow) Push(ev Event) {
	m.events <- ev
}

// Press injects a Pressed interaction at (x, y).
func (m *MockWindow) Press(x, y float32) {
	m.Push(InteractionEvent{Interaction: Pressed{Point: WorldPoint{X: x, Y: y}}})
}

// Release injects a Released interaction at (x, y).
func (m *MockWindow) Release(x, y float32) {
	m.Push(InteractionEvent{Interaction: Released{Point: WorldPoint{X: x, Y: y}}})
}

// Resize changes the viewport and injects a ResizeEvent.
func (m *MockWindow) Resize(width, height float32) {
	size := Size{Width: width, Height: height}
	m.mu.Lock()
	m.size = size
	m.mu.Unlock()
	m.Push(ResizeEvent{Size: size})
}

// Close closes the event stream.
func (m *MockWindow) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.closed {
		m.closed = true
		close(m.events)
	}
}

// Frames returns every submitted frame in order.
func (m *MockWindow) Frames() []Frame {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Frame(nil), m.frames...)
}

// LastFrame returns the most recent frame.
func (m *MockWindow) LastFrame() (Frame, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.frames) == 0 {
		return Frame{}, false
	}
	return m.frames[len(m.frames)-1], true
}

// Presents returns how many times Present succeeded.
func (m *MockWindow) Presents() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.presents
}

// String renders the last frame's display list one primitive per line
// for snapshot testing.
func (m *MockWindow) String() string {
	frame, ok := m.LastFrame()
	if !ok {
		return ""
	}
	var sb strings.Builder
	for i, p := range frame.List {
		if i > 0 {
			sb.WriteByte('\n')
		}
		r := p.Bounds()
		switch p := p.(type) {
		case RectPrimitive:
			fmt.Fprintf(&sb, "rect %g,%g %gx%g %s", r.X, r.Y, r.Width, r.Height, p.Color.Hex())
		case TextPrimitive:
			fmt.Fprintf(&sb, "text %g,%g %gx%g %q", r.X, r.Y, r.Width, r.Height, p.Text)
		default:
			fmt.Fprintf(&sb, "%T %g,%g %gx%g", p, r.X, r.Y, r.Width, r.Height)
		}
	}
	return sb.String()
}
