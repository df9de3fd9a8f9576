package weld

import "fmt"

// Event is something a Window or a Watcher feeds to the driver.
type Event interface {
	isEvent()
}

// InteractionKind distinguishes pointer presses from releases.
type InteractionKind uint8

const (
	KindPressed InteractionKind = iota
	KindReleased
)

func (k InteractionKind) String() string {
	switch k {
	case KindPressed:
		return "pressed"
	case KindReleased:
		return "released"
	default:
		return fmt.Sprintf("InteractionKind(%d)", uint8(k))
	}
}

// Interaction is a pointer event. Handlers register for the concrete
// types Pressed or Released.
type Interaction interface {
	Kind() InteractionKind
	Position() WorldPoint
}

// Pressed is delivered when the primary pointer button goes down.
type Pressed struct {
	Point WorldPoint
}

// Kind returns KindPressed.
func (Pressed) Kind() InteractionKind { return KindPressed }

// Position returns where the press happened.
func (p Pressed) Position() WorldPoint { return p.Point }

// Released is delivered when the primary pointer button goes up.
type Released struct {
	Point WorldPoint
}

// Kind returns KindReleased.
func (Released) Kind() InteractionKind { return KindReleased }

// Position returns where the release happened.
func (r Released) Position() WorldPoint { return r.Point }

// NewInteraction returns the Interaction of the given kind at p.
func NewInteraction(kind InteractionKind, p WorldPoint) Interaction {
	if kind == KindReleased {
		return Released{Point: p}
	}
	return Pressed{Point: p}
}

// InteractionEvent carries pointer input from the window.
type InteractionEvent struct {
	Interaction Interaction
}

// RenderCompleteEvent tells the driver a submitted frame is ready to swap.
type RenderCompleteEvent struct {
	Epoch Epoch
}

// ClosedEvent ends the driver loop.
type ClosedEvent struct{}

// ResizeEvent reports a new viewport size.
type ResizeEvent struct {
	Size Size
}

// PlatformEvent wraps back-end events the core does not interpret.
type PlatformEvent struct {
	Payload any
}

// MessageEvent delivers Payload to the first component named Target, or
// to the root when Target is empty. Background work reports back this way.
type MessageEvent struct {
	Target  string
	Payload any
}

func (InteractionEvent) isEvent()    {}
func (RenderCompleteEvent) isEvent() {}
func (ClosedEvent) isEvent()         {}
func (ResizeEvent) isEvent()         {}
func (PlatformEvent) isEvent()       {}
func (MessageEvent) isEvent()        {}
