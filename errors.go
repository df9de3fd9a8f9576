package weld

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrRouting is matched by every *RoutingError.
	ErrRouting = errors.New("weld: routing error")

	// ErrHandler is matched by every *HandlerError.
	ErrHandler = errors.New("weld: handler error")

	// ErrInvalidTree is returned when Build produces a tree the driver cannot use.
	ErrInvalidTree = errors.New("weld: invalid component tree")

	// ErrClosed is returned by operations on an app that has shut down.
	ErrClosed = errors.New("weld: app closed")
)

// RoutingReason says why an event could not reach a handler.
type RoutingReason uint8

const (
	ReasonNoHandler RoutingReason = iota // no handler for the event's type
	ReasonStateType                      // state is not the handler's state type
	ReasonEventType                      // event is not the handler's event type
	ReasonNilEvent                       // event was nil
	ReasonNoTarget                       // message target name not found
)

func (r RoutingReason) String() string {
	switch r {
	case ReasonNoHandler:
		return "no handler"
	case ReasonStateType:
		return "state type mismatch"
	case ReasonEventType:
		return "event type mismatch"
	case ReasonNilEvent:
		return "nil event"
	case ReasonNoTarget:
		return "no target"
	default:
		return fmt.Sprintf("RoutingReason(%d)", uint8(r))
	}
}

// RoutingError reports that an event could not be delivered.
type RoutingError struct {
	Component ComponentID
	Event     reflect.Type
	State     reflect.Type
	Target    string // message target, for ReasonNoTarget
	Reason    RoutingReason
}

func (e *RoutingError) Error() string {
	msg := "weld: cannot route"
	if e.Event != nil {
		msg += " " + e.Event.String()
	}
	if !e.Component.IsZero() {
		msg += " to " + e.Component.String()
	}
	if e.Target != "" {
		msg += fmt.Sprintf(" to %q", e.Target)
	}
	msg += ": " + e.Reason.String()
	if e.Reason == ReasonStateType && e.State != nil {
		msg += " (got " + e.State.String() + ")"
	}
	return msg
}

// Is reports whether target is ErrRouting.
func (e *RoutingError) Is(target error) bool {
	return target == ErrRouting
}

// HandlerError wraps an error returned by an application handler.
type HandlerError struct {
	Component ComponentID
	Event     reflect.Type
	Err       error
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("weld: handler for %s on %s: %v", e.Event, e.Component, e.Err)
}

// Is reports whether target is ErrHandler.
func (e *HandlerError) Is(target error) bool {
	return target == ErrHandler
}

// Unwrap returns the application's error.
func (e *HandlerError) Unwrap() error {
	return e.Err
}
