package weld

import "reflect"

// Handler is a type-erased event callback. Build one with Handle and
// attach it with Component.On.
type Handler struct {
	event reflect.Type
	state reflect.Type
	call  func(c *Component, state State, event any) (State, error)
}

// EventType returns the concrete event type the handler is keyed by.
func (h Handler) EventType() reflect.Type {
	return h.event
}

// StateType returns the state type the handler expects.
func (h Handler) StateType() reflect.Type {
	return h.state
}

// Cloner is implemented by states that must be copied before a handler
// sees them, typically because they hold slices or maps.
type Cloner[S any] interface {
	Clone() S
}

// Handle wraps fn so it can be stored in a component's handler table,
// keyed by the concrete type E. At dispatch the incoming state and event
// are asserted back to S and E; a failed assertion is a routing error.
// If S implements Cloner[S], fn receives a clone.
//
// E must be a concrete type: events are matched by their dynamic type.
func Handle[S State, E any](fn func(S, E) (S, error)) Handler {
	eventType := reflect.TypeFor[E]()
	stateType := reflect.TypeFor[S]()
	return Handler{
		event: eventType,
		state: stateType,
		call: func(c *Component, state State, event any) (State, error) {
			s, ok := state.(S)
			if !ok {
				return nil, &RoutingError{
					Component: c.id,
					Event:     eventType,
					State:     reflect.TypeOf(state),
					Reason:    ReasonStateType,
				}
			}
			e, ok := event.(E)
			if !ok {
				return nil, &RoutingError{
					Component: c.id,
					Event:     reflect.TypeOf(event),
					State:     stateType,
					Reason:    ReasonEventType,
				}
			}
			if cl, ok := any(s).(Cloner[S]); ok {
				s = cl.Clone()
			}
			next, err := fn(s, e)
			if err != nil {
				return nil, &HandlerError{Component: c.id, Event: eventType, Err: err}
			}
			return next, nil
		},
	}
}

// Invoke dispatches event to the handler registered for its concrete
// type and returns the new state. The returned error is a *RoutingError
// when no handler matches or a type assertion fails, and a *HandlerError
// when the handler itself fails.
func (c *Component) Invoke(state State, event any) (State, error) {
	if c == nil {
		return nil, &RoutingError{Reason: ReasonNoHandler}
	}
	if event == nil {
		return nil, &RoutingError{Component: c.id, Reason: ReasonNilEvent}
	}
	eventType := reflect.TypeOf(event)
	h, ok := c.handlers[eventType]
	if !ok {
		return nil, &RoutingError{
			Component: c.id,
			Event:     eventType,
			State:     reflect.TypeOf(state),
			Reason:    ReasonNoHandler,
		}
	}
	return h.call(c, state, event)
}

// Invoke is the typed form of Component.Invoke. On error the original
// state is returned unchanged.
func Invoke[S State](c *Component, state S, event any) (S, error) {
	next, err := c.Invoke(state, event)
	if err != nil {
		return state, err
	}
	typed, ok := next.(S)
	if !ok {
		return state, &RoutingError{
			Component: c.id,
			Event:     reflect.TypeOf(event),
			State:     reflect.TypeOf(next),
			Reason:    ReasonStateType,
		}
	}
	return typed, nil
}
