package weld

import (
	"context"

	"github.com/grindlemire/go-weld/internal/debug"
)

// Run starts the watchers and processes events until the window closes,
// ctx is cancelled or Stop is called. It returns the first fatal error:
// a layout failure or a window error. Handler and routing errors are not
// fatal.
func (a *App[S]) Run(ctx context.Context) error {
	a.startWatchers()
	defer a.Stop()

	for {
		done, err := a.Step(ctx)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// Step waits for the next event from the window or the message queue and
// handles it. done is true once the app has closed.
func (a *App[S]) Step(ctx context.Context) (done bool, err error) {
	if a.Phase() == PhaseClosed {
		return true, nil
	}

	select {
	case <-ctx.Done():
		debug.Log("app: context done: %v", ctx.Err())
		a.close()
		return true, nil
	case <-a.stopCh:
		a.close()
		return true, nil
	case ev, ok := <-a.window.Events():
		if !ok {
			debug.Log("app: window event stream closed")
			a.close()
			return true, nil
		}
		return a.HandleEvent(ev)
	case ev := <-a.queue:
		return a.HandleEvent(ev)
	}
}

// Stop signals Run to exit and stops all watchers.
// Stop is idempotent and safe from any goroutine.
func (a *App[S]) Stop() {
	a.stopOnce.Do(func() {
		close(a.stopCh)
	})
}

// Send queues a message for the component named target (the root when
// target is empty). Safe from any goroutine. It reports false when the
// queue is full or the app has stopped.
func (a *App[S]) Send(target string, payload any) bool {
	return enqueue(a.queue, a.stopCh, MessageEvent{Target: target, Payload: payload})
}

func enqueue(queue chan<- Event, stopCh <-chan struct{}, ev Event) bool {
	select {
	case <-stopCh:
		return false
	default:
	}
	select {
	case queue <- ev:
		return true
	default:
		debug.Log("app: queue full, dropping %T", ev)
		return false
	}
}

func (a *App[S]) startWatchers() {
	if a.started {
		return
	}
	a.started = true
	for _, w := range a.cfg.watchers {
		w.Start(a.queue, a.stopCh)
	}
}

// close enters the terminal phase and releases the tree and layout.
func (a *App[S]) close() {
	if a.Phase() == PhaseClosed {
		return
	}
	a.setPhase(PhaseClosed)
	a.tree.Swap(nil)
	a.layout.Reset()
	a.Stop()
	debug.Log("app: closed after epoch %d", a.epoch)
}
