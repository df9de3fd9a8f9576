package weld

import (
	"fmt"
	"time"

	"github.com/grindlemire/go-weld/internal/debug"
)

// Watcher is a background event source started when App.Run begins.
// Watchers deliver results as MessageEvents so the handler runs on the
// driver loop.
type Watcher interface {
	// Start begins the watcher goroutine. The queue and stopCh are
	// provided by the App.
	Start(queue chan<- Event, stopCh <-chan struct{})
}

// watcherValidator is implemented by watchers whose settings can be
// checked before Run starts them.
type watcherValidator interface {
	validate() error
}

// ChannelWatcher forwards each value received on a channel to a target component.
type ChannelWatcher[T any] struct {
	ch     <-chan T
	target string
}

// Watch creates a watcher that delivers every value received on ch as a
// MessageEvent to the component named target. The target's handler is
// registered with Handle[S, T].
//
// Example:
//
//	results := make(chan SearchResult)
//	app, _ := weld.NewApp(win, state, weld.WithWatchers(weld.Watch(results, "results")))
func Watch[T any](ch <-chan T, target string) *ChannelWatcher[T] {
	return &ChannelWatcher[T]{ch: ch, target: target}
}

// Start the watcher.
func (w *ChannelWatcher[T]) Start(queue chan<- Event, stopCh <-chan struct{}) {
	go func() {
		for {
			select {
			case <-stopCh:
				return
			case val, ok := <-w.ch:
				if !ok {
					return // Channel closed
				}
				select {
				case queue <- MessageEvent{Target: w.target, Payload: val}:
				case <-stopCh:
					return
				}
			}
		}
	}()
}

// timerWatcher fires at a regular interval.
type timerWatcher struct {
	interval time.Duration
	target   string
	payload  any
}

// OnTimer creates a watcher that delivers payload to target every interval.
// Ticks are dropped rather than queued when the driver falls behind.
// interval must be positive; WithWatchers rejects it otherwise.
func OnTimer(interval time.Duration, target string, payload any) Watcher {
	return &timerWatcher{interval: interval, target: target, payload: payload}
}

func (w *timerWatcher) validate() error {
	if w.interval <= 0 {
		return fmt.Errorf("timer for %q: interval %v must be positive", w.target, w.interval)
	}
	return nil
}

// Start the watcher. A watcher with a non-positive interval never fires.
func (w *timerWatcher) Start(queue chan<- Event, stopCh <-chan struct{}) {
	if err := w.validate(); err != nil {
		debug.Log("timerWatcher not started: %v", err)
		return
	}
	go func() {
		debug.Log("timerWatcher started for %q", w.target)
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				if !enqueue(queue, stopCh, MessageEvent{Target: w.target, Payload: w.payload}) {
					debug.Log("timerWatcher tick for %q dropped", w.target)
				}
			}
		}
	}()
}
