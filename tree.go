package weld

import "sync"

// Tree holds the current root component. The driver swaps it; a renderer
// on another goroutine may read it.
type Tree struct {
	mu   sync.RWMutex
	root *Component
}

// Swap installs root and returns the previous root.
func (t *Tree) Swap(root *Component) *Component {
	t.mu.Lock()
	defer t.mu.Unlock()
	prev := t.root
	t.root = root
	return prev
}

// Root returns the current root.
func (t *Tree) Root() *Component {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.root
}

// View calls fn with the current root while holding the read lock.
// fn must not call Swap.
func (t *Tree) View(fn func(root *Component)) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	fn(t.root)
}
