package weld

import "fmt"

// rebuild builds s, lays the tree out and renders it. State, tree and
// layout are only replaced once build and layout have both succeeded.
func (a *App[S]) rebuild(s S) error {
	root, err := Rebuild(s)
	if err != nil {
		return err
	}
	if err := a.layout.UpdateLayout(root, a.size); err != nil {
		return err
	}
	a.tree.Swap(root)
	a.state = s
	return a.render(root)
}

// resize lays the current tree out for a new viewport and redraws.
func (a *App[S]) resize(size Size) error {
	if size == a.size {
		return nil
	}
	a.setPhase(PhaseRebuilding)
	defer a.setPhase(PhaseIdle)

	root := a.tree.Root()
	prev := a.size
	a.size = size
	if err := a.layout.UpdateLayout(root, size); err != nil {
		a.size = prev
		return err
	}
	return a.render(root)
}

// render submits the display list of root as the next frame.
func (a *App[S]) render(root *Component) error {
	list := BuildDisplayList(a.layout, root)
	a.epoch = a.epoch.Next()
	frame := Frame{
		Size:       a.size,
		Epoch:      a.epoch,
		Background: a.cfg.background,
		List:       list,
	}
	if err := a.window.Submit(frame); err != nil {
		return fmt.Errorf("submit frame %d: %w", frame.Epoch, err)
	}
	return nil
}
