package layout

import "fmt"

// Calculate performs layout calculation on the tree rooted at n.
// The root and all descendants will have their Layout populated.
//
// availableWidth and availableHeight specify the root constraint
// (typically the viewport size). Styles are validated before any
// geometry is touched; an invalid style returns a *StyleError and leaves
// every previous layout in place. Computed geometry that overflows to a
// non-finite value is also a *StyleError, and the pass is rolled back.
//
// Only dirty nodes, or nodes whose allocated slot moved, are recalculated.
func (n *Node) Calculate(availableWidth, availableHeight float32, dir TextDirection) error {
	if !isFinite(availableWidth) || !isFinite(availableHeight) || availableWidth < 0 || availableHeight < 0 {
		return &StyleError{
			Property: "viewport",
			Value:    fmt.Sprintf("%gx%g", availableWidth, availableHeight),
			Reason:   "must be finite and non-negative",
		}
	}
	if err := validateTree(n, nil); err != nil {
		return err
	}

	// For the root node, resolve its width/height constraints against
	// the available space. Child nodes receive their size from the
	// parent's flex calculations instead.
	style := n.style
	margin := style.Margin.Resolve(availableWidth)
	width := style.Width.Resolve(availableWidth, availableWidth-margin.Horizontal())
	height := style.Height.Resolve(availableHeight, availableHeight-margin.Vertical())

	available := NewRect(margin.Left, margin.Top, max(0, width), max(0, height))
	saved := saveTree(n, nil)
	calculateNode(n, available, dir)
	if err := checkGeometry(n, nil); err != nil {
		for _, s := range saved {
			s.restore()
		}
		return err
	}
	return nil
}

// nodeState is the computed part of a node, kept so a failed pass can
// be rolled back.
type nodeState struct {
	node      *Node
	layout    Layout
	available Rect
	direction TextDirection
	dirty     bool
}

func (s nodeState) restore() {
	s.node.layout = s.layout
	s.node.available = s.available
	s.node.direction = s.direction
	s.node.dirty = s.dirty
}

func saveTree(n *Node, out []nodeState) []nodeState {
	out = append(out, nodeState{
		node:      n,
		layout:    n.layout,
		available: n.available,
		direction: n.direction,
		dirty:     n.dirty,
	})
	for _, child := range n.children {
		out = saveTree(child, out)
	}
	return out
}

// checkGeometry rejects rectangles that are not finite or have negative
// size. Finite styles can still overflow float32 once summed.
func checkGeometry(n *Node, path []int) error {
	if !validRect(n.layout.Rect) || !validRect(n.layout.ContentRect) {
		r := n.layout.Rect
		return &StyleError{
			Path:     append([]int(nil), path...),
			Property: "layout",
			Value:    fmt.Sprintf("%gx%g at (%g, %g)", r.Width, r.Height, r.X, r.Y),
			Reason:   "layout overflow: computed geometry is not finite",
		}
	}
	for i, child := range n.children {
		if err := checkGeometry(child, append(path, i)); err != nil {
			return err
		}
	}
	return nil
}

func validRect(r Rect) bool {
	return isFinite(r.X) && isFinite(r.Y) && isFinite(r.Width) && isFinite(r.Height) &&
		r.Width >= 0 && r.Height >= 0
}

func validateTree(n *Node, path []int) error {
	if err := n.style.Validate(); err != nil {
		if se, ok := err.(*StyleError); ok {
			se.Path = append([]int(nil), path...)
		}
		return err
	}
	for i, child := range n.children {
		if err := validateTree(child, append(path, i)); err != nil {
			return err
		}
	}
	return nil
}

// calculateNode computes the layout for a single node within the available space.
// The available rect is the border box slot allocated by the parent
// (after the parent has already applied this node's margin).
func calculateNode(node *Node, available Rect, dir TextDirection) {
	if !node.dirty && node.available == available && node.direction == dir {
		return
	}

	style := node.style

	// 1. Compute this node's border box within available space
	borderBox := computeBorderBox(style, available)

	// 2. Compute content rect (border box minus padding)
	contentRect := borderBox.Inset(style.Padding.Resolve(available.Width))

	// 3. Layout children within content rect
	if len(node.children) > 0 {
		layoutChildren(node, contentRect, dir)
	}

	// 4. Store computed layout
	node.layout = Layout{
		Rect:        borderBox,
		ContentRect: contentRect,
	}
	node.available = available
	node.direction = dir

	// 5. Clear dirty flag
	node.dirty = false
}

// computeBorderBox applies min/max constraints to the slot the parent allocated.
// Width/Height were already used by the flex algorithm to compute the slot size.
func computeBorderBox(style Style, available Rect) Rect {
	width := clamp(available.Width,
		style.MinWidth.Resolve(available.Width, 0),
		style.MaxWidth.Resolve(available.Width, available.Width))
	height := clamp(available.Height,
		style.MinHeight.Resolve(available.Height, 0),
		style.MaxHeight.Resolve(available.Height, available.Height))

	return Rect{
		X:      available.X,
		Y:      available.Y,
		Width:  max(0, width),
		Height: max(0, height),
	}
}

// clamp restricts v to the range [minVal, maxVal].
// If minVal > maxVal, minVal wins (matches CSS behavior).
func clamp(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if maxVal >= minVal && v > maxVal {
		return maxVal
	}
	return v
}
