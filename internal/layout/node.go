package layout

import "fmt"

// Layout holds the computed position and size after layout calculation.
type Layout struct {
	// Rect is the border box: the space allocated by the parent after
	// applying this node's margin. Use for hit testing and bounds.
	Rect Rect

	// ContentRect is Rect minus padding: the area where children are placed.
	ContentRect Rect
}

// Node represents an element in the layout tree.
type Node struct {
	// Configuration (user-set)
	style    Style
	children []*Node

	// Computed (set by layout engine)
	layout Layout

	// Internal state
	dirty     bool          // Needs recalculation
	parent    *Node         // Back-pointer for dirty propagation
	available Rect          // Slot used by the last calculation
	direction TextDirection // Direction used by the last calculation
}

// NewNode creates a new node with the default style.
func NewNode() *Node {
	return NewNodeWithStyle(DefaultStyle())
}

// NewNodeWithStyle creates a new node with the given style.
func NewNodeWithStyle(style Style) *Node {
	return &Node{
		style: style,
		dirty: true, // New nodes need layout
	}
}

// Style returns the node's style.
func (n *Node) Style() Style {
	return n.style
}

// SetStyle updates the style and marks the node dirty.
func (n *Node) SetStyle(style Style) {
	n.style = style
	n.MarkDirty()
}

// InsertChild inserts child at the given ordinal, shifting later children.
// index must be in [0, ChildCount()].
func (n *Node) InsertChild(child *Node, index int) error {
	if child == nil {
		return fmt.Errorf("layout: insert nil child")
	}
	if child.parent != nil {
		return ErrHasParent
	}
	if index < 0 || index > len(n.children) {
		return fmt.Errorf("insert at %d of %d: %w", index, len(n.children), ErrChildIndex)
	}
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	child.parent = n
	n.MarkDirty()
	return nil
}

// AddChild appends children and marks this node dirty.
func (n *Node) AddChild(children ...*Node) {
	for _, child := range children {
		if err := n.InsertChild(child, len(n.children)); err != nil {
			panic(err)
		}
	}
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// Child returns the child at index i.
func (n *Node) Child(i int) *Node {
	return n.children[i]
}

// Children returns the child nodes in order.
func (n *Node) Children() []*Node {
	return n.children
}

// Parent returns the parent node, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Layout returns the last computed layout.
func (n *Node) Layout() Layout {
	return n.layout
}

// MarkDirty marks this node and all ancestors as needing recalculation.
func (n *Node) MarkDirty() {
	for node := n; node != nil && !node.dirty; node = node.parent {
		node.dirty = true
	}
}

// IsDirty returns whether this node needs recalculation.
func (n *Node) IsDirty() bool {
	return n.dirty
}
