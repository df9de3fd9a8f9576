package weld

import (
	"errors"
	"fmt"

	"github.com/grindlemire/go-weld/internal/layout"
)

// LayoutContext maps each Component of the last laid-out tree to a solver
// node. The map is rebuilt from scratch on every UpdateLayout.
type LayoutContext struct {
	nodes map[ComponentID]*layout.Node
	root  *layout.Node
	size  Size
	dir   TextDirection
}

// NewLayoutContext returns an empty context that lays rows out left-to-right.
func NewLayoutContext() *LayoutContext {
	return &LayoutContext{}
}

// SetDirection sets the text direction used by the next UpdateLayout.
func (lc *LayoutContext) SetDirection(dir TextDirection) {
	lc.dir = dir
}

// Direction returns the text direction.
func (lc *LayoutContext) Direction() TextDirection {
	return lc.dir
}

// UpdateLayout builds a solver node per component in pre-order, applies
// its styles, inserts children at their ordinal, and solves the tree for
// the viewport. The previous geometry stays in place unless the whole
// pass succeeds.
func (lc *LayoutContext) UpdateLayout(root *Component, viewport Size) error {
	if root == nil {
		return fmt.Errorf("update layout: nil root: %w", ErrInvalidTree)
	}

	nodes := make(map[ComponentID]*layout.Node)
	rootNode, err := buildLayoutNode(root, nodes)
	if err != nil {
		return fmt.Errorf("update layout: %w", err)
	}

	if err := rootNode.Calculate(viewport.Width, viewport.Height, lc.dir); err != nil {
		var se *layout.StyleError
		if errors.As(err, &se) {
			if c := componentAtPath(root, se.Path); c != nil {
				return fmt.Errorf("update layout: component %s: %w", c, err)
			}
		}
		return fmt.Errorf("update layout: %w", err)
	}

	lc.nodes = nodes
	lc.root = rootNode
	lc.size = viewport
	return nil
}

func buildLayoutNode(c *Component, nodes map[ComponentID]*layout.Node) (*layout.Node, error) {
	if _, dup := nodes[c.id]; dup {
		return nil, fmt.Errorf("component %s appears twice: %w", c, ErrInvalidTree)
	}
	node := layout.NewNodeWithStyle(resolveStyles(c.styles))
	nodes[c.id] = node

	for i, child := range c.children {
		childNode, err := buildLayoutNode(child, nodes)
		if err != nil {
			return nil, err
		}
		if err := node.InsertChild(childNode, i); err != nil {
			return nil, fmt.Errorf("component %s child %d: %w", c, i, err)
		}
	}
	return node, nil
}

func componentAtPath(root *Component, path []int) *Component {
	c := root
	for _, i := range path {
		if i < 0 || i >= len(c.children) {
			return nil
		}
		c = c.children[i]
	}
	return c
}

// LayoutOf returns the border box of c from the last pass.
// It panics if c was not part of that pass.
func (lc *LayoutContext) LayoutOf(c *Component) Rect {
	return lc.mustNode(c).Layout().Rect
}

// ContentOf returns the content box (border box minus padding) of c.
// It panics if c was not part of the last pass.
func (lc *LayoutContext) ContentOf(c *Component) Rect {
	return lc.mustNode(c).Layout().ContentRect
}

// Lookup returns the border box of c and whether c was laid out.
func (lc *LayoutContext) Lookup(c *Component) (Rect, bool) {
	if c == nil {
		return Rect{}, false
	}
	node, ok := lc.nodes[c.id]
	if !ok {
		return Rect{}, false
	}
	return node.Layout().Rect, true
}

func (lc *LayoutContext) mustNode(c *Component) *layout.Node {
	node, ok := lc.nodes[c.id]
	if !ok {
		panic(fmt.Sprintf("weld: component %s has no layout; it was not part of the last UpdateLayout", c))
	}
	return node
}

// Len returns the number of laid-out components.
func (lc *LayoutContext) Len() int {
	return len(lc.nodes)
}

// Size returns the viewport of the last successful pass.
func (lc *LayoutContext) Size() Size {
	return lc.size
}

// Reset drops all geometry.
func (lc *LayoutContext) Reset() {
	lc.nodes = nil
	lc.root = nil
	lc.size = Size{}
}
