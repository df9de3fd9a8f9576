package weld

// WorldPoint is a position in viewport units with the origin at the top-left.
type WorldPoint struct {
	X, Y float32
}

// FindNodeAt returns the deepest component under p, searching from node.
// Children are tried in declaration order, so on overlap the earlier
// sibling wins. It returns nil when p lies outside node.
func (lc *LayoutContext) FindNodeAt(p WorldPoint, node *Component) *Component {
	r, ok := lc.Lookup(node)
	if !ok || !r.Contains(p.X, p.Y) {
		return nil
	}
	for _, child := range node.children {
		if hit := lc.FindNodeAt(p, child); hit != nil {
			return hit
		}
	}
	return node
}

// PathAt returns the chain of components from node down to the deepest
// component under p, or nil when p lies outside node.
func (lc *LayoutContext) PathAt(p WorldPoint, node *Component) []*Component {
	r, ok := lc.Lookup(node)
	if !ok || !r.Contains(p.X, p.Y) {
		return nil
	}
	for _, child := range node.children {
		if rest := lc.PathAt(p, child); rest != nil {
			return append([]*Component{node}, rest...)
		}
	}
	return []*Component{node}
}
