// Package layout implements a pure-Go flexbox layout solver.
//
// It supports row/column directions (and their reverses), wrapping,
// justify and align modes, padding, margin, gap, min/max constraints,
// point, percentage and auto dimensions, flex grow/shrink/basis and
// intrinsic sizing. Geometry is float32 and absolute: every computed
// [Rect] is expressed in the coordinate space of the root's viewport.
//
// The solver is node based. Build a tree with [NewNode], [Node.SetStyle]
// and [Node.InsertChild], run [Node.Calculate] on the root, then read each
// node's [Node.Layout]. Types are re-exported through the root weld package
// for public consumption.
package layout
