package layout

import "math"

// unbounded is used for max constraints that are not set.
const unbounded = math.MaxFloat32

// lineEpsilon absorbs float error when deciding whether an item still fits on a line.
const lineEpsilon = 1e-3

// flexItem holds intermediate calculation state for a child.
// This is allocated per layout call, not stored on nodes.
type flexItem struct {
	node        *Node
	margin      Insets
	mainMargin  float32
	crossMargin float32
	align       Align

	baseSize  float32 // inner flex base size
	minMain   float32
	maxMain   float32
	mainSize  float32 // inner main size after flexing
	crossSize float32 // inner cross size
	mainPos   float32 // outer offset along the main axis
	crossPos  float32 // outer offset along the cross axis within its line
	grow      float32
	shrink    float32
}

func (it *flexItem) outerMain() float32 {
	return it.mainSize + it.mainMargin
}

// flexLine is a run of items sharing one cross-axis band.
type flexLine struct {
	start, end int
	crossSize  float32
	crossPos   float32
}

// layoutChildren arranges the children of a node within the given content rect.
// This implements the core flexbox algorithm.
func layoutChildren(node *Node, contentRect Rect, dir TextDirection) {
	style := node.style
	isRow := style.Direction.isRow()
	reverse := style.Direction.isReverse()
	if isRow && dir == RTL {
		reverse = !reverse
	}

	// Determine main/cross axis dimensions
	mainSize := contentRect.Width
	crossSize := contentRect.Height
	if !isRow {
		mainSize, crossSize = crossSize, mainSize
	}

	// Phase 1: Compute base sizes and flex factors
	items := make([]flexItem, len(node.children))
	for i, child := range node.children {
		items[i] = newFlexItem(child, style, isRow, mainSize, contentRect.Width)
	}

	// Phase 2: Break items into lines, then flex and justify each line
	lines := collectLines(items, style, mainSize)
	for _, line := range lines {
		lineItems := items[line.start:line.end]
		resolveFlexibleLengths(lineItems, mainSize, style.Gap)
		positionMainAxis(lineItems, style.JustifyContent, mainSize, style.Gap)
	}

	// Phase 3: Cross-axis sizing and alignment
	single := style.Wrap == NoWrap
	for li := range lines {
		line := &lines[li]
		lineItems := items[line.start:line.end]
		if single {
			line.crossSize = crossSize
		} else {
			line.crossSize = hypotheticalLineCross(lineItems, isRow, crossSize)
		}
		for i := range lineItems {
			sizeCrossAxis(&lineItems[i], isRow, line.crossSize, crossSize)
		}
	}

	// Phase 4: Stack lines along the cross axis
	var offset float32
	for li := range lines {
		lines[li].crossPos = offset
		offset += lines[li].crossSize + style.Gap
		if style.Wrap == WrapReverse {
			lines[li].crossPos = crossSize - lines[li].crossPos - lines[li].crossSize
		}
	}

	// Phase 5: Convert to rects and recurse
	for _, line := range lines {
		for i := line.start; i < line.end; i++ {
			item := &items[i]
			mainStart := item.mainPos
			if reverse {
				mainStart = mainSize - item.mainPos - item.outerMain()
			}
			crossStart := line.crossPos + item.crossPos

			var slot Rect
			if isRow {
				slot = Rect{
					X:      contentRect.X + mainStart,
					Y:      contentRect.Y + crossStart,
					Width:  item.outerMain(),
					Height: item.crossSize + item.crossMargin,
				}
			} else {
				slot = Rect{
					X:      contentRect.X + crossStart,
					Y:      contentRect.Y + mainStart,
					Width:  item.crossSize + item.crossMargin,
					Height: item.outerMain(),
				}
			}

			// Apply child's margin: shrink the slot to get the child's border box.
			// The child receives this as 'available' and does NOT re-apply margin.
			calculateNode(item.node, slot.Inset(item.margin), dir)
		}
	}
}

func newFlexItem(child *Node, parent Style, isRow bool, mainSize, percentBase float32) flexItem {
	cs := child.style
	item := flexItem{
		node:   child,
		margin: cs.Margin.Resolve(percentBase),
		grow:   cs.FlexGrow,
		shrink: cs.FlexShrink,
		align:  cs.AlignSelf,
	}
	if item.align == AlignAuto {
		item.align = parent.AlignItems
	}
	if item.align == AlignAuto {
		item.align = AlignStretch
	}

	mainValue, minValue, maxValue := cs.Height, cs.MinHeight, cs.MaxHeight
	item.mainMargin = item.margin.Vertical()
	item.crossMargin = item.margin.Horizontal()
	if isRow {
		mainValue, minValue, maxValue = cs.Width, cs.MinWidth, cs.MaxWidth
		item.mainMargin, item.crossMargin = item.crossMargin, item.mainMargin
	}
	item.minMain = minValue.Resolve(mainSize, 0)
	item.maxMain = maxValue.Resolve(mainSize, unbounded)

	switch {
	case cs.FlexBasis.IsDefined():
		item.baseSize = cs.FlexBasis.Resolve(mainSize, 0)
	case mainValue.IsDefined():
		item.baseSize = mainValue.Resolve(mainSize, 0)
	default:
		w, h := intrinsicSize(child)
		item.baseSize = h
		if isRow {
			item.baseSize = w
		}
	}
	return item
}

// collectLines greedily breaks items into lines. Without wrapping every
// item shares a single line.
func collectLines(items []flexItem, style Style, mainSize float32) []flexLine {
	if style.Wrap == NoWrap || len(items) == 0 {
		return []flexLine{{start: 0, end: len(items)}}
	}

	var lines []flexLine
	start := 0
	var used float32
	for i := range items {
		outer := clamp(items[i].baseSize, items[i].minMain, items[i].maxMain) + items[i].mainMargin
		if i > start && used+style.Gap+outer > mainSize+lineEpsilon {
			lines = append(lines, flexLine{start: start, end: i})
			start = i
			used = outer
			continue
		}
		if i > start {
			used += style.Gap
		}
		used += outer
	}
	return append(lines, flexLine{start: start, end: len(items)})
}

// resolveFlexibleLengths distributes free space on one line by flex-grow,
// or removes overflow by flex-shrink scaled by base size, then applies
// min/max constraints.
func resolveFlexibleLengths(items []flexItem, mainSize, gap float32) {
	var totalOuter, totalGrow, totalScaledShrink float32
	for i := range items {
		totalOuter += items[i].baseSize + items[i].mainMargin
		totalGrow += items[i].grow
		totalScaledShrink += items[i].shrink * items[i].baseSize
	}
	freeSpace := mainSize - totalOuter - gap*float32(max(0, len(items)-1))

	for i := range items {
		item := &items[i]
		size := item.baseSize
		switch {
		case freeSpace > 0 && totalGrow > 0:
			size += freeSpace * item.grow / totalGrow
		case freeSpace < 0 && totalScaledShrink > 0:
			size += freeSpace * item.shrink * item.baseSize / totalScaledShrink
		}
		item.mainSize = max(0, clamp(size, item.minMain, item.maxMain))
	}
}

// positionMainAxis places items of one line according to justify-content.
func positionMainAxis(items []flexItem, justify Justify, mainSize, gap float32) {
	used := gap * float32(max(0, len(items)-1))
	for i := range items {
		used += items[i].outerMain()
	}
	freeSpace := mainSize - used

	offset := calculateJustifyOffset(justify, freeSpace, len(items))
	spacing := calculateJustifySpacing(justify, freeSpace, len(items))
	for i := range items {
		items[i].mainPos = offset
		offset += items[i].outerMain() + gap + spacing
	}
}

// hypotheticalLineCross is the outer cross size of the largest item on a wrapped line.
func hypotheticalLineCross(items []flexItem, isRow bool, containerCross float32) float32 {
	var size float32
	for i := range items {
		size = max(size, hypotheticalCross(&items[i], isRow, containerCross)+items[i].crossMargin)
	}
	return size
}

func crossValues(s Style, isRow bool) (size, minV, maxV Value) {
	if isRow {
		return s.Height, s.MinHeight, s.MaxHeight
	}
	return s.Width, s.MinWidth, s.MaxWidth
}

func hypotheticalCross(item *flexItem, isRow bool, containerCross float32) float32 {
	sizeV, minV, maxV := crossValues(item.node.style, isRow)
	var size float32
	if sizeV.IsDefined() {
		size = sizeV.Resolve(containerCross, 0)
	} else {
		w, h := intrinsicSize(item.node)
		size = w
		if isRow {
			size = h
		}
	}
	return max(0, clamp(size, minV.Resolve(containerCross, 0), maxV.Resolve(containerCross, unbounded)))
}

func sizeCrossAxis(item *flexItem, isRow bool, lineCross, containerCross float32) {
	sizeV, minV, maxV := crossValues(item.node.style, isRow)
	if sizeV.IsAuto() && item.align == AlignStretch {
		// Stretch: fill the line's cross axis (minus margin)
		size := lineCross - item.crossMargin
		item.crossSize = max(0, clamp(size, minV.Resolve(containerCross, 0), maxV.Resolve(containerCross, unbounded)))
	} else {
		item.crossSize = hypotheticalCross(item, isRow, containerCross)
	}
	item.crossPos = calculateAlignOffset(item.align, lineCross, item.crossSize+item.crossMargin)
}

// calculateJustifyOffset returns the initial offset for positioning children
// based on the justify mode and available free space.
func calculateJustifyOffset(justify Justify, freeSpace float32, itemCount int) float32 {
	if freeSpace <= 0 || itemCount == 0 {
		return 0
	}

	switch justify {
	case JustifyEnd:
		return freeSpace
	case JustifyCenter:
		return freeSpace / 2
	case JustifySpaceAround:
		return freeSpace / float32(itemCount*2)
	case JustifySpaceEvenly:
		return freeSpace / float32(itemCount+1)
	default: // JustifyStart, JustifySpaceBetween
		return 0
	}
}

// calculateJustifySpacing returns the extra spacing between children
// based on the justify mode and available free space.
func calculateJustifySpacing(justify Justify, freeSpace float32, itemCount int) float32 {
	if freeSpace <= 0 || itemCount <= 1 {
		return 0
	}

	switch justify {
	case JustifySpaceBetween:
		return freeSpace / float32(itemCount-1)
	case JustifySpaceAround:
		return freeSpace / float32(itemCount)
	case JustifySpaceEvenly:
		return freeSpace / float32(itemCount+1)
	default: // JustifyStart, JustifyEnd, JustifyCenter
		return 0
	}
}

// calculateAlignOffset returns the offset for positioning a child on the cross axis.
func calculateAlignOffset(align Align, crossSize, itemSize float32) float32 {
	switch align {
	case AlignEnd:
		return crossSize - itemSize
	case AlignCenter:
		return (crossSize - itemSize) / 2
	default: // AlignStart, AlignStretch
		return 0
	}
}

// intrinsicSize returns the natural border-box size of a node: explicit
// point dimensions where set, otherwise the extent of its children along
// its own direction plus padding. Percentages contribute nothing here.
func intrinsicSize(n *Node) (width, height float32) {
	style := n.style
	isRow := style.Direction.isRow()

	var mainSum, crossMax float32
	for i, child := range n.children {
		cw, ch := intrinsicSize(child)
		m := child.style.Margin.Resolve(0)
		outerW, outerH := cw+m.Horizontal(), ch+m.Vertical()
		if isRow {
			mainSum += outerW
			crossMax = max(crossMax, outerH)
		} else {
			mainSum += outerH
			crossMax = max(crossMax, outerW)
		}
		// Add gap between children (not before first)
		if i > 0 {
			mainSum += style.Gap
		}
	}

	width, height = crossMax, mainSum
	if isRow {
		width, height = mainSum, crossMax
	}
	pad := style.Padding.Resolve(0)
	width += pad.Horizontal()
	height += pad.Vertical()

	if style.Width.Unit == UnitPoint {
		width = style.Width.Amount
	}
	if style.Height.Unit == UnitPoint {
		height = style.Height.Amount
	}
	width = clamp(width, pointOr(style.MinWidth, 0), pointOr(style.MaxWidth, unbounded))
	height = clamp(height, pointOr(style.MinHeight, 0), pointOr(style.MaxHeight, unbounded))
	return max(0, width), max(0, height)
}

func pointOr(v Value, fallback float32) float32 {
	if v.Unit == UnitPoint {
		return v.Amount
	}
	return fallback
}
