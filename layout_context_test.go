package weld

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestUpdateLayout_PercentRow(t *testing.T) {
	left := New(nil).Style(Width(Percent(30)), Height(Percent(100)))
	right := New(nil).Style(Width(Percent(70)), Height(Percent(100)))
	root := New(nil).Style(Width(Pt(1000)), Height(Pt(1000)), FlexDirection(Row)).Child(left, right)

	lc := NewLayoutContext()
	if err := lc.UpdateLayout(root, Size{Width: 1000, Height: 1000}); err != nil {
		t.Fatal(err)
	}

	type tc struct {
		c        *Component
		expected Rect
	}

	tests := map[string]tc{
		"root":  {c: root, expected: NewRect(0, 0, 1000, 1000)},
		"left":  {c: left, expected: NewRect(0, 0, 300, 1000)},
		"right": {c: right, expected: NewRect(300, 0, 700, 1000)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := lc.LayoutOf(tt.c); got != tt.expected {
				t.Errorf("LayoutOf = %+v, want %+v", got, tt.expected)
			}
		})
	}
	if lc.Len() != 3 {
		t.Errorf("Len() = %d, want 3", lc.Len())
	}
}

func TestUpdateLayout_EveryComponentFinite(t *testing.T) {
	s := todoState{Todos: []string{"a", "b", "c"}}
	root := s.Build()

	lc := NewLayoutContext()
	if err := lc.UpdateLayout(root, Size{Width: 320, Height: 240}); err != nil {
		t.Fatal(err)
	}

	count := 0
	root.Walk(func(c *Component) bool {
		count++
		r := lc.LayoutOf(c)
		for _, v := range []float32{r.X, r.Y, r.Width, r.Height} {
			if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
				t.Errorf("%s has non-finite rect %+v", c, r)
			}
		}
		if r.Width < 0 || r.Height < 0 {
			t.Errorf("%s has negative size %+v", c, r)
		}
		return true
	})
	if count != lc.Len() {
		t.Errorf("walked %d components, layout has %d", count, lc.Len())
	}
}

func TestUpdateLayout_Idempotent(t *testing.T) {
	root := counterState{}.Build()
	lc := NewLayoutContext()
	size := Size{Width: 300, Height: 200}

	if err := lc.UpdateLayout(root, size); err != nil {
		t.Fatal(err)
	}
	first := map[ComponentID]Rect{}
	root.Walk(func(c *Component) bool {
		first[c.ID()] = lc.LayoutOf(c)
		return true
	})

	if err := lc.UpdateLayout(root, size); err != nil {
		t.Fatal(err)
	}
	root.Walk(func(c *Component) bool {
		if got := lc.LayoutOf(c); got != first[c.ID()] {
			t.Errorf("%s: %+v then %+v", c, first[c.ID()], got)
		}
		return true
	})
}

func TestUpdateLayout_CounterButton(t *testing.T) {
	root := counterState{}.Build()
	lc := NewLayoutContext()
	if err := lc.UpdateLayout(root, Size{Width: 300, Height: 200}); err != nil {
		t.Fatal(err)
	}

	if got := lc.LayoutOf(root.FindByName("button")); got != NewRect(25, 25, 100, 32) {
		t.Errorf("button = %+v, want {25 25 100 32}", got)
	}
	if got := lc.ContentOf(root); got != NewRect(25, 25, 250, 150) {
		t.Errorf("root content = %+v, want {25 25 250 150}", got)
	}
}

func TestUpdateLayout_RTL(t *testing.T) {
	a := New(nil).Style(Width(Pt(20)))
	b := New(nil).Style(Width(Pt(30)))
	root := New(nil).Style(FlexDirection(Row)).Child(a, b)

	lc := NewLayoutContext()
	lc.SetDirection(RTL)
	if err := lc.UpdateLayout(root, Size{Width: 100, Height: 10}); err != nil {
		t.Fatal(err)
	}
	if got := lc.LayoutOf(a).X; got != 80 {
		t.Errorf("a.X = %v, want 80", got)
	}
	if got := lc.LayoutOf(b).X; got != 50 {
		t.Errorf("b.X = %v, want 50", got)
	}
}

func TestUpdateLayout_InvalidStyleKeepsPreviousLayout(t *testing.T) {
	lc := NewLayoutContext()
	good := counterState{}.Build()
	if err := lc.UpdateLayout(good, Size{Width: 300, Height: 200}); err != nil {
		t.Fatal(err)
	}
	before := lc.LayoutOf(good)

	bad := New(nil).Named("bad").Style(Width(Pt(-1)))
	root := New(nil).Child(New(nil), bad)
	err := lc.UpdateLayout(root, Size{Width: 300, Height: 200})

	if !errors.Is(err, ErrInvalidStyle) {
		t.Fatalf("UpdateLayout() error = %v, want ErrInvalidStyle", err)
	}
	var se *StyleError
	if !errors.As(err, &se) || se.Property != "width" {
		t.Errorf("StyleError = %+v, want property width", se)
	}
	if !strings.Contains(err.Error(), bad.String()) {
		t.Errorf("error %q does not name component %s", err, bad)
	}
	if lc.Len() != 2 {
		t.Errorf("Len() = %d, want previous 2", lc.Len())
	}
	if got := lc.LayoutOf(good); got != before {
		t.Errorf("previous layout changed: %+v -> %+v", before, got)
	}
	if _, ok := lc.Lookup(bad); ok {
		t.Error("failed pass should not install nodes")
	}
}

func TestUpdateLayout_InvalidTree(t *testing.T) {
	shared := New(nil)

	type tc struct {
		root *Component
	}

	tests := map[string]tc{
		"nil root":         {root: nil},
		"repeated child":   {root: New(nil).Child(shared, shared)},
		"repeated subtree": {root: New(nil).Child(New(nil).Child(shared), shared)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			lc := NewLayoutContext()
			if err := lc.UpdateLayout(tt.root, Size{Width: 10, Height: 10}); !errors.Is(err, ErrInvalidTree) {
				t.Errorf("UpdateLayout() error = %v, want ErrInvalidTree", err)
			}
		})
	}
}

func TestLayoutOf_PanicsForUnknownComponent(t *testing.T) {
	lc := NewLayoutContext()
	if err := lc.UpdateLayout(New(nil), Size{Width: 10, Height: 10}); err != nil {
		t.Fatal(err)
	}

	defer func() {
		if recover() == nil {
			t.Error("LayoutOf should panic for a component outside the last pass")
		}
	}()
	lc.LayoutOf(New(nil))
}

func TestLayoutContext_Reset(t *testing.T) {
	lc := NewLayoutContext()
	root := New(nil)
	if err := lc.UpdateLayout(root, Size{Width: 10, Height: 10}); err != nil {
		t.Fatal(err)
	}
	lc.Reset()
	if lc.Len() != 0 {
		t.Errorf("Len() after Reset = %d", lc.Len())
	}
	if _, ok := lc.Lookup(root); ok {
		t.Error("Lookup after Reset should miss")
	}
}

// overlapping lays out a column whose second child overlaps the first:
// a covers y 0-50 and b covers y 20-70.
func overlapping(t *testing.T) (lc *LayoutContext, root, a, b *Component) {
	t.Helper()
	a = New(nil).Named("a").Style(Height(Pt(50)))
	b = New(nil).Named("b").Style(Height(Pt(50)), MarginOn(SideTop, Pt(-30)))
	root = New(nil).Named("root").Style(Width(Pt(100)), Height(Pt(100))).Child(a, b)

	lc = NewLayoutContext()
	if err := lc.UpdateLayout(root, Size{Width: 100, Height: 100}); err != nil {
		t.Fatal(err)
	}
	if got := lc.LayoutOf(b); got != NewRect(0, 20, 100, 50) {
		t.Fatalf("b = %+v, want {0 20 100 50}", got)
	}
	return lc, root, a, b
}

func TestFindNodeAt(t *testing.T) {
	lc, root, a, b := overlapping(t)

	type tc struct {
		point    WorldPoint
		expected *Component
	}

	tests := map[string]tc{
		"only a":                {point: WorldPoint{X: 10, Y: 10}, expected: a},
		"overlap first wins":    {point: WorldPoint{X: 10, Y: 30}, expected: a},
		"only b":                {point: WorldPoint{X: 10, Y: 60}, expected: b},
		"root below children":   {point: WorldPoint{X: 10, Y: 90}, expected: root},
		"right edge is outside": {point: WorldPoint{X: 100, Y: 10}, expected: nil},
		"negative":              {point: WorldPoint{X: -1, Y: 10}, expected: nil},
		"far outside":           {point: WorldPoint{X: 500, Y: 500}, expected: nil},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := lc.FindNodeAt(tt.point, root); got != tt.expected {
				t.Errorf("FindNodeAt(%v) = %v, want %v", tt.point, got, tt.expected)
			}
		})
	}
}

func TestFindNodeAt_HitContainsPoint(t *testing.T) {
	root := todoState{Todos: []string{"a", "b"}}.Build()
	lc := NewLayoutContext()
	if err := lc.UpdateLayout(root, Size{Width: 64, Height: 80}); err != nil {
		t.Fatal(err)
	}

	for y := float32(0); y < 80; y += 3 {
		for x := float32(0); x < 64; x += 5 {
			p := WorldPoint{X: x, Y: y}
			hit := lc.FindNodeAt(p, root)
			if hit == nil {
				t.Fatalf("FindNodeAt(%v) = nil inside root", p)
			}
			if !lc.LayoutOf(hit).Contains(p.X, p.Y) {
				t.Errorf("FindNodeAt(%v) = %s whose rect %+v misses the point", p, hit, lc.LayoutOf(hit))
			}
		}
	}
}

func TestPathAt(t *testing.T) {
	inner := New(nil).Named("inner").Style(Width(Pt(10)), Height(Pt(10)))
	mid := New(nil).Named("mid").Style(Padding(Pt(5))).Child(inner)
	root := New(nil).Named("root").Style(AlignItems(AlignStart)).Child(mid)

	lc := NewLayoutContext()
	if err := lc.UpdateLayout(root, Size{Width: 50, Height: 50}); err != nil {
		t.Fatal(err)
	}

	path := lc.PathAt(WorldPoint{X: 7, Y: 7}, root)
	var names []string
	for _, c := range path {
		name, _ := c.Name()
		names = append(names, name)
	}
	if strings.Join(names, "/") != "root/mid/inner" {
		t.Errorf("PathAt = %v, want root/mid/inner", names)
	}
	if lc.PathAt(WorldPoint{X: 60, Y: 60}, root) != nil {
		t.Error("PathAt outside root should be nil")
	}
}
