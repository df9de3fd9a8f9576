package widgets

import "github.com/grindlemire/go-weld"

// Caption is the text shown by labels and buttons.
type Caption struct {
	Text string
}

// Fill is the background colour of panels and buttons.
type Fill struct {
	Color weld.RGBA
}

// Ink is the text colour of labels and buttons.
type Ink struct {
	Color weld.RGBA
}

// Kit builds widgets with a theme.
type Kit struct {
	Theme Theme
}

// Default builds widgets with LightTheme.
var Default = Kit{Theme: LightTheme()}

// Panel returns a filled container.
func (k Kit) Panel() *weld.Component {
	c := weld.New(panelRenderer{})
	weld.Put(c, Fill{Color: k.Theme.Panel})
	return c
}

// Label returns a component that draws text inside its content box.
func (k Kit) Label(text string) *weld.Component {
	c := weld.New(labelRenderer{})
	weld.Put(c, Caption{Text: text})
	weld.Put(c, Ink{Color: k.Theme.Text})
	return c
}

// Button returns a filled, padded component with a caption. Attach a
// weld.Pressed or weld.Released handler with On.
func (k Kit) Button(caption string) *weld.Component {
	c := weld.New(buttonRenderer{}).Style(weld.Padding(weld.Pt(k.Theme.Inset)))
	weld.Put(c, Caption{Text: caption})
	weld.Put(c, Fill{Color: k.Theme.Button})
	weld.Put(c, Ink{Color: k.Theme.ButtonText})
	return c
}

// Splitter places first and second side by side along dir, sharing the
// space equally, with a divider of the theme's gutter between them.
func (k Kit) Splitter(dir weld.Direction, first, second *weld.Component) *weld.Component {
	divider := weld.New(panelRenderer{}).Named("divider")
	weld.Put(divider, Fill{Color: k.Theme.Divider})
	if dir == weld.Row || dir == weld.RowReverse {
		divider.Style(weld.Width(weld.Pt(k.Theme.Gutter)), weld.FlexShrink(0))
	} else {
		divider.Style(weld.Height(weld.Pt(k.Theme.Gutter)), weld.FlexShrink(0))
	}

	return weld.New(splitterRenderer{}).
		Style(weld.FlexDirection(dir)).
		Child(
			weld.New(nil).Named("first").Style(weld.Flex(1)).Child(first),
			divider,
			weld.New(nil).Named("second").Style(weld.Flex(1)).Child(second),
		)
}

// Panel returns a filled container with the default theme.
func Panel() *weld.Component { return Default.Panel() }

// Label returns a text component with the default theme.
func Label(text string) *weld.Component { return Default.Label(text) }

// Button returns a button with the default theme.
func Button(caption string) *weld.Component { return Default.Button(caption) }

// Splitter returns a two-pane splitter with the default theme.
func Splitter(dir weld.Direction, first, second *weld.Component) *weld.Component {
	return Default.Splitter(dir, first, second)
}

// CaptionOf returns the caption of a label or button.
func CaptionOf(c *weld.Component) (string, bool) {
	caption, ok := weld.Get[Caption](c)
	return caption.Text, ok
}

// WithFill overrides the component's fill colour.
func WithFill(c *weld.Component, color weld.RGBA) *weld.Component {
	return weld.Put(c, Fill{Color: color})
}

// WithInk overrides the component's text colour.
func WithInk(c *weld.Component, color weld.RGBA) *weld.Component {
	return weld.Put(c, Ink{Color: color})
}
