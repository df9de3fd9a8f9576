// Package weld is a retained-mode GUI toolkit built around a
// state → view → event → state loop.
//
// An application supplies a State whose Build method returns a tree of
// Components. Each Component carries flexbox styles, a Renderer that emits
// display-list primitives, and typed handlers registered with Handle. The
// App driver lays the tree out, hit-tests pointer input against it,
// invokes the struck component's handler to obtain a new state, and
// rebuilds the tree from that state before submitting the next Frame to a
// Window.
//
//	type counter struct{ n int }
//
//	func (c counter) Build() *weld.Component {
//		return weld.New(nil).Style(weld.Width(weld.Percent(100))).Child(
//			widgets.Button(fmt.Sprint(c.n)).On(
//				weld.Handle(func(c counter, _ weld.Pressed) (counter, error) {
//					return counter{n: c.n + 1}, nil
//				}),
//			),
//		)
//	}
package weld
