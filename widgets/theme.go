package widgets

import "github.com/grindlemire/go-weld"

// Theme holds the colours and metrics widgets draw with.
type Theme struct {
	Background weld.RGBA
	Panel      weld.RGBA
	Text       weld.RGBA
	Button     weld.RGBA
	ButtonText weld.RGBA
	Divider    weld.RGBA

	// Gutter is the splitter divider thickness.
	Gutter float32
	// Inset is the padding between a button's edge and its caption.
	Inset float32
}

// LightTheme is the default theme.
func LightTheme() Theme {
	return Theme{
		Background: weld.White,
		Panel:      weld.MustHex("#f3f3f3"),
		Text:       weld.MustHex("#1e1e1e"),
		Button:     weld.MustHex("#2472c8"),
		ButtonText: weld.White,
		Divider:    weld.MustHex("#c8c8c8"),
		Gutter:     2,
		Inset:      4,
	}
}

// DarkTheme suits dark backgrounds.
func DarkTheme() Theme {
	return Theme{
		Background: weld.MustHex("#1e1e1e"),
		Panel:      weld.MustHex("#252526"),
		Text:       weld.MustHex("#d4d4d4"),
		Button:     weld.MustHex("#0e639c"),
		ButtonText: weld.White,
		Divider:    weld.MustHex("#3c3c3c"),
		Gutter:     1,
		Inset:      1,
	}
}
