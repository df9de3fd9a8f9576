package weld

// Window is the windowing and rendering collaborator. It produces events
// and consumes frames. Submit hands over a frame for drawing; the window
// answers with a RenderCompleteEvent when the frame can be swapped, after
// which the driver calls Present.
type Window interface {
	Events() <-chan Event
	Size() Size
	Submit(frame Frame) error
	Present() error
}

// TitleSetter is implemented by windows that can show a title.
type TitleSetter interface {
	SetTitle(title string)
}

// Epoch numbers frames. It wraps at 2^32.
type Epoch uint32

// Next returns the following epoch.
func (e Epoch) Next() Epoch {
	return e + 1
}

// Frame is one submission to a Window.
type Frame struct {
	Size       Size
	Epoch      Epoch
	Background RGBA
	List       DisplayList
}
