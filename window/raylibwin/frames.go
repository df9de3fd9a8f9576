package raylibwin

import (
	"sync"

	"github.com/grindlemire/go-weld"
)

// frameSlot hands frames from the driver goroutine to the draw loop.
// The draw loop keeps showing the presented frame until a newer one is
// submitted; a submitted frame is acknowledged exactly once.
type frameSlot struct {
	mu        sync.Mutex
	pending   *weld.Frame
	acked     bool
	presented *weld.Frame
}

func (s *frameSlot) submit(f weld.Frame) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = &f
	s.acked = false
}

// next returns the frame to draw this tick and, when it is a newly
// submitted frame, its epoch to acknowledge.
func (s *frameSlot) next() (frame *weld.Frame, ack weld.Epoch, needAck bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending != nil {
		needAck = !s.acked
		s.acked = true
		return s.pending, s.pending.Epoch, needAck
	}
	return s.presented, 0, false
}

// present promotes the acknowledged frame.
func (s *frameSlot) present() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending != nil && s.acked {
		s.presented = s.pending
		s.pending = nil
	}
}
