package window

import (
	"errors"
	"time"

	"github.com/ushitora-anqou/aqpix/config"
	"github.com/ushitora-anqou/aqpix/frame"
)

var errFakePresent = errors.New("fake present failure")

type fakeHandle struct {
	width, height int
	redraws       int
	closed        bool
}

func (h *fakeHandle) Size() (int, int) {
	return h.width, h.height
}

func (h *fakeHandle) RequestRedraw() {
	h.redraws++
}

func (h *fakeHandle) Close() error {
	h.closed = true
	return nil
}

type fakePresenter struct {
	failAt    int // fail the n-th presentation (1-based); zero never fails
	presented int
	last      []byte
}

func (p *fakePresenter) Present(b *frame.Buffer) error {
	if p.failAt > 0 && p.presented+1 == p.failAt {
		return errFakePresent
	}
	p.presented++
	p.last = b.Bytes()
	return nil
}

// fakeSource replays batches of events and, once they are exhausted, emits
// CloseRequested.
type fakeSource struct {
	batches  [][]Event
	timeouts []time.Duration
}

func (s *fakeSource) PollEvents(timeout time.Duration) ([]Event, error) {
	s.timeouts = append(s.timeouts, timeout)
	if len(s.batches) == 0 {
		return []Event{{Kind: CloseRequested}}, nil
	}
	batch := s.batches[0]
	s.batches = s.batches[1:]
	return batch, nil
}

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Window = config.Size{Width: 8, Height: 4}
	cfg.Buffer = config.Size{Width: 4, Height: 2}
	return cfg
}
