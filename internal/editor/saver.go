package editor

import (
	"context"
	"sync"
	"time"

	"quill/internal/types"
)

const saveRequestTimeout = 15 * time.Second

// Upserter persists one note; satisfied by the notes collection store.
type Upserter interface {
	Upsert(ctx context.Context, note *types.Note) (*types.Note, error)
}

// Saver coalesces rapid edits into infrequent saves: a trailing-edge
// debounce over a fixed quiet interval. Each Schedule call within the
// interval replaces the pending payload and restarts the timer, so the last
// state before a quiet period is what gets sent. The saver owns exactly one
// timer; Close releases it and drops any not-yet-fired save outright. It
// does not serialize in-flight requests: overlapping saves from successive
// bursts are possible and the server's updated_at ordering is the tie-break.
type Saver struct {
	mu       sync.Mutex
	upserter Upserter
	interval time.Duration
	timer    *time.Timer
	pending  *types.Note
	inflight int
	closed   bool
	onDone   func(saved *types.Note, err error)
}

func NewSaver(upserter Upserter, interval time.Duration) *Saver {
	if interval <= 0 {
		interval = time.Second
	}
	return &Saver{upserter: upserter, interval: interval}
}

// OnDone registers a callback invoked after each fired save resolves,
// success or failure. Called from the save goroutine.
func (s *Saver) OnDone(fn func(saved *types.Note, err error)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onDone = fn
}

// Schedule queues the note for saving after the quiet interval.
func (s *Saver) Schedule(note *types.Note) {
	if note == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.pending = types.CloneNote(note)
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.interval, s.fire)
}

// Cancel drops the pending (not-yet-fired) save. Edits inside the last
// debounce window before a cancel are lost; that is the documented tradeoff
// of switching notes without waiting out the quiet interval.
func (s *Saver) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked()
}

// Saving reports whether any fired save is still waiting on its response.
func (s *Saver) Saving() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inflight > 0
}

// Close cancels the pending save and rejects further scheduling. In-flight
// requests are left to resolve.
func (s *Saver) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked()
	s.closed = true
}

func (s *Saver) cancelLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.pending = nil
}

func (s *Saver) fire() {
	s.mu.Lock()
	note := s.pending
	s.pending = nil
	s.timer = nil
	if note == nil || s.closed {
		s.mu.Unlock()
		return
	}
	s.inflight++
	done := s.onDone
	s.mu.Unlock()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), saveRequestTimeout)
		defer cancel()
		saved, err := s.upserter.Upsert(ctx, note)

		s.mu.Lock()
		s.inflight--
		s.mu.Unlock()
		if done != nil {
			done(saved, err)
		}
	}()
}
