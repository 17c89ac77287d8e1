package notes

import (
	"context"
	"errors"
	"sync"

	"quill/internal/client"
	"quill/internal/logging"
	"quill/internal/types"
)

// API is the slice of the service client the store needs.
type API interface {
	ListNotes(ctx context.Context) ([]*types.Note, error)
	GetNote(ctx context.Context, id string) (*types.Note, error)
	UpsertNote(ctx context.Context, note *types.Note) (*types.Note, error)
	DeleteNote(ctx context.Context, id string) error
}

// Store is the process-wide cache of the user's notes. It is constructed
// once at startup and passed to whatever needs it; every mutation goes
// through its own operations. Failures never panic out of the store: each
// operation records a human-readable error string and resets the loading
// flag, and also returns the error for callers that want it directly.
type Store struct {
	mu      sync.Mutex
	api     API
	log     logging.Logger
	notes   []*types.Note
	current *types.Note
	err     string
	loading bool
}

func NewStore(api API, log logging.Logger) *Store {
	if log == nil {
		log = logging.Nop()
	}
	return &Store{api: api, log: log}
}

// FetchAll replaces the whole collection with the server's current set. On
// failure the previous collection is left intact.
func (s *Store) FetchAll(ctx context.Context) error {
	s.setLoading(true)
	fetched, err := s.api.ListNotes(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = "failed to load notes: " + err.Error()
		s.log.Warn("fetch all notes", logging.F("err", err))
		return err
	}
	notes := make([]*types.Note, 0, len(fetched))
	for _, note := range fetched {
		if note == nil {
			continue
		}
		notes = append(notes, types.CloneNote(note))
	}
	s.notes = notes
	s.err = ""
	return nil
}

// FetchOne fetches a single note by id, for deep links to notes not yet in
// the collection. The fetched note becomes the current note.
func (s *Store) FetchOne(ctx context.Context, id string) (*types.Note, error) {
	s.setLoading(true)
	note, err := s.api.GetNote(ctx, id)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = "failed to load note: " + err.Error()
		s.log.Warn("fetch note", logging.F("id", id), logging.F("err", err))
		return nil, err
	}
	s.mergeLocked(note)
	s.current = types.CloneNote(note)
	s.err = ""
	return types.CloneNote(note), nil
}

// Upsert persists the note and reconciles the local collection with the
// server's saved copy: the matching entry is replaced by id, or appended
// when the id was not present yet (first save of a new note). The last
// response to resolve wins; the server's updated_at ordering is the record
// of truth.
func (s *Store) Upsert(ctx context.Context, note *types.Note) (*types.Note, error) {
	if note == nil {
		return nil, errors.New("note is required")
	}
	saved, err := s.api.UpsertNote(ctx, note)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.err = "failed to save note: " + err.Error()
		s.log.Warn("upsert note", logging.F("id", note.ID), logging.F("err", err))
		return nil, err
	}
	s.mergeLocked(saved)
	if s.current != nil && s.current.ID == saved.ID {
		s.current = types.CloneNote(saved)
	}
	s.err = ""
	return types.CloneNote(saved), nil
}

// Delete removes the note on the server and from the collection. A 404 is
// treated as already deleted, so a second delete is a no-op success. If the
// deleted note is the current one, the reference is cleared so dependent UI
// can redirect.
func (s *Store) Delete(ctx context.Context, id string) error {
	err := s.api.DeleteNote(ctx, id)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil && !client.IsNotFound(err) {
		s.err = "failed to delete note: " + err.Error()
		s.log.Warn("delete note", logging.F("id", id), logging.F("err", err))
		return err
	}
	filtered := s.notes[:0]
	for _, note := range s.notes {
		if note.ID == id {
			continue
		}
		filtered = append(filtered, note)
	}
	s.notes = filtered
	if s.current != nil && s.current.ID == id {
		s.current = nil
	}
	s.err = ""
	return nil
}

// Notes returns a snapshot of the collection.
func (s *Store) Notes() []*types.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*types.Note, 0, len(s.notes))
	for _, note := range s.notes {
		out = append(out, types.CloneNote(note))
	}
	return out
}

// Get looks up a note in the local collection only; it never fetches. A
// missing id is not an error: new-note ids are minted client-side before
// any server record exists.
func (s *Store) Get(id string) (*types.Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, note := range s.notes {
		if note.ID == id {
			return types.CloneNote(note), true
		}
	}
	return nil, false
}

func (s *Store) Current() *types.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return types.CloneNote(s.current)
}

func (s *Store) SetCurrent(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, note := range s.notes {
		if note.ID == id {
			s.current = types.CloneNote(note)
			return
		}
	}
	s.current = nil
}

func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Store) setLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = loading
}

func (s *Store) mergeLocked(note *types.Note) {
	clone := types.CloneNote(note)
	for i, existing := range s.notes {
		if existing.ID == clone.ID {
			s.notes[i] = clone
			return
		}
	}
	s.notes = append(s.notes, clone)
}
