package app

import (
	"context"
	"sync"
	"testing"
	"time"

	"quill/internal/editor"
	"quill/internal/store"
	"quill/internal/types"
)

func newTestInserter(m *Model) *editor.Inserter {
	return editor.NewInserter(m.doc, m.promptMode)
}

type fakeNoteStore struct {
	mu      sync.Mutex
	notes   []*types.Note
	err     string
	upserts int
	deletes []string
}

func (f *fakeNoteStore) FetchAll(ctx context.Context) error { return nil }

func (f *fakeNoteStore) FetchOne(ctx context.Context, id string) (*types.Note, error) {
	note, _ := f.Get(id)
	return note, nil
}

func (f *fakeNoteStore) Upsert(ctx context.Context, note *types.Note) (*types.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserts++
	for i, existing := range f.notes {
		if existing.ID == note.ID {
			f.notes[i] = types.CloneNote(note)
			return types.CloneNote(note), nil
		}
	}
	f.notes = append(f.notes, types.CloneNote(note))
	return types.CloneNote(note), nil
}

func (f *fakeNoteStore) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, id)
	filtered := f.notes[:0]
	for _, note := range f.notes {
		if note.ID != id {
			filtered = append(filtered, note)
		}
	}
	f.notes = filtered
	return nil
}

func (f *fakeNoteStore) Notes() []*types.Note {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*types.Note, len(f.notes))
	copy(out, f.notes)
	return out
}

func (f *fakeNoteStore) Get(id string) (*types.Note, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, note := range f.notes {
		if note.ID == id {
			return types.CloneNote(note), true
		}
	}
	return nil, false
}

func (f *fakeNoteStore) SetCurrent(id string) {}
func (f *fakeNoteStore) Err() string          { return f.err }
func (f *fakeNoteStore) Loading() bool        { return false }

func newTestModel(t *testing.T, notes *fakeNoteStore) *Model {
	t.Helper()
	if notes == nil {
		notes = &fakeNoteStore{}
	}
	states := store.NewFileAppStateStore(t.TempDir() + "/state.json")
	m := NewModel(Options{
		Notes:            notes,
		States:           states,
		DebounceInterval: 20 * time.Millisecond,
	})
	return &m
}

func TestOpenNoteLoadsSessionAndRemembersLastNote(t *testing.T) {
	notes := &fakeNoteStore{notes: []*types.Note{
		{ID: "n1", Title: "Groceries", Content: "milk"},
	}}
	m := newTestModel(t, notes)

	cmd := m.openNote("n1")
	if cmd == nil {
		t.Fatalf("expected a state save command")
	}
	if m.mode != uiModeEditor {
		t.Fatalf("expected editor mode, got %v", m.mode)
	}
	if m.titleInput.Value() != "Groceries" {
		t.Fatalf("unexpected title: %q", m.titleInput.Value())
	}
	if m.body.Value() != "milk" {
		t.Fatalf("unexpected body: %q", m.body.Value())
	}
	if m.appState.LastNoteID != "n1" {
		t.Fatalf("expected last note to be remembered, got %q", m.appState.LastNoteID)
	}
}

func TestOpenUnknownNoteStartsFresh(t *testing.T) {
	m := newTestModel(t, nil)

	m.openNote("brand-new")
	if m.titleInput.Value() != types.UntitledTitle {
		t.Fatalf("unexpected title: %q", m.titleInput.Value())
	}
	if m.body.Value() != "" {
		t.Fatalf("expected empty body, got %q", m.body.Value())
	}
}

func TestStartupReopensLastNoteFromCollection(t *testing.T) {
	notes := &fakeNoteStore{notes: []*types.Note{
		{ID: "n1", Title: "Groceries", Content: "milk"},
	}}
	m := newTestModel(t, notes)

	m.Update(appStateMsg{state: &types.AppState{Theme: "dark", LastNoteID: "n1"}})
	if m.mode != uiModeEditor {
		t.Fatalf("expected last note reopened, mode %v", m.mode)
	}
	if m.session.NoteID() != "n1" {
		t.Fatalf("unexpected session note: %q", m.session.NoteID())
	}
	if m.body.Value() != "milk" {
		t.Fatalf("unexpected body: %q", m.body.Value())
	}
}

func TestStartupDeepLinksLastNoteOutsideCollection(t *testing.T) {
	notes := &fakeNoteStore{}
	m := newTestModel(t, notes)

	_, cmd := m.Update(appStateMsg{state: &types.AppState{LastNoteID: "n7"}})
	if m.mode != uiModeBrowse {
		t.Fatalf("must fetch before opening, mode %v", m.mode)
	}
	if cmd == nil {
		t.Fatalf("expected a deep-link fetch command")
	}

	notes.notes = append(notes.notes, &types.Note{ID: "n7", Title: "Archived", Content: "old body"})
	fetched, ok := cmd().(noteFetchedMsg)
	if !ok || fetched.err != nil || fetched.note == nil {
		t.Fatalf("unexpected fetch result: %#v", fetched)
	}
	m.Update(fetched)
	if m.mode != uiModeEditor || m.session.NoteID() != "n7" {
		t.Fatalf("expected deep-linked note open, mode %v note %q", m.mode, m.session.NoteID())
	}
	if m.body.Value() != "old body" {
		t.Fatalf("unexpected body: %q", m.body.Value())
	}
}

func TestStartupWithoutLastNoteStaysInBrowse(t *testing.T) {
	m := newTestModel(t, nil)

	_, cmd := m.Update(appStateMsg{state: &types.AppState{Theme: "light"}})
	if m.mode != uiModeBrowse {
		t.Fatalf("expected browse mode, got %v", m.mode)
	}
	if cmd != nil {
		t.Fatalf("no restore command expected without a last note")
	}
}

func TestFinishAssistantRecordsHistory(t *testing.T) {
	m := newTestModel(t, nil)
	m.openNote("n1")

	m.promptText = "summarize"
	m.promptMode = insertModeReplace
	m.doc.Select(0, 0)

	ch := make(chan string, 2)
	ch <- "summary "
	ch <- "text"
	close(ch)
	m.stream.Start(ch, nil, newTestInserter(m))
	m.streaming = true

	for m.stream.Active() {
		m.handleTick(time.Now())
	}

	if m.streaming {
		t.Fatalf("expected streaming to end")
	}
	if len(m.history) != 2 {
		t.Fatalf("expected prompt and reply in history, got %d entries", len(m.history))
	}
	if m.history[0].Role != "user" || m.history[0].Content != "summarize" {
		t.Fatalf("unexpected user turn: %#v", m.history[0])
	}
	if m.history[1].Role != "assistant" || m.history[1].Content != "summary text" {
		t.Fatalf("unexpected assistant turn: %#v", m.history[1])
	}
	if m.body.Value() != "summary text" {
		t.Fatalf("streamed text must land in the editor: %q", m.body.Value())
	}
}

func TestCancelAssistantKeepsInsertedText(t *testing.T) {
	m := newTestModel(t, nil)
	m.openNote("n1")

	m.promptMode = insertModeReplace
	m.doc.Select(0, 0)

	ch := make(chan string, 1)
	ch <- "partial"
	m.stream.Start(ch, func() {}, newTestInserter(m))
	m.streaming = true
	m.handleTick(time.Now())

	m.cancelAssistant()
	if m.streaming {
		t.Fatalf("expected streaming cleared")
	}
	if m.body.Value() != "partial" {
		t.Fatalf("inserted text must survive cancellation: %q", m.body.Value())
	}
}
