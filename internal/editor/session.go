package editor

import (
	"quill/internal/types"
)

// NoteSource is the local lookup the session loads from; satisfied by the
// notes collection store. A miss is not an error: note ids are minted
// client-side before any server record exists.
type NoteSource interface {
	Get(id string) (*types.Note, bool)
}

// Session binds one note's title and content to a live document for exactly
// one route-identified note at a time. Edits flow through the debounced
// saver; loading a different note drops whatever the saver had pending for
// the previous one.
type Session struct {
	source NoteSource
	saver  *Saver
	doc    Document
	userID string
	noteID string
	title  string
	loaded bool
}

func NewSession(source NoteSource, saver *Saver, doc Document) *Session {
	return &Session{
		source: source,
		saver:  saver,
		doc:    doc,
	}
}

// LoadNote binds the session to the given note id. A known note replaces
// the document content wholesale; an unknown id starts a fresh note titled
// "Untitled" with empty content. Any pending save for the previously loaded
// note is cancelled, not flushed.
func (s *Session) LoadNote(id string) {
	s.saver.Cancel()
	note, ok := s.source.Get(id)
	if ok {
		s.title = note.DisplayTitle()
		s.userID = note.UserID
		s.doc.SetText(note.Content)
	} else {
		// Fresh note: no owner yet. The server assigns ownership from the
		// bearer token on the first upsert.
		s.title = types.UntitledTitle
		s.userID = ""
		s.doc.SetText("")
	}
	s.noteID = id
	s.loaded = true
}

// ContentChanged is invoked by the document engine on every edit event.
func (s *Session) ContentChanged(content string) {
	if !s.loaded {
		return
	}
	s.saver.Schedule(s.snapshot(content))
}

// TitleChanged updates the local title immediately so the input reflects
// keystrokes without waiting on persistence, then schedules a save.
func (s *Session) TitleChanged(title string) {
	if !s.loaded {
		return
	}
	s.title = title
	s.saver.Schedule(s.snapshot(s.doc.Text()))
}

func (s *Session) snapshot(content string) *types.Note {
	return &types.Note{
		ID:      s.noteID,
		UserID:  s.userID,
		Title:   s.title,
		Content: content,
	}
}

func (s *Session) NoteID() string {
	return s.noteID
}

func (s *Session) Title() string {
	return s.title
}

func (s *Session) Loaded() bool {
	return s.loaded
}

func (s *Session) Document() Document {
	return s.doc
}

func (s *Session) Saving() bool {
	return s.saver.Saving()
}

// Close tears the session down, dropping any pending save.
func (s *Session) Close() {
	s.saver.Close()
	s.loaded = false
}
