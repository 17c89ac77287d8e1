package types

// AppState is the locally persisted UI state. Note content is never stored
// locally; the server is the source of truth for notes.
type AppState struct {
	Theme      string `json:"theme,omitempty"`
	LastNoteID string `json:"last_note_id,omitempty"`
}
