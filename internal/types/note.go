package types

import (
	"strings"
	"time"
)

// UntitledTitle is shown for notes whose title has never been set.
const UntitledTitle = "Untitled"

type Note struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id,omitempty"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Public    bool       `json:"public"`
	PublicID  string     `json:"public_id,omitempty"`
	PublicURL string     `json:"public_url,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Deleted   bool       `json:"deleted,omitempty"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

func (n *Note) DisplayTitle() string {
	if n == nil {
		return UntitledTitle
	}
	title := strings.TrimSpace(n.Title)
	if title == "" {
		return UntitledTitle
	}
	return title
}

func CloneNote(note *Note) *Note {
	if note == nil {
		return nil
	}
	clone := *note
	if note.DeletedAt != nil {
		at := *note.DeletedAt
		clone.DeletedAt = &at
	}
	return &clone
}
