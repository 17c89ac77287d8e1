package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"quill/internal/types"
)

// AppStateStore persists the little UI state quill keeps between runs: the
// theme preference and the note that was open on exit. Note content never
// touches the local disk; the server owns it.
type AppStateStore interface {
	Load(ctx context.Context) (*types.AppState, error)
	Save(ctx context.Context, state *types.AppState) error
}

type FileAppStateStore struct {
	path string
	mu   sync.Mutex
}

func NewFileAppStateStore(path string) *FileAppStateStore {
	return &FileAppStateStore{path: path}
}

// Load reads state.json. A first run with no file yet is an empty state,
// not an error; a corrupt file is an error so the caller can warn instead
// of silently forgetting the theme and last open note.
func (s *FileAppStateStore) Load(ctx context.Context) (*types.AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return &types.AppState{}, nil
	}
	if err != nil {
		return nil, err
	}
	state := &types.AppState{}
	if err := json.Unmarshal(data, state); err != nil {
		return nil, fmt.Errorf("state file %s: %w", s.path, err)
	}
	return state, nil
}

// Save replaces state.json through a temp file and rename so an interrupted
// save keeps the previous theme and last-note id intact.
func (s *FileAppStateStore) Save(ctx context.Context, state *types.AppState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if state == nil {
		return errors.New("state is required")
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".state-*.json")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}
