package notes

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"quill/internal/client"
	"quill/internal/logging"
	"quill/internal/types"
)

type fakeAPI struct {
	notes     map[string]*types.Note
	listErr   error
	getErr    error
	upsertErr error
	deleteErr error
	upserts   int
	deletes   int
}

func newFakeAPI(notes ...*types.Note) *fakeAPI {
	api := &fakeAPI{notes: map[string]*types.Note{}}
	for _, note := range notes {
		api.notes[note.ID] = note
	}
	return api
}

func (f *fakeAPI) ListNotes(ctx context.Context) ([]*types.Note, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*types.Note, 0, len(f.notes))
	for _, note := range f.notes {
		out = append(out, note)
	}
	return out, nil
}

func (f *fakeAPI) GetNote(ctx context.Context, id string) (*types.Note, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	note, ok := f.notes[id]
	if !ok {
		return nil, &client.APIError{StatusCode: http.StatusNotFound, Message: "no such note"}
	}
	return note, nil
}

func (f *fakeAPI) UpsertNote(ctx context.Context, note *types.Note) (*types.Note, error) {
	f.upserts++
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	saved := types.CloneNote(note)
	saved.UpdatedAt = time.Now().UTC()
	f.notes[saved.ID] = saved
	return saved, nil
}

func (f *fakeAPI) DeleteNote(ctx context.Context, id string) error {
	f.deletes++
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.notes[id]; !ok {
		return &client.APIError{StatusCode: http.StatusNotFound, Message: "no such note"}
	}
	delete(f.notes, id)
	return nil
}

func TestFetchAllReplacesCollection(t *testing.T) {
	api := newFakeAPI(&types.Note{ID: "n1", Title: "one"}, &types.Note{ID: "n2", Title: "two"})
	store := NewStore(api, logging.Nop())

	if err := store.FetchAll(context.Background()); err != nil {
		t.Fatalf("fetch all: %v", err)
	}
	if len(store.Notes()) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(store.Notes()))
	}
	if store.Err() != "" {
		t.Fatalf("unexpected error string: %q", store.Err())
	}
}

func TestFetchAllFailureKeepsPreviousNotes(t *testing.T) {
	api := newFakeAPI(&types.Note{ID: "n1"})
	store := NewStore(api, logging.Nop())
	if err := store.FetchAll(context.Background()); err != nil {
		t.Fatalf("initial fetch: %v", err)
	}

	api.listErr = &client.APIError{StatusCode: http.StatusInternalServerError, Message: "boom"}
	if err := store.FetchAll(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
	if len(store.Notes()) != 1 {
		t.Fatalf("previous collection must survive a failed refresh, got %d notes", len(store.Notes()))
	}
	if store.Err() == "" {
		t.Fatalf("expected error string to be recorded")
	}
	if store.Loading() {
		t.Fatalf("loading flag must be reset after failure")
	}
}

func TestUpsertRoundTrip(t *testing.T) {
	api := newFakeAPI()
	store := NewStore(api, logging.Nop())

	saved, err := store.Upsert(context.Background(), &types.Note{ID: "n1", Title: "draft", Content: "<p>x</p>"})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	got, err := store.FetchOne(context.Background(), saved.ID)
	if err != nil {
		t.Fatalf("fetch one: %v", err)
	}
	if got.Title != "draft" || got.Content != "<p>x</p>" {
		t.Fatalf("round trip mismatch: %#v", got)
	}
}

func TestUpsertInsertsNewNoteIntoCollection(t *testing.T) {
	api := newFakeAPI()
	store := NewStore(api, logging.Nop())

	if _, err := store.Upsert(context.Background(), &types.Note{ID: "fresh", Title: "new"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if _, ok := store.Get("fresh"); !ok {
		t.Fatalf("first save of a new note must appear in the collection")
	}
}

func TestUpsertRefreshesCurrentNote(t *testing.T) {
	api := newFakeAPI(&types.Note{ID: "n1", Title: "old"})
	store := NewStore(api, logging.Nop())
	if err := store.FetchAll(context.Background()); err != nil {
		t.Fatalf("fetch all: %v", err)
	}
	store.SetCurrent("n1")

	if _, err := store.Upsert(context.Background(), &types.Note{ID: "n1", Title: "new"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	current := store.Current()
	if current == nil || current.Title != "new" {
		t.Fatalf("current note not refreshed: %#v", current)
	}
}

func TestUpsertFailureRecordsError(t *testing.T) {
	api := newFakeAPI()
	api.upsertErr = errors.New("connection reset")
	store := NewStore(api, logging.Nop())

	if _, err := store.Upsert(context.Background(), &types.Note{ID: "n1"}); err == nil {
		t.Fatalf("expected error")
	}
	if store.Err() == "" {
		t.Fatalf("expected recorded error string")
	}
}

func TestDeleteClearsCurrentAndIsIdempotent(t *testing.T) {
	api := newFakeAPI(&types.Note{ID: "n1"})
	store := NewStore(api, logging.Nop())
	if err := store.FetchAll(context.Background()); err != nil {
		t.Fatalf("fetch all: %v", err)
	}
	store.SetCurrent("n1")

	if err := store.Delete(context.Background(), "n1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if store.Current() != nil {
		t.Fatalf("current note must be cleared after deleting it")
	}
	if len(store.Notes()) != 0 {
		t.Fatalf("expected empty collection")
	}

	// Second delete hits a server 404 and must stay a local no-op success.
	if err := store.Delete(context.Background(), "n1"); err != nil {
		t.Fatalf("second delete must not fail: %v", err)
	}
	if len(store.Notes()) != 0 {
		t.Fatalf("collection changed by idempotent delete")
	}
}

func TestGetMissingIDIsNotAnError(t *testing.T) {
	store := NewStore(newFakeAPI(), logging.Nop())
	if _, ok := store.Get("freshly-minted"); ok {
		t.Fatalf("expected miss for unknown id")
	}
	if store.Err() != "" {
		t.Fatalf("local miss must not record an error")
	}
}

func TestSnapshotsAreClones(t *testing.T) {
	api := newFakeAPI(&types.Note{ID: "n1", Title: "original"})
	store := NewStore(api, logging.Nop())
	if err := store.FetchAll(context.Background()); err != nil {
		t.Fatalf("fetch all: %v", err)
	}

	snapshot := store.Notes()
	snapshot[0].Title = "mutated"
	again, _ := store.Get("n1")
	if again.Title != "original" {
		t.Fatalf("store state leaked through snapshot: %q", again.Title)
	}
}
