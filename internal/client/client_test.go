package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quill/internal/logging"
	"quill/internal/types"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	c := NewWithBaseURL(server.URL, StaticTokenSource("test-token"), 2*time.Second, logging.Nop())
	return c, server
}

func TestListNotesSendsBearerToken(t *testing.T) {
	var gotAuth string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if r.URL.Path != "/notes/all" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode([]*types.Note{{ID: "n1", Title: "First"}})
	}))

	notes, err := c.ListNotes(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if gotAuth != "Bearer test-token" {
		t.Fatalf("unexpected auth header: %q", gotAuth)
	}
	if len(notes) != 1 || notes[0].ID != "n1" {
		t.Fatalf("unexpected notes: %#v", notes)
	}
}

func TestGetPublicNoteSkipsAuth(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Errorf("public endpoint must not carry auth, got %q", r.Header.Get("Authorization"))
		}
		if r.URL.Path != "/notes/public/abc" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(&types.Note{ID: "n1", Public: true, PublicID: "abc"})
	}))

	note, err := c.GetPublicNote(context.Background(), "abc")
	if err != nil {
		t.Fatalf("get public: %v", err)
	}
	if note.PublicID != "abc" {
		t.Fatalf("unexpected note: %#v", note)
	}
}

func TestUpsertNoteRoundTrip(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/notes/upsert" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var note types.Note
		if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
			t.Errorf("decode body: %v", err)
		}
		note.UpdatedAt = time.Now().UTC()
		_ = json.NewEncoder(w).Encode(&note)
	}))

	saved, err := c.UpsertNote(context.Background(), &types.Note{ID: "n1", Title: "Plan", Content: "<p>hi</p>"})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if saved.Title != "Plan" || saved.Content != "<p>hi</p>" {
		t.Fatalf("round trip lost fields: %#v", saved)
	}
	if saved.UpdatedAt.IsZero() {
		t.Fatalf("expected server timestamp")
	}
}

func TestUpsertNoteRequiresID(t *testing.T) {
	c := NewWithBaseURL("http://127.0.0.1:0", StaticTokenSource("t"), time.Second, logging.Nop())
	if _, err := c.UpsertNote(context.Background(), &types.Note{Title: "no id"}); err == nil {
		t.Fatalf("expected error for missing id")
	}
}

func TestAPIErrorDecoded(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"database unavailable"}`))
	}))

	_, err := c.ListNotes(context.Background())
	if err == nil {
		t.Fatalf("expected error")
	}
	apiErr := AsAPIError(err)
	if apiErr == nil {
		t.Fatalf("expected APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusInternalServerError || apiErr.Message != "database unavailable" {
		t.Fatalf("unexpected api error: %#v", apiErr)
	}
}

func TestDeleteNoteChecksAcknowledgement(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/notes/n1" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))

	if err := c.DeleteNote(context.Background(), "n1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
}

func TestDeleteNoteUnacknowledgedIsError(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":false}`))
	}))

	if err := c.DeleteNote(context.Background(), "n1"); err == nil {
		t.Fatalf("expected error when the server does not acknowledge the delete")
	}
}

func TestIsNotFound(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"no such note"}`))
	}))

	err := c.DeleteNote(context.Background(), "missing")
	if !IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestTokenSourceFailureBlocksRequest(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()
	c := NewWithBaseURL(server.URL, StaticTokenSource(""), time.Second, logging.Nop())

	if _, err := c.ListNotes(context.Background()); err == nil {
		t.Fatalf("expected token error")
	}
	if requests != 0 {
		t.Fatalf("request must not be sent without a token")
	}
}
