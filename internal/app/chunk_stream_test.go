package app

import (
	"testing"

	"quill/internal/editor"
)

func TestChunkStreamConsumeTickAppliesAndFinishes(t *testing.T) {
	doc := editor.NewTextDocument("")
	doc.Select(0, 0)
	inserter := editor.NewInserter(doc, editor.InsertReplace)

	stream := NewChunkStreamController(10)
	ch := make(chan string, 4)
	stream.Start(ch, nil, inserter)

	ch <- "line one\nli"
	ch <- "ne two"

	changed, done := stream.ConsumeTick()
	if !changed || done {
		t.Fatalf("expected changed=true done=false, got %v %v", changed, done)
	}
	if doc.Text() != "line one\nline two" {
		t.Fatalf("raw chunks must land verbatim mid-stream: %q", doc.Text())
	}

	close(ch)
	_, done = stream.ConsumeTick()
	if !done {
		t.Fatalf("expected done=true when channel closes")
	}
	if doc.Text() != "line one"+editor.ParagraphBreak+"line two" {
		t.Fatalf("expected normalized paragraphs after close: %q", doc.Text())
	}
	if stream.Reply() != "line one\nline two" {
		t.Fatalf("unexpected reply capture: %q", stream.Reply())
	}
	if stream.Active() {
		t.Fatalf("expected inactive stream after close")
	}
}

func TestChunkStreamResetCancelsAndAborts(t *testing.T) {
	doc := editor.NewTextDocument("")
	doc.Select(0, 0)
	inserter := editor.NewInserter(doc, editor.InsertReplace)

	cancelled := false
	stream := NewChunkStreamController(10)
	ch := make(chan string, 1)
	stream.Start(ch, func() { cancelled = true }, inserter)

	ch <- "partial\ntext"
	stream.ConsumeTick()
	stream.Reset()

	if !cancelled {
		t.Fatalf("expected cancel to be invoked")
	}
	if stream.Active() {
		t.Fatalf("expected inactive stream after reset")
	}
	if doc.Text() != "partial\ntext" {
		t.Fatalf("aborted insertion must stay raw: %q", doc.Text())
	}
}

func TestChunkStreamRespectsPerTickBudget(t *testing.T) {
	doc := editor.NewTextDocument("")
	doc.Select(0, 0)
	inserter := editor.NewInserter(doc, editor.InsertReplace)

	stream := NewChunkStreamController(2)
	ch := make(chan string, 4)
	stream.Start(ch, nil, inserter)

	ch <- "a"
	ch <- "b"
	ch <- "c"

	stream.ConsumeTick()
	if doc.Text() != "ab" {
		t.Fatalf("expected two chunks per tick, got %q", doc.Text())
	}
	stream.ConsumeTick()
	if doc.Text() != "abc" {
		t.Fatalf("expected remaining chunk on next tick, got %q", doc.Text())
	}
}
