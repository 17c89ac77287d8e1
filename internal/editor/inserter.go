package editor

import (
	"context"
	"strings"
	"unicode/utf8"
)

// InsertMode controls where streamed text lands relative to the selection
// captured when the request was issued.
type InsertMode int

const (
	// InsertReplace overwrites the captured selection.
	InsertReplace InsertMode = iota
	// InsertAfter appends following the selection, preceded by a paragraph
	// break; the selected text is preserved.
	InsertAfter
)

// Inserter merges an incrementally-arriving text stream into a live
// document without corrupting existing content. The protocol has two
// phases: raw appends at a tracked offset while chunks arrive, then one
// structural normalization commit at the end. The insertion point advances
// by the cumulative length of inserted text, never by re-reading the live
// cursor, so concurrent cursor movement cannot skew placement.
//
// Only one Inserter may be active per document at a time; callers enforce
// that.
type Inserter struct {
	doc      Document
	insertAt int
	inserted int
	done     bool
}

// NewInserter snapshots the selection and prepares the insertion point. In
// replace mode the selected range is deleted immediately, before any
// streamed content arrives, leaving a single stable insertion point.
func NewInserter(doc Document, mode InsertMode) *Inserter {
	from, to := doc.Selection()
	ins := &Inserter{doc: doc}
	switch mode {
	case InsertReplace:
		doc.Delete(from, to)
		ins.insertAt = from
	default:
		doc.Insert(to, ParagraphBreak)
		ins.insertAt = to + utf8.RuneCountInString(ParagraphBreak)
	}
	return ins
}

// Apply writes one decoded chunk at the tracked offset.
func (ins *Inserter) Apply(chunk string) {
	if ins.done || chunk == "" {
		return
	}
	ins.doc.Insert(ins.insertAt+ins.inserted, chunk)
	ins.inserted += utf8.RuneCountInString(chunk)
}

// Finish runs the normalization pass: the span from the original insertion
// point to the document's current end is split on newlines, empty segments
// are dropped, and the remainder replaces the raw streamed text as proper
// paragraphs in one edit. Paragraph structure cannot be built correctly
// mid-stream, which is why this is a separate phase.
func (ins *Inserter) Finish() {
	if ins.done {
		return
	}
	ins.done = true
	end := ins.doc.Len()
	if end <= ins.insertAt {
		return
	}
	raw := ins.doc.Slice(ins.insertAt, end)
	segments := splitSegments(raw)
	ins.doc.CommitParagraphs(ins.insertAt, end, segments)
}

// Abort stops the insertion without the normalization pass. Whatever was
// already inserted stays in the document; partial insertion is accepted,
// not rolled back.
func (ins *Inserter) Abort() {
	ins.done = true
}

// Inserted returns the cumulative rune count of applied chunks.
func (ins *Inserter) Inserted() int {
	return ins.inserted
}

// StreamInsert drives an Inserter from a chunk channel until it closes or
// ctx is cancelled. On error the loop aborts and inserted text remains; no
// retry.
func StreamInsert(ctx context.Context, doc Document, mode InsertMode, chunks <-chan string) error {
	ins := NewInserter(doc, mode)
	for {
		select {
		case <-ctx.Done():
			ins.Abort()
			return ctx.Err()
		case chunk, ok := <-chunks:
			if !ok {
				ins.Finish()
				return nil
			}
			ins.Apply(chunk)
		}
	}
}

func splitSegments(raw string) []string {
	lines := strings.Split(raw, "\n")
	segments := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		segments = append(segments, line)
	}
	return segments
}
