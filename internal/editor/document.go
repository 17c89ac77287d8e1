package editor

import "strings"

// Document is the live rich-text engine the editor session drives. The
// engine owns the document model and its serialization; this interface is
// only the editing seam the session and the streaming inserter need.
// Positions are rune offsets.
type Document interface {
	Len() int
	Text() string
	Slice(from, to int) string
	SetText(text string)
	Insert(at int, text string)
	Delete(from, to int)
	Selection() (from, to int)
	Select(from, to int)
	// CommitParagraphs replaces [from, to) with the given segments, each
	// wrapped in a paragraph boundary, in one edit.
	CommitParagraphs(from, to int, segments []string)
}

// ParagraphBreak separates paragraphs in the plain-text document.
const ParagraphBreak = "\n\n"

// TextDocument is a plain-text Document used by the terminal UI bridge and
// by tests. A rich-text engine would satisfy the same interface.
type TextDocument struct {
	runes   []rune
	selFrom int
	selTo   int
}

func NewTextDocument(text string) *TextDocument {
	return &TextDocument{runes: []rune(text)}
}

func (d *TextDocument) Len() int {
	return len(d.runes)
}

func (d *TextDocument) Text() string {
	return string(d.runes)
}

func (d *TextDocument) Slice(from, to int) string {
	from, to = d.clampRange(from, to)
	return string(d.runes[from:to])
}

func (d *TextDocument) SetText(text string) {
	d.runes = []rune(text)
	d.selFrom = 0
	d.selTo = 0
}

func (d *TextDocument) Insert(at int, text string) {
	at = d.clamp(at)
	insert := []rune(text)
	out := make([]rune, 0, len(d.runes)+len(insert))
	out = append(out, d.runes[:at]...)
	out = append(out, insert...)
	out = append(out, d.runes[at:]...)
	d.runes = out
}

func (d *TextDocument) Delete(from, to int) {
	from, to = d.clampRange(from, to)
	d.runes = append(d.runes[:from], d.runes[to:]...)
}

func (d *TextDocument) Selection() (int, int) {
	return d.selFrom, d.selTo
}

func (d *TextDocument) Select(from, to int) {
	d.selFrom, d.selTo = d.clampRange(from, to)
}

func (d *TextDocument) CommitParagraphs(from, to int, segments []string) {
	from, to = d.clampRange(from, to)
	replacement := []rune(strings.Join(segments, ParagraphBreak))
	out := make([]rune, 0, from+len(replacement)+len(d.runes)-to)
	out = append(out, d.runes[:from]...)
	out = append(out, replacement...)
	out = append(out, d.runes[to:]...)
	d.runes = out
}

func (d *TextDocument) clamp(at int) int {
	if at < 0 {
		return 0
	}
	if at > len(d.runes) {
		return len(d.runes)
	}
	return at
}

func (d *TextDocument) clampRange(from, to int) (int, int) {
	from = d.clamp(from)
	to = d.clamp(to)
	if to < from {
		from, to = to, from
	}
	return from, to
}
