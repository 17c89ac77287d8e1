package app

import (
	"strings"
	"testing"

	xansi "github.com/charmbracelet/x/ansi"
)

func TestRenderMarkdownEmptyInput(t *testing.T) {
	if out := renderMarkdown("", 80); out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
	if out := renderMarkdown("\n\n", 80); out != "" {
		t.Fatalf("trailing newlines only must render empty, got %q", out)
	}
}

func TestRenderMarkdownClampsProseWidth(t *testing.T) {
	input := strings.Repeat("reading width stays sane even on very wide terminals ", 8)
	out := renderMarkdown(input, 220)
	for _, line := range strings.Split(out, "\n") {
		if w := xansi.StringWidth(line); w > maxProseWidth {
			t.Fatalf("line exceeds prose width (%d > %d): %q", w, maxProseWidth, line)
		}
	}
}

func TestRenderMarkdownRendersHeading(t *testing.T) {
	out := xansi.Strip(renderMarkdown("# Saved Articles\n\nbody text", 60))
	if !strings.Contains(out, "Saved Articles") || !strings.Contains(out, "body text") {
		t.Fatalf("unexpected render output: %q", out)
	}
}
