package app

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func stubClipboard(t *testing.T, systemErr, oscErr error) *[]string {
	t.Helper()
	copied := &[]string{}
	origSystem := clipboardWriteAll
	origOSC := clipboardWriteOSC52
	clipboardWriteAll = func(text string) error {
		if systemErr == nil {
			*copied = append(*copied, "system:"+text)
		}
		return systemErr
	}
	clipboardWriteOSC52 = func(text string) error {
		if oscErr == nil {
			*copied = append(*copied, "osc52:"+text)
		}
		return oscErr
	}
	t.Cleanup(func() {
		clipboardWriteAll = origSystem
		clipboardWriteOSC52 = origOSC
	})
	return copied
}

func TestCopyShareLinkPrefersSystemClipboard(t *testing.T) {
	copied := stubClipboard(t, nil, errors.New("should not be called"))

	method, err := copyShareLink("https://quill.example/p/abc")
	if err != nil {
		t.Fatalf("copy: %v", err)
	}
	if method != clipboardMethodSystem {
		t.Fatalf("expected system clipboard, got %v", method)
	}
	if len(*copied) != 1 || (*copied)[0] != "system:https://quill.example/p/abc" {
		t.Fatalf("unexpected writes: %#v", *copied)
	}
}

func TestCopyShareLinkFallsBackToOSC52(t *testing.T) {
	copied := stubClipboard(t, errors.New("no system clipboard"), nil)

	method, err := copyShareLink("https://quill.example/p/abc")
	if err != nil {
		t.Fatalf("copy: %v", err)
	}
	if method != clipboardMethodOSC52 {
		t.Fatalf("expected OSC52 fallback, got %v", method)
	}
	if len(*copied) != 1 || (*copied)[0] != "osc52:https://quill.example/p/abc" {
		t.Fatalf("unexpected writes: %#v", *copied)
	}
}

func TestCopyShareLinkReportsBothFailures(t *testing.T) {
	stubClipboard(t, errors.New("xclip missing"), errors.New("tty unavailable"))

	_, err := copyShareLink("https://quill.example/p/abc")
	if err == nil {
		t.Fatalf("expected error when both paths fail")
	}
	if !strings.Contains(err.Error(), "xclip missing") || !strings.Contains(err.Error(), "tty unavailable") {
		t.Fatalf("error must name both failures: %v", err)
	}
}

func TestWriteOSC52SequenceTmuxEmitsBothVariants(t *testing.T) {
	t.Setenv("TMUX", "/tmp/tmux-1000/default,123,0")
	t.Setenv("TERM", "tmux-256color")

	var buf bytes.Buffer
	if err := writeOSC52Sequence(&buf, "https://quill.example/p/abc"); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "\x1b]52;") {
		t.Fatalf("expected a plain OSC52 sequence: %q", out)
	}
	if !strings.Contains(out, "\x1bPtmux;") {
		t.Fatalf("expected a tmux-wrapped sequence: %q", out)
	}
}

func TestShouldAttemptOSC52RespectsEnv(t *testing.T) {
	t.Setenv("TERM", "xterm-256color")
	t.Setenv("QUILL_DISABLE_OSC52", "")
	if !shouldAttemptOSC52() {
		t.Fatalf("expected OSC52 enabled by default")
	}

	t.Setenv("QUILL_DISABLE_OSC52", "1")
	if shouldAttemptOSC52() {
		t.Fatalf("QUILL_DISABLE_OSC52 must disable the fallback")
	}

	t.Setenv("QUILL_DISABLE_OSC52", "")
	t.Setenv("TERM", "dumb")
	if shouldAttemptOSC52() {
		t.Fatalf("dumb terminals cannot handle OSC52")
	}
}
