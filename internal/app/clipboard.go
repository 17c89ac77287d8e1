package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// Sharing a note ends with its public URL on the user's clipboard. Over SSH
// or inside tmux there is often no system clipboard to reach, so the
// fallback emits an OSC52 escape and lets the terminal emulator do the copy.

type clipboardMethod uint8

const (
	clipboardMethodSystem clipboardMethod = iota
	clipboardMethodOSC52
)

var (
	clipboardWriteAll   = clipboard.WriteAll
	clipboardWriteOSC52 = writeOSC52Clipboard
)

func copyShareLink(url string) (clipboardMethod, error) {
	sysErr := clipboardWriteAll(url)
	if sysErr == nil {
		return clipboardMethodSystem, nil
	}
	oscErr := clipboardWriteOSC52(url)
	if oscErr == nil {
		return clipboardMethodOSC52, nil
	}
	return clipboardMethodSystem, fmt.Errorf("system clipboard: %s; OSC52 fallback: %s",
		describeClipboardError(sysErr), describeClipboardError(oscErr))
}

func writeOSC52Clipboard(text string) error {
	if !shouldAttemptOSC52() {
		return errors.New("OSC52 unavailable for this terminal")
	}
	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("open /dev/tty: %w", err)
	}
	defer tty.Close()
	return writeOSC52Sequence(tty, text)
}

func writeOSC52Sequence(w io.Writer, text string) error {
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	switch {
	case os.Getenv("TMUX") != "":
		// Both plain and tmux-wrapped variants; which one tmux honors
		// depends on its set-clipboard setting.
		if _, err := osc52.New(text).WriteTo(w); err != nil {
			return err
		}
		_, err := osc52.New(text).Tmux().WriteTo(w)
		return err
	case strings.HasPrefix(term, "screen"):
		_, err := osc52.New(text).Screen().WriteTo(w)
		return err
	default:
		_, err := osc52.New(text).WriteTo(w)
		return err
	}
}

func shouldAttemptOSC52() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("QUILL_DISABLE_OSC52"))) {
	case "1", "true", "yes", "on":
		return false
	}
	term := strings.TrimSpace(os.Getenv("TERM"))
	return term != "" && !strings.EqualFold(term, "dumb")
}

func describeClipboardError(err error) string {
	if err == nil {
		return ""
	}
	msg := strings.TrimSpace(err.Error())
	// xclip/xsel exit 1 without a display; name the real problem.
	if msg == "exit status 1" && missingDisplay() {
		return "no GUI clipboard (DISPLAY/WAYLAND_DISPLAY unset)"
	}
	return msg
}

func missingDisplay() bool {
	return strings.TrimSpace(os.Getenv("DISPLAY")) == "" && strings.TrimSpace(os.Getenv("WAYLAND_DISPLAY")) == ""
}
