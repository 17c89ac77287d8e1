package app

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Toasts carry the outcomes of background commands (saves, deletes, share
// toggles) that have no other surface in the UI. Errors linger longer than
// confirmations so a failed save is harder to miss.

type toastLevel int

const (
	toastLevelInfo toastLevel = iota
	toastLevelWarning
	toastLevelError
)

func (l toastLevel) duration() time.Duration {
	switch l {
	case toastLevelError:
		return 6 * time.Second
	case toastLevelWarning:
		return 4 * time.Second
	default:
		return 3 * time.Second
	}
}

func (l toastLevel) style() lipgloss.Style {
	switch l {
	case toastLevelWarning:
		return toastWarningStyle
	case toastLevelError:
		return toastErrorStyle
	default:
		return toastInfoStyle
	}
}

type toast struct {
	text  string
	level toastLevel
	until time.Time
}

func (t toast) active(at time.Time) bool {
	return t.text != "" && at.Before(t.until)
}

func (m *Model) showInfoToast(message string) {
	m.showToast(toastLevelInfo, message)
}

func (m *Model) showWarningToast(message string) {
	m.showToast(toastLevelWarning, message)
}

func (m *Model) showErrorToast(message string) {
	m.showToast(toastLevelError, message)
}

func (m *Model) showToast(level toastLevel, message string) {
	message = strings.TrimSpace(message)
	if message == "" {
		return
	}
	m.toast = toast{
		text:  message,
		level: level,
		until: time.Now().Add(level.duration()),
	}
}

func (m *Model) clearToast() {
	m.toast = toast{}
}

// enqueueStartupToast queues failures from the initial fetch fan-out.
// Several can land in the same frame; they display one at a time so none is
// overwritten before it was readable.
func (m *Model) enqueueStartupToast(level toastLevel, message string) {
	message = strings.TrimSpace(message)
	if message == "" {
		return
	}
	m.startupToasts = append(m.startupToasts, toast{text: message, level: level})
	m.maybeShowNextStartupToast(time.Now())
}

func (m *Model) maybeShowNextStartupToast(at time.Time) {
	if len(m.startupToasts) == 0 || m.toast.active(at) {
		return
	}
	next := m.startupToasts[0]
	m.startupToasts = m.startupToasts[1:]
	m.status = next.text
	m.showToast(next.level, next.text)
}

func (m *Model) toastLine(width int) string {
	if width <= 0 || !m.toast.active(time.Now()) {
		return ""
	}
	text := truncateToWidth(m.toast.text, max(1, width-4))
	pill := m.toast.level.style().Render(" " + text + " ")
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, pill)
}
