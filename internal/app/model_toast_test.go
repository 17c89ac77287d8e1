package app

import (
	"strings"
	"testing"
	"time"

	xansi "github.com/charmbracelet/x/ansi"
)

func TestShowInfoToastSetsTextAndLevel(t *testing.T) {
	m := newTestModel(t, nil)
	m.showInfoToast("public link copied")

	if m.toast.text != "public link copied" {
		t.Fatalf("expected toast text to be set, got %q", m.toast.text)
	}
	if m.toast.level != toastLevelInfo {
		t.Fatalf("expected info toast level, got %v", m.toast.level)
	}
	if !m.toast.active(time.Now()) {
		t.Fatalf("expected toast to be active")
	}
}

func TestHandleTickClearsExpiredToast(t *testing.T) {
	m := newTestModel(t, nil)
	m.showWarningToast("save failed")

	m.handleTick(time.Now().Add(toastLevelWarning.duration() + time.Millisecond))
	if m.toast.text != "" {
		t.Fatalf("expected toast to clear after expiry, got %q", m.toast.text)
	}
	if m.toast.level != toastLevelInfo {
		t.Fatalf("expected level reset after clear, got %v", m.toast.level)
	}
}

func TestErrorToastOutlivesInfoDuration(t *testing.T) {
	m := newTestModel(t, nil)
	m.showErrorToast("delete failed")

	m.handleTick(time.Now().Add(toastLevelInfo.duration() + time.Millisecond))
	if m.toast.text != "delete failed" {
		t.Fatalf("error toast must outlast the info duration, got %q", m.toast.text)
	}

	m.handleTick(time.Now().Add(toastLevelError.duration() + time.Millisecond))
	if m.toast.text != "" {
		t.Fatalf("expected error toast cleared after its own duration, got %q", m.toast.text)
	}
}

func TestViewShowsToastOverlay(t *testing.T) {
	m := newTestModel(t, nil)
	m.resize(100, 20)
	m.showErrorToast("delete failed")

	plain := xansi.Strip(m.View())
	if !strings.Contains(plain, "delete failed") {
		t.Fatalf("expected toast text in view output: %q", plain)
	}
}

func TestStartupToastQueueAdvancesAfterExpiry(t *testing.T) {
	m := newTestModel(t, nil)
	m.enqueueStartupToast(toastLevelError, "notes load failed")
	m.enqueueStartupToast(toastLevelError, "feeds load failed")

	if m.toast.text != "notes load failed" {
		t.Fatalf("expected first startup toast, got %q", m.toast.text)
	}
	if len(m.startupToasts) != 1 {
		t.Fatalf("expected one queued startup toast, got %d", len(m.startupToasts))
	}

	m.handleTick(time.Now().Add(toastLevelError.duration() + time.Millisecond))
	if m.toast.text != "feeds load failed" {
		t.Fatalf("expected second startup toast after expiry, got %q", m.toast.text)
	}
	if len(m.startupToasts) != 0 {
		t.Fatalf("expected startup toast queue to be empty, got %d", len(m.startupToasts))
	}
}

func TestStoreErrorSurfacesOnce(t *testing.T) {
	notes := &fakeNoteStore{err: "failed to save note: offline"}
	m := newTestModel(t, notes)

	m.handleTick(time.Now())
	if m.toast.text != "failed to save note: offline" {
		t.Fatalf("expected store error toast, got %q", m.toast.text)
	}

	m.clearToast()
	m.handleTick(time.Now())
	if m.toast.text != "" {
		t.Fatalf("unchanged store error must not re-toast, got %q", m.toast.text)
	}
}
