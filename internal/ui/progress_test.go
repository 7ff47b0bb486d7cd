package ui

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestProgressModelCounts(t *testing.T) {
	files := []string{"a.vhd", "b.vhd", "c.vhd"}
	events := make(chan Event)
	m := NewProgressModel("formatting", files, events).(*progressModel)

	m.applyEvent(Event{File: "a.vhd", Status: StatusChanged})
	m.applyEvent(Event{File: "b.vhd", Status: StatusFailed})
	m.applyEvent(Event{File: "unknown.vhd", Status: StatusChanged})

	if got := m.counts[StatusQueued]; got != 1 {
		t.Errorf("queued = %d, want 1", got)
	}
	if m.counts[StatusChanged] != 1 || m.counts[StatusFailed] != 1 {
		t.Errorf("unexpected counts %v", m.counts)
	}

	view := m.View()
	if !strings.Contains(view, "formatting (2/3)") {
		t.Errorf("header missing progress:\n%s", view)
	}
	if !strings.Contains(view, "1 changed, 0 unchanged, 0 cached, 1 failed") {
		t.Errorf("summary line missing:\n%s", view)
	}
}

func TestProgressModelVisibleKeepsFailures(t *testing.T) {
	var files []string
	for i := range 30 {
		files = append(files, string(rune('a'+i%26))+strings.Repeat("x", i)+".vhd")
	}
	m := NewProgressModel("fmt", files, nil).(*progressModel)
	m.applyEvent(Event{File: files[0], Status: StatusFailed})
	for _, f := range files[1:] {
		m.applyEvent(Event{File: f, Status: StatusUnchanged})
	}
	vis := m.visible()
	if len(vis) != maxVisible {
		t.Fatalf("visible = %d, want %d", len(vis), maxVisible)
	}
	if vis[0] != 0 {
		t.Errorf("failed file is not listed first: %v", vis)
	}
	if vis[1] != len(files)-1 {
		t.Errorf("newest file should follow failures: %v", vis)
	}
}

func TestTruncate(t *testing.T) {
	long := "very/long/path/to/some/file.vhd"
	got := truncate(long, 12)
	if w := runewidth.StringWidth(got); w > 12 {
		t.Errorf("width %d exceeds limit: %q", w, got)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("missing ellipsis: %q", got)
	}
	if truncate("short", 12) != "short" {
		t.Error("short value was truncated")
	}
}
