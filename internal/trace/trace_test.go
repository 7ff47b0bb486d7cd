package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseLevel(t *testing.T) {
	for _, name := range []string{"off", "error", "phase", "detail", "DEBUG"} {
		lvl, err := ParseLevel(name)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", name, err)
		}
		if lvl.String() != strings.ToLower(name) {
			t.Errorf("round trip %q -> %q", name, lvl)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Errorf("expected error for unknown level")
	}
}

func TestLevelFiltersScopes(t *testing.T) {
	tests := []struct {
		level Level
		want  []bool // driver, pass, file, node
	}{
		{LevelOff, []bool{false, false, false, false}},
		{LevelPhase, []bool{true, true, false, false}},
		{LevelDetail, []bool{true, true, true, false}},
		{LevelDebug, []bool{true, true, true, true}},
	}
	for _, tt := range tests {
		var got []bool
		for _, s := range []Scope{ScopeDriver, ScopePass, ScopeFile, ScopeNode} {
			got = append(got, tt.level.ShouldEmit(s))
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%s (-want +got):\n%s", tt.level, diff)
		}
	}
}

func TestStreamTracerWritesSpans(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDetail, FormatNDJSON)
	root := Begin(tr, ScopeDriver, "fmt", 0)
	file := Begin(tr, ScopeFile, "file:top.vhd", root.ID()).With("bytes", "42")
	Begin(tr, ScopeNode, "entity", file.ID()).End("")
	file.End("changed")
	root.End("")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d events, want 4 (node scope filtered):\n%s", len(lines), buf.String())
	}
	var ev jsonEvent
	if err := json.Unmarshal([]byte(lines[2]), &ev); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if ev.Kind != "end" || ev.Name != "file:top.vhd" || ev.Detail != "changed" || ev.Fields["bytes"] != "42" {
		t.Errorf("unexpected event %+v", ev)
	}
}

func TestRingTracerKeepsLastEvents(t *testing.T) {
	r := NewRingTracer(3, LevelPhase)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		Point(r, ScopePass, name, "", 0)
	}
	var names []string
	for _, ev := range r.Snapshot() {
		names = append(names, ev.Name)
	}
	if diff := cmp.Diff([]string{"c", "d", "e"}, names); diff != "" {
		t.Errorf("snapshot (-want +got):\n%s", diff)
	}

	var buf bytes.Buffer
	if err := r.Dump(&buf, FormatText); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "• e") {
		t.Errorf("dump missing last event:\n%s", buf.String())
	}
}

func TestErrorLevelOnlyFillsRing(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Level: LevelError, Mode: ModeBoth, Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	Begin(tr, ScopePass, "parse", 0).End("")
	if buf.Len() != 0 {
		t.Errorf("stream should stay silent at error level, got %q", buf.String())
	}
	ring, ok := Ring(tr)
	if !ok {
		t.Fatal("expected a ring behind the multi tracer")
	}
	if n := len(ring.Snapshot()); n != 2 {
		t.Errorf("ring holds %d events, want 2", n)
	}
}

func TestContextPropagation(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Errorf("empty context should give Nop")
	}
	r := NewRingTracer(8, LevelDebug)
	ctx := WithTracer(context.Background(), r)
	span := Begin(FromContext(ctx), ScopeDriver, "fmt", 0)
	ctx = WithSpan(ctx, span)
	if got := ParentSpan(ctx); got != span.ID() || got == 0 {
		t.Errorf("ParentSpan = %d, want %d", got, span.ID())
	}
}

func TestDisabledSpanIsSafe(t *testing.T) {
	s := Begin(Nop, ScopeDriver, "x", 0)
	if d := s.With("k", "v").End(""); d != 0 {
		t.Errorf("disabled span duration = %v", d)
	}
	var nilSpan *Span
	if nilSpan.ID() != 0 || nilSpan.End("") != 0 {
		t.Errorf("nil span should be inert")
	}
}
