package diag

import (
	"bytes"
	"strings"
	"testing"

	"vhdlfmt/internal/source"
)

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	for i := range 3 {
		ok := b.Add(Diagnostic{Severity: SevWarning, Code: SynUnexpectedToken, Primary: source.Span{Start: uint32(i)}})
		if want := i < 2; ok != want {
			t.Fatalf("Add #%d: want %v, got %v", i, want, ok)
		}
	}
	if b.Len() != 2 || b.HasErrors() {
		t.Fatalf("unexpected bag state: len=%d errors=%v", b.Len(), b.HasErrors())
	}
}

func TestBagSortAndDedup(t *testing.T) {
	b := NewBag(10)
	b.Add(Diagnostic{Severity: SevWarning, Code: SynEndLabelMismatch, Primary: source.Span{Start: 9, End: 10}})
	b.Add(Diagnostic{Severity: SevError, Code: SynExpectSemicolon, Primary: source.Span{Start: 1, End: 2}})
	b.Add(Diagnostic{Severity: SevError, Code: SynExpectSemicolon, Primary: source.Span{Start: 1, End: 2}})
	b.Sort()
	b.Dedup()

	items := b.Items()
	if len(items) != 2 {
		t.Fatalf("want 2 items after dedup, got %d", len(items))
	}
	if items[0].Code != SynExpectSemicolon || items[1].Code != SynEndLabelMismatch {
		t.Fatalf("unexpected order: %v, %v", items[0].Code, items[1].Code)
	}
	if !b.HasErrors() {
		t.Fatal("expected HasErrors")
	}
}

func TestCodeID(t *testing.T) {
	tests := map[Code]string{
		LexUnknownChar:     "LEX1001",
		SynUnexpectedToken: "SYN2001",
		CfgUnknownKey:      "CFG3001",
		UnknownCode:        "E0000",
	}
	for code, want := range tests {
		if got := code.ID(); got != want {
			t.Errorf("%d: want %s, got %s", code, want, got)
		}
	}
}

func TestRender(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.Add("top.vhd", []byte("entity x is\nend entity y;\n"), 0)
	b := NewBag(4)
	BagReporter{Bag: b}.Report(SynEndLabelMismatch, SevWarning, source.Span{File: id, Start: 23, End: 24},
		"end label y does not match x", []Note{{Span: source.Span{File: id, Start: 7, End: 8}, Msg: "declared here"}})

	var buf bytes.Buffer
	Render(&buf, b, fs, false)
	got := buf.String()
	want := "top.vhd:2:12: WARNING SYN2008: end label y does not match x\n  note: top.vhd:1:8: declared here\n"
	if got != want {
		t.Fatalf("Render:\nwant %q\ngot  %q", want, got)
	}
	if strings.Contains(got, "\x1b[") {
		t.Fatal("color escape leaked with color disabled")
	}
}

func TestSeverityNames(t *testing.T) {
	tests := []struct {
		sev  Severity
		want string
	}{
		{SevInfo, "INFO"},
		{SevWarning, "WARNING"},
		{SevError, "ERROR"},
		{Severity(9), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.sev.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", tt.sev, got, tt.want)
		}
		if got := tt.sev.paint(false); got != tt.want {
			t.Errorf("paint(%d, false) = %q, want %q", tt.sev, got, tt.want)
		}
	}
}
