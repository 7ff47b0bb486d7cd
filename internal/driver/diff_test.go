package driver

import (
	"strings"
	"testing"
)

func TestUnifiedDiffEqual(t *testing.T) {
	if got := UnifiedDiff("a.vhd", "x\ny\n", "x\ny\n"); got != "" {
		t.Errorf("want empty diff, got %q", got)
	}
}

func TestUnifiedDiffHunks(t *testing.T) {
	var a, b []string
	for i := range 20 {
		line := "line" + string(rune('a'+i))
		a = append(a, line)
		b = append(b, line)
	}
	b[2] = "changed c"
	b[17] = "changed r"
	got := UnifiedDiff("f.vhd", strings.Join(a, "\n")+"\n", strings.Join(b, "\n")+"\n")

	// изменения далеко друг от друга: два отдельных ханка
	if n := strings.Count(got, "@@ -"); n != 2 {
		t.Fatalf("want 2 hunks, got %d:\n%s", n, got)
	}
	for _, want := range []string{
		"@@ -1,6 +1,6 @@\n linea\n lineb\n-linec\n+changed c\n lined\n",
		"@@ -15,6 +15,6 @@\n",
		"-liner\n+changed r\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("diff lacks %q:\n%s", want, got)
		}
	}
}

func TestUnifiedDiffInsertIntoEmpty(t *testing.T) {
	got := UnifiedDiff("new.vhd", "", "entity e is\nend entity e;\n")
	want := "--- new.vhd\t(original)\n+++ new.vhd\t(formatted)\n@@ -0,0 +1,2 @@\n+entity e is\n+end entity e;\n"
	if got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestUnifiedDiffIgnoresCR(t *testing.T) {
	if got := UnifiedDiff("f.vhd", "a\r\nb\r\n", "a\nb\n"); got != "" {
		t.Errorf("line terminators alone should not produce hunks, got %q", got)
	}
}
