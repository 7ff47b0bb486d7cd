package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"vhdlfmt/internal/config"
	"vhdlfmt/internal/format"
	"vhdlfmt/internal/observ"
)

const (
	messyCounter = "entity counter is\nport(clk: in std_logic;count:out natural);\nend counter;\n"
	tidyCounter  = "entity counter is\n  port ( clk : in std_logic; count : out natural );\nend entity counter;\n"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestFormatPathsCheckDoesNotWrite(t *testing.T) {
	dir := t.TempDir()
	messy := writeFile(t, dir, "counter.vhd", messyCounter)
	tidy := writeFile(t, dir, "sub/tidy.vhdl", tidyCounter)
	writeFile(t, dir, "notes.txt", "not vhdl")

	results, err := FormatPaths(context.Background(), []string{dir}, FormatOptions{
		Config: config.Default(),
		Mode:   ModeCheck,
	})
	if err != nil {
		t.Fatalf("FormatPaths: %v", err)
	}

	got := make(map[string]bool)
	for _, r := range results {
		if r.Err != nil {
			t.Fatalf("%s: %v", r.Path, r.Err)
		}
		got[r.Path] = r.Changed
	}
	want := map[string]bool{messy: true, tidy: false}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("changed set mismatch (-want +got):\n%s", diff)
	}
	if content := readFile(t, messy); content != messyCounter {
		t.Errorf("check mode modified the file: %q", content)
	}
}

func TestFormatPathsWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "counter.vhd", messyCounter)

	results, err := FormatPaths(context.Background(), []string{path}, FormatOptions{
		Config: config.Default(),
		Mode:   ModeWrite,
	})
	if err != nil {
		t.Fatalf("FormatPaths: %v", err)
	}
	if len(results) != 1 || !results[0].Changed {
		t.Fatalf("expected one changed result, got %+v", results)
	}
	if got := readFile(t, path); got != tidyCounter {
		t.Errorf("want %q, got %q", tidyCounter, got)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("file mode not preserved: %v", perm)
	}

	// второй прогон ничего не меняет
	results, err = FormatPaths(context.Background(), []string{path}, FormatOptions{
		Config: config.Default(),
		Mode:   ModeWrite,
	})
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Changed {
		t.Errorf("formatted file reported as changed on second run")
	}
}

func TestFormatSyntaxErrorLeavesFileAlone(t *testing.T) {
	dir := t.TempDir()
	broken := "entity broken is\nport (a : in bit\nend;\n"
	path := writeFile(t, dir, "broken.vhd", broken)

	results, err := FormatPaths(context.Background(), []string{path}, FormatOptions{
		Config:         config.Default(),
		Mode:           ModeWrite,
		MaxDiagnostics: 10,
	})
	if err != nil {
		t.Fatal(err)
	}
	r := results[0]
	if !errors.Is(r.Err, format.ErrSyntax) {
		t.Fatalf("want ErrSyntax, got %v", r.Err)
	}
	if r.Bag == nil || !r.Bag.HasErrors() {
		t.Errorf("expected diagnostics in the result bag")
	}
	if got := readFile(t, path); got != broken {
		t.Errorf("file with syntax errors was rewritten: %q", got)
	}
}

func TestFormatSourceKeepsCRLF(t *testing.T) {
	src := strings.ReplaceAll(messyCounter, "\n", "\r\n")
	res := FormatSource(context.Background(), "stdin.vhd", []byte(src), FormatOptions{Config: config.Default()})
	if res.Err != nil {
		t.Fatal(res.Err)
	}
	want := strings.ReplaceAll(tidyCounter, "\n", "\r\n")
	if got := string(res.Output); got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestFormatSourceDiff(t *testing.T) {
	res := FormatSource(context.Background(), "counter.vhd", []byte(messyCounter), FormatOptions{
		Config: config.Default(),
		Diff:   true,
	})
	if res.Err != nil {
		t.Fatal(res.Err)
	}
	want := "--- counter.vhd\t(original)\n" +
		"+++ counter.vhd\t(formatted)\n" +
		"@@ -1,3 +1,3 @@\n" +
		" entity counter is\n" +
		"-port(clk: in std_logic;count:out natural);\n" +
		"-end counter;\n" +
		"+  port ( clk : in std_logic; count : out natural );\n" +
		"+end entity counter;\n"
	if diff := cmp.Diff(want, res.Diff); diff != "" {
		t.Errorf("diff mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatVerify(t *testing.T) {
	res := FormatSource(context.Background(), "counter.vhd", []byte(messyCounter), FormatOptions{
		Config: config.Default(),
		Verify: true,
	})
	if res.Err != nil {
		t.Fatalf("verify failed: %v", res.Err)
	}
}

func TestFormatCache(t *testing.T) {
	cache, err := NewDiskCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	path := writeFile(t, dir, "counter.vhd", tidyCounter)
	opts := FormatOptions{Config: config.Default(), Mode: ModeCheck, Cache: cache}

	first, err := FormatFiles(context.Background(), []string{path}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first[0].Cached {
		t.Fatalf("first run cannot be a cache hit")
	}

	second, err := FormatFiles(context.Background(), []string{path}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second[0].Cached || second[0].Changed {
		t.Errorf("expected unchanged cache hit, got %+v", second[0])
	}

	// другой конфиг, другой ключ
	other := opts
	other.Config.IndentSize = 4
	third, err := FormatFiles(context.Background(), []string{path}, other)
	if err != nil {
		t.Fatal(err)
	}
	if third[0].Cached {
		t.Errorf("cache hit across different configs")
	}
}

func TestFormatTimerAndCallback(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"a.vhd", "b.vhd", "c.vhd"} {
		paths = append(paths, writeFile(t, dir, name, messyCounter))
	}
	timer := observ.NewTimer()
	seen := 0
	results, err := FormatFiles(context.Background(), paths, FormatOptions{
		Config:   config.Default(),
		Mode:     ModeCheck,
		Jobs:     2,
		Timer:    timer,
		OnResult: func(Result) { seen++ },
	})
	if err != nil {
		t.Fatal(err)
	}
	if seen != len(paths) {
		t.Errorf("OnResult called %d times, want %d", seen, len(paths))
	}
	if s := Summarize(results); s.Changed != 3 || s.Failed != 0 {
		t.Errorf("unexpected summary: %s", s)
	}

	report := timer.Report()
	got := make(map[string]int)
	for _, ph := range report.Phases {
		got[ph.Name] = ph.Count
	}
	for _, name := range []string{"read", "parse", "print", "layout"} {
		if got[name] != 3 {
			t.Errorf("phase %s counted %d times, want 3", name, got[name])
		}
	}
}

func TestFormatPathsNoFiles(t *testing.T) {
	_, err := FormatPaths(context.Background(), []string{t.TempDir()}, FormatOptions{Config: config.Default()})
	if !errors.Is(err, ErrNoSourceFiles) {
		t.Fatalf("want ErrNoSourceFiles, got %v", err)
	}
}
