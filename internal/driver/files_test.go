package driver

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCollectSourceFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "b/a.vhd", "")
	b := writeFile(t, dir, "top.VHDL", "")
	writeFile(t, dir, ".git/x.vhd", "")
	writeFile(t, dir, "readme.md", "")
	explicit := writeFile(t, dir, "other/script.txt", "")

	got, err := collectSourceFiles(context.Background(), []string{dir, a, explicit})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Clean(a),
		filepath.Clean(explicit),
		filepath.Clean(b),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("files mismatch (-want +got):\n%s", diff)
	}
}

func TestIsSourceFile(t *testing.T) {
	tests := map[string]bool{
		"a.vhd":      true,
		"a.vhdl":     true,
		"A.VHD":      true,
		"a.v":        false,
		"vhd":        false,
		"dir/x.vhdl": true,
	}
	for path, want := range tests {
		if got := IsSourceFile(path); got != want {
			t.Errorf("IsSourceFile(%q) = %v, want %v", path, got, want)
		}
	}
}
