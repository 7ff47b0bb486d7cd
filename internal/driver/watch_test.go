package driver

import (
	"context"
	"os"
	"testing"
	"time"

	"vhdlfmt/internal/config"
)

func TestWatchReformatsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "counter.vhd", tidyCounter)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	batches := make(chan []Result, 8)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, []string{dir}, FormatOptions{Config: config.Default(), Mode: ModeWrite},
			WatchOptions{
				Debounce: 20 * time.Millisecond,
				OnBatch:  func(rs []Result, _ error) { batches <- rs },
			})
	}()

	waitBatch := func() []Result {
		t.Helper()
		select {
		case rs := <-batches:
			return rs
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for a watch batch")
			return nil
		}
	}

	if rs := waitBatch(); len(rs) != 1 || rs[0].Changed {
		t.Fatalf("unexpected initial batch: %+v", rs)
	}

	if err := os.WriteFile(path, []byte(messyCounter), 0o600); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for readFile(t, path) != tidyCounter {
		if time.Now().After(deadline) {
			t.Fatalf("file was not reformatted: %q", readFile(t, path))
		}
		waitBatch()
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not stop on cancel")
	}
}
