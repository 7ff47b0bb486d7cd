package driver

import (
	"testing"

	"vhdlfmt/internal/config"
)

func TestDiskCachePutGet(t *testing.T) {
	cache, err := NewDiskCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	key := combineDigest([]byte("k"))
	if _, ok, err := cache.Get(key); err != nil || ok {
		t.Fatalf("empty cache: ok=%v err=%v", ok, err)
	}

	entry, err := newCacheEntry([]byte("content"), true)
	if err != nil {
		t.Fatal(err)
	}
	if err := cache.Put(key, entry); err != nil {
		t.Fatal(err)
	}
	got, ok, err := cache.Get(key)
	if err != nil || !ok {
		t.Fatalf("Get after Put: ok=%v err=%v", ok, err)
	}
	if got.Size != 7 || !got.Clean || got.Schema != diskCacheSchemaVersion {
		t.Errorf("unexpected entry %+v", got)
	}
}

func TestDiskCacheClean(t *testing.T) {
	cache, err := NewDiskCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := ConfigDigest(config.Default())
	if err != nil {
		t.Fatal(err)
	}
	src := []byte(tidyCounter)
	if cache.IsClean(cfg, src) {
		t.Fatal("unexpected hit")
	}
	if err := cache.MarkClean(cfg, src); err != nil {
		t.Fatal(err)
	}
	if !cache.IsClean(cfg, src) {
		t.Error("expected hit after MarkClean")
	}
	if cache.IsClean(cfg, []byte(messyCounter)) {
		t.Error("hit for different content")
	}

	if err := cache.DropAll(); err != nil {
		t.Fatal(err)
	}
	if cache.IsClean(cfg, src) {
		t.Error("hit after DropAll")
	}
}

func TestNilDiskCache(t *testing.T) {
	var cache *DiskCache
	if cache.IsClean(Digest{}, nil) {
		t.Error("nil cache reported a hit")
	}
	if err := cache.MarkClean(Digest{}, nil); err != nil {
		t.Error(err)
	}
}
