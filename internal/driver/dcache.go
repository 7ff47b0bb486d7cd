package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"
)

// diskCacheSchemaVersion меняется при любом изменении CacheEntry.
const diskCacheSchemaVersion uint16 = 1

// DiskCache remembers inputs that are already formatted under a given
// configuration, so --cache runs skip them. Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// CacheEntry is the msgpack record stored per key.
type CacheEntry struct {
	Schema uint16
	Size   uint32 // input length, a cheap second check against key collisions
	Clean  bool   // input was a fixed point of the formatter
	Stamp  int64  // unix seconds of the write
}

// OpenDiskCache opens $XDG_CACHE_HOME/<app> (or ~/.cache/<app>).
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return NewDiskCache(filepath.Join(base, app))
}

// NewDiskCache uses dir as the cache root.
func NewDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache dir: %w", err)
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// два уровня, чтобы не складывать тысячи файлов в один каталог
	return filepath.Join(c.dir, "files", hexKey[:2], hexKey+".mp")
}

func newCacheEntry(content []byte, clean bool) (*CacheEntry, error) {
	size, err := safecast.Conv[uint32](len(content))
	if err != nil {
		return nil, fmt.Errorf("input too large to cache: %w", err)
	}
	return &CacheEntry{
		Schema: diskCacheSchemaVersion,
		Size:   size,
		Clean:  clean,
		Stamp:  time.Now().Unix(),
	}, nil
}

// Put writes the entry atomically through a temp file and rename.
func (c *DiskCache) Put(key Digest, entry *CacheEntry) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(f.Name())
		}
	}()
	if err = msgpack.NewEncoder(f).Encode(entry); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads the entry for key. Entries from another schema are misses.
func (c *DiskCache) Get(key Digest) (*CacheEntry, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var entry CacheEntry
	if err := msgpack.NewDecoder(f).Decode(&entry); err != nil {
		return nil, false, err
	}
	if entry.Schema != diskCacheSchemaVersion {
		return nil, false, nil
	}
	return &entry, true, nil
}

// IsClean reports whether content is recorded as already formatted.
func (c *DiskCache) IsClean(cfg Digest, content []byte) bool {
	entry, ok, err := c.Get(cacheKey(cfg, content))
	if err != nil || !ok {
		return false
	}
	size, err := safecast.Conv[uint32](len(content))
	return err == nil && entry.Clean && entry.Size == size
}

// MarkClean records content as a fixed point.
func (c *DiskCache) MarkClean(cfg Digest, content []byte) error {
	if c == nil {
		return nil
	}
	entry, err := newCacheEntry(content, true)
	if err != nil {
		return err
	}
	return c.Put(cacheKey(cfg, content), entry)
}

// DropAll removes every entry.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	return os.RemoveAll(old)
}
