package driver

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"vhdlfmt/internal/trace"
)

// DefaultDebounce is how long Watch waits for a burst of events to settle.
const DefaultDebounce = 100 * time.Millisecond

// WatchOptions configures Watch.
type WatchOptions struct {
	Debounce time.Duration
	// OnBatch receives the results of the initial run and of every
	// re-format triggered by file changes.
	OnBatch func(results []Result, err error)
}

// watchSet tracks what Watch is interested in: whole directory trees and
// individually named files.
type watchSet struct {
	w     *fsnotify.Watcher
	files map[string]struct{} // explicit file arguments
	trees map[string]struct{} // directory arguments
}

// Watch formats paths once and then again whenever a watched VHDL file is
// created or written. It returns when ctx is done.
func Watch(ctx context.Context, paths []string, opts FormatOptions, wopts WatchOptions) error {
	if wopts.Debounce <= 0 {
		wopts.Debounce = DefaultDebounce
	}
	onBatch := wopts.OnBatch
	if onBatch == nil {
		onBatch = func([]Result, error) {}
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	set := &watchSet{w: w, files: make(map[string]struct{}), trees: make(map[string]struct{})}
	for _, p := range paths {
		if err := set.add(p); err != nil {
			return err
		}
	}

	onBatch(FormatPaths(ctx, paths, opts))

	tracer := trace.FromContext(ctx)
	pending := make(map[string]struct{})
	timer := time.NewTimer(wopts.Debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&fsnotify.Create != 0 {
				// новый подкаталог внутри наблюдаемого дерева
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() && set.inTree(ev.Name) {
					_ = set.addTree(ev.Name)
					continue
				}
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 || !set.wants(ev.Name) {
				continue
			}
			trace.Point(tracer, trace.ScopeDriver, "watch.event", ev.String(), 0)
			pending[filepath.Clean(ev.Name)] = struct{}{}
			timer.Reset(wopts.Debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			onBatch(nil, err)

		case <-timer.C:
			files := existing(pending)
			clear(pending)
			if len(files) == 0 {
				continue
			}
			onBatch(FormatFiles(ctx, files, opts))
		}
	}
}

func (s *watchSet) add(p string) error {
	p = filepath.Clean(p)
	info, err := os.Stat(p)
	if err != nil {
		return err
	}
	if info.IsDir() {
		s.trees[p] = struct{}{}
		return s.addTree(p)
	}
	s.files[p] = struct{}{}
	// каталог, а не файл: редакторы часто пишут через rename
	return s.w.Add(filepath.Dir(p))
}

func (s *watchSet) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return s.w.Add(path)
	})
}

func (s *watchSet) inTree(path string) bool {
	for root := range s.trees {
		rel, err := filepath.Rel(root, path)
		if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func (s *watchSet) wants(path string) bool {
	path = filepath.Clean(path)
	if _, ok := s.files[path]; ok {
		return true
	}
	return IsSourceFile(path) && !strings.HasPrefix(filepath.Base(path), ".") && s.inTree(path)
}

// existing returns the pending paths that still exist, sorted.
func existing(pending map[string]struct{}) []string {
	files := make([]string, 0, len(pending))
	for p := range pending {
		if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		files = append(files, p)
	}
	sort.Strings(files)
	return files
}
