package reload

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const relevantOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove

// Watch reloads the lexicon whenever one of paths changes. A path may be a
// file or a directory; for a directory, changes to any file within count,
// and so do changes to <dir>/<tag>/annotations.json.
// Bursts of events are collapsed into a single reload, issued after the
// files have been quiet for the debounce period.
//
// Watch returns after the watch is set up. Watching stops when ctx is done.
func (h *Holder) Watch(ctx context.Context, paths ...string) error {
	if len(paths) == 0 {
		return fmt.Errorf("reload: nothing to watch")
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("reload: %w", err)
	}
	filter := make(watchFilter)
	for _, p := range paths {
		dirs, err := filter.add(p)
		if err != nil {
			w.Close()
			return fmt.Errorf("reload: %w", err)
		}
		// Watch directories instead of files, as editors tend to replace
		// files by renaming.
		for _, dir := range dirs {
			if err := w.Add(dir); err != nil {
				w.Close()
				return fmt.Errorf("reload: watching %s: %w", dir, err)
			}
			tracer().Debugf("watching %s", dir)
		}
	}
	go h.watchLoop(ctx, w, filter)
	return nil
}

func (h *Holder) watchLoop(ctx context.Context, w *fsnotify.Watcher, filter watchFilter) {
	defer w.Close()
	var mu sync.Mutex
	var timer *time.Timer
	trigger := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(h.debounce, func() {
			if ctx.Err() == nil {
				_ = h.Reload()
			}
		})
	}
	for {
		select {
		case <-ctx.Done():
			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			mu.Unlock()
			tracer().Debugf("watch stopped")
			return
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if ev.Op&relevantOps == 0 || !filter.matches(ev.Name) {
				continue
			}
			tracer().Debugf("file event %s", ev)
			trigger()
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			tracer().Errorf("watch: %v", err)
		}
	}
}

// watchFilter maps watched directories to the files of interest within
// them. A nil set means every file of the directory.
type watchFilter map[string]map[string]bool

// cldrFile is the dataset file within a locale sub-directory, as in the
// CLDR distribution.
const cldrFile = "annotations.json"

// add registers path and returns the directories to watch for it. For a
// directory these include its locale sub-directories holding a CLDR
// annotations file.
func (f watchFilter) add(path string) ([]string, error) {
	path, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{f.addFile(path)}, nil
	}
	f[path] = nil
	dirs := []string{path}
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		p := filepath.Join(path, e.Name(), cldrFile)
		if _, err := os.Stat(p); err == nil {
			dirs = append(dirs, f.addFile(p))
		}
	}
	return dirs, nil
}

func (f watchFilter) addFile(path string) string {
	dir := filepath.Dir(path)
	files, seen := f[dir]
	if seen && files == nil {
		return dir // whole directory already watched
	}
	if files == nil {
		files = make(map[string]bool)
		f[dir] = files
	}
	files[filepath.Base(path)] = true
	return dir
}

func (f watchFilter) matches(name string) bool {
	name, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	files, ok := f[filepath.Dir(name)]
	if !ok {
		return false
	}
	return files == nil || files[filepath.Base(name)]
}
