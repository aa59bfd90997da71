package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadQuiet is how long a file must stay untouched before another change to
// it is reported. Editors write a file several times per save.
const reloadQuiet = 100 * time.Millisecond

// Watcher reports prefab files that changed on disk. Events is closed by
// Close; Err holds the last error fsnotify raised.
type Watcher struct {
	fs     *fsnotify.Watcher
	events chan string
	Events <-chan string

	mu      sync.Mutex
	lastErr error

	stop chan struct{}
	done chan struct{}
	once sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	events := make(chan string, 16)
	w := &Watcher{
		fs:     fw,
		events: events,
		Events: events,
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.stop)
		err = w.fs.Close()
		<-w.done
		close(w.events)
	})
	return err
}

// Err returns the most recent watch error, if any.
func (w *Watcher) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastErr
}

// Poll drains the names that changed since the last call without blocking.
func (w *Watcher) Poll() []string {
	var names []string
	for {
		select {
		case name, ok := <-w.Events:
			if !ok {
				return names
			}
			names = append(names, name)
		default:
			return names
		}
	}
}

func (w *Watcher) loop() {
	defer close(w.done)
	quiet := debouncer{window: reloadQuiet, seen: make(map[string]time.Time)}

	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !relevant(ev) || !quiet.allow(ev.Name, time.Now()) {
				continue
			}
			select {
			case w.events <- ev.Name:
			case <-w.stop:
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.mu.Lock()
			w.lastErr = err
			w.mu.Unlock()
		case <-w.stop:
			return
		}
	}
}

// debouncer drops repeats of a name inside window.
type debouncer struct {
	window time.Duration
	seen   map[string]time.Time
}

func (d *debouncer) allow(name string, now time.Time) bool {
	if prev, ok := d.seen[name]; ok && now.Sub(prev) < d.window {
		return false
	}
	d.seen[name] = now
	return true
}

func relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
		return false
	}
	return isSpecFile(ev.Name)
}

func isSpecFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
