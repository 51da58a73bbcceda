package store

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeKind describes what happened to the journal file.
type ChangeKind int

const (
	ChangeWritten ChangeKind = iota // file created or rewritten
	ChangeRemoved                   // file deleted or renamed away
)

// Change is a debounced notification that the journal file changed on disk.
type Change struct {
	Kind ChangeKind
	Path string
}

// watchDebounce is how long the file must stay quiet before a change is
// emitted. Editors and Save both produce bursts of events.
const watchDebounce = 100 * time.Millisecond

// Watcher reports changes to one journal file. The parent directory is
// watched rather than the file so atomic renames are seen.
type Watcher struct {
	Path    string
	Changes <-chan Change

	changes chan Change
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for the journal at path.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan Change, 16)
	return &Watcher{
		Path:    abs,
		Changes: ch,
		changes: ch,
		done:    make(chan struct{}),
		watcher: fw,
	}, nil
}

// Start begins watching. The journal's directory must exist.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.Path)); err != nil {
		return err
	}
	go w.loop()
	return nil
}

// Stop closes the watcher and the Changes channel.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	var (
		pending  bool
		lastSeen time.Time
		kind     ChangeKind
	)
	ticker := time.NewTicker(watchDebounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				if pending {
					w.emit(kind)
				}
				return
			}
			if filepath.Clean(event.Name) != w.Path {
				continue
			}
			switch {
			case event.Has(fsnotify.Write) || event.Has(fsnotify.Create):
				kind = ChangeWritten
			case event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename):
				kind = ChangeRemoved
			default:
				continue
			}
			pending = true
			lastSeen = time.Now()

		case <-ticker.C:
			if pending && time.Since(lastSeen) >= watchDebounce {
				w.emit(kind)
				pending = false
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; the next write retries.
		}
	}
}

// emit sends without blocking; a full buffer already holds a pending reload.
func (w *Watcher) emit(kind ChangeKind) {
	select {
	case w.changes <- Change{Kind: kind, Path: w.Path}:
	default:
	}
}
