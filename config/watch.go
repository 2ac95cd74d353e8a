package config

import (
	"actionmenu/log"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to the layout and theme files.
//
// It watches the parent directories rather than the files, since editors usually save by writing
// a new file and renaming it over the old one, which drops a watch placed on the file itself.
type Watcher struct {
	w       *fsnotify.Watcher
	files   map[string]struct{}
	changes chan string
	errors  chan error
	done    chan struct{}
	once    sync.Once
}

// NewWatcher starts watching paths. Empty paths and stdin are skipped.
func NewWatcher(paths ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		w:       fw,
		files:   make(map[string]struct{}),
		changes: make(chan string, 8),
		errors:  make(chan error, 1),
		done:    make(chan struct{}),
	}

	dirs := make(map[string]struct{})
	for _, p := range paths {
		if p == "" || p == StdinPath || p == stdinName {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			_ = fw.Close()
			return nil, err
		}
		w.files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
		log.InfoLog.Printf("watching %s for changes", dir)
	}

	go w.loop()
	return w, nil
}

// Changes delivers the path of every watched file that was written, created or renamed into
// place. Bursts are coalesced when the reader falls behind.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

// Errors delivers watcher failures.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.w.Close()
	})
	return err
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			w.handle(ev)
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
				log.WarningLog.Printf("dropped watcher error: %v", err)
			}
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) {
		return
	}
	name, err := filepath.Abs(ev.Name)
	if err != nil {
		return
	}
	if _, ok := w.files[name]; !ok {
		return
	}
	log.Logger.Debugf("config event %s", ev)
	select {
	case w.changes <- name:
	default:
		// A reload of this path is already pending.
	}
}
