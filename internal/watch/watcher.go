package watch

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"sweep/internal/category"
	"sweep/internal/mover"
)

// ErrNotDirectory is returned by Start when the watch target does not
// exist or is not a directory.
var ErrNotDirectory = errors.New("watch target is not a directory")

// Outcome describes how processing of one created file ended.
type Outcome int

const (
	// OutcomeMoved indicates the file was relocated into its category folder.
	OutcomeMoved Outcome = iota
	// OutcomeError indicates the move failed.
	OutcomeError
)

// String returns a human-readable representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeError:
		return "error"
	default:
		return "unknown"
	}
}

// Event reports the outcome of processing one created file. Exactly one
// Event is delivered per creation notification: every file that matched
// an event either produces a moved or an error outcome.
type Event struct {
	// Outcome is OutcomeMoved or OutcomeError.
	Outcome Outcome
	// Path is the created file as reported by the notification.
	Path string
	// Detail carries the category name for OutcomeMoved and the failure
	// text for OutcomeError.
	Detail string
}

// Config holds tunables for the watcher.
type Config struct {
	// SettleDelay is how long to wait after a creation notification
	// before moving the file, giving the writer time to finish.
	SettleDelay time.Duration

	// Logger for watcher activity.
	Logger *log.Logger
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		SettleDelay: time.Second,
		Logger:      log.New(os.Stderr, "[watch] ", log.LstdFlags),
	}
}

// Watcher observes one directory for newly created files and moves each
// into its category subfolder. It uses fsnotify for cross-platform file
// system event monitoring.
type Watcher struct {
	table  category.Table
	config *Config

	mu      sync.Mutex
	running bool
	dir     string
	fsw     *fsnotify.Watcher
	events  chan Event
	errors  chan error
	done    chan struct{}
	wg      sync.WaitGroup
}

// New creates a Watcher that classifies files with table. If config is
// nil, DefaultConfig() is used. The watcher is idle until Start().
func New(table category.Table, config *Config) *Watcher {
	if config == nil {
		config = DefaultConfig()
	}
	return &Watcher{
		table:  table,
		config: config,
	}
}

// Start begins watching dir for newly created files.
//
// Start on a watcher already running against the same directory is a
// no-op. Start with a different directory stops the current run and
// restarts against the new target. A failed Start leaves no watch
// running.
//
// The watch is deliberately non-recursive: category subfolders created
// under dir never feed their own creation events back into the pipeline.
func (w *Watcher) Start(dir string) error {
	dir = filepath.Clean(dir)

	w.mu.Lock()
	if w.running {
		if w.dir == dir {
			w.mu.Unlock()
			return nil
		}
		w.mu.Unlock()
		if err := w.Stop(); err != nil {
			return err
		}
		w.mu.Lock()
	}
	defer w.mu.Unlock()

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	w.dir = dir
	w.fsw = fsw
	w.events = make(chan Event, 100)
	w.errors = make(chan error, 10)
	w.done = make(chan struct{})
	w.running = true

	w.config.Logger.Printf("Watching: %s", dir)

	w.wg.Add(1)
	go w.processEvents()

	return nil
}

// Stop ends the current run and releases the underlying subscription.
// It blocks until no further events can be delivered, then closes the
// Events and Errors channels. A settle wait in flight is cancelled; its
// file stays where it is. Stopping a watcher that is not running,
// including one never started, is a no-op.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = false
	w.mu.Unlock()

	// Signal shutdown, unblock the event loop, then drain every
	// in-flight goroutine before closing the outcome channels.
	close(w.done)
	err := w.fsw.Close()
	w.wg.Wait()

	close(w.events)
	close(w.errors)

	w.config.Logger.Printf("Stopped watching: %s", w.dir)

	if err != nil {
		return fmt.Errorf("failed to close watcher: %w", err)
	}
	return nil
}

// Events returns the outcome channel for the current run. The channel
// is closed when the run stops; after a restart, call Events again to
// obtain the new run's channel.
func (w *Watcher) Events() <-chan Event {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.events
}

// Errors returns the channel carrying errors from the notification
// subsystem for the current run. Closed when the run stops.
func (w *Watcher) Errors() <-chan error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.errors
}

// IsRunning returns true if the watcher is currently running.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// Dir returns the directory of the current run, or "" when stopped.
func (w *Watcher) Dir() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return ""
	}
	return w.dir
}

// processEvents is the main loop consuming fsnotify notifications. Each
// qualifying creation spawns its own settle-and-move goroutine so one
// file's settle delay never blocks another's.
func (w *Watcher) processEvents() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Create) {
				continue
			}
			// Directory creations (the category subfolders included)
			// are not processed.
			info, err := os.Stat(event.Name)
			if err != nil || info.IsDir() {
				continue
			}
			w.wg.Add(1)
			go w.settleAndMove(event.Name)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			case <-w.done:
				return
			}
		}
	}
}

// settleAndMove waits the settle delay, then classifies and moves path,
// delivering exactly one Event for it. Stop cancels a pending wait.
func (w *Watcher) settleAndMove(path string) {
	defer w.wg.Done()

	timer := time.NewTimer(w.config.SettleDelay)
	defer timer.Stop()

	select {
	case <-w.done:
		return
	case <-timer.C:
	}

	cat := w.table.CategoryFor(filepath.Ext(path))
	dest, err := mover.Move(path, filepath.Join(w.dir, cat))
	if err != nil {
		w.config.Logger.Printf("Error moving %s: %v", filepath.Base(path), err)
		w.deliver(Event{Outcome: OutcomeError, Path: path, Detail: err.Error()})
		return
	}

	w.config.Logger.Printf("Moved: %s -> %s", filepath.Base(path), dest)
	w.deliver(Event{Outcome: OutcomeMoved, Path: path, Detail: cat})
}

func (w *Watcher) deliver(ev Event) {
	select {
	case w.events <- ev:
	case <-w.done:
	}
}
