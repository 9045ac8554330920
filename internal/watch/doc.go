// Package watch provides the event-driven auto-organize pipeline.
//
// A Watcher subscribes to file-creation notifications on a single
// directory and relocates each new file into a category subfolder.
//
// # Architecture
//
// The pipeline has three stages:
//
//   - Notification: fsnotify delivers raw creation events for the
//     watched directory. The watch is non-recursive, so the category
//     subfolders the pipeline itself creates never feed events back in.
//   - Settle: each created file gets its own goroutine that waits a
//     fixed settle delay before touching the file, giving the writer
//     time to finish. Settle waits for different files overlap; one
//     slow file never delays another.
//   - Move: after settling, the file is classified by extension and
//     handed to the collision-safe mover.
//
// # Events
//
// Every file that matched a creation notification produces exactly one
// Event on the Events() channel, tagged OutcomeMoved or OutcomeError.
// Failures are funneled through the same channel as successes; the
// pipeline never panics past this boundary. Errors from the
// notification subsystem itself arrive on Errors().
//
//	w := watch.New(category.Default(), nil)
//	if err := w.Start("/path/to/downloads"); err != nil {
//	    log.Fatal(err)
//	}
//	defer w.Stop()
//
//	for ev := range w.Events() {
//	    fmt.Printf("%s: %s (%s)\n", ev.Outcome, filepath.Base(ev.Path), ev.Detail)
//	}
//
// # Lifecycle
//
// A Watcher moves between exactly two states, Stopped and Running.
// Start on a running watcher is a no-op for the same directory and a
// restart for a new one. Stop is idempotent: stopping a stopped (or
// never-started) watcher does nothing. Stop blocks until in-flight work
// has drained, then closes both channels; no event is delivered after
// Stop returns. A settle wait pending at Stop is cancelled and its file
// left in place.
//
// # Thread Safety
//
// Events(), Errors(), IsRunning() and Dir() are safe from any
// goroutine. Start() and Stop() should be called from a single
// controlling goroutine.
//
// # Known race
//
// Destination names are resolved with an existence check followed by a
// rename. Two movers resolving the same name at the same instant (for
// example a manual organize run racing the pipeline) can pick the same
// path. The window is accepted, not eliminated.
package watch
