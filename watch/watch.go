// Package watch re-renders the fingerprint of a file each time it changes.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/creachadair/hashmoji/source"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// A ReportFunc receives the fingerprint of the watched file after a change,
// or the error that prevented computing it.
type ReportFunc func(fingerprint string, err error)

// Watcher connects a file path with a directory watcher and reports a fresh
// fingerprint whenever the file is written or replaced.
type Watcher struct {
	path   string
	opts   source.Options
	report ReportFunc
	fw     *fsnotify.Watcher

	// Log receives diagnostic messages. The zero value discards them.
	Log zerolog.Logger
}

// New creates a watcher for path that fingerprints the file according to
// opts and passes each result to report.
//
// The parent directory of path is watched rather than the file itself, so
// that editors that save by renaming a new file into place are handled.
func New(path string, opts source.Options, report ReportFunc) (*Watcher, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %q: %w", path, err)
	}
	return &Watcher{path: abs, opts: opts, report: report, fw: fw, Log: zerolog.Nop()}, nil
}

// Path returns the absolute path of the watched file.
func (w *Watcher) Path() string { return w.path }

// Update fingerprints the current contents of the file and reports the
// result, which it also returns.
func (w *Watcher) Update() (string, error) {
	fp, err := w.fingerprint()
	w.report(fp, err)
	return fp, err
}

func (w *Watcher) fingerprint() (string, error) {
	f, err := os.Open(w.path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return w.opts.Encode(f)
}

// Run monitors the file for changes and reports a fingerprint after each one.
// Run should be run in a separate goroutine. It exits when the watcher
// closes, or ctx ends, and it closes the watcher on return.
func (w *Watcher) Run(ctx context.Context) {
	defer w.fw.Close()

	for {
		select {
		case evt, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(evt.Name) != w.path {
				continue // some other file in the directory
			}
			if evt.Op.Has(fsnotify.Remove) || evt.Op.Has(fsnotify.Rename) {
				w.Log.Debug().Str("path", w.path).Stringer("op", evt.Op).Msg("file went away")
				continue // wait for its replacement
			}
			if !evt.Op.Has(fsnotify.Write) && !evt.Op.Has(fsnotify.Create) {
				continue // not relevant here
			}
			w.Log.Debug().Str("path", w.path).Stringer("op", evt.Op).Msg("file changed")
			if _, err := w.Update(); err != nil {
				w.Log.Warn().Err(err).Str("path", w.path).Msg("fingerprint failed")
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.Log.Warn().Err(err).Str("path", w.path).Msg("error watching file")
		case <-ctx.Done():
			return
		}
	}
}

// Close stops the watcher without waiting for Run to observe it.
func (w *Watcher) Close() error { return w.fw.Close() }
