// Package cmdwatch implements the file watcher subcommand.
package cmdwatch

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/creachadair/command"
	"github.com/creachadair/hashmoji/cmd/hashmoji/config"
	"github.com/creachadair/hashmoji/watch"
)

var Command = &command.C{
	Name:  "watch",
	Usage: "<path>",
	Help: `Print the fingerprint of a file each time it changes.

The current fingerprint is printed at startup, then a new line is printed
with a timestamp whenever the file is written or replaced. The input flags
of the main command apply. Stop with an interrupt.`,
	Run: command.Adapt(runWatch),
}

// stdout receives command output.
var stdout io.Writer = os.Stdout

// runWatch implements the "watch" subcommand.
func runWatch(env *command.Env, path string) error {
	opts, err := config.Options(env)
	if err != nil {
		return err
	}
	var last string
	w, err := watch.New(path, opts, func(fp string, err error) {
		ts := time.Now().Format(time.TimeOnly)
		if err != nil {
			fmt.Fprintf(env, "%s error: %v\n", ts, err)
			return
		}
		if fp != last {
			fmt.Fprintf(stdout, "%s %s\n", ts, fp)
			last = fp
		}
	})
	if err != nil {
		return err
	}
	w.Log = config.Get(env).Log()
	if _, err := w.Update(); err != nil && !os.IsNotExist(err) {
		w.Close()
		return err
	}

	ctx, cancel := signal.NotifyContext(env.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	w.Log.Debug().Str("path", w.Path()).Msg("watching for changes")
	w.Run(ctx)
	return nil
}
