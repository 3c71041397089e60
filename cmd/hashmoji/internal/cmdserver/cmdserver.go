// Package cmdserver implements the HTTP service subcommand.
package cmdserver

import (
	"cmp"
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/creachadair/command"
	"github.com/creachadair/flax"
	"github.com/creachadair/hashmoji/cmd/hashmoji/config"
	"github.com/creachadair/hashmoji/digests"
	"github.com/creachadair/hashmoji/service"
	"go.uber.org/automaxprocs/maxprocs"
)

var Command = &command.C{
	Name: "serve",
	Help: `Run an HTTP service that computes fingerprints.

Endpoints:

  POST /fingerprint  -- fingerprint the request body (JSON result)
  GET  /algorithms   -- list available algorithms (JSON)
  GET  /table        -- the symbol table (JSON)
  GET  /table.html   -- the symbol table as a web page

The /fingerprint endpoint accepts query parameters algorithm, mode,
encoding, and nohash, with the same meanings as the command-line flags.

If --allow is set, only callers whose addresses match one of the given
comma-separated CIDR masks are served. The address and allowed callers
default to the server section of the settings file.`,
	SetFlags: command.Flags(flax.MustBind, &serverFlags),
	Run:      command.Adapt(runServer),
}

var serverFlags struct {
	Addr     string `flag:"addr,Service address (host:port)"`
	Allow    string `flag:"allow,Comma-separated CIDR masks of allowed callers"`
	MaxBytes int64  `flag:"max-bytes,Maximum request body size in bytes (default 16MiB)"`
}

func runServer(env *command.Env) error {
	srv, err := newServer(env)
	if err != nil {
		return err
	}
	log := config.Get(env).Log()
	undo, err := maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		log.Debug().Msgf(format, args...)
	}))
	if err != nil {
		log.Warn().Err(err).Msg("setting GOMAXPROCS")
	}
	defer undo()

	ctx, cancel := signal.NotifyContext(env.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("serving")
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server error")
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("stopping server")
	return srv.Shutdown(context.Background())
}

// newServer constructs the HTTP server selected by the flags and settings.
// Flags take precedence over the server section of the settings file.
func newServer(env *command.Env) (*http.Server, error) {
	set := config.Get(env)
	addr := cmp.Or(serverFlags.Addr, set.File.Server.Addr)
	if addr == "" {
		return nil, env.Usagef("you must provide a service --addr")
	}
	allow := set.File.Server.Allow
	if serverFlags.Allow != "" {
		allow = strings.Split(serverFlags.Allow, ",")
	}
	hf, err := service.NewHostFilter(allow)
	if err != nil {
		return nil, env.Usagef("invalid --allow: %v", err)
	}
	algo := cmp.Or(config.Flags.Algorithm, set.File.Algorithm)
	if algo != "" {
		if _, err := digests.Lookup(algo); err != nil {
			return nil, env.Usagef("invalid --algorithm: %v", err)
		}
	}
	log := set.Log()
	log.Debug().Str("addr", addr).Strs("allow", allow).Str("algorithm", algo).Msg("server settings")
	return &http.Server{
		Addr: addr,
		Handler: &service.Server{
			Allow:     hf,
			Algorithm: algo,
			MaxBytes:  serverFlags.MaxBytes,
			Log:       log,
		},
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}
