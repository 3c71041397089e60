// Package config contains shared configuration settings for hashmoji
// subcommands.
package config

import (
	"flag"
	"io"
	"os"

	"github.com/creachadair/command"
	hmconfig "github.com/creachadair/hashmoji/config"
	"github.com/creachadair/hashmoji/source"
	"github.com/rs/zerolog"
)

// Settings are shared settings used by hashmoji subcommands.
type Settings struct {
	File *hmconfig.Config // from the settings file, never nil
	Path string           // settings file path, or ""

	LogOutput io.Writer // where log messages go (nil for os.Stderr)
}

// Log returns a logger that writes to s.LogOutput. Debug messages are shown
// only when --verbose is set.
func (s *Settings) Log() zerolog.Logger {
	level := zerolog.InfoLevel
	if Flags.Verbose {
		level = zerolog.DebugLevel
	}
	out := s.LogOutput
	if out == nil {
		out = os.Stderr
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: out, NoColor: true}).Level(level).With().Timestamp().Logger()
}

// Flags are the input flags shared by all commands that read input.
var Flags struct {
	Algorithm string `flag:"algorithm,Hash algorithm name (default sha1)"`
	NoHash    bool   `flag:"no-hash,Use the input bytes as the digest"`
	Text      bool   `flag:"text,Read input as text (default)"`
	Binary    bool   `flag:"binary,Read input as raw bytes"`
	Hex       bool   `flag:"hex,Read input as hexadecimal digits"`
	Encoding  string `flag:"encoding,Encoding of text before hashing (default utf-8)"`
	Copy      bool   `flag:"copy,Also copy the fingerprint to the clipboard"`
	Verbose   bool   `flag:"verbose,Log diagnostics to stderr"`
}

// Short flag names.
var aliases = map[string]string{
	"a": "algorithm",
	"n": "no-hash",
	"t": "text",
	"b": "binary",
	"x": "hex",
	"e": "encoding",
	"v": "verbose",
}

// AddAliases adds the single-letter aliases for Flags to fs.
// The long flags must already be bound.
func AddAliases(fs *flag.FlagSet) {
	for short, long := range aliases {
		f := fs.Lookup(long)
		fs.Var(f.Value, short, "Alias for --"+long)
	}
}

// Init loads the settings file and stores the shared settings in env.
func Init(env *command.Env) error {
	path := hmconfig.Path()
	cfg, err := hmconfig.Load(path)
	if err != nil {
		return err
	}
	env.Config = &Settings{File: cfg, Path: path}
	return nil
}

// Get returns the shared settings associated with env.
func Get(env *command.Env) *Settings { return env.Config.(*Settings) }

// Options returns the read options selected by the flags, with defaults
// filled in from the settings file. Conflicting flags are a usage error.
func Options(env *command.Env) (source.Options, error) {
	var nmode int
	opts := source.Options{
		Algorithm: Flags.Algorithm,
		NoHash:    Flags.NoHash,
		Encoding:  Flags.Encoding,
	}
	for _, m := range []struct {
		set  bool
		mode source.Mode
	}{{Flags.Text, source.Text}, {Flags.Binary, source.Binary}, {Flags.Hex, source.Hex}} {
		if m.set {
			nmode++
			opts.Mode = m.mode
		}
	}
	if nmode > 1 {
		return opts, env.Usagef("at most one of --text, --binary, --hex may be set")
	}
	set := Get(env)
	opts = set.File.Options(opts, nmode == 0)
	log := set.Log()
	log.Debug().Str("settings", set.Path).Stringer("mode", opts.Mode).
		Str("algorithm", opts.Algorithm).Bool("hashed", opts.Hashed()).Msg("read options")
	if err := opts.Validate(); err != nil {
		return opts, env.Usagef("%v", err)
	}
	return opts, nil
}

// Copy reports whether fingerprints should also go to the clipboard.
func Copy(env *command.Env) bool { return Flags.Copy || Get(env).File.Copy }
