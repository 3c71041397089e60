// Program hashmoji prints the emoji fingerprint of a file or of its input.
package main

import (
	"flag"
	"os"

	"github.com/creachadair/command"
	"github.com/creachadair/flax"
	"github.com/creachadair/hashmoji/cmd/hashmoji/config"

	"github.com/creachadair/hashmoji/cmd/hashmoji/internal/cmdcli"
	"github.com/creachadair/hashmoji/cmd/hashmoji/internal/cmddebug"
	"github.com/creachadair/hashmoji/cmd/hashmoji/internal/cmdserver"
	"github.com/creachadair/hashmoji/cmd/hashmoji/internal/cmdwatch"
)

func main() {
	root := &command.C{
		Name:  command.ProgramName(),
		Usage: "[flags] [path]\n[flags] <command> [args...]",
		Help: `📱 Print an emoji fingerprint of the input.

Read the file at path, or stdin if no path is given, hash it, and print
the digest as a sequence of emoji. Fingerprints are easy to compare by eye:
two inputs with the same fingerprint almost certainly have the same digest.

Defaults for --algorithm, --encoding, --copy, and the read mode may be set
in a YAML settings file, at $HASHMOJI_CONFIG if that is set, otherwise in
the user configuration directory under hashmoji/config.yaml.`,

		SetFlags: func(env *command.Env, fs *flag.FlagSet) {
			flax.MustBind(fs, &config.Flags)
			config.AddAliases(fs)
		},

		Init: config.Init,
		Run:  command.Adapt(cmdcli.RunFingerprint),

		Commands: append(
			cmdcli.Commands,
			cmdwatch.Command,
			cmdserver.Command,
			command.HelpCommand([]command.HelpTopic{{
				Name: "modes",
				Help: `How input is read.

--text (default)
  The input must be valid UTF-8. Line endings are normalized to LF, and
  the text is converted to --encoding (default utf-8) before hashing.

--binary
  The input bytes are hashed as-is. With --no-hash, the input bytes are
  fingerprinted directly, and their length must be a multiple of 4.

--hex
  The input is hexadecimal digits, possibly with spaces and line breaks,
  which are decoded and fingerprinted directly without hashing. Use this
  to fingerprint a digest printed by another tool.

Text input cannot be fingerprinted without hashing.`,
			}}),
			command.VersionCommand(),
			cmddebug.Command,
		),
	}
	command.RunOrFail(root.NewEnv(nil).MergeFlags(true), os.Args[1:])
}
