// Package cmdcli implements the fingerprint commands of the hashmoji tool.
package cmdcli

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/creachadair/command"
	"github.com/creachadair/flax"
	"github.com/creachadair/hashmoji"
	"github.com/creachadair/hashmoji/cmd/hashmoji/config"
	"github.com/creachadair/hashmoji/digests"
	"github.com/creachadair/hashmoji/symtab"
	"github.com/creachadair/mds/mdiff"
	"github.com/creachadair/mds/value"
)

var Commands = []*command.C{
	{
		Name:  "check",
		Usage: "<expected> [path]",
		Help: `Check that the input has the expected fingerprint.

The input is read as for the main command. If its fingerprint differs
from expected, the differing symbols are printed as a diff and the
command fails. Spaces in expected are not significant.`,
		Run: command.Adapt(runCheck),
	},
	{
		Name: "secret",
		Help: `Print the fingerprint of a secret read from the terminal.

The secret is read without echo, and only its fingerprint is printed.
Use this to check that two copies of a secret agree without showing them.`,
		SetFlags: command.Flags(flax.MustBind, &secretFlags),
		Run:      command.Adapt(runSecret),
	},
	{
		Name: "algorithms",
		Help: `List the available hash algorithms.

Only algorithms whose digest size is a multiple of 4 bytes can be
fingerprinted. Besides the listed names, "blake2b:n" selects BLAKE2b
with an n-byte digest, for 1 ≤ n ≤ 64.`,
		Run: command.Adapt(runAlgorithms),
	},
}

// RunFingerprint implements the main command.
func RunFingerprint(env *command.Env, optPath ...string) error {
	if len(optPath) > 1 {
		return env.Usagef("at most one input path may be given, got %d", len(optPath))
	}
	fp, err := fingerprint(env, optPath)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, fp)
	if config.Copy(env) {
		if err := copyText(fp); err != nil {
			return fmt.Errorf("copying fingerprint: %w", err)
		}
		log := config.Get(env).Log()
		log.Debug().Msg("copied fingerprint to clipboard")
	}
	return nil
}

// runCheck implements the "check" subcommand.
func runCheck(env *command.Env, expected string, optPath ...string) error {
	if len(optPath) > 1 {
		return env.Usagef("at most one input path may be given, got %d", len(optPath))
	}
	want, err := hashmoji.Split(expected)
	if err != nil {
		return fmt.Errorf("invalid expected fingerprint: %w", err)
	}
	fp, err := fingerprint(env, optPath)
	if err != nil {
		return err
	}
	got, err := hashmoji.Split(fp)
	if err != nil {
		return err // should not be possible
	}
	diff := mdiff.New(numbered(want), numbered(got))
	if len(diff.Chunks) == 0 {
		fmt.Fprintln(env, "OK", fp)
		return nil
	}
	input := "stdin"
	if len(optPath) == 1 {
		input = optPath[0]
	}
	diff.AddContext(3).Unify().Format(stdout, mdiff.Unified, &mdiff.FileInfo{Left: "expected", Right: input})
	return errors.New("fingerprint does not match")
}

// numbered renders syms one per line with their positions.
func numbered(syms []string) []string {
	out := make([]string, len(syms))
	for i, s := range syms {
		out[i] = fmt.Sprintf("%2d %s\t%s", i+1, s, symtab.Refs(symtab.Index(s)))
	}
	return out
}

var secretFlags struct {
	Confirm bool `flag:"confirm,Prompt twice and require both entries to agree"`
}

// runSecret implements the "secret" subcommand.
func runSecret(env *command.Env) error {
	opts, err := config.Options(env)
	if err != nil {
		return err
	}
	secret, err := readSecret("Secret: ")
	if err != nil {
		return err
	}
	if secretFlags.Confirm {
		again, err := readSecret("Confirm secret: ")
		if err != nil {
			return err
		} else if again != secret {
			return errors.New("secrets do not match")
		}
	}
	fp, err := opts.Encode(strings.NewReader(secret))
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, fp)
	return nil
}

// runAlgorithms implements the "algorithms" subcommand.
func runAlgorithms(env *command.Env) error {
	tw := tabwriter.NewWriter(stdout, 4, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tBYTES\tSYMBOLS\tCOMPATIBLE")
	for _, a := range digests.All() {
		fmt.Fprintf(tw, "%s%s\t%d\t%s\t%s\n",
			a.Name, value.Cond(a.Name == digests.Default, "*", ""), a.Size,
			value.Cond(a.Compatible(), fmt.Sprint(a.Size/hashmoji.ChunkSize), "-"),
			value.Cond(a.Compatible(), "yes", "no"))
	}
	return tw.Flush()
}
