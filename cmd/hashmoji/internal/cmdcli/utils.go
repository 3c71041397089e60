package cmdcli

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/creachadair/command"
	"github.com/creachadair/getpass"
	"github.com/creachadair/hashmoji"
	"github.com/creachadair/hashmoji/clipboard"
	"github.com/creachadair/hashmoji/cmd/hashmoji/config"
	"github.com/creachadair/hashmoji/digests"
	"golang.org/x/term"
)

var (
	// copyText writes a fingerprint to the clipboard.
	copyText = clipboard.WriteString

	// readSecret prompts for a secret without echo.
	readSecret = getpass.Prompt

	// stdout receives command output.
	stdout io.Writer = os.Stdout
)

// fingerprint reads the input named by optPath, or stdin if it is empty,
// and returns its fingerprint under the options selected by env.
func fingerprint(env *command.Env, optPath []string) (string, error) {
	opts, err := config.Options(env)
	if err != nil {
		return "", err
	}
	var r io.Reader = os.Stdin
	if len(optPath) == 1 && optPath[0] != "-" {
		f, err := os.Open(optPath[0])
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	} else if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(env, "Reading input from the terminal (end with Ctrl-D)")
	}
	fp, err := opts.Encode(r)
	if errors.Is(err, hashmoji.ErrIncompatibleDigest) {
		return "", fmt.Errorf("algorithm %q: %w (see the \"algorithms\" command)", cmp.Or(opts.Algorithm, digests.Default), err)
	}
	return fp, err
}
