// Package clipboard copies text to the system clipboard by running a helper
// program for the platform.
package clipboard

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrUnavailable is reported by WriteString when no clipboard helper can be
// used in the current environment.
var ErrUnavailable = errors.New("clipboard is not available")

// A helper is a command that reads the text to copy from its stdin.
type helper []string

// WriteString attempts to copy the given string to the system clipboard.
// It uses the first helper program for the platform that is installed.
func WriteString(s string) error {
	helpers, err := platformHelpers()
	if err != nil {
		return err
	}
	for _, h := range helpers {
		path, err := exec.LookPath(h[0])
		if err != nil {
			continue
		}
		cmd := exec.Command(path, h[1:]...)
		cmd.Stdin = strings.NewReader(s)
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("copy with %s: %w", h[0], err)
		}
		return nil
	}
	return fmt.Errorf("%w (no helper program found)", ErrUnavailable)
}
