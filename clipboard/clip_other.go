//go:build !darwin

package clipboard

import (
	"fmt"
	"os"
)

func platformHelpers() ([]helper, error) {
	// The X11 helpers do not work without a DISPLAY, nor wl-copy without a
	// Wayland compositor.
	var out []helper
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		out = append(out, helper{"wl-copy"})
	}
	if os.Getenv("DISPLAY") != "" {
		out = append(out, helper{"xsel", "--clipboard", "--input"}, helper{"xclip", "-selection", "clipboard"})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w (no DISPLAY)", ErrUnavailable)
	}
	return out, nil
}
