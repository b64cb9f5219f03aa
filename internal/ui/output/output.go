// Package output constructs termenv outputs with consistent color-profile
// handling across the CLI.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// ColorProfile returns the color profile to use. NO_COLOR disables styling
// entirely; otherwise the terminal's capabilities are detected.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New creates a termenv.Output for w using the shared profile logic.
func New(w io.Writer) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w, termenv.WithProfile(ColorProfile()), termenv.WithTTY(true))
}
