// Package terminal centralises "is this a terminal?" decisions so that
// colour and progress output are enabled consistently.
package terminal

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// Info holds the resolved terminal state for the current process.
// Create one at startup via Detect() and pass it down.
type Info struct {
	// IsTerminal is true when stdout is connected to a TTY.
	IsTerminal bool
	// StderrIsTerminal is true when stderr is connected to a TTY.
	StderrIsTerminal bool
	// ColorEnabled is true when ANSI colours should be emitted.
	ColorEnabled bool
	// ProgressEnabled is true when upload progress bars may be drawn.
	ProgressEnabled bool
}

// Detect inspects the environment. noColor is the value of --no-color;
// the NO_COLOR convention (https://no-color.org/) is honoured as well.
func Detect(noColor bool) Info {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	stderrTTY := term.IsTerminal(int(os.Stderr.Fd()))

	envNoColor := os.Getenv("NO_COLOR") != ""

	return Info{
		IsTerminal:       isTTY,
		StderrIsTerminal: stderrTTY,
		ColorEnabled:     isTTY && !noColor && !envNoColor,
		ProgressEnabled:  stderrTTY && !IsDumb() && !IsCI(),
	}
}

// IsDumb returns true when the terminal is known to have no capabilities
// (e.g. TERM=dumb or running inside Emacs).
func IsDumb() bool {
	t := strings.ToLower(os.Getenv("TERM"))
	return t == "dumb" || t == ""
}

// IsCI returns true when a well-known CI environment variable is set.
func IsCI() bool {
	ciVars := []string{"CI", "GITHUB_ACTIONS", "JENKINS_URL", "GITLAB_CI", "CIRCLECI", "TRAVIS"}
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}
