// Package style defines the colours and text styles of github-deploy output.
//
// Call Init(colorEnabled) once at startup. After that, use the exported
// styles and helper functions freely.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ─── Colour palette ──────────────────────────────────────────────────────────

var (
	Cyan = lipgloss.Color("#00B4D8")

	Green  = lipgloss.Color("#22C55E")
	Yellow = lipgloss.Color("#FACC15")
	Red    = lipgloss.Color("#EF4444")

	White  = lipgloss.Color("#FAFAFA")
	Dim    = lipgloss.Color("#6B7280")
	Subtle = lipgloss.Color("#374151")
)

// ─── Reusable text styles ────────────────────────────────────────────────────

var (
	// Success style for positive confirmations.
	Success = lipgloss.NewStyle().
		Foreground(Green).
		Bold(true)

	// Warning style for non-fatal alerts.
	Warning = lipgloss.NewStyle().
		Foreground(Yellow)

	// Error style for error messages.
	Error = lipgloss.NewStyle().
		Foreground(Red).
		Bold(true)

	// DimText is used for hints and secondary info.
	DimText = lipgloss.NewStyle().
		Foreground(Dim)
)

// Enabled reports whether colour output is on.
var Enabled = true

// Init configures the style package. Call once at startup.
func Init(colorEnabled bool) {
	Enabled = colorEnabled
	if !colorEnabled {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// SuccessIcon returns a themed check mark.
func SuccessIcon() string {
	if Enabled {
		return Success.Render("✓")
	}
	return "OK"
}

// ErrorIcon returns a themed X mark.
func ErrorIcon() string {
	if Enabled {
		return Error.Render("✗")
	}
	return "ERROR"
}

// WarningIcon returns a themed warning indicator.
func WarningIcon() string {
	if Enabled {
		return Warning.Render("!")
	}
	return "WARN"
}

// Hint renders a "next step" hint message.
func Hint(msg string) string {
	return DimText.Render("→ " + msg)
}
