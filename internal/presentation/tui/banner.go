package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner writes the MuginCAD banner to w.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	lines := []struct {
		text, color string
	}{
		{"  __  __             _        ____    _    ____  ", "#38bdf8"},
		{" |  \\/  |_   _  __ _(_)_ __  / ___|  / \\  |  _ \\ ", "#22d3ee"},
		{" | |\\/| | | | |/ _` | | '_ \\| |     / _ \\ | | | |", "#2dd4bf"},
		{" | |  | | |_| | (_| | | | | | |___ / ___ \\| |_| |", "#34d399"},
		{" |_|  |_|\\__,_|\\__, |_|_| |_|\\____/_/   \\_\\____/ ", "#4ade80"},
		{"               |___/                             ", "#a3e635"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}

// StatusStyler colours status lines: refusals and invalid input in red,
// completed actions in green, prompts in cyan.
func StatusStyler(profile termenv.Profile) func(string) (string, error) {
	return func(status string) (string, error) {
		color := "#22d3ee"
		switch {
		case isProblem(status):
			color = "#f87171"
		case status == "Command:":
			color = "#a1a1aa"
		case isDone(status):
			color = "#4ade80"
		}
		return profile.String(status).Foreground(profile.Color(color)).String(), nil
	}
}

func isProblem(s string) bool {
	for _, prefix := range []string{"Invalid input", "Unknown", "No entities", "Cannot", "Nothing", "No column types"} {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return strings.HasSuffix(s, "cannot be empty.") || strings.HasSuffix(s, "must be positive.")
}

func isDone(s string) bool {
	for _, prefix := range []string{"Deleted", "Selected", "Undo", "Redo", "Active layer", "SHADE mode", "Area:", "Perim:"} {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
