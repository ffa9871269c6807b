package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the Pergola ASCII art banner to w.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	// Leaf greens into vine violet
	lines := []struct {
		text  string
		color string
	}{
		{"                                 _       ", "#4ade80"},
		{"  _ __   ___ _ __ __ _  ___ | | __ _ ", "#34d399"},
		{" | '_ \\ / _ \\ '__/ _` |/ _ \\| |/ _` |", "#2dd4bf"},
		{" | |_) |  __/ | | (_| | (_) | | (_| |", "#818cf8"},
		{" | .__/ \\___|_|  \\__, |\\___/|_|\\__,_|", "#a78bfa"},
		{" |_|             |___/               ", "#c084fc"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
