package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{"   ___ ___  _ __ ___  _ __  _   _| |_ ___  _ __ ", "#818cf8"},
	{"  / __/ _ \\| '_ ` _ \\| '_ \\| | | | __/ _ \\| '__|", "#a78bfa"},
	{" | (_| (_) | | | | | | |_) | |_| | || (_) | |   ", "#c084fc"},
	{"  \\___\\___/|_| |_| |_| .__/ \\__,_|\\__\\___/|_|   ", "#e879f9"},
	{"                     |_|                        ", "#f472b6"},
}

// PrintBanner writes the ASCII art banner followed by the version to w.
// Colors follow the terminal profile of w and disappear when w is not a TTY.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	fmt.Fprintln(w)
	for _, l := range bannerLines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w, out.String("  v"+version).Faint())
	fmt.Fprintln(w)
}
