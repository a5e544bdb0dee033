package output

import (
	"os"

	"golang.org/x/term"
)

// DefaultWidth is used when the terminal size cannot be determined.
const DefaultWidth = 80

// TerminalWidth returns the width of the terminal attached to stdout.
func TerminalWidth() int {
	return widthOf(int(os.Stdout.Fd()))
}

func widthOf(fd int) int {
	if !term.IsTerminal(fd) {
		return DefaultWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}

// BarWidth returns a bar width that fits the terminal, leaving room for a label.
func BarWidth(label int) int {
	w := TerminalWidth() - label - 10
	if w > 40 {
		return 40
	}
	if w < 10 {
		return 10
	}
	return w
}
