// Package terminal provides terminal detection utilities.
package terminal

import (
	"os"

	"golang.org/x/term"
)

var (
	isTerminal = term.IsTerminal
	getSize    = term.GetSize
)

// IsInteractive reports whether stdin and stdout are both interactive terminals.
func IsInteractive() bool {
	return isTerminal(int(os.Stdin.Fd())) && isTerminal(int(os.Stdout.Fd()))
}

// Width returns the column count of the terminal attached to f, or fallback
// when f is not a terminal or its size is unknown.
func Width(f *os.File, fallback int) int {
	if f == nil {
		return fallback
	}
	fd := int(f.Fd())
	if !isTerminal(fd) {
		return fallback
	}
	width, _, err := getSize(fd)
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}
