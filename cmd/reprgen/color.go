package main

import (
	"os"
	"regexp"

	"golang.org/x/sys/unix"
)

// isatty reports whether the program is running in a terminal. If it is true,
// we can use ANSI color codes.
func isatty() bool {
	_, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	return err == nil
}

// rePos matches the position prefix of a diagnostic line.
var rePos = regexp.MustCompile(`(?m)^([^\s:]+:\d+:\d+:)( .+)$`)

// colorize adds ANSI color codes to the message. Positions are dimmed and
// diagnostics are red.
func colorize(message string) string {
	const (
		red   = "\033[31m"
		dim   = "\033[2m"
		reset = "\033[0m"
	)
	return rePos.ReplaceAllString(message, dim+"$1"+reset+red+"$2"+reset)
}
