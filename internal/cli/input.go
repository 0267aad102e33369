package cli

import (
	"bufio"
	"os"
	"strings"

	"golang.org/x/term"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// Interactive reports whether f is attached to a terminal. The shell prints
// prompts only in that case.
func Interactive(f *os.File) bool {
	return isTerminal(int(f.Fd()))
}

// readMultiline reads lines until an empty line or EOF and joins them with
// '\n'. Trailing carriage returns are dropped.
func readMultiline(reader *bufio.Reader) string {
	var lines []string
	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		lines = append(lines, line)
		if err != nil {
			break
		}
	}
	return strings.Join(lines, "\n")
}
