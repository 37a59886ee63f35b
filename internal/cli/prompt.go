package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// isInteractive reports whether both stdin and stderr are attached to a
// terminal, so a prompt can actually be answered.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stderr.Fd()))
}

// promptOverwrite asks whether dst may be overwritten by src. Outside a
// terminal it declines, so scripted runs never block on input.
func promptOverwrite(src, dst string) bool {
	if !isInteractive() {
		return false
	}

	fmt.Fprintf(os.Stderr, "overwrite %s with %s? [y/N]: ", dst, src)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
