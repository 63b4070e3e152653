// Where: internal/interaction/interaction.go
// What: Interactive primitives for CLI prompts and TTY detection.
// Why: Centralize user interaction so command handlers stay orchestration-only.
package interaction

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Decision is the outcome of a confirmation prompt.
type Decision int

const (
	// Proceed means the user confirmed the action.
	Proceed Decision = iota
	// Decline means the user rejected the action.
	Decline
)

// Prompter asks the user to confirm an action before it runs.
type Prompter interface {
	Confirm(message string) (Decision, error)
}

// IsTerminal reports whether the file refers to a terminal device.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ReaderPrompter reads confirmation tokens line by line from In. Only
// y, Y, n, and N terminate the loop; anything else re-prompts with a
// usage reminder.
type ReaderPrompter struct {
	In  io.Reader
	Out io.Writer
}

func (p ReaderPrompter) Confirm(message string) (Decision, error) {
	scanner := bufio.NewScanner(p.In)
	for {
		fmt.Fprintf(p.Out, "%s [y/n]: ", message)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return Decline, err
			}
			return Decline, io.ErrUnexpectedEOF
		}
		switch strings.TrimSpace(scanner.Text()) {
		case "y", "Y":
			return Proceed, nil
		case "n", "N":
			return Decline, nil
		}
		fmt.Fprintln(p.Out, "Please answer y or n.")
	}
}
