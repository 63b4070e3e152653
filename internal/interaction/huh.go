// Where: internal/interaction/huh.go
// What: Terminal confirmation prompt built on the huh library.
// Why: Give interactive sessions the same validated y/n loop with TUI affordances.
package interaction

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
)

// HuhPrompter implements Prompter using the huh TUI library. Invalid input
// keeps the form open, so the accepted tokens match ReaderPrompter exactly.
type HuhPrompter struct{}

func (HuhPrompter) Confirm(message string) (Decision, error) {
	var answer string
	err := huh.NewInput().
		Title(message).
		Description("(y/n)").
		Validate(func(value string) error {
			switch strings.TrimSpace(value) {
			case "y", "Y", "n", "N":
				return nil
			}
			return errors.New("answer y or n")
		}).
		Value(&answer).
		Run()
	if err != nil {
		return Decline, err
	}
	switch strings.TrimSpace(answer) {
	case "y", "Y":
		return Proceed, nil
	}
	return Decline, nil
}
