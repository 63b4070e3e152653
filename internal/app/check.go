// Where: internal/app/check.go
// What: Standalone archetype cache check (-c).
// Why: Let users probe their local Maven cache without generating anything.
package app

import (
	"fmt"
	"io"
)

func runCheck(deps Dependencies, out io.Writer) int {
	if deps.Checker == nil {
		fmt.Fprintln(out, "check: not implemented")
		return 1
	}

	path, found, err := deps.Checker.Archetypes()
	if err != nil {
		return exitWithError(out, err)
	}
	if !found {
		fmt.Fprintf(out, "archetype cache not found at %s\n", path)
		return 1
	}
	fmt.Fprintf(out, "archetype cache found at %s\n", path)
	return 0
}
