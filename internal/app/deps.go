// Where: internal/app/deps.go
// What: Injected dependencies for CLI command execution.
// Why: Keep every side effect behind an interface so tests use fakes.
package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/mvnew/mvnew/internal/interaction"
	"github.com/mvnew/mvnew/internal/maven"
)

// Dependencies holds all injected dependencies required for command
// execution. Zero fields fall back to sensible defaults where possible.
type Dependencies struct {
	Out       io.Writer
	Prompter  interaction.Prompter
	Generator Generator
	Checker   Checker
	Now       func() time.Time
}

// Generator runs the external project generation.
type Generator interface {
	Generate(ctx context.Context, inv maven.Invocation) error
}

// Checker verifies external preconditions before generation.
type Checker interface {
	Tool() error
	Archetypes() (path string, found bool, err error)
}

func exitWithError(out io.Writer, err error) int {
	fmt.Fprintln(out, err)
	return 1
}

func usageError(out io.Writer, err error) int {
	fmt.Fprintln(out, err)
	fmt.Fprintln(out, `Run "mvnew -h" for usage.`)
	return 1
}
